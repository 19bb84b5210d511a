package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ValidateBid decides whether a candidate price is acceptable for the auction
// at the given instant. Checks run in order and the first failure wins:
//  1. price must exceed the current price
//  2. the auction must be open
//  3. an open auction past its deadline is waiting to close; its status has
//     not caught up yet, so that case gets its own error
//
// Pure function, no side effects.
func ValidateBid(price decimal.Decimal, auction *Auction, now time.Time) error {
	if price.LessThanOrEqual(auction.CurrentPrice) {
		return ErrPriceTooLow
	}
	if auction.Status != StatusOpen {
		return ErrAuctionNotOpen
	}
	if auction.OpenUntil != nil && auction.OpenUntil.Before(now) {
		return ErrAuctionClosing
	}
	return nil
}

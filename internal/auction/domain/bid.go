package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BidStatus represents the moderation state of a bid.
type BidStatus string

const (
	BidStatusActive   BidStatus = "active"
	BidStatusRejected BidStatus = "rejected"
	// BidStatusWon is terminal: the auction settled on this bid.
	BidStatusWon BidStatus = "won"
)

// Bid is a bidder's standing offer on an auction. There is at most one Bid per
// (bidder, auction) pair; a repeat bid mutates price and placed_at in place.
type Bid struct {
	ID        uuid.UUID
	AuctionID uuid.UUID
	BidderID  uuid.UUID
	Price     decimal.Decimal
	Status    BidStatus
	PlacedAt  time.Time
	ClosedAt  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewBid(id, auctionID, bidderID uuid.UUID, price decimal.Decimal, placedAt time.Time) *Bid {
	return &Bid{
		ID:        id,
		AuctionID: auctionID,
		BidderID:  bidderID,
		Price:     price,
		Status:    BidStatusActive,
		PlacedAt:  placedAt,
	}
}

// Rebid replaces the bid's price and placement time. A previously rejected bid
// becomes active again on re-submission.
func (b *Bid) Rebid(price decimal.Decimal, placedAt time.Time) {
	b.Price = price
	b.PlacedAt = placedAt
	b.Status = BidStatusActive
}

// SetActive toggles the bid between active and rejected. Only those two states
// can be toggled; terminal states fail, as does a no-op transition.
func (b *Bid) SetActive(active bool) error {
	if b.Status != BidStatusActive && b.Status != BidStatusRejected {
		return ErrInvalidBidStatus
	}

	target := BidStatusRejected
	if active {
		target = BidStatusActive
	}
	if b.Status == target {
		return ErrNoStatusChange
	}

	b.Status = target
	return nil
}

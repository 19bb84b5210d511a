package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuctionStatus represents the lifecycle state of an auction.
type AuctionStatus string

const (
	StatusPreview   AuctionStatus = "preview"
	StatusOpen      AuctionStatus = "open"
	StatusClosed    AuctionStatus = "closed"
	StatusCancelled AuctionStatus = "cancelled"
)

// Auction is a time-boxed charity auction. CurrentPrice is maintained as a
// side effect of bid acceptance and never decreases.
type Auction struct {
	ID            uuid.UUID
	Title         string
	StartingPrice decimal.Decimal
	CurrentPrice  decimal.Decimal
	Status        AuctionStatus
	StartedAt     *time.Time
	OpenUntil     *time.Time
	EndedAt       *time.Time
	HighestBidID  *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewAuction(id uuid.UUID, title string, startingPrice decimal.Decimal) *Auction {
	return &Auction{
		ID:            id,
		Title:         title,
		StartingPrice: startingPrice,
		CurrentPrice:  startingPrice,
		Status:        StatusPreview,
	}
}

// Open moves a preview auction into the open state with the given deadline.
func (a *Auction) Open(openUntil time.Time, now time.Time) error {
	if a.Status != StatusPreview {
		return ErrAuctionAlreadyStarted
	}
	a.Status = StatusOpen
	a.StartedAt = &now
	a.OpenUntil = &openUntil
	return nil
}

// RecordBid raises the current price to the accepted bid and tracks it as the
// highest bid. Must only be called after the bid passed validation.
func (a *Auction) RecordBid(b *Bid) {
	a.CurrentPrice = b.Price
	id := b.ID
	a.HighestBidID = &id
}

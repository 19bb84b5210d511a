package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BidWithBidder pairs a bid with the contact data of the bidder who placed it,
// for fan-out and detail projections.
type BidWithBidder struct {
	Bid
	BidderEmail string
	BidderName  string
}

type AuctionRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Auction, error)
	// GetByIDForUpdate loads the auction row under a row-level lock so that
	// validation and the subsequent write happen against the same snapshot.
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*Auction, error)
	Save(ctx context.Context, tx pgx.Tx, auction *Auction) error
}

type BidRepository interface {
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*Bid, error)
	GetWithBidderByID(ctx context.Context, id uuid.UUID) (*BidWithBidder, error)
	// FindByBidderAndAuction returns zero, one, or - when upstream data
	// predates the uniqueness guarantee - many bids for the pair.
	FindByBidderAndAuction(ctx context.Context, tx pgx.Tx, bidderID, auctionID uuid.UUID) ([]*Bid, error)
	Insert(ctx context.Context, tx pgx.Tx, bid *Bid) error
	Update(ctx context.Context, tx pgx.Tx, bid *Bid) error
	DeleteByBidderAndAuction(ctx context.Context, tx pgx.Tx, bidderID, auctionID uuid.UUID) error
	ListActiveByAuction(ctx context.Context, tx pgx.Tx, auctionID uuid.UUID) ([]*BidWithBidder, error)
	ListByAuction(ctx context.Context, auctionID uuid.UUID) ([]*BidWithBidder, error)
}

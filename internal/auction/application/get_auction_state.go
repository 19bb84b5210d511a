package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/charitybid/auctionengine/internal/auction/domain"
)

// AuctionStateDTO is the output DTO for exposing auction state to the API.
// Highest-bid fields are pointers: absent means the auction has no bids yet,
// never a zero value masquerading as one.
type AuctionStateDTO struct {
	AuctionID          uuid.UUID        `json:"auction_id"`
	Title              string           `json:"title"`
	StartingPrice      decimal.Decimal  `json:"starting_price"`
	CurrentPrice       decimal.Decimal  `json:"current_price"`
	Status             string           `json:"status"`
	StartedAt          *time.Time       `json:"started_at,omitempty"`
	OpenUntil          *time.Time       `json:"open_until,omitempty"`
	HighestBidPrice    *decimal.Decimal `json:"highest_bid_price,omitempty"`
	HighestBidderEmail *string          `json:"highest_bidder_email,omitempty"`
	HighestBidPlacedAt *time.Time       `json:"highest_bid_placed_at,omitempty"`
}

// GetAuctionStateUseCase projects the current state of an auction.
type GetAuctionStateUseCase struct {
	auctionRepo domain.AuctionRepository
	bidRepo     domain.BidRepository
}

func NewGetAuctionStateUseCase(auctionRepo domain.AuctionRepository, bidRepo domain.BidRepository) *GetAuctionStateUseCase {
	return &GetAuctionStateUseCase{
		auctionRepo: auctionRepo,
		bidRepo:     bidRepo,
	}
}

func (uc *GetAuctionStateUseCase) Execute(ctx context.Context, auctionID uuid.UUID) (*AuctionStateDTO, error) {
	auction, err := uc.auctionRepo.GetByID(ctx, auctionID)
	if err != nil {
		return nil, err
	}

	dto := &AuctionStateDTO{
		AuctionID:     auction.ID,
		Title:         auction.Title,
		StartingPrice: auction.StartingPrice,
		CurrentPrice:  auction.CurrentPrice,
		Status:        string(auction.Status),
		StartedAt:     auction.StartedAt,
		OpenUntil:     auction.OpenUntil,
	}

	if auction.HighestBidID != nil {
		highest, err := uc.bidRepo.GetWithBidderByID(ctx, *auction.HighestBidID)
		if err != nil {
			return nil, err
		}
		price := highest.Price
		email := highest.BidderEmail
		placedAt := highest.PlacedAt
		dto.HighestBidPrice = &price
		dto.HighestBidderEmail = &email
		dto.HighestBidPlacedAt = &placedAt
	}

	return dto, nil
}

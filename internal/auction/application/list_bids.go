package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/charitybid/auctionengine/internal/auction/domain"
)

// BidDTO is the output DTO for a single bid in an auction's bid list.
type BidDTO struct {
	BidID      uuid.UUID       `json:"bid_id"`
	BidderID   uuid.UUID       `json:"bidder_id"`
	BidderName string          `json:"bidder_name"`
	Price      decimal.Decimal `json:"price"`
	Status     string          `json:"status"`
	PlacedAt   time.Time       `json:"placed_at"`
}

// ListBidsUseCase returns every bid on an auction, newest first.
type ListBidsUseCase struct {
	auctionRepo domain.AuctionRepository
	bidRepo     domain.BidRepository
}

func NewListBidsUseCase(auctionRepo domain.AuctionRepository, bidRepo domain.BidRepository) *ListBidsUseCase {
	return &ListBidsUseCase{
		auctionRepo: auctionRepo,
		bidRepo:     bidRepo,
	}
}

func (uc *ListBidsUseCase) Execute(ctx context.Context, auctionID uuid.UUID) ([]BidDTO, error) {
	if _, err := uc.auctionRepo.GetByID(ctx, auctionID); err != nil {
		return nil, err
	}

	bids, err := uc.bidRepo.ListByAuction(ctx, auctionID)
	if err != nil {
		return nil, err
	}

	dtos := make([]BidDTO, 0, len(bids))
	for _, b := range bids {
		dtos = append(dtos, BidDTO{
			BidID:      b.ID,
			BidderID:   b.BidderID,
			BidderName: b.BidderName,
			Price:      b.Price,
			Status:     string(b.Status),
			PlacedAt:   b.PlacedAt,
		})
	}

	return dtos, nil
}

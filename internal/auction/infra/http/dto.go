package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/charitybid/auctionengine/internal/auction/domain"
)

type placeBidRequest struct {
	BidderID uuid.UUID       `json:"bidder_id"`
	Price    decimal.Decimal `json:"price"`
}

type setBidStatusRequest struct {
	Active *bool `json:"active"`
}

type startAuctionRequest struct {
	OpenUntil       *time.Time `json:"open_until"`
	DurationDays    *int       `json:"duration_days"`
	DurationHours   *int       `json:"duration_hours"`
	DurationMinutes *int       `json:"duration_minutes"`
}

type bidResponse struct {
	BidID     uuid.UUID       `json:"bid_id"`
	AuctionID uuid.UUID       `json:"auction_id"`
	BidderID  uuid.UUID       `json:"bidder_id"`
	Price     decimal.Decimal `json:"price"`
	Status    string          `json:"status"`
	PlacedAt  time.Time       `json:"placed_at"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newBidResponse(bid *domain.Bid) bidResponse {
	return bidResponse{
		BidID:     bid.ID,
		AuctionID: bid.AuctionID,
		BidderID:  bid.BidderID,
		Price:     bid.Price,
		Status:    string(bid.Status),
		PlacedAt:  bid.PlacedAt,
	}
}

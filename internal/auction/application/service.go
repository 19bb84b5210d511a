package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/charitybid/auctionengine/internal/auction/domain"
)

// AuctionService defines application interface layer of auction module
// exposes uses cases to external layer, aka infra
type AuctionService interface {
	// PlaceBid handles logic when a bidder places a bid on an auction,
	// receives a command with necessary data and returns the stored bid or an error
	PlaceBid(ctx context.Context, cmd PlaceBidDTO) (*domain.Bid, error)
	// SetBidActive activates or rejects a bid (moderation)
	SetBidActive(ctx context.Context, bidID uuid.UUID, active bool) (*domain.Bid, error)
	StartAuction(ctx context.Context, cmd StartAuctionDTO) (*domain.Auction, error)
	GetAuctionState(ctx context.Context, auctionID uuid.UUID) (*AuctionStateDTO, error)
	ListBids(ctx context.Context, auctionID uuid.UUID) ([]BidDTO, error)
}

// concrete implementation of AuctionService (struct)
type auctionService struct {
	placeBidUC        *PlaceBidUseCase
	moderateBidUC     *ModerateBidUseCase
	startAuctionUC    *StartAuctionUseCase
	getAuctionStateUC *GetAuctionStateUseCase
	listBidsUC        *ListBidsUseCase
}

func NewAuctionService(
	placeBidUC *PlaceBidUseCase,
	moderateBidUC *ModerateBidUseCase,
	startAuctionUC *StartAuctionUseCase,
	getAuctionStateUC *GetAuctionStateUseCase,
	listBidsUC *ListBidsUseCase,
) AuctionService {
	return &auctionService{
		placeBidUC:        placeBidUC,
		moderateBidUC:     moderateBidUC,
		startAuctionUC:    startAuctionUC,
		getAuctionStateUC: getAuctionStateUC,
		listBidsUC:        listBidsUC,
	}
}

// PlaceBid implements AuctionService.
func (as *auctionService) PlaceBid(ctx context.Context, cmd PlaceBidDTO) (*domain.Bid, error) {
	return as.placeBidUC.Execute(ctx, cmd)
}

// SetBidActive implements AuctionService.
func (as *auctionService) SetBidActive(ctx context.Context, bidID uuid.UUID, active bool) (*domain.Bid, error) {
	return as.moderateBidUC.Execute(ctx, bidID, active)
}

// StartAuction implements AuctionService.
func (as *auctionService) StartAuction(ctx context.Context, cmd StartAuctionDTO) (*domain.Auction, error) {
	return as.startAuctionUC.Execute(ctx, cmd)
}

// GetAuctionState implements AuctionService.
func (as *auctionService) GetAuctionState(ctx context.Context, auctionID uuid.UUID) (*AuctionStateDTO, error) {
	return as.getAuctionStateUC.Execute(ctx, auctionID)
}

// ListBids implements AuctionService.
func (as *auctionService) ListBids(ctx context.Context, auctionID uuid.UUID) ([]BidDTO, error) {
	return as.listBidsUC.Execute(ctx, auctionID)
}

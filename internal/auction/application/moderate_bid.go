package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/charitybid/auctionengine/internal/auction/domain"
	"github.com/charitybid/auctionengine/internal/shared/db"
)

// ModerateBidUseCase toggles a bid between active and rejected. This is the
// moderation operation; it never touches price, placed_at, or closed_at.
type ModerateBidUseCase struct {
	txm     db.TxManager
	bidRepo domain.BidRepository
}

func NewModerateBidUseCase(txm db.TxManager, bidRepo domain.BidRepository) *ModerateBidUseCase {
	return &ModerateBidUseCase{
		txm:     txm,
		bidRepo: bidRepo,
	}
}

func (uc *ModerateBidUseCase) Execute(ctx context.Context, bidID uuid.UUID, active bool) (*domain.Bid, error) {
	var moderated *domain.Bid
	err := uc.txm.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		bid, err := uc.bidRepo.GetByIDForUpdate(ctx, tx, bidID)
		if err != nil {
			return fmt.Errorf("moderate bid use case: failed to get bid %s: %w", bidID, err)
		}

		if err := bid.SetActive(active); err != nil {
			log.Warn("ModerateBidUseCase: transition rejected",
				zap.String("bidID", bidID.String()),
				zap.String("status", string(bid.Status)),
				zap.Bool("active", active),
				zap.Error(err),
			)
			return err
		}

		if err := uc.bidRepo.Update(ctx, tx, bid); err != nil {
			return fmt.Errorf("moderate bid use case: failed to update bid %s: %w", bidID, err)
		}

		moderated = bid
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("ModerateBidUseCase: bid status changed",
		zap.String("bidID", bidID.String()),
		zap.String("newStatus", string(moderated.Status)),
	)
	return moderated, nil
}

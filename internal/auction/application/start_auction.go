package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/charitybid/auctionengine/internal/auction/domain"
	historydomain "github.com/charitybid/auctionengine/internal/history/domain"
	"github.com/charitybid/auctionengine/internal/shared/db"
)

// StartAuctionDTO carries the deadline for opening an auction: either an
// absolute OpenUntil or a duration split into days/hours/minutes, never both.
type StartAuctionDTO struct {
	AuctionID       uuid.UUID
	OpenUntil       *time.Time
	DurationDays    *int
	DurationHours   *int
	DurationMinutes *int
}

// StartAuctionUseCase opens a preview auction and records the event.
type StartAuctionUseCase struct {
	txm         db.TxManager
	auctionRepo domain.AuctionRepository
	historyRepo historydomain.HistoryRepository
	now         func() time.Time
}

func NewStartAuctionUseCase(txm db.TxManager, auctionRepo domain.AuctionRepository, historyRepo historydomain.HistoryRepository) *StartAuctionUseCase {
	return &StartAuctionUseCase{
		txm:         txm,
		auctionRepo: auctionRepo,
		historyRepo: historyRepo,
		now:         time.Now,
	}
}

func (uc *StartAuctionUseCase) Execute(ctx context.Context, cmd StartAuctionDTO) (*domain.Auction, error) {
	now := uc.now()
	openUntil, err := resolveDeadline(cmd, now)
	if err != nil {
		return nil, err
	}

	var started *domain.Auction
	err = uc.txm.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		auction, err := uc.auctionRepo.GetByIDForUpdate(ctx, tx, cmd.AuctionID)
		if err != nil {
			return fmt.Errorf("start auction use case: failed to get auction %s: %w", cmd.AuctionID, err)
		}

		if err := auction.Open(openUntil, now); err != nil {
			return err
		}

		if err := uc.auctionRepo.Save(ctx, tx, auction); err != nil {
			return fmt.Errorf("start auction use case: failed to save auction %s: %w", auction.ID, err)
		}

		record := historydomain.NewHistoryRecord(historydomain.RecordAuctionNew, nil, auction.ID, map[string]any{
			"open_until": openUntil,
		})
		if err := uc.historyRepo.Append(ctx, tx, record); err != nil {
			return fmt.Errorf("start auction use case: failed to append history: %w", err)
		}

		started = auction
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("StartAuctionUseCase: auction opened",
		zap.String("auctionID", started.ID.String()),
		zap.Time("openUntil", openUntil),
	)
	return started, nil
}

// resolveDeadline turns the deadline fields into a single open-until instant.
// The absolute field and the duration fields are mutually exclusive, one style
// must be present, and the result must lie in the future.
func resolveDeadline(cmd StartAuctionDTO, now time.Time) (time.Time, error) {
	hasDuration := cmd.DurationDays != nil || cmd.DurationHours != nil || cmd.DurationMinutes != nil

	if cmd.OpenUntil == nil && !hasDuration {
		return time.Time{}, domain.ErrMissingDeadline
	}
	if cmd.OpenUntil != nil && hasDuration {
		return time.Time{}, domain.ErrConflictingDeadline
	}

	if cmd.OpenUntil != nil {
		if !cmd.OpenUntil.After(now) {
			return time.Time{}, domain.ErrDeadlineInPast
		}
		return *cmd.OpenUntil, nil
	}

	days, hours, minutes := 0, 0, 0
	if cmd.DurationDays != nil {
		days = *cmd.DurationDays
	}
	if cmd.DurationHours != nil {
		hours = *cmd.DurationHours
	}
	if cmd.DurationMinutes != nil {
		minutes = *cmd.DurationMinutes
	}
	if days < 0 || hours < 0 || minutes < 0 {
		return time.Time{}, domain.ErrNegativeDuration
	}
	if days == 0 && hours == 0 && minutes == 0 {
		return time.Time{}, domain.ErrZeroDuration
	}

	d := time.Duration(days)*24*time.Hour +
		time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute
	return now.Add(d), nil
}

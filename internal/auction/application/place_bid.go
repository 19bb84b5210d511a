package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/charitybid/auctionengine/internal/auction/domain"
	bidderdomain "github.com/charitybid/auctionengine/internal/bidder/domain"
	historydomain "github.com/charitybid/auctionengine/internal/history/domain"
	notifdomain "github.com/charitybid/auctionengine/internal/notification/domain"
	"github.com/charitybid/auctionengine/internal/shared/db"
	"github.com/charitybid/auctionengine/internal/shared/logger"
)

var log = logger.GetLogger()

// PlaceBidDTO is the input for the PlaceBid use case.
type PlaceBidDTO struct {
	AuctionID uuid.UUID
	BidderID  uuid.UUID
	Price     decimal.Decimal
}

// PlaceBidUseCase accepts a bid and performs the whole acceptance unit
// atomically: upsert the caller's bid, append history, notify the other active
// bidders, and queue one summary email on the outbox.
type PlaceBidUseCase struct {
	txm         db.TxManager
	auctionRepo domain.AuctionRepository
	bidRepo     domain.BidRepository
	bidderRepo  bidderdomain.BidderRepository
	historyRepo historydomain.HistoryRepository
	notifRepo   notifdomain.NotificationRepository
	outboxRepo  notifdomain.OutboxRepository
	now         func() time.Time
}

func NewPlaceBidUseCase(
	txm db.TxManager,
	auctionRepo domain.AuctionRepository,
	bidRepo domain.BidRepository,
	bidderRepo bidderdomain.BidderRepository,
	historyRepo historydomain.HistoryRepository,
	notifRepo notifdomain.NotificationRepository,
	outboxRepo notifdomain.OutboxRepository,
) *PlaceBidUseCase {
	return &PlaceBidUseCase{
		txm:         txm,
		auctionRepo: auctionRepo,
		bidRepo:     bidRepo,
		bidderRepo:  bidderRepo,
		historyRepo: historyRepo,
		notifRepo:   notifRepo,
		outboxRepo:  outboxRepo,
		now:         time.Now,
	}
}

func (uc *PlaceBidUseCase) Execute(ctx context.Context, cmd PlaceBidDTO) (*domain.Bid, error) {
	log.Info("Executing PlaceBidUseCase",
		zap.String("auctionID", cmd.AuctionID.String()),
		zap.String("bidderID", cmd.BidderID.String()),
		zap.String("price", cmd.Price.String()),
	)

	if cmd.Price.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidPrice
	}

	bidder, err := uc.bidderRepo.GetByID(ctx, cmd.BidderID)
	if err != nil {
		return nil, fmt.Errorf("place bid use case: failed to get bidder %s: %w", cmd.BidderID, err)
	}

	var placed *domain.Bid
	err = uc.txm.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		// Lock the auction row so validation and the writes below see one
		// consistent snapshot even under concurrent submissions.
		auction, err := uc.auctionRepo.GetByIDForUpdate(ctx, tx, cmd.AuctionID)
		if err != nil {
			if !errors.Is(err, domain.ErrAuctionNotFound) {
				log.Error("PlaceBidUseCase: failed to get auction",
					zap.String("auctionID", cmd.AuctionID.String()),
					zap.Error(err),
				)
			}
			return fmt.Errorf("place bid use case: failed to get auction %s: %w", cmd.AuctionID, err)
		}

		now := uc.now()
		if err := domain.ValidateBid(cmd.Price, auction, now); err != nil {
			log.Warn("PlaceBidUseCase: bid rejected",
				zap.String("auctionID", cmd.AuctionID.String()),
				zap.String("bidderID", cmd.BidderID.String()),
				zap.String("price", cmd.Price.String()),
				zap.Error(err),
			)
			return err
		}

		bid, err := uc.upsertBid(ctx, tx, auction, cmd, now)
		if err != nil {
			return err
		}

		auction.RecordBid(bid)
		if err := uc.auctionRepo.Save(ctx, tx, auction); err != nil {
			return fmt.Errorf("place bid use case: failed to save auction %s: %w", auction.ID, err)
		}

		bidderID := bidder.ID
		record := historydomain.NewHistoryRecord(historydomain.RecordUserBid, &bidderID, auction.ID, map[string]any{
			"price":     cmd.Price,
			"placed_at": now,
		})
		if err := uc.historyRepo.Append(ctx, tx, record); err != nil {
			return fmt.Errorf("place bid use case: failed to append history: %w", err)
		}

		if err := uc.fanOut(ctx, tx, auction, cmd, now); err != nil {
			return err
		}

		placed = bid
		return nil
	})
	if err != nil {
		return nil, err
	}

	return placed, nil
}

// upsertBid creates the bid on first submission and mutates it in place on
// repeats. More than one existing bid for the pair means the data predates the
// uniqueness guarantee; those rows are dropped and replaced with a fresh bid.
func (uc *PlaceBidUseCase) upsertBid(ctx context.Context, tx pgx.Tx, auction *domain.Auction, cmd PlaceBidDTO, now time.Time) (*domain.Bid, error) {
	existing, err := uc.bidRepo.FindByBidderAndAuction(ctx, tx, cmd.BidderID, auction.ID)
	if err != nil {
		return nil, fmt.Errorf("place bid use case: failed to find existing bids: %w", err)
	}

	switch len(existing) {
	case 0:
		bid := domain.NewBid(uuid.New(), auction.ID, cmd.BidderID, cmd.Price, now)
		if err := uc.bidRepo.Insert(ctx, tx, bid); err != nil {
			return nil, fmt.Errorf("place bid use case: failed to insert bid: %w", err)
		}
		return bid, nil
	case 1:
		bid := existing[0]
		bid.Rebid(cmd.Price, now)
		if err := uc.bidRepo.Update(ctx, tx, bid); err != nil {
			return nil, fmt.Errorf("place bid use case: failed to update bid %s: %w", bid.ID, err)
		}
		return bid, nil
	default:
		log.Warn("PlaceBidUseCase: repairing duplicate bids",
			zap.String("auctionID", auction.ID.String()),
			zap.String("bidderID", cmd.BidderID.String()),
			zap.Int("count", len(existing)),
		)
		if err := uc.bidRepo.DeleteByBidderAndAuction(ctx, tx, cmd.BidderID, auction.ID); err != nil {
			return nil, fmt.Errorf("place bid use case: failed to delete duplicate bids: %w", err)
		}
		bid := domain.NewBid(uuid.New(), auction.ID, cmd.BidderID, cmd.Price, now)
		if err := uc.bidRepo.Insert(ctx, tx, bid); err != nil {
			return nil, fmt.Errorf("place bid use case: failed to insert bid: %w", err)
		}
		return bid, nil
	}
}

// fanOut notifies every other bidder with an active bid on the auction and
// queues a single summary email for all of them on the outbox.
func (uc *PlaceBidUseCase) fanOut(ctx context.Context, tx pgx.Tx, auction *domain.Auction, cmd PlaceBidDTO, now time.Time) error {
	active, err := uc.bidRepo.ListActiveByAuction(ctx, tx, auction.ID)
	if err != nil {
		return fmt.Errorf("place bid use case: failed to list active bids: %w", err)
	}

	var emails []string
	for _, other := range active {
		if other.BidderID == cmd.BidderID {
			continue
		}
		n := notifdomain.NewNotification(other.BidderID, auction.ID, notifdomain.KindAuctionNewBid, map[string]any{
			"price":     cmd.Price,
			"placed_at": now,
		})
		if err := uc.notifRepo.Insert(ctx, tx, n); err != nil {
			return fmt.Errorf("place bid use case: failed to create notification: %w", err)
		}
		emails = append(emails, other.BidderEmail)
	}

	if len(emails) == 0 {
		return nil
	}

	msg := notifdomain.NewEmailMessage(
		"New bid has been placed",
		fmt.Sprintf("A new bid has been placed on auction %s", auction.Title),
		emails,
	)
	if err := uc.outboxRepo.Enqueue(ctx, tx, msg); err != nil {
		return fmt.Errorf("place bid use case: failed to enqueue email: %w", err)
	}
	return nil
}

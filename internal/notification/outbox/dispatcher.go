package outbox

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/charitybid/auctionengine/internal/notification/domain"
	"github.com/charitybid/auctionengine/internal/shared/db"
	"github.com/charitybid/auctionengine/internal/shared/logger"
)

var log = logger.GetLogger()

// Dispatcher drains the email outbox in the background. Each tick it works
// through up to batchSize pending messages, claiming, sending, and marking
// each one in its own transaction. Delivery is at-least-once: a crash between
// send and mark means the message is retried.
type Dispatcher struct {
	txm         db.TxManager
	outboxRepo  domain.OutboxRepository
	sender      domain.EmailSender
	interval    time.Duration
	batchSize   int
	maxAttempts int
}

func NewDispatcher(txm db.TxManager, outboxRepo domain.OutboxRepository, sender domain.EmailSender, interval time.Duration, batchSize, maxAttempts int) *Dispatcher {
	return &Dispatcher{
		txm:         txm,
		outboxRepo:  outboxRepo,
		sender:      sender,
		interval:    interval,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
	}
}

// Run blocks until ctx is cancelled, dispatching one batch per tick.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	log.Info("outbox dispatcher started",
		zap.Duration("interval", d.interval),
		zap.Int("batchSize", d.batchSize),
	)

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox dispatcher stopped")
			return
		case <-ticker.C:
			if err := d.DispatchBatch(ctx); err != nil {
				log.Error("outbox dispatch batch failed", zap.Error(err))
			}
		}
	}
}

// DispatchBatch delivers up to batchSize pending messages, one transaction
// per message so a row lock is never held across more than one provider call.
func (d *Dispatcher) DispatchBatch(ctx context.Context) error {
	for i := 0; i < d.batchSize; i++ {
		drained, err := d.dispatchOne(ctx)
		if err != nil {
			return err
		}
		if drained {
			return nil
		}
	}
	return nil
}

// dispatchOne claims, sends, and marks a single message inside one
// transaction. Returns drained=true when no pending message is left.
func (d *Dispatcher) dispatchOne(ctx context.Context) (drained bool, err error) {
	err = d.txm.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		msgs, err := d.outboxRepo.ClaimPending(ctx, tx, 1)
		if err != nil {
			return err
		}
		if len(msgs) == 0 {
			drained = true
			return nil
		}
		msg := msgs[0]

		if sendErr := d.sender.Send(ctx, msg.Subject, msg.Body, msg.Recipients); sendErr != nil {
			final := msg.Attempts+1 >= d.maxAttempts
			log.Warn("outbox message delivery failed",
				zap.String("messageID", msg.ID.String()),
				zap.Int("attempt", msg.Attempts+1),
				zap.Bool("final", final),
				zap.Error(sendErr),
			)
			return d.outboxRepo.MarkFailed(ctx, tx, msg.ID, sendErr.Error(), final)
		}

		if err := d.outboxRepo.MarkSent(ctx, tx, msg.ID); err != nil {
			return err
		}
		log.Info("outbox message sent",
			zap.String("messageID", msg.ID.String()),
			zap.Int("recipients", len(msg.Recipients)),
		)
		return nil
	})
	return drained, err
}

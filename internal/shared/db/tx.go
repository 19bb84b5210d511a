package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/charitybid/auctionengine/internal/shared/logger"
)

var log = logger.GetLogger()

// TxManager runs a function inside a database transaction. Use cases depend on
// this interface instead of the pool directly so they can be tested with mocks.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

// PgxTxManager implements TxManager on top of a pgx connection pool.
type PgxTxManager struct {
	pool *pgxpool.Pool
}

func NewPgxTxManager(pool *pgxpool.Pool) *PgxTxManager {
	return &PgxTxManager{pool: pool}
}

// WithinTx begins a transaction, runs fn, and commits. Any error from fn, or a
// panic, rolls the transaction back before being propagated.
func (m *PgxTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) (err error) {
	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("tx manager: failed to begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error("TxManager: recovered from panic during transaction", zap.Any("panic", r))
			_ = tx.Rollback(ctx)
			panic(r)
		}
		if err != nil {
			log.Warn("TxManager: rolling back transaction due to error", zap.Error(err))
			_ = tx.Rollback(ctx)
			return
		}
		if commitErr := tx.Commit(ctx); commitErr != nil {
			log.Error("TxManager: failed to commit transaction", zap.Error(commitErr))
			err = fmt.Errorf("tx manager: failed to commit transaction: %w", commitErr)
		}
	}()

	err = fn(ctx, tx)
	return err
}

package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/charitybid/auctionengine/internal/history/domain"
)

// HistoryRepository implements domain.HistoryRepository for PostgreSQL.
type HistoryRepository struct {
	pool *pgxpool.Pool
}

func NewHistoryRepository(pool *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{pool: pool}
}

// Append inserts a history record inside the caller's transaction so the
// audit entry commits atomically with the event it records.
func (r *HistoryRepository) Append(ctx context.Context, tx pgx.Tx, record *domain.HistoryRecord) error {
	query := `
        INSERT INTO history_records (id, kind, bidder_id, auction_id, payload)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := tx.Exec(ctx, query,
		record.ID,
		record.Kind,
		record.BidderID,
		record.AuctionID,
		record.Payload,
	)
	return err
}

func (r *HistoryRepository) ListByAuction(ctx context.Context, auctionID uuid.UUID) ([]*domain.HistoryRecord, error) {
	query := `
        SELECT id, kind, bidder_id, auction_id, payload, created_at
        FROM history_records
        WHERE auction_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.pool.Query(ctx, query, auctionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.HistoryRecord
	for rows.Next() {
		record := &domain.HistoryRecord{}
		err := rows.Scan(
			&record.ID,
			&record.Kind,
			&record.BidderID,
			&record.AuctionID,
			&record.Payload,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

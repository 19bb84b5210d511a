package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/charitybid/auctionengine/internal/notification/domain"
)

// NotificationRepository implements domain.NotificationRepository for PostgreSQL.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

// Insert writes a notification inside the caller's transaction so the fan-out
// commits atomically with the bid that caused it.
func (r *NotificationRepository) Insert(ctx context.Context, tx pgx.Tx, n *domain.Notification) error {
	query := `
        INSERT INTO notifications (id, bidder_id, auction_id, kind, payload)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := tx.Exec(ctx, query,
		n.ID,
		n.BidderID,
		n.AuctionID,
		n.Kind,
		n.Payload,
	)
	return err
}

func (r *NotificationRepository) ListByBidder(ctx context.Context, bidderID uuid.UUID) ([]*domain.Notification, error) {
	query := `
        SELECT id, bidder_id, auction_id, kind, payload, read, created_at
        FROM notifications
        WHERE bidder_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.pool.Query(ctx, query, bidderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*domain.Notification
	for rows.Next() {
		n := &domain.Notification{}
		err := rows.Scan(
			&n.ID,
			&n.BidderID,
			&n.AuctionID,
			&n.Kind,
			&n.Payload,
			&n.Read,
			&n.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}

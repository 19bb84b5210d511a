package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/charitybid/auctionengine/internal/notification/domain"
)

// OutboxRepository implements domain.OutboxRepository for PostgreSQL.
type OutboxRepository struct {
	pool *pgxpool.Pool
}

func NewOutboxRepository(pool *pgxpool.Pool) *OutboxRepository {
	return &OutboxRepository{pool: pool}
}

// Enqueue writes an outbox row inside the caller's transaction. The message
// becomes visible to the dispatcher only if the surrounding tx commits.
func (r *OutboxRepository) Enqueue(ctx context.Context, tx pgx.Tx, msg *domain.EmailMessage) error {
	query := `
        INSERT INTO email_outbox (id, subject, body, recipients, status)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := tx.Exec(ctx, query,
		msg.ID,
		msg.Subject,
		msg.Body,
		msg.Recipients,
		msg.Status,
	)
	return err
}

// ClaimPending locks up to limit pending messages, oldest first. SKIP LOCKED
// keeps concurrent dispatchers from claiming the same rows.
func (r *OutboxRepository) ClaimPending(ctx context.Context, tx pgx.Tx, limit int) ([]*domain.EmailMessage, error) {
	query := `
        SELECT id, subject, body, recipients, status, attempts, last_error, created_at, sent_at
        FROM email_outbox
        WHERE status = $1
        ORDER BY created_at ASC
        LIMIT $2
        FOR UPDATE SKIP LOCKED
    `
	rows, err := tx.Query(ctx, query, domain.OutboxPending, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []*domain.EmailMessage
	for rows.Next() {
		msg := &domain.EmailMessage{}
		err := rows.Scan(
			&msg.ID,
			&msg.Subject,
			&msg.Body,
			&msg.Recipients,
			&msg.Status,
			&msg.Attempts,
			&msg.LastError,
			&msg.CreatedAt,
			&msg.SentAt,
		)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return msgs, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	query := `
        UPDATE email_outbox
        SET status = $2, attempts = attempts + 1, sent_at = NOW(), last_error = NULL
        WHERE id = $1
    `
	_, err := tx.Exec(ctx, query, id, domain.OutboxSent)
	return err
}

// MarkFailed records a delivery failure. With final=true the message moves to
// the failed state and is no longer retried; otherwise it stays pending.
func (r *OutboxRepository) MarkFailed(ctx context.Context, tx pgx.Tx, id uuid.UUID, sendErr string, final bool) error {
	status := domain.OutboxPending
	if final {
		status = domain.OutboxFailed
	}
	query := `
        UPDATE email_outbox
        SET status = $2, attempts = attempts + 1, last_error = $3
        WHERE id = $1
    `
	_, err := tx.Exec(ctx, query, id, status, sendErr)
	return err
}

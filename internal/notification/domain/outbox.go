package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OutboxStatus is the delivery state of a queued email.
type OutboxStatus string

const (
	OutboxPending OutboxStatus = "pending"
	OutboxSent    OutboxStatus = "sent"
	OutboxFailed  OutboxStatus = "failed"
)

// EmailMessage is a transactional-outbox row: the intent to send an email is
// committed together with the writes that caused it, and a background
// dispatcher delivers it after commit with at-least-once semantics.
type EmailMessage struct {
	ID         uuid.UUID
	Subject    string
	Body       string
	Recipients []string
	Status     OutboxStatus
	Attempts   int
	LastError  *string
	CreatedAt  time.Time
	SentAt     *time.Time
}

func NewEmailMessage(subject, body string, recipients []string) *EmailMessage {
	return &EmailMessage{
		ID:         uuid.New(),
		Subject:    subject,
		Body:       body,
		Recipients: recipients,
		Status:     OutboxPending,
	}
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, tx pgx.Tx, msg *EmailMessage) error
	// ClaimPending locks up to limit pending messages with SKIP LOCKED so
	// concurrent dispatchers never pick the same row.
	ClaimPending(ctx context.Context, tx pgx.Tx, limit int) ([]*EmailMessage, error)
	MarkSent(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
	MarkFailed(ctx context.Context, tx pgx.Tx, id uuid.UUID, sendErr string, final bool) error
}

// EmailSender delivers one email to a list of recipients.
type EmailSender interface {
	Send(ctx context.Context, subject, body string, recipients []string) error
}

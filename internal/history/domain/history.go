package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RecordKind tags a history record with the event it captures.
type RecordKind string

const (
	RecordAuctionNew RecordKind = "auction_new"
	RecordUserBid    RecordKind = "user_bid"
)

// HistoryRecord is an append-only audit entry. Records are never mutated or
// deleted once written.
type HistoryRecord struct {
	ID        uuid.UUID
	Kind      RecordKind
	BidderID  *uuid.UUID
	AuctionID uuid.UUID
	Payload   map[string]any
	CreatedAt time.Time
}

func NewHistoryRecord(kind RecordKind, bidderID *uuid.UUID, auctionID uuid.UUID, payload map[string]any) *HistoryRecord {
	return &HistoryRecord{
		ID:        uuid.New(),
		Kind:      kind,
		BidderID:  bidderID,
		AuctionID: auctionID,
		Payload:   payload,
	}
}

type HistoryRepository interface {
	Append(ctx context.Context, tx pgx.Tx, record *HistoryRecord) error
	ListByAuction(ctx context.Context, auctionID uuid.UUID) ([]*HistoryRecord, error)
}

package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// NotificationKind tags a notification with the event that produced it.
type NotificationKind string

const (
	// KindAuctionNewBid tells a bidder that someone outbid them on an auction
	// they have an active bid on.
	KindAuctionNewBid NotificationKind = "auction_new_bid"
)

// Notification is a per-recipient record created once per outbid bidder per
// new bid event.
type Notification struct {
	ID        uuid.UUID
	BidderID  uuid.UUID
	AuctionID uuid.UUID
	Kind      NotificationKind
	Payload   map[string]any
	Read      bool
	CreatedAt time.Time
}

func NewNotification(bidderID, auctionID uuid.UUID, kind NotificationKind, payload map[string]any) *Notification {
	return &Notification{
		ID:        uuid.New(),
		BidderID:  bidderID,
		AuctionID: auctionID,
		Kind:      kind,
		Payload:   payload,
	}
}

type NotificationRepository interface {
	Insert(ctx context.Context, tx pgx.Tx, n *Notification) error
	ListByBidder(ctx context.Context, bidderID uuid.UUID) ([]*Notification, error)
}

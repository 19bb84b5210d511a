package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrBidderNotFound = errors.New("bidder not found")

// Bidder is a registered auction participant.
type Bidder struct {
	ID          uuid.UUID
	Email       string
	DisplayName string
	CreatedAt   time.Time
}

type BidderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Bidder, error)
}

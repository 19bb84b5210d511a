package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/charitybid/auctionengine/internal/bidder/domain"
)

// BidderRepository implements domain.BidderRepository for PostgreSQL.
type BidderRepository struct {
	db *pgxpool.Pool
}

// NewBidderRepository creates a new instance of BidderRepository.
func NewBidderRepository(db *pgxpool.Pool) *BidderRepository {
	return &BidderRepository{db: db}
}

// GetByID fetches a bidder by ID.
func (r *BidderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Bidder, error) {
	query := `SELECT id, email, display_name, created_at FROM bidders WHERE id = $1`

	bidder := &domain.Bidder{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&bidder.ID,
		&bidder.Email,
		&bidder.DisplayName,
		&bidder.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBidderNotFound
		}
		return nil, err
	}

	return bidder, nil
}

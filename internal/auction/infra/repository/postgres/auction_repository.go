package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/charitybid/auctionengine/internal/auction/domain"
)

// AuctionRepository implements domain.AuctionRepository interface
type AuctionRepository struct {
	pool *pgxpool.Pool
}

// NewAuctionRepository creates a new instance of AuctionRepository
func NewAuctionRepository(pool *pgxpool.Pool) *AuctionRepository {
	return &AuctionRepository{pool: pool}
}

const auctionColumns = `id, title, starting_price, current_price, status, started_at, open_until, ended_at, highest_bid_id, created_at, updated_at`

func scanAuction(row pgx.Row) (*domain.Auction, error) {
	auction := &domain.Auction{}
	err := row.Scan(
		&auction.ID,
		&auction.Title,
		&auction.StartingPrice,
		&auction.CurrentPrice,
		&auction.Status,
		&auction.StartedAt,
		&auction.OpenUntil,
		&auction.EndedAt,
		&auction.HighestBidID,
		&auction.CreatedAt,
		&auction.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAuctionNotFound
		}
		return nil, err
	}
	return auction, nil
}

// GetByID retrieves an auction by its ID, without locking.
func (r *AuctionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Auction, error) {
	query := `
        SELECT ` + auctionColumns + `
        FROM auctions
        WHERE id = $1
    `
	return scanAuction(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate retrieves an auction by its ID while holding a row lock,
// so a concurrent bid on the same auction waits until this tx finishes.
func (r *AuctionRepository) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Auction, error) {
	query := `
        SELECT ` + auctionColumns + `
        FROM auctions
        WHERE id = $1
        FOR UPDATE
    `
	return scanAuction(tx.QueryRow(ctx, query, id))
}

// Save stores or updates an auction.
// Uses INSERT ON CONFLICT to handle both creation and update.
func (r *AuctionRepository) Save(ctx context.Context, tx pgx.Tx, auction *domain.Auction) error {
	query := `
        INSERT INTO auctions (id, title, starting_price, current_price, status, started_at, open_until, ended_at, highest_bid_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (id) DO UPDATE
        SET
            title = EXCLUDED.title,
            starting_price = EXCLUDED.starting_price,
            current_price = EXCLUDED.current_price,
            status = EXCLUDED.status,
            started_at = EXCLUDED.started_at,
            open_until = EXCLUDED.open_until,
            ended_at = EXCLUDED.ended_at,
            highest_bid_id = EXCLUDED.highest_bid_id,
            updated_at = NOW();
    `
	_, err := tx.Exec(ctx, query,
		auction.ID,
		auction.Title,
		auction.StartingPrice,
		auction.CurrentPrice,
		auction.Status,
		auction.StartedAt,
		auction.OpenUntil,
		auction.EndedAt,
		auction.HighestBidID,
	)
	return err
}

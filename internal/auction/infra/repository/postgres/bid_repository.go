package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/charitybid/auctionengine/internal/auction/domain"
)

// BidRepository implements domain.BidRepository interface
type BidRepository struct {
	pool *pgxpool.Pool
}

// NewBidRepository creates new instance of BidRepository.
func NewBidRepository(pool *pgxpool.Pool) *BidRepository {
	return &BidRepository{pool: pool}
}

const bidColumns = `id, auction_id, bidder_id, price, status, placed_at, closed_at, created_at, updated_at`

func scanBid(row pgx.Row) (*domain.Bid, error) {
	bid := &domain.Bid{}
	err := row.Scan(
		&bid.ID,
		&bid.AuctionID,
		&bid.BidderID,
		&bid.Price,
		&bid.Status,
		&bid.PlacedAt,
		&bid.ClosedAt,
		&bid.CreatedAt,
		&bid.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBidNotFound
		}
		return nil, err
	}
	return bid, nil
}

// GetByIDForUpdate retrieves a bid by its ID while holding a row lock, so
// moderation and re-bids on the same row serialize.
func (r *BidRepository) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Bid, error) {
	query := `
        SELECT ` + bidColumns + `
        FROM bids
        WHERE id = $1
        FOR UPDATE
    `
	return scanBid(tx.QueryRow(ctx, query, id))
}

// GetWithBidderByID retrieves a bid joined with its bidder's contact data.
func (r *BidRepository) GetWithBidderByID(ctx context.Context, id uuid.UUID) (*domain.BidWithBidder, error) {
	query := `
        SELECT b.id, b.auction_id, b.bidder_id, b.price, b.status, b.placed_at, b.closed_at, b.created_at, b.updated_at,
               u.email, u.display_name
        FROM bids b
        JOIN bidders u ON u.id = b.bidder_id
        WHERE b.id = $1
    `
	bid := &domain.BidWithBidder{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&bid.ID,
		&bid.AuctionID,
		&bid.BidderID,
		&bid.Price,
		&bid.Status,
		&bid.PlacedAt,
		&bid.ClosedAt,
		&bid.CreatedAt,
		&bid.UpdatedAt,
		&bid.BidderEmail,
		&bid.BidderName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBidNotFound
		}
		return nil, err
	}
	return bid, nil
}

// FindByBidderAndAuction returns every bid a bidder holds on an auction,
// locked for update. Normally zero or one row; more means rows predate the
// uniqueness index and need repair.
func (r *BidRepository) FindByBidderAndAuction(ctx context.Context, tx pgx.Tx, bidderID, auctionID uuid.UUID) ([]*domain.Bid, error) {
	query := `
        SELECT ` + bidColumns + `
        FROM bids
        WHERE bidder_id = $1 AND auction_id = $2
        ORDER BY placed_at ASC
        FOR UPDATE
    `
	rows, err := tx.Query(ctx, query, bidderID, auctionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bids []*domain.Bid
	for rows.Next() {
		bid, err := scanBid(rows)
		if err != nil {
			return nil, err
		}
		bids = append(bids, bid)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bids, nil
}

func (r *BidRepository) Insert(ctx context.Context, tx pgx.Tx, bid *domain.Bid) error {
	query := `
        INSERT INTO bids (id, auction_id, bidder_id, price, status, placed_at, closed_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := tx.Exec(ctx, query,
		bid.ID,
		bid.AuctionID,
		bid.BidderID,
		bid.Price,
		bid.Status,
		bid.PlacedAt,
		bid.ClosedAt,
	)
	return err
}

func (r *BidRepository) Update(ctx context.Context, tx pgx.Tx, bid *domain.Bid) error {
	query := `
        UPDATE bids
        SET price = $2,
            status = $3,
            placed_at = $4,
            closed_at = $5,
            updated_at = NOW()
        WHERE id = $1
    `
	tag, err := tx.Exec(ctx, query,
		bid.ID,
		bid.Price,
		bid.Status,
		bid.PlacedAt,
		bid.ClosedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBidNotFound
	}
	return nil
}

// DeleteByBidderAndAuction removes every bid a bidder holds on an auction.
// Used to repair duplicate rows before re-inserting a single fresh bid.
func (r *BidRepository) DeleteByBidderAndAuction(ctx context.Context, tx pgx.Tx, bidderID, auctionID uuid.UUID) error {
	query := `
        DELETE FROM bids
        WHERE bidder_id = $1 AND auction_id = $2
    `
	_, err := tx.Exec(ctx, query, bidderID, auctionID)
	return err
}

// ListActiveByAuction returns the active bids on an auction together with
// bidder contact data, inside the caller's transaction. This feeds the
// notification fan-out, so it must see the row inserted earlier in the tx.
func (r *BidRepository) ListActiveByAuction(ctx context.Context, tx pgx.Tx, auctionID uuid.UUID) ([]*domain.BidWithBidder, error) {
	query := `
        SELECT b.id, b.auction_id, b.bidder_id, b.price, b.status, b.placed_at, b.closed_at, b.created_at, b.updated_at,
               u.email, u.display_name
        FROM bids b
        JOIN bidders u ON u.id = b.bidder_id
        WHERE b.auction_id = $1 AND b.status = $2
    `
	rows, err := tx.Query(ctx, query, auctionID, domain.BidStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBidsWithBidder(rows)
}

// ListByAuction returns every bid on an auction, newest first.
func (r *BidRepository) ListByAuction(ctx context.Context, auctionID uuid.UUID) ([]*domain.BidWithBidder, error) {
	query := `
        SELECT b.id, b.auction_id, b.bidder_id, b.price, b.status, b.placed_at, b.closed_at, b.created_at, b.updated_at,
               u.email, u.display_name
        FROM bids b
        JOIN bidders u ON u.id = b.bidder_id
        WHERE b.auction_id = $1
        ORDER BY b.placed_at DESC
    `
	rows, err := r.pool.Query(ctx, query, auctionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBidsWithBidder(rows)
}

func collectBidsWithBidder(rows pgx.Rows) ([]*domain.BidWithBidder, error) {
	var bids []*domain.BidWithBidder
	for rows.Next() {
		bid := &domain.BidWithBidder{}
		err := rows.Scan(
			&bid.ID,
			&bid.AuctionID,
			&bid.BidderID,
			&bid.Price,
			&bid.Status,
			&bid.PlacedAt,
			&bid.ClosedAt,
			&bid.CreatedAt,
			&bid.UpdatedAt,
			&bid.BidderEmail,
			&bid.BidderName,
		)
		if err != nil {
			return nil, err
		}
		bids = append(bids, bid)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bids, nil
}

package application

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/charitybid/auctionengine/internal/auction/domain"
	auctionmocks "github.com/charitybid/auctionengine/internal/auction/domain/mocks"
	bidderdomain "github.com/charitybid/auctionengine/internal/bidder/domain"
	biddermocks "github.com/charitybid/auctionengine/internal/bidder/domain/mocks"
	historydomain "github.com/charitybid/auctionengine/internal/history/domain"
	historymocks "github.com/charitybid/auctionengine/internal/history/domain/mocks"
	notifdomain "github.com/charitybid/auctionengine/internal/notification/domain"
	notifmocks "github.com/charitybid/auctionengine/internal/notification/domain/mocks"
)

// stubTxManager runs the closure directly, without a database. Repositories
// are mocked, so the nil tx is never dereferenced.
type stubTxManager struct{}

func (stubTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	return fn(ctx, nil)
}

type placeBidMocks struct {
	auctionRepo *auctionmocks.MockAuctionRepository
	bidRepo     *auctionmocks.MockBidRepository
	bidderRepo  *biddermocks.MockBidderRepository
	historyRepo *historymocks.MockHistoryRepository
	notifRepo   *notifmocks.MockNotificationRepository
	outboxRepo  *notifmocks.MockOutboxRepository
}

func newPlaceBidUseCase(t *testing.T, now time.Time) (*PlaceBidUseCase, placeBidMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := placeBidMocks{
		auctionRepo: auctionmocks.NewMockAuctionRepository(ctrl),
		bidRepo:     auctionmocks.NewMockBidRepository(ctrl),
		bidderRepo:  biddermocks.NewMockBidderRepository(ctrl),
		historyRepo: historymocks.NewMockHistoryRepository(ctrl),
		notifRepo:   notifmocks.NewMockNotificationRepository(ctrl),
		outboxRepo:  notifmocks.NewMockOutboxRepository(ctrl),
	}

	uc := NewPlaceBidUseCase(stubTxManager{}, m.auctionRepo, m.bidRepo, m.bidderRepo, m.historyRepo, m.notifRepo, m.outboxRepo)
	uc.now = func() time.Time { return now }
	return uc, m
}

func testOpenAuction(currentPrice int64, now time.Time) *domain.Auction {
	deadline := now.Add(24 * time.Hour)
	a := domain.NewAuction(uuid.New(), "Signed guitar", decimal.NewFromInt(50))
	a.CurrentPrice = decimal.NewFromInt(currentPrice)
	a.Status = domain.StatusOpen
	a.OpenUntil = &deadline
	return a
}

func testBidder() *bidderdomain.Bidder {
	return &bidderdomain.Bidder{
		ID:          uuid.New(),
		Email:       "bidder@example.com",
		DisplayName: "Bidder",
	}
}

func activeBid(auctionID, bidderID uuid.UUID, price int64, email string) *domain.BidWithBidder {
	return &domain.BidWithBidder{
		Bid: domain.Bid{
			ID:        uuid.New(),
			AuctionID: auctionID,
			BidderID:  bidderID,
			Price:     decimal.NewFromInt(price),
			Status:    domain.BidStatusActive,
		},
		BidderEmail: email,
	}
}

func TestPlaceBidUseCase_FirstBid(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	uc, m := newPlaceBidUseCase(t, now)

	bidder := testBidder()
	auction := testOpenAuction(100, now)
	price := decimal.NewFromInt(150)

	m.bidderRepo.EXPECT().GetByID(gomock.Any(), bidder.ID).Return(bidder, nil)
	m.auctionRepo.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), auction.ID).Return(auction, nil)
	m.bidRepo.EXPECT().FindByBidderAndAuction(gomock.Any(), gomock.Any(), bidder.ID, auction.ID).Return(nil, nil)
	m.bidRepo.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.auctionRepo.EXPECT().Save(gomock.Any(), gomock.Any(), auction).Return(nil)
	m.historyRepo.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, record *historydomain.HistoryRecord) error {
			require.Equal(t, historydomain.RecordUserBid, record.Kind)
			require.Equal(t, bidder.ID, *record.BidderID)
			require.Equal(t, auction.ID, record.AuctionID)
			require.Equal(t, price, record.Payload["price"])
			return nil
		})

	// the acting bidder's own active bid is in the list and must be skipped
	own := activeBid(auction.ID, bidder.ID, 150, bidder.Email)
	otherA := activeBid(auction.ID, uuid.New(), 100, "alice@example.com")
	otherB := activeBid(auction.ID, uuid.New(), 90, "bob@example.com")
	m.bidRepo.EXPECT().ListActiveByAuction(gomock.Any(), gomock.Any(), auction.ID).
		Return([]*domain.BidWithBidder{own, otherA, otherB}, nil)
	m.notifRepo.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.outboxRepo.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, msg *notifdomain.EmailMessage) error {
			require.Equal(t, "New bid has been placed", msg.Subject)
			require.Equal(t, "A new bid has been placed on auction Signed guitar", msg.Body)
			require.ElementsMatch(t, []string{"alice@example.com", "bob@example.com"}, msg.Recipients)
			return nil
		})

	bid, err := uc.Execute(context.Background(), PlaceBidDTO{
		AuctionID: auction.ID,
		BidderID:  bidder.ID,
		Price:     price,
	})
	require.NoError(t, err)
	require.True(t, bid.Price.Equal(price))
	require.Equal(t, domain.BidStatusActive, bid.Status)
	require.Equal(t, now, bid.PlacedAt)

	require.True(t, auction.CurrentPrice.Equal(price), "accepted bid raises the current price")
	require.Equal(t, bid.ID, *auction.HighestBidID)
}

func TestPlaceBidUseCase_RepeatBidMutatesInPlace(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	uc, m := newPlaceBidUseCase(t, now)

	bidder := testBidder()
	auction := testOpenAuction(100, now)

	existing := domain.NewBid(uuid.New(), auction.ID, bidder.ID, decimal.NewFromInt(100), now.Add(-time.Hour))
	existing.Status = domain.BidStatusRejected

	m.bidderRepo.EXPECT().GetByID(gomock.Any(), bidder.ID).Return(bidder, nil)
	m.auctionRepo.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), auction.ID).Return(auction, nil)
	m.bidRepo.EXPECT().FindByBidderAndAuction(gomock.Any(), gomock.Any(), bidder.ID, auction.ID).
		Return([]*domain.Bid{existing}, nil)
	m.bidRepo.EXPECT().Update(gomock.Any(), gomock.Any(), existing).Return(nil)
	m.auctionRepo.EXPECT().Save(gomock.Any(), gomock.Any(), auction).Return(nil)
	m.historyRepo.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.bidRepo.EXPECT().ListActiveByAuction(gomock.Any(), gomock.Any(), auction.ID).Return(nil, nil)

	bid, err := uc.Execute(context.Background(), PlaceBidDTO{
		AuctionID: auction.ID,
		BidderID:  bidder.ID,
		Price:     decimal.NewFromInt(150),
	})
	require.NoError(t, err)
	require.Equal(t, existing.ID, bid.ID, "repeat bid keeps the same row")
	require.True(t, bid.Price.Equal(decimal.NewFromInt(150)))
	require.Equal(t, domain.BidStatusActive, bid.Status, "re-bid reactivates a rejected bid")
}

func TestPlaceBidUseCase_RepairsDuplicateBids(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	uc, m := newPlaceBidUseCase(t, now)

	bidder := testBidder()
	auction := testOpenAuction(100, now)

	duplicates := []*domain.Bid{
		domain.NewBid(uuid.New(), auction.ID, bidder.ID, decimal.NewFromInt(100), now.Add(-2*time.Hour)),
		domain.NewBid(uuid.New(), auction.ID, bidder.ID, decimal.NewFromInt(110), now.Add(-time.Hour)),
	}

	m.bidderRepo.EXPECT().GetByID(gomock.Any(), bidder.ID).Return(bidder, nil)
	m.auctionRepo.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), auction.ID).Return(auction, nil)
	m.bidRepo.EXPECT().FindByBidderAndAuction(gomock.Any(), gomock.Any(), bidder.ID, auction.ID).Return(duplicates, nil)
	m.bidRepo.EXPECT().DeleteByBidderAndAuction(gomock.Any(), gomock.Any(), bidder.ID, auction.ID).Return(nil)
	m.bidRepo.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.auctionRepo.EXPECT().Save(gomock.Any(), gomock.Any(), auction).Return(nil)
	m.historyRepo.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.bidRepo.EXPECT().ListActiveByAuction(gomock.Any(), gomock.Any(), auction.ID).Return(nil, nil)

	bid, err := uc.Execute(context.Background(), PlaceBidDTO{
		AuctionID: auction.ID,
		BidderID:  bidder.ID,
		Price:     decimal.NewFromInt(150),
	})
	require.NoError(t, err)
	require.NotEqual(t, duplicates[0].ID, bid.ID)
	require.NotEqual(t, duplicates[1].ID, bid.ID)
	require.True(t, bid.Price.Equal(decimal.NewFromInt(150)))
}

func TestPlaceBidUseCase_ValidationFailures(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	tests := []struct {
		name        string
		auction     func() *domain.Auction
		price       decimal.Decimal
		expectedErr error
	}{
		{
			name:        "price_not_above_current",
			auction:     func() *domain.Auction { return testOpenAuction(200, now) },
			price:       decimal.NewFromInt(150),
			expectedErr: domain.ErrPriceTooLow,
		},
		{
			name: "auction_not_open",
			auction: func() *domain.Auction {
				a := testOpenAuction(100, now)
				a.Status = domain.StatusPreview
				return a
			},
			price:       decimal.NewFromInt(150),
			expectedErr: domain.ErrAuctionNotOpen,
		},
		{
			name: "auction_past_deadline",
			auction: func() *domain.Auction {
				a := testOpenAuction(100, now)
				past := now.Add(-time.Minute)
				a.OpenUntil = &past
				return a
			},
			price:       decimal.NewFromInt(150),
			expectedErr: domain.ErrAuctionClosing,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc, m := newPlaceBidUseCase(t, now)
			bidder := testBidder()
			auction := tt.auction()

			m.bidderRepo.EXPECT().GetByID(gomock.Any(), bidder.ID).Return(bidder, nil)
			m.auctionRepo.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), auction.ID).Return(auction, nil)

			_, err := uc.Execute(context.Background(), PlaceBidDTO{
				AuctionID: auction.ID,
				BidderID:  bidder.ID,
				Price:     tt.price,
			})
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestPlaceBidUseCase_NonPositivePrice(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	uc, _ := newPlaceBidUseCase(t, now)

	_, err := uc.Execute(context.Background(), PlaceBidDTO{
		AuctionID: uuid.New(),
		BidderID:  uuid.New(),
		Price:     decimal.Zero,
	})
	require.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestPlaceBidUseCase_UnknownBidder(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	uc, m := newPlaceBidUseCase(t, now)

	bidderID := uuid.New()
	m.bidderRepo.EXPECT().GetByID(gomock.Any(), bidderID).Return(nil, bidderdomain.ErrBidderNotFound)

	_, err := uc.Execute(context.Background(), PlaceBidDTO{
		AuctionID: uuid.New(),
		BidderID:  bidderID,
		Price:     decimal.NewFromInt(150),
	})
	require.ErrorIs(t, err, bidderdomain.ErrBidderNotFound)
}

func TestPlaceBidUseCase_SoleBidderGetsNoEmail(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	uc, m := newPlaceBidUseCase(t, now)

	bidder := testBidder()
	auction := testOpenAuction(100, now)

	m.bidderRepo.EXPECT().GetByID(gomock.Any(), bidder.ID).Return(bidder, nil)
	m.auctionRepo.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), auction.ID).Return(auction, nil)
	m.bidRepo.EXPECT().FindByBidderAndAuction(gomock.Any(), gomock.Any(), bidder.ID, auction.ID).Return(nil, nil)
	m.bidRepo.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.auctionRepo.EXPECT().Save(gomock.Any(), gomock.Any(), auction).Return(nil)
	m.historyRepo.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	// only the acting bidder has an active bid: no notifications, no email
	own := activeBid(auction.ID, bidder.ID, 150, bidder.Email)
	m.bidRepo.EXPECT().ListActiveByAuction(gomock.Any(), gomock.Any(), auction.ID).
		Return([]*domain.BidWithBidder{own}, nil)

	_, err := uc.Execute(context.Background(), PlaceBidDTO{
		AuctionID: auction.ID,
		BidderID:  bidder.ID,
		Price:     decimal.NewFromInt(150),
	})
	require.NoError(t, err)
}

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/charitybid/auctionengine/internal/auction/application"
	"github.com/charitybid/auctionengine/internal/auction/domain"
)

// stubService lets each test pin the behavior of a single operation.
type stubService struct {
	placeBid        func(ctx context.Context, cmd application.PlaceBidDTO) (*domain.Bid, error)
	setBidActive    func(ctx context.Context, bidID uuid.UUID, active bool) (*domain.Bid, error)
	startAuction    func(ctx context.Context, cmd application.StartAuctionDTO) (*domain.Auction, error)
	getAuctionState func(ctx context.Context, auctionID uuid.UUID) (*application.AuctionStateDTO, error)
	listBids        func(ctx context.Context, auctionID uuid.UUID) ([]application.BidDTO, error)
}

func (s *stubService) PlaceBid(ctx context.Context, cmd application.PlaceBidDTO) (*domain.Bid, error) {
	return s.placeBid(ctx, cmd)
}

func (s *stubService) SetBidActive(ctx context.Context, bidID uuid.UUID, active bool) (*domain.Bid, error) {
	return s.setBidActive(ctx, bidID, active)
}

func (s *stubService) StartAuction(ctx context.Context, cmd application.StartAuctionDTO) (*domain.Auction, error) {
	return s.startAuction(ctx, cmd)
}

func (s *stubService) GetAuctionState(ctx context.Context, auctionID uuid.UUID) (*application.AuctionStateDTO, error) {
	return s.getAuctionState(ctx, auctionID)
}

func (s *stubService) ListBids(ctx context.Context, auctionID uuid.UUID) ([]application.BidDTO, error) {
	return s.listBids(ctx, auctionID)
}

func newTestApp(service application.AuctionService) *fiber.App {
	app := fiber.New()
	NewHandler(service).RegisterRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, method, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestHandler_PlaceBid(t *testing.T) {
	t.Parallel()

	auctionID := uuid.New()
	bidderID := uuid.New()
	now := time.Now().UTC()

	service := &stubService{
		placeBid: func(_ context.Context, cmd application.PlaceBidDTO) (*domain.Bid, error) {
			require.Equal(t, auctionID, cmd.AuctionID)
			require.Equal(t, bidderID, cmd.BidderID)
			require.True(t, cmd.Price.Equal(decimal.NewFromInt(150)))
			return domain.NewBid(uuid.New(), auctionID, bidderID, cmd.Price, now), nil
		},
	}
	app := newTestApp(service)

	resp := postJSON(t, app, http.MethodPost, fmt.Sprintf("/auctions/%s/bids", auctionID), fiber.Map{
		"bidder_id": bidderID,
		"price":     "150",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body bidResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, auctionID, body.AuctionID)
	require.Equal(t, bidderID, body.BidderID)
	require.Equal(t, "active", body.Status)
	require.True(t, body.Price.Equal(decimal.NewFromInt(150)))
}

func TestHandler_PlaceBidErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"auction_not_found", domain.ErrAuctionNotFound, http.StatusNotFound},
		{"price_too_low", domain.ErrPriceTooLow, http.StatusConflict},
		{"auction_not_open", domain.ErrAuctionNotOpen, http.StatusConflict},
		{"auction_closing", domain.ErrAuctionClosing, http.StatusConflict},
		{"invalid_price", domain.ErrInvalidPrice, http.StatusBadRequest},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			service := &stubService{
				placeBid: func(context.Context, application.PlaceBidDTO) (*domain.Bid, error) {
					return nil, tt.err
				},
			}
			app := newTestApp(service)

			resp := postJSON(t, app, http.MethodPost, fmt.Sprintf("/auctions/%s/bids", uuid.New()), fiber.Map{
				"bidder_id": uuid.New(),
				"price":     "150",
			})
			require.Equal(t, tt.expectedStatus, resp.StatusCode)

			var body errorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.err.Error(), body.Error)
		})
	}
}

func TestHandler_PlaceBidBadRequest(t *testing.T) {
	t.Parallel()

	app := newTestApp(&stubService{})

	t.Run("invalid_auction_id", func(t *testing.T) {
		resp := postJSON(t, app, http.MethodPost, "/auctions/not-a-uuid/bids", fiber.Map{
			"bidder_id": uuid.New(),
			"price":     "150",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing_bidder_id", func(t *testing.T) {
		resp := postJSON(t, app, http.MethodPost, fmt.Sprintf("/auctions/%s/bids", uuid.New()), fiber.Map{
			"price": "150",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandler_SetBidStatus(t *testing.T) {
	t.Parallel()

	bidID := uuid.New()
	service := &stubService{
		setBidActive: func(_ context.Context, id uuid.UUID, active bool) (*domain.Bid, error) {
			require.Equal(t, bidID, id)
			require.False(t, active)
			bid := domain.NewBid(bidID, uuid.New(), uuid.New(), decimal.NewFromInt(100), time.Now())
			bid.Status = domain.BidStatusRejected
			return bid, nil
		},
	}
	app := newTestApp(service)

	resp := postJSON(t, app, http.MethodPut, fmt.Sprintf("/bids/%s/status", bidID), fiber.Map{
		"active": false,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body bidResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "rejected", body.Status)
}

func TestHandler_SetBidStatusRequiresActiveField(t *testing.T) {
	t.Parallel()

	app := newTestApp(&stubService{})

	resp := postJSON(t, app, http.MethodPut, fmt.Sprintf("/bids/%s/status", uuid.New()), fiber.Map{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_SetBidStatusNoChange(t *testing.T) {
	t.Parallel()

	service := &stubService{
		setBidActive: func(context.Context, uuid.UUID, bool) (*domain.Bid, error) {
			return nil, domain.ErrNoStatusChange
		},
	}
	app := newTestApp(service)

	resp := postJSON(t, app, http.MethodPut, fmt.Sprintf("/bids/%s/status", uuid.New()), fiber.Map{
		"active": false,
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestHandler_StartAuction(t *testing.T) {
	t.Parallel()

	auctionID := uuid.New()
	deadline := time.Now().Add(48 * time.Hour).UTC()

	service := &stubService{
		startAuction: func(_ context.Context, cmd application.StartAuctionDTO) (*domain.Auction, error) {
			require.Equal(t, auctionID, cmd.AuctionID)
			require.NotNil(t, cmd.DurationDays)
			require.Equal(t, 2, *cmd.DurationDays)
			a := domain.NewAuction(auctionID, "Signed guitar", decimal.NewFromInt(100))
			require.NoError(t, a.Open(deadline, time.Now()))
			return a, nil
		},
	}
	app := newTestApp(service)

	resp := postJSON(t, app, http.MethodPost, fmt.Sprintf("/auctions/%s/start", auctionID), fiber.Map{
		"duration_days": 2,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_GetAuctionState(t *testing.T) {
	t.Parallel()

	auctionID := uuid.New()
	service := &stubService{
		getAuctionState: func(_ context.Context, id uuid.UUID) (*application.AuctionStateDTO, error) {
			require.Equal(t, auctionID, id)
			return &application.AuctionStateDTO{
				AuctionID:     auctionID,
				Title:         "Signed guitar",
				StartingPrice: decimal.NewFromInt(100),
				CurrentPrice:  decimal.NewFromInt(150),
				Status:        "open",
			}, nil
		},
	}
	app := newTestApp(service)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/auctions/%s", auctionID), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body application.AuctionStateDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, auctionID, body.AuctionID)
	require.True(t, body.CurrentPrice.Equal(decimal.NewFromInt(150)))
	require.Nil(t, body.HighestBidPrice)
}

type ctxKey string

func TestHandler_PropagatesUserContext(t *testing.T) {
	t.Parallel()

	const key ctxKey = "request-id"

	service := &stubService{
		getAuctionState: func(ctx context.Context, id uuid.UUID) (*application.AuctionStateDTO, error) {
			require.Equal(t, "req-42", ctx.Value(key), "the service must see the request's user context")
			return &application.AuctionStateDTO{AuctionID: id}, nil
		},
	}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.SetUserContext(context.WithValue(c.UserContext(), key, "req-42"))
		return c.Next()
	})
	NewHandler(service).RegisterRoutes(app)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/auctions/%s", uuid.New()), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_ListBids(t *testing.T) {
	t.Parallel()

	auctionID := uuid.New()
	service := &stubService{
		listBids: func(_ context.Context, id uuid.UUID) ([]application.BidDTO, error) {
			require.Equal(t, auctionID, id)
			return []application.BidDTO{
				{BidID: uuid.New(), BidderID: uuid.New(), BidderName: "Alice", Price: decimal.NewFromInt(150), Status: "active"},
				{BidID: uuid.New(), BidderID: uuid.New(), BidderName: "Bob", Price: decimal.NewFromInt(100), Status: "rejected"},
			}, nil
		},
	}
	app := newTestApp(service)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/auctions/%s/bids", auctionID), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body []application.BidDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 2)
	require.Equal(t, "Alice", body[0].BidderName)
}

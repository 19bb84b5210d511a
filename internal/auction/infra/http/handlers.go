package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/charitybid/auctionengine/internal/auction/application"
	"github.com/charitybid/auctionengine/internal/auction/domain"
	bidderdomain "github.com/charitybid/auctionengine/internal/bidder/domain"
	"github.com/charitybid/auctionengine/internal/shared/logger"
)

var log = logger.GetLogger()

// Handler exposes the auction service over HTTP.
type Handler struct {
	service application.AuctionService
}

func NewHandler(service application.AuctionService) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the auction routes on the fiber app.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/auctions/:id/bids", h.PlaceBid)
	app.Post("/auctions/:id/start", h.StartAuction)
	app.Get("/auctions/:id", h.GetAuctionState)
	app.Get("/auctions/:id/bids", h.ListBids)
	app.Put("/bids/:id/status", h.SetBidStatus)
}

// PlaceBid handles POST /auctions/:id/bids
func (h *Handler) PlaceBid(c *fiber.Ctx) error {
	auctionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid auction id"})
	}

	var req placeBidRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request payload"})
	}
	if req.BidderID == uuid.Nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "bidder_id is required"})
	}

	bid, err := h.service.PlaceBid(c.UserContext(), application.PlaceBidDTO{
		AuctionID: auctionID,
		BidderID:  req.BidderID,
		Price:     req.Price,
	})
	if err != nil {
		log.Warn("PlaceBid handler: bid rejected",
			zap.String("auctionID", auctionID.String()),
			zap.String("bidderID", req.BidderID.String()),
			zap.Error(err),
		)
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(newBidResponse(bid))
}

// SetBidStatus handles PUT /bids/:id/status
func (h *Handler) SetBidStatus(c *fiber.Ctx) error {
	bidID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid bid id"})
	}

	var req setBidStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request payload"})
	}
	if req.Active == nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "active is required"})
	}

	bid, err := h.service.SetBidActive(c.UserContext(), bidID, *req.Active)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(newBidResponse(bid))
}

// StartAuction handles POST /auctions/:id/start
func (h *Handler) StartAuction(c *fiber.Ctx) error {
	auctionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid auction id"})
	}

	var req startAuctionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request payload"})
	}

	auction, err := h.service.StartAuction(c.UserContext(), application.StartAuctionDTO{
		AuctionID:       auctionID,
		OpenUntil:       req.OpenUntil,
		DurationDays:    req.DurationDays,
		DurationHours:   req.DurationHours,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"auction_id": auction.ID,
		"status":     string(auction.Status),
		"open_until": auction.OpenUntil,
	})
}

// GetAuctionState handles GET /auctions/:id
func (h *Handler) GetAuctionState(c *fiber.Ctx) error {
	auctionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid auction id"})
	}

	state, err := h.service.GetAuctionState(c.UserContext(), auctionID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(state)
}

// ListBids handles GET /auctions/:id/bids
func (h *Handler) ListBids(c *fiber.Ctx) error {
	auctionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid auction id"})
	}

	bids, err := h.service.ListBids(c.UserContext(), auctionID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(bids)
}

// writeError maps domain errors to HTTP status codes.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrAuctionNotFound),
		errors.Is(err, domain.ErrBidNotFound),
		errors.Is(err, bidderdomain.ErrBidderNotFound):
		return c.Status(fiber.StatusNotFound).JSON(errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrPriceTooLow),
		errors.Is(err, domain.ErrAuctionNotOpen),
		errors.Is(err, domain.ErrAuctionClosing),
		errors.Is(err, domain.ErrNoStatusChange),
		errors.Is(err, domain.ErrInvalidBidStatus),
		errors.Is(err, domain.ErrAuctionAlreadyStarted):
		return c.Status(fiber.StatusConflict).JSON(errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrMissingDeadline),
		errors.Is(err, domain.ErrConflictingDeadline),
		errors.Is(err, domain.ErrDeadlineInPast),
		errors.Is(err, domain.ErrZeroDuration),
		errors.Is(err, domain.ErrNegativeDuration):
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: err.Error()})
	default:
		log.Error("unhandled error in HTTP handler", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "internal server error"})
	}
}

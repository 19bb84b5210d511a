package domain

import "errors"

var (
	ErrAuctionNotFound       = errors.New("auction not found")
	ErrBidNotFound           = errors.New("bid not found")
	ErrPriceTooLow           = errors.New("price should be higher than current price of this auction")
	ErrAuctionNotOpen        = errors.New("bids can be placed to open auctions only")
	ErrAuctionClosing        = errors.New("this auction is now waiting to close")
	ErrInvalidPrice          = errors.New("bid price must be greater than zero")
	ErrInvalidBidStatus      = errors.New("invalid current status of this bid")
	ErrNoStatusChange        = errors.New("invalid status change")
	ErrAuctionAlreadyStarted = errors.New("auction has already been started")
	ErrMissingDeadline       = errors.New("open_until field or at least one of duration fields should be provided")
	ErrConflictingDeadline   = errors.New("open_until field and duration fields should not be provided at the same time")
	ErrDeadlineInPast        = errors.New("open_until field cannot be past or present datetime")
	ErrZeroDuration          = errors.New("at least one of duration fields should be larger than zero")
	ErrNegativeDuration      = errors.New("duration fields cannot be negative")
)

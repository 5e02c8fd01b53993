package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrNoBids          = errors.New("no bids found for auction")
	ErrProxyNotFound   = errors.New("proxy bid not found")
	ErrVersionConflict = errors.New("auction was modified concurrently")
)

// business logic errors, one per reject reason so callers can match them
var (
	ErrAuctionNotActive   = errors.New("auction is not active")
	ErrAuctionNotStarted  = errors.New("auction has not started yet")
	ErrAuctionEnded       = errors.New("auction has ended")
	ErrSelfBid            = errors.New("seller cannot bid on own auction")
	ErrBidderRejected     = errors.New("bidder has been rejected by the seller")
	ErrBidderUnrated      = errors.New("auction does not allow bidders without ratings")
	ErrBidderRatingTooLow = errors.New("bidder rating below required threshold")
	ErrBidBelowMinimum    = errors.New("max amount below minimum winning price")
	ErrInvalidBid         = errors.New("invalid bid")
	ErrNotSeller          = errors.New("only the seller may perform this operation")
	ErrCommitContention   = errors.New("auction is under heavy contention, retry")
)

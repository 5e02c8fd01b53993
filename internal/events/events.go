package events

import (
	"context"
	"time"
)

// Event types emitted by the engine and the sweeper.
const (
	TypeAuctionUpdated = "auction.updated" // index-sync event, emitted after every commit
	TypeBidPlaced      = "bid.placed"
	TypeAuctionSold    = "auction.sold"
	TypeAuctionExpired = "auction.expired"
	TypeBidderRejected = "bidder.rejected"
)

// Notification kinds sent through the Notifier.
const (
	NotifyBidPlacedSeller = "bid.placed.seller"
	NotifyBidPlacedBidder = "bid.placed.bidder"
	NotifyOutbid          = "bid.outbid"
	NotifySoldSeller      = "auction.sold.seller"
	NotifySoldWinner      = "auction.sold.winner"
	NotifyExpiredSeller   = "auction.expired.seller"
	NotifyBidderRejected  = "bidder.rejected"
)

// Event is a domain event published after a successful commit. Payload keys
// are flat JSON-friendly values.
type Event struct {
	Type       string         `json:"type"`
	AuctionID  string         `json:"auction_id"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload,omitempty"`
}

// Publisher delivers domain events to downstream subscribers (search index,
// audit). Emission is post-commit: a publish failure never rolls back the
// committed auction state.
type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}

// Notifier delivers outbound user notifications, fire-and-forget.
type Notifier interface {
	Notify(ctx context.Context, kind string, payload map[string]any)
}

// OrderInitiator starts the checkout flow when an auction transitions to sold.
type OrderInitiator interface {
	OnAuctionClosed(ctx context.Context, auctionID, winnerID string, finalPrice int64) error
}

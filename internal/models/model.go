package models

import "time"

// AuctionStatus is the lifecycle state of an auction. Transitions only move
// forward: active -> sold | expired | cancelled.
type AuctionStatus string

const (
	StatusActive    AuctionStatus = "active"
	StatusSold      AuctionStatus = "sold"
	StatusExpired   AuctionStatus = "expired"
	StatusCancelled AuctionStatus = "cancelled"
)

// Auction is the commercial state of one listing. Amounts are integral
// currency units. Version is the optimistic-lock counter checked on commit.
type Auction struct {
	AuctionID           string        `json:"auction_id" gorm:"primaryKey;column:auction_id"`
	SellerID            string        `json:"seller_id" gorm:"index"`
	CategoryID          string        `json:"category_id"`
	StartPrice          int64         `json:"start_price"`
	StepPrice           int64         `json:"step_price"`
	BuyNowPrice         int64         `json:"buy_now_price"` // 0 = not offered
	CurrentPrice        int64         `json:"current_price"`
	CurrentWinnerID     string        `json:"current_winner_id"` // empty = no winner
	StartTime           time.Time     `json:"start_time"`
	EndTime             time.Time     `json:"end_time" gorm:"index"`
	Status              AuctionStatus `json:"status" gorm:"index"`
	BidCount            int           `json:"bid_count"`
	AutoExtend          bool          `json:"auto_extend"`
	AllowUnratedBidders bool          `json:"allow_unrated_bidders"`
	RejectedBidders     []string      `json:"rejected_bidders" gorm:"serializer:json"`
	Version             int64         `json:"-"`
}

// HasBuyNow reports whether the seller offered an instant purchase price.
func (a Auction) HasBuyNow() bool {
	return a.BuyNowPrice > 0
}

// IsRejected reports whether the seller has disqualified the given bidder.
func (a Auction) IsRejected(bidderID string) bool {
	for _, id := range a.RejectedBidders {
		if id == bidderID {
			return true
		}
	}
	return false
}

// Bid is one ledger entry. Entries are append-only; only Rejected is ever
// flipped, by the rejection cascade.
type Bid struct {
	BidID     string    `json:"bid_id" gorm:"primaryKey;column:bid_id"`
	AuctionID string    `json:"auction_id" gorm:"index:idx_bids_auction_amount;index:idx_bids_auction_time"`
	BidderID  string    `json:"bidder_id" gorm:"index"`
	Amount    int64     `json:"amount" gorm:"index:idx_bids_auction_amount"`
	Rejected  bool      `json:"rejected"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_bids_auction_time"`
}

// ProxyAuthorization is a bidder's standing maximum for one auction.
// Exactly one row exists per (auction, bidder) pair; edits keep the original
// CreatedAt so the earliest authorization still wins equal-max ties.
type ProxyAuthorization struct {
	ProxyID   string    `json:"proxy_id" gorm:"primaryKey;column:proxy_id"`
	AuctionID string    `json:"auction_id" gorm:"uniqueIndex:idx_proxy_auction_bidder"`
	BidderID  string    `json:"bidder_id" gorm:"uniqueIndex:idx_proxy_auction_bidder"`
	MaxAmount int64     `json:"max_amount"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

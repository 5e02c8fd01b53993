package helpers

// Request/Response DTOs
type SubmitProxyBidRequest struct {
	BidderID  string `json:"bidder_id" binding:"required"`
	MaxAmount int64  `json:"max_amount" binding:"required,gt=0"`
}

type UpdateProxyBidRequest struct {
	MaxAmount int64 `json:"max_amount" binding:"required,gt=0"`
}

type RejectBidderRequest struct {
	BidderID string `json:"bidder_id" binding:"required"`
	SellerID string `json:"seller_id" binding:"required"`
}

type BidOutcomeResponse struct {
	AuctionID       string `json:"auction_id"`
	CurrentPrice    int64  `json:"current_price"`
	CurrentWinnerID string `json:"current_winner_id"`
	BidCount        int    `json:"bid_count"`
	EndTime         string `json:"end_time"`
	Status          string `json:"status"`
}

type RejectOutcomeResponse struct {
	RejectedBidderID string `json:"rejected_bidder_id"`
	NewPrice         int64  `json:"new_price"`
	NewWinnerID      string `json:"new_winner_id"`
}

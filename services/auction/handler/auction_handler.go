package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	auction "auction-engine/internal/auctionService"
	"auction-engine/services/auction/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	SubmitProxyBid(ctx context.Context, auctionID, bidderID string, maxAmount int64) (auction.BidOutcome, error)
	UpdateProxyBid(ctx context.Context, auctionID, bidderID string, newMaxAmount int64) (auction.BidOutcome, error)
	CancelProxyBid(ctx context.Context, auctionID, bidderID string) error
	GetMyProxyBid(ctx context.Context, auctionID, bidderID string) (auction.ProxyBidStatus, error)
	RejectBidder(ctx context.Context, auctionID, bidderID, sellerID string) (auction.RejectOutcome, error)
	GetPublicBidHistory(ctx context.Context, auctionID string) (auction.PublicBidHistory, error)
	GetSellerBidHistory(ctx context.Context, auctionID, sellerID string) ([]auction.SellerBidEntry, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// SubmitProxyBidHandler handles POST /auctions/:auction_id/proxy-bids
func (h *AuctionHandler) SubmitProxyBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.SubmitProxyBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitProxyBidHandler", err)
		return
	}

	outcome, err := h.service.SubmitProxyBid(c.Request.Context(), auctionID, req.BidderID, req.MaxAmount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("SubmitProxyBidHandler: failed to place proxy bid", map[string]any{
			"handler":    "SubmitProxyBidHandler",
			"auction_id": auctionID,
			"bidder_id":  req.BidderID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, outcomeResponse(outcome), "proxy bid placed successfully")
	helpers.LogSuccess("SubmitProxyBidHandler", "proxy bid placed successfully", map[string]any{
		"auction_id":    auctionID,
		"bidder_id":     req.BidderID,
		"current_price": outcome.CurrentPrice,
		"bid_count":     outcome.BidCount,
	})
}

// UpdateProxyBidHandler handles PUT /auctions/:auction_id/proxy-bids/:bidder_id
func (h *AuctionHandler) UpdateProxyBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bidderID := c.Param("bidder_id")

	var req helpers.UpdateProxyBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateProxyBidHandler", err)
		return
	}

	outcome, err := h.service.UpdateProxyBid(c.Request.Context(), auctionID, bidderID, req.MaxAmount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("UpdateProxyBidHandler: failed to update proxy bid", map[string]any{
			"auction_id": auctionID,
			"bidder_id":  bidderID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, outcomeResponse(outcome), "proxy bid updated successfully")
	helpers.LogSuccess("UpdateProxyBidHandler", "proxy bid updated successfully", map[string]any{
		"auction_id":    auctionID,
		"bidder_id":     bidderID,
		"current_price": outcome.CurrentPrice,
	})
}

// CancelProxyBidHandler handles DELETE /auctions/:auction_id/proxy-bids/:bidder_id
func (h *AuctionHandler) CancelProxyBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bidderID := c.Param("bidder_id")

	if err := h.service.CancelProxyBid(c.Request.Context(), auctionID, bidderID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CancelProxyBidHandler: failed to cancel proxy bid", map[string]any{
			"auction_id": auctionID,
			"bidder_id":  bidderID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "proxy bid cancelled successfully")
	helpers.LogSuccess("CancelProxyBidHandler", "proxy bid cancelled successfully", map[string]any{
		"auction_id": auctionID,
		"bidder_id":  bidderID,
	})
}

// GetMyProxyBidHandler handles GET /auctions/:auction_id/proxy-bids/:bidder_id
func (h *AuctionHandler) GetMyProxyBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bidderID := c.Param("bidder_id")

	status, err := h.service.GetMyProxyBid(c.Request.Context(), auctionID, bidderID)
	if err != nil {
		httpStatus, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, httpStatus, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetMyProxyBidHandler: failed to load proxy bid", map[string]any{
			"auction_id": auctionID,
			"bidder_id":  bidderID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, status, "proxy bid retrieved successfully")
}

// RejectBidderHandler handles POST /auctions/:auction_id/rejections
func (h *AuctionHandler) RejectBidderHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.RejectBidderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RejectBidderHandler", err)
		return
	}

	outcome, err := h.service.RejectBidder(c.Request.Context(), auctionID, req.BidderID, req.SellerID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("RejectBidderHandler: failed to reject bidder", map[string]any{
			"auction_id": auctionID,
			"bidder_id":  req.BidderID,
			"seller_id":  req.SellerID,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.RejectOutcomeResponse{
		RejectedBidderID: outcome.RejectedBidderID,
		NewPrice:         outcome.NewPrice,
		NewWinnerID:      outcome.NewWinnerID,
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bidder rejected successfully")
	helpers.LogSuccess("RejectBidderHandler", "bidder rejected successfully", map[string]any{
		"auction_id": auctionID,
		"bidder_id":  req.BidderID,
		"new_price":  outcome.NewPrice,
	})
}

// GetPublicBidHistoryHandler handles GET /auctions/:auction_id/bids
func (h *AuctionHandler) GetPublicBidHistoryHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	history, err := h.service.GetPublicBidHistory(c.Request.Context(), auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetPublicBidHistoryHandler: error retrieving history", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	if history.Entries == nil {
		history.Entries = []auction.PublicBidEntry{}
	}

	utils.JSONResponse(c, http.StatusOK, history, "bid history retrieved successfully")
	helpers.LogSuccess("GetPublicBidHistoryHandler", "bid history retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(history.Entries),
	})
}

// GetSellerBidHistoryHandler handles GET /auctions/:auction_id/bids/seller
func (h *AuctionHandler) GetSellerBidHistoryHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	sellerID := c.Query("seller_id")

	entries, err := h.service.GetSellerBidHistory(c.Request.Context(), auctionID, sellerID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetSellerBidHistoryHandler: error retrieving history", map[string]any{
			"auction_id": auctionID,
			"seller_id":  sellerID,
			"error":      err.Error(),
		})
		return
	}

	if entries == nil {
		entries = []auction.SellerBidEntry{}
	}

	utils.JSONResponse(c, http.StatusOK, entries, "bid history retrieved successfully")
	helpers.LogSuccess("GetSellerBidHistoryHandler", "bid history retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(entries),
	})
}

func outcomeResponse(o auction.BidOutcome) helpers.BidOutcomeResponse {
	return helpers.BidOutcomeResponse{
		AuctionID:       o.AuctionID,
		CurrentPrice:    o.CurrentPrice,
		CurrentWinnerID: o.CurrentWinnerID,
		BidCount:        o.BidCount,
		EndTime:         o.EndTime.UTC().Format(time.RFC3339),
		Status:          string(o.Status),
	}
}

package integrationtests

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// SubmitProxyBidHandler Tests
func TestSubmitProxyBidAPI(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		request    any
		wantStatus int
	}{
		{
			name:       "Valid_Bid",
			url:        "/auctions/auction1/proxy-bids",
			request:    map[string]any{"bidder_id": "userA", "max_amount": 100},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "Invalid_JSON",
			url:        "/auctions/auction1/proxy-bids",
			request:    "{bidder_id: 'missing quotes', max_amount: 100}", // invalid JSON
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Unknown_Auction",
			url:        "/auctions/nope/proxy-bids",
			request:    map[string]any{"bidder_id": "userA", "max_amount": 100},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "Below_Minimum",
			url:        "/auctions/auction1/proxy-bids",
			request:    map[string]any{"bidder_id": "userA", "max_amount": 49},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "Seller_Self_Bid",
			url:        "/auctions/auction1/proxy-bids",
			request:    map[string]any{"bidder_id": "seller1", "max_amount": 100},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := SetupTestRouterWithAuctions(ActiveAuction("auction1", "seller1", 50, 5))
			resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, tt.url, tt.request)
			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				data := DataOf(t, resp)
				require.Equal(t, "auction1", data["auction_id"])
				require.Equal(t, 50.0, data["current_price"])
				require.Equal(t, "userA", data["current_winner_id"])
				require.Equal(t, 1.0, data["bid_count"])
				require.Equal(t, "active", data["status"])

				_, err := time.Parse(time.RFC3339, data["end_time"].(string))
				require.NoError(t, err)
			}
		})
	}
}

// Second-price behavior across two bidders, end to end
func TestSecondPriceFlowAPI(t *testing.T) {
	router := SetupTestRouterWithAuctions(ActiveAuction("auction1", "seller1", 50, 5))

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/auction1/proxy-bids",
		map[string]any{"bidder_id": "userB", "max_amount": 80})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, 50.0, DataOf(t, resp)["current_price"])

	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/auction1/proxy-bids",
		map[string]any{"bidder_id": "userA", "max_amount": 100})
	require.Equal(t, http.StatusCreated, w.Code)

	data := DataOf(t, resp)
	require.Equal(t, 85.0, data["current_price"])
	require.Equal(t, "userA", data["current_winner_id"])
	require.Equal(t, 2.0, data["bid_count"])
}

// UpdateProxyBidHandler / CancelProxyBidHandler / GetMyProxyBidHandler Tests
func TestProxyBidLifecycleAPI(t *testing.T) {
	router := SetupTestRouterWithAuctions(ActiveAuction("auction1", "seller1", 50, 5))

	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/auction1/proxy-bids",
		map[string]any{"bidder_id": "userA", "max_amount": 100})
	require.Equal(t, http.StatusCreated, w.Code)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/auctions/auction1/proxy-bids/userA", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := DataOf(t, resp)
	require.Equal(t, true, data["has_proxy_bid"])
	require.Equal(t, 100.0, data["max_amount"])

	resp, w = ExecuteRequestAndParse(t, router, http.MethodPut, "/auctions/auction1/proxy-bids/userA",
		map[string]any{"max_amount": 150})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "userA", DataOf(t, resp)["current_winner_id"])

	_, w = ExecuteRequestAndParse(t, router, http.MethodDelete, "/auctions/auction1/proxy-bids/userA", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/auctions/auction1/proxy-bids/userA", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, false, DataOf(t, resp)["has_proxy_bid"])

	_, w = ExecuteRequestAndParse(t, router, http.MethodDelete, "/auctions/auction1/proxy-bids/ghost", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

// RejectBidderHandler Tests
func TestRejectBidderAPI(t *testing.T) {
	router := SetupTestRouterWithAuctions(ActiveAuction("auction1", "seller1", 50, 5))

	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/auction1/proxy-bids",
		map[string]any{"bidder_id": "userB", "max_amount": 70})
	require.Equal(t, http.StatusCreated, w.Code)
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/auction1/proxy-bids",
		map[string]any{"bidder_id": "userA", "max_amount": 100})
	require.Equal(t, http.StatusCreated, w.Code)

	// Only the seller may reject
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/auction1/rejections",
		map[string]any{"bidder_id": "userA", "seller_id": "intruder"})
	require.Equal(t, http.StatusForbidden, w.Code)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/auction1/rejections",
		map[string]any{"bidder_id": "userA", "seller_id": "seller1"})
	require.Equal(t, http.StatusOK, w.Code)

	data := DataOf(t, resp)
	require.Equal(t, "userA", data["rejected_bidder_id"])
	require.Equal(t, "userB", data["new_winner_id"])
	require.Equal(t, 50.0, data["new_price"])

	// The rejected bidder is locked out
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/auction1/proxy-bids",
		map[string]any{"bidder_id": "userA", "max_amount": 200})
	require.Equal(t, http.StatusForbidden, w.Code)
}

// GetPublicBidHistoryHandler / GetSellerBidHistoryHandler Tests
func TestBidHistoryAPI(t *testing.T) {
	router := SetupTestRouterWithAuctions(ActiveAuction("auction1", "seller1", 50, 5))

	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/auction1/proxy-bids",
		map[string]any{"bidder_id": "userB", "max_amount": 70})
	require.Equal(t, http.StatusCreated, w.Code)
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/auction1/proxy-bids",
		map[string]any{"bidder_id": "userA", "max_amount": 100})
	require.Equal(t, http.StatusCreated, w.Code)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/auctions/auction1/bids", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := DataOf(t, resp)
	entries := data["entries"].([]any)
	require.Len(t, entries, 2)

	// Public names are masked, newest entry first
	first := entries[0].(map[string]any)
	require.Equal(t, "****Nguyen", first["bidder_name"])
	require.Equal(t, 75.0, first["amount"])

	// The seller view is unmasked and gated on seller identity
	_, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/auctions/auction1/bids/seller?seller_id=intruder", nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/auctions/auction1/bids/seller?seller_id=seller1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	sellerEntries := resp["data"].([]any)
	require.Len(t, sellerEntries, 2)
	top := sellerEntries[0].(map[string]any)
	require.Equal(t, "userA", top["bidder_id"])
	require.Equal(t, "Alice Nguyen", top["bidder_name"])
	require.Equal(t, false, top["rejected"])
}

package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	auction "auction-engine/internal/auctionService"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/internal/server"

	"github.com/gin-gonic/gin"
)

// fixedReputation approves every bidder; reputation rejections are covered by
// the service unit tests.
type fixedReputation struct{}

func (fixedReputation) ApprovalPercentage(context.Context, string) (float64, bool, error) {
	return 95, true, nil
}

type fixedDirectory struct{}

func (fixedDirectory) DisplayName(_ context.Context, userID string) (string, error) {
	names := map[string]string{
		"userA": "Alice Nguyen",
		"userB": "Bob Tran",
		"userC": "Carol Le",
	}
	name, ok := names[userID]
	if !ok {
		return "", errors.New("unknown user")
	}
	return name, nil
}

// SetupTestRouterWithAuctions initializes the full router over the in-memory
// stores and seeds the given auctions.
func SetupTestRouterWithAuctions(auctions ...model.Auction) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mem := repository.NewMemoryStore()

	for _, a := range auctions {
		mem.AddAuction(a)
	}

	service := auction.NewAuctionService(auction.Deps{
		Store:      mem,
		Ledger:     mem,
		Registry:   mem,
		Reputation: fixedReputation{},
		Directory:  fixedDirectory{},
		Config: auction.ConfigProviderFunc(func() auction.AutoExtendSettings {
			return auction.AutoExtendSettings{Threshold: 5 * time.Minute, Duration: 10 * time.Minute}
		}),
	})
	return server.SetupRouter(service)
}

// ActiveAuction builds an auction open for bidding right now.
func ActiveAuction(id, sellerID string, startPrice, stepPrice int64) model.Auction {
	now := time.Now().UTC()
	return model.Auction{
		AuctionID:  id,
		SellerID:   sellerID,
		CategoryID: "cat1",
		StartPrice: startPrice,
		StepPrice:  stepPrice,
		StartTime:  now.Add(-time.Hour),
		EndTime:    now.Add(24 * time.Hour),
		Status:     model.StatusActive,
	}
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the JSON response envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// DataOf unwraps the data field of a success envelope.
func DataOf(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return data
}

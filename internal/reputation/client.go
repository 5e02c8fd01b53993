package reputation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client talks to the external user service for rating reads and display
// names. The auction core only consumes these two lookups; user management
// itself is out of scope.
type Client struct {
	baseURL string
	client  *resty.Client
}

type ratingResponse struct {
	UserID   string `json:"user_id"`
	Positive int    `json:"positive"`
	Negative int    `json:"negative"`
}

type userResponse struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
}

// NewClient creates a user-service client with the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetTimeout(timeout)

	return &Client{
		baseURL: baseURL,
		client:  client,
	}
}

// ApprovalPercentage returns the bidder's positive-rating percentage and
// whether they have any rated transactions at all.
func (c *Client) ApprovalPercentage(ctx context.Context, bidderID string) (float64, bool, error) {
	url := fmt.Sprintf("%s/users/%s/rating", c.baseURL, bidderID)

	resp, err := c.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return 0, false, fmt.Errorf("fetch rating for %s: %w", bidderID, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return 0, false, fmt.Errorf("fetch rating for %s: status %d", bidderID, resp.StatusCode())
	}

	var rating ratingResponse
	if err := json.Unmarshal(resp.Body(), &rating); err != nil {
		return 0, false, fmt.Errorf("decode rating for %s: %w", bidderID, err)
	}

	total := rating.Positive + rating.Negative
	if total == 0 {
		return 0, false, nil
	}
	return float64(rating.Positive) / float64(total) * 100, true, nil
}

// DisplayName returns the user's full display name.
func (c *Client) DisplayName(ctx context.Context, userID string) (string, error) {
	url := fmt.Sprintf("%s/users/%s", c.baseURL, userID)

	resp, err := c.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("fetch user %s: %w", userID, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("fetch user %s: status %d", userID, resp.StatusCode())
	}

	var user userResponse
	if err := json.Unmarshal(resp.Body(), &user); err != nil {
		return "", fmt.Errorf("decode user %s: %w", userID, err)
	}
	return user.FullName, nil
}

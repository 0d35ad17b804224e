package reviewapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/orafinite/ecom-fe/internal/datamodels/review"
)

// Client talks to the review API (GET/POST /api/reviews). Failures are
// expected in normal operation: the caller degrades to its local tiers
// instead of surfacing them.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   http.DefaultClient,
	}
}

// List fetches the full review list.
func (c *Client) List(ctx context.Context) ([]review.Review, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/reviews", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("review api: unexpected status %d", resp.StatusCode)
	}
	var list []review.Review
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, err
	}
	return list, nil
}

// Submit posts a review and returns the accepted body, which is either the
// stored review or a pre-existing one sharing its id.
func (c *Client) Submit(ctx context.Context, r review.Review) (review.Review, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return review.Review{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/reviews", bytes.NewReader(raw))
	if err != nil {
		return review.Review{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpc.Do(req)
	if err != nil {
		return review.Review{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return review.Review{}, fmt.Errorf("review api: unexpected status %d", resp.StatusCode)
	}
	var accepted review.Review
	if err := json.NewDecoder(resp.Body).Decode(&accepted); err != nil {
		return review.Review{}, err
	}
	return accepted, nil
}

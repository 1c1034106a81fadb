package product

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// Product is the product service's read-only view of a catalog entry. It is
// fetched on demand and never persisted here.
type Product struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

// Client calls the product service over HTTP. Safe for concurrent use.
type Client struct {
	baseAddress string
	httpClient  *http.Client
}

func NewClient(baseAddress string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseAddress: strings.TrimRight(baseAddress, "/"),
		httpClient:  httpClient,
	}
}

// GetByID fetches a product record. Any non-2xx status, transport failure,
// or undecodable body is returned as an error; callers decide what a failed
// lookup means.
func (c *Client) GetByID(ctx context.Context, productID string) (*Product, error) {
	reqURL := fmt.Sprintf("%s/api/products/%s", c.baseAddress, url.PathEscape(productID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("product: failed to build request for %s: %w", productID, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("product: request for %s failed: %w", productID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("product: unexpected status %d for %s", resp.StatusCode, productID)
	}

	var p Product
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("product: failed to decode response for %s: %w", productID, err)
	}

	return &p, nil
}

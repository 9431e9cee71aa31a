// Package stockclient is the product service's HTTP adapter to the
// inventory service's check-stock endpoint.
package stockclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"
)

// Client calls GET /api/inventory/check-stock/{productCode}?quantity={n}
// on the inventory service. It implements product.StockChecker.
//
// Every failure (dial error, non-2xx status, malformed body, missing
// key) collapses to false. A network blip is indistinguishable from a
// confirmed zero.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a stock-check client for the inventory service at
// baseURL, e.g. "http://localhost:8081".
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

type checkStockResponse struct {
	InStock bool `json:"inStock"`
}

// CheckStock reports whether the inventory service confirms at least
// quantity units for the given product code.
func (c *Client) CheckStock(ctx context.Context, productCode string, quantity int) bool {
	endpoint := fmt.Sprintf("%s/api/inventory/check-stock/%s?quantity=%s",
		c.baseURL, url.PathEscape(productCode), strconv.Itoa(quantity))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Warn().Err(err).Str("productCode", productCode).Msg("[stockclient] Failed to build stock-check request")
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("productCode", productCode).Msg("[stockclient] Stock check failed")
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn().Int("status", resp.StatusCode).Str("productCode", productCode).Msg("[stockclient] Stock check returned non-2xx status")
		return false
	}

	var body checkStockResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Warn().Err(err).Str("productCode", productCode).Msg("[stockclient] Failed to decode stock-check response")
		return false
	}
	return body.InStock
}

package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sa9r/storefront/internal/dto"
	"github.com/sa9r/storefront/internal/model"
)

// ErrSubmitFailed is the generic retry-prompting failure surfaced to the
// user; the underlying cause never reaches the page.
var ErrSubmitFailed = errors.New("failed to process order, please try again")

// Client posts order submissions to the backend orders API.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

func (c *Client) PlaceOrder(ctx context.Context, items []model.CartItem, customer model.OrderCustomer, total decimal.Decimal) (string, error) {
	body, err := json.Marshal(dto.CreateOrderRequest{
		Items:    items,
		Customer: &customer,
		Total:    total,
	})
	if err != nil {
		return "", fmt.Errorf("encode order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: unexpected status %d", ErrSubmitFailed, resp.StatusCode)
	}

	var result dto.CreateOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrSubmitFailed, err)
	}
	return result.OrderID, nil
}

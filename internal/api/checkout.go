package api

import (
	"context"
	"net/http"
)

// CheckoutItem is one cart line sent to the checkout endpoint.
// Only product id and quantity travel: the backend re-prices every item.
type CheckoutItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CheckoutRequest represents the checkout payload
type CheckoutRequest struct {
	Items []CheckoutItem `json:"items"`
}

// CheckoutResponse represents a successful checkout response
type CheckoutResponse struct {
	CheckoutURL string `json:"checkout_url"`
	OrderID     int64  `json:"order_id"`
}

// Checkout posts the cart lines and returns the payment handoff
func (c *Client) Checkout(ctx context.Context, items []CheckoutItem) (*CheckoutResponse, error) {
	req := CheckoutRequest{Items: items}

	resp, err := c.doRequest(ctx, http.MethodPost, "/api/checkout", req)
	if err != nil {
		return nil, err
	}

	var checkout CheckoutResponse
	if err := parseResponse(resp, &checkout); err != nil {
		return nil, err
	}

	return &checkout, nil
}

package api

import (
	"context"
	"net/http"
)

// MyOrders retrieves the authenticated customer's order history
func (c *Client) MyOrders(ctx context.Context) ([]Order, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/orders/mine", nil)
	if err != nil {
		return nil, err
	}

	var orders []Order
	if err := parseResponse(resp, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

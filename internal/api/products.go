package api

import (
	"context"
	"net/http"
	"net/url"
)

// ListProducts fetches the public catalog. Text and category filtering are
// delegated to the backend; sorting and pagination happen client-side.
func (c *Client) ListProducts(ctx context.Context, query, category string) ([]Product, error) {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	if category != "" {
		params.Set("category", category)
	}

	path := "/api/products"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var products []Product
	if err := parseResponse(resp, &products); err != nil {
		return nil, err
	}

	return products, nil
}

package api

import (
	"context"
	"fmt"
	"net/http"
)

// ProductInput is the create/update payload for an admin product
type ProductInput struct {
	Name     string   `json:"name"`
	SKU      string   `json:"sku"`
	Price    float64  `json:"price"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	ImageURL string   `json:"image_url"`
	Active   bool     `json:"active"`
}

// UserInput is the create payload for an admin-created customer.
// Keys follow the backend contract: "address" is the street, "cep" the
// postal code.
type UserInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Phone      string `json:"phone,omitempty"`
	DocType    string `json:"doc_type,omitempty"`
	DocNumber  string `json:"doc_number,omitempty"`
	CEP        string `json:"cep,omitempty"`
	State      string `json:"state,omitempty"`
	City       string `json:"city,omitempty"`
	District   string `json:"district,omitempty"`
	Address    string `json:"address,omitempty"`
	Number     string `json:"number,omitempty"`
	Complement string `json:"complement,omitempty"`
	IsAdmin    bool   `json:"is_admin"`
}

// toggleAdminRequest is the fixed PATCH body for the role toggle.
// The backend flips is_admin whenever toggle_admin is true.
type toggleAdminRequest struct {
	ToggleAdmin bool `json:"toggle_admin"`
}

// AdminListProducts lists all products, including inactive ones
func (c *Client) AdminListProducts(ctx context.Context) ([]Product, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/admin/products", nil)
	if err != nil {
		return nil, err
	}

	var products []Product
	if err := parseResponse(resp, &products); err != nil {
		return nil, err
	}

	return products, nil
}

// AdminCreateProduct creates a new product
func (c *Client) AdminCreateProduct(ctx context.Context, input ProductInput) (*Product, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/admin/products", input)
	if err != nil {
		return nil, err
	}

	var product Product
	if err := parseResponse(resp, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

// AdminUpdateProduct replaces an existing product (full PUT payload)
func (c *Client) AdminUpdateProduct(ctx context.Context, id int64, input ProductInput) (*Product, error) {
	path := fmt.Sprintf("/api/admin/products/%d", id)
	resp, err := c.doRequest(ctx, http.MethodPut, path, input)
	if err != nil {
		return nil, err
	}

	var product Product
	if err := parseResponse(resp, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

// AdminDeleteProduct deletes a product
func (c *Client) AdminDeleteProduct(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/admin/products/%d", id)
	resp, err := c.doRequest(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	return parseResponse(resp, nil)
}

// AdminListUsers lists all customers
func (c *Client) AdminListUsers(ctx context.Context) ([]Profile, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/admin/users", nil)
	if err != nil {
		return nil, err
	}

	var users []Profile
	if err := parseResponse(resp, &users); err != nil {
		return nil, err
	}

	return users, nil
}

// AdminCreateUser creates a customer account with full customer data
func (c *Client) AdminCreateUser(ctx context.Context, input UserInput) (*Profile, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/admin/users", input)
	if err != nil {
		return nil, err
	}

	var user Profile
	if err := parseResponse(resp, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// AdminToggleUserAdmin flips a user's admin flag. The target state is
// decided server-side; the client only requests the toggle.
func (c *Client) AdminToggleUserAdmin(ctx context.Context, id int64) (*Profile, error) {
	path := fmt.Sprintf("/api/admin/users/%d", id)
	resp, err := c.doRequest(ctx, http.MethodPatch, path, toggleAdminRequest{ToggleAdmin: true})
	if err != nil {
		return nil, err
	}

	var user Profile
	if err := parseResponse(resp, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

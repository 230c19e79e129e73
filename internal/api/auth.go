package api

import (
	"context"
	"net/http"
)

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse represents a successful login response
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// SignupRequest represents a signup request
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates with the backend and returns the bearer token
func (c *Client) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	req := LoginRequest{
		Email:    email,
		Password: password,
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", req)
	if err != nil {
		return nil, err
	}

	var token TokenResponse
	if err := parseResponse(resp, &token); err != nil {
		return nil, err
	}

	// Automatically use the token for future requests
	c.SetToken(token.AccessToken)

	return &token, nil
}

// Signup creates a new customer account. The caller still has to log in.
func (c *Client) Signup(ctx context.Context, name, email, password string) (*Profile, error) {
	req := SignupRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/signup", req)
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := parseResponse(resp, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// Me retrieves the profile behind the current bearer token
func (c *Client) Me(ctx context.Context) (*Profile, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/auth/me", nil)
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := parseResponse(resp, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// Package api is the REST client for the store backend. It owns request
// plumbing only: bearer auth, JSON encoding, response classification, and
// backend error-detail extraction. All pricing, inventory, and order logic
// stays server-side.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	shoperrors "github.com/soutech/shopctl/internal/errors"
	"github.com/soutech/shopctl/internal/log"
)

// Client is the store backend API client
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Token      string

	logger *log.Logger
}

// NewClient creates a new store API client
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: log.DefaultLogger().With("component", "api"),
	}
}

// SetToken sets the bearer token used for authenticated requests
func (c *Client) SetToken(token string) {
	c.Token = token
}

// StatusError is a non-success HTTP response from the backend.
// Detail carries the backend-provided message when the body was parseable.
type StatusError struct {
	Status int
	Detail string
}

// Error implements the error interface
func (e *StatusError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// IsAuthFailure reports whether err is a 401/403 backend response.
// Callers treat these as unrecoverable locally: clear the session and
// send the user back to login.
func IsAuthFailure(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Status == http.StatusUnauthorized || statusErr.Status == http.StatusForbidden
	}
	return false
}

// errorBody is the FastAPI-style error envelope used by the backend
type errorBody struct {
	Detail string `json:"detail"`
}

// doRequest performs an HTTP request with authentication
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	c.logger.Debug("request", "method", method, "path", path)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, shoperrors.NewAPINetworkError(err)
	}

	return resp, nil
}

// parseResponse parses the response body into the target struct
func parseResponse(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)

		// Try to parse the FastAPI error envelope
		var errResp errorBody
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail != "" {
			return &StatusError{Status: resp.StatusCode, Detail: errResp.Detail}
		}

		return &StatusError{Status: resp.StatusCode}
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return shoperrors.Wrap(shoperrors.ErrCodeAPIDecode, "failed to decode response", err)
		}
	}

	return nil
}

// Health checks backend liveness via the public health endpoint
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/health", nil)
	if err != nil {
		return err
	}
	return parseResponse(resp, nil)
}

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shoperrors "github.com/soutech/shopctl/internal/errors"
)

func TestLoginSetsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ana@example.com", req.Email)

		json.NewEncoder(w).Encode(TokenResponse{AccessToken: "tok-123", TokenType: "bearer"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	token, err := client.Login(context.Background(), "ana@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token.AccessToken)
	assert.Equal(t, "tok-123", client.Token, "login should arm the client for authenticated calls")
}

func TestBearerHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(Profile{ID: 1, Email: "ana@example.com"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("tok-123")

	_, err := client.Me(context.Background())
	require.NoError(t, err)
}

func TestDetailExtraction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"detail": "SKU already registered"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.AdminCreateProduct(context.Background(), ProductInput{Name: "x", SKU: "dup"})
	require.Error(t, err)
	assert.Equal(t, "SKU already registered", err.Error())

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusConflict, statusErr.Status)
}

func TestStatusErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.ListProducts(context.Background(), "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestIsAuthFailure(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"401", &StatusError{Status: http.StatusUnauthorized}, true},
		{"403", &StatusError{Status: http.StatusForbidden}, true},
		{"404", &StatusError{Status: http.StatusNotFound}, false},
		{"network", shoperrors.NewAPINetworkError(context.DeadlineExceeded), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsAuthFailure(tt.err))
		})
	}
}

func TestListProductsQueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "mouse", r.URL.Query().Get("q"))
		assert.Equal(t, "peripherals", r.URL.Query().Get("category"))
		json.NewEncoder(w).Encode([]Product{{ID: 1, Name: "Mouse"}})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	products, err := client.ListProducts(context.Background(), "mouse", "peripherals")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Mouse", products[0].Name)
}

func TestNetworkFailure(t *testing.T) {
	// Point at a closed server to force a transport error.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL)
	_, err := client.ListProducts(context.Background(), "", "")
	require.Error(t, err)

	var shopErr *shoperrors.ShopError
	require.ErrorAs(t, err, &shopErr)
	assert.Equal(t, shoperrors.ErrCodeAPINetwork, shopErr.Code)
}

func TestDecodeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Me(context.Background())
	require.Error(t, err)

	var shopErr *shoperrors.ShopError
	require.ErrorAs(t, err, &shopErr)
	assert.Equal(t, shoperrors.ErrCodeAPIDecode, shopErr.Code)
}

func TestToggleAdminBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/api/admin/users/7", r.URL.Path)

		var body map[string]bool
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.True(t, body["toggle_admin"], "toggle body is fixed to {toggle_admin:true}")

		json.NewEncoder(w).Encode(Profile{ID: 7, IsAdmin: true})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("tok")

	user, err := client.AdminToggleUserAdmin(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
}

func TestCheckoutPayloadOmitsPrices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw map[string][]map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		require.Len(t, raw["items"], 1)
		assert.NotContains(t, raw["items"][0], "unit_price", "backend re-prices; never resend prices")
		assert.NotContains(t, raw["items"][0], "price")

		json.NewEncoder(w).Encode(CheckoutResponse{CheckoutURL: "https://pay.example/x", OrderID: 9})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("tok")

	resp, err := client.Checkout(context.Background(), []CheckoutItem{{ProductID: 1, Quantity: 2}})
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/x", resp.CheckoutURL)
}

func TestHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/health", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	assert.NoError(t, client.Health(context.Background()))
}

func TestHealthFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.Health(context.Background())
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.Status)
}

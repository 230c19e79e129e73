package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Auth errors (AUTH-001 to AUTH-099)
	ErrCodeNotLoggedIn    ErrorCode = "AUTH-001"
	ErrCodeSessionExpired ErrorCode = "AUTH-002"
	ErrCodeAccessDenied   ErrorCode = "AUTH-003"
	ErrCodeLoginFailed    ErrorCode = "AUTH-004"
	ErrCodeSignupInvalid  ErrorCode = "AUTH-005"

	// API errors (API-001 to API-099)
	ErrCodeAPINetwork ErrorCode = "API-001"
	ErrCodeAPIStatus  ErrorCode = "API-002"
	ErrCodeAPIDecode  ErrorCode = "API-003"

	// Cart errors (CART-001 to CART-099)
	ErrCodeCartEmpty       ErrorCode = "CART-001"
	ErrCodeProductNotFound ErrorCode = "CART-002"

	// Checkout errors (CHECKOUT-001 to CHECKOUT-099)
	ErrCodeCheckoutNoURL ErrorCode = "CHECKOUT-001"

	// Admin errors (ADMIN-001 to ADMIN-099)
	ErrCodeAdminValidation ErrorCode = "ADMIN-001"

	// Config errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigInvalid ErrorCode = "CONFIG-001"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeStateRead  ErrorCode = "IO-001"
	ErrCodeStateWrite ErrorCode = "IO-002"
	ErrCodeStateDir   ErrorCode = "IO-003"
)

// ShopError represents an enhanced error with code and suggestions
type ShopError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *ShopError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	// Add cause if present
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	// Add suggestions
	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *ShopError) Unwrap() error {
	return e.Cause
}

// New creates a new ShopError
func New(code ErrorCode, message string) *ShopError {
	return &ShopError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new ShopError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *ShopError {
	return &ShopError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *ShopError) WithSuggestion(suggestion string) *ShopError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *ShopError) WithSuggestions(suggestions ...string) *ShopError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// Common error constructors for frequently used errors

// NewNotLoggedInError creates an error for actions that require a session
func NewNotLoggedInError() *ShopError {
	return New(ErrCodeNotLoggedIn, "you are not logged in").
		WithSuggestion("Run 'shopctl login' to authenticate").
		WithSuggestion("Run 'shopctl signup' if you do not have an account yet")
}

// NewSessionExpiredError creates an error for a rejected bearer token.
// The stored session state has already been cleared when this is returned.
func NewSessionExpiredError() *ShopError {
	return New(ErrCodeSessionExpired, "your session has expired").
		WithSuggestion("Run 'shopctl login' to authenticate again")
}

// NewAccessDeniedError creates an error for admin-only surfaces reached by
// a regular customer. The session is left intact.
func NewAccessDeniedError() *ShopError {
	return New(ErrCodeAccessDenied, "access denied: administrator account required").
		WithSuggestion("Log in with an administrator account to manage the store").
		WithSuggestion("Run 'shopctl browse' to use the storefront instead")
}

// NewCartEmptyError creates an error for checkout attempts on an empty cart
func NewCartEmptyError() *ShopError {
	return New(ErrCodeCartEmpty, "your cart is empty").
		WithSuggestion("Run 'shopctl cart add <product-id>' to add a product").
		WithSuggestion("Run 'shopctl products list' to browse the catalog")
}

// NewProductNotFoundError creates an error for an unknown product id
func NewProductNotFoundError(id int64) *ShopError {
	return New(ErrCodeProductNotFound, fmt.Sprintf("product %d not found", id)).
		WithSuggestion("Run 'shopctl products list' to see available products")
}

// NewCheckoutNoURLError creates an error for a checkout response that is
// missing the payment redirect URL. The cart is left unchanged.
func NewCheckoutNoURLError() *ShopError {
	return New(ErrCodeCheckoutNoURL, "the payment could not be started").
		WithSuggestion("Try again in a moment").
		WithSuggestion("Contact the store if the problem persists")
}

// NewAPINetworkError creates an error for transport-level failures
func NewAPINetworkError(cause error) *ShopError {
	return Wrap(ErrCodeAPINetwork, "could not reach the store", cause).
		WithSuggestion("Check your network connection").
		WithSuggestion("Verify the api_url setting in ~/.shopctl/config.yaml")
}

// NewAPIStatusError creates an error for a non-success HTTP status.
// detail carries the backend-provided message when one could be parsed.
func NewAPIStatusError(status int, detail string) *ShopError {
	msg := detail
	if msg == "" {
		msg = fmt.Sprintf("request failed with status %d", status)
	}
	return New(ErrCodeAPIStatus, msg)
}

// NewAdminValidationError creates an error for client-side admin form
// validation failures. The offending request is never sent.
func NewAdminValidationError(details string) *ShopError {
	return New(ErrCodeAdminValidation, details)
}

// NewStateWriteError creates an error for a failed state file write
func NewStateWriteError(key string, cause error) *ShopError {
	return Wrap(ErrCodeStateWrite, fmt.Sprintf("failed to persist %s", key), cause).
		WithSuggestion("Check permissions on the shopctl state directory")
}

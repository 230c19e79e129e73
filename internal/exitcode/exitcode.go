package exitcode

import (
	"errors"
	"os"
	"strings"

	shoperrors "github.com/soutech/shopctl/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// ValidationError indicates a client-side validation failure
	ValidationError = 3

	// AuthError indicates an authentication or authorization failure
	AuthError = 5

	// NetworkError indicates a network connectivity issue
	NetworkError = 6

	// Interrupted indicates the process was cancelled by the user
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	code := DetermineExitCode(err)
	Exit(code)
}

// DetermineExitCode analyzes an error and returns the appropriate exit code.
// Coded errors map directly; foreign errors fall back to message matching.
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	var shopErr *shoperrors.ShopError
	if errors.As(err, &shopErr) {
		switch shopErr.Code {
		case shoperrors.ErrCodeNotLoggedIn,
			shoperrors.ErrCodeSessionExpired,
			shoperrors.ErrCodeAccessDenied,
			shoperrors.ErrCodeLoginFailed:
			return AuthError
		case shoperrors.ErrCodeAPINetwork:
			return NetworkError
		case shoperrors.ErrCodeCartEmpty,
			shoperrors.ErrCodeAdminValidation,
			shoperrors.ErrCodeSignupInvalid:
			return ValidationError
		default:
			return GeneralError
		}
	}

	errMsg := strings.ToLower(err.Error())

	// Authentication errors
	if strings.Contains(errMsg, "unauthorized") || strings.Contains(errMsg, "not logged in") {
		return AuthError
	}
	if strings.Contains(errMsg, "session") && strings.Contains(errMsg, "expired") {
		return AuthError
	}

	// Network errors
	if strings.Contains(errMsg, "connection refused") || strings.Contains(errMsg, "no such host") {
		return NetworkError
	}
	if strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "network") {
		return NetworkError
	}

	// Usage errors from cobra
	if strings.Contains(errMsg, "unknown flag") || strings.Contains(errMsg, "unknown command") {
		return UsageError
	}
	if strings.Contains(errMsg, "required flag") || strings.Contains(errMsg, "accepts") {
		return UsageError
	}

	return GeneralError
}

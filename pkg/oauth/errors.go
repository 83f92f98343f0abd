package oauth

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSessionInvalid is the parent of every reason a session cannot be completed.
// The user has to restart from initiation.
var ErrSessionInvalid = errors.New("oauth session invalid")

// Session failures
var (
	ErrSessionNotFound    = fmt.Errorf("%w: session not found", ErrSessionInvalid)
	ErrSessionExpired     = fmt.Errorf("%w: session expired", ErrSessionInvalid)
	ErrStateMismatch      = fmt.Errorf("%w: state mismatch", ErrSessionInvalid)
	ErrSessionAlreadyUsed = fmt.Errorf("%w: session already used", ErrSessionInvalid)
)

var (
	// ErrUserNotFound is returned when initiating for an unregistered wallet.
	ErrUserNotFound = errors.New("user not found")
	// ErrAccountTaken is returned when the external account is actively linked to another wallet.
	ErrAccountTaken = errors.New("external account already linked to another wallet")
	// ErrLinkConflict is returned when a concurrent relink for the same wallet won the race.
	ErrLinkConflict = errors.New("concurrent link for this wallet")
	// ErrLinkNotFound is returned when the wallet has no active link for the provider.
	ErrLinkNotFound = errors.New("link not found")
	// ErrUnknownProvider is returned for providers that are not configured.
	ErrUnknownProvider = errors.New("unknown provider")
	// ErrProviderError marks failures reported by the provider's endpoints.
	ErrProviderError = errors.New("provider error")
)

// ProviderError wraps an upstream failure together with any guidance the
// provider put in its error body.
type ProviderError struct {
	Provider    Provider
	Op          string
	StatusCode  int
	Code        string
	Description string
	Err         error
}

func (e *ProviderError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s failed", e.Provider, e.Op)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " with status %d", e.StatusCode)
	}
	if e.Code != "" {
		fmt.Fprintf(&b, ": %s", e.Code)
	}
	if e.Description != "" {
		fmt.Fprintf(&b, " (%s)", e.Description)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap exposes ErrProviderError and the cause to errors.Is.
func (e *ProviderError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrProviderError}
	}
	return []error{ErrProviderError, e.Err}
}

// Guidance is the user-facing hint for the failure.
func (e *ProviderError) Guidance() string {
	switch {
	case e.Code == "invalid_grant":
		return "authorization code is invalid or expired, please connect again"
	case e.StatusCode == 401 || e.StatusCode == 403:
		return fmt.Sprintf("%s denied access, please connect again", e.Provider)
	case e.StatusCode == 429:
		return fmt.Sprintf("%s is rate limiting requests, please try again later", e.Provider)
	case e.Description != "":
		return e.Description
	default:
		return fmt.Sprintf("%s request failed, please try again", e.Provider)
	}
}

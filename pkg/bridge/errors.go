package bridge

import (
	"errors"
)

// Transfer failure taxonomy
var (
	ErrUserRejected      = errors.New("user rejected the request")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNetworkMismatch   = errors.New("wallet is on the wrong network")
	ErrApprovalFailed    = errors.New("token approval failed")
	ErrQuoteFailed       = errors.New("failed to get bridge quote")
	ErrSendFailed        = errors.New("bridge transaction failed")
	ErrConfirmTimeout    = errors.New("timed out waiting for confirmation")
	ErrTransferReverted  = errors.New("bridge transaction reverted")
)

// Reason is the machine-readable failure cause attached to a failed status event.
type Reason string

// Failure reasons
const (
	ReasonUserRejected      Reason = "user_rejected"
	ReasonInsufficientFunds Reason = "insufficient_funds"
	ReasonNetworkMismatch   Reason = "network_mismatch"
	ReasonApprovalFailed    Reason = "approval_failed"
	ReasonQuoteFailed       Reason = "quote_failed"
	ReasonContractExecution Reason = "contract_execution"
	ReasonNetwork           Reason = "network_error"
	ReasonTimeout           Reason = "timeout"
	ReasonReverted          Reason = "reverted"
	ReasonUnknown           Reason = "unknown"
)

// Retryable reports whether the user may restart the whole flow unchanged.
func (r Reason) Retryable() bool {
	switch r {
	case ReasonUserRejected, ReasonInsufficientFunds, ReasonApprovalFailed, ReasonReverted:
		return false
	default:
		return true
	}
}

// Error is a classified transfer failure. Err is the taxonomy sentinel,
// Cause the underlying error.
type Error struct {
	Err    error
	Reason Reason
	Cause  error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Cause.Error()
}

// Unwrap exposes both the sentinel and the cause to errors.Is.
func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// NewError builds a classified failure
func NewError(sentinel error, reason Reason, cause error) *Error {
	return &Error{Err: sentinel, Reason: reason, Cause: cause}
}

// ReasonOf extracts the failure reason from err
func ReasonOf(err error) Reason {
	var bErr *Error
	if errors.As(err, &bErr) {
		return bErr.Reason
	}
	return ReasonUnknown
}

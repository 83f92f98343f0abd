package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestServiceError_StatusCodes(t *testing.T) {
	cause := errors.New("cause")
	tests := []struct {
		err  error
		want int
	}{
		{BadRequestError(cause, "bad"), http.StatusBadRequest},
		{UnAuthorizedError(cause, "who"), http.StatusUnauthorized},
		{ForbiddenError(cause, "no"), http.StatusForbidden},
		{ResourceNotFoundError(cause, "gone"), http.StatusNotFound},
		{ConflictError(cause, "taken"), http.StatusConflict},
		{TooManyRequestsError(cause, "slow down"), http.StatusTooManyRequests},
		{DependencyError(cause, "upstream"), http.StatusBadGateway},
		{TimeoutError(cause, "late"), http.StatusGatewayTimeout},
		{GeneralError(cause), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		var svcErr *ServiceError
		if !errors.As(tt.err, &svcErr) {
			t.Fatalf("expected ServiceError, got %T", tt.err)
		}
		if got := svcErr.StatusCode(); got != tt.want {
			t.Fatalf("%s: expected status %d, got %d", svcErr.Category, tt.want, got)
		}
	}
}

func TestServiceError_WrapsCause(t *testing.T) {
	sentinel := errors.New("session expired")
	err := fmt.Errorf("complete: %w", BadRequestError(sentinel, "session expired"))

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped sentinel to be reachable")
	}
	if !Is(err, CategoryDataError) {
		t.Fatalf("expected CategoryDataError")
	}
	if Is(err, CategoryDataConflict) {
		t.Fatalf("did not expect CategoryDataConflict")
	}
	if IsInternalError(err) {
		t.Fatalf("bad request must not count as internal")
	}
	if !IsInternalError(errors.New("raw")) {
		t.Fatalf("raw errors are internal")
	}
}

func TestServiceError_NilCauseGetsFallback(t *testing.T) {
	err := ConflictError(nil, "account already linked")
	if err.Error() != "conflict" {
		t.Fatalf("expected fallback cause %q, got %q", "conflict", err.Error())
	}
}

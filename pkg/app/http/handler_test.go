package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/chainsafe/card-bridge/pkg/app/errors"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var got errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	return got
}

func TestHandleError_ServiceError(t *testing.T) {
	h := HandleError(func(http.ResponseWriter, *http.Request) error {
		return apperrors.ConflictError(errors.New("unique violation"), "account already linked to another wallet")
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, rec.Code)
	}
	got := decodeError(t, rec)
	if got.ErrMsg != "account already linked to another wallet" {
		t.Fatalf("unexpected message %q", got.ErrMsg)
	}
	if got.ErrMsgCode != http.StatusConflict {
		t.Fatalf("expected code %d, got %d", http.StatusConflict, got.ErrMsgCode)
	}
}

func TestHandleError_UnknownErrorIsHidden(t *testing.T) {
	h := HandleError(func(http.ResponseWriter, *http.Request) error {
		return errors.New("dial tcp 10.0.0.1:8545: connection refused")
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	if got := decodeError(t, rec); got.ErrMsg != "Unexpected Service Error" {
		t.Fatalf("raw error leaked: %q", got.ErrMsg)
	}
}

func TestDecodeJSON_InvalidBody(t *testing.T) {
	var v struct {
		Amount string `json:"amount"`
	}
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("{invalid"))
	err := DecodeJSON(req, &v)
	if !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("expected CategoryDataError, got %v", err)
	}

	req = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"amount":"1.5"}`))
	if err := DecodeJSON(req, &v); err != nil {
		t.Fatalf("DecodeJSON() failed: %v", err)
	}
	if v.Amount != "1.5" {
		t.Fatalf("expected amount 1.5, got %q", v.Amount)
	}
}

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/card-bridge/pkg/app/errors"
	"github.com/chainsafe/card-bridge/pkg/auth"
	"github.com/chainsafe/card-bridge/pkg/bridge"
	"github.com/chainsafe/card-bridge/pkg/bridge/service/mocks"
	"github.com/chainsafe/card-bridge/pkg/ethereum/contracts"
)

func newBridgeTestServer(t *testing.T, svc Service) (http.Handler, *auth.JWTValidator) {
	t.Helper()
	jwt, err := auth.NewJWTValidator([]byte("test-secret"), "card-bridge")
	if err != nil {
		t.Fatalf("NewJWTValidator() failed: %v", err)
	}
	r := chi.NewRouter()
	RegisterRoutes(r, svc, jwt, zap.NewNop())
	return r, jwt
}

func TestBalancesHTTP(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Balances(mock.Anything, walletAddr, bridge.BToA).
		Return(&bridge.Balances{Source: decimal.NewFromInt(3), Dest: decimal.Zero, Warnings: []string{"could not read ethereum balance"}}, nil).
		Once()
	handler, _ := newBridgeTestServer(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/bridge/balances/"+walletAddr.Hex()+"?direction=b_to_a", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	var got bridge.Balances
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if !got.Source.Equal(decimal.NewFromInt(3)) || len(got.Warnings) != 1 {
		t.Fatalf("unexpected balances %+v", got)
	}
}

func TestBalancesHTTP_InvalidAddress(t *testing.T) {
	handler, _ := newBridgeTestServer(t, mocks.NewService(t))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bridge/balances/not-an-address", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestQuoteHTTP(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Quote(mock.Anything, mock.MatchedBy(func(r bridge.TransferRequest) bool {
			return r.Direction == bridge.AToB && r.Amount.Equal(decimal.RequireFromString("1.5")) && r.Recipient == recipient
		})).
		Return(&bridge.Quote{
			NativeFee: big.NewInt(777),
			Params:    contracts.SendParam{MinAmountLD: big.NewInt(1_425)},
		}, nil).
		Once()
	handler, _ := newBridgeTestServer(t, svc)

	body := `{"direction":"a_to_b","amount":"1.5","recipient":"` + recipient.Hex() + `"}`
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/bridge/quote", bytes.NewBufferString(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	var got quoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.NativeFee != "777" || got.LzTokenFee != "0" || got.MinAmountLD != "1425" {
		t.Fatalf("unexpected quote %+v", got)
	}
}

func TestTransferHTTP_RequiresBearer(t *testing.T) {
	handler, _ := newBridgeTestServer(t, mocks.NewService(t))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/bridge/transfer", bytes.NewBufferString(`{}`)))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestTransferHTTP_FailureKeepsEvents(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Transfer(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ bridge.TransferRequest, sink bridge.StatusSink) (*bridge.Result, error) {
			sink.Emit(bridge.StatusEvent{State: bridge.StateNetworkCheck})
			sink.Emit(bridge.StatusEvent{State: bridge.StateFailed, Reason: bridge.ReasonUserRejected})
			err := bridge.NewError(bridge.ErrUserRejected, bridge.ReasonUserRejected, errors.New("user denied"))
			return &bridge.Result{State: bridge.StateFailed}, apperrors.ForbiddenError(err, "request rejected by wallet")
		}).
		Once()
	handler, jwt := newBridgeTestServer(t, svc)

	token, err := jwt.Issue("ops", time.Minute)
	if err != nil {
		t.Fatalf("Issue() failed: %v", err)
	}
	body := `{"direction":"a_to_b","amount":"1","recipient":"` + recipient.Hex() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/bridge/transfer", bytes.NewBufferString(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, rec.Code)
	}
	var got transferResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if len(got.Events) != 2 || got.Reason != bridge.ReasonUserRejected || got.Error != "request rejected by wallet" {
		t.Fatalf("unexpected response %+v", got)
	}
}

func TestCollectingSink_DropsLateEvents(t *testing.T) {
	sink := &collectingSink{}
	sink.Emit(bridge.StatusEvent{State: bridge.StateCompleted})
	events := sink.close()
	sink.Emit(bridge.StatusEvent{State: bridge.StateBalances})

	if len(events) != 1 || len(sink.events) != 1 {
		t.Fatalf("expected late event to be dropped, got %d events", len(sink.events))
	}
}

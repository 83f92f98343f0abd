package service

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/card-bridge/pkg/app/errors"
	"github.com/chainsafe/card-bridge/pkg/auth"
	"github.com/chainsafe/card-bridge/pkg/oauth"
	"github.com/chainsafe/card-bridge/pkg/oauth/service/mocks"
)

func newOAuthTestServer(t *testing.T, svc Service) http.Handler {
	t.Helper()
	r := chi.NewRouter()
	RegisterRoutes(r, svc, 5*time.Minute, zap.NewNop())
	return r
}

// signedRequest signs a fresh message with a new key and returns the request
// together with the signer's checksummed address.
func signedRequest(t *testing.T, method, target string, body []byte) (*http.Request, string) {
	t.Helper()
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() failed: %v", err)
	}

	message := fmt.Sprintf("link account\ntimestamp: %d", time.Now().Unix())
	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(message), message)
	sig, err := crypto.Sign(crypto.Keccak256Hash([]byte(prefixed)).Bytes(), key)
	if err != nil {
		t.Fatalf("Sign() failed: %v", err)
	}
	sig[64] += 27

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set(auth.HeaderMessage, message)
	req.Header.Set(auth.HeaderSignature, "0x"+hex.EncodeToString(sig))
	return req, crypto.PubkeyToAddress(key.PublicKey).Hex()
}

func TestInitiateHTTP_UsesSigner(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newOAuthTestServer(t, svc)

	req, wallet := signedRequest(t, http.MethodPost, "/oauth/x/initiate", nil)
	svc.EXPECT().Initiate(mock.Anything, oauth.ProviderX, wallet).
		Return(&oauth.InitiateResponse{SessionID: "sid", AuthorizationURL: "https://x.com/i/oauth2/authorize"}, nil).
		Once()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	var got oauth.InitiateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.SessionID != "sid" || got.AuthorizationURL == "" {
		t.Fatalf("unexpected response %+v", got)
	}
}

func TestInitiateHTTP_Rejections(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newOAuthTestServer(t, svc)

	t.Run("unsigned", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/oauth/x/initiate", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
		}
	})

	t.Run("body wallet differs from signer", func(t *testing.T) {
		body := []byte(`{"wallet_address":"0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"}`)
		req, _ := signedRequest(t, http.MethodPost, "/oauth/x/initiate", body)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected status %d, got %d", http.StatusForbidden, rec.Code)
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		req, _ := signedRequest(t, http.MethodPost, "/oauth/github/initiate", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
		}
	})
}

func TestCallbackHTTP(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newOAuthTestServer(t, svc)

	connected := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.EXPECT().
		Complete(mock.Anything, oauth.ProviderDiscord, &oauth.CallbackRequest{Code: "c", State: "s", SessionID: "sid"}).
		Return(&oauth.Link{
			Provider:       oauth.ProviderDiscord,
			WalletAddress:  walletA,
			ExternalUserID: "80351110224678912",
			Handle:         "nelly",
			AccessToken:    "secret-access",
			RefreshToken:   "secret-refresh",
			IsActive:       true,
			ConnectedAt:    connected,
		}, nil).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/oauth/discord/callback",
		bytes.NewBufferString(`{"code":"c","state":"s","session_id":"sid"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	if bytes.Contains(rec.Body.Bytes(), []byte("secret-")) {
		t.Fatalf("tokens leaked in response: %s", rec.Body.String())
	}
	var got oauth.LinkResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Handle != "nelly" || got.WalletAddress != walletA {
		t.Fatalf("unexpected link %+v", got)
	}
}

func TestCallbackHTTP_SessionExpired(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newOAuthTestServer(t, svc)

	svc.EXPECT().Complete(mock.Anything, oauth.ProviderX, mock.Anything).
		Return(nil, toServiceError(oauth.ErrSessionExpired)).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/oauth/x/callback",
		bytes.NewBufferString(`{"code":"c","state":"s","session_id":"sid"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got["error"] != "session expired, please connect again" {
		t.Fatalf("unexpected body %v", got)
	}
}

func TestDisconnectHTTP(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newOAuthTestServer(t, svc)

	req, wallet := signedRequest(t, http.MethodPost, "/oauth/x/disconnect", nil)
	svc.EXPECT().Disconnect(mock.Anything, oauth.ProviderX, wallet).
		Return(apperrors.ResourceNotFoundError(oauth.ErrLinkNotFound, "no active link for this provider")).
		Once()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestLinksHTTP(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newOAuthTestServer(t, svc)

	svc.EXPECT().Links(mock.Anything, walletA).
		Return([]*oauth.Link{{Provider: oauth.ProviderX, WalletAddress: walletA, ExternalUserID: "X1", AccessToken: "secret-access"}}, nil).
		Once()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/oauth/links/"+walletA, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	var got linksResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if len(got.Links) != 1 || got.Links[0].ExternalUserID != "X1" {
		t.Fatalf("unexpected links %+v", got.Links)
	}
	if bytes.Contains(rec.Body.Bytes(), []byte("secret-access")) {
		t.Fatalf("tokens leaked in response")
	}
}

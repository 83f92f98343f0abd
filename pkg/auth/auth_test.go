package auth

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang-jwt/jwt/v5"
)

func signPersonal(t *testing.T, key *ecdsa.PrivateKey, message string) string {
	t.Helper()
	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(message), message)
	sig, err := crypto.Sign(crypto.Keccak256Hash([]byte(prefixed)).Bytes(), key)
	if err != nil {
		t.Fatalf("Sign() failed: %v", err)
	}
	sig[64] += 27
	return "0x" + hex.EncodeToString(sig)
}

func TestVerifyEIP191Signature(t *testing.T) {
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() failed: %v", err)
	}
	want := crypto.PubkeyToAddress(key.PublicKey)

	got, err := VerifyEIP191Signature("hello", signPersonal(t, key, "hello"))
	if err != nil {
		t.Fatalf("VerifyEIP191Signature() failed: %v", err)
	}
	if got != want {
		t.Fatalf("expected %s, got %s", want.Hex(), got.Hex())
	}

	got, err = VerifyEIP191Signature("tampered", signPersonal(t, key, "hello"))
	if err == nil && got == want {
		t.Fatalf("tampered message recovered the signer")
	}

	if _, err = VerifyEIP191Signature("hello", "0x1234"); err == nil {
		t.Fatalf("expected error for short signature")
	}
}

func TestSignedAt(t *testing.T) {
	ts, err := SignedAt("Link X to card\nTimestamp: 1700000000\n")
	if err != nil {
		t.Fatalf("SignedAt() failed: %v", err)
	}
	if ts.Unix() != 1700000000 {
		t.Fatalf("expected 1700000000, got %d", ts.Unix())
	}

	if _, err = SignedAt("no time here"); err != ErrMissingTimestamp {
		t.Fatalf("expected ErrMissingTimestamp, got %v", err)
	}
	if _, err = SignedAt("timestamp: yesterday"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestValidateEVMAddress(t *testing.T) {
	cases := map[string]bool{
		"0x52908400098527886E0F7030069857D2E4169EE7": true,
		"52908400098527886E0F7030069857D2E4169EE7":   false,
		"0x1234":                                     false,
		"0xZZ908400098527886E0F7030069857D2E4169EE7": false,
	}
	for addr, want := range cases {
		if got := ValidateEVMAddress(addr); got != want {
			t.Errorf("ValidateEVMAddress(%q) = %v, want %v", addr, got, want)
		}
	}
}

func TestRequireWalletSignature(t *testing.T) {
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() failed: %v", err)
	}
	want := crypto.PubkeyToAddress(key.PublicKey).Hex()

	var seen string
	h := RequireWalletSignature(5 * time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = WalletAddressFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	fresh := fmt.Sprintf("connect\ntimestamp: %d", time.Now().Unix())
	stale := fmt.Sprintf("connect\ntimestamp: %d", time.Now().Add(-time.Hour).Unix())

	tests := []struct {
		name    string
		message string
		sig     string
		status  int
	}{
		{"valid", fresh, signPersonal(t, key, fresh), http.StatusNoContent},
		{"missing headers", "", "", http.StatusUnauthorized},
		{"stale", stale, signPersonal(t, key, stale), http.StatusUnauthorized},
		{"no timestamp", "connect", signPersonal(t, key, "connect"), http.StatusUnauthorized},
		{"bad signature", fresh, "0xdead", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = ""
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.message != "" {
				req.Header.Set(HeaderMessage, tt.message)
				req.Header.Set(HeaderSignature, tt.sig)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, rec.Code)
			}
			if tt.status == http.StatusNoContent && seen != want {
				t.Fatalf("expected wallet %s in context, got %q", want, seen)
			}
		})
	}
}

func TestJWTValidator(t *testing.T) {
	v, err := NewJWTValidator([]byte("s3cret"), "card-ops")
	if err != nil {
		t.Fatalf("NewJWTValidator() failed: %v", err)
	}

	token, err := v.Issue("operator-1", time.Minute)
	if err != nil {
		t.Fatalf("Issue() failed: %v", err)
	}
	claims, err := v.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() failed: %v", err)
	}
	if claims.Subject != "operator-1" {
		t.Fatalf("expected subject operator-1, got %s", claims.Subject)
	}

	expired, _ := v.Issue("operator-1", -time.Minute)
	if _, err = v.ValidateToken(expired); err == nil {
		t.Fatalf("expected expired token to fail")
	}

	other, _ := NewJWTValidator([]byte("other"), "card-ops")
	forged, _ := other.Issue("operator-1", time.Minute)
	if _, err = v.ValidateToken(forged); err == nil {
		t.Fatalf("expected token signed with another secret to fail")
	}

	wrongIssuer := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "operator-1",
		Issuer:    "someone-else",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	signed, _ := wrongIssuer.SignedString([]byte("s3cret"))
	if _, err = v.ValidateToken(signed); err == nil {
		t.Fatalf("expected wrong issuer to fail")
	}

	if _, err = NewJWTValidator(nil, ""); err != ErrEmptySecret {
		t.Fatalf("expected ErrEmptySecret, got %v", err)
	}
}

func TestRequireBearer(t *testing.T) {
	v, _ := NewJWTValidator([]byte("s3cret"), "")
	h := RequireBearer(v)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sub, _ := SubjectFromContext(r.Context())
		_, _ = w.Write([]byte(sub))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}

	token, _ := v.Issue("ops", time.Minute)
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if rec.Body.String() != "ops" {
		t.Fatalf("expected subject ops, got %q", rec.Body.String())
	}
}

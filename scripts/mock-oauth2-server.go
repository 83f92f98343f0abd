//go:build ignore

// mock-oauth2-server.go - X-shaped OAuth2 provider for local account linking
//
// Usage:
//   go run scripts/mock-oauth2-server.go
//
// Point oauth.providers.x.{auth_url,token_url,userinfo_url} at this server.
// Authorization is granted immediately; PKCE verifiers are checked.

package main

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	port      = 8088
	expiresIn = 3600
)

type grant struct {
	challenge string
	userID    string
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

var (
	mu     sync.Mutex
	codes  = map[string]grant{}
	tokens = map[string]string{} // access or refresh token -> user id
)

func main() {
	r := chi.NewRouter()
	r.Get("/authorize", handleAuthorize)
	r.Post("/token", handleToken)
	r.Get("/me", handleMe)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("OK")) })

	addr := fmt.Sprintf(":%d", port)
	log.Printf("Mock OAuth2 server starting on http://localhost%s", addr)
	log.Printf("GET  /authorize - Redirects back with a code")
	log.Printf("POST /token     - authorization_code and refresh_token grants")
	log.Printf("GET  /me        - X-style user payload")
	log.Fatal(http.ListenAndServe(addr, r))
}

func handleAuthorize(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	redirect, err := url.Parse(q.Get("redirect_uri"))
	if err != nil || redirect.Scheme == "" {
		http.Error(w, "invalid redirect_uri", http.StatusBadRequest)
		return
	}

	code := uuid.NewString()
	mu.Lock()
	codes[code] = grant{challenge: q.Get("code_challenge"), userID: "1000000001"}
	mu.Unlock()

	back := redirect.Query()
	back.Set("code", code)
	back.Set("state", q.Get("state"))
	redirect.RawQuery = back.Encode()
	http.Redirect(w, r, redirect.String(), http.StatusFound)
}

func handleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		oauthError(w, "invalid_request", "failed to parse form")
		return
	}

	var userID string
	switch r.FormValue("grant_type") {
	case "authorization_code":
		mu.Lock()
		g, ok := codes[r.FormValue("code")]
		delete(codes, r.FormValue("code"))
		mu.Unlock()
		if !ok {
			oauthError(w, "invalid_grant", "authorization code is unknown or already used")
			return
		}
		if g.challenge != "" && s256(r.FormValue("code_verifier")) != g.challenge {
			oauthError(w, "invalid_grant", "code_verifier does not match the challenge")
			return
		}
		userID = g.userID
	case "refresh_token":
		mu.Lock()
		id, ok := tokens[r.FormValue("refresh_token")]
		mu.Unlock()
		if !ok {
			oauthError(w, "invalid_grant", "refresh token is unknown")
			return
		}
		userID = id
	default:
		oauthError(w, "unsupported_grant_type", r.FormValue("grant_type"))
		return
	}

	resp := tokenResponse{
		AccessToken:  uuid.NewString(),
		RefreshToken: uuid.NewString(),
		TokenType:    "bearer",
		ExpiresIn:    expiresIn,
	}
	mu.Lock()
	tokens[resp.AccessToken] = userID
	tokens[resp.RefreshToken] = userID
	mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
	log.Printf("Issued tokens for user %s", userID)
}

func handleMe(w http.ResponseWriter, r *http.Request) {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	if len(header) <= len(prefix) {
		http.Error(w, `{"title":"Unauthorized"}`, http.StatusUnauthorized)
		return
	}
	mu.Lock()
	userID, ok := tokens[header[len(prefix):]]
	mu.Unlock()
	if !ok {
		http.Error(w, `{"title":"Unauthorized"}`, http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"data": map[string]string{
			"id":       userID,
			"username": "local_user",
			"name":     "Local User",
		},
	})
}

func oauthError(w http.ResponseWriter, code, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code, "error_description": description})
}

func s256(verifier string) string {
	sum := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// Package oauth holds the types of linking external social accounts to wallets.
package oauth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Provider names an external identity provider.
type Provider string

// Supported providers
const (
	ProviderX       Provider = "x"
	ProviderDiscord Provider = "discord"
)

// ParseProvider validates a provider name taken from a URL or config.
func ParseProvider(s string) (Provider, error) {
	switch p := Provider(s); p {
	case ProviderX, ProviderDiscord:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownProvider, s)
	}
}

// Session is a one-time authorization attempt. CodeVerifier never leaves the server.
type Session struct {
	ID            string
	Provider      Provider
	State         string
	CodeVerifier  string
	WalletAddress string
	ExpiresAt     time.Time
	Used          bool
	UsedAt        *time.Time
	CreatedAt     time.Time
}

// Expired reports whether the session can no longer be completed at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Identity is the provider's view of the user, parsed from a validated payload.
type Identity struct {
	ExternalUserID string
	Handle         string
	DisplayName    string
	AvatarURL      string
	// GuildMember is nil when membership was not checked or the lookup failed.
	GuildMember *bool
}

// Link binds an external account to a wallet. At most one active link exists
// per (provider, external user) and per (provider, wallet).
type Link struct {
	ID             uuid.UUID
	WalletAddress  string
	Provider       Provider
	ExternalUserID string
	Handle         string
	DisplayName    string
	AvatarURL      string
	GuildMember    *bool
	AccessToken    string
	RefreshToken   string
	TokenExpiresAt *time.Time
	IsActive       bool
	ConnectedAt    time.Time
	DisconnectedAt *time.Time
}

// TokenExpired reports whether the access token is past its expiry at now.
// Tokens without a known expiry are treated as live.
func (l *Link) TokenExpired(now time.Time) bool {
	return l.TokenExpiresAt != nil && !now.Before(*l.TokenExpiresAt)
}

// InitiateRequest starts an authorization attempt for a wallet
type InitiateRequest struct {
	WalletAddress string `json:"wallet_address"`
}

// InitiateResponse is returned to the client for the browser redirect
type InitiateResponse struct {
	SessionID        string `json:"session_id"`
	AuthorizationURL string `json:"authorization_url"`
}

// CallbackRequest carries the provider redirect parameters
type CallbackRequest struct {
	Code      string `json:"code"`
	State     string `json:"state"`
	SessionID string `json:"session_id"`
}

// LinkResponse is the public view of a link, without tokens
type LinkResponse struct {
	Provider       Provider   `json:"provider"`
	WalletAddress  string     `json:"wallet_address"`
	ExternalUserID string     `json:"external_user_id"`
	Handle         string     `json:"handle"`
	DisplayName    string     `json:"display_name,omitempty"`
	AvatarURL      string     `json:"avatar_url,omitempty"`
	GuildMember    *bool      `json:"guild_member,omitempty"`
	ConnectedAt    time.Time  `json:"connected_at"`
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty"`
}

// ToResponse strips secrets from l
func (l *Link) ToResponse() *LinkResponse {
	return &LinkResponse{
		Provider:       l.Provider,
		WalletAddress:  l.WalletAddress,
		ExternalUserID: l.ExternalUserID,
		Handle:         l.Handle,
		DisplayName:    l.DisplayName,
		AvatarURL:      l.AvatarURL,
		GuildMember:    l.GuildMember,
		ConnectedAt:    l.ConnectedAt,
		TokenExpiresAt: l.TokenExpiresAt,
	}
}

// Package store persists OAuth sessions and identity links in Postgres.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/chainsafe/card-bridge/pkg/oauth"
)

// Store is the persistence of sessions and links. Single use of sessions and
// uniqueness of active links are enforced by the database, not by callers.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	// CreateSession inserts s and marks any earlier unused session for the same
	// wallet and provider as used, returning how many were superseded.
	CreateSession(ctx context.Context, s *oauth.Session) (int64, error)
	GetSession(ctx context.Context, id string) (*oauth.Session, error)
	// ConsumeSession flips used from false to true in a single conditional update.
	ConsumeSession(ctx context.Context, id string, at time.Time) error
	DeleteExpiredSessions(ctx context.Context, before time.Time) (int64, error)

	GetActiveLinkByExternalID(ctx context.Context, provider oauth.Provider, externalUserID string) (*oauth.Link, error)
	GetActiveLinkByWallet(ctx context.Context, provider oauth.Provider, walletAddress string) (*oauth.Link, error)
	ListActiveLinks(ctx context.Context, walletAddress string) ([]*oauth.Link, error)
	// ReplaceLink deactivates the wallet's active link for the provider, if any,
	// and inserts link in one transaction. It reports whether a link was replaced.
	ReplaceLink(ctx context.Context, link *oauth.Link, at time.Time) (bool, error)
	DeactivateLink(ctx context.Context, provider oauth.Provider, walletAddress string, at time.Time) error
	UpdateTokens(ctx context.Context, id uuid.UUID, accessToken, refreshToken string, expiresAt *time.Time) error
	UpdateProfile(ctx context.Context, id uuid.UUID, identity *oauth.Identity) error
}

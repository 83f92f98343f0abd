// Package service implements account linking: authorization sessions, the
// callback validator and provider token upkeep.
package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/chainsafe/card-bridge/internal/metrics"
	apperrors "github.com/chainsafe/card-bridge/pkg/app/errors"
	"github.com/chainsafe/card-bridge/pkg/auth"
	"github.com/chainsafe/card-bridge/pkg/config"
	"github.com/chainsafe/card-bridge/pkg/oauth"
	"github.com/chainsafe/card-bridge/pkg/oauth/provider"
	"github.com/chainsafe/card-bridge/pkg/oauth/store"
)

const stateBytes = 32

// Users answers whether a wallet has registered.
//
//go:generate mockery --name Users --output mocks --outpkg mocks --filename mock_users.go --with-expecter
type Users interface {
	UserExists(ctx context.Context, walletAddress string) (bool, error)
}

// Service links external accounts to registered wallets.
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	// Initiate starts an authorization session and returns the provider redirect.
	Initiate(ctx context.Context, name oauth.Provider, walletAddress string) (*oauth.InitiateResponse, error)
	// Complete validates a provider callback and persists the resulting link.
	Complete(ctx context.Context, name oauth.Provider, req *oauth.CallbackRequest) (*oauth.Link, error)
	Disconnect(ctx context.Context, name oauth.Provider, walletAddress string) error
	Links(ctx context.Context, walletAddress string) ([]*oauth.Link, error)
	// FreshToken returns an access token for the wallet's link, refreshing it
	// first when expired. A failed refresh falls back to the stale token.
	FreshToken(ctx context.Context, name oauth.Provider, walletAddress string) (string, error)
	// SyncProfile re-reads the linked identity from the provider.
	SyncProfile(ctx context.Context, name oauth.Provider, walletAddress string) (*oauth.Link, error)
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

// Settings are the session lifetimes
type Settings struct {
	SessionTTL       time.Duration
	SessionRetention time.Duration
}

// SettingsFromConfig extracts the service settings from the oauth config
func SettingsFromConfig(cfg config.OAuthConfig) Settings {
	return Settings{
		SessionTTL:       cfg.SessionTTL,
		SessionRetention: cfg.SessionRetention,
	}
}

type oauthService struct {
	store     store.Store
	users     Users
	providers provider.Registry
	settings  Settings
	now       func() time.Time
	logger    *zap.Logger
}

// NewService creates the linking service
func NewService(st store.Store, users Users, providers provider.Registry, settings Settings, logger *zap.Logger) Service {
	return &oauthService{
		store:     st,
		users:     users,
		providers: providers,
		settings:  settings,
		now:       time.Now,
		logger:    logger,
	}
}

// Initiate creates a session for walletAddress.
//
// Any earlier unused session of the wallet for the same provider is
// superseded, so retrying initiation never leaves several live sessions.
func (s *oauthService) Initiate(ctx context.Context, name oauth.Provider, walletAddress string) (*oauth.InitiateResponse, error) {
	p, err := s.providers.Get(name)
	if err != nil {
		return nil, toServiceError(err)
	}
	if !auth.ValidateEVMAddress(walletAddress) {
		return nil, apperrors.BadRequestError(nil, "invalid wallet address")
	}
	walletAddress = auth.NormalizeAddress(walletAddress)

	exists, err := s.users.UserExists(ctx, walletAddress)
	if err != nil {
		return nil, apperrors.GeneralError(fmt.Errorf("failed to check user: %w", err))
	}
	if !exists {
		return nil, toServiceError(oauth.ErrUserNotFound)
	}

	state, err := randomState()
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	var verifier string
	if p.UsesPKCE() {
		verifier = oauth2.GenerateVerifier()
	}

	now := s.now()
	session := &oauth.Session{
		ID:            uuid.NewString(),
		Provider:      name,
		State:         state,
		CodeVerifier:  verifier,
		WalletAddress: walletAddress,
		ExpiresAt:     now.Add(s.settings.SessionTTL),
		CreatedAt:     now,
	}

	superseded, err := s.store.CreateSession(ctx, session)
	if err != nil {
		return nil, apperrors.GeneralError(fmt.Errorf("failed to create session: %w", err))
	}
	if superseded > 0 {
		s.logger.Debug("superseded earlier sessions",
			zap.String("provider", string(name)),
			zap.String("wallet_address", walletAddress),
			zap.Int64("count", superseded))
	}

	metrics.OAuthInitiations.WithLabelValues(string(name)).Inc()

	return &oauth.InitiateResponse{
		SessionID:        session.ID,
		AuthorizationURL: p.AuthCodeURL(state, verifier),
	}, nil
}

// Complete runs the callback checks in order. The session is consumed before
// any provider call so a replayed callback fails even if the exchange errors.
func (s *oauthService) Complete(ctx context.Context, name oauth.Provider, req *oauth.CallbackRequest) (*oauth.Link, error) {
	link, err := s.complete(ctx, name, req)
	metrics.OAuthCallbacks.WithLabelValues(string(name), callbackResult(err)).Inc()
	if err != nil {
		return nil, toServiceError(err)
	}
	return link, nil
}

func (s *oauthService) complete(ctx context.Context, name oauth.Provider, req *oauth.CallbackRequest) (*oauth.Link, error) {
	if req.Code == "" || req.State == "" || req.SessionID == "" {
		return nil, apperrors.BadRequestError(nil, "code, state and session_id are required")
	}

	p, err := s.providers.Get(name)
	if err != nil {
		return nil, err
	}

	session, err := s.store.GetSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if session.Provider != name {
		return nil, oauth.ErrSessionNotFound
	}
	if session.Used {
		return nil, oauth.ErrSessionAlreadyUsed
	}
	if subtle.ConstantTimeCompare([]byte(req.State), []byte(session.State)) != 1 {
		s.logger.Warn("oauth state mismatch",
			zap.String("provider", string(name)),
			zap.String("session_id", session.ID),
			zap.String("wallet_address", session.WalletAddress))
		return nil, oauth.ErrStateMismatch
	}

	now := s.now()
	if session.Expired(now) {
		return nil, oauth.ErrSessionExpired
	}
	if err := s.store.ConsumeSession(ctx, session.ID, now); err != nil {
		return nil, err
	}

	tok, err := p.Exchange(ctx, req.Code, session.CodeVerifier)
	if err != nil {
		return nil, err
	}
	identity, err := p.Identity(ctx, tok)
	if err != nil {
		return nil, err
	}

	holder, err := s.store.GetActiveLinkByExternalID(ctx, name, identity.ExternalUserID)
	switch {
	case err == nil && holder.WalletAddress != session.WalletAddress:
		return nil, oauth.ErrAccountTaken
	case err != nil && !errors.Is(err, oauth.ErrLinkNotFound):
		return nil, fmt.Errorf("failed to look up external account: %w", err)
	}

	link := &oauth.Link{
		ID:             uuid.New(),
		WalletAddress:  session.WalletAddress,
		Provider:       name,
		ExternalUserID: identity.ExternalUserID,
		Handle:         identity.Handle,
		DisplayName:    identity.DisplayName,
		AvatarURL:      identity.AvatarURL,
		GuildMember:    identity.GuildMember,
		AccessToken:    tok.AccessToken,
		RefreshToken:   tok.RefreshToken,
		TokenExpiresAt: tokenExpiry(tok),
		IsActive:       true,
		ConnectedAt:    now,
	}

	replaced, err := s.store.ReplaceLink(ctx, link, now)
	if err != nil {
		return nil, err
	}
	if replaced {
		s.logger.Info("replaced previous link",
			zap.String("provider", string(name)),
			zap.String("wallet_address", link.WalletAddress),
			zap.String("external_user_id", link.ExternalUserID))
	}

	return link, nil
}

func (s *oauthService) Disconnect(ctx context.Context, name oauth.Provider, walletAddress string) error {
	if _, err := s.providers.Get(name); err != nil {
		return toServiceError(err)
	}
	if err := s.store.DeactivateLink(ctx, name, auth.NormalizeAddress(walletAddress), s.now()); err != nil {
		return toServiceError(err)
	}
	return nil
}

func (s *oauthService) Links(ctx context.Context, walletAddress string) ([]*oauth.Link, error) {
	if !auth.ValidateEVMAddress(walletAddress) {
		return nil, apperrors.BadRequestError(nil, "invalid wallet address")
	}
	links, err := s.store.ListActiveLinks(ctx, auth.NormalizeAddress(walletAddress))
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	return links, nil
}

func (s *oauthService) FreshToken(ctx context.Context, name oauth.Provider, walletAddress string) (string, error) {
	p, link, err := s.activeLink(ctx, name, walletAddress)
	if err != nil {
		return "", err
	}
	return s.freshToken(ctx, p, link), nil
}

func (s *oauthService) SyncProfile(ctx context.Context, name oauth.Provider, walletAddress string) (*oauth.Link, error) {
	p, link, err := s.activeLink(ctx, name, walletAddress)
	if err != nil {
		return nil, err
	}

	access := s.freshToken(ctx, p, link)
	identity, err := p.Identity(ctx, &oauth2.Token{AccessToken: access, TokenType: "Bearer"})
	if err != nil {
		return nil, toServiceError(err)
	}
	if identity.ExternalUserID != link.ExternalUserID {
		return nil, toServiceError(&oauth.ProviderError{
			Provider:    name,
			Op:          "identity",
			Code:        "account_mismatch",
			Description: "provider returned a different account, please connect again",
		})
	}

	if err := s.store.UpdateProfile(ctx, link.ID, identity); err != nil {
		return nil, apperrors.GeneralError(fmt.Errorf("failed to update profile: %w", err))
	}
	link.Handle = identity.Handle
	link.DisplayName = identity.DisplayName
	link.AvatarURL = identity.AvatarURL
	link.GuildMember = identity.GuildMember
	return link, nil
}

func (s *oauthService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	n, err := s.store.DeleteExpiredSessions(ctx, s.now().Add(-s.settings.SessionRetention))
	if err != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", err)
	}
	metrics.SessionsPurged.Add(float64(n))
	return n, nil
}

func (s *oauthService) activeLink(ctx context.Context, name oauth.Provider, walletAddress string) (provider.Provider, *oauth.Link, error) {
	p, err := s.providers.Get(name)
	if err != nil {
		return nil, nil, toServiceError(err)
	}
	link, err := s.store.GetActiveLinkByWallet(ctx, name, auth.NormalizeAddress(walletAddress))
	if err != nil {
		return nil, nil, toServiceError(err)
	}
	return p, link, nil
}

// freshToken never fails: callers proceed with whatever token is available.
func (s *oauthService) freshToken(ctx context.Context, p provider.Provider, link *oauth.Link) string {
	if !link.TokenExpired(s.now()) {
		return link.AccessToken
	}

	fields := []zap.Field{
		zap.String("provider", string(link.Provider)),
		zap.String("wallet_address", link.WalletAddress),
	}
	if link.RefreshToken == "" {
		metrics.TokenRefreshes.WithLabelValues(string(link.Provider), "no_refresh_token").Inc()
		s.logger.Warn("access token expired and no refresh token is stored", fields...)
		return link.AccessToken
	}

	tok, err := p.Refresh(ctx, link.RefreshToken)
	if err != nil {
		metrics.TokenRefreshes.WithLabelValues(string(link.Provider), "failure").Inc()
		s.logger.Warn("token refresh failed, using stale token", append(fields, zap.Error(err))...)
		return link.AccessToken
	}
	metrics.TokenRefreshes.WithLabelValues(string(link.Provider), "success").Inc()

	refresh := tok.RefreshToken
	if refresh == "" {
		refresh = link.RefreshToken
	}
	expiry := tokenExpiry(tok)
	if err := s.store.UpdateTokens(ctx, link.ID, tok.AccessToken, refresh, expiry); err != nil {
		s.logger.Warn("failed to persist refreshed tokens", append(fields, zap.Error(err))...)
	}

	link.AccessToken = tok.AccessToken
	link.RefreshToken = refresh
	link.TokenExpiresAt = expiry
	return tok.AccessToken
}

func randomState() (string, error) {
	b := make([]byte, stateBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// tokenExpiry converts the expiry x/oauth2 derived from expires_in.
func tokenExpiry(tok *oauth2.Token) *time.Time {
	if tok.Expiry.IsZero() {
		return nil
	}
	expiry := tok.Expiry.UTC()
	return &expiry
}

func callbackResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, oauth.ErrSessionInvalid):
		return "session_invalid"
	case errors.Is(err, oauth.ErrAccountTaken), errors.Is(err, oauth.ErrLinkConflict):
		return "account_taken"
	case errors.Is(err, oauth.ErrProviderError):
		return "provider_error"
	default:
		return "error"
	}
}

// toServiceError maps linking failures onto the API error categories. Every
// session failure asks the user to start over from initiation.
func toServiceError(err error) error {
	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) {
		return err
	}

	var provErr *oauth.ProviderError
	switch {
	case errors.Is(err, oauth.ErrUnknownProvider):
		return apperrors.ResourceNotFoundError(err, "unknown provider")
	case errors.Is(err, oauth.ErrUserNotFound):
		return apperrors.ResourceNotFoundError(err, "wallet is not registered")
	case errors.Is(err, oauth.ErrSessionNotFound):
		return apperrors.BadRequestError(err, "session not found, please connect again")
	case errors.Is(err, oauth.ErrSessionAlreadyUsed):
		return apperrors.BadRequestError(err, "session already used, please connect again")
	case errors.Is(err, oauth.ErrSessionExpired):
		return apperrors.BadRequestError(err, "session expired, please connect again")
	case errors.Is(err, oauth.ErrStateMismatch):
		return apperrors.BadRequestError(err, "state mismatch, please connect again")
	case errors.Is(err, oauth.ErrAccountTaken):
		return apperrors.ConflictError(err, "account already linked to another wallet, disconnect it first")
	case errors.Is(err, oauth.ErrLinkConflict):
		return apperrors.ConflictError(err, "link changed concurrently, please retry")
	case errors.Is(err, oauth.ErrLinkNotFound):
		return apperrors.ResourceNotFoundError(err, "no active link for this provider")
	case errors.As(err, &provErr):
		if provErr.Code == "invalid_grant" {
			return apperrors.BadRequestError(err, provErr.Guidance())
		}
		return apperrors.DependencyError(err, provErr.Guidance())
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.TimeoutError(err, "request timed out")
	default:
		return apperrors.GeneralError(err)
	}
}

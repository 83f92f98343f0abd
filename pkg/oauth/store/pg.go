package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/chainsafe/card-bridge/pkg/keys"
	"github.com/chainsafe/card-bridge/pkg/oauth"
	"github.com/chainsafe/card-bridge/pkg/pgutil"
)

type pgStore struct {
	db     *bun.DB
	cipher keys.Cipher
}

// NewStore creates a postgres Store. Tokens and verifiers are encrypted with cipher.
func NewStore(db *bun.DB, cipher keys.Cipher) Store {
	return &pgStore{db: db, cipher: cipher}
}

func (s *pgStore) CreateSession(ctx context.Context, session *oauth.Session) (int64, error) {
	verifier, err := s.encrypt(session.CodeVerifier)
	if err != nil {
		return 0, fmt.Errorf("failed to encrypt code verifier: %w", err)
	}

	dao := &SessionDao{
		ID:            session.ID,
		Provider:      string(session.Provider),
		State:         session.State,
		CodeVerifier:  verifier,
		WalletAddress: session.WalletAddress,
		ExpiresAt:     session.ExpiresAt,
		CreatedAt:     session.CreatedAt,
	}

	var superseded int64
	err = s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model((*SessionDao)(nil)).
			Set("used = true").
			Set("used_at = ?", session.CreatedAt).
			Where("wallet_address = ?", session.WalletAddress).
			Where("provider = ?", string(session.Provider)).
			Where("used = false").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to supersede sessions: %w", err)
		}
		if superseded, err = res.RowsAffected(); err != nil {
			return err
		}

		if _, err := tx.NewInsert().Model(dao).Returning("created_at").Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert session: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	session.CreatedAt = dao.CreatedAt
	return superseded, nil
}

func (s *pgStore) GetSession(ctx context.Context, id string) (*oauth.Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, oauth.ErrSessionNotFound
	}

	dao := new(SessionDao)
	err := s.db.NewSelect().Model(dao).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, oauth.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	verifier, err := s.decrypt(dao.CodeVerifier)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt code verifier: %w", err)
	}
	return toSession(dao, verifier), nil
}

func (s *pgStore) ConsumeSession(ctx context.Context, id string, at time.Time) error {
	res, err := s.db.NewUpdate().
		Model((*SessionDao)(nil)).
		Set("used = true").
		Set("used_at = ?", at).
		Where("id = ?", id).
		Where("used = false").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to consume session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to consume session: %w", err)
	}
	if n == 0 {
		return oauth.ErrSessionAlreadyUsed
	}
	return nil
}

func (s *pgStore) DeleteExpiredSessions(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.NewDelete().
		Model((*SessionDao)(nil)).
		Where("expires_at < ?", before).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return res.RowsAffected()
}

func (s *pgStore) GetActiveLinkByExternalID(ctx context.Context, provider oauth.Provider, externalUserID string) (*oauth.Link, error) {
	return s.getActiveLink(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("provider = ?", string(provider)).Where("external_user_id = ?", externalUserID)
	})
}

func (s *pgStore) GetActiveLinkByWallet(ctx context.Context, provider oauth.Provider, walletAddress string) (*oauth.Link, error) {
	return s.getActiveLink(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("provider = ?", string(provider)).Where("wallet_address = ?", walletAddress)
	})
}

func (s *pgStore) getActiveLink(ctx context.Context, filter func(*bun.SelectQuery) *bun.SelectQuery) (*oauth.Link, error) {
	dao := new(LinkDao)
	err := filter(s.db.NewSelect().Model(dao)).Where("is_active").Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, oauth.ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to get link: %w", err)
	}
	return s.toLink(dao)
}

func (s *pgStore) ListActiveLinks(ctx context.Context, walletAddress string) ([]*oauth.Link, error) {
	var daos []LinkDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("wallet_address = ?", walletAddress).
		Where("is_active").
		Order("provider ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	links := make([]*oauth.Link, 0, len(daos))
	for i := range daos {
		l, err := s.toLink(&daos[i])
		if err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, nil
}

func (s *pgStore) ReplaceLink(ctx context.Context, link *oauth.Link, at time.Time) (bool, error) {
	dao, err := s.toLinkDao(link)
	if err != nil {
		return false, err
	}
	dao.IsActive = true
	dao.ConnectedAt = at
	dao.UpdatedAt = at

	var replaced bool
	err = s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		n, err := deactivate(ctx, tx, link.Provider, link.WalletAddress, at)
		if err != nil {
			return err
		}
		replaced = n > 0

		if _, err := tx.NewInsert().Model(dao).Exec(ctx); err != nil {
			if constraint, ok := pgutil.UniqueViolationConstraint(err); ok {
				if constraint == WalletActiveIndex {
					return oauth.ErrLinkConflict
				}
				return oauth.ErrAccountTaken
			}
			return fmt.Errorf("failed to insert link: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	link.IsActive = true
	link.ConnectedAt = at
	return replaced, nil
}

func (s *pgStore) DeactivateLink(ctx context.Context, provider oauth.Provider, walletAddress string, at time.Time) error {
	n, err := deactivate(ctx, s.db, provider, walletAddress, at)
	if err != nil {
		return err
	}
	if n == 0 {
		return oauth.ErrLinkNotFound
	}
	return nil
}

func deactivate(ctx context.Context, db bun.IDB, provider oauth.Provider, walletAddress string, at time.Time) (int64, error) {
	res, err := db.NewUpdate().
		Model((*LinkDao)(nil)).
		Set("is_active = false").
		Set("disconnected_at = ?", at).
		Set("updated_at = ?", at).
		Where("provider = ?", string(provider)).
		Where("wallet_address = ?", walletAddress).
		Where("is_active").
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate link: %w", err)
	}
	return res.RowsAffected()
}

func (s *pgStore) UpdateTokens(ctx context.Context, id uuid.UUID, accessToken, refreshToken string, expiresAt *time.Time) error {
	access, err := s.encrypt(accessToken)
	if err != nil {
		return fmt.Errorf("failed to encrypt access token: %w", err)
	}
	refresh, err := s.encrypt(refreshToken)
	if err != nil {
		return fmt.Errorf("failed to encrypt refresh token: %w", err)
	}

	_, err = s.db.NewUpdate().
		Model((*LinkDao)(nil)).
		Set("access_token = ?", access).
		Set("refresh_token = ?", refresh).
		Set("token_expires_at = ?", expiresAt).
		Set("updated_at = current_timestamp").
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update tokens: %w", err)
	}
	return nil
}

func (s *pgStore) UpdateProfile(ctx context.Context, id uuid.UUID, identity *oauth.Identity) error {
	_, err := s.db.NewUpdate().
		Model((*LinkDao)(nil)).
		Set("handle = ?", identity.Handle).
		Set("display_name = ?", identity.DisplayName).
		Set("avatar_url = ?", identity.AvatarURL).
		Set("guild_member = ?", identity.GuildMember).
		Set("updated_at = current_timestamp").
		Where("id = ?", id).
		Where("external_user_id = ?", identity.ExternalUserID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

func (s *pgStore) toLinkDao(link *oauth.Link) (*LinkDao, error) {
	access, err := s.encrypt(link.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt access token: %w", err)
	}
	refresh, err := s.encrypt(link.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt refresh token: %w", err)
	}

	return &LinkDao{
		ID:             link.ID,
		WalletAddress:  link.WalletAddress,
		Provider:       string(link.Provider),
		ExternalUserID: link.ExternalUserID,
		Handle:         link.Handle,
		DisplayName:    link.DisplayName,
		AvatarURL:      link.AvatarURL,
		GuildMember:    link.GuildMember,
		AccessToken:    access,
		RefreshToken:   refresh,
		TokenExpiresAt: link.TokenExpiresAt,
		IsActive:       link.IsActive,
		ConnectedAt:    link.ConnectedAt,
		DisconnectedAt: link.DisconnectedAt,
	}, nil
}

func (s *pgStore) toLink(dao *LinkDao) (*oauth.Link, error) {
	access, err := s.decrypt(dao.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt access token: %w", err)
	}
	refresh, err := s.decrypt(dao.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt refresh token: %w", err)
	}
	return toLink(dao, access, refresh), nil
}

// encrypt maps an empty secret to an empty column.
func (s *pgStore) encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}
	return s.cipher.Encrypt([]byte(plaintext))
}

func (s *pgStore) decrypt(encrypted string) (string, error) {
	if encrypted == "" {
		return "", nil
	}
	plaintext, err := s.cipher.Decrypt(encrypted)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

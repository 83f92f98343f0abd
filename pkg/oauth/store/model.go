package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/chainsafe/card-bridge/pkg/oauth"
)

// Partial unique indexes over active links. Their names identify which side
// of the link invariant a unique violation hit.
const (
	ExternalActiveIndex = "uq_identity_links_external_active"
	WalletActiveIndex   = "uq_identity_links_wallet_active"
)

// SessionDao maps to the 'oauth_sessions' table. CodeVerifier is stored encrypted.
type SessionDao struct {
	bun.BaseModel `bun:"table:oauth_sessions,alias:s"`
	ID            string     `bun:"id,pk,type:uuid"`
	Provider      string     `bun:"provider,notnull,type:varchar(32)"`
	State         string     `bun:"state,notnull,type:varchar(128)"`
	CodeVerifier  string     `bun:"code_verifier,notnull,type:text"`
	WalletAddress string     `bun:"wallet_address,notnull,type:varchar(42)"`
	ExpiresAt     time.Time  `bun:"expires_at,notnull"`
	Used          bool       `bun:"used,notnull"`
	UsedAt        *time.Time `bun:"used_at"`
	CreatedAt     time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// LinkDao maps to the 'identity_links' table. Tokens are stored encrypted.
type LinkDao struct {
	bun.BaseModel  `bun:"table:identity_links,alias:l"`
	ID             uuid.UUID  `bun:"id,pk,type:uuid"`
	WalletAddress  string     `bun:"wallet_address,notnull,type:varchar(42)"`
	Provider       string     `bun:"provider,notnull,type:varchar(32)"`
	ExternalUserID string     `bun:"external_user_id,notnull,type:varchar(64)"`
	Handle         string     `bun:"handle,notnull,type:varchar(64)"`
	DisplayName    string     `bun:"display_name,notnull,type:varchar(128)"`
	AvatarURL      string     `bun:"avatar_url,notnull,type:text"`
	GuildMember    *bool      `bun:"guild_member"`
	AccessToken    string     `bun:"access_token,notnull,type:text"`
	RefreshToken   string     `bun:"refresh_token,notnull,type:text"`
	TokenExpiresAt *time.Time `bun:"token_expires_at"`
	IsActive       bool       `bun:"is_active,notnull"`
	ConnectedAt    time.Time  `bun:"connected_at,nullzero,notnull,default:current_timestamp"`
	DisconnectedAt *time.Time `bun:"disconnected_at"`
	UpdatedAt      time.Time  `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func toSession(dao *SessionDao, verifier string) *oauth.Session {
	return &oauth.Session{
		ID:            dao.ID,
		Provider:      oauth.Provider(dao.Provider),
		State:         dao.State,
		CodeVerifier:  verifier,
		WalletAddress: dao.WalletAddress,
		ExpiresAt:     dao.ExpiresAt,
		Used:          dao.Used,
		UsedAt:        dao.UsedAt,
		CreatedAt:     dao.CreatedAt,
	}
}

func toLink(dao *LinkDao, access, refresh string) *oauth.Link {
	return &oauth.Link{
		ID:             dao.ID,
		WalletAddress:  dao.WalletAddress,
		Provider:       oauth.Provider(dao.Provider),
		ExternalUserID: dao.ExternalUserID,
		Handle:         dao.Handle,
		DisplayName:    dao.DisplayName,
		AvatarURL:      dao.AvatarURL,
		GuildMember:    dao.GuildMember,
		AccessToken:    access,
		RefreshToken:   refresh,
		TokenExpiresAt: dao.TokenExpiresAt,
		IsActive:       dao.IsActive,
		ConnectedAt:    dao.ConnectedAt,
		DisconnectedAt: dao.DisconnectedAt,
	}
}

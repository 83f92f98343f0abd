package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/chainsafe/card-bridge/pkg/keys"
	"github.com/chainsafe/card-bridge/pkg/oauth"
	"github.com/chainsafe/card-bridge/pkg/pgutil"
	mghelper "github.com/chainsafe/card-bridge/pkg/pgutil/migrations"
)

const (
	walletA = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	walletB = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

func setupStore(t *testing.T) (context.Context, Store, func(query string, args ...any) int) {
	t.Helper()

	ctx := context.Background()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	if err := mghelper.CreateSchema(ctx, db, &SessionDao{}, &LinkDao{}); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	if err := mghelper.CreatePartialUniqueIndex(ctx, db, &LinkDao{}, ExternalActiveIndex, "is_active", "provider", "external_user_id"); err != nil {
		t.Fatalf("failed to create index: %v", err)
	}
	if err := mghelper.CreatePartialUniqueIndex(ctx, db, &LinkDao{}, WalletActiveIndex, "is_active", "provider", "wallet_address"); err != nil {
		t.Fatalf("failed to create index: %v", err)
	}

	masterKey, err := keys.GenerateMasterKey()
	if err != nil {
		t.Fatalf("GenerateMasterKey() failed: %v", err)
	}
	cipher, err := keys.NewMasterKeyCipher(masterKey)
	if err != nil {
		t.Fatalf("NewMasterKeyCipher() failed: %v", err)
	}

	count := func(query string, args ...any) int {
		t.Helper()
		var n int
		if err := db.NewRaw(query, args...).Scan(ctx, &n); err != nil {
			t.Fatalf("count query failed: %v", err)
		}
		return n
	}

	return ctx, NewStore(db, cipher), count
}

func newSession(wallet string, now time.Time) *oauth.Session {
	return &oauth.Session{
		ID:            uuid.NewString(),
		Provider:      oauth.ProviderX,
		State:         uuid.NewString(),
		CodeVerifier:  "verifier-" + uuid.NewString(),
		WalletAddress: wallet,
		ExpiresAt:     now.Add(10 * time.Minute),
		CreatedAt:     now,
	}
}

func newLink(wallet, externalID string) *oauth.Link {
	expiry := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	return &oauth.Link{
		ID:             uuid.New(),
		WalletAddress:  wallet,
		Provider:       oauth.ProviderX,
		ExternalUserID: externalID,
		Handle:         "handle_" + externalID,
		AccessToken:    "access-" + externalID,
		RefreshToken:   "refresh-" + externalID,
		TokenExpiresAt: &expiry,
	}
}

func TestPGStore_CreateSession_SupersedesUnused(t *testing.T) {
	ctx, store, count := setupStore(t)
	now := time.Now().UTC()

	first := newSession(walletA, now)
	if n, err := store.CreateSession(ctx, first); err != nil || n != 0 {
		t.Fatalf("CreateSession() = %d, %v", n, err)
	}
	second := newSession(walletA, now.Add(time.Second))
	n, err := store.CreateSession(ctx, second)
	if err != nil {
		t.Fatalf("CreateSession() failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 superseded session, got %d", n)
	}

	got, err := store.GetSession(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetSession() failed: %v", err)
	}
	if !got.Used {
		t.Fatalf("superseded session must be used")
	}

	got, err = store.GetSession(ctx, second.ID)
	if err != nil {
		t.Fatalf("GetSession() failed: %v", err)
	}
	if got.Used || got.CodeVerifier != second.CodeVerifier || got.State != second.State {
		t.Fatalf("unexpected session %+v", got)
	}

	if n := count("SELECT count(*) FROM oauth_sessions WHERE code_verifier = ?", second.CodeVerifier); n != 0 {
		t.Fatalf("code verifier stored in plaintext")
	}
}

func TestPGStore_GetSession_NotFound(t *testing.T) {
	ctx, store, _ := setupStore(t)

	for _, id := range []string{uuid.NewString(), "not-a-uuid"} {
		if _, err := store.GetSession(ctx, id); !errors.Is(err, oauth.ErrSessionNotFound) {
			t.Fatalf("GetSession(%q): expected ErrSessionNotFound, got %v", id, err)
		}
	}
}

func TestPGStore_ConsumeSession_AtMostOnce(t *testing.T) {
	ctx, store, _ := setupStore(t)
	s := newSession(walletA, time.Now().UTC())
	if _, err := store.CreateSession(ctx, s); err != nil {
		t.Fatalf("CreateSession() failed: %v", err)
	}

	const callers = 8
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.ConsumeSession(ctx, s.ID, time.Now())
			switch {
			case err == nil:
				succeeded.Add(1)
			case !errors.Is(err, oauth.ErrSessionAlreadyUsed):
				t.Errorf("unexpected error %v", err)
			}
		}()
	}
	wg.Wait()

	if succeeded.Load() != 1 {
		t.Fatalf("expected exactly one consume to succeed, got %d", succeeded.Load())
	}
}

func TestPGStore_DeleteExpiredSessions(t *testing.T) {
	ctx, store, count := setupStore(t)
	now := time.Now().UTC()

	old := newSession(walletA, now.Add(-48*time.Hour))
	fresh := newSession(walletB, now)
	for _, s := range []*oauth.Session{old, fresh} {
		if _, err := store.CreateSession(ctx, s); err != nil {
			t.Fatalf("CreateSession() failed: %v", err)
		}
	}

	n, err := store.DeleteExpiredSessions(ctx, now.Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("DeleteExpiredSessions() failed: %v", err)
	}
	if n != 1 || count("SELECT count(*) FROM oauth_sessions") != 1 {
		t.Fatalf("expected only the old session to be purged, deleted %d", n)
	}
}

func TestPGStore_ReplaceLink_RelinkKeepsOneActive(t *testing.T) {
	ctx, store, count := setupStore(t)
	now := time.Now().UTC()

	if replaced, err := store.ReplaceLink(ctx, newLink(walletA, "1"), now); err != nil || replaced {
		t.Fatalf("ReplaceLink() = %v, %v", replaced, err)
	}
	replaced, err := store.ReplaceLink(ctx, newLink(walletA, "2"), now.Add(time.Minute))
	if err != nil {
		t.Fatalf("ReplaceLink() failed: %v", err)
	}
	if !replaced {
		t.Fatalf("expected the previous link to be replaced")
	}

	active, err := store.GetActiveLinkByWallet(ctx, oauth.ProviderX, walletA)
	if err != nil {
		t.Fatalf("GetActiveLinkByWallet() failed: %v", err)
	}
	if active.ExternalUserID != "2" || active.AccessToken != "access-2" || active.RefreshToken != "refresh-2" {
		t.Fatalf("unexpected active link %+v", active)
	}
	if n := count("SELECT count(*) FROM identity_links WHERE wallet_address = ? AND is_active", walletA); n != 1 {
		t.Fatalf("expected exactly one active link, got %d", n)
	}
	if n := count("SELECT count(*) FROM identity_links WHERE external_user_id = '1' AND disconnected_at IS NOT NULL"); n != 1 {
		t.Fatalf("expected the old link to carry a disconnect time")
	}
	if n := count("SELECT count(*) FROM identity_links WHERE access_token = 'access-2'"); n != 0 {
		t.Fatalf("access token stored in plaintext")
	}
}

func TestPGStore_ReplaceLink_AccountTakenLeavesWalletUntouched(t *testing.T) {
	ctx, store, count := setupStore(t)
	now := time.Now().UTC()

	if _, err := store.ReplaceLink(ctx, newLink(walletA, "X123"), now); err != nil {
		t.Fatalf("ReplaceLink() failed: %v", err)
	}
	if _, err := store.ReplaceLink(ctx, newLink(walletB, "X9"), now); err != nil {
		t.Fatalf("ReplaceLink() failed: %v", err)
	}

	_, err := store.ReplaceLink(ctx, newLink(walletB, "X123"), now.Add(time.Minute))
	if !errors.Is(err, oauth.ErrAccountTaken) {
		t.Fatalf("expected ErrAccountTaken, got %v", err)
	}

	// the transaction rolled back, walletB keeps its previous link
	active, err := store.GetActiveLinkByWallet(ctx, oauth.ProviderX, walletB)
	if err != nil {
		t.Fatalf("GetActiveLinkByWallet() failed: %v", err)
	}
	if active.ExternalUserID != "X9" {
		t.Fatalf("walletB link was mutated: %+v", active)
	}
	if n := count("SELECT count(*) FROM identity_links WHERE wallet_address = ?", walletB); n != 1 {
		t.Fatalf("expected no new rows for walletB, got %d", n)
	}
}

func TestPGStore_ReplaceLink_ConcurrentSameExternalAccount(t *testing.T) {
	ctx, store, count := setupStore(t)
	wallets := []string{
		walletA,
		walletB,
		"0xcccccccccccccccccccccccccccccccccccccccc",
		"0xdddddddddddddddddddddddddddddddddddddddd",
	}

	var wg sync.WaitGroup
	for _, w := range wallets {
		wg.Add(1)
		go func(wallet string) {
			defer wg.Done()
			_, err := store.ReplaceLink(ctx, newLink(wallet, "shared"), time.Now())
			if err != nil && !errors.Is(err, oauth.ErrAccountTaken) {
				t.Errorf("unexpected error %v", err)
			}
		}(w)
	}
	wg.Wait()

	if n := count("SELECT count(*) FROM identity_links WHERE external_user_id = 'shared' AND is_active"); n != 1 {
		t.Fatalf("expected exactly one active link for the external account, got %d", n)
	}
}

func TestPGStore_DeactivateAndList(t *testing.T) {
	ctx, store, _ := setupStore(t)
	now := time.Now().UTC()

	discord := newLink(walletA, "80351110224678912")
	discord.Provider = oauth.ProviderDiscord
	discord.RefreshToken = ""
	for _, l := range []*oauth.Link{newLink(walletA, "1"), discord} {
		if _, err := store.ReplaceLink(ctx, l, now); err != nil {
			t.Fatalf("ReplaceLink() failed: %v", err)
		}
	}

	links, err := store.ListActiveLinks(ctx, walletA)
	if err != nil {
		t.Fatalf("ListActiveLinks() failed: %v", err)
	}
	if len(links) != 2 || links[0].Provider != oauth.ProviderDiscord || links[0].RefreshToken != "" {
		t.Fatalf("unexpected links %+v", links)
	}

	if err := store.DeactivateLink(ctx, oauth.ProviderX, walletA, now); err != nil {
		t.Fatalf("DeactivateLink() failed: %v", err)
	}
	if err := store.DeactivateLink(ctx, oauth.ProviderX, walletA, now); !errors.Is(err, oauth.ErrLinkNotFound) {
		t.Fatalf("expected ErrLinkNotFound, got %v", err)
	}
	if _, err := store.GetActiveLinkByExternalID(ctx, oauth.ProviderX, "1"); !errors.Is(err, oauth.ErrLinkNotFound) {
		t.Fatalf("expected ErrLinkNotFound, got %v", err)
	}
}

func TestPGStore_UpdateTokensAndProfile(t *testing.T) {
	ctx, store, _ := setupStore(t)
	link := newLink(walletA, "1")
	if _, err := store.ReplaceLink(ctx, link, time.Now()); err != nil {
		t.Fatalf("ReplaceLink() failed: %v", err)
	}

	expiry := time.Now().Add(2 * time.Hour).UTC().Truncate(time.Second)
	if err := store.UpdateTokens(ctx, link.ID, "access-new", "refresh-new", &expiry); err != nil {
		t.Fatalf("UpdateTokens() failed: %v", err)
	}
	member := true
	if err := store.UpdateProfile(ctx, link.ID, &oauth.Identity{ExternalUserID: "1", Handle: "renamed", GuildMember: &member}); err != nil {
		t.Fatalf("UpdateProfile() failed: %v", err)
	}

	got, err := store.GetActiveLinkByExternalID(ctx, oauth.ProviderX, "1")
	if err != nil {
		t.Fatalf("GetActiveLinkByExternalID() failed: %v", err)
	}
	if got.AccessToken != "access-new" || got.RefreshToken != "refresh-new" {
		t.Fatalf("tokens not updated: %+v", got)
	}
	if got.TokenExpiresAt == nil || !got.TokenExpiresAt.Equal(expiry) {
		t.Fatalf("expected expiry %s, got %v", expiry, got.TokenExpiresAt)
	}
	if got.Handle != "renamed" || got.GuildMember == nil || !*got.GuildMember {
		t.Fatalf("profile not updated: %+v", got)
	}
}

package migrations

import (
	"context"
	"testing"

	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/card-bridge/pkg/migrations/apidb"
	"github.com/chainsafe/card-bridge/pkg/pgutil"
)

func TestAPIDBMigrations_Apply(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, apidb.Migrations)

	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}
	if group.IsZero() {
		t.Error("Expected migrations to run, but none were applied")
	}

	for _, table := range []string{"users", "oauth_sessions", "identity_links", "bun_migrations"} {
		pgutil.AssertTableExists(t, db, table)
	}

	pgutil.AssertIndexExists(t, db, "idx_oauth_sessions_wallet_address")
	pgutil.AssertIndexExists(t, db, "idx_oauth_sessions_expires_at")
	pgutil.AssertIndexExists(t, db, "idx_identity_links_wallet_address")
	pgutil.AssertIndexExists(t, db, "uq_identity_links_external_active")
	pgutil.AssertIndexExists(t, db, "uq_identity_links_wallet_active")
}

func TestMigrations_Idempotency(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, apidb.Migrations)

	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("First Migrate() failed: %v", err)
	}

	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Second Migrate() failed: %v", err)
	}
	if !group.IsZero() {
		t.Error("Expected no new migrations on second run")
	}

	pgutil.AssertTableExists(t, db, "identity_links")
}

func TestMigrations_Rollback(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, apidb.Migrations)

	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}

	// all migrations ran in one group, rollback drops every table
	group, err := migrator.Rollback(ctx)
	if err != nil {
		t.Fatalf("Rollback() failed: %v", err)
	}
	if group.IsZero() {
		t.Error("Expected rollback to process a migration")
	}

	pgutil.AssertTableNotExists(t, db, "identity_links")
	pgutil.AssertTableNotExists(t, db, "oauth_sessions")
	pgutil.AssertTableNotExists(t, db, "users")
}

func TestIdentityLinks_ActiveUniqueness(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, apidb.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}

	insert := func(id, wallet, external string, active bool) error {
		_, err := db.NewRaw(`INSERT INTO identity_links
			(id, wallet_address, provider, external_user_id, handle, display_name, avatar_url, access_token, refresh_token, is_active)
			VALUES (?, ?, 'x', ?, 'h', '', '', '', '', ?)`, id, wallet, external, active).Exec(ctx)
		return err
	}

	const (
		walletA = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
		walletB = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	)
	if err := insert("00000000-0000-0000-0000-000000000001", walletA, "X1", false); err != nil {
		t.Fatalf("insert inactive failed: %v", err)
	}
	if err := insert("00000000-0000-0000-0000-000000000002", walletA, "X1", true); err != nil {
		t.Fatalf("insert active failed: %v", err)
	}

	err := insert("00000000-0000-0000-0000-000000000003", walletB, "X1", true)
	if name, ok := pgutil.UniqueViolationConstraint(err); !ok || name != "uq_identity_links_external_active" {
		t.Fatalf("expected external account violation, got %v", err)
	}
	err = insert("00000000-0000-0000-0000-000000000004", walletA, "X2", true)
	if name, ok := pgutil.UniqueViolationConstraint(err); !ok || name != "uq_identity_links_wallet_active" {
		t.Fatalf("expected wallet violation, got %v", err)
	}
}

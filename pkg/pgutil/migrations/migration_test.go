package migrations

import (
	"context"
	"testing"

	"github.com/uptrace/bun"

	"github.com/chainsafe/card-bridge/pkg/pgutil"
)

type testDao struct {
	bun.BaseModel `bun:"table:test_links"`
	ID            int64  `bun:",pk,autoincrement"`
	Provider      string `bun:",notnull,type:varchar(32)"`
	Wallet        string `bun:",notnull,type:varchar(42)"`
	IsActive      bool   `bun:",notnull"`
}

func TestCreateSchemaAndDropTables(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &testDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	pgutil.AssertTableExists(t, db, "test_links")

	if err := CreateSchema(ctx, db, &testDao{}); err != nil {
		t.Fatalf("CreateSchema() second call failed: %v", err)
	}

	if err := DropTables(ctx, db, &testDao{}); err != nil {
		t.Fatalf("DropTables() failed: %v", err)
	}
	pgutil.AssertTableNotExists(t, db, "test_links")
}

func TestCreateModelIndexes(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &testDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	if err := CreateModelIndexes(ctx, db, &testDao{}, "provider", "wallet"); err != nil {
		t.Fatalf("CreateModelIndexes() failed: %v", err)
	}

	pgutil.AssertIndexExists(t, db, "idx_test_links_provider")
	pgutil.AssertIndexExists(t, db, "idx_test_links_wallet")
}

func TestCreatePartialUniqueIndex_OnlyActiveRowsConflict(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &testDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	if err := CreatePartialUniqueIndex(ctx, db, &testDao{}, "uq_test_links_active", "is_active", "provider", "wallet"); err != nil {
		t.Fatalf("CreatePartialUniqueIndex() failed: %v", err)
	}

	inactive := &testDao{Provider: "x", Wallet: "0xaaa", IsActive: false}
	if _, err := db.NewInsert().Model(inactive).Exec(ctx); err != nil {
		t.Fatalf("insert inactive failed: %v", err)
	}
	active := &testDao{Provider: "x", Wallet: "0xaaa", IsActive: true}
	if _, err := db.NewInsert().Model(active).Exec(ctx); err != nil {
		t.Fatalf("insert active failed: %v", err)
	}

	dup := &testDao{Provider: "x", Wallet: "0xaaa", IsActive: true}
	_, err := db.NewInsert().Model(dup).Exec(ctx)
	if err == nil {
		t.Fatalf("expected second active row to violate the partial index")
	}
	if !pgutil.IsUniqueViolation(err) {
		t.Fatalf("expected unique violation, got %v", err)
	}

	if err := TruncateTables(ctx, db, &testDao{}); err != nil {
		t.Fatalf("TruncateTables() failed: %v", err)
	}
	pgutil.AssertRowCount(t, db, "test_links", 0)
}

func TestRunMigrations_RejectsUnknownCommand(t *testing.T) {
	if err := RunMigrations(context.Background(), nil); err == nil {
		t.Fatalf("expected error without command")
	}
	if err := RunMigrations(context.Background(), nil, "sideways"); err == nil {
		t.Fatalf("expected error for unknown command")
	}
}

package userstore

import (
	"context"
	"errors"
	"testing"

	"github.com/chainsafe/card-bridge/pkg/pgutil"
	mghelper "github.com/chainsafe/card-bridge/pkg/pgutil/migrations"
	"github.com/chainsafe/card-bridge/pkg/user"
)

const (
	walletA = "0x1111111111111111111111111111111111111111"
	walletB = "0x2222222222222222222222222222222222222222"
)

func setupStore(t *testing.T) (context.Context, Store) {
	t.Helper()

	ctx := context.Background()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	if err := mghelper.CreateSchema(ctx, db, &UserDao{}); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return ctx, NewStore(db)
}

func TestPGStore_CreateUser(t *testing.T) {
	ctx, store := setupStore(t)

	usr := user.New(walletA)
	if err := store.CreateUser(ctx, usr); err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	if usr.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}
}

func TestPGStore_CreateUser_Duplicate(t *testing.T) {
	ctx, store := setupStore(t)

	if err := store.CreateUser(ctx, user.New(walletA)); err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	err := store.CreateUser(ctx, user.New(walletA))
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestPGStore_UserExists(t *testing.T) {
	ctx, store := setupStore(t)

	if err := store.CreateUser(ctx, user.New(walletA)); err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}

	exists, err := store.UserExists(ctx, walletA)
	if err != nil {
		t.Fatalf("UserExists() failed: %v", err)
	}
	if !exists {
		t.Fatalf("expected %s to exist", walletA)
	}

	exists, err = store.UserExists(ctx, walletB)
	if err != nil {
		t.Fatalf("UserExists() failed: %v", err)
	}
	if exists {
		t.Fatalf("expected %s to be unknown", walletB)
	}
}

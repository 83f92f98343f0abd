package apidb

import (
	"context"
	"log"

	"github.com/chainsafe/card-bridge/pkg/oauth/store"
	mghelper "github.com/chainsafe/card-bridge/pkg/pgutil/migrations"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating oauth_sessions table...")
		if err := mghelper.CreateSchema(ctx, db, &store.SessionDao{}); err != nil {
			return err
		}
		// wallet_address serves supersede on initiation, expires_at the cleanup
		return mghelper.CreateModelIndexes(ctx, db, &store.SessionDao{}, "wallet_address", "expires_at")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping oauth_sessions table...")
		return mghelper.DropTables(ctx, db, &store.SessionDao{})
	})
}

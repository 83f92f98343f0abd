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
		log.Println("creating identity_links table...")
		if err := mghelper.CreateSchema(ctx, db, &store.LinkDao{}); err != nil {
			return err
		}
		if err := mghelper.CreateModelIndexes(ctx, db, &store.LinkDao{}, "wallet_address"); err != nil {
			return err
		}

		// At most one active link per external account and per wallet, for each provider.
		if err := mghelper.CreatePartialUniqueIndex(ctx, db, &store.LinkDao{},
			store.ExternalActiveIndex, "is_active", "provider", "external_user_id"); err != nil {
			return err
		}
		return mghelper.CreatePartialUniqueIndex(ctx, db, &store.LinkDao{},
			store.WalletActiveIndex, "is_active", "provider", "wallet_address")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping identity_links table...")
		return mghelper.DropTables(ctx, db, &store.LinkDao{})
	})
}

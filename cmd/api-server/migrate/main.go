package main

import (
	"context"
	"flag"
	"log"

	"github.com/chainsafe/card-bridge/pkg/config"
	"github.com/chainsafe/card-bridge/pkg/migrations/apidb"
	"github.com/chainsafe/card-bridge/pkg/pgutil"
	mghelper "github.com/chainsafe/card-bridge/pkg/pgutil/migrations"

	"github.com/uptrace/bun/migrate"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	cfg, err := config.LoadAPIServer(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}

	ctx := context.Background()
	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer func() { _ = db.Close() }()

	log.Printf("Running migrations for API Server database (%s)...\n", cfg.Database.Database)

	migrator := migrate.NewMigrator(db, apidb.Migrations)

	if err := mghelper.RunMigrations(ctx, migrator, flag.Args()...); err != nil {
		mghelper.Exitf("%s", err.Error())
	}
}

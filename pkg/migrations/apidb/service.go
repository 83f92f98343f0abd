// Package apidb holds all the migrations for the API database
package apidb

import "github.com/uptrace/bun/migrate"

// Migrations is the ordered set of API database migrations
var Migrations = migrate.NewMigrations()

package schedulemigrations

import "github.com/uptrace/bun/migrate"

// Migrations holds the schedule module's migrations.
var Migrations = migrate.NewMigrations()

package rostermigrations

import "github.com/uptrace/bun/migrate"

// Migrations holds the roster module's migrations.
var Migrations = migrate.NewMigrations()

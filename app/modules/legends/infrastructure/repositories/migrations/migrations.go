package legendsmigrations

import "github.com/uptrace/bun/migrate"

// Migrations holds the legends module's migrations.
var Migrations = migrate.NewMigrations()

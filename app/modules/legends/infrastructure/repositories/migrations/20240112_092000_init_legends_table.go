package legendsmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating legends table...")
		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS legends (
				id BIGSERIAL PRIMARY KEY,
				uuid UUID NOT NULL UNIQUE DEFAULT gen_random_uuid(),
				name VARCHAR(300) NOT NULL,
				teams VARCHAR(200) NOT NULL DEFAULT '',
				image TEXT NOT NULL DEFAULT '',
				description TEXT NOT NULL DEFAULT ''
			);
		`)
		if err != nil {
			return fmt.Errorf("failed to create legends table: %w", err)
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping legends table...")
		_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS legends;`)
		return err
	})
}

package schedulemigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating oppositions, games and events tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS oppositions (
					id BIGSERIAL PRIMARY KEY,
					name VARCHAR(50) NOT NULL,
					logo TEXT NOT NULL DEFAULT ''
				);
			`); err != nil {
				return fmt.Errorf("failed to create oppositions table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS games (
					id BIGSERIAL PRIMARY KEY,
					team_id BIGINT NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
					opposition_id BIGINT NOT NULL REFERENCES oppositions(id) ON DELETE CASCADE,
					team_score INT NOT NULL DEFAULT 0,
					opp_score INT NOT NULL DEFAULT 0,
					scheduled_at TIMESTAMPTZ NOT NULL,
					location VARCHAR(200) NOT NULL DEFAULT '',
					finished BOOLEAN NOT NULL DEFAULT FALSE
				);
				CREATE INDEX IF NOT EXISTS idx_games_team_scheduled
					ON games(team_id, scheduled_at DESC);
			`); err != nil {
				return fmt.Errorf("failed to create games table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS events (
					id BIGSERIAL PRIMARY KEY,
					name VARCHAR(50) NOT NULL,
					scheduled_at TIMESTAMPTZ NOT NULL,
					location VARCHAR(200) NOT NULL DEFAULT '',
					image TEXT NOT NULL DEFAULT ''
				);
			`); err != nil {
				return fmt.Errorf("failed to create events table: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping events, games and oppositions tables...")
		_, err := db.ExecContext(ctx, `
			DROP TABLE IF EXISTS events;
			DROP TABLE IF EXISTS games;
			DROP TABLE IF EXISTS oppositions;
		`)
		return err
	})
}

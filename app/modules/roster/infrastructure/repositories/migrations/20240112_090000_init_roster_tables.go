package rostermigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating teams, players and coaches tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS teams (
					id BIGSERIAL PRIMARY KEY,
					uuid UUID NOT NULL UNIQUE DEFAULT gen_random_uuid(),
					name VARCHAR(100) NOT NULL UNIQUE,
					sport VARCHAR(5) NOT NULL DEFAULT '',
					level VARCHAR(5) NOT NULL DEFAULT '',
					season VARCHAR(10) NOT NULL DEFAULT '',
					year INT NOT NULL DEFAULT 0,
					description TEXT NOT NULL DEFAULT '',
					photo TEXT NOT NULL DEFAULT '',
					honors VARCHAR(100) NOT NULL DEFAULT '',
					instagram TEXT NOT NULL DEFAULT '',
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`); err != nil {
				return fmt.Errorf("failed to create teams table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS players (
					id BIGSERIAL PRIMARY KEY,
					uuid UUID NOT NULL UNIQUE DEFAULT gen_random_uuid(),
					team_id BIGINT NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
					first_name VARCHAR(50) NOT NULL,
					last_name VARCHAR(50) NOT NULL,
					position VARCHAR(50) NOT NULL DEFAULT '',
					year INT,
					photo TEXT NOT NULL DEFAULT '',
					is_captain BOOLEAN NOT NULL DEFAULT FALSE,
					shirt_number INT,
					quote VARCHAR(500),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_players_team_name
					ON players(team_id, first_name, last_name);
			`); err != nil {
				return fmt.Errorf("failed to create players table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS coaches (
					id BIGSERIAL PRIMARY KEY,
					team_id BIGINT NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
					name VARCHAR(300) NOT NULL,
					photo TEXT NOT NULL DEFAULT '',
					year VARCHAR(10) NOT NULL DEFAULT '',
					is_student_coach BOOLEAN NOT NULL DEFAULT FALSE
				);
			`); err != nil {
				return fmt.Errorf("failed to create coaches table: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping coaches, players and teams tables...")
		_, err := db.ExecContext(ctx, `
			DROP TABLE IF EXISTS coaches;
			DROP TABLE IF EXISTS players;
			DROP TABLE IF EXISTS teams;
		`)
		return err
	})
}

package rosterdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a team or player is not found.
var ErrNotFound = errors.New("not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new roster repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// ListTeams retrieves all teams in display order.
func (r *Impl) ListTeams(ctx context.Context, db bun.IDB) ([]*Team, error) {
	db = r.resolveDB(db)
	var teams []*Team
	err := db.NewSelect().
		Model(&teams).
		Order("sport", "level", "name").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// TeamByName retrieves a team by its unique name.
func (r *Impl) TeamByName(ctx context.Context, db bun.IDB, name string) (*Team, error) {
	db = r.resolveDB(db)
	team := new(Team)
	err := db.NewSelect().
		Model(team).
		Where("name = ?", name).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team by name: %w", err)
	}
	return team, nil
}

// TeamsByNames retrieves every team whose name is in the given set.
// Missing names are simply absent from the result.
func (r *Impl) TeamsByNames(ctx context.Context, db bun.IDB, names []string) ([]*Team, error) {
	if len(names) == 0 {
		return nil, nil
	}
	db = r.resolveDB(db)
	var teams []*Team
	err := db.NewSelect().
		Model(&teams).
		Where("name IN (?)", bun.In(names)).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams by names: %w", err)
	}
	return teams, nil
}

// CreateTeams bulk-inserts the given teams.
func (r *Impl) CreateTeams(ctx context.Context, db bun.IDB, teams []*Team) error {
	if len(teams) == 0 {
		return nil
	}
	db = r.resolveDB(db)
	for _, t := range teams {
		if t.UUID == uuid.Nil {
			t.UUID = uuid.New()
		}
	}
	_, err := db.NewInsert().
		Model(&teams).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create teams: %w", err)
	}
	return nil
}

// CoachesByTeam retrieves a team's coaches, staff first.
func (r *Impl) CoachesByTeam(ctx context.Context, db bun.IDB, teamID int64) ([]*Coach, error) {
	db = r.resolveDB(db)
	var coaches []*Coach
	err := db.NewSelect().
		Model(&coaches).
		Where("team_id = ?", teamID).
		Order("is_student_coach", "name").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get coaches by team: %w", err)
	}
	return coaches, nil
}

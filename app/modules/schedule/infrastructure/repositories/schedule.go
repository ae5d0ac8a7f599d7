package scheduledb

import (
	"context"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a game or event is not found.
var ErrNotFound = errors.New("not found")

// Repository defines the persistence contract for games and events.
type Repository interface {
	LatestResults(ctx context.Context, db bun.IDB, limit int) ([]*Game, error)
	UpcomingGames(ctx context.Context, db bun.IDB, limit int) ([]*Game, error)
	ResultsByTeamName(ctx context.Context, db bun.IDB, teamName string, offset, limit int) ([]*Game, error)
	UpcomingByTeamName(ctx context.Context, db bun.IDB, teamName string, offset, limit int) ([]*Game, error)
	LatestEvents(ctx context.Context, db bun.IDB, limit int) ([]*Event, error)
}

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new schedule repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// LatestResults retrieves the most recent finished games.
func (r *Impl) LatestResults(ctx context.Context, db bun.IDB, limit int) ([]*Game, error) {
	db = r.resolveDB(db)
	var games []*Game
	err := db.NewSelect().
		Model(&games).
		Relation("Team").
		Relation("Opposition").
		Where("finished = TRUE").
		Order("scheduled_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest results: %w", err)
	}
	return games, nil
}

// UpcomingGames retrieves the next unfinished games.
func (r *Impl) UpcomingGames(ctx context.Context, db bun.IDB, limit int) ([]*Game, error) {
	db = r.resolveDB(db)
	var games []*Game
	err := db.NewSelect().
		Model(&games).
		Relation("Team").
		Relation("Opposition").
		Where("finished = FALSE").
		Order("scheduled_at ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch upcoming games: %w", err)
	}
	return games, nil
}

// ResultsByTeamName retrieves a window of finished games for one team.
func (r *Impl) ResultsByTeamName(ctx context.Context, db bun.IDB, teamName string, offset, limit int) ([]*Game, error) {
	db = r.resolveDB(db)
	var games []*Game
	err := db.NewSelect().
		Model(&games).
		Relation("Team").
		Relation("Opposition").
		Where("team.name = ? AND finished = TRUE", teamName).
		Order("scheduled_at DESC").
		Offset(offset).
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch team results: %w", err)
	}
	return games, nil
}

// UpcomingByTeamName retrieves a window of unfinished games for one team.
func (r *Impl) UpcomingByTeamName(ctx context.Context, db bun.IDB, teamName string, offset, limit int) ([]*Game, error) {
	db = r.resolveDB(db)
	var games []*Game
	err := db.NewSelect().
		Model(&games).
		Relation("Team").
		Relation("Opposition").
		Where("team.name = ? AND finished = FALSE", teamName).
		Order("scheduled_at ASC").
		Offset(offset).
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch team upcoming games: %w", err)
	}
	return games, nil
}

// LatestEvents retrieves the most recent events.
func (r *Impl) LatestEvents(ctx context.Context, db bun.IDB, limit int) ([]*Event, error) {
	db = r.resolveDB(db)
	var events []*Event
	err := db.NewSelect().
		Model(&events).
		Order("scheduled_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	return events, nil
}

package rosterdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// PlayersByTeam retrieves a team's players ordered by shirt number.
func (r *Impl) PlayersByTeam(ctx context.Context, db bun.IDB, teamID int64) ([]*Player, error) {
	db = r.resolveDB(db)
	var players []*Player
	err := db.NewSelect().
		Model(&players).
		Where("team_id = ?", teamID).
		OrderExpr("shirt_number ASC NULLS LAST").
		Order("last_name", "first_name").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get players by team: %w", err)
	}
	return players, nil
}

// PlayersByTeamIDs retrieves every player belonging to any of the given
// teams. The import uses this to build its existing-player snapshot
// without scanning the whole table.
func (r *Impl) PlayersByTeamIDs(ctx context.Context, db bun.IDB, teamIDs []int64) ([]*Player, error) {
	if len(teamIDs) == 0 {
		return nil, nil
	}
	db = r.resolveDB(db)
	var players []*Player
	err := db.NewSelect().
		Model(&players).
		Where("team_id IN (?)", bun.In(teamIDs)).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get players by team ids: %w", err)
	}
	return players, nil
}

// PlayersByKeys retrieves players matching any of the given composite
// keys. Used after a bulk insert to recover generated identifiers.
func (r *Impl) PlayersByKeys(ctx context.Context, db bun.IDB, keys []PlayerKey) ([]*Player, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	db = r.resolveDB(db)
	var players []*Player
	err := db.NewSelect().
		Model(&players).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			for _, k := range keys {
				q = q.WhereOr("(team_id = ? AND first_name = ? AND last_name = ?)",
					k.TeamID, k.FirstName, k.LastName)
			}
			return q
		}).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get players by keys: %w", err)
	}
	return players, nil
}

// PlayerByUUID retrieves a player by public identifier.
func (r *Impl) PlayerByUUID(ctx context.Context, db bun.IDB, playerUUID uuid.UUID) (*Player, error) {
	db = r.resolveDB(db)
	player := new(Player)
	err := db.NewSelect().
		Model(player).
		Relation("Team").
		Where("p.uuid = ?", playerUUID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get player by uuid: %w", err)
	}
	return player, nil
}

// TeammatesOf retrieves up to limit random teammates of a player.
func (r *Impl) TeammatesOf(ctx context.Context, db bun.IDB, teamID, excludeID int64, limit int) ([]*Player, error) {
	db = r.resolveDB(db)
	var players []*Player
	err := db.NewSelect().
		Model(&players).
		Where("team_id = ? AND id != ?", teamID, excludeID).
		OrderExpr("random()").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get teammates: %w", err)
	}
	return players, nil
}

// CreatePlayer inserts a single player. The generated id is written
// back into the model so the caller can use it immediately.
func (r *Impl) CreatePlayer(ctx context.Context, db bun.IDB, player *Player) error {
	db = r.resolveDB(db)
	if player.UUID == uuid.Nil {
		player.UUID = uuid.New()
	}
	_, err := db.NewInsert().
		Model(player).
		Returning("id").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}
	return nil
}

// CreatePlayers bulk-inserts players. Generated identifiers are not
// guaranteed to be populated; callers that need them must re-query.
func (r *Impl) CreatePlayers(ctx context.Context, db bun.IDB, players []*Player) error {
	if len(players) == 0 {
		return nil
	}
	db = r.resolveDB(db)
	for _, p := range players {
		if p.UUID == uuid.Nil {
			p.UUID = uuid.New()
		}
	}
	_, err := db.NewInsert().
		Model(&players).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to bulk create players: %w", err)
	}
	return nil
}

// UpdatePlayer updates only the given columns of one player.
func (r *Impl) UpdatePlayer(ctx context.Context, db bun.IDB, player *Player, columns []string) error {
	if len(columns) == 0 {
		return nil
	}
	db = r.resolveDB(db)
	_, err := db.NewUpdate().
		Model(player).
		Column(columns...).
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}
	return nil
}

// UpdatePlayers bulk-updates the given columns for all players.
func (r *Impl) UpdatePlayers(ctx context.Context, db bun.IDB, players []*Player, columns []string) error {
	if len(players) == 0 || len(columns) == 0 {
		return nil
	}
	db = r.resolveDB(db)
	_, err := db.NewUpdate().
		Model(&players).
		Column(columns...).
		Bulk().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to bulk update players: %w", err)
	}
	return nil
}

// UpdatePlayerPhoto persists only the photo reference of one player.
func (r *Impl) UpdatePlayerPhoto(ctx context.Context, db bun.IDB, playerID int64, photo string) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model((*Player)(nil)).
		Set("photo = ?", photo).
		Where("id = ?", playerID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update player photo: %w", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return ErrNotFound
	}
	return nil
}

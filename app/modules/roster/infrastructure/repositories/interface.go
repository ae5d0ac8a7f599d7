package rosterdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the persistence contract for teams, players and
// coaches. Every method accepts a bun.IDB so callers can pass a
// transaction; a nil db falls back to the repository's own connection.
type Repository interface {
	// Teams
	ListTeams(ctx context.Context, db bun.IDB) ([]*Team, error)
	TeamByName(ctx context.Context, db bun.IDB, name string) (*Team, error)
	TeamsByNames(ctx context.Context, db bun.IDB, names []string) ([]*Team, error)
	CreateTeams(ctx context.Context, db bun.IDB, teams []*Team) error

	// Players
	PlayersByTeam(ctx context.Context, db bun.IDB, teamID int64) ([]*Player, error)
	PlayersByTeamIDs(ctx context.Context, db bun.IDB, teamIDs []int64) ([]*Player, error)
	PlayersByKeys(ctx context.Context, db bun.IDB, keys []PlayerKey) ([]*Player, error)
	PlayerByUUID(ctx context.Context, db bun.IDB, playerUUID uuid.UUID) (*Player, error)
	TeammatesOf(ctx context.Context, db bun.IDB, teamID, excludeID int64, limit int) ([]*Player, error)
	CreatePlayer(ctx context.Context, db bun.IDB, player *Player) error
	CreatePlayers(ctx context.Context, db bun.IDB, players []*Player) error
	UpdatePlayer(ctx context.Context, db bun.IDB, player *Player, columns []string) error
	UpdatePlayers(ctx context.Context, db bun.IDB, players []*Player, columns []string) error
	UpdatePlayerPhoto(ctx context.Context, db bun.IDB, playerID int64, photo string) error

	// Coaches
	CoachesByTeam(ctx context.Context, db bun.IDB, teamID int64) ([]*Coach, error)
}

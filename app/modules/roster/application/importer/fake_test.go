package importer

import (
	"context"

	rosterdb "github.com/dcb-athletics/sportsite/app/modules/roster/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake in-memory Store
// ------------------------

type FakeStore struct {
	trace []string

	teams   []*rosterdb.Team
	players []*rosterdb.Player

	nextTeamID   int64
	nextPlayerID int64

	// Mutation counters for dry-run assertions.
	Writes int

	TeamsByNamesFunc  func(ctx context.Context, db bun.IDB, names []string) ([]*rosterdb.Team, error)
	CreatePlayerFunc  func(ctx context.Context, db bun.IDB, player *rosterdb.Player) error
	CreatePlayersFunc func(ctx context.Context, db bun.IDB, players []*rosterdb.Player) error
	UpdatePlayerFunc  func(ctx context.Context, db bun.IDB, player *rosterdb.Player, columns []string) error
}

func NewFakeStore() *FakeStore {
	return &FakeStore{
		trace:        []string{},
		nextTeamID:   1,
		nextPlayerID: 1,
	}
}

func (f *FakeStore) record(step string) {
	f.trace = append(f.trace, step)
}

// SeedTeam adds a team directly, bypassing the write counter.
func (f *FakeStore) SeedTeam(name string) *rosterdb.Team {
	t := &rosterdb.Team{ID: f.nextTeamID, Name: name}
	f.nextTeamID++
	f.teams = append(f.teams, t)
	return t
}

// SeedPlayer adds a player directly, bypassing the write counter.
func (f *FakeStore) SeedPlayer(p *rosterdb.Player) *rosterdb.Player {
	p.ID = f.nextPlayerID
	f.nextPlayerID++
	f.players = append(f.players, p)
	return p
}

// Players returns the stored players.
func (f *FakeStore) Players() []*rosterdb.Player {
	return f.players
}

// Teams returns the stored teams.
func (f *FakeStore) Teams() []*rosterdb.Team {
	return f.teams
}

// --- Store interface implementation ---

func (f *FakeStore) TeamsByNames(ctx context.Context, db bun.IDB, names []string) ([]*rosterdb.Team, error) {
	f.record("TeamsByNames")
	if f.TeamsByNamesFunc != nil {
		return f.TeamsByNamesFunc(ctx, db, names)
	}
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	var out []*rosterdb.Team
	for _, t := range f.teams {
		if wanted[t.Name] {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *FakeStore) CreateTeams(ctx context.Context, db bun.IDB, teams []*rosterdb.Team) error {
	f.record("CreateTeams")
	f.Writes++
	for _, t := range teams {
		t.ID = f.nextTeamID
		f.nextTeamID++
		f.teams = append(f.teams, t)
	}
	return nil
}

func (f *FakeStore) PlayersByTeamIDs(ctx context.Context, db bun.IDB, teamIDs []int64) ([]*rosterdb.Player, error) {
	f.record("PlayersByTeamIDs")
	wanted := make(map[int64]bool, len(teamIDs))
	for _, id := range teamIDs {
		wanted[id] = true
	}
	var out []*rosterdb.Player
	for _, p := range f.players {
		if wanted[p.TeamID] {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *FakeStore) PlayersByKeys(ctx context.Context, db bun.IDB, keys []rosterdb.PlayerKey) ([]*rosterdb.Player, error) {
	f.record("PlayersByKeys")
	wanted := make(map[rosterdb.PlayerKey]bool, len(keys))
	for _, k := range keys {
		wanted[k] = true
	}
	var out []*rosterdb.Player
	for _, p := range f.players {
		if wanted[p.Key()] {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *FakeStore) CreatePlayer(ctx context.Context, db bun.IDB, player *rosterdb.Player) error {
	f.record("CreatePlayer")
	if f.CreatePlayerFunc != nil {
		return f.CreatePlayerFunc(ctx, db, player)
	}
	f.Writes++
	player.ID = f.nextPlayerID
	f.nextPlayerID++
	clone := *player
	f.players = append(f.players, &clone)
	return nil
}

func (f *FakeStore) CreatePlayers(ctx context.Context, db bun.IDB, players []*rosterdb.Player) error {
	f.record("CreatePlayers")
	if f.CreatePlayersFunc != nil {
		return f.CreatePlayersFunc(ctx, db, players)
	}
	f.Writes++
	for _, p := range players {
		// Bulk insert: store the row but leave the caller's draft
		// without an id, like a driver that reports nothing back.
		clone := *p
		clone.ID = f.nextPlayerID
		f.nextPlayerID++
		f.players = append(f.players, &clone)
	}
	return nil
}

func (f *FakeStore) UpdatePlayer(ctx context.Context, db bun.IDB, player *rosterdb.Player, columns []string) error {
	f.record("UpdatePlayer")
	if f.UpdatePlayerFunc != nil {
		return f.UpdatePlayerFunc(ctx, db, player, columns)
	}
	f.Writes++
	return f.applyUpdate(player, columns)
}

func (f *FakeStore) UpdatePlayers(ctx context.Context, db bun.IDB, players []*rosterdb.Player, columns []string) error {
	f.record("UpdatePlayers")
	f.Writes++
	for _, p := range players {
		if err := f.applyUpdate(p, columns); err != nil {
			return err
		}
	}
	return nil
}

func (f *FakeStore) UpdatePlayerPhoto(ctx context.Context, db bun.IDB, playerID int64, photo string) error {
	f.record("UpdatePlayerPhoto")
	f.Writes++
	for _, p := range f.players {
		if p.ID == playerID {
			p.Photo = photo
			return nil
		}
	}
	return rosterdb.ErrNotFound
}

func (f *FakeStore) applyUpdate(from *rosterdb.Player, columns []string) error {
	for _, p := range f.players {
		if p.ID != from.ID {
			continue
		}
		for _, col := range columns {
			switch col {
			case "position":
				p.Position = from.Position
			case "year":
				p.Year = from.Year
			case "is_captain":
				p.IsCaptain = from.IsCaptain
			case "shirt_number":
				p.ShirtNumber = from.ShirtNumber
			case "quote":
				p.Quote = from.Quote
			}
		}
		return nil
	}
	return rosterdb.ErrNotFound
}

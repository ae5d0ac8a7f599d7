package rosterservice

import (
	"context"

	rosterdb "github.com/dcb-athletics/sportsite/app/modules/roster/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake in-memory Repository
// ------------------------

type FakeRepo struct {
	teams   []*rosterdb.Team
	players []*rosterdb.Player
	coaches []*rosterdb.Coach

	nextTeamID   int64
	nextPlayerID int64

	// Writes counts mutating calls.
	Writes int

	PlayerByUUIDFunc func(ctx context.Context, db bun.IDB, playerUUID uuid.UUID) (*rosterdb.Player, error)
}

func NewFakeRepo() *FakeRepo {
	return &FakeRepo{nextTeamID: 1, nextPlayerID: 1}
}

func (f *FakeRepo) SeedTeam(name string) *rosterdb.Team {
	t := &rosterdb.Team{ID: f.nextTeamID, UUID: uuid.New(), Name: name}
	f.nextTeamID++
	f.teams = append(f.teams, t)
	return t
}

func (f *FakeRepo) SeedPlayer(p *rosterdb.Player) *rosterdb.Player {
	p.ID = f.nextPlayerID
	if p.UUID == uuid.Nil {
		p.UUID = uuid.New()
	}
	f.nextPlayerID++
	f.players = append(f.players, p)
	return p
}

func (f *FakeRepo) SeedCoach(c *rosterdb.Coach) *rosterdb.Coach {
	f.coaches = append(f.coaches, c)
	return c
}

func (f *FakeRepo) ListTeams(ctx context.Context, db bun.IDB) ([]*rosterdb.Team, error) {
	return f.teams, nil
}

func (f *FakeRepo) TeamByName(ctx context.Context, db bun.IDB, name string) (*rosterdb.Team, error) {
	for _, t := range f.teams {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, rosterdb.ErrNotFound
}

func (f *FakeRepo) TeamsByNames(ctx context.Context, db bun.IDB, names []string) ([]*rosterdb.Team, error) {
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

func (f *FakeRepo) CreateTeams(ctx context.Context, db bun.IDB, teams []*rosterdb.Team) error {
	f.Writes++
	for _, t := range teams {
		t.ID = f.nextTeamID
		f.nextTeamID++
		f.teams = append(f.teams, t)
	}
	return nil
}

func (f *FakeRepo) PlayersByTeam(ctx context.Context, db bun.IDB, teamID int64) ([]*rosterdb.Player, error) {
	var out []*rosterdb.Player
	for _, p := range f.players {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *FakeRepo) PlayersByTeamIDs(ctx context.Context, db bun.IDB, teamIDs []int64) ([]*rosterdb.Player, error) {
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

func (f *FakeRepo) PlayersByKeys(ctx context.Context, db bun.IDB, keys []rosterdb.PlayerKey) ([]*rosterdb.Player, error) {
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

func (f *FakeRepo) PlayerByUUID(ctx context.Context, db bun.IDB, playerUUID uuid.UUID) (*rosterdb.Player, error) {
	if f.PlayerByUUIDFunc != nil {
		return f.PlayerByUUIDFunc(ctx, db, playerUUID)
	}
	for _, p := range f.players {
		if p.UUID == playerUUID {
			return p, nil
		}
	}
	return nil, rosterdb.ErrNotFound
}

func (f *FakeRepo) TeammatesOf(ctx context.Context, db bun.IDB, teamID, excludeID int64, limit int) ([]*rosterdb.Player, error) {
	var out []*rosterdb.Player
	for _, p := range f.players {
		if p.TeamID == teamID && p.ID != excludeID && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *FakeRepo) CreatePlayer(ctx context.Context, db bun.IDB, player *rosterdb.Player) error {
	f.Writes++
	player.ID = f.nextPlayerID
	f.nextPlayerID++
	clone := *player
	f.players = append(f.players, &clone)
	return nil
}

func (f *FakeRepo) CreatePlayers(ctx context.Context, db bun.IDB, players []*rosterdb.Player) error {
	f.Writes++
	for _, p := range players {
		clone := *p
		clone.ID = f.nextPlayerID
		f.nextPlayerID++
		f.players = append(f.players, &clone)
	}
	return nil
}

func (f *FakeRepo) UpdatePlayer(ctx context.Context, db bun.IDB, player *rosterdb.Player, columns []string) error {
	f.Writes++
	return f.applyUpdate(player, columns)
}

func (f *FakeRepo) UpdatePlayers(ctx context.Context, db bun.IDB, players []*rosterdb.Player, columns []string) error {
	f.Writes++
	for _, p := range players {
		if err := f.applyUpdate(p, columns); err != nil {
			return err
		}
	}
	return nil
}

func (f *FakeRepo) UpdatePlayerPhoto(ctx context.Context, db bun.IDB, playerID int64, photo string) error {
	f.Writes++
	for _, p := range f.players {
		if p.ID == playerID {
			p.Photo = photo
			return nil
		}
	}
	return rosterdb.ErrNotFound
}

func (f *FakeRepo) CoachesByTeam(ctx context.Context, db bun.IDB, teamID int64) ([]*rosterdb.Coach, error) {
	var out []*rosterdb.Coach
	for _, c := range f.coaches {
		if c.TeamID == teamID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *FakeRepo) applyUpdate(from *rosterdb.Player, columns []string) error {
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

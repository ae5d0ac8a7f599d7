package rosterservice

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/dcb-athletics/sportsite/app/modules/roster/application/importer"
	rosterdb "github.com/dcb-athletics/sportsite/app/modules/roster/infrastructure/repositories"
	"github.com/dcb-athletics/sportsite/internal/observability"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// RosterService implements roster reads and the bulk import.
type RosterService struct {
	repo      rosterdb.Repository
	logger    *slog.Logger
	db        *bun.DB
	mediaRoot string
}

// NewRosterService creates a new RosterService.
func NewRosterService(repo rosterdb.Repository, logger *slog.Logger, db *bun.DB, mediaRoot string) *RosterService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RosterService{repo: repo, logger: logger, db: db, mediaRoot: mediaRoot}
}

// TeamRoster is the full roster payload for one team page.
type TeamRoster struct {
	Team           *rosterdb.Team
	Captain        *rosterdb.Player
	Players        []*rosterdb.Player
	Coaches        []*rosterdb.Coach
	StudentCoaches []*rosterdb.Coach
}

// PlayerProfile is a player plus a handful of teammates.
type PlayerProfile struct {
	Player    *rosterdb.Player
	Teammates []*rosterdb.Player
}

// ListTeams returns all teams in display order.
func (s *RosterService) ListTeams(ctx context.Context) ([]*rosterdb.Team, error) {
	return s.repo.ListTeams(ctx, nil)
}

// TeamRoster returns a team with its players (captain surfaced) and
// coaches.
func (s *RosterService) TeamRoster(ctx context.Context, teamName string) (*TeamRoster, error) {
	team, err := s.repo.TeamByName(ctx, nil, teamName)
	if err != nil {
		return nil, err
	}

	players, err := s.repo.PlayersByTeam(ctx, nil, team.ID)
	if err != nil {
		return nil, err
	}

	coaches, err := s.repo.CoachesByTeam(ctx, nil, team.ID)
	if err != nil {
		return nil, err
	}

	roster := &TeamRoster{Team: team}
	for _, p := range players {
		if p.IsCaptain && roster.Captain == nil {
			roster.Captain = p
			continue
		}
		roster.Players = append(roster.Players, p)
	}
	for _, c := range coaches {
		if c.IsStudentCoach {
			roster.StudentCoaches = append(roster.StudentCoaches, c)
		} else {
			roster.Coaches = append(roster.Coaches, c)
		}
	}
	return roster, nil
}

// PlayerProfile returns a player and up to four random teammates.
func (s *RosterService) PlayerProfile(ctx context.Context, playerUUID uuid.UUID) (*PlayerProfile, error) {
	player, err := s.repo.PlayerByUUID(ctx, nil, playerUUID)
	if err != nil {
		return nil, err
	}
	teammates, err := s.repo.TeammatesOf(ctx, nil, player.TeamID, player.ID, 4)
	if err != nil {
		return nil, err
	}
	return &PlayerProfile{Player: player, Teammates: teammates}, nil
}

// ImportRoster runs one spreadsheet import. The write phase is atomic:
// creates, updates and photo references commit together or not at all.
// Dry-run never opens a transaction and never writes.
func (s *RosterService) ImportRoster(ctx context.Context, opts importer.Options) (*importer.Result, error) {
	engine := importer.NewEngine(s.repo, s.mediaRoot, s.logger)

	plan, err := engine.Prepare(opts)
	if err != nil {
		return nil, fmt.Errorf("import aborted: %w", err)
	}

	var result *importer.Result
	if opts.DryRun {
		var db bun.IDB
		if s.db != nil {
			db = s.db
		}
		result, err = engine.Execute(ctx, db, plan, opts)
	} else {
		result, err = runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (*importer.Result, error) {
			return engine.Execute(ctx, db, plan, opts)
		})
	}
	if err != nil {
		return nil, err
	}

	observability.RecordImport(result.DryRun, result.Created, result.Updated, result.PhotosAttached)
	return result, nil
}

// runInTx ensures the operation runs within a transaction.
func runInTx[T any](
	s *RosterService,
	ctx context.Context,
	fn func(ctx context.Context, db bun.IDB) (T, error),
) (T, error) {
	if s.db == nil {
		return fn(ctx, nil)
	}

	var result T

	err := s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var txErr error
		result, txErr = fn(ctx, tx)
		return txErr
	})

	return result, err
}

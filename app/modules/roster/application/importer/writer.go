package importer

import (
	"context"
	"fmt"

	rosterdb "github.com/dcb-athletics/sportsite/app/modules/roster/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// Store is the subset of the roster repository the import engine needs.
// rosterdb.Repository satisfies it.
type Store interface {
	TeamsByNames(ctx context.Context, db bun.IDB, names []string) ([]*rosterdb.Team, error)
	CreateTeams(ctx context.Context, db bun.IDB, teams []*rosterdb.Team) error
	PlayersByTeamIDs(ctx context.Context, db bun.IDB, teamIDs []int64) ([]*rosterdb.Player, error)
	PlayersByKeys(ctx context.Context, db bun.IDB, keys []rosterdb.PlayerKey) ([]*rosterdb.Player, error)
	CreatePlayer(ctx context.Context, db bun.IDB, player *rosterdb.Player) error
	CreatePlayers(ctx context.Context, db bun.IDB, players []*rosterdb.Player) error
	UpdatePlayer(ctx context.Context, db bun.IDB, player *rosterdb.Player, columns []string) error
	UpdatePlayers(ctx context.Context, db bun.IDB, players []*rosterdb.Player, columns []string) error
	UpdatePlayerPhoto(ctx context.Context, db bun.IDB, playerID int64, photo string) error
}

// WriteStrategy commits staged creates and updates. CommitCreates also
// resolves photo tasks for new players, since a draft has no identity
// until it is written.
type WriteStrategy interface {
	CommitCreates(ctx context.Context, db bun.IDB, creates []createPlan, locate locateFunc) (created int, photos []photoTask, err error)
	CommitUpdates(ctx context.Context, db bun.IDB, updates []updatePlan) (updated int, err error)
}

// perRecordStrategy saves one row at a time so generated identifiers
// are available immediately for photo attachment.
type perRecordStrategy struct {
	store Store
}

func (s perRecordStrategy) CommitCreates(ctx context.Context, db bun.IDB, creates []createPlan, locate locateFunc) (int, []photoTask, error) {
	var photos []photoTask
	for _, plan := range creates {
		if err := s.store.CreatePlayer(ctx, db, plan.Draft); err != nil {
			return 0, nil, fmt.Errorf("failed to create player %s: %w", plan.Draft.FullName(), err)
		}
		if task, ok := photoFor(plan.Draft.ID, plan.Draft.FullName(), plan.Record, locate); ok {
			photos = append(photos, task)
		}
	}
	return len(creates), photos, nil
}

func (s perRecordStrategy) CommitUpdates(ctx context.Context, db bun.IDB, updates []updatePlan) (int, error) {
	for _, plan := range updates {
		plan.Changes.Apply(plan.Target)
		if err := s.store.UpdatePlayer(ctx, db, plan.Target, plan.Changes.Columns()); err != nil {
			return 0, fmt.Errorf("failed to update player %s: %w", plan.Target.FullName(), err)
		}
	}
	return len(updates), nil
}

// bulkStrategy writes in chunks for throughput. Bulk inserts do not
// reliably report generated identifiers, so created rows are re-queried
// by composite key before photos can be attached.
type bulkStrategy struct {
	store     Store
	batchSize int
}

func (s bulkStrategy) CommitCreates(ctx context.Context, db bun.IDB, creates []createPlan, locate locateFunc) (int, []photoTask, error) {
	if len(creates) == 0 {
		return 0, nil, nil
	}

	drafts := make([]*rosterdb.Player, len(creates))
	keys := make([]rosterdb.PlayerKey, len(creates))
	for i, plan := range creates {
		drafts[i] = plan.Draft
		keys[i] = plan.Draft.Key()
	}

	for start := 0; start < len(drafts); start += s.batchSize {
		end := min(start+s.batchSize, len(drafts))
		if err := s.store.CreatePlayers(ctx, db, drafts[start:end]); err != nil {
			return 0, nil, fmt.Errorf("failed to bulk create players: %w", err)
		}
	}

	// Recover identifiers for the just-created rows.
	persisted, err := s.store.PlayersByKeys(ctx, db, keys)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to re-query created players: %w", err)
	}
	byKey := make(map[rosterdb.PlayerKey]*rosterdb.Player, len(persisted))
	for _, p := range persisted {
		byKey[p.Key()] = p
	}

	var photos []photoTask
	for _, plan := range creates {
		p, ok := byKey[plan.Draft.Key()]
		if !ok {
			continue
		}
		if task, ok := photoFor(p.ID, p.FullName(), plan.Record, locate); ok {
			photos = append(photos, task)
		}
	}
	return len(persisted), photos, nil
}

func (s bulkStrategy) CommitUpdates(ctx context.Context, db bun.IDB, updates []updatePlan) (int, error) {
	if len(updates) == 0 {
		return 0, nil
	}

	targets := make([]*rosterdb.Player, len(updates))
	for i, plan := range updates {
		plan.Changes.Apply(plan.Target)
		targets[i] = plan.Target
	}

	// Bulk updates write the full tracked column list, never identity
	// fields.
	for start := 0; start < len(targets); start += s.batchSize {
		end := min(start+s.batchSize, len(targets))
		if err := s.store.UpdatePlayers(ctx, db, targets[start:end], trackedColumns); err != nil {
			return 0, fmt.Errorf("failed to bulk update players: %w", err)
		}
	}
	return len(updates), nil
}

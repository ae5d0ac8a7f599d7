package importer

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	rosterdb "github.com/dcb-athletics/sportsite/app/modules/roster/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// Default values for the invocation surface.
const (
	DefaultMediaSubdir = "players/photos"
	DefaultBatchSize   = 500
)

// Options configures one import run.
type Options struct {
	File        string
	Sheet       SheetSelector
	MediaSubdir string
	DryRun      bool
	SkipImages  bool
	Bulk        bool
	BatchSize   int
}

func (o *Options) applyDefaults() {
	if o.MediaSubdir == "" {
		o.MediaSubdir = DefaultMediaSubdir
	}
	if o.BatchSize <= 0 {
		o.BatchSize = DefaultBatchSize
	}
}

// Plan is the parsed and normalized input of a run, produced before any
// store access.
type Plan struct {
	Records  []NormalizedRecord
	Warnings []string
}

// Engine runs the roster import: normalize, resolve teams, reconcile,
// write, attach photos. One Engine value serves one run.
type Engine struct {
	store     Store
	mediaRoot string
	logger    *slog.Logger
}

// NewEngine creates an import engine.
func NewEngine(store Store, mediaRoot string, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{store: store, mediaRoot: mediaRoot, logger: logger}
}

// Prepare reads the spreadsheet and normalizes its rows. Errors here
// are fatal for the whole run; rejected rows only produce warnings.
func (e *Engine) Prepare(opts Options) (*Plan, error) {
	rows, err := ReadWorkbook(opts.File, opts.Sheet)
	if err != nil {
		return nil, err
	}
	records, warnings := NormalizeRows(rows)
	return &Plan{Records: records, Warnings: warnings}, nil
}

// Execute runs reconciliation and, unless dry-run, the write phase.
// The caller decides the transaction boundary: pass a bun.Tx for an
// atomic run. Dry-run performs reads only.
func (e *Engine) Execute(ctx context.Context, db bun.IDB, plan *Plan, opts Options) (*Result, error) {
	opts.applyDefaults()

	res := &Result{DryRun: opts.DryRun, Warnings: append([]string(nil), plan.Warnings...)}
	if len(plan.Records) == 0 {
		res.warnf("no valid rows to import")
		return res, nil
	}

	teams, err := e.resolveTeams(ctx, db, plan.Records, opts.DryRun, res)
	if err != nil {
		return nil, err
	}

	existing, err := e.existingPlayers(ctx, db, teams)
	if err != nil {
		return nil, err
	}

	var locate locateFunc
	if !opts.SkipImages {
		locate = PhotoLocator{MediaRoot: e.mediaRoot, Subdir: opts.MediaSubdir}.Locate
	}

	recon := reconcile(plan.Records, teams, existing, locate)
	res.Warnings = append(res.Warnings, recon.Warnings...)

	if opts.DryRun {
		// Would-be counts only; drafts' photos are probed against the
		// filesystem (a pure read) so the numbers match a real run.
		res.Created = len(recon.Creates)
		res.Updated = len(recon.Updates)
		res.PhotosAttempted = len(recon.Photos) + draftPhotoCount(recon.Creates, locate)
		return res, nil
	}

	strategy := e.strategyFor(opts)

	created, createPhotos, err := strategy.CommitCreates(ctx, db, recon.Creates, locate)
	if err != nil {
		return nil, err
	}
	res.Created = created

	updated, err := strategy.CommitUpdates(ctx, db, recon.Updates)
	if err != nil {
		return nil, err
	}
	res.Updated = updated

	e.attachPhotos(ctx, db, append(recon.Photos, createPhotos...), res)

	e.logger.InfoContext(ctx, "roster import finished",
		slog.Int("created", res.Created),
		slog.Int("updated", res.Updated),
		slog.Int("photos_attempted", res.PhotosAttempted),
		slog.Int("photos_attached", res.PhotosAttached),
		slog.Int("warnings", len(res.Warnings)),
	)
	return res, nil
}

// resolveTeams maps every referenced team name to a persisted
// identifier, bulk-creating missing teams unless dry-run. In dry-run,
// missing teams are reported and mapped to a placeholder id so their
// rows still show up in the would-be counts.
func (e *Engine) resolveTeams(ctx context.Context, db bun.IDB, records []NormalizedRecord, dryRun bool, res *Result) (map[string]int64, error) {
	nameSet := make(map[string]struct{})
	for _, r := range records {
		nameSet[r.TeamName] = struct{}{}
	}
	names := make([]string, 0, len(nameSet))
	for n := range nameSet {
		names = append(names, n)
	}
	sort.Strings(names)

	found, err := e.store.TeamsByNames(ctx, db, names)
	if err != nil {
		return nil, fmt.Errorf("failed to look up teams: %w", err)
	}

	teams := make(map[string]int64, len(names))
	for _, t := range found {
		teams[t.Name] = t.ID
	}

	var missing []string
	for _, n := range names {
		if _, ok := teams[n]; !ok {
			missing = append(missing, n)
		}
	}
	if len(missing) == 0 {
		return teams, nil
	}

	if dryRun {
		for _, n := range missing {
			res.warnf("team %q does not exist (would be created)", n)
			teams[n] = 0
		}
		return teams, nil
	}

	drafts := make([]*rosterdb.Team, len(missing))
	for i, n := range missing {
		drafts[i] = &rosterdb.Team{Name: n}
	}
	if err := e.store.CreateTeams(ctx, db, drafts); err != nil {
		return nil, fmt.Errorf("failed to create missing teams: %w", err)
	}

	// Bulk insert does not always yield identifiers synchronously;
	// re-query the full set.
	found, err = e.store.TeamsByNames(ctx, db, names)
	if err != nil {
		return nil, fmt.Errorf("failed to re-query teams: %w", err)
	}
	for _, t := range found {
		teams[t.Name] = t.ID
	}
	return teams, nil
}

// existingPlayers builds the read-only composite-key snapshot for the
// teams referenced in this run.
func (e *Engine) existingPlayers(ctx context.Context, db bun.IDB, teams map[string]int64) (map[rosterdb.PlayerKey]*rosterdb.Player, error) {
	ids := make([]int64, 0, len(teams))
	for _, id := range teams {
		if id != 0 {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	players, err := e.store.PlayersByTeamIDs(ctx, db, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing players: %w", err)
	}

	existing := make(map[rosterdb.PlayerKey]*rosterdb.Player, len(players))
	for _, p := range players {
		existing[p.Key()] = p
	}
	return existing, nil
}

func (e *Engine) strategyFor(opts Options) WriteStrategy {
	if opts.Bulk {
		return bulkStrategy{store: e.store, batchSize: opts.BatchSize}
	}
	return perRecordStrategy{store: e.store}
}

// attachPhotos copies each located photo into the managed tree and
// persists the reference. Failures are isolated per task: a bad copy
// warns and moves on without aborting the transaction.
func (e *Engine) attachPhotos(ctx context.Context, db bun.IDB, tasks []photoTask, res *Result) {
	if len(tasks) == 0 {
		return
	}
	attacher := PhotoAttacher{MediaRoot: e.mediaRoot}
	res.PhotosAttempted = len(tasks)

	for _, task := range tasks {
		rel, err := attacher.Attach(task.Source, task.Filename)
		if err != nil {
			res.warnf("failed to attach photo for %s from %s: %v", task.PlayerName, task.Source, err)
			continue
		}
		if err := e.store.UpdatePlayerPhoto(ctx, db, task.PlayerID, rel); err != nil {
			res.warnf("failed to save photo reference for %s: %v", task.PlayerName, err)
			continue
		}
		res.PhotosAttached++
	}
}

func draftPhotoCount(creates []createPlan, locate locateFunc) int {
	if locate == nil {
		return 0
	}
	n := 0
	for _, plan := range creates {
		if plan.Record.PhotoRaw == "" {
			continue
		}
		if _, ok := locate(plan.Record.PhotoRaw, plan.Record.TeamName); ok {
			n++
		}
	}
	return n
}

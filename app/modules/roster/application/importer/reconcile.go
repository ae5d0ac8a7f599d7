package importer

import (
	"path/filepath"

	rosterdb "github.com/dcb-athletics/sportsite/app/modules/roster/infrastructure/repositories"
)

// Columns the import is allowed to touch on an existing player.
var trackedColumns = []string{"position", "year", "is_captain", "shirt_number", "quote"}

// ChangeSet is a value-type field diff: column name to new value,
// computed separately from entity identity and applied only in the
// write phase.
type ChangeSet struct {
	order  []string
	values map[string]any
}

// Set records a new value for a column.
func (c *ChangeSet) Set(column string, value any) {
	if c.values == nil {
		c.values = make(map[string]any)
	}
	if _, ok := c.values[column]; !ok {
		c.order = append(c.order, column)
	}
	c.values[column] = value
}

// Empty reports whether no field differs.
func (c *ChangeSet) Empty() bool {
	return len(c.values) == 0
}

// Columns returns the changed column names in insertion order.
func (c *ChangeSet) Columns() []string {
	return c.order
}

// Apply writes the recorded values onto the player.
func (c *ChangeSet) Apply(p *rosterdb.Player) {
	for col, v := range c.values {
		switch col {
		case "position":
			p.Position = v.(string)
		case "year":
			p.Year = v.(*int)
		case "is_captain":
			p.IsCaptain = v.(bool)
		case "shirt_number":
			p.ShirtNumber = v.(*int)
		case "quote":
			q := v.(string)
			p.Quote = &q
		}
	}
}

// createPlan pairs a new player draft with its source record so the
// photo can be resolved once the draft has a persisted identity.
type createPlan struct {
	Draft  *rosterdb.Player
	Record NormalizedRecord
}

// updatePlan pairs a copy of an existing player with its change-set.
// The copy keeps the reconciler free of aliasing against the shared
// existing-player snapshot.
type updatePlan struct {
	Target  *rosterdb.Player
	Changes ChangeSet
}

// photoTask is one pending photo attachment.
type photoTask struct {
	PlayerID   int64
	PlayerName string
	Source     string
	Filename   string
}

// locateFunc resolves a photo reference to a source path; nil disables
// photo processing for the run.
type locateFunc func(ref, teamName string) (string, bool)

// reconciliation is the staged outcome of one run.
type reconciliation struct {
	Creates  []createPlan
	Updates  []updatePlan
	Photos   []photoTask
	Warnings []string
}

// reconcile matches normalized records against the existing-player
// snapshot and stages creates, updates and photo attachments. Both
// lookup maps are treated as read-only; when multiple rows share a
// composite key the later row wins.
func reconcile(
	records []NormalizedRecord,
	teams map[string]int64,
	existing map[rosterdb.PlayerKey]*rosterdb.Player,
	locate locateFunc,
) *reconciliation {
	rec := &reconciliation{}

	createIdx := make(map[rosterdb.PlayerKey]int)
	updateIdx := make(map[rosterdb.PlayerKey]int)
	photoIdx := make(map[rosterdb.PlayerKey]int)

	for _, r := range records {
		teamID, ok := teams[r.TeamName]
		if !ok {
			rec.Warnings = append(rec.Warnings,
				warnf("row %d: team %q could not be resolved; skipping %s %s",
					r.RowIndex, r.TeamName, r.FirstName, r.LastName))
			continue
		}

		key := rosterdb.PlayerKey{TeamID: teamID, FirstName: r.FirstName, LastName: r.LastName}

		if match, found := existing[key]; found {
			changes := diffPlayer(match, r)
			if !changes.Empty() {
				target := *match
				plan := updatePlan{Target: &target, Changes: changes}
				if i, dup := updateIdx[key]; dup {
					rec.Updates[i] = plan
				} else {
					updateIdx[key] = len(rec.Updates)
					rec.Updates = append(rec.Updates, plan)
				}
			}
			// An update can still carry a new photo.
			if task, ok := photoFor(match.ID, match.FullName(), r, locate); ok {
				if i, dup := photoIdx[key]; dup {
					rec.Photos[i] = task
				} else {
					photoIdx[key] = len(rec.Photos)
					rec.Photos = append(rec.Photos, task)
				}
			}
			continue
		}

		plan := createPlan{Draft: draftPlayer(teamID, r), Record: r}
		if i, dup := createIdx[key]; dup {
			rec.Creates[i] = plan
		} else {
			createIdx[key] = len(rec.Creates)
			rec.Creates = append(rec.Creates, plan)
		}
	}

	return rec
}

// diffPlayer computes the tracked-field change-set between an existing
// player and an incoming record. A blank incoming quote leaves the
// stored quote untouched; every other field is applied unconditionally.
func diffPlayer(existing *rosterdb.Player, r NormalizedRecord) ChangeSet {
	var c ChangeSet
	if existing.Position != r.Position {
		c.Set("position", r.Position)
	}
	if !intPtrEqual(existing.Year, r.Year) {
		c.Set("year", r.Year)
	}
	if existing.IsCaptain != r.IsCaptain {
		c.Set("is_captain", r.IsCaptain)
	}
	if !intPtrEqual(existing.ShirtNumber, r.ShirtNumber) {
		c.Set("shirt_number", r.ShirtNumber)
	}
	if r.Quote != "" && (existing.Quote == nil || *existing.Quote != r.Quote) {
		c.Set("quote", r.Quote)
	}
	return c
}

// draftPlayer builds a new player entity from a record. A blank quote
// is left nil so the column keeps its default.
func draftPlayer(teamID int64, r NormalizedRecord) *rosterdb.Player {
	p := &rosterdb.Player{
		TeamID:      teamID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Position:    r.Position,
		Year:        r.Year,
		IsCaptain:   r.IsCaptain,
		ShirtNumber: r.ShirtNumber,
	}
	if r.Quote != "" {
		q := r.Quote
		p.Quote = &q
	}
	return p
}

// photoFor resolves a record's photo reference for an identified
// player. A missing photo is a normal case and produces no warning.
func photoFor(playerID int64, playerName string, r NormalizedRecord, locate locateFunc) (photoTask, bool) {
	if locate == nil || r.PhotoRaw == "" {
		return photoTask{}, false
	}
	src, ok := locate(r.PhotoRaw, r.TeamName)
	if !ok {
		return photoTask{}, false
	}
	return photoTask{
		PlayerID:   playerID,
		PlayerName: playerName,
		Source:     src,
		Filename:   filepath.Base(src),
	}, true
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

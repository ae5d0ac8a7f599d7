package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rosterdb "github.com/dcb-athletics/sportsite/app/modules/roster/infrastructure/repositories"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func existingSnapshot(players ...*rosterdb.Player) map[rosterdb.PlayerKey]*rosterdb.Player {
	snapshot := make(map[rosterdb.PlayerKey]*rosterdb.Player, len(players))
	for _, p := range players {
		snapshot[p.Key()] = p
	}
	return snapshot
}

func TestReconcileStagesCreate(t *testing.T) {
	records := []NormalizedRecord{{
		RowIndex:    2,
		FirstName:   "Alex",
		LastName:    "Kim",
		TeamName:    "Tennis",
		Position:    "Singles 1",
		ShirtNumber: intPtr(7),
		IsCaptain:   true,
	}}
	teams := map[string]int64{"Tennis": 3}

	rec := reconcile(records, teams, existingSnapshot(), nil)

	require.Len(t, rec.Creates, 1)
	assert.Empty(t, rec.Updates)
	assert.Empty(t, rec.Warnings)

	draft := rec.Creates[0].Draft
	assert.Equal(t, int64(3), draft.TeamID)
	assert.Equal(t, "Alex", draft.FirstName)
	assert.Equal(t, "Kim", draft.LastName)
	assert.Equal(t, "Singles 1", draft.Position)
	assert.Equal(t, intPtr(7), draft.ShirtNumber)
	assert.True(t, draft.IsCaptain)
	assert.Nil(t, draft.Quote)
}

func TestReconcileMinimalUpdate(t *testing.T) {
	existing := &rosterdb.Player{
		ID:          11,
		TeamID:      3,
		FirstName:   "Alex",
		LastName:    "Kim",
		Position:    "Singles 1",
		ShirtNumber: intPtr(7),
		IsCaptain:   true,
	}
	records := []NormalizedRecord{{
		RowIndex:    2,
		FirstName:   "Alex",
		LastName:    "Kim",
		TeamName:    "Tennis",
		Position:    "Singles 1",
		ShirtNumber: intPtr(9),
		IsCaptain:   true,
	}}

	rec := reconcile(records, map[string]int64{"Tennis": 3}, existingSnapshot(existing), nil)

	assert.Empty(t, rec.Creates)
	require.Len(t, rec.Updates, 1)

	plan := rec.Updates[0]
	assert.Equal(t, []string{"shirt_number"}, plan.Changes.Columns())

	plan.Changes.Apply(plan.Target)
	assert.Equal(t, intPtr(9), plan.Target.ShirtNumber)
	// The snapshot entity is never mutated.
	assert.Equal(t, intPtr(7), existing.ShirtNumber)
}

func TestReconcileNoChangesNoPlan(t *testing.T) {
	existing := &rosterdb.Player{
		ID:          11,
		TeamID:      3,
		FirstName:   "Alex",
		LastName:    "Kim",
		Position:    "Singles 1",
		ShirtNumber: intPtr(7),
	}
	records := []NormalizedRecord{{
		RowIndex:    2,
		FirstName:   "Alex",
		LastName:    "Kim",
		TeamName:    "Tennis",
		Position:    "Singles 1",
		ShirtNumber: intPtr(7),
	}}

	rec := reconcile(records, map[string]int64{"Tennis": 3}, existingSnapshot(existing), nil)

	assert.Empty(t, rec.Creates)
	assert.Empty(t, rec.Updates)
}

func TestReconcileQuoteAsymmetry(t *testing.T) {
	existing := &rosterdb.Player{
		ID:        5,
		TeamID:    1,
		FirstName: "Dana",
		LastName:  "Ortiz",
		Quote:     strPtr("keep it"),
	}

	// A blank incoming quote leaves the stored one alone.
	rec := reconcile([]NormalizedRecord{{
		RowIndex: 2, FirstName: "Dana", LastName: "Ortiz", TeamName: "Golf",
	}}, map[string]int64{"Golf": 1}, existingSnapshot(existing), nil)
	assert.Empty(t, rec.Updates)

	// A non-empty quote that differs is staged.
	rec = reconcile([]NormalizedRecord{{
		RowIndex: 2, FirstName: "Dana", LastName: "Ortiz", TeamName: "Golf", Quote: "new words",
	}}, map[string]int64{"Golf": 1}, existingSnapshot(existing), nil)
	require.Len(t, rec.Updates, 1)
	assert.Equal(t, []string{"quote"}, rec.Updates[0].Changes.Columns())
}

func TestReconcileLaterRowWins(t *testing.T) {
	records := []NormalizedRecord{
		{RowIndex: 2, FirstName: "Alex", LastName: "Kim", TeamName: "Tennis", Position: "Singles 1"},
		{RowIndex: 3, FirstName: "Alex", LastName: "Kim", TeamName: "Tennis", Position: "Doubles 2"},
	}

	rec := reconcile(records, map[string]int64{"Tennis": 3}, existingSnapshot(), nil)

	require.Len(t, rec.Creates, 1)
	assert.Equal(t, "Doubles 2", rec.Creates[0].Draft.Position)
}

func TestReconcileUnresolvedTeamSkipsRow(t *testing.T) {
	records := []NormalizedRecord{
		{RowIndex: 2, FirstName: "Alex", LastName: "Kim", TeamName: "Chess"},
		{RowIndex: 3, FirstName: "Dana", LastName: "Ortiz", TeamName: "Golf"},
	}

	rec := reconcile(records, map[string]int64{"Golf": 1}, existingSnapshot(), nil)

	require.Len(t, rec.Creates, 1)
	assert.Equal(t, "Dana", rec.Creates[0].Draft.FirstName)
	require.Len(t, rec.Warnings, 1)
	assert.Contains(t, rec.Warnings[0], "Chess")
}

func TestReconcilePhotoForExistingPlayer(t *testing.T) {
	existing := &rosterdb.Player{
		ID: 11, TeamID: 3, FirstName: "Alex", LastName: "Kim",
	}
	records := []NormalizedRecord{{
		RowIndex: 2, FirstName: "Alex", LastName: "Kim", TeamName: "Tennis", PhotoRaw: "alex.jpg",
	}}

	locate := func(ref, teamName string) (string, bool) {
		assert.Equal(t, "alex.jpg", ref)
		assert.Equal(t, "Tennis", teamName)
		return "/media/players/photos/alex.jpg", true
	}

	rec := reconcile(records, map[string]int64{"Tennis": 3}, existingSnapshot(existing), locate)

	assert.Empty(t, rec.Updates)
	require.Len(t, rec.Photos, 1)
	task := rec.Photos[0]
	assert.Equal(t, int64(11), task.PlayerID)
	assert.Equal(t, "/media/players/photos/alex.jpg", task.Source)
	assert.Equal(t, "alex.jpg", task.Filename)
}

func TestReconcileMissingPhotoIsSilent(t *testing.T) {
	existing := &rosterdb.Player{ID: 11, TeamID: 3, FirstName: "Alex", LastName: "Kim"}
	records := []NormalizedRecord{{
		RowIndex: 2, FirstName: "Alex", LastName: "Kim", TeamName: "Tennis", PhotoRaw: "gone.jpg",
	}}

	rec := reconcile(records, map[string]int64{"Tennis": 3}, existingSnapshot(existing),
		func(string, string) (string, bool) { return "", false })

	assert.Empty(t, rec.Photos)
	assert.Empty(t, rec.Warnings)
}

func TestChangeSetOrdering(t *testing.T) {
	var c ChangeSet
	assert.True(t, c.Empty())

	c.Set("position", "Goalkeeper")
	c.Set("is_captain", true)
	c.Set("position", "Defender")

	assert.False(t, c.Empty())
	assert.Equal(t, []string{"position", "is_captain"}, c.Columns())

	var p rosterdb.Player
	c.Apply(&p)
	assert.Equal(t, "Defender", p.Position)
	assert.True(t, p.IsCaptain)
}

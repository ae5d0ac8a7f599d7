package importer

import "fmt"

// RawRow is one spreadsheet row keyed by header label. Values keep
// whatever type the source produced (string, number, bool, nil).
type RawRow map[string]any

// NormalizedRecord is the canonical, typed projection of a RawRow.
// Pointer fields are absent when nil; Quote and PhotoRaw use "" for
// absence.
type NormalizedRecord struct {
	RowIndex    int
	FirstName   string
	LastName    string
	TeamName    string
	Position    string
	Year        *int
	IsCaptain   bool
	ShirtNumber *int
	Quote       string
	PhotoRaw    string
}

// Result summarizes one import run. It is never persisted.
type Result struct {
	DryRun          bool
	Created         int
	Updated         int
	PhotosAttempted int
	PhotosAttached  int
	Warnings        []string
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, warnf(format, args...))
}

func warnf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// Summary returns the one-line human-readable outcome.
func (r *Result) Summary() string {
	if r.DryRun {
		return fmt.Sprintf("Dry-run: %d to create, %d to update, %d photos to attach",
			r.Created, r.Updated, r.PhotosAttempted)
	}
	return fmt.Sprintf("Import finished: %d created, %d updated, %d photos attempted, %d attached",
		r.Created, r.Updated, r.PhotosAttempted, r.PhotosAttached)
}

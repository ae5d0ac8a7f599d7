package scheduledb

import (
	"time"

	rosterdb "github.com/dcb-athletics/sportsite/app/modules/roster/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// Opposition is an opposing school or club.
type Opposition struct {
	bun.BaseModel `bun:"table:oppositions,alias:o"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Name string `bun:"name,notnull"`
	Logo string `bun:"logo"`
}

// Game is a fixture or a finished result for one of our teams.
type Game struct {
	bun.BaseModel `bun:"table:games,alias:g"`

	ID           int64          `bun:"id,pk,autoincrement"`
	TeamID       int64          `bun:"team_id,notnull"`
	Team         *rosterdb.Team `bun:"rel:belongs-to,join:team_id=id"`
	OppositionID int64          `bun:"opposition_id,notnull"`
	Opposition   *Opposition    `bun:"rel:belongs-to,join:opposition_id=id"`
	TeamScore    int            `bun:"team_score"`
	OppScore     int            `bun:"opp_score"`
	ScheduledAt  time.Time      `bun:"scheduled_at,notnull"`
	Location     string         `bun:"location"`
	Finished     bool           `bun:"finished"`
}

// Event is a one-off sports program event.
type Event struct {
	bun.BaseModel `bun:"table:events,alias:e"`

	ID          int64     `bun:"id,pk,autoincrement"`
	Name        string    `bun:"name,notnull"`
	ScheduledAt time.Time `bun:"scheduled_at,notnull"`
	Location    string    `bun:"location"`
	Image       string    `bun:"image"`
}

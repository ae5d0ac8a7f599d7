package rosterdb

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Team is a school team. Name is unique: the roster import matches
// incoming rows against teams by name alone.
type Team struct {
	bun.BaseModel `bun:"table:teams,alias:t"`

	ID          int64     `bun:"id,pk,autoincrement"`
	UUID        uuid.UUID `bun:"uuid,type:uuid,notnull"`
	Name        string    `bun:"name,notnull"`
	Sport       string    `bun:"sport"`
	Level       string    `bun:"level"`
	Season      string    `bun:"season"`
	Year        int       `bun:"year"`
	Description string    `bun:"description"`
	Photo       string    `bun:"photo"`
	Honors      string    `bun:"honors"`
	Instagram   string    `bun:"instagram"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// Player is a roster entry. (team_id, first_name, last_name) is the
// composite key used to match spreadsheet rows to existing players;
// it is an index, not a uniqueness constraint.
type Player struct {
	bun.BaseModel `bun:"table:players,alias:p"`

	ID          int64     `bun:"id,pk,autoincrement"`
	UUID        uuid.UUID `bun:"uuid,type:uuid,notnull"`
	TeamID      int64     `bun:"team_id,notnull"`
	Team        *Team     `bun:"rel:belongs-to,join:team_id=id"`
	FirstName   string    `bun:"first_name,notnull"`
	LastName    string    `bun:"last_name,notnull"`
	Position    string    `bun:"position"`
	Year        *int      `bun:"year"`
	Photo       string    `bun:"photo"`
	IsCaptain   bool      `bun:"is_captain"`
	ShirtNumber *int      `bun:"shirt_number"`
	Quote       *string   `bun:"quote"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// FullName returns the display name.
func (p *Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Key returns the composite matching key for this player.
func (p *Player) Key() PlayerKey {
	return PlayerKey{
		TeamID:    p.TeamID,
		FirstName: strings.TrimSpace(p.FirstName),
		LastName:  strings.TrimSpace(p.LastName),
	}
}

// PlayerKey identifies a player within one import run.
type PlayerKey struct {
	TeamID    int64
	FirstName string
	LastName  string
}

// Coach belongs to a team; student coaches are listed separately from staff.
type Coach struct {
	bun.BaseModel `bun:"table:coaches,alias:c"`

	ID             int64  `bun:"id,pk,autoincrement"`
	TeamID         int64  `bun:"team_id,notnull"`
	Team           *Team  `bun:"rel:belongs-to,join:team_id=id"`
	Name           string `bun:"name,notnull"`
	Photo          string `bun:"photo"`
	Year           string `bun:"year"`
	IsStudentCoach bool   `bun:"is_student_coach"`
}

package rosterhandlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	rosterservice "github.com/dcb-athletics/sportsite/app/modules/roster/application"
	rosterdb "github.com/dcb-athletics/sportsite/app/modules/roster/infrastructure/repositories"
	scheduledb "github.com/dcb-athletics/sportsite/app/modules/schedule/infrastructure/repositories"
	"github.com/dcb-athletics/sportsite/internal/respond"
)

// RosterReader is the roster service surface the handlers need.
type RosterReader interface {
	ListTeams(ctx context.Context) ([]*rosterdb.Team, error)
	TeamRoster(ctx context.Context, teamName string) (*rosterservice.TeamRoster, error)
	PlayerProfile(ctx context.Context, playerUUID uuid.UUID) (*rosterservice.PlayerProfile, error)
}

// ScheduleReader supplies the games shown on a roster page.
type ScheduleReader interface {
	TeamSchedule(ctx context.Context, teamName string) (results, upcomings []*scheduledb.Game, err error)
}

// Handlers serves the roster read API.
type Handlers struct {
	roster   RosterReader
	schedule ScheduleReader
	logger   *slog.Logger
}

// NewHandlers creates roster handlers.
func NewHandlers(roster RosterReader, schedule ScheduleReader, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{roster: roster, schedule: schedule, logger: logger}
}

// Routes mounts the roster endpoints.
func (h *Handlers) Routes(r chi.Router) {
	r.Get("/teams", h.GetTeams)
	r.Get("/teams/{name}/roster", h.GetRoster)
	r.Get("/players/{uuid}", h.GetPlayer)
}

type teamJSON struct {
	UUID        string `json:"uuid"`
	Name        string `json:"name"`
	Sport       string `json:"sport"`
	Level       string `json:"level"`
	Season      string `json:"season"`
	Year        int    `json:"year"`
	Description string `json:"description"`
	Photo       string `json:"photo,omitempty"`
	Honors      string `json:"honors"`
	Instagram   string `json:"instagram,omitempty"`
}

type playerJSON struct {
	UUID        string  `json:"uuid"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Position    string  `json:"position"`
	Year        *int    `json:"year"`
	IsCaptain   bool    `json:"is_captain"`
	ShirtNumber *int    `json:"shirt_number"`
	Quote       *string `json:"quote,omitempty"`
	Photo       string  `json:"photo,omitempty"`
}

type coachJSON struct {
	Name           string `json:"name"`
	Photo          string `json:"photo,omitempty"`
	Year           string `json:"year,omitempty"`
	IsStudentCoach bool   `json:"is_student_coach"`
}

type gameJSON struct {
	Team       string `json:"team"`
	Opposition string `json:"opposition"`
	Time       string `json:"time"`
	Location   string `json:"location"`
	TeamScore  int    `json:"team_score"`
	OppScore   int    `json:"opp_score"`
	Finished   bool   `json:"finished"`
}

func toTeam(t *rosterdb.Team) teamJSON {
	return teamJSON{
		UUID:        t.UUID.String(),
		Name:        t.Name,
		Sport:       t.Sport,
		Level:       t.Level,
		Season:      t.Season,
		Year:        t.Year,
		Description: t.Description,
		Photo:       t.Photo,
		Honors:      t.Honors,
		Instagram:   t.Instagram,
	}
}

func toPlayer(p *rosterdb.Player) playerJSON {
	return playerJSON{
		UUID:        p.UUID.String(),
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Position:    p.Position,
		Year:        p.Year,
		IsCaptain:   p.IsCaptain,
		ShirtNumber: p.ShirtNumber,
		Quote:       p.Quote,
		Photo:       p.Photo,
	}
}

func toPlayers(players []*rosterdb.Player) []playerJSON {
	out := make([]playerJSON, 0, len(players))
	for _, p := range players {
		out = append(out, toPlayer(p))
	}
	return out
}

func toCoaches(coaches []*rosterdb.Coach) []coachJSON {
	out := make([]coachJSON, 0, len(coaches))
	for _, c := range coaches {
		out = append(out, coachJSON{
			Name:           c.Name,
			Photo:          c.Photo,
			Year:           c.Year,
			IsStudentCoach: c.IsStudentCoach,
		})
	}
	return out
}

func toGames(games []*scheduledb.Game) []gameJSON {
	out := make([]gameJSON, 0, len(games))
	for _, g := range games {
		j := gameJSON{
			Time:      g.ScheduledAt.Format(time.RFC3339),
			Location:  g.Location,
			TeamScore: g.TeamScore,
			OppScore:  g.OppScore,
			Finished:  g.Finished,
		}
		if g.Team != nil {
			j.Team = g.Team.Name
		}
		if g.Opposition != nil {
			j.Opposition = g.Opposition.Name
		}
		out = append(out, j)
	}
	return out
}

// GetTeams lists all teams.
func (h *Handlers) GetTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.roster.ListTeams(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list teams", slog.Any("error", err))
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to list teams")
		return
	}
	out := make([]teamJSON, 0, len(teams))
	for _, t := range teams {
		out = append(out, toTeam(t))
	}
	respond.WriteJSON(w, http.StatusOK, map[string]any{"teams": out})
}

// GetRoster returns one team's roster with its recent and upcoming games.
func (h *Handlers) GetRoster(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	roster, err := h.roster.TeamRoster(r.Context(), name)
	if err != nil {
		if errors.Is(err, rosterdb.ErrNotFound) {
			respond.WriteError(w, http.StatusNotFound, "TEAM_NOT_FOUND", "no team with that name")
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to load roster", slog.String("team", name), slog.Any("error", err))
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to load roster")
		return
	}

	results, upcomings, err := h.schedule.TeamSchedule(r.Context(), name)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to load team schedule", slog.String("team", name), slog.Any("error", err))
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to load team schedule")
		return
	}

	payload := map[string]any{
		"team":            toTeam(roster.Team),
		"players":         toPlayers(roster.Players),
		"coaches":         toCoaches(roster.Coaches),
		"student_coaches": toCoaches(roster.StudentCoaches),
		"results":         toGames(results),
		"upcomings":       toGames(upcomings),
	}
	if roster.Captain != nil {
		captain := toPlayer(roster.Captain)
		payload["captain"] = captain
	}
	respond.WriteJSON(w, http.StatusOK, payload)
}

// GetPlayer returns one player profile with teammates.
func (h *Handlers) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "uuid"))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "player id must be a UUID")
		return
	}

	profile, err := h.roster.PlayerProfile(r.Context(), id)
	if err != nil {
		if errors.Is(err, rosterdb.ErrNotFound) {
			respond.WriteError(w, http.StatusNotFound, "PLAYER_NOT_FOUND", "no player with that id")
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to load player", slog.Any("error", err))
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to load player")
		return
	}

	respond.WriteJSON(w, http.StatusOK, map[string]any{
		"player":    toPlayer(profile.Player),
		"teammates": toPlayers(profile.Teammates),
	})
}

package schedulehandlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	scheduleservice "github.com/dcb-athletics/sportsite/app/modules/schedule/application"
	scheduledb "github.com/dcb-athletics/sportsite/app/modules/schedule/infrastructure/repositories"
	"github.com/dcb-athletics/sportsite/internal/respond"
)

// Reader is the schedule service surface the handlers need.
type Reader interface {
	Home(ctx context.Context) (*scheduleservice.HomePayload, error)
	TeamResults(ctx context.Context, teamName string, offset, limit int) ([]*scheduledb.Game, error)
	TeamUpcomings(ctx context.Context, teamName string, offset, limit int) ([]*scheduledb.Game, error)
}

// Handlers serves the schedule read API.
type Handlers struct {
	schedule Reader
	logger   *slog.Logger
}

// NewHandlers creates schedule handlers.
func NewHandlers(schedule Reader, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{schedule: schedule, logger: logger}
}

// Routes mounts the schedule endpoints.
func (h *Handlers) Routes(r chi.Router) {
	r.Get("/home", h.GetHome)
	r.Get("/teams/{name}/results", h.GetTeamResults)
	r.Get("/teams/{name}/upcomings", h.GetTeamUpcomings)
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

type eventJSON struct {
	Name     string `json:"name"`
	Time     string `json:"time"`
	Location string `json:"location"`
	Image    string `json:"image,omitempty"`
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

func toEvents(events []*scheduledb.Event) []eventJSON {
	out := make([]eventJSON, 0, len(events))
	for _, e := range events {
		out = append(out, eventJSON{
			Name:     e.Name,
			Time:     e.ScheduledAt.Format(time.RFC3339),
			Location: e.Location,
			Image:    e.Image,
		})
	}
	return out
}

// GetHome returns latest events, results and upcoming fixtures.
func (h *Handlers) GetHome(w http.ResponseWriter, r *http.Request) {
	home, err := h.schedule.Home(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to load home payload", slog.Any("error", err))
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to load home data")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]any{
		"events":    toEvents(home.Events),
		"results":   toGames(home.Results),
		"upcomings": toGames(home.Upcomings),
	})
}

// GetTeamResults returns a window of finished games for one team.
func (h *Handlers) GetTeamResults(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	games, err := h.schedule.TeamResults(r.Context(), name, offset, limit)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to load team results", slog.String("team", name), slog.Any("error", err))
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to load team results")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]any{"results": toGames(games)})
}

// GetTeamUpcomings returns a window of unfinished games for one team.
func (h *Handlers) GetTeamUpcomings(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	games, err := h.schedule.TeamUpcomings(r.Context(), name, offset, limit)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to load team upcoming games", slog.String("team", name), slog.Any("error", err))
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to load team upcoming games")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]any{"upcomings": toGames(games)})
}

package legendshandlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	legendsservice "github.com/dcb-athletics/sportsite/app/modules/legends/application"
	"github.com/dcb-athletics/sportsite/internal/respond"
)

// Reader is the legends service surface the handlers need.
type Reader interface {
	List(ctx context.Context, offset, limit int) (*legendsservice.LegendsPage, error)
}

// Handlers serves the legends read API.
type Handlers struct {
	legends Reader
	logger  *slog.Logger
}

// NewHandlers creates legends handlers.
func NewHandlers(legends Reader, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{legends: legends, logger: logger}
}

// Routes mounts the legends endpoints.
func (h *Handlers) Routes(r chi.Router) {
	r.Get("/legends", h.GetLegends)
}

type legendJSON struct {
	UUID        string `json:"uuid"`
	Name        string `json:"name"`
	Teams       string `json:"teams"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description"`
}

// GetLegends returns a window of legends.
func (h *Handlers) GetLegends(w http.ResponseWriter, r *http.Request) {
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	page, err := h.legends.List(r.Context(), offset, limit)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list legends", slog.Any("error", err))
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to list legends")
		return
	}

	out := make([]legendJSON, 0, len(page.Legends))
	for _, l := range page.Legends {
		out = append(out, legendJSON{
			UUID:        l.UUID.String(),
			Name:        l.Name,
			Teams:       l.Teams,
			Image:       l.Image,
			Description: l.Description,
		})
	}
	respond.WriteJSON(w, http.StatusOK, map[string]any{
		"legends": out,
		"total":   page.Total,
	})
}

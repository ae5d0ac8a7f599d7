package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	legendshandlers "github.com/dcb-athletics/sportsite/app/modules/legends/infrastructure/handlers"
	rosterhandlers "github.com/dcb-athletics/sportsite/app/modules/roster/infrastructure/handlers"
	schedulehandlers "github.com/dcb-athletics/sportsite/app/modules/schedule/infrastructure/handlers"
	"github.com/dcb-athletics/sportsite/internal/observability"
)

// Router builds the HTTP routing tree.
func (a *App) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(observability.HTTPMetrics)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", observability.MetricsHandler())

	roster := rosterhandlers.NewHandlers(a.RosterService, a.ScheduleService, a.Logger)
	schedule := schedulehandlers.NewHandlers(a.ScheduleService, a.Logger)
	legends := legendshandlers.NewHandlers(a.LegendsService, a.Logger)

	r.Route("/api", func(api chi.Router) {
		roster.Routes(api)
		schedule.Routes(api)
		legends.Routes(api)
	})

	// Serve imported photos and other media assets.
	fs := http.StripPrefix("/media/", http.FileServer(http.Dir(a.Cfg.Media.Root)))
	r.Get("/media/*", fs.ServeHTTP)

	return r
}

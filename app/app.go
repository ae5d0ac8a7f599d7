package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	legendsservice "github.com/dcb-athletics/sportsite/app/modules/legends/application"
	rosterservice "github.com/dcb-athletics/sportsite/app/modules/roster/application"
	scheduleservice "github.com/dcb-athletics/sportsite/app/modules/schedule/application"
	"github.com/dcb-athletics/sportsite/config"
	"github.com/dcb-athletics/sportsite/db/bundb"
)

// App wires the configuration, database and HTTP server together.
type App struct {
	Cfg    *config.Config
	Logger *slog.Logger

	RosterService   *rosterservice.RosterService
	ScheduleService *scheduleservice.ScheduleService
	LegendsService  *legendsservice.LegendsService

	db     *bundb.DBService
	server *http.Server
}

// DB returns the database service.
func (a *App) DB() *bundb.DBService {
	return a.db
}

// NewApp initializes the application with the necessary services and
// configuration.
func NewApp(ctx context.Context, configFile string) (*App, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("service", "sportsite"),
		slog.String("env", cfg.Environment),
	)
	slog.SetDefault(logger)

	dbService, err := bundb.NewBunDBService(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database service: %w", err)
	}

	a := &App{
		Cfg:             cfg,
		Logger:          logger,
		RosterService:   rosterservice.NewRosterService(dbService.RosterDB, logger, dbService.GetDB(), cfg.Media.Root),
		ScheduleService: scheduleservice.NewScheduleService(dbService.ScheduleDB, logger),
		LegendsService:  legendsservice.NewLegendsService(dbService.LegendsDB, logger),
		db:              dbService,
	}

	a.server = &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return a, nil
}

// Run serves HTTP until the context is canceled, then shuts down
// gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("http server listening", slog.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return a.server.Shutdown(shutdownCtx)
}

// Close releases the database connection.
func (a *App) Close() error {
	return a.db.GetDB().Close()
}

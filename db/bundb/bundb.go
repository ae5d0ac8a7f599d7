package bundb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	legendsdb "github.com/dcb-athletics/sportsite/app/modules/legends/infrastructure/repositories"
	rosterdb "github.com/dcb-athletics/sportsite/app/modules/roster/infrastructure/repositories"
	scheduledb "github.com/dcb-athletics/sportsite/app/modules/schedule/infrastructure/repositories"
	"github.com/dcb-athletics/sportsite/config"
)

// DBService bundles the module repositories with the shared connection.
type DBService struct {
	RosterDB   rosterdb.Repository
	ScheduleDB scheduledb.Repository
	LegendsDB  legendsdb.Repository

	db *bun.DB
}

// GetDB returns the underlying database connection pool.
func (s *DBService) GetDB() *bun.DB {
	return s.db
}

// NewBunDBService initializes a new DBService with the provided
// Postgres configuration.
func NewBunDBService(ctx context.Context, cfg config.PostgresConfig) (*DBService, error) {
	sqldb, err := pgConn(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	db.RegisterModel(
		(*rosterdb.Team)(nil),
		(*rosterdb.Player)(nil),
		(*rosterdb.Coach)(nil),
		(*scheduledb.Opposition)(nil),
		(*scheduledb.Game)(nil),
		(*scheduledb.Event)(nil),
		(*legendsdb.Legend)(nil),
	)

	return &DBService{
		RosterDB:   rosterdb.NewRepository(db),
		ScheduleDB: scheduledb.NewRepository(db),
		LegendsDB:  legendsdb.NewRepository(db),
		db:         db,
	}, nil
}

func pgConn(ctx context.Context, dsn string) (*sql.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))

	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return sqldb, nil
}

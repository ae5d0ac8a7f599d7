package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	rosterservice "github.com/dcb-athletics/sportsite/app/modules/roster/application"
	"github.com/dcb-athletics/sportsite/app/modules/roster/application/importer"
	"github.com/dcb-athletics/sportsite/config"
	"github.com/dcb-athletics/sportsite/db/bundb"
)

func main() {
	app := &cli.App{
		Name:  "roster-import",
		Usage: "import players from a spreadsheet with bulk ops",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yaml",
				Usage: "path to the configuration file",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Value:   "data.xlsx",
				Usage:   "spreadsheet to import",
			},
			&cli.StringFlag{
				Name:    "sheet",
				Aliases: []string{"s"},
				Value:   "0",
				Usage:   "sheet index or name",
			},
			&cli.StringFlag{
				Name:    "media-subdir",
				Aliases: []string{"m"},
				Value:   importer.DefaultMediaSubdir,
				Usage:   "photo search subdirectory under the media root",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "parse and reconcile only; do not write to the database or filesystem",
			},
			&cli.BoolFlag{
				Name:  "skip-images",
				Usage: "do not process or attach photos",
			},
			&cli.BoolFlag{
				Name:  "bulk",
				Usage: "use chunked bulk writes (photos still saved per instance)",
			},
			&cli.IntFlag{
				Name:  "batch-size",
				Value: importer.DefaultBatchSize,
				Usage: "batch size for bulk operations",
			},
		},
		Action: runImport,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runImport(c *cli.Context) error {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	dbService, err := bundb.NewBunDBService(c.Context, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer dbService.GetDB().Close()

	svc := rosterservice.NewRosterService(dbService.RosterDB, logger, dbService.GetDB(), cfg.Media.Root)

	opts := importer.Options{
		File:        c.String("file"),
		Sheet:       importer.ParseSheetSelector(c.String("sheet")),
		MediaSubdir: c.String("media-subdir"),
		DryRun:      c.Bool("dry-run"),
		SkipImages:  c.Bool("skip-images"),
		Bulk:        c.Bool("bulk"),
		BatchSize:   c.Int("batch-size"),
	}

	result, err := svc.ImportRoster(c.Context, opts)
	if err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		fmt.Fprintln(os.Stdout, "WARNING:", warning)
	}
	fmt.Fprintln(os.Stdout, result.Summary())
	return nil
}

package main

import (
	"context"
	"database/sql"
	"flag"
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"spirit11/internal/constants"
	fxmodules "spirit11/internal/fx"
	"spirit11/internal/service"
)

func main() {
	file := flag.String("file", "players.csv", "CSV file with the player catalog")
	flag.Parse()

	var (
		imports *service.ImportService
		db      *sql.DB
		logger  zerolog.Logger
	)
	app := fx.New(
		fxmodules.ImportModule,
		fx.NopLogger,
		fx.Populate(&imports, &db, &logger),
	)
	if err := app.Err(); err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("failed to build importer")
	}

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to start importer")
	}

	runErr := run(ctx, imports, *file, logger)

	stopCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		logger.Warn().Err(err).Msg("importer shutdown failed")
	}
	if err := db.Close(); err != nil {
		logger.Warn().Err(err).Msg("error closing database connection")
	}

	if runErr != nil {
		logger.Error().Err(runErr).Str("file", *file).Msg("import failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, imports *service.ImportService, path string, logger zerolog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	result, err := imports.Import(ctx, f)
	if err != nil {
		return err
	}
	logger.Info().Int("imported", result.Imported).Int64("total", result.Total).Str("file", path).Msg("import finished")
	return nil
}

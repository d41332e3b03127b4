package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"spirit11/internal/config"
	"spirit11/internal/constants"
	fxmodules "spirit11/internal/fx"
	"spirit11/internal/mcp"
	"spirit11/internal/middleware"
	"spirit11/internal/server"
	"spirit11/internal/service"
)

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(runServer),
	).Run()
}

func runServer(
	lc fx.Lifecycle,
	fantasyServer *server.FantasyServer,
	mcpServer *gomcp.Server,
	imports *service.ImportService,
	cfg *config.Config,
	db *sql.DB,
	logger zerolog.Logger,
) {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestID(logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	r.Get("/healthz", server.HealthHandler(db))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWTSecret, logger))

		path, handler := server.NewFantasyHandler(fantasyServer)
		r.Handle(path+"*", handler)
		r.Post("/admin/import", server.ImportHandler(imports, logger))
		r.Handle("/mcp", mcp.Handler(mcpServer))
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.ServerPort),
		Handler:           r,
		ReadHeaderTimeout: constants.DatabaseTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info().Str("addr", srv.Addr).Msg("server starting")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal().Err(err).Msg("server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("server shutdown failed")
				return err
			}

			if err := db.Close(); err != nil {
				logger.Warn().Err(err).Msg("error closing database connection")
			}
			logger.Info().Msg("server stopped gracefully")
			return nil
		},
	})
}

package fx

import (
	"context"
	"database/sql"
	"io"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"spirit11/internal/api"
	"spirit11/internal/assistant"
	"spirit11/internal/cache"
	"spirit11/internal/config"
	"spirit11/internal/database"
	"spirit11/internal/db"
	"spirit11/internal/logger"
	"spirit11/internal/mcp"
	"spirit11/internal/repository"
	"spirit11/internal/server"
	"spirit11/internal/service"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

// ProvideCache builds the catalog cache and closes it with the app.
func ProvideCache(lc fx.Lifecycle, cfg *config.Config, logger zerolog.Logger) (cache.Catalog, error) {
	c, err := cache.New(cfg, logger)
	if err != nil {
		return nil, err
	}
	if closer, ok := c.(io.Closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error { return closer.Close() },
		})
	}
	return c, nil
}

// storage is shared by the server and the importer CLI.
var storage = fx.Options(
	logger.Module,
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	fx.Provide(ProvideCache),
	// repos
	fx.Provide(repository.NewPlayerRepository),
	fx.Provide(repository.NewUserRepository),
	// svc
	fx.Provide(service.NewPlayerService),
	fx.Provide(service.NewImportService),
)

var Module = fx.Options(
	storage,
	config.Module,
	// api client
	fx.Provide(fx.Annotate(api.NewGeminiClient, fx.As(new(assistant.Generator)))),
	fx.Provide(assistant.NewBridge),
	// svc
	fx.Provide(service.NewTeamService),
	fx.Provide(service.NewAssistantService),
	// server
	fx.Provide(server.NewFantasyServer),
	fx.Provide(mcp.NewServer),
)

// ImportModule wires only what the CSV import needs. No Gemini or JWT
// settings are required.
var ImportModule = fx.Options(
	storage,
	fx.Provide(config.LoadForImport),
)

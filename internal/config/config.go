package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"spirit11/internal/constants"
)

type Config struct {
	GeminiAPIKey    string
	GeminiModel     string
	GeminiBaseURL   string
	JWTSecret       string
	DBPath          string
	ServerPort      string
	RedisURL        string
	CatalogCacheTTL time.Duration
	AllowedOrigins  []string
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-pro"),
		GeminiBaseURL:   getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		DBPath:          getEnv("DB_PATH", "spirit11.db"),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		RedisURL:        getEnv("REDIS_URL", ""),
		CatalogCacheTTL: constants.CatalogCacheTTL,
		AllowedOrigins:  splitList(getEnv("ALLOWED_ORIGIN", "")),
	}

	if ttl := os.Getenv("CATALOG_CACHE_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid CATALOG_CACHE_TTL: %w", err)
		}
		cfg.CatalogCacheTTL = d
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Str("gemini_model", cfg.GeminiModel).
		Bool("redis_enabled", cfg.RedisURL != "").
		Dur("catalog_cache_ttl", cfg.CatalogCacheTTL).
		Msg("configuration loaded")

	return cfg, nil
}

// LoadForImport is Load without the server-only requirements.
func LoadForImport(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}
	return &Config{
		DBPath:          getEnv("DB_PATH", "spirit11.db"),
		RedisURL:        getEnv("REDIS_URL", ""),
		CatalogCacheTTL: constants.CatalogCacheTTL,
	}, nil
}

// splitList parses a comma-separated setting, dropping empty entries.
func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)

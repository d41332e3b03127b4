package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"spirit11/internal/config"
	"spirit11/internal/constants"
	"spirit11/internal/domain"
)

// Catalog caches the full player list. Get reports ok=false on a miss.
type Catalog interface {
	Get(ctx context.Context) (players []domain.Player, ok bool, err error)
	Set(ctx context.Context, players []domain.Player) error
	Invalidate(ctx context.Context) error
}

// New returns a Redis-backed cache when REDIS_URL is set and a no-op cache
// otherwise.
func New(cfg *config.Config, logger zerolog.Logger) (Catalog, error) {
	if cfg.RedisURL == "" {
		logger.Info().Msg("catalog cache disabled")
		return Noop{}, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), constants.DatabaseTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Info().Str("addr", opts.Addr).Dur("ttl", cfg.CatalogCacheTTL).Msg("catalog cache enabled")
	return NewRedisCatalog(client, cfg.CatalogCacheTTL), nil
}

type RedisCatalog struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCatalog(client *redis.Client, ttl time.Duration) *RedisCatalog {
	return &RedisCatalog{client: client, ttl: ttl}
}

func (c *RedisCatalog) Get(ctx context.Context) ([]domain.Player, bool, error) {
	data, err := c.client.Get(ctx, constants.CatalogCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var players []domain.Player
	if err := json.Unmarshal(data, &players); err != nil {
		return nil, false, fmt.Errorf("unmarshaling catalog: %w", err)
	}
	return players, true, nil
}

func (c *RedisCatalog) Set(ctx context.Context, players []domain.Player) error {
	data, err := json.Marshal(players)
	if err != nil {
		return fmt.Errorf("marshaling catalog: %w", err)
	}
	return c.client.Set(ctx, constants.CatalogCacheKey, data, c.ttl).Err()
}

func (c *RedisCatalog) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, constants.CatalogCacheKey).Err()
}

func (c *RedisCatalog) Close() error {
	return c.client.Close()
}

type Noop struct{}

func (Noop) Get(context.Context) ([]domain.Player, bool, error) { return nil, false, nil }
func (Noop) Set(context.Context, []domain.Player) error           { return nil }
func (Noop) Invalidate(context.Context) error                     { return nil }

package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"spirit11/internal/cache"
	"spirit11/internal/config"
	"spirit11/internal/domain"
)

func TestNewWithoutRedisIsNoop(t *testing.T) {
	c, err := cache.New(&config.Config{}, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(cache.Noop); !ok {
		t.Fatalf("cache = %T, want Noop", c)
	}
	if _, ok, err := c.Get(context.Background()); ok || err != nil {
		t.Errorf("Noop.Get = %v, %v", ok, err)
	}
}

func TestNewRejectsBadURL(t *testing.T) {
	if _, err := cache.New(&config.Config{RedisURL: "not a url"}, zerolog.Nop()); err == nil {
		t.Error("expected error for malformed redis url")
	}
}

// Runs only against a real server: REDIS_TEST_URL=redis://localhost:6379/15
func TestRedisCatalogRoundTrip(t *testing.T) {
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		t.Fatal(err)
	}
	c := cache.NewRedisCatalog(redis.NewClient(opts), time.Minute)
	defer c.Close()
	ctx := context.Background()

	if err := c.Invalidate(ctx); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := c.Get(ctx); ok {
		t.Fatal("expected miss after invalidate")
	}

	in := []domain.Player{{ID: "p1", Name: "Chamika", Category: domain.CategoryBatsman}}
	if err := c.Set(ctx, in); err != nil {
		t.Fatal(err)
	}
	out, ok, err := c.Get(ctx)
	if err != nil || !ok || len(out) != 1 || out[0].ID != "p1" {
		t.Fatalf("Get = %+v, %v, %v", out, ok, err)
	}
}

package service

import (
	"context"

	"github.com/rs/zerolog"

	"spirit11/internal/cache"
	"spirit11/internal/catalog"
	"spirit11/internal/constants"
	"spirit11/internal/domain"
	"spirit11/internal/repository"
)

type PlayerService struct {
	repo   *repository.PlayerRepository
	cache  cache.Catalog
	logger zerolog.Logger
}

func NewPlayerService(repo *repository.PlayerRepository, cache cache.Catalog, logger zerolog.Logger) *PlayerService {
	return &PlayerService{repo: repo, cache: cache, logger: logger}
}

// All returns the full catalog, from cache when possible. Cache failures
// only cost a database read.
func (s *PlayerService) All(ctx context.Context) ([]domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	players, ok, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("catalog cache read failed")
	}
	if ok {
		s.logger.Debug().Int("count", len(players)).Msg("returning cached catalog")
		return players, nil
	}

	players, err = s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list players")
		return nil, err
	}

	if err := s.cache.Set(ctx, players); err != nil {
		s.logger.Warn().Err(err).Msg("catalog cache write failed")
	}
	return players, nil
}

func (s *PlayerService) Search(ctx context.Context, q catalog.Query) ([]domain.Player, error) {
	category, err := catalog.ParseCategory(q.Category)
	if err != nil {
		return nil, err
	}
	q.Category = category

	players, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	result := catalog.Filter(players, q)
	s.logger.Debug().
		Str("search", q.Search).
		Str("category", q.Category).
		Int("count", len(result)).
		Msg("search completed")
	return result, nil
}

func (s *PlayerService) Get(ctx context.Context, id string) (*domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	player, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logger.Debug().Err(err).Str("player_id", id).Msg("player lookup failed")
		return nil, err
	}
	return player, nil
}

// InvalidateCatalog drops the cached catalog after the player table changed.
func (s *PlayerService) InvalidateCatalog(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}

package service

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"spirit11/internal/constants"
	"spirit11/internal/importer"
	"spirit11/internal/repository"
)

type ImportService struct {
	repo    *repository.PlayerRepository
	players *PlayerService
	logger  zerolog.Logger
}

func NewImportService(repo *repository.PlayerRepository, players *PlayerService, logger zerolog.Logger) *ImportService {
	return &ImportService{repo: repo, players: players, logger: logger}
}

type ImportResult struct {
	Imported int   `json:"imported"`
	Total    int64 `json:"total"`
}

// Import parses the CSV, derives stats for every row and stores all rows in
// one transaction. A malformed row aborts the import before any write.
func (s *ImportService) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	players, err := importer.Parse(r)
	if err != nil {
		s.logger.Warn().Err(err).Msg("import rejected")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	saved, err := s.repo.UpsertBatch(ctx, players)
	if err != nil {
		s.logger.Error().Err(err).Int("rows", len(players)).Msg("failed to store imported players")
		return nil, fmt.Errorf("failed to store players: %w", err)
	}
	s.players.InvalidateCatalog(ctx)

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count players: %w", err)
	}

	s.logger.Info().Int("imported", len(saved)).Int64("total", total).Msg("players imported")
	return &ImportResult{Imported: len(saved), Total: total}, nil
}

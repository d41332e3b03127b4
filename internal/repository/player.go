package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"

	"spirit11/internal/constants"
	"spirit11/internal/db"
	"spirit11/internal/domain"
)

var ErrPlayerNotFound = errors.New("player not found")

type PlayerRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewPlayerRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *PlayerRepository {
	return &PlayerRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *PlayerRepository) Get(ctx context.Context, id string) (*domain.Player, error) {
	player, err := r.queries.GetPlayer(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	p := toDomainPlayer(player)
	return &p, nil
}

func (r *PlayerRepository) List(ctx context.Context) ([]domain.Player, error) {
	players, err := r.queries.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Player, len(players))
	for i, p := range players {
		result[i] = toDomainPlayer(p)
	}
	return result, nil
}

func (r *PlayerRepository) Count(ctx context.Context) (int64, error) {
	return r.queries.CountPlayers(ctx)
}

// UpsertBatch writes every player in one transaction, keyed by name and
// university. The returned slice carries the persisted ids.
func (r *PlayerRepository) UpsertBatch(ctx context.Context, players []domain.Player) ([]domain.Player, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	now := time.Now().UTC()
	out := make([]domain.Player, 0, len(players))

	for i := 0; i < len(players); i += constants.DBBatchSize {
		end := i + constants.DBBatchSize
		if end > len(players) {
			end = len(players)
		}

		for _, player := range players[i:end] {
			if player.ID == "" {
				player.ID, err = gonanoid.New()
				if err != nil {
					return nil, fmt.Errorf("failed to generate nanoid: %w", err)
				}
			}
			if player.CreatedAt.IsZero() {
				player.CreatedAt = now
			}
			player.UpdatedAt = now

			id, err := qtx.UpsertPlayer(ctx, toUpsertParams(player))
			if err != nil {
				return nil, fmt.Errorf("failed to upsert player %s: %w", player.Name, err)
			}
			player.ID = id
			out = append(out, player)
		}

		r.logger.Debug().Int("batch_end", end).Int("total", len(players)).Msg("player batch written")
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit players: %w", err)
	}
	return out, nil
}

func toUpsertParams(p domain.Player) db.UpsertPlayerParams {
	return db.UpsertPlayerParams{
		ID:                p.ID,
		Name:              p.Name,
		University:        p.University,
		Category:          string(p.Category),
		TotalRuns:         int64(p.Stats.TotalRuns),
		BallsFaced:        int64(p.Stats.BallsFaced),
		InningsPlayed:     int64(p.Stats.InningsPlayed),
		Wickets:           int64(p.Stats.Wickets),
		OversBowled:       int64(p.Stats.OversBowled),
		RunsConceded:      int64(p.Stats.RunsConceded),
		BattingStrikeRate: p.Stats.BattingStrikeRate,
		BattingAverage:    p.Stats.BattingAverage,
		BowlingStrikeRate: p.Stats.BowlingStrikeRate,
		EconomyRate:       p.Stats.EconomyRate,
		Points:            p.Stats.Points,
		Value:             p.Stats.Value,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toDomainPlayer(p db.Player) domain.Player {
	return domain.Player{
		ID:         p.ID,
		Name:       p.Name,
		University: p.University,
		Category:   domain.Category(p.Category),
		Stats: domain.PlayerStats{
			RawStats: domain.RawStats{
				TotalRuns:     int(p.TotalRuns),
				BallsFaced:    int(p.BallsFaced),
				InningsPlayed: int(p.InningsPlayed),
				Wickets:       int(p.Wickets),
				OversBowled:   int(p.OversBowled),
				RunsConceded:  int(p.RunsConceded),
			},
			DerivedStats: domain.DerivedStats{
				BattingStrikeRate: p.BattingStrikeRate,
				BattingAverage:    p.BattingAverage,
				BowlingStrikeRate: p.BowlingStrikeRate,
				EconomyRate:       p.EconomyRate,
				Points:            p.Points,
				Value:             p.Value,
			},
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

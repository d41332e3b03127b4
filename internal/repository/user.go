package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"spirit11/internal/db"
	"spirit11/internal/domain"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrVersionConflict = errors.New("user was modified concurrently")
)

type UserRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewUserRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// Get loads a user with its team in insertion order. Both reads share one
// transaction so the team always matches the returned version.
func (r *UserRepository) Get(ctx context.Context, id string) (*domain.User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	user, err := qtx.GetUser(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	members, err := qtx.ListTeamMembers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}

	team := make([]domain.TeamEntry, len(members))
	for i, m := range members {
		team[i] = domain.TeamEntry{Player: toDomainPlayer(m.Player), Value: m.Paid}
	}

	return &domain.User{
		ID:          user.ID,
		Username:    user.Username,
		Budget:      user.Budget,
		Team:        team,
		TotalPoints: user.TotalPoints,
		Version:     user.Version,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}, nil
}

// Create inserts u unless a user with the same id already exists.
func (r *UserRepository) Create(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	return r.queries.CreateUser(ctx, db.CreateUserParams{
		ID:        u.ID,
		Username:  u.Username,
		Budget:    u.Budget,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// SaveTeam commits u's budget and team together. The write only lands if the
// stored version still equals u.Version; otherwise ErrVersionConflict is
// returned and nothing changes.
func (r *UserRepository) SaveTeam(ctx context.Context, u domain.User) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	affected, err := qtx.UpdateUserBudget(ctx, db.UpdateUserBudgetParams{
		Budget:    u.Budget,
		UpdatedAt: time.Now().UTC(),
		ID:        u.ID,
		Version:   u.Version,
	})
	if err != nil {
		return fmt.Errorf("failed to update budget: %w", err)
	}
	if affected == 0 {
		r.logger.Debug().Str("user_id", u.ID).Int64("version", u.Version).Msg("stale team update rejected")
		return ErrVersionConflict
	}

	if err := qtx.DeleteTeamMembers(ctx, u.ID); err != nil {
		return fmt.Errorf("failed to clear team: %w", err)
	}
	for i, e := range u.Team {
		err := qtx.InsertTeamMember(ctx, db.InsertTeamMemberParams{
			UserID:   u.ID,
			PlayerID: e.Player.ID,
			Position: int64(i),
			Value:    e.Value,
		})
		if err != nil {
			return fmt.Errorf("failed to insert team member %s: %w", e.Player.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit team: %w", err)
	}
	return nil
}

func (r *UserRepository) Leaderboard(ctx context.Context, limit int) ([]domain.User, error) {
	users, err := r.queries.ListLeaderboard(ctx, int64(limit))
	if err != nil {
		return nil, err
	}

	result := make([]domain.User, len(users))
	for i, u := range users {
		result[i] = domain.User{
			ID:          u.ID,
			Username:    u.Username,
			Budget:      u.Budget,
			TotalPoints: u.TotalPoints,
			Version:     u.Version,
			CreatedAt:   u.CreatedAt,
			UpdatedAt:   u.UpdatedAt,
		}
	}
	return result, nil
}

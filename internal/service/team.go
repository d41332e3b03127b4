package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"spirit11/internal/catalog"
	"spirit11/internal/constants"
	"spirit11/internal/domain"
	"spirit11/internal/repository"
	"spirit11/internal/roster"
)

// Principal identifies the authenticated caller.
type Principal struct {
	UserID   string
	Username string
	Admin    bool
}

type TeamService struct {
	users   *repository.UserRepository
	players *PlayerService
	logger  zerolog.Logger
}

func NewTeamService(users *repository.UserRepository, players *PlayerService, logger zerolog.Logger) *TeamService {
	return &TeamService{users: users, players: players, logger: logger}
}

// GetOrCreate returns the caller's user, creating it with the initial
// budget on first access.
func (s *TeamService) GetOrCreate(ctx context.Context, p Principal) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	user, err := s.users.Get(ctx, p.UserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		s.logger.Error().Err(err).Str("user_id", p.UserID).Msg("failed to load user")
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	username := p.Username
	if username == "" {
		username = p.UserID
	}
	if err := s.users.Create(ctx, roster.NewUser(p.UserID, username)); err != nil {
		s.logger.Error().Err(err).Str("user_id", p.UserID).Msg("failed to create user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	s.logger.Info().Str("user_id", p.UserID).Msg("user created")

	return s.users.Get(ctx, p.UserID)
}

// AddPlayer puts playerID on the caller's team. Rule rejections come back
// as *roster.RuleError and leave the stored user untouched.
func (s *TeamService) AddPlayer(ctx context.Context, p Principal, playerID string) (*domain.User, error) {
	player, err := s.players.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, p, "add", playerID, func(u domain.User) (domain.User, error) {
		return roster.Add(u, *player)
	})
}

func (s *TeamService) RemovePlayer(ctx context.Context, p Principal, playerID string) (*domain.User, error) {
	return s.mutate(ctx, p, "remove", playerID, func(u domain.User) (domain.User, error) {
		return roster.Remove(u, playerID)
	})
}

// mutate runs read, rule, conditional write. A lost race re-reads the user
// and re-applies the rule against the fresh state.
func (s *TeamService) mutate(ctx context.Context, p Principal, op, playerID string, rule func(domain.User) (domain.User, error)) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	var result domain.User
	backoff := retry.WithMaxRetries(constants.TeamUpdateMaxRetries, retry.NewConstant(constants.TeamUpdateBackoff))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		current, err := s.GetOrCreate(ctx, p)
		if err != nil {
			return err
		}

		next, err := rule(*current)
		if err != nil {
			return err
		}

		if err := s.users.SaveTeam(ctx, next); err != nil {
			if errors.Is(err, repository.ErrVersionConflict) {
				s.logger.Debug().Str("user_id", p.UserID).Str("op", op).Msg("team update conflict, retrying")
				return retry.RetryableError(err)
			}
			return err
		}

		next.Version++
		result = next
		return nil
	})
	if err != nil {
		var ruleErr *roster.RuleError
		if errors.As(err, &ruleErr) {
			s.logger.Info().Str("user_id", p.UserID).Str("op", op).Str("player_id", playerID).Str("reason", ruleErr.Err.Error()).Msg("team change rejected")
		} else {
			s.logger.Error().Err(err).Str("user_id", p.UserID).Str("op", op).Str("player_id", playerID).Msg("team change failed")
		}
		return nil, err
	}

	s.logger.Info().
		Str("user_id", p.UserID).
		Str("op", op).
		Str("player_id", playerID).
		Int64("budget", result.Budget).
		Int("team_size", len(result.Team)).
		Msg("team updated")
	return &result, nil
}

// Overview is the caller's user together with the catalog annotated with
// which players are already picked.
type Overview struct {
	User      *domain.User
	Available []catalog.Selection
}

func (s *TeamService) Overview(ctx context.Context, p Principal, category string) (*Overview, error) {
	category, err := catalog.ParseCategory(category)
	if err != nil {
		return nil, err
	}

	var (
		user    *domain.User
		players []domain.Player
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.GetOrCreate(gCtx, p)
		return err
	})
	g.Go(func() error {
		var err error
		players, err = s.players.All(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	filtered := catalog.Filter(players, catalog.Query{Category: category})
	return &Overview{User: user, Available: catalog.Available(filtered, *user)}, nil
}

// Budget summarises how much of the initial budget a user has spent.
type Budget struct {
	Initial        int64
	Remaining      int64
	Spent          int64
	SpentPercent   float64
	InitialLabel   string
	RemainingLabel string
	SpentLabel     string
}

func (s *TeamService) Budget(ctx context.Context, p Principal) (*Budget, error) {
	user, err := s.GetOrCreate(ctx, p)
	if err != nil {
		return nil, err
	}
	return SummarizeBudget(user.Budget), nil
}

func SummarizeBudget(remaining int64) *Budget {
	spent := constants.InitialBudget - remaining
	printer := message.NewPrinter(language.English)
	return &Budget{
		Initial:        constants.InitialBudget,
		Remaining:      remaining,
		Spent:          spent,
		SpentPercent:   float64(spent) / float64(constants.InitialBudget) * 100,
		InitialLabel:   printer.Sprintf("Rs. %d", constants.InitialBudget),
		RemainingLabel: printer.Sprintf("Rs. %d", remaining),
		SpentLabel:     printer.Sprintf("Rs. %d", spent),
	}
}

func (s *TeamService) Leaderboard(ctx context.Context, limit int) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if limit <= 0 {
		limit = constants.LeaderboardDefaultLimit
	}
	if limit > constants.LeaderboardMaxLimit {
		limit = constants.LeaderboardMaxLimit
	}
	return s.users.Leaderboard(ctx, limit)
}

// Package roster holds the rules under which a player joins or leaves a
// user's team. Every function is pure: the User passed in is never mutated.
package roster

import (
	"errors"
	"fmt"

	"spirit11/internal/constants"
	"spirit11/internal/domain"
)

var (
	ErrDuplicatePlayer    = errors.New("player is already in the team")
	ErrTeamFull           = errors.New("team is already full")
	ErrInsufficientBudget = errors.New("not enough budget for this player")
	ErrPlayerNotInTeam    = errors.New("player is not in the team")
	ErrInvariantViolated  = errors.New("team invariant violated")
)

// RuleError is a rejection of a roster change. Err is one of the sentinel
// errors above.
type RuleError struct {
	PlayerID string
	Err      error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err, e.PlayerID)
}

func (e *RuleError) Unwrap() error { return e.Err }

func reject(playerID string, err error) *RuleError {
	return &RuleError{PlayerID: playerID, Err: err}
}

// Add appends p to u's team and debits its value. Checks run in order and
// the first failing one wins: duplicate, team full, insufficient budget.
func Add(u domain.User, p domain.Player) (domain.User, error) {
	if u.HasPlayer(p.ID) {
		return u, reject(p.ID, ErrDuplicatePlayer)
	}
	if len(u.Team) >= constants.MaxTeamSize {
		return u, reject(p.ID, ErrTeamFull)
	}
	if u.Budget < p.Stats.Value {
		return u, reject(p.ID, ErrInsufficientBudget)
	}

	team := make([]domain.TeamEntry, len(u.Team), len(u.Team)+1)
	copy(team, u.Team)
	team = append(team, domain.TeamEntry{Player: p, Value: p.Stats.Value})

	next := u
	next.Team = team
	next.Budget = u.Budget - p.Stats.Value
	return next, nil
}

// Remove drops playerID from u's team and refunds the price that was paid
// for it.
func Remove(u domain.User, playerID string) (domain.User, error) {
	idx := -1
	for i, e := range u.Team {
		if e.Player.ID == playerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return u, reject(playerID, ErrPlayerNotInTeam)
	}

	refund := u.Team[idx].Value
	team := make([]domain.TeamEntry, 0, len(u.Team)-1)
	team = append(team, u.Team[:idx]...)
	team = append(team, u.Team[idx+1:]...)

	next := u
	next.Team = team
	next.Budget = u.Budget + refund
	return next, nil
}

// CheckInvariant verifies that the budget accounts for every player on the
// team, that the team is within size and that no player appears twice.
func CheckInvariant(u domain.User) error {
	if len(u.Team) > constants.MaxTeamSize {
		return fmt.Errorf("%w: %d players, max %d", ErrInvariantViolated, len(u.Team), constants.MaxTeamSize)
	}
	seen := make(map[string]struct{}, len(u.Team))
	for _, e := range u.Team {
		if _, ok := seen[e.Player.ID]; ok {
			return fmt.Errorf("%w: duplicate player %s", ErrInvariantViolated, e.Player.ID)
		}
		seen[e.Player.ID] = struct{}{}
	}
	if spent := constants.InitialBudget - u.Budget; spent != u.TeamValue() {
		return fmt.Errorf("%w: spent=%d team=%d", ErrInvariantViolated, spent, u.TeamValue())
	}
	return nil
}

// NewUser returns a user with the initial budget and an empty team.
func NewUser(id, username string) domain.User {
	return domain.User{
		ID:       id,
		Username: username,
		Budget:   constants.InitialBudget,
		Team:     []domain.TeamEntry{},
	}
}

package catalog

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"spirit11/internal/domain"
)

// CategoryAll disables the category filter.
const CategoryAll = "all"

var ErrUnknownCategory = errors.New("unknown category")

type Query struct {
	Search   string
	Category string
}

// ParseCategory validates a category filter. Empty and "all" both select
// every category.
func ParseCategory(s string) (string, error) {
	if s == "" || strings.EqualFold(s, CategoryAll) {
		return CategoryAll, nil
	}
	if !domain.Category(s).Valid() {
		return "", fmt.Errorf("%w %q", ErrUnknownCategory, s)
	}
	return s, nil
}

// Filter returns the players whose name or university contains q.Search
// (case-insensitively) and whose category matches q.Category. Relative
// order is preserved and players is left untouched.
func Filter(players []domain.Player, q Query) []domain.Player {
	fold := cases.Fold()
	term := fold.String(q.Search)

	result := make([]domain.Player, 0, len(players))
	for _, p := range players {
		if q.Category != "" && q.Category != CategoryAll && string(p.Category) != q.Category {
			continue
		}
		if term != "" &&
			!strings.Contains(fold.String(p.Name), term) &&
			!strings.Contains(fold.String(p.University), term) {
			continue
		}
		result = append(result, p)
	}
	return result
}

// ByCategory groups players per category, keeping catalog order inside
// each group.
func ByCategory(players []domain.Player) map[domain.Category][]domain.Player {
	groups := make(map[domain.Category][]domain.Player, len(domain.Categories))
	for _, p := range players {
		groups[p.Category] = append(groups[p.Category], p)
	}
	return groups
}

// Selection pairs a catalog player with whether it is already on a team.
type Selection struct {
	Player domain.Player
	OnTeam bool
}

func Available(players []domain.Player, u domain.User) []Selection {
	out := make([]Selection, len(players))
	for i, p := range players {
		out[i] = Selection{Player: p, OnTeam: u.HasPlayer(p.ID)}
	}
	return out
}

package server

import (
	"spirit11/internal/catalog"
	"spirit11/internal/domain"
	"spirit11/internal/service"
)

type ListPlayersRequest struct {
	Search   string `json:"search,omitempty"`
	Category string `json:"category,omitempty"`
}

type ListPlayersResponse struct {
	Players []PlayerView `json:"players"`
}

type GetPlayerRequest struct {
	ID string `json:"id"`
}

type GetPlayerResponse struct {
	Player PlayerView `json:"player"`
}

// GetTeamRequest selects which catalog slice comes back beside the team.
// An empty category means all.
type GetTeamRequest struct {
	Category string `json:"category,omitempty"`
}

type GetTeamResponse struct {
	Team      TeamView        `json:"team"`
	Available []SelectionView `json:"available"`
}

type SelectionView struct {
	Player PlayerView `json:"player"`
	OnTeam bool       `json:"onTeam"`
}

type GetBudgetRequest struct{}

type GetBudgetResponse struct {
	Initial        int64   `json:"initial"`
	Remaining      int64   `json:"remaining"`
	Spent          int64   `json:"spent"`
	SpentPercent   float64 `json:"spentPercent"`
	InitialLabel   string  `json:"initialLabel"`
	RemainingLabel string  `json:"remainingLabel"`
	SpentLabel     string  `json:"spentLabel"`
}

type TeamChangeRequest struct {
	PlayerID string `json:"playerId"`
}

type TeamChangeResponse struct {
	Team TeamView `json:"team"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type SuggestTeamRequest struct{}

type LeaderboardRequest struct {
	Limit int `json:"limit,omitempty"`
}

type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
}

type LeaderboardEntry struct {
	Rank        int     `json:"rank"`
	UserID      string  `json:"userId"`
	Username    string  `json:"username"`
	TotalPoints float64 `json:"totalPoints"`
}

type ImportPlayersRequest struct {
	CSV string `json:"csv"`
}

type ImportPlayersResponse struct {
	Imported int   `json:"imported"`
	Total    int64 `json:"total"`
}

// PlayerStatsView is domain.PlayerStats without points.
type PlayerStatsView struct {
	domain.RawStats
	BattingStrikeRate float64 `json:"battingStrikeRate"`
	BattingAverage    float64 `json:"battingAverage"`
	BowlingStrikeRate float64 `json:"bowlingStrikeRate"`
	EconomyRate       float64 `json:"economyRate"`
	Value             int64   `json:"value"`
}

type PlayerView struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	University string          `json:"university"`
	Category   domain.Category `json:"category"`
	Stats      PlayerStatsView `json:"stats"`
}

type TeamMemberView struct {
	Player PlayerView `json:"player"`
	Paid   int64      `json:"paid"`
}

type TeamView struct {
	UserID      string                  `json:"userId"`
	Username    string                  `json:"username"`
	Budget      int64                   `json:"budget"`
	Members     []TeamMemberView        `json:"members"`
	Composition map[domain.Category]int `json:"composition"`
	TotalPoints float64                 `json:"totalPoints"`
	Complete    bool                    `json:"complete"`
}

func toPlayerView(p domain.Player) PlayerView {
	return PlayerView{
		ID:         p.ID,
		Name:       p.Name,
		University: p.University,
		Category:   p.Category,
		Stats: PlayerStatsView{
			RawStats:          p.Stats.RawStats,
			BattingStrikeRate: p.Stats.BattingStrikeRate,
			BattingAverage:    p.Stats.BattingAverage,
			BowlingStrikeRate: p.Stats.BowlingStrikeRate,
			EconomyRate:       p.Stats.EconomyRate,
			Value:             p.Stats.Value,
		},
	}
}

func toPlayerViews(players []domain.Player) []PlayerView {
	views := make([]PlayerView, 0, len(players))
	for _, p := range players {
		views = append(views, toPlayerView(p))
	}
	return views
}

func toTeamView(u *domain.User, teamSize int) TeamView {
	members := make([]TeamMemberView, 0, len(u.Team))
	picked := make([]domain.Player, 0, len(u.Team))
	for _, e := range u.Team {
		members = append(members, TeamMemberView{Player: toPlayerView(e.Player), Paid: e.Value})
		picked = append(picked, e.Player)
	}

	composition := make(map[domain.Category]int, len(domain.Categories))
	for _, c := range domain.Categories {
		composition[c] = 0
	}
	for c, players := range catalog.ByCategory(picked) {
		composition[c] = len(players)
	}

	return TeamView{
		UserID:      u.ID,
		Username:    u.Username,
		Budget:      u.Budget,
		Members:     members,
		Composition: composition,
		TotalPoints: u.TotalPoints,
		Complete:    len(u.Team) == teamSize,
	}
}

func toSelectionViews(selections []catalog.Selection) []SelectionView {
	views := make([]SelectionView, 0, len(selections))
	for _, sel := range selections {
		views = append(views, SelectionView{Player: toPlayerView(sel.Player), OnTeam: sel.OnTeam})
	}
	return views
}

func toBudgetResponse(b *service.Budget) *GetBudgetResponse {
	return &GetBudgetResponse{
		Initial:        b.Initial,
		Remaining:      b.Remaining,
		Spent:          b.Spent,
		SpentPercent:   b.SpentPercent,
		InitialLabel:   b.InitialLabel,
		RemainingLabel: b.RemainingLabel,
		SpentLabel:     b.SpentLabel,
	}
}

package domain

import (
	"time"
)

type Category string

const (
	CategoryBatsman    Category = "Batsman"
	CategoryBowler     Category = "Bowler"
	CategoryAllRounder Category = "All-Rounder"
)

var Categories = []Category{CategoryBatsman, CategoryBowler, CategoryAllRounder}

func (c Category) Valid() bool {
	switch c {
	case CategoryBatsman, CategoryBowler, CategoryAllRounder:
		return true
	}
	return false
}

// RawStats are the counting stats imported per player.
type RawStats struct {
	TotalRuns     int `json:"totalRuns"`
	BallsFaced    int `json:"ballsFaced"`
	InningsPlayed int `json:"inningsPlayed"`
	Wickets       int `json:"wickets"`
	OversBowled   int `json:"oversBowled"`
	RunsConceded  int `json:"runsConceded"`
}

// DerivedStats are recomputed from RawStats and never edited directly.
type DerivedStats struct {
	BattingStrikeRate float64 `json:"battingStrikeRate"`
	BattingAverage    float64 `json:"battingAverage"`
	BowlingStrikeRate float64 `json:"bowlingStrikeRate"`
	EconomyRate       float64 `json:"economyRate"`
	Points            float64 `json:"points"`
	Value             int64   `json:"value"`
}

type PlayerStats struct {
	RawStats
	DerivedStats
}

type Player struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	University string      `json:"university"`
	Category   Category    `json:"category"`
	Stats      PlayerStats `json:"stats"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// TeamEntry is a player on a user's roster together with the price paid.
type TeamEntry struct {
	Player Player `json:"player"`
	Value  int64  `json:"value"`
}

type User struct {
	ID          string      `json:"id"`
	Username    string      `json:"username"`
	Budget      int64       `json:"budget"`
	Team        []TeamEntry `json:"team"`
	TotalPoints float64     `json:"totalPoints"`
	Version     int64       `json:"-"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func (u *User) HasPlayer(playerID string) bool {
	for _, e := range u.Team {
		if e.Player.ID == playerID {
			return true
		}
	}
	return false
}

// TeamValue sums the prices paid for every player currently on the team.
func (u *User) TeamValue() int64 {
	var total int64
	for _, e := range u.Team {
		total += e.Value
	}
	return total
}

// Package stats turns a player's raw counting stats into the rates, points
// and market value used by the rest of the service.
package stats

import (
	"math"

	"spirit11/internal/constants"
	"spirit11/internal/domain"
)

// Derive computes every derived field from raw. It is pure: the same input
// always yields the same output and no division is allowed to leak a NaN or
// an infinity into the result.
func Derive(raw domain.RawStats) domain.DerivedStats {
	runs := float64(raw.TotalRuns)
	balls := float64(raw.BallsFaced)
	innings := float64(raw.InningsPlayed)
	wickets := float64(raw.Wickets)
	overs := float64(raw.OversBowled)
	conceded := float64(raw.RunsConceded)

	battingStrikeRate := orZero(runs / balls * 100)
	battingAverage := orZero(runs / innings)
	bowlingStrikeRate := orZero(overs * 6 / wickets)
	economyRate := orZero(conceded / (overs * 6) * 6)

	points := Points(battingStrikeRate, battingAverage, bowlingStrikeRate, economyRate)

	return domain.DerivedStats{
		BattingStrikeRate: battingStrikeRate,
		BattingAverage:    battingAverage,
		BowlingStrikeRate: bowlingStrikeRate,
		EconomyRate:       economyRate,
		Points:            points,
		Value:             Value(points),
	}
}

// Points combines the four rates. The bowling group is an inverse of two
// rates; when either rate is zero the group is non-finite and contributes 0.
func Points(battingStrikeRate, battingAverage, bowlingStrikeRate, economyRate float64) float64 {
	batting := orZero(battingStrikeRate/5 + battingAverage*0.8)
	bowling := orZero(500/bowlingStrikeRate + 140/economyRate)
	return orZero(batting + bowling)
}

// Value prices a player from its points, rounded to the nearest ValueStep.
func Value(points float64) int64 {
	raw := (9*points + 100) * 1000
	steps := math.Round(raw / float64(constants.ValueStep))
	if math.IsNaN(steps) || math.IsInf(steps, 0) || steps < 0 {
		return 0
	}
	return int64(steps) * constants.ValueStep
}

// Apply recomputes p's derived block from its raw block.
func Apply(p *domain.Player) {
	p.Stats.DerivedStats = Derive(p.Stats.RawStats)
}

// Verify reports whether the stored derived stats of p match a fresh
// recomputation.
func Verify(p domain.Player) bool {
	return p.Stats.DerivedStats == Derive(p.Stats.RawStats)
}

func orZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

package stats_test

import (
	"math"
	"testing"

	"spirit11/internal/domain"
	"spirit11/internal/stats"
)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestDeriveBatsmanWithoutWickets(t *testing.T) {
	got := stats.Derive(domain.RawStats{
		TotalRuns:     530,
		BallsFaced:    588,
		InningsPlayed: 10,
		Wickets:       0,
		OversBowled:   3,
		RunsConceded:  21,
	})

	if !almost(got.BattingStrikeRate, 90.14) {
		t.Errorf("BattingStrikeRate = %f, want ~90.14", got.BattingStrikeRate)
	}
	if got.BattingAverage != 53.0 {
		t.Errorf("BattingAverage = %f, want 53", got.BattingAverage)
	}
	if got.BowlingStrikeRate != 0 {
		t.Errorf("BowlingStrikeRate = %f, want 0", got.BowlingStrikeRate)
	}
	if got.EconomyRate != 7 {
		t.Errorf("EconomyRate = %f, want 7", got.EconomyRate)
	}

	battingOnly := got.BattingStrikeRate/5 + got.BattingAverage*0.8
	if !almost(got.Points, battingOnly) {
		t.Errorf("Points = %f, want batting terms only (%f)", got.Points, battingOnly)
	}
	if got.Value != 650_000 {
		t.Errorf("Value = %d, want 650000", got.Value)
	}
}

func TestDeriveAllRounder(t *testing.T) {
	got := stats.Derive(domain.RawStats{
		TotalRuns:     250,
		BallsFaced:    208,
		InningsPlayed: 10,
		Wickets:       8,
		OversBowled:   40,
		RunsConceded:  240,
	})

	if got.BowlingStrikeRate != 30 {
		t.Errorf("BowlingStrikeRate = %f, want 30", got.BowlingStrikeRate)
	}
	if got.EconomyRate != 6 {
		t.Errorf("EconomyRate = %f, want 6", got.EconomyRate)
	}
	if !almost(got.Points, 84.04) {
		t.Errorf("Points = %f, want ~84.04", got.Points)
	}
	if got.Value != 850_000 {
		t.Errorf("Value = %d, want 850000", got.Value)
	}
}

func TestDeriveZeroGuards(t *testing.T) {
	tests := []struct {
		name  string
		raw   domain.RawStats
		check func(t *testing.T, d domain.DerivedStats)
	}{
		{
			name: "no balls faced",
			raw:  domain.RawStats{TotalRuns: 12, InningsPlayed: 2},
			check: func(t *testing.T, d domain.DerivedStats) {
				if d.BattingStrikeRate != 0 {
					t.Errorf("BattingStrikeRate = %f, want 0", d.BattingStrikeRate)
				}
			},
		},
		{
			name: "no innings",
			raw:  domain.RawStats{TotalRuns: 12, BallsFaced: 10},
			check: func(t *testing.T, d domain.DerivedStats) {
				if d.BattingAverage != 0 {
					t.Errorf("BattingAverage = %f, want 0", d.BattingAverage)
				}
			},
		},
		{
			name: "no overs bowled",
			raw:  domain.RawStats{Wickets: 0, OversBowled: 0, RunsConceded: 0},
			check: func(t *testing.T, d domain.DerivedStats) {
				if d.EconomyRate != 0 || d.BowlingStrikeRate != 0 {
					t.Errorf("rates = (%f, %f), want zeros", d.EconomyRate, d.BowlingStrikeRate)
				}
			},
		},
		{
			name: "brand new bowler",
			raw:  domain.RawStats{},
			check: func(t *testing.T, d domain.DerivedStats) {
				if d.Points != 0 {
					t.Errorf("Points = %f, want 0", d.Points)
				}
				if d.Value != 100_000 {
					t.Errorf("Value = %d, want 100000", d.Value)
				}
			},
		},
		{
			name: "wickets without runs conceded",
			raw:  domain.RawStats{Wickets: 3, OversBowled: 4, RunsConceded: 0},
			check: func(t *testing.T, d domain.DerivedStats) {
				if d.BowlingStrikeRate != 8 {
					t.Errorf("BowlingStrikeRate = %f, want 8", d.BowlingStrikeRate)
				}
				if d.Points != 0 {
					t.Errorf("Points = %f, want 0 once economy collapses the bowling group", d.Points)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := stats.Derive(tt.raw)
			for _, v := range []float64{d.BattingStrikeRate, d.BattingAverage, d.BowlingStrikeRate, d.EconomyRate, d.Points} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("non-finite derived value in %+v", d)
				}
			}
			tt.check(t, d)
		})
	}
}

func TestValueIsNonNegativeMultipleOfStep(t *testing.T) {
	for runs := 0; runs <= 600; runs += 37 {
		for wickets := 0; wickets <= 20; wickets += 3 {
			raw := domain.RawStats{
				TotalRuns:     runs,
				BallsFaced:    runs/2 + wickets,
				InningsPlayed: wickets % 7,
				Wickets:       wickets,
				OversBowled:   wickets * 2,
				RunsConceded:  wickets * 9,
			}
			d := stats.Derive(raw)
			if d.Value < 0 || d.Value%50_000 != 0 {
				t.Fatalf("Derive(%+v).Value = %d, want non-negative multiple of 50000", raw, d.Value)
			}
		}
	}
}

func TestDeriveIsDeterministic(t *testing.T) {
	raw := domain.RawStats{TotalRuns: 417, BallsFaced: 390, InningsPlayed: 9, Wickets: 11, OversBowled: 38, RunsConceded: 201}
	if a, b := stats.Derive(raw), stats.Derive(raw); a != b {
		t.Errorf("Derive not deterministic: %+v != %+v", a, b)
	}
}

func TestApplyAndVerify(t *testing.T) {
	p := domain.Player{
		Name: "Test",
		Stats: domain.PlayerStats{
			RawStats: domain.RawStats{TotalRuns: 100, BallsFaced: 80, InningsPlayed: 4},
		},
	}
	if stats.Verify(p) {
		t.Fatal("Verify should fail before Apply")
	}
	stats.Apply(&p)
	if !stats.Verify(p) {
		t.Fatal("Verify should pass after Apply")
	}
	p.Stats.Value += 50_000
	if stats.Verify(p) {
		t.Fatal("Verify should detect a diverged value")
	}
}

package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"spirit11/internal/config"
	"spirit11/internal/database"
	"spirit11/internal/db"
	"spirit11/internal/domain"
	"spirit11/internal/repository"
	"spirit11/internal/roster"
	"spirit11/internal/stats"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "test.db")}
	sqlDB, err := database.New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("database.New: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })
	return sqlDB
}

func newPlayer(name, university string, category domain.Category, raw domain.RawStats) domain.Player {
	p := domain.Player{Name: name, University: university, Category: category, Stats: domain.PlayerStats{RawStats: raw}}
	stats.Apply(&p)
	return p
}

func seedPlayers(t *testing.T, repo *repository.PlayerRepository) []domain.Player {
	t.Helper()
	saved, err := repo.UpsertBatch(context.Background(), []domain.Player{
		newPlayer("Chamika Chandimal", "UVPA", domain.CategoryBatsman, domain.RawStats{TotalRuns: 530, BallsFaced: 588, InningsPlayed: 10, OversBowled: 3, RunsConceded: 21}),
		newPlayer("Dimuth Dhananjaya", "UVPA", domain.CategoryAllRounder, domain.RawStats{TotalRuns: 250, BallsFaced: 208, InningsPlayed: 10, Wickets: 8, OversBowled: 40, RunsConceded: 240}),
		newPlayer("Avishka Mendis", "Eastern", domain.CategoryBowler, domain.RawStats{TotalRuns: 20, BallsFaced: 30, InningsPlayed: 4, Wickets: 12, OversBowled: 36, RunsConceded: 180}),
	})
	if err != nil {
		t.Fatalf("UpsertBatch: %v", err)
	}
	return saved
}

func TestPlayerRepositoryRoundTrip(t *testing.T) {
	sqlDB := openDB(t)
	repo := repository.NewPlayerRepository(sqlDB, db.New(sqlDB), zerolog.Nop())
	ctx := context.Background()

	saved := seedPlayers(t, repo)
	for _, p := range saved {
		if p.ID == "" {
			t.Fatalf("player %s has no id", p.Name)
		}
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 || list[0].Name != "Chamika Chandimal" || list[2].Name != "Avishka Mendis" {
		t.Fatalf("List order = %+v", list)
	}
	for _, p := range list {
		if !stats.Verify(p) {
			t.Errorf("stored derived stats of %s diverge from recomputation", p.Name)
		}
	}

	got, err := repo.Get(ctx, saved[1].ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Stats.Value != saved[1].Stats.Value || got.Category != domain.CategoryAllRounder {
		t.Errorf("Get = %+v", got)
	}

	if _, err := repo.Get(ctx, "missing"); !errors.Is(err, repository.ErrPlayerNotFound) {
		t.Errorf("err = %v, want ErrPlayerNotFound", err)
	}
}

func TestPlayerRepositoryReimportKeepsIDs(t *testing.T) {
	sqlDB := openDB(t)
	repo := repository.NewPlayerRepository(sqlDB, db.New(sqlDB), zerolog.Nop())
	ctx := context.Background()

	first := seedPlayers(t, repo)
	updated := newPlayer("Chamika Chandimal", "UVPA", domain.CategoryBatsman, domain.RawStats{TotalRuns: 900, BallsFaced: 700, InningsPlayed: 12})
	again, err := repo.UpsertBatch(ctx, []domain.Player{updated})
	if err != nil {
		t.Fatal(err)
	}
	if again[0].ID != first[0].ID {
		t.Errorf("re-import changed id: %s -> %s", first[0].ID, again[0].ID)
	}
	n, err := repo.Count(ctx)
	if err != nil || n != 3 {
		t.Errorf("Count = %d, %v; want 3", n, err)
	}
	got, _ := repo.Get(ctx, first[0].ID)
	if got.Stats.TotalRuns != 900 || got.Stats.Value != updated.Stats.Value {
		t.Errorf("stats not refreshed: %+v", got.Stats)
	}
}

func TestUserRepositorySaveTeam(t *testing.T) {
	sqlDB := openDB(t)
	queries := db.New(sqlDB)
	players := seedPlayers(t, repository.NewPlayerRepository(sqlDB, queries, zerolog.Nop()))
	users := repository.NewUserRepository(sqlDB, queries, zerolog.Nop())
	ctx := context.Background()

	if _, err := users.Get(ctx, "u1"); !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
	if err := users.Create(ctx, roster.NewUser("u1", "tester")); err != nil {
		t.Fatal(err)
	}
	// a second create must not reset anything
	if err := users.Create(ctx, roster.NewUser("u1", "other")); err != nil {
		t.Fatal(err)
	}

	u, err := users.Get(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if u.Username != "tester" || len(u.Team) != 0 {
		t.Fatalf("user = %+v", u)
	}

	next, err := roster.Add(*u, players[1])
	if err != nil {
		t.Fatal(err)
	}
	next, err = roster.Add(next, players[0])
	if err != nil {
		t.Fatal(err)
	}
	if err := users.SaveTeam(ctx, next); err != nil {
		t.Fatalf("SaveTeam: %v", err)
	}

	stored, err := users.Get(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if stored.Version != u.Version+1 {
		t.Errorf("Version = %d, want %d", stored.Version, u.Version+1)
	}
	if len(stored.Team) != 2 || stored.Team[0].Player.ID != players[1].ID || stored.Team[1].Player.ID != players[0].ID {
		t.Errorf("team order not preserved: %+v", stored.Team)
	}
	if err := roster.CheckInvariant(*stored); err != nil {
		t.Errorf("invariant: %v", err)
	}

	// writing from the stale snapshot must fail and change nothing
	stale, _ := roster.Add(*u, players[2])
	if err := users.SaveTeam(ctx, stale); !errors.Is(err, repository.ErrVersionConflict) {
		t.Fatalf("err = %v, want ErrVersionConflict", err)
	}
	after, _ := users.Get(ctx, "u1")
	if after.Budget != stored.Budget || len(after.Team) != 2 {
		t.Errorf("stale write leaked: %+v", after)
	}
}

func TestUserRepositoryLeaderboard(t *testing.T) {
	sqlDB := openDB(t)
	users := repository.NewUserRepository(sqlDB, db.New(sqlDB), zerolog.Nop())
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if err := users.Create(ctx, roster.NewUser(id, id)); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := sqlDB.Exec(`UPDATE users SET total_points = 42 WHERE id = 'b'`); err != nil {
		t.Fatal(err)
	}

	board, err := users.Leaderboard(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(board) != 2 || board[0].ID != "b" {
		t.Errorf("Leaderboard = %+v", board)
	}
}

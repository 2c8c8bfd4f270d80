package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/panel-arcade/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("panel", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("panel_timed", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("panel", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].Mode != "panel" {
		t.Errorf("Expected mode panel, got %q", scores[0].Mode)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("panel", (i+1)*100)
	}

	scores, err := store.TopScores("panel", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("panel")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty mode, got %d", high)
	}

	store.SaveScore("panel", 100)
	store.SaveScore("panel", 300)
	store.SaveScore("panel", 200)

	high, err = store.HighScore("panel")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreSaveRound(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	rounds := []core.RoundStats{
		{Score: 240, BlocksCleared: 18, MaxChain: 2, Ticks: 3600},
		{Score: 240, BlocksCleared: 15, MaxChain: 4, Ticks: 4000},
		{Score: 90, BlocksCleared: 9, MaxChain: 1, Ticks: 1200},
	}
	for _, r := range rounds {
		if _, err := store.SaveRound(ctx, "panel", r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	top, err := store.TopRounds("panel", 10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(top))
	}
	// Equal scores rank the longer chain first
	if top[0].MaxChain != 4 || top[1].MaxChain != 2 {
		t.Errorf("Tie not broken by chain: %+v", top)
	}
	if top[0].Ticks != 4000 || top[0].BlocksCleared != 15 {
		t.Errorf("Round fields not round-tripped: %+v", top[0])
	}

	// Rounds also feed the score table
	high, err := store.HighScore("panel")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 240 {
		t.Errorf("Expected high score 240, got %d", high)
	}

	chain, err := store.BestChain("panel")
	if err != nil {
		t.Fatalf("BestChain() failed: %v", err)
	}
	if chain != 4 {
		t.Errorf("Expected best chain 4, got %d", chain)
	}
}

func TestStoreBestChainEmpty(t *testing.T) {
	store := openTestStore(t)

	chain, err := store.BestChain("panel_timed")
	if err != nil {
		t.Fatalf("BestChain() failed: %v", err)
	}
	if chain != 0 {
		t.Errorf("Expected 0 for no rounds, got %d", chain)
	}
}

func TestStoreModeStats(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	store.SaveRound(ctx, "panel_timed", core.RoundStats{Score: 100, BlocksCleared: 10, MaxChain: 1})
	store.SaveRound(ctx, "panel_timed", core.RoundStats{Score: 300, BlocksCleared: 20, MaxChain: 3})

	stats, err := store.GetModeStats("panel_timed")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if stats.Rounds != 2 || stats.HighScore != 300 || stats.BestChain != 3 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 || stats.BlocksCleared != 30 {
		t.Errorf("Unexpected aggregates: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.GetModeStats("panel")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if empty.Rounds != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	store.SaveRound(ctx, "panel", core.RoundStats{Score: 100, MaxChain: 1})
	store.SaveRound(ctx, "panel_timed", core.RoundStats{Score: 300, MaxChain: 2})

	if err := store.ClearScores("panel"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("panel", 10); len(scores) != 0 {
		t.Errorf("Expected 0 panel scores after clear, got %d", len(scores))
	}
	if rounds, _ := store.TopRounds("panel", 10); len(rounds) != 0 {
		t.Errorf("Expected 0 panel rounds after clear, got %d", len(rounds))
	}
	if rounds, _ := store.TopRounds("panel_timed", 10); len(rounds) != 1 {
		t.Error("Other modes should not be affected by clearing panel")
	}
}

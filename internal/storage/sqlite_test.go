package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-doodle/internal/game"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreInMemory(t *testing.T) {
	store, err := Open(MemoryPath)
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer store.Close()

	if err := store.RecordRun(game.RunResult{Score: 42, Outcome: game.OutcomeDead}); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	runs, err := store.RecentRuns(5)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Score != 42 {
		t.Errorf("in-memory store lost the run: %+v", runs)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []game.RunResult{
		{Score: 2_300_000_000, Outcome: game.OutcomeDead, Markers: 1, Duration: 90 * time.Second},
		{Score: 500_000, Outcome: game.OutcomeDead, Duration: 3 * time.Second},
		{Score: 100_000_500_000, Outcome: game.OutcomeWon, Markers: 7, Duration: 20 * time.Minute},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending
	want := []int64{100_000_500_000, 2_300_000_000, 500_000}
	for i, score := range want {
		if top[i].Score != score {
			t.Errorf("top[%d].Score = %d, want %d", i, top[i].Score, score)
		}
	}

	best := top[0]
	if best.Outcome != game.OutcomeWon || best.Markers != 7 || best.Duration != 20*time.Minute {
		t.Errorf("round trip mismatch: %+v", best)
	}
	if best.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := int64(1); i <= 5; i++ {
		if _, err := store.SaveRun(game.RunResult{Score: i, Outcome: game.OutcomeDead}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(recent))
	}
	for i, score := range []int64{5, 4, 3} {
		if recent[i].Score != score {
			t.Errorf("recent[%d].Score = %d, want %d", i, recent[i].Score, score)
		}
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveRun(game.RunResult{Score: int64(i * 10), Outcome: game.OutcomeDead})
	}

	top, err := store.TopRuns(5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 5 {
		t.Errorf("Expected 5 runs with limit, got %d", len(top))
	}

	// Non-positive limit falls back to the default
	top, err = store.TopRuns(0)
	if err != nil {
		t.Fatalf("TopRuns(0) failed: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("Expected default of 10 runs, got %d", len(top))
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty history, got %d", best)
	}

	store.SaveRun(game.RunResult{Score: 100, Outcome: game.OutcomeDead})
	store.SaveRun(game.RunResult{Score: 300, Outcome: game.OutcomeDead})
	store.SaveRun(game.RunResult{Score: 200, Outcome: game.OutcomeDead})

	best, err = store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best score 300, got %d", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if stats.Runs != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("unexpected empty stats %+v", stats)
	}

	store.SaveRun(game.RunResult{Score: 100, Outcome: game.OutcomeDead, Duration: time.Second})
	store.SaveRun(game.RunResult{Score: 300, Outcome: game.OutcomeWon, Duration: 2 * time.Second})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.Wins != 1 {
		t.Errorf("runs/wins = %d/%d, want 2/1", stats.Runs, stats.Wins)
	}
	if stats.BestScore != 300 || stats.AvgScore != 200 {
		t.Errorf("best/avg = %d/%v, want 300/200", stats.BestScore, stats.AvgScore)
	}
	if stats.TotalTime != 3*time.Second {
		t.Errorf("total time = %v", stats.TotalTime)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(game.RunResult{Score: 100, Outcome: game.OutcomeDead})
	store.SaveRun(game.RunResult{Score: 200, Outcome: game.OutcomeDead})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

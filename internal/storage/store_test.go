package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSave(t *testing.T, store *Store, gameID string, score, wave int) uuid.UUID {
	t.Helper()
	runID := uuid.New()
	if _, err := store.SaveScore(gameID, runID, score, wave); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	return runID
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, "snake", 12, 0)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("snake")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 12 {
		t.Errorf("Expected 12 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTemp(t)

	first := mustSave(t, store, "invaders", 100, 2)
	mustSave(t, store, "invaders", 50, 1)
	mustSave(t, store, "invaders", 200, 3)
	mustSave(t, store, "tetris", 500, 0)

	scores, err := store.TopScores("invaders", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Wave != 3 {
		t.Errorf("Expected wave 3 for the top score, got %d", scores[0].Wave)
	}
	if scores[1].RunID != first {
		t.Errorf("Run ID not round-tripped: got %s, want %s", scores[1].RunID, first)
	}

	tetris, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(tetris) != 1 || tetris[0].Score != 500 {
		t.Errorf("Expected one tetris score of 500, got %+v", tetris)
	}
}

func TestStoreRejectsDuplicateRun(t *testing.T) {
	store := openTemp(t)
	runID := mustSave(t, store, "pong", 7, 0)

	if _, err := store.SaveScore("pong", runID, 7, 0); err == nil {
		t.Error("Expected an error saving the same run twice")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTemp(t)
	for i := 0; i < 20; i++ {
		mustSave(t, store, "2048", i*10, 0)
	}

	scores, err := store.TopScores("2048", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("Expected 190, got %d", scores[0].Score)
	}

	// Zero limit falls back to 10
	scores, err = store.TopScores("2048", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore("breakout")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for no scores, got %d", high)
	}

	mustSave(t, store, "breakout", 100, 0)
	mustSave(t, store, "breakout", 300, 0)
	mustSave(t, store, "breakout", 200, 0)

	high, err = store.HighScore("breakout")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTemp(t)
	mustSave(t, store, "snake", 100, 0)
	mustSave(t, store, "snake", 200, 0)
	mustSave(t, store, "tetris", 300, 0)

	if err := store.ClearScores("snake"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("snake", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	scores, _ = store.TopScores("tetris", 10)
	if len(scores) != 1 {
		t.Errorf("Expected tetris scores untouched, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTemp(t)
	mustSave(t, store, "invaders", 100, 1)
	mustSave(t, store, "invaders", 300, 4)
	mustSave(t, store, "pong", 7, 0)

	stats, err := store.GetGameStats("invaders")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %v", stats.AvgScore)
	}
	if stats.BestWave != 4 {
		t.Errorf("Expected best wave 4, got %d", stats.BestWave)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected LastPlayed to be set")
	}

	empty, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["pong"].HighScore != 7 {
		t.Errorf("Unexpected all-games stats: %+v", all)
	}
}

func TestStoreRecentScores(t *testing.T) {
	store := openTemp(t)
	mustSave(t, store, "tetris", 300, 0)
	mustSave(t, store, "tetris", 100, 0)
	last := mustSave(t, store, "tetris", 200, 0)

	recent, err := store.RecentScores("tetris", 2)
	if err != nil {
		t.Fatalf("RecentScores() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(recent))
	}
	if recent[0].RunID != last || recent[1].Score != 100 {
		t.Errorf("Expected newest first, got %+v", recent)
	}
}

func TestStoreMigrationsRecordVersion(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	for range 2 {
		store, err := Open(dbPath)
		if err != nil {
			t.Fatalf("Open() failed: %v", err)
		}
		var version int
		if err := store.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
			t.Fatalf("reading user_version: %v", err)
		}
		if version != len(migrations) {
			t.Errorf("user_version = %d, want %d", version, len(migrations))
		}
		store.Close()
	}
}

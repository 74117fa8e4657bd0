package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.crystalquest/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".crystalquest", "scores.db")); err != nil {
		t.Errorf("expected database under HOME: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saves := []struct {
		layout       string
		score, level int
	}{
		{"classic", 800, 2},
		{"classic", 300, 1},
		{"classic", 1300, 3},
		{"towers", 100, 1},
	}
	for _, s := range saves {
		if _, err := store.SaveScore(s.layout, s.score, s.level); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []struct{ score, level int }{{1300, 3}, {800, 2}, {300, 1}}
	for i, w := range want {
		if scores[i].Score != w.score || scores[i].Level != w.level {
			t.Errorf("scores[%d] = %d/%d, expected %d/%d", i, scores[i].Score, scores[i].Level, w.score, w.level)
		}
		if scores[i].LayoutID != "classic" {
			t.Errorf("scores[%d].LayoutID = %q", i, scores[i].LayoutID)
		}
		if scores[i].CreatedAt.IsZero() {
			t.Errorf("scores[%d].CreatedAt should be set", i)
		}
	}

	other, err := store.TopScores("towers", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 towers score, got %d", len(other))
	}
}

func TestStoreTopScoresTieBreak(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("classic", 500, 1)
	store.SaveScore("classic", 500, 2)

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Level != 2 {
		t.Errorf("equal scores should rank the higher level first, got level %d", scores[0].Level)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("classic", (i+1)*100, 1)
	}

	scores, err := store.TopScores("classic", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.TopScores("classic", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("non-positive limit should fall back to 10, got %d rows", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for an unplayed layout, got %d", high)
	}

	store.SaveScore("classic", 100, 1)
	store.SaveScore("classic", 800, 2)
	store.SaveScore("classic", 200, 1)

	high, err = store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 800 {
		t.Errorf("Expected high score of 800, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("classic", 100, 1)
	store.SaveScore("classic", 200, 1)
	store.SaveScore("towers", 300, 1)

	if err := store.ClearScores("classic"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classic, _ := store.TopScores("classic", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classic))
	}

	towers, _ := store.TopScores("towers", 10)
	if len(towers) != 1 {
		t.Errorf("towers scores should not be affected by clearing classic")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("classic")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Sessions != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unplayed layout stats = %+v", empty)
	}

	store.SaveScore("classic", 300, 1)
	store.SaveScore("classic", 1300, 3)
	store.SaveScore("towers", 100, 1)

	stats, err := store.Stats("classic")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Sessions != 2 || stats.HighScore != 1300 || stats.BestLevel != 3 || stats.AvgScore != 800 {
		t.Errorf("Stats() = %+v", stats)
	}
	if time.Since(stats.LastPlayed) > 24*time.Hour {
		t.Errorf("LastPlayed = %v, expected a recent time", stats.LastPlayed)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("AllStats() returned %d layouts, expected 2", len(all))
	}
	if all["towers"] == nil || all["towers"].Sessions != 1 {
		t.Errorf("towers stats = %+v", all["towers"])
	}
}

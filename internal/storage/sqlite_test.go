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

func TestStoreReopenKeepsSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("pacmaze", 10); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("pacmaze")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 10 {
		t.Errorf("Expected high score 10 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("pacmaze", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("pacmaze", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}

	other, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 score for other game, got %d", len(other))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("pacmaze", (i+1)*100)
	}

	scores, err := store.TopScores("pacmaze", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("pacmaze")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("pacmaze", 100)
	store.SaveScore("pacmaze", 300)
	store.SaveScore("pacmaze", 200)

	high, err = store.HighScore("pacmaze")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("pacmaze", 100)
	store.SaveScore("pacmaze", 200)
	store.SaveScore("other", 300)
	store.SaveRound(RoundRecord{GameID: "pacmaze", Outcome: "victory"})

	if err := store.ClearScores("pacmaze"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("pacmaze", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	rounds, _ := store.RecentRounds("pacmaze", 10)
	if len(rounds) != 0 {
		t.Errorf("Expected 0 rounds after clear, got %d", len(rounds))
	}

	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Errorf("Other game scores should not be affected by clearing pacmaze")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("pacmaze")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveScore("pacmaze", 100)
	store.SaveScore("pacmaze", 300)

	stats, err = store.GetGameStats("pacmaze")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore = %d, expected 400", stats.TotalScore)
	}
}

func TestStoreNestedPath(t *testing.T) {
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

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.pacmaze/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".pacmaze", "scores.db")); err != nil {
		t.Errorf("Database not created under home: %v", err)
	}
}

func TestStoreSchemaVersion(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	for i := 0; i < 2; i++ {
		store, err := Open(dbPath)
		if err != nil {
			t.Fatalf("Open() #%d failed: %v", i+1, err)
		}
		version, err := store.SchemaVersion()
		store.Close()
		if err != nil {
			t.Fatalf("SchemaVersion() failed: %v", err)
		}
		if version != len(migrations) {
			t.Errorf("open #%d: version = %d, expected %d", i+1, version, len(migrations))
		}
	}
}

func TestStoreTopScoresTiesKeepInsertOrder(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveScore("pacmaze", 50)
	second, _ := store.SaveScore("pacmaze", 50)

	scores, err := store.TopScores("pacmaze", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].ID != first || scores[1].ID != second {
		t.Errorf("tie order = %+v, expected ids %d then %d", scores, first, second)
	}
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		zero bool
	}{
		{"time value", want, false},
		{"sqlite text", "2026-03-04 05:06:07", false},
		{"rfc3339", "2026-03-04T05:06:07Z", false},
		{"bytes", []byte("2026-03-04 05:06:07"), false},
		{"null", nil, true},
		{"garbage", "yesterday", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := parseTimestamp(tc.in)
			if tc.zero {
				if !got.IsZero() {
					t.Errorf("parseTimestamp(%v) = %v, expected zero", tc.in, got)
				}
				return
			}
			if !got.Equal(want) {
				t.Errorf("parseTimestamp(%v) = %v, expected %v", tc.in, got, want)
			}
		})
	}
}

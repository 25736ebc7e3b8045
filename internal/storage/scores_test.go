package storage

import "testing"

// saveScores records one losing level-1 run per score.
func saveScores(t *testing.T, store *Store, gameID string, scores ...int) {
	t.Helper()
	for _, score := range scores {
		if _, err := store.SaveRun(RunRecord{GameID: gameID, Score: score, Level: 1, Outcome: "loss"}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saveScores(t, store, "superhero", 100, 50, 200)
	// Different game
	saveScores(t, store, "other", 500)

	scores, err := store.TopScores("superhero", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
		if scores[i].GameID != "superhero" {
			t.Errorf("scores[%d] belongs to %q", i, scores[i].GameID)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	saveScores(t, store, "test", 100, 200, 300, 400, 500)

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	for i := 1; i <= 10; i++ {
		saveScores(t, store, "test", i)
	}
	scores, _ = store.TopScores("test", 0)
	if len(scores) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("superhero")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	saveScores(t, store, "superhero", 100, 300, 200)

	high, err = store.HighScore("superhero")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	saveScores(t, store, "superhero", 100, 200)
	saveScores(t, store, "other", 300)

	if err := store.ClearScores("superhero"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("superhero", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if runs, _ := store.RecentRuns("superhero", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("other games should not be affected by clearing")
	}
	if runs, _ := store.RecentRuns("other", 10); len(runs) != 1 {
		t.Error("other games should keep their runs")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 20; i++ {
		saveScores(t, store, "test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Fatalf("Expected 20 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[19].Score != 10 {
		t.Errorf("AllScores() should be ordered best first, got %d..%d", scores[0].Score, scores[19].Score)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{GameID: "superhero", Score: 1000, Level: 3, Outcome: "win"},
		{GameID: "superhero", Score: 200, Level: 1, Outcome: "loss"},
		{GameID: "superhero", Score: 0, Level: 1, Outcome: "loss"},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err := store.GetGameStats("superhero")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	// Zero-score runs are not on the scoreboard
	if stats.GamesCount != 2 || stats.HighScore != 1000 || stats.TotalScore != 1200 || stats.AvgScore != 600 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.Wins != 1 || stats.Losses != 2 {
		t.Errorf("wins/losses = %d/%d, expected 1/2", stats.Wins, stats.Losses)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.Wins != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}

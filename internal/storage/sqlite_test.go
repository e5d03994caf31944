package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTemp(t)

	for _, score := range []int{3, 1, 7} {
		if _, err := store.SaveScore("knight", "run-a", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("knight_classic", "run-b", 9); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("knight", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 7 || scores[1].Score != 3 || scores[2].Score != 1 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].RunID != "run-a" {
		t.Errorf("RunID = %q, expected run-a", scores[0].RunID)
	}

	classic, err := store.TopScores("knight_classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(classic) != 1 {
		t.Errorf("Expected 1 classic score, got %d", len(classic))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("knight", "run", i+1)
	}

	scores, err := store.TopScores("knight", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 5 || scores[1].Score != 4 || scores[2].Score != 3 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore("knight")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("knight", "r1", 2)
	store.SaveScore("knight", "r2", 6)
	store.SaveScore("knight", "r3", 4)

	high, err = store.HighScore("knight")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 6 {
		t.Errorf("Expected high score of 6, got %d", high)
	}
}

func TestStoreBattles(t *testing.T) {
	store := openTemp(t)

	battles := []BattleEntry{
		{RunID: "r1", GameID: "knight", Enemy: "Goblin", Outcome: "won", Turns: 3},
		{RunID: "r1", GameID: "knight", Enemy: "Wraith", Outcome: "fled", Turns: 1},
		{RunID: "r1", GameID: "knight", Enemy: "Dragon", Outcome: "lost", Turns: 5},
		{RunID: "r2", GameID: "knight_classic", Enemy: "Rat", Outcome: "won", Turns: 2},
	}
	for _, b := range battles {
		if _, err := store.SaveBattle(b); err != nil {
			t.Fatalf("SaveBattle() failed: %v", err)
		}
	}

	recent, err := store.RecentBattles("knight", 2)
	if err != nil {
		t.Fatalf("RecentBattles() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 battles with limit, got %d", len(recent))
	}
	if recent[0].Enemy != "Dragon" || recent[1].Enemy != "Wraith" {
		t.Errorf("RecentBattles() = %v, expected newest first", recent)
	}
	if recent[0].Outcome != "lost" || recent[0].Turns != 5 {
		t.Errorf("battle = %+v, expected lost after 5 turns", recent[0])
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTemp(t)

	store.SaveScore("knight", "r1", 2)
	store.SaveScore("knight", "r2", 4)
	store.SaveBattle(BattleEntry{RunID: "r1", GameID: "knight", Enemy: "Goblin", Outcome: "won", Turns: 1})
	store.SaveBattle(BattleEntry{RunID: "r1", GameID: "knight", Enemy: "Ogre", Outcome: "won", Turns: 2})
	store.SaveBattle(BattleEntry{RunID: "r2", GameID: "knight", Enemy: "Troll", Outcome: "lost", Turns: 4})

	stats, err := store.GetGameStats("knight")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 4 || stats.TotalScore != 6 {
		t.Errorf("stats = %+v, expected 2 games, high 4, total 6", stats)
	}
	if stats.AvgScore != 3 {
		t.Errorf("AvgScore = %v, expected 3", stats.AvgScore)
	}
	if stats.Battles != 3 || stats.Victories != 2 {
		t.Errorf("Battles = %d Victories = %d, expected 3 and 2", stats.Battles, stats.Victories)
	}

	empty, err := store.GetGameStats("unknown")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("stats for unknown game = %+v, expected zero", empty)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTemp(t)

	store.SaveScore("knight", "r1", 1)
	store.SaveScore("knight_classic", "r2", 3)
	store.SaveBattle(BattleEntry{RunID: "r1", GameID: "knight", Enemy: "Goblin", Outcome: "won"})

	if err := store.ClearScores("knight"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("knight", 10); len(scores) != 0 {
		t.Errorf("Expected 0 knight scores after clear, got %d", len(scores))
	}
	if battles, _ := store.RecentBattles("knight", 10); len(battles) != 0 {
		t.Errorf("Expected 0 knight battles after clear, got %d", len(battles))
	}
	if scores, _ := store.TopScores("knight_classic", 10); len(scores) != 1 {
		t.Error("classic scores should not be affected by clearing knight")
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

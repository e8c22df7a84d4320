package game

import (
	"path/filepath"
	"testing"
)

func TestStatsRecord(t *testing.T) {
	var st Stats

	st.Record(3)
	st.Record(7)
	st.Record(5)

	if st.HighScore != 7 {
		t.Errorf("high score = %d, want 7", st.HighScore)
	}
	if len(st.ScoreHistory) != 3 {
		t.Errorf("history length = %d, want 3", len(st.ScoreHistory))
	}
}

func TestStatsSaveLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "gamestats.json")

	st := Stats{SessionID: "a", HighScore: 9, ScoreHistory: []int{2, 9, 4}}
	if err := st.Save(filename); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded := Stats{SessionID: "b"}
	if err := loaded.Load(filename); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.SessionID != "b" {
		t.Errorf("session ID = %q, want current session %q kept", loaded.SessionID, "b")
	}
	if loaded.HighScore != 9 {
		t.Errorf("high score = %d, want 9", loaded.HighScore)
	}
	if len(loaded.ScoreHistory) != 3 {
		t.Errorf("history length = %d, want 3", len(loaded.ScoreHistory))
	}
}

func TestStatsLoadMissingFile(t *testing.T) {
	var st Stats
	if err := st.Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected an error for a missing stats file")
	}
}

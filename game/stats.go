package game

import (
	"encoding/json"
	"os"
)

// Stats tracks the session high score and the score of every finished
// life. The struct itself is pure state; Save and Load touch the
// filesystem only when the host layer asks for it.
type Stats struct {
	SessionID    string `json:"sessionId"`
	HighScore    int    `json:"highScore"`
	ScoreHistory []int  `json:"scoreHistory"`
}

// Record appends a finished life's score and raises the high score if
// it was beaten.
func (st *Stats) Record(score int) {
	st.ScoreHistory = append(st.ScoreHistory, score)
	if score > st.HighScore {
		st.HighScore = score
	}
}

// Save writes the stats as indented JSON.
func (st *Stats) Save(filename string) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// Load merges previously saved stats into st. The current session ID is
// kept; history and high score carry over from disk.
func (st *Stats) Load(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	var saved Stats
	if err := json.Unmarshal(data, &saved); err != nil {
		return err
	}
	st.HighScore = saved.HighScore
	st.ScoreHistory = saved.ScoreHistory
	return nil
}

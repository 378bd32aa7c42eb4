// internal/scores/entry.go
//
// ScoreEntry record and the score formula.
// An Entry is created exactly once per finished session and appended to
// a store; it is never mutated afterwards. The JSON field names below
// are the persisted-file contract — do not rename them.

package scores

import "time"

// Entry is one completed game on the leaderboard.
type Entry struct {
	PlayerName   string `json:"player_name"`
	Mode         string `json:"mode"`
	Won          bool   `json:"won"`
	AttemptsUsed int    `json:"attempts_used"`
	MaxAttempts  int    `json:"max_attempts"`
	Score        int    `json:"score"`
	Timestamp    string `json:"timestamp"` // ISO-8601 / RFC 3339
}

const (
	baseScore         = 100
	bonusPerRemaining = 10
)

// Calculate computes the score for a completed game: 0 on a loss,
// otherwise a fixed base plus a bonus for every attempt saved.
// mode is accepted for forward extensibility and currently has no
// effect on the result.
func Calculate(won bool, attemptsUsed, maxAttempts int, mode string) int {
	if !won {
		return 0
	}
	remaining := maxAttempts - attemptsUsed
	if remaining < 0 {
		remaining = 0
	}
	return baseScore + bonusPerRemaining*remaining
}

// NewEntry assembles an Entry for a finished game, computing the score
// and stamping the given wall-clock time.
func NewEntry(player, mode string, won bool, attemptsUsed, maxAttempts int, now time.Time) Entry {
	return Entry{
		PlayerName:   player,
		Mode:         mode,
		Won:          won,
		AttemptsUsed: attemptsUsed,
		MaxAttempts:  maxAttempts,
		Score:        Calculate(won, attemptsUsed, maxAttempts, mode),
		Timestamp:    now.Format(time.RFC3339),
	}
}

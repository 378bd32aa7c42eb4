package scores

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	cases := []struct {
		name      string
		won       bool
		used, max int
		mode      string
		want      int
	}{
		{"win with attempts to spare", true, 3, 10, "pvc", 170},
		{"win on the last attempt", true, 10, 10, "pvc", 100},
		{"loss", false, 10, 10, "pvc", 0},
		{"first-try win", true, 1, 10, "pvc", 190},
		// Mode is reserved for the future and has no numeric effect.
		{"pvp scores the same", true, 3, 10, "pvp", 170},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Calculate(tc.won, tc.used, tc.max, tc.mode))
		})
	}
}

func TestNewEntry(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 30, 0, 0, time.UTC)
	e := NewEntry("alice", "pvc", true, 3, 10, now)

	assert.Equal(t, "alice", e.PlayerName)
	assert.Equal(t, "pvc", e.Mode)
	assert.True(t, e.Won)
	assert.Equal(t, 3, e.AttemptsUsed)
	assert.Equal(t, 10, e.MaxAttempts)
	assert.Equal(t, 170, e.Score)
	assert.Equal(t, "2026-08-26T12:30:00Z", e.Timestamp)

	_, err := time.Parse(time.RFC3339, e.Timestamp)
	assert.NoError(t, err)
}

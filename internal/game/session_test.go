package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, secret string, maxAttempts int) *Session {
	t.Helper()
	s, err := NewSession(Config{
		Rules:       DefaultRules(),
		Mode:        ModePvC,
		MaxAttempts: maxAttempts,
		Secret:      secret,
	})
	require.NoError(t, err)
	return s
}

func TestNewSession(t *testing.T) {
	t.Run("generates a secret when none is given", func(t *testing.T) {
		s, err := NewSession(Config{Rules: DefaultRules(), Mode: ModePvC, MaxAttempts: 10})
		require.NoError(t, err)
		assert.NoError(t, DefaultRules().Validate(s.Secret()))
		assert.Equal(t, StatePlaying, s.State())
		assert.NotEmpty(t, s.ID)
	})

	t.Run("explicit secret is validated", func(t *testing.T) {
		_, err := NewSession(Config{Rules: DefaultRules(), Mode: ModePvC, MaxAttempts: 10, Secret: "99"})
		assert.ErrorIs(t, err, ErrLengthMismatch)

		_, err = NewSession(Config{Rules: DefaultRules(), Mode: ModePvC, MaxAttempts: 10, Secret: "012x"})
		assert.ErrorIs(t, err, ErrInvalidSymbol)
	})

	t.Run("pvp requires a secret", func(t *testing.T) {
		_, err := NewSession(Config{Rules: DefaultRules(), Mode: ModePvP, MaxAttempts: 10})
		assert.Error(t, err)
	})

	t.Run("max attempts must be positive", func(t *testing.T) {
		_, err := NewSession(Config{Rules: DefaultRules(), Mode: ModePvC, MaxAttempts: 0})
		assert.Error(t, err)
	})
}

func TestSubmitGuessScoresAndCounts(t *testing.T) {
	s := newTestSession(t, "0123", 10)

	out, err := s.SubmitGuess("0145")
	require.NoError(t, err)
	assert.Equal(t, 2, out.Bulls)
	assert.Equal(t, 0, out.Cows)
	assert.Equal(t, 1, out.AttemptsUsed)
	assert.Equal(t, 9, out.Remaining)
	assert.Equal(t, StatePlaying, out.State)
	assert.Empty(t, out.Secret, "secret must not leak mid-game")
}

func TestSubmitGuessInvalidCostsNothing(t *testing.T) {
	s := newTestSession(t, "0123", 10)

	for _, bad := range []string{"", "01", "01234", "01x3"} {
		_, err := s.SubmitGuess(bad)
		assert.Error(t, err)
	}
	assert.Equal(t, 0, s.AttemptsUsed)
	assert.Equal(t, StatePlaying, s.State())

	// A valid guess consumes exactly one attempt.
	_, err := s.SubmitGuess("5555")
	require.NoError(t, err)
	assert.Equal(t, 1, s.AttemptsUsed)
}

func TestWinTransition(t *testing.T) {
	s := newTestSession(t, "0123", 10)

	out, err := s.SubmitGuess("0123")
	require.NoError(t, err)
	assert.Equal(t, StateWon, out.State)
	assert.Equal(t, 4, out.Bulls)
	assert.Empty(t, out.Secret, "secret is never revealed on a win")
	assert.True(t, s.IsOver())
}

// Winning on the very last permitted attempt is still a win, not a loss.
func TestWinOnLastAttempt(t *testing.T) {
	s := newTestSession(t, "0123", 2)

	_, err := s.SubmitGuess("5555")
	require.NoError(t, err)

	out, err := s.SubmitGuess("0123")
	require.NoError(t, err)
	assert.Equal(t, StateWon, out.State)
	assert.Equal(t, 0, out.Remaining)
}

func TestLossRevealsSecret(t *testing.T) {
	s := newTestSession(t, "0123", 2)

	out, err := s.SubmitGuess("5555")
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, out.State)
	assert.Empty(t, out.Secret)

	out, err = s.SubmitGuess("4444")
	require.NoError(t, err)
	assert.Equal(t, StateLost, out.State)
	assert.Equal(t, "0123", out.Secret)
	assert.Equal(t, 0, out.Remaining)
	assert.True(t, s.IsOver())
}

func TestTerminalSessionRejectsGuesses(t *testing.T) {
	s := newTestSession(t, "0123", 1)

	_, err := s.SubmitGuess("5555")
	require.NoError(t, err)
	require.True(t, s.IsOver())

	for i := 0; i < 3; i++ {
		_, err := s.SubmitGuess("0123")
		assert.ErrorIs(t, err, ErrSessionFinished)
	}
	assert.Equal(t, 1, s.AttemptsUsed, "rejected guesses never consume attempts")
	assert.Equal(t, StateLost, s.State(), "terminal state never changes")
}

func TestRemainingAttemptsFloorsAtZero(t *testing.T) {
	s := newTestSession(t, "0123", 1)
	assert.Equal(t, 1, s.RemainingAttempts())

	_, err := s.SubmitGuess("5555")
	require.NoError(t, err)
	assert.Equal(t, 0, s.RemainingAttempts())
}

// internal/game/session.go
//
// Session is the state machine at the heart of the game.
// Responsibilities:
//   - Own the secret (generated or externally supplied, never exposed
//     mid-game) and the attempt counter.
//   - Validate and score guesses; an invalid guess costs nothing.
//   - Track state transitions: playing → won/lost, one-way.
//
// A Session belongs to exactly one caller; it is not safe for
// concurrent use. Run concurrent games on separate sessions.

package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// ErrSessionFinished is returned by SubmitGuess once the session has
// reached a terminal state. Submitting to a finished session is a
// caller bug, not a game event.
var ErrSessionFinished = errors.New("session already finished")

// Config carries everything needed to start a session.
type Config struct {
	Rules       Rules
	Mode        Mode
	MaxAttempts int

	// Secret, when non-empty, is used as the hidden code after passing
	// Rules.Validate. Required for ModePvP; optional for ModePvC, where
	// an empty Secret means the session generates one.
	Secret string

	// Rand seeds secret generation. nil means a time-seeded source.
	Rand *rand.Rand
}

// Session holds the state of a single round of guessing.
type Session struct {
	ID           string
	Rules        Rules
	Mode         Mode
	MaxAttempts  int
	AttemptsUsed int

	state  State
	secret string
}

// NewSession constructs a session in StatePlaying.
// An explicit secret is validated against the rules with the same
// error kinds as a guess; ModePvP without a secret is rejected.
func NewSession(cfg Config) (*Session, error) {
	if cfg.MaxAttempts < 1 {
		return nil, fmt.Errorf("max attempts must be at least 1, got %d", cfg.MaxAttempts)
	}

	secret := cfg.Secret
	switch {
	case secret != "":
		if err := cfg.Rules.Validate(secret); err != nil {
			return nil, fmt.Errorf("secret: %w", err)
		}
	case cfg.Mode == ModePvP:
		return nil, errors.New("two-player mode requires an explicit secret")
	default:
		var err error
		secret, err = GenerateSecret(cfg.Rules, cfg.Rand)
		if err != nil {
			return nil, err
		}
	}

	return &Session{
		ID:          uuid.NewString(),
		Rules:       cfg.Rules,
		Mode:        cfg.Mode,
		MaxAttempts: cfg.MaxAttempts,
		state:       StatePlaying,
		secret:      secret,
	}, nil
}

// SubmitGuess validates and scores one guess, advancing the state machine.
//
// Rejections leave the session untouched: a terminal session returns
// ErrSessionFinished, and a guess failing validation surfaces that
// error without consuming an attempt. An accepted guess consumes
// exactly one attempt.
//
// Transitions: all bulls → won; attempts exhausted → lost; otherwise
// still playing. The secret appears in the outcome only on the
// transition to lost.
func (s *Session) SubmitGuess(guess string) (Outcome, error) {
	if s.state != StatePlaying {
		return Outcome{}, ErrSessionFinished
	}
	if err := s.Rules.Validate(guess); err != nil {
		return Outcome{}, err
	}

	s.AttemptsUsed++
	sc := ScoreGuess(s.secret, guess)

	switch {
	case sc.Bulls == s.Rules.Length:
		s.state = StateWon
	case s.AttemptsUsed >= s.MaxAttempts:
		s.state = StateLost
	}

	out := Outcome{
		Bulls:        sc.Bulls,
		Cows:         sc.Cows,
		AttemptsUsed: s.AttemptsUsed,
		Remaining:    s.RemainingAttempts(),
		State:        s.state,
	}
	if s.state == StateLost {
		out.Secret = s.secret
	}
	return out, nil
}

// State reports the current lifecycle state.
func (s *Session) State() State { return s.state }

// IsOver reports whether the session has reached a terminal state.
func (s *Session) IsOver() bool { return s.state.Finished() }

// RemainingAttempts reports attempts left, floored at 0.
func (s *Session) RemainingAttempts() int {
	if rem := s.MaxAttempts - s.AttemptsUsed; rem > 0 {
		return rem
	}
	return 0
}

// Secret exposes the hidden code. Intended for post-game display and
// tests, not for mid-game use.
func (s *Session) Secret() string { return s.secret }

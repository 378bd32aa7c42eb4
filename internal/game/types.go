// internal/game/types.go
//
// Core type definitions for the Mastermind engine.
// Defines:
//   - State: lifecycle of a session (playing/won/lost).
//   - Mode: who supplies the secret (pvc/pvp).
//   - Score: bulls/cows result for a single guess.
//   - Outcome: everything a caller learns from one submitted guess.

package game

// State represents the lifecycle of a session.
// A session starts as StatePlaying and moves exactly once to
// StateWon or StateLost; terminal states never transition again.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Finished reports whether the state is terminal.
func (s State) Finished() bool { return s != StatePlaying }

// Mode selects who supplies the secret code.
// It has no effect on scoring or state transitions.
type Mode string

const (
	// ModePvC is player-versus-computer: the session generates the secret.
	ModePvC Mode = "pvc"
	// ModePvP is player-versus-player: a second player supplies the secret.
	ModePvP Mode = "pvp"
)

// Score is the evaluation of a single guess against the secret.
type Score struct {
	Bulls int // right symbol, right position
	Cows  int // right symbol, wrong position
}

// Outcome is returned by Session.SubmitGuess for every accepted guess.
type Outcome struct {
	Bulls        int
	Cows         int
	AttemptsUsed int
	Remaining    int // attempts left, floored at 0
	State        State

	// Secret is set only when this guess transitioned the session to
	// StateLost. It stays empty mid-game and on a win.
	Secret string
}

// internal/game/secret.go
//
// Random secret generation. The random source is injected so tests and
// replay/demo runs can seed it deterministically; callers that don't
// care pass nil and get a time-seeded source.

package game

import (
	"fmt"
	"math/rand"
	"time"
)

// newRand returns a time-seeded source for callers that supplied none.
func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// GenerateSecret produces a random code conforming to the rules.
//
// With duplicates allowed, each slot is an independent uniform draw
// from the alphabet. Without duplicates, the code is a uniform sample
// of distinct symbols (a truncated random permutation of the
// alphabet); this fails with ErrAlphabetTooSmall when the alphabet
// cannot fill the code.
//
// The same rng seed always yields the same secret.
func GenerateSecret(rules Rules, rng *rand.Rand) (string, error) {
	if rng == nil {
		rng = newRand()
	}
	symbols := []rune(rules.Alphabet)

	if rules.AllowDuplicates {
		code := make([]rune, rules.Length)
		for i := range code {
			code[i] = symbols[rng.Intn(len(symbols))]
		}
		return string(code), nil
	}

	if rules.Length > len(symbols) {
		return "", fmt.Errorf("%w: need %d distinct symbols, alphabet has %d",
			ErrAlphabetTooSmall, rules.Length, len(symbols))
	}
	perm := rng.Perm(len(symbols))
	code := make([]rune, rules.Length)
	for i := range code {
		code[i] = symbols[perm[i]]
	}
	return string(code), nil
}

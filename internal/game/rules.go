// internal/game/rules.go
//
// Rules describe what a legal code looks like for one game:
// how many slots it has, which symbols are allowed, and whether a
// symbol may repeat. A Rules value is built once and shared read-only
// by the generator and the session for the lifetime of a game.

package game

import (
	"errors"
	"fmt"
	"strings"
)

// Validation and generation failures. Callers match with errors.Is.
var (
	ErrLengthMismatch       = errors.New("wrong code length")
	ErrInvalidSymbol        = errors.New("symbol not in alphabet")
	ErrDuplicatesNotAllowed = errors.New("duplicate symbols not allowed")
	ErrAlphabetTooSmall     = errors.New("alphabet smaller than code length")
)

// Rules is the immutable contract for valid codes in one game.
type Rules struct {
	Length          int    // number of symbol slots
	Alphabet        string // distinct allowed symbols
	AllowDuplicates bool   // whether a symbol may appear more than once
}

// DefaultRules are the classic dimensions: four slots over six symbols,
// repeats allowed.
func DefaultRules() Rules {
	return Rules{Length: 4, Alphabet: "012345", AllowDuplicates: true}
}

// Validate checks a code against the rules.
// Checks run in a fixed order and the first violation wins:
// length, then alphabet membership, then the duplicate policy.
// Returns nil for a legal code; never mutates anything.
func (r Rules) Validate(code string) error {
	runes := []rune(code)
	if len(runes) != r.Length {
		return fmt.Errorf("%w: want %d symbols, got %d", ErrLengthMismatch, r.Length, len(runes))
	}
	for _, c := range runes {
		if !strings.ContainsRune(r.Alphabet, c) {
			return fmt.Errorf("%w: %q", ErrInvalidSymbol, c)
		}
	}
	if !r.AllowDuplicates {
		seen := make(map[rune]struct{}, len(runes))
		for _, c := range runes {
			if _, dup := seen[c]; dup {
				return fmt.Errorf("%w: %q", ErrDuplicatesNotAllowed, c)
			}
			seen[c] = struct{}{}
		}
	}
	return nil
}

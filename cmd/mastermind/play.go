// cmd/mastermind/play.go
//
// Interactive game loop. Thin glue over the engine: prompts, reads
// guesses, prints results, and persists a score entry when the session
// finishes. In color mode, guesses are given as color names and
// translated to symbols before they reach the engine.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"mastermind/internal/colors"
	"mastermind/internal/game"
	"mastermind/internal/scores"
)

func playCmd() *cobra.Command {
	var (
		length       int
		alphabet     string
		noDuplicates bool
		maxAttempts  int
		seed         int64
		mode         string
		player       string
		colorInput   bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start an interactive game",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			rules := game.Rules{Length: length, Alphabet: alphabet, AllowDuplicates: !noDuplicates}
			if colorInput {
				rules.Alphabet = colors.Alphabet()
			}

			var rng *rand.Rand
			if cmd.Flags().Changed("seed") {
				rng = rand.New(rand.NewSource(seed))
			}

			sess := sessionConfig{
				rules:       rules,
				mode:        game.Mode(mode),
				maxAttempts: maxAttempts,
				rng:         rng,
				colorInput:  colorInput,
				player:      player,
			}

			store, closeStore, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			return runGame(cmd.InOrStdin(), cmd.OutOrStdout(), sess, store)
		},
	}

	cmd.Flags().IntVar(&length, "length", 4, "Code length")
	cmd.Flags().StringVar(&alphabet, "alphabet", "012345", "Allowed symbols, e.g. '012345' or 'ABCDEF'")
	cmd.Flags().BoolVar(&noDuplicates, "no-duplicates", false, "Disallow repeated symbols")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 10, "Maximum number of guesses")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed for reproducible games")
	cmd.Flags().StringVar(&mode, "mode", string(game.ModePvC), "Game mode: pvc or pvp")
	cmd.Flags().StringVar(&player, "player", "anonymous", "Player name for the leaderboard")
	cmd.Flags().BoolVar(&colorInput, "colors", false, "Guess with color names instead of symbols")

	return cmd
}

type sessionConfig struct {
	rules       game.Rules
	mode        game.Mode
	maxAttempts int
	rng         *rand.Rand
	colorInput  bool
	player      string
}

// runGame drives one session from construction to a persisted score.
func runGame(in io.Reader, out io.Writer, sc sessionConfig, store scores.Store) error {
	reader := bufio.NewScanner(in)

	gameCfg := game.Config{
		Rules:       sc.rules,
		Mode:        sc.mode,
		MaxAttempts: sc.maxAttempts,
		Rand:        sc.rng,
	}

	// In two-player mode the codemaker types the secret before the
	// codebreaker starts guessing.
	if sc.mode == game.ModePvP {
		fmt.Fprint(out, "Codemaker, enter the secret: ")
		secret, err := readCode(reader, sc.colorInput)
		if err != nil {
			return err
		}
		gameCfg.Secret = secret
	}

	session, err := game.NewSession(gameCfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Mastermind started: length=%d, alphabet=%s, duplicates=%v, attempts=%d\n",
		sc.rules.Length, sc.rules.Alphabet, sc.rules.AllowDuplicates, sc.maxAttempts)
	if sc.colorInput {
		fmt.Fprintf(out, "Colors: %s\n", strings.Join(colors.Ordered, " "))
	}

	var last game.Outcome
	for !session.IsOver() {
		fmt.Fprint(out, "Your guess: ")
		line, err := readLine(reader)
		if err != nil {
			return err
		}
		guess, err := parseCode(line, sc.colorInput)
		if err != nil {
			fmt.Fprintf(out, "Invalid guess: %v\n", err)
			continue
		}

		outcome, err := session.SubmitGuess(guess)
		if err != nil {
			// Validation failures cost nothing; re-prompt.
			fmt.Fprintf(out, "Invalid guess: %v\n", err)
			continue
		}
		last = outcome

		fmt.Fprintf(out, "Result: bulls=%d, cows=%d (%d attempts left)\n",
			outcome.Bulls, outcome.Cows, outcome.Remaining)
	}

	won := session.State() == game.StateWon
	if won {
		fmt.Fprintf(out, "You won in %d attempts!\n", session.AttemptsUsed)
	} else {
		fmt.Fprintf(out, "Out of attempts! The secret was %s\n", displayCode(last.Secret, sc.colorInput))
	}

	entry := scores.NewEntry(sc.player, string(sc.mode), won, session.AttemptsUsed, session.MaxAttempts, time.Now())
	if err := store.Append(context.Background(), entry); err != nil {
		return fmt.Errorf("save score: %w", err)
	}
	log.Info().Str("player", entry.PlayerName).Int("score", entry.Score).Msg("score saved")
	fmt.Fprintf(out, "Score: %d\n", entry.Score)
	return nil
}

// readCode reads one line and converts it to a symbol code, failing on
// both I/O and conversion errors. Used where a bad line is fatal (the
// codemaker's secret); the guess loop re-prompts instead.
func readCode(reader *bufio.Scanner, colorInput bool) (string, error) {
	line, err := readLine(reader)
	if err != nil {
		return "", err
	}
	return parseCode(line, colorInput)
}

// readLine reads the next input line, reporting closed input as an error.
func readLine(reader *bufio.Scanner) (string, error) {
	if !reader.Scan() {
		if err := reader.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(reader.Text()), nil
}

// parseCode converts one input line to a symbol code. In color mode the
// line is whitespace-separated color names.
func parseCode(line string, colorInput bool) (string, error) {
	if !colorInput {
		return line, nil
	}
	return colors.ToSymbols(strings.Fields(line))
}

// displayCode renders a code for the player, translating back to color
// names in color mode.
func displayCode(code string, colorInput bool) string {
	if !colorInput {
		return code
	}
	names, err := colors.ToColors(code)
	if err != nil {
		return code
	}
	return strings.Join(names, " ")
}

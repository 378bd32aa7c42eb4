// Package main provides the mastermind binary entry point: a terminal
// front end over the game engine and score store.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"mastermind/internal/config"
	"mastermind/internal/scores"
)

func main() {
	_ = godotenv.Load()
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mastermind",
		Short: "Play Mastermind in your terminal",
		Long: `Mastermind is a code-breaking game: guess the hidden code and get
scored with bulls (right symbol, right position) and cows (right
symbol, wrong position). Finished games land on a local leaderboard.`,
		SilenceUsage: true,
	}
	cmd.AddCommand(playCmd(), topCmd())
	return cmd
}

// loadConfig parses the environment and applies the configured log level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	return cfg, nil
}

// openStore picks the score backend: SQLite when SCORES_DB is set,
// otherwise the JSON file store. The returned func releases the backend.
func openStore(cfg *config.Config) (scores.Store, func(), error) {
	if cfg.ScoresDB != "" {
		st, err := scores.OpenSQLite(cfg.ScoresDB)
		if err != nil {
			return nil, nil, fmt.Errorf("open scores db: %w", err)
		}
		return st, func() { _ = st.Close() }, nil
	}
	return scores.NewFileStore(cfg.ScoresFile), func() {}, nil
}

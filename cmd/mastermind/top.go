// cmd/mastermind/top.go
//
// Leaderboard display: prints the best scores from the configured
// store, ranked best-first.

package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func topCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, closeStore, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			entries, err := store.Top(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No scores yet.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "#\tPLAYER\tSCORE\tMODE\tWON\tATTEMPTS\tWHEN")
			for i, e := range entries {
				fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%v\t%d/%d\t%s\n",
					i+1, e.PlayerName, e.Score, e.Mode, e.Won, e.AttemptsUsed, e.MaxAttempts, e.Timestamp)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of entries to show")
	return cmd
}

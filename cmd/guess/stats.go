package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate game statistics",
	Long: `Display totals across every recorded game.

Shows:
  - Games played and won
  - Fewest attempts in a won game
  - Average attempts per won game`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	db, err := openExistingHistory()
	if errors.Is(err, errNoHistory) {
		fmt.Fprintln(out, "No games recorded yet. Run 'guess' to play.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer db.Close()

	st, err := db.Stats()
	if err != nil {
		return fmt.Errorf("get stats: %w", err)
	}

	winRate := 0
	if st.Played > 0 {
		winRate = (st.Won * 100) / st.Played
	}

	fmt.Fprintf(out, "Games played: %d\n", st.Played)
	fmt.Fprintf(out, "Games won: %d (%d%%)\n", st.Won, winRate)
	if st.Won > 0 {
		fmt.Fprintf(out, "Best game: %d attempts\n", st.BestAttempts)
		fmt.Fprintf(out, "Average: %.1f attempts\n", st.AvgAttempts)
	}
	return nil
}

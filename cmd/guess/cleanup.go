package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	cleanupOlderThan time.Duration
	cleanupDryRun    bool
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove old games from history",
	Long: `Delete recorded games older than a cutoff, together with their guesses.

The default cutoff is history.retention from the configuration (30 days).

Examples:
  guess cleanup                    # Purge using the configured retention
  guess cleanup --older-than 168h  # Purge games older than a week
  guess cleanup --dry-run          # Show how many would be removed`,
	Args: cobra.NoArgs,
	RunE: runCleanup,
}

func init() {
	cleanupCmd.Flags().DurationVar(&cleanupOlderThan, "older-than", 0, "Purge games started before this long ago (default history.retention)")
	cleanupCmd.Flags().BoolVar(&cleanupDryRun, "dry-run", false, "Show what would be removed without removing")
}

func runCleanup(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	olderThan := cleanupOlderThan
	if olderThan == 0 {
		olderThan = cfg.History.Retention
	}
	if olderThan <= 0 {
		return fmt.Errorf("invalid cutoff %v: must be positive", olderThan)
	}

	db, err := openExistingHistory()
	if errors.Is(err, errNoHistory) {
		printStatus(out, "✓", "No history to clean up", color.FgGreen)
		return nil
	}
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer db.Close()

	if cleanupDryRun {
		n, err := db.CountOldSessions(olderThan)
		if err != nil {
			return err
		}
		printStatus(out, "⚠", fmt.Sprintf("Dry run: %d game(s) older than %s would be removed", n, olderThan), color.FgYellow)
		return nil
	}

	n, err := db.PurgeOldSessions(olderThan)
	if err != nil {
		return err
	}
	printStatus(out, "✓", fmt.Sprintf("Removed %d game(s) older than %s", n, olderThan), color.FgGreen)
	return nil
}

// printStatus prints a status line with a colored symbol.
func printStatus(w io.Writer, symbol, message string, colorAttr color.Attribute) {
	c := color.New(colorAttr)
	fmt.Fprintf(w, "%s %s\n", c.Sprint(symbol), message)
}

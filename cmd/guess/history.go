package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
	"golang.org/x/sync/errgroup"

	"github.com/ShayCichocki/guess/internal/state"
	"github.com/ShayCichocki/guess/pkg/models"
)

var (
	historyLimit  int
	historyFormat string
	historyFollow bool
)

// followDebounce coalesces the several file events one sqlite commit produces.
const followDebounce = 150 * time.Millisecond

var historyCmd = &cobra.Command{
	Use:   "history [id]",
	Short: "List past games",
	Long: `List recorded games, most recent first.

With an id (or a unique prefix of one, as shown in the ID column), shows
that game and every line entered during it.

Examples:
  guess history               # Last 20 games as a table
  guess history --limit 0     # Every game
  guess history --format yaml # Machine-readable export
  guess history --follow      # Re-render whenever a game is recorded
  guess history 3f2a9c1d      # Guesses of one game`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of games to show (0 for all)")
	historyCmd.Flags().StringVarP(&historyFormat, "format", "f", "table", "Output format: table or yaml")
	historyCmd.Flags().BoolVar(&historyFollow, "follow", false, "Keep running and re-render on every change")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if historyFormat != "table" && historyFormat != "yaml" {
		return fmt.Errorf("unknown format %q: want table or yaml", historyFormat)
	}
	if len(args) == 1 {
		if historyFollow {
			return errors.New("--follow cannot be combined with a game id")
		}
		return runHistoryDetail(cmd.OutOrStdout(), args[0], historyFormat)
	}

	var db *state.DB
	var err error
	if historyFollow {
		// Following an empty history is useful, so create the database.
		db, err = openHistory()
	} else {
		db, err = openExistingHistory()
	}
	if errors.Is(err, errNoHistory) {
		fmt.Fprintln(cmd.OutOrStdout(), "No games recorded yet. Run 'guess' to play.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	if err := renderHistory(out, db, historyLimit, historyFormat); err != nil {
		return err
	}
	if !historyFollow {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return followHistory(ctx, out, db)
}

// followHistory re-renders the listing after each database write until ctx
// is done. The watcher and the renderer run separately so a slow terminal
// never stalls event draining.
func followHistory(ctx context.Context, out io.Writer, db *state.DB) error {
	changed := make(chan struct{}, 1)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return state.Watch(gctx, db.Path(), followDebounce, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	})

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-changed:
				fmt.Fprintln(out)
				if err := renderHistory(out, db, historyLimit, historyFormat); err != nil {
					return err
				}
			}
		}
	})

	return g.Wait()
}

func renderHistory(w io.Writer, db *state.DB, limit int, format string) error {
	sessions, err := db.ListSessions(limit)
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}

	if format == "yaml" {
		return writeYAML(w, sessions)
	}

	if len(sessions) == 0 {
		fmt.Fprintln(w, "No games recorded yet. Run 'guess' to play.")
		return nil
	}
	fmt.Fprintln(w, sessionTable(sessions))
	return nil
}

func writeYAML(w io.Writer, sessions []models.Session) error {
	if sessions == nil {
		sessions = []models.Session{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sessions); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func sessionTable(sessions []models.Session) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, []string{
			shortID(s.ID),
			s.StartedAt.Local().Format("2006-01-02 15:04"),
			string(s.Status),
			strconv.Itoa(s.Attempts),
			targetCell(s),
			durationCell(s),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("ID", "STARTED", "STATUS", "ATTEMPTS", "TARGET", "DURATION").
		Rows(rows...).
		Render()
}

// sessionDetail is the yaml form of one game and its guesses.
type sessionDetail struct {
	Session models.Session `yaml:"session"`
	Guesses []models.Guess `yaml:"guesses"`
}

func runHistoryDetail(w io.Writer, id, format string) error {
	db, err := openExistingHistory()
	if errors.Is(err, errNoHistory) {
		return fmt.Errorf("no game matches %q: %w", id, err)
	}
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer db.Close()

	s, err := db.FindSession(id)
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("no game matches %q", id)
	}
	guesses, err := db.ListGuesses(s.ID)
	if err != nil {
		return err
	}
	if guesses == nil {
		guesses = []models.Guess{}
	}

	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sessionDetail{Session: *s, Guesses: guesses}); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "Game %s\n", s.ID)
	fmt.Fprintf(w, "Started: %s\n", s.StartedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Status: %s after %d attempt(s)\n", s.Status, s.Attempts)
	fmt.Fprintf(w, "Target: %s\n", targetCell(*s))
	if len(guesses) == 0 {
		fmt.Fprintln(w, "No guesses recorded.")
		return nil
	}
	fmt.Fprintln(w, guessTable(guesses))
	return nil
}

func guessTable(guesses []models.Guess) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	rows := make([][]string, 0, len(guesses))
	for _, g := range guesses {
		feedback := g.Outcome.Feedback()
		if g.Outcome == models.OutcomeInvalid {
			feedback = "(ignored)"
		}
		rows = append(rows, []string{
			strconv.Itoa(g.Seq),
			strconv.Quote(g.Raw),
			feedback,
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("#", "INPUT", "FEEDBACK").
		Rows(rows...).
		Render()
}

// targetCell hides the target of games still in progress.
func targetCell(s models.Session) string {
	if s.Status == models.SessionActive {
		return "?"
	}
	return strconv.FormatUint(uint64(s.Target), 10)
}

func durationCell(s models.Session) string {
	if s.FinishedAt == nil {
		return "-"
	}
	return formatDuration(s.FinishedAt.Sub(s.StartedAt))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
}

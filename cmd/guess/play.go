package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ShayCichocki/guess/internal/game"
	"github.com/ShayCichocki/guess/internal/state"
	"github.com/ShayCichocki/guess/internal/tui"
)

var (
	playTUI        bool
	playHideSecret bool
	playNoHistory  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one game",
	Long: `Play one game of guess.

The secret number is drawn uniformly from 1 to 100. Each line of input is
read as a guess; anything that is not a non-negative whole number is
ignored and the prompt repeats. The game ends only on a correct guess.

Examples:
  guess play                 # Classic line mode
  guess play --tui           # Full-screen interface
  guess play --hide-secret   # Don't print the secret first
  echo 50 | guess play       # Scripted input`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags on cmd. The root command shares them
// so that bare 'guess' behaves like 'guess play'.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&playTUI, "tui", false, "Use the full-screen terminal interface")
	cmd.Flags().BoolVar(&playHideSecret, "hide-secret", false, "Don't reveal the secret number at startup")
	cmd.Flags().BoolVar(&playNoHistory, "no-history", false, "Don't record this game in history")
}

func runPlay(cmd *cobra.Command, args []string) error {
	opts := []game.Option{game.WithLogger(logger)}

	if cfg.History.Enabled && !playNoHistory {
		db, err := openHistory()
		if err != nil {
			// History is best-effort; the game is still playable.
			logger.Warn("history unavailable", zap.String("path", historyPath()), zap.Error(err))
		} else {
			defer db.Close()
			if n, err := db.RecoverInterrupted(interruptedGrace); err != nil {
				logger.Warn("failed to recover interrupted sessions", zap.Error(err))
			} else if n > 0 {
				logger.Info("marked interrupted sessions aborted", zap.Int("count", n))
			}
			opts = append(opts, game.WithObserver(state.NewRecorder(db, logger)))
		}
	}

	session := game.NewSession(opts...)
	reveal := cfg.Game.RevealSecret && !playHideSecret

	if playTUI {
		return tui.Run(session, tui.Options{
			RevealSecret: reveal,
			AccentColor:  cfg.TUI.AccentColor,
		})
	}

	loop := game.NewLoop(cmd.InOrStdin(), cmd.OutOrStdout(), game.LoopOptions{
		RevealSecret: reveal,
		EchoGuess:    cfg.Game.EchoGuess,
		Color:        cfg.Game.Color,
	})
	if err := loop.Run(session); err != nil {
		if errors.Is(err, game.ErrInputStream) {
			return fmt.Errorf("failed to read line: %w", err)
		}
		return err
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ShayCichocki/guess/internal/config"
	"github.com/ShayCichocki/guess/internal/logging"
)

var (
	verbose    bool
	configFile string

	// cfg and logger are populated in PersistentPreRunE for every command.
	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "guess",
	Short: "Guess the secret number",
	Long: `guess draws a secret number between 1 and 100 and asks for guesses
until one matches, answering "Too small!" or "Too big!" along the way.

With no subcommand, plays one game on stdin/stdout. Use --tui for the
full-screen interface. Finished games are kept in a local history database.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var loaded *config.Config
		var err error
		if configFile != "" {
			loaded, err = config.LoadFromPath(configFile)
		} else {
			loaded, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded

		l, err := logging.New(cfg.Log.Level, verbose)
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runPlay,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Read configuration from this file instead of the user and project files")
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(cleanupCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

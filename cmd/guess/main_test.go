package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// testEnv isolates config and history under a temp dir.
type testEnv struct {
	dir    string
	dbPath string
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("GUESS_GAME_COLOR", "false")
	t.Chdir(dir)

	color.NoColor = true
	return &testEnv{
		dir:    dir,
		dbPath: filepath.Join(dir, "data", "guess", "history.db"),
	}
}

// resetFlags restores every flag on the command tree to its default so
// package-level flag variables don't leak between tests.
func resetFlags() {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	rootCmd.Flags().VisitAll(reset)
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(reset)
	}
}

// executeCommand runs the root command with args and stdin, returning stdout.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(func() {
		logger = zap.NewNop()
		cfg = nil
	})

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)

	err := rootCmd.Execute()
	return out.String(), err
}

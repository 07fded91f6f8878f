package main

import (
	"errors"
	"time"

	"github.com/ShayCichocki/guess/internal/state"
)

// interruptedGrace is how old an active session must be before it is
// treated as left behind by a process that died mid-game.
const interruptedGrace = 12 * time.Hour

// errNoHistory is returned when no history database has been created yet.
var errNoHistory = errors.New("no history recorded yet")

// historyPath resolves the configured database location.
func historyPath() string {
	if cfg != nil && cfg.History.Path != "" {
		return cfg.History.Path
	}
	return state.DefaultPath()
}

// openHistory opens and migrates the history database, creating it if needed.
func openHistory() (*state.DB, error) {
	return state.OpenMigrated(historyPath())
}

// openExistingHistory is openHistory for read-only commands: it returns
// errNoHistory instead of creating an empty database.
func openExistingHistory() (*state.DB, error) {
	if !fileExists(historyPath()) {
		return nil, errNoHistory
	}
	return openHistory()
}

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShayCichocki/guess/internal/config"
	"github.com/ShayCichocki/guess/internal/state"
	"github.com/ShayCichocki/guess/pkg/models"
)

func TestStats_Empty(t *testing.T) {
	setupEnv(t)

	out, err := executeCommand(t, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "No games recorded yet")
}

func TestStats_AfterGames(t *testing.T) {
	env := setupEnv(t)
	seedHistory(t, env)

	out, err := executeCommand(t, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Games played: 2")
	assert.Contains(t, out, "Games won: 1 (50%)")
	assert.Contains(t, out, "Best game: 5 attempts")
	assert.Contains(t, out, "Average: 5.0 attempts")
}

func TestCleanup(t *testing.T) {
	env := setupEnv(t)

	db, err := state.Open(env.dbPath)
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	require.NoError(t, db.CreateSession(&models.Session{ID: "old", Target: 1, Status: models.SessionWon, StartedAt: time.Now().Add(-10 * 24 * time.Hour)}))
	require.NoError(t, db.CreateSession(&models.Session{ID: "new", Target: 2, Status: models.SessionWon, StartedAt: time.Now()}))
	require.NoError(t, db.Close())

	out, err := executeCommand(t, "", "cleanup", "--older-than", "168h", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "1 game(s)")
	assert.Contains(t, out, "would be removed")

	out, err = executeCommand(t, "", "cleanup", "--older-than", "168h")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed 1 game(s)")

	db, err = state.Open(env.dbPath)
	require.NoError(t, err)
	defer db.Close()
	sessions, err := db.ListSessions(0)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "new", sessions[0].ID)
}

func TestCleanup_DefaultRetention(t *testing.T) {
	env := setupEnv(t)
	t.Setenv("GUESS_HISTORY_RETENTION", "1h")

	db, err := state.Open(env.dbPath)
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	require.NoError(t, db.CreateSession(&models.Session{ID: "two-hours", Target: 1, Status: models.SessionWon, StartedAt: time.Now().Add(-2 * time.Hour)}))
	require.NoError(t, db.Close())

	out, err := executeCommand(t, "", "cleanup")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed 1 game(s) older than 1h0m0s")
}

func TestCleanup_NoHistory(t *testing.T) {
	setupEnv(t)

	out, err := executeCommand(t, "", "cleanup")
	require.NoError(t, err)
	assert.Contains(t, out, "No history to clean up")
}

func TestConfig_ShowAll(t *testing.T) {
	setupEnv(t)

	out, err := executeCommand(t, "", "config")
	require.NoError(t, err)
	for _, key := range config.Keys() {
		assert.Contains(t, out, key+":")
	}
	assert.Contains(t, out, "(default)")
}

func TestConfig_SetAndGet(t *testing.T) {
	env := setupEnv(t)

	out, err := executeCommand(t, "", "config", "game.reveal_secret", "false")
	require.NoError(t, err)
	assert.Contains(t, out, "Set game.reveal_secret = false")

	userConfig := filepath.Join(env.dir, "config", "guess", "config.yaml")
	data, err := os.ReadFile(userConfig)
	require.NoError(t, err)
	assert.Contains(t, string(data), "reveal_secret: false")

	out, err = executeCommand(t, "", "config", "game.reveal_secret")
	require.NoError(t, err)
	assert.Equal(t, "false", strings.TrimSpace(out))

	// A second set keeps the first.
	_, err = executeCommand(t, "", "config", "log.level", "warn")
	require.NoError(t, err)
	loaded, err := config.LoadFromPath(userConfig)
	require.NoError(t, err)
	assert.False(t, loaded.Game.RevealSecret)
	assert.Equal(t, "warn", loaded.Log.Level)
}

func TestConfig_Errors(t *testing.T) {
	setupEnv(t)

	_, err := executeCommand(t, "", "config", "nope.key")
	assert.Error(t, err)

	_, err = executeCommand(t, "", "config", "history.retention", "forever")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	setupEnv(t)

	out, err := executeCommand(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "guess version "), "got %q", out)
}

func TestConfig_SetDoesNotPersistEnvOverrides(t *testing.T) {
	env := setupEnv(t) // exports GUESS_GAME_COLOR=false
	t.Setenv("GUESS_GAME_ECHO_GUESS", "false")

	_, err := executeCommand(t, "", "config", "log.level", "debug")
	require.NoError(t, err)
	_, err = executeCommand(t, "", "config", "log.level", "warn")
	require.NoError(t, err)

	userConfig := filepath.Join(env.dir, "config", "guess", "config.yaml")
	data, err := os.ReadFile(userConfig)
	require.NoError(t, err)
	assert.Contains(t, string(data), "level: warn")
	assert.NotContains(t, string(data), "color: false")
	assert.NotContains(t, string(data), "echo_guess: false")
}

func TestConfig_SetDoesNotPersistProjectOverrides(t *testing.T) {
	env := setupEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(env.dir, ".guess.yaml"), []byte("game:\n  reveal_secret: false\n"), 0644))

	_, err := executeCommand(t, "", "config", "log.level", "warn")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(env.dir, "config", "guess", "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "reveal_secret: true")
}

func TestConfig_ShowsSources(t *testing.T) {
	env := setupEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(env.dir, ".guess.yaml"), []byte("log:\n  level: warn\n"), 0644))

	out, err := executeCommand(t, "", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "# user config: "+filepath.Join(env.dir, "config", "guess", "config.yaml"))
	assert.Contains(t, out, "# project config: ")
	assert.Contains(t, out, "log.level: warn")
}

func TestConfigFlag_ReadsExplicitFile(t *testing.T) {
	env := setupEnv(t)
	path := filepath.Join(env.dir, "alt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game:\n  echo_guess: false\n"), 0644))

	out, err := executeCommand(t, "", "--config", path, "config", "game.echo_guess")
	require.NoError(t, err)
	assert.Equal(t, "false", strings.TrimSpace(out))

	_, err = executeCommand(t, "", "--config", filepath.Join(env.dir, "missing.yaml"), "stats")
	assert.Error(t, err)
}

// Package config handles configuration loading and management for guess.
// It supports XDG config paths, project-level overrides, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for guess.
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	History HistoryConfig `mapstructure:"history"`
	Log     LogConfig     `mapstructure:"log"`
	TUI     TUIConfig     `mapstructure:"tui"`
}

// GameConfig holds gameplay output settings.
type GameConfig struct {
	// RevealSecret prints the target at startup.
	RevealSecret bool `mapstructure:"reveal_secret"`
	// EchoGuess repeats each raw guess back to the player.
	EchoGuess bool `mapstructure:"echo_guess"`
	// Color enables colored feedback in line mode.
	Color bool `mapstructure:"color"`
}

// HistoryConfig holds settings for the session history database.
type HistoryConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Path overrides the database location. Empty means the XDG data dir.
	Path string `mapstructure:"path"`
	// Retention is how long cleanup keeps sessions.
	Retention time.Duration `mapstructure:"retention"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// TUIConfig holds TUI display settings.
type TUIConfig struct {
	// AccentColor is a lipgloss color (ANSI number or hex).
	AccentColor string `mapstructure:"accent_color"`
}

// envPrefix is prepended to every environment override, e.g. GUESS_GAME_REVEAL_SECRET.
const envPrefix = "GUESS"

// Load loads configuration from XDG paths, project overrides, and environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (GUESS_*)
// 2. Project config (.guess.yaml in current directory or parent)
// 3. User config (~/.config/guess/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(getUserConfigDir())

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	if projectConfig := findProjectConfig(); projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading project config %s: %w", projectConfig, err)
		}
		if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	bindEnv(v)
	return unmarshal(v)
}

// LoadFromPath loads configuration from a specific file, still honoring
// environment overrides.
func LoadFromPath(path string) (*Config, error) {
	v, err := readFile(path)
	if err != nil {
		return nil, err
	}
	bindEnv(v)
	return unmarshal(v)
}

// LoadUserFile loads only the defaults and the user config file. Project
// overrides and GUESS_* variables are ignored, so the result is safe to
// modify and Save back. A missing user file yields Default().
func LoadUserFile() (*Config, error) {
	path := GetUserConfigPath()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	v, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return unmarshal(v)
}

func readFile(path string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return v, nil
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.History.Path = expandPath(cfg.History.Path)
	return cfg, nil
}

// bindEnv maps nested keys to GUESS_SECTION_KEY variables.
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Save writes cfg to the user config file.
func Save(cfg *Config) error {
	return SaveToPath(cfg, GetUserConfigPath())
}

// SaveToPath writes cfg as YAML to path, creating parent directories.
func SaveToPath(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("game.reveal_secret", cfg.Game.RevealSecret)
	v.Set("game.echo_guess", cfg.Game.EchoGuess)
	v.Set("game.color", cfg.Game.Color)
	v.Set("history.enabled", cfg.History.Enabled)
	v.Set("history.path", cfg.History.Path)
	v.Set("history.retention", cfg.History.Retention.String())
	v.Set("log.level", cfg.Log.Level)
	v.Set("tui.accent_color", cfg.TUI.AccentColor)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if it exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("game.reveal_secret", d.Game.RevealSecret)
	v.SetDefault("game.echo_guess", d.Game.EchoGuess)
	v.SetDefault("game.color", d.Game.Color)

	v.SetDefault("history.enabled", d.History.Enabled)
	v.SetDefault("history.path", d.History.Path)
	v.SetDefault("history.retention", d.History.Retention.String())

	v.SetDefault("log.level", d.Log.Level)

	v.SetDefault("tui.accent_color", d.TUI.AccentColor)
}

// getUserConfigDir returns the XDG config directory for guess.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "guess")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "guess")
	}
	return filepath.Join(home, ".config", "guess")
}

// findProjectConfig searches for .guess.yaml in the current directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ".guess.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}

// expandPath expands ${VAR} references and a leading ~/.
func expandPath(p string) string {
	p = os.ExpandEnv(p)
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, p[2:])
		}
	}
	return p
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Game: GameConfig{
			RevealSecret: true,
			EchoGuess:    true,
			Color:        true,
		},
		History: HistoryConfig{
			Enabled:   true,
			Path:      "",
			Retention: 30 * 24 * time.Hour,
		},
		Log: LogConfig{
			Level: "info",
		},
		TUI: TUIConfig{
			AccentColor: "39",
		},
	}
}

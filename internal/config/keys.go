package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

// Keys returns every dot-notation configuration key in display order.
func Keys() []string {
	return []string{
		"game.reveal_secret",
		"game.echo_guess",
		"game.color",
		"history.enabled",
		"history.path",
		"history.retention",
		"log.level",
		"tui.accent_color",
	}
}

// Get retrieves a configuration value by dot-notation key.
func Get(cfg *Config, key string) (string, error) {
	switch strings.ToLower(key) {
	case "game.reveal_secret":
		return strconv.FormatBool(cfg.Game.RevealSecret), nil
	case "game.echo_guess":
		return strconv.FormatBool(cfg.Game.EchoGuess), nil
	case "game.color":
		return strconv.FormatBool(cfg.Game.Color), nil
	case "history.enabled":
		return strconv.FormatBool(cfg.History.Enabled), nil
	case "history.path":
		return cfg.History.Path, nil
	case "history.retention":
		return cfg.History.Retention.String(), nil
	case "log.level":
		return cfg.Log.Level, nil
	case "tui.accent_color":
		return cfg.TUI.AccentColor, nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// Set parses value and assigns it to the dot-notation key.
func Set(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "game.reveal_secret":
		return setBool(&cfg.Game.RevealSecret, key, value)
	case "game.echo_guess":
		return setBool(&cfg.Game.EchoGuess, key, value)
	case "game.color":
		return setBool(&cfg.Game.Color, key, value)
	case "history.enabled":
		return setBool(&cfg.History.Enabled, key, value)
	case "history.path":
		cfg.History.Path = expandPath(value)
	case "history.retention":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration for %s: %w", key, err)
		}
		if d <= 0 {
			return fmt.Errorf("invalid duration for %s: must be positive", key)
		}
		cfg.History.Retention = d
	case "log.level":
		if _, err := zapcore.ParseLevel(value); err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
		cfg.Log.Level = strings.ToLower(value)
	case "tui.accent_color":
		if value == "" {
			return fmt.Errorf("invalid value for %s: empty", key)
		}
		cfg.TUI.AccentColor = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}

func setBool(dst *bool, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for %s: %w", key, err)
	}
	*dst = b
	return nil
}

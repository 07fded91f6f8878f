package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/guess/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Manage configuration",
	Long: `View or modify guess configuration.

Without arguments, displays current configuration.
With one argument (key), displays the value for that key.
With two arguments (key value), sets the configuration value.

Configuration is stored at ~/.config/guess/config.yaml
Project-specific overrides can be placed in .guess.yaml
Any key can be overridden with GUESS_<SECTION>_<KEY>, e.g. GUESS_GAME_REVEAL_SECRET=false`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch len(args) {
		case 0:
			return displayAllConfig(cmd, cfg)
		case 1:
			return displayConfigKey(cmd, cfg, args[0])
		default:
			return setConfigKey(cmd, args[0], args[1])
		}
	},
}

// displayAllConfig prints all configuration values.
func displayAllConfig(cmd *cobra.Command, c *config.Config) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# user config: %s\n", config.GetUserConfigPath())
	if project := config.GetProjectConfigPath(); project != "" {
		fmt.Fprintf(out, "# project config: %s\n", project)
	}
	for _, key := range config.Keys() {
		value, err := config.Get(c, key)
		if err != nil {
			return err
		}
		if key == "history.path" && value == "" {
			value = historyPath() + " (default)"
		}
		fmt.Fprintf(out, "%s: %s\n", key, value)
	}
	return nil
}

// displayConfigKey prints a single configuration value.
func displayConfigKey(cmd *cobra.Command, c *config.Config, key string) error {
	value, err := config.Get(c, key)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

// setConfigKey sets a value in the user config file. The user file, not the
// merged config, is the base so project and environment overrides are not
// written back.
func setConfigKey(cmd *cobra.Command, key, value string) error {
	base, err := config.LoadUserFile()
	if err != nil {
		return fmt.Errorf("load user config: %w", err)
	}

	if err := config.Set(base, key, value); err != nil {
		return err
	}
	if err := config.Save(base); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/srv6net/srv6ctl/pkg/cli"
	"github.com/srv6net/srv6ctl/pkg/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage persistent settings",
	Long: `Manage persistent settings stored in ~/.srv6ctl/settings.json.

Settings provide defaults for command arguments:
  - default_config: Config file used when no argument is given
  - default_format: Export format when --format is not specified

Examples:
  srv6ctl settings show
  srv6ctl settings set config /etc/srv6/srv6.conf
  srv6ctl settings set format json
  srv6ctl settings clear`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load()
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}

		fmt.Printf("Settings file: %s\n\n", settings.DefaultSettingsPath())

		t := cli.NewTable("SETTING", "VALUE")
		printSetting := func(name, value string) {
			if value == "" {
				value = "(not set)"
			}
			t.Row(name, value)
		}
		printSetting("default_config", s.DefaultConfig)
		printSetting("default_format", s.DefaultFormat)
		t.Flush()
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <setting> <value>",
	Short: "Set a setting value",
	Long: `Set a persistent setting value.

Available settings:
  config - Default config file (used when no argument is given)
  format - Default export format (yaml or json)

Examples:
  srv6ctl settings set config /etc/srv6/srv6.conf
  srv6ctl settings set format json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		setting := args[0]
		value := args[1]

		s, err := settings.Load()
		if err != nil {
			s = &settings.Settings{}
		}

		switch setting {
		case "config", "default_config":
			s.DefaultConfig = value
			fmt.Printf("Default config set to: %s\n", value)
		case "format", "default_format":
			if value != "yaml" && value != "json" {
				return fmt.Errorf("invalid format %q (valid: yaml, json)", value)
			}
			s.DefaultFormat = value
			fmt.Printf("Default format set to: %s\n", value)
		default:
			return fmt.Errorf("unknown setting: %s (valid: config, format)", setting)
		}

		if err := s.Save(); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		return nil
	},
}

var settingsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := settings.DefaultSettingsPath()
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing %s: %w", path, err)
		}
		fmt.Println("Settings cleared.")
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsClearCmd)
}

// Srv6ctl - SRv6 Locator Configuration Tool
//
// A CLI tool for working with SRv6 textual configuration blocks:
//   - Parse locator/prefix declarations into a structured model
//   - Validate IPv6 prefixes and addresses
//   - Export parsed configuration as YAML or JSON
//   - Canonical reformatting of configuration text
//
// The tool operates on configuration text only: it reads a file (or stdin
// with "-") that was gathered from a device by other means. It never talks
// to devices itself.
//
// Examples:
//
//	srv6ctl show srv6.conf                    # Human-readable summary
//	srv6ctl check srv6.conf --watch           # Re-check on file change
//	srv6ctl export srv6.conf --format json    # Lossless structured export
//	srv6ctl fmt -w srv6.conf                  # Canonical rewrite in place
//	srv6ctl validate 2001:db8:1::/48          # Prefix validation
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/srv6net/srv6ctl/pkg/cli"
	"github.com/srv6net/srv6ctl/pkg/settings"
	"github.com/srv6net/srv6ctl/pkg/srv6"
	"github.com/srv6net/srv6ctl/pkg/util"
	"github.com/srv6net/srv6ctl/pkg/version"
)

var (
	// Global option flags
	verbose    bool
	jsonOutput bool
	yamlOutput bool

	// Global state
	userSettings *settings.Settings
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "srv6ctl",
	Short:             "SRv6 Locator Configuration Tool",
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	Long: `Srv6ctl parses and validates SRv6 locator configuration blocks.

Commands take a configuration file argument; use "-" to read stdin.

  srv6ctl show <file>
  srv6ctl export <file> --format yaml|json`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if isSettingsOrHelp(cmd) {
			return nil
		}

		// Load user settings
		var err error
		userSettings, err = settings.Load()
		if err != nil {
			util.Warnf("Could not load settings: %v", err)
			userSettings = &settings.Settings{}
		}

		// Set log level: quiet by default, verbose on -v
		if verbose {
			util.SetLogLevel("debug")
		} else {
			util.SetLogLevel("warn")
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Output flags are local to commands that produce structured output.
	for _, cmd := range []*cobra.Command{showCmd} {
		addOutputFlags(cmd)
	}

	rootCmd.AddGroup(
		&cobra.Group{ID: "config", Title: "Configuration Operations:"},
		&cobra.Group{ID: "meta", Title: "Settings & Meta:"},
	)

	for _, cmd := range []*cobra.Command{showCmd, checkCmd, exportCmd, fmtCmd, validateCmd} {
		cmd.GroupID = "config"
		rootCmd.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{settingsCmd, versionCmd} {
		cmd.GroupID = "meta"
		rootCmd.AddCommand(cmd)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		if version.Version == "dev" {
			fmt.Println("srv6ctl dev build (use 'make build' for version info)")
		} else {
			fmt.Printf("srv6ctl %s (%s)\n", version.Version, version.GitCommit)
		}
	},
}

// ============================================================================
// Input Helpers
// ============================================================================

// configArg resolves the configuration file argument, falling back to the
// default_config setting when no argument is given.
func configArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if userSettings != nil && userSettings.DefaultConfig != "" {
		return userSettings.DefaultConfig, nil
	}
	return "", fmt.Errorf("config file required: provide a path or \"-\" for stdin")
}

// readConfigText reads the configuration text from path, or stdin when
// path is "-".
func readConfigText(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading config: %w", err)
	}
	return string(data), nil
}

// parseConfigFile reads and parses the config at path.
func parseConfigFile(path string) (*srv6.Config, error) {
	text, err := readConfigText(path)
	if err != nil {
		return nil, err
	}
	cfg, err := srv6.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", displayName(path), err)
	}
	return cfg, nil
}

// displayName renders "-" as "<stdin>" in messages.
func displayName(path string) string {
	if path == "-" {
		return "<stdin>"
	}
	return path
}

// isSettingsOrHelp checks whether cmd (or any ancestor) is a settings,
// help, or version command.
func isSettingsOrHelp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "version", "settings":
			return true
		}
	}
	return false
}

// addOutputFlags registers --json/--yaml as local flags.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "JSON output")
	cmd.Flags().BoolVar(&yamlOutput, "yaml", false, "YAML output")
}

// Color helpers — delegate to pkg/cli
func green(s string) string  { return cli.Green(s) }
func yellow(s string) string { return cli.Yellow(s) }
func red(s string) string    { return cli.Red(s) }
func bold(s string) string   { return cli.Bold(s) }

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/srv6net/srv6ctl/pkg/cli"
	"github.com/srv6net/srv6ctl/pkg/srv6"
	"github.com/srv6net/srv6ctl/pkg/util"
)

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Show parsed configuration details",
	Long: `Parse a configuration file and show its locators and prefixes.

Examples:
  srv6ctl show srv6.conf
  cat srv6.conf | srv6ctl show -
  srv6ctl show srv6.conf --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configArg(args)
		if err != nil {
			return err
		}
		cfg, err := parseConfigFile(path)
		if err != nil {
			return err
		}
		return showConfig(cfg)
	},
}

func showConfig(cfg *srv6.Config) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	}
	if yamlOutput {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	src := cfg.SourceAddress
	if src == "" {
		src = "(not set)"
	}
	fmt.Printf("Source Address: %s\n", bold(src))
	fmt.Printf("Locators: %d\n", cfg.NumLocators())

	for _, loc := range cfg.Locators() {
		fmt.Printf("\nLocator: %s\n", bold(loc.Name))
		if len(loc.Prefixes) == 0 {
			fmt.Println("  (no prefixes)")
			continue
		}
		t := cli.NewTable("PREFIX", "MASK", "BEHAVIOR", "PSP", "USP").WithPrefix("  ")
		for _, entry := range loc.Prefixes {
			addr, mask := util.SplitPrefix(entry.Prefix)
			behavior := entry.Behavior
			if behavior == "" {
				behavior = "-"
			}
			t.Row(addr, fmt.Sprintf("/%d", mask), behavior,
				flagCell(entry.PSP), flagCell(entry.USP))
		}
		t.Flush()
	}

	return nil
}

// flagCell renders a tri-state flag for table output.
func flagCell(f srv6.FlagState) string {
	switch f {
	case srv6.FlagEnabled:
		return green("enabled")
	case srv6.FlagDisabled:
		return red("disabled")
	default:
		return "-"
	}
}

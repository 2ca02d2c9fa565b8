package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/srv6net/srv6ctl/pkg/srv6"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export parsed configuration as YAML or JSON",
	Long: `Parse a configuration file and write a lossless structured export.

Locators appear in declaration order; psp/usp flags are rendered as
"enabled"/"disabled" and omitted entirely when the config never mentions
them.

Examples:
  srv6ctl export srv6.conf
  srv6ctl export srv6.conf --format json
  srv6ctl settings set format json   # change the default`,
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

		format := exportFormat
		if format == "" && userSettings != nil {
			format = userSettings.DefaultFormat
		}
		if format == "" {
			format = "yaml"
		}
		return exportConfig(cfg, format)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: yaml or json (default from settings, else yaml)")
}

func exportConfig(cfg *srv6.Config, format string) error {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	default:
		return fmt.Errorf("unknown format %q (valid: yaml, json)", format)
	}
}

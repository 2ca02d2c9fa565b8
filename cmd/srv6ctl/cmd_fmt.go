package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/srv6net/srv6ctl/pkg/srv6"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Reformat configuration canonically",
	Long: `Parse a configuration file and print it back in canonical form:
lowercase keywords, one declaration per line, prefix lines indented two
spaces, comments removed. Re-parsing the output yields the same
configuration.

Examples:
  srv6ctl fmt srv6.conf
  srv6ctl fmt -w srv6.conf`,
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

		out := srv6.Format(cfg)
		if !fmtWrite {
			fmt.Print(out)
			return nil
		}
		if path == "-" {
			return fmt.Errorf("-w requires a file path, not stdin")
		}
		if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("%s reformatted\n", path)
		return nil
	},
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Rewrite the file in place instead of printing")
}

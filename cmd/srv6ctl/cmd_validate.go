package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srv6net/srv6ctl/pkg/util"
)

var validateCmd = &cobra.Command{
	Use:   "validate <prefix|address>",
	Short: "Validate an IPv6 prefix or address",
	Long: `Check whether the argument is a valid IPv6 CIDR prefix (when it
contains a mask) or a valid IPv6 address.

Exits non-zero on invalid input.

Examples:
  srv6ctl validate 2001:db8:1::/48
  srv6ctl validate 2001:db8::1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arg := args[0]
		if strings.Contains(arg, "/") {
			if !util.IsValidIPv6Prefix(arg) {
				return fmt.Errorf("invalid SRv6 prefix: %s", arg)
			}
			fmt.Printf("%s %s is a valid IPv6 prefix\n", green("OK"), arg)
			return nil
		}
		if !util.IsValidIPv6(arg) {
			return fmt.Errorf("invalid IPv6 address: %s", arg)
		}
		fmt.Printf("%s %s is a valid IPv6 address\n", green("OK"), arg)
		return nil
	},
}

// cmd/subscanner/config.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"subscanner/internal/platform/config"
)

// newConfigCmd prints the effective configuration after all layers have been
// applied. It accepts the same flags as scan.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return withCode(exitUsage, err)
			}
			out, err := cfg.YAML()
			if err != nil {
				return withCode(exitRuntime, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	config.BindFlags(cmd.Flags())
	return cmd
}

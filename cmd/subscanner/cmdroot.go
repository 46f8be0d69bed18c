// cmd/subscanner/cmdroot.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCmd() (rootCmd *cobra.Command) {
	rootCmd = &cobra.Command{
		Use:           "subscanner",
		Short:         "subscanner collects subdomains of a domain from public passive sources",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		newScanCmd(),
		newSourcesCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return
}

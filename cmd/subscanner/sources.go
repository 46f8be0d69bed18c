// cmd/subscanner/sources.go
package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"subscanner/internal/platform/registry"
)

func newSourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "list the registered subdomain sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tQUERIES\tDESCRIPTION")
			for _, meta := range registry.Global().GetAllMetadata() {
				fmt.Fprintf(w, "%s\t%d\t%s\n", meta.Name, meta.Queries, meta.Description)
			}
			return w.Flush()
		},
	}
}

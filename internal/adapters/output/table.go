// internal/adapters/output/table.go
package output

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"subscanner/internal/core/domain"
)

// WriteTable imprime una tabla legible en terminal (modo sin colores).
func WriteTable(out io.Writer, result *domain.ScanResult) error {
	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)

	fmt.Fprintf(w, "\n=== Subdomain Scan Results ===\n")
	fmt.Fprintf(w, "Target:\t%s\n", result.Target.Root)
	fmt.Fprintf(w, "Duration:\t%s\n", result.Metadata.Duration)
	fmt.Fprintf(w, "Subdomains:\t%d\n", len(result.Hostnames))
	if result.Metadata.Canceled {
		fmt.Fprintf(w, "Status:\tcanceled (partial results)\n")
	}
	fmt.Fprintln(w)

	if len(result.Hostnames) == 0 {
		fmt.Fprintln(w, "No subdomains found.")
	} else if result.Resolved != nil {
		fmt.Fprintln(w, "SUBDOMAIN\tADDRESS")
		fmt.Fprintln(w, "---------\t-------")
		for _, h := range result.Hostnames {
			addr, ok := result.Resolved[h]
			if !ok {
				addr = "-"
			}
			fmt.Fprintf(w, "%s\t%s\n", h, addr)
		}
	} else {
		fmt.Fprintln(w, "SUBDOMAIN")
		fmt.Fprintln(w, "---------")
		for _, h := range result.Hostnames {
			fmt.Fprintln(w, h)
		}
	}

	if len(result.Sources) > 0 {
		fmt.Fprintln(w, "\nSOURCE\tFOUND\tDURATION")
		for _, s := range result.Sources {
			fmt.Fprintf(w, "%s\t%d\t%s\n", s.Name, s.Found, s.Duration.Round(time.Millisecond))
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}
	return nil
}

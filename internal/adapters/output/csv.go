// internal/adapters/output/csv.go
package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"subscanner/internal/core/domain"
)

var csvHeader = []string{"Subdomain", "IP Address"}

// CSVExporter escribe una fila por host resuelto, ordenadas por hostname.
// Sin resolución el archivo solo contiene la cabecera.
type CSVExporter struct{}

func (CSVExporter) Format() domain.ExportFormat { return domain.ExportFormatCSV }

func (CSVExporter) Export(w io.Writer, result *domain.ScanResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, h := range result.ResolvedHosts() {
		if err := cw.Write([]string{h, result.Resolved[h]}); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

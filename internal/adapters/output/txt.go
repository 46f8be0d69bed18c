// internal/adapters/output/txt.go
package output

import (
	"bufio"
	"fmt"
	"io"

	"subscanner/internal/core/domain"
)

// TextExporter escribe un hostname por línea, en el orden del resultado.
type TextExporter struct{}

func (TextExporter) Format() domain.ExportFormat { return domain.ExportFormatTXT }

func (TextExporter) Export(w io.Writer, result *domain.ScanResult) error {
	bw := bufio.NewWriter(w)
	for _, h := range result.Hostnames {
		if _, err := fmt.Fprintln(bw, h); err != nil {
			return fmt.Errorf("failed to write hostname: %w", err)
		}
	}
	return bw.Flush()
}

// internal/adapters/output/exporter.go
package output

import (
	"fmt"
	"path/filepath"
	"strings"

	"subscanner/internal/core/domain"
	"subscanner/internal/core/ports"
)

// New retorna el exporter para format.
func New(format domain.ExportFormat) (ports.Exporter, error) {
	switch format {
	case domain.ExportFormatTXT:
		return TextExporter{}, nil
	case domain.ExportFormatJSON:
		return JSONExporter{Indent: "  "}, nil
	case domain.ExportFormatCSV:
		return CSVExporter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
}

// FormatFromPath infiere el formato por la extensión del archivo (default: txt).
func FormatFromPath(path string) domain.ExportFormat {
	f, err := domain.ParseExportFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return domain.ExportFormatTXT
	}
	return f
}

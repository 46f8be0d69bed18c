// internal/core/ports/exporter.go
package ports

import (
	"io"

	"subscanner/internal/core/domain"
)

// Exporter es el port para exportar resultados en diferentes formatos.
type Exporter interface {
	// Format retorna el formato que produce el exporter
	Format() domain.ExportFormat

	// Export escribe el resultado en w
	Export(w io.Writer, result *domain.ScanResult) error
}

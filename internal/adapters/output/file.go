// internal/adapters/output/file.go
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"subscanner/internal/core/domain"
	"subscanner/internal/core/ports"
)

// sanitizeDomainName convierte un nombre de dominio en un nombre de carpeta válido.
// Ejemplo: "example.com" -> "example_com"
func sanitizeDomainName(domain string) string {
	sanitized := strings.ReplaceAll(domain, ".", "_")
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			return r
		}
		return '_'
	}, sanitized)
}

// DefaultFilename genera dir/<dominio>/subscanner_<dominio>_<timestamp>.<ext>.
func DefaultFilename(dir, root string, format domain.ExportFormat, now time.Time) string {
	if dir == "" {
		dir = "."
	}
	name := fmt.Sprintf("subscanner_%s_%s.%s", root, now.Format("20060102_150405"), format)
	return filepath.Join(dir, sanitizeDomainName(root), name)
}

// WriteFile exporta result a path, creando los directorios necesarios.
func WriteFile(path string, exp ports.Exporter, result *domain.ScanResult) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := exp.Export(f, result); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

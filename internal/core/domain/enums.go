// internal/core/domain/enums.go
package domain

import "strings"

// ExportFormat define el formato de exportación de resultados.
type ExportFormat string

const (
	// ExportFormatTXT un hostname por línea
	ExportFormatTXT ExportFormat = "txt"

	// ExportFormatJSON objeto con timestamp, total y subdomains
	ExportFormatJSON ExportFormat = "json"

	// ExportFormatCSV filas hostname,IP para hosts resueltos
	ExportFormatCSV ExportFormat = "csv"
)

// ParseExportFormat convierte un string a ExportFormat, sin distinguir mayúsculas.
func ParseExportFormat(s string) (ExportFormat, error) {
	f := ExportFormat(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", ErrUnsupportedFormat
	}
	return f, nil
}

// IsValid verifica si el formato es válido.
func (f ExportFormat) IsValid() bool {
	switch f {
	case ExportFormatTXT, ExportFormatJSON, ExportFormatCSV:
		return true
	default:
		return false
	}
}

// String retorna la representación string del formato.
func (f ExportFormat) String() string {
	return string(f)
}

// ResolverBackend selecciona el mecanismo de resolución DNS.
type ResolverBackend string

const (
	// ResolverBackendSystem usa el resolver del sistema operativo
	ResolverBackendSystem ResolverBackend = "system"

	// ResolverBackendDNS consulta A y AAAA directamente a un nameserver
	ResolverBackendDNS ResolverBackend = "dns"
)

// IsValid verifica si el backend es válido.
func (b ResolverBackend) IsValid() bool {
	return b == ResolverBackendSystem || b == ResolverBackendDNS
}

// String retorna la representación string del backend.
func (b ResolverBackend) String() string {
	return string(b)
}

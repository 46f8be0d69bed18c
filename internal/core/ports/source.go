// internal/core/ports/source.go
package ports

import (
	"context"

	"subscanner/internal/core/domain"
)

// Source es el port primario para todos los proveedores de subdominios.
// Search nunca retorna error: cualquier fallo de red, parseo o timeout
// se absorbe dentro de la fuente y degrada su aporte a un conjunto vacío.
type Source interface {
	// Name retorna el nombre único de la fuente (ej: "crt.sh", "wayback")
	Name() string

	// Enabled indica si la fuente participa en el próximo escaneo
	Enabled() bool

	// SetEnabled habilita o deshabilita la fuente
	SetEnabled(enabled bool)

	// Search consulta el proveedor y retorna hostnames ya normalizados
	Search(ctx context.Context, target domain.Target) *domain.HostSet
}

// SourceMetadata contiene metadatos sobre una fuente.
type SourceMetadata struct {
	Name        string
	Description string
	Queries     int // número de peticiones HTTP por búsqueda
}

// Fetcher es el límite de transporte: un GET con timeout y cabeceras fijas.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

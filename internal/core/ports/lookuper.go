// internal/core/ports/lookuper.go
package ports

import "context"

// Lookuper resuelve un hostname a cero o más direcciones.
type Lookuper interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// internal/core/domain/target.go
package domain

import (
	"fmt"
	"strings"

	"subscanner/internal/platform/validator"
)

// Target representa el dominio objetivo de un escaneo.
// Es inmutable una vez iniciado el escaneo: el orchestrator trabaja sobre una copia.
type Target struct {
	// Root es el dominio raíz objetivo (minúsculas, sin espacios)
	Root string `json:"root"`

	// StrictSuffix exige que los hostnames terminen en "."+Root o sean iguales a Root.
	// Por defecto basta con que terminen en Root como substring.
	StrictSuffix bool `json:"strict_suffix,omitempty"`
}

// NewTarget crea un nuevo target con valores por defecto.
func NewTarget(root string) *Target {
	return &Target{Root: root}
}

// Validate verifica que el target sea válido y normaliza Root.
func (t *Target) Validate() error {
	if strings.TrimSpace(t.Root) == "" {
		return ErrEmptyTarget
	}

	// Normalizar usando validator centralizado
	t.Root = validator.NormalizeDomain(t.Root)

	if !validator.IsDomain(t.Root) || !validator.IsHostname(t.Root) {
		return fmt.Errorf("%w: %s", ErrInvalidDomain, t.Root)
	}

	// "com" o "co.uk" no son objetivos razonables
	if validator.IsPublicSuffix(t.Root) {
		return fmt.Errorf("%w: %s is a public suffix", ErrInvalidDomain, t.Root)
	}

	return nil
}

// IsInScope verifica si un hostname pertenece al target según el modo de sufijo.
func (t Target) IsInScope(host string) bool {
	host = strings.ToLower(strings.TrimSpace(host))
	return validator.HasDomainSuffix(host, t.Root, t.StrictSuffix)
}

// String retorna una representación legible del target.
func (t Target) String() string {
	return fmt.Sprintf("Target{root=%s, strict=%t}", t.Root, t.StrictSuffix)
}

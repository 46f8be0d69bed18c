// internal/core/domain/normalize.go
package domain

import (
	"strings"

	"subscanner/internal/platform/validator"
)

// Algunas fuentes devuelven texto con los escapes doblemente codificados.
var escapeReplacer = strings.NewReplacer(`\n`, "\n", `\r`, "\r", `\t`, "\t")

// Normalize convierte candidatos crudos en hostnames válidos que pertenecen a root,
// con la comparación de sufijo por defecto (substring final).
func Normalize(candidates []string, root string) *HostSet {
	return Target{Root: validator.NormalizeDomain(root)}.Normalize(candidates)
}

// Normalize aplica el pipeline de limpieza sobre candidatos crudos:
// minúsculas, des-escape de \n \r \t, split por espacios, control y comas
// (listas host,ip), y filtro de cada token con Accepts. Los descartes no son errores.
func (t Target) Normalize(candidates []string) *HostSet {
	out := NewHostSet()
	for _, c := range candidates {
		if strings.TrimSpace(c) == "" {
			continue
		}
		c = escapeReplacer.Replace(strings.ToLower(strings.TrimSpace(c)))

		for _, token := range strings.FieldsFunc(c, isDelimiter) {
			token = strings.TrimSpace(token)
			if t.Accepts(token) {
				out.Add(token)
			}
		}
	}
	return out
}

// Accepts reporta si un token ya en minúsculas es un hostname válido del target.
func (t Target) Accepts(token string) bool {
	switch {
	case token == "":
		return false
	case !validator.HasDomainSuffix(token, t.Root, t.StrictSuffix):
		return false
	case strings.HasPrefix(token, "*"):
		return false
	case strings.Contains(token, "@"):
		return false
	case !strings.Contains(token, "."):
		return false
	}
	return validator.IsHostname(token)
}

func isDelimiter(r rune) bool {
	return r == ' ' || r == '\r' || r == '\n' || r == '\t' || r == ','
}

// internal/platform/validator/validator.go
package validator

import (
	"net"
	"regexp"
	"strings"

	"golang.org/x/net/publicsuffix"
)

var (
	// Etiquetas RFC 1123 separadas por punto; admite punycode.
	domainRegex = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?\.)*[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?$`)

	// Gramática aceptada para hostnames descubiertos (minúsculas, TLD alfabético).
	hostnameRegex = regexp.MustCompile(`^[a-z0-9]+([-.][a-z0-9]+)*\.[a-z]{2,}$`)
)

// Domain validators

// IsDomain verifica si un string es un dominio válido.
// Soporta dominios internacionales (IDN) en forma punycode.
func IsDomain(domain string) bool {
	if len(domain) == 0 || len(domain) > 253 {
		return false
	}
	if !domainRegex.MatchString(domain) {
		return false
	}
	// Verificar que no sea una IP
	return net.ParseIP(domain) == nil
}

// IsHostname verifica la gramática de un hostname ya normalizado.
func IsHostname(host string) bool {
	return hostnameRegex.MatchString(host)
}

// HasDomainSuffix reporta si host pertenece a root.
// En modo laxo basta con que host termine en root como substring;
// en modo estricto debe ser igual a root o terminar en "."+root.
func HasDomainSuffix(host, root string, strict bool) bool {
	if !strings.HasSuffix(host, root) {
		return false
	}
	if !strict {
		return true
	}
	return host == root || strings.HasSuffix(host, "."+root)
}

// IsPublicSuffix reporta si domain es en sí mismo un sufijo público (com, co.uk, github.io...).
func IsPublicSuffix(domain string) bool {
	suffix, _ := publicsuffix.PublicSuffix(domain)
	return suffix == domain
}

// NormalizeDomain normaliza un dominio a su forma canónica:
// minúsculas, sin espacios ni punto final.
func NormalizeDomain(domain string) string {
	domain = strings.ToLower(strings.TrimSpace(domain))
	return strings.TrimSuffix(domain, ".")
}

// Network validators

// IsIP verifica si un string es una dirección IP válida (v4 o v6).
func IsIP(ip string) bool {
	return net.ParseIP(ip) != nil
}

// IsHostPort valida "host:port", como el nameserver del resolver DNS.
func IsHostPort(s string) bool {
	host, port, err := net.SplitHostPort(s)
	if err != nil || host == "" || port == "" {
		return false
	}
	if !IsIP(host) && !IsDomain(host) {
		return false
	}
	for _, c := range port {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// internal/testutil/fixtures.go
package testutil

// Fixture data para tests (valores primitivos solamente, sin dependencias de domain)

// FixtureDomains contiene dominios raíz válidos.
var FixtureDomains = []string{
	"example.com",
	"example.co.uk",
	"test-site.org",
	"sub.example.com",
}

// FixtureInvalidDomains contiene dominios inválidos.
var FixtureInvalidDomains = []string{
	"not a domain",
	"-invalid.com",
	"invalid-.com",
	".example.com",
	"example..com",
	"localhost",
	"com",
	"co.uk",
}

// FixtureIPs contiene IPs de prueba.
var FixtureIPs = []string{
	"192.168.1.1",
	"10.0.0.1",
	"8.8.8.8",
	"2001:db8::1",
}

// FixtureNoisyBlob simula texto crudo de un proveedor con ruido típico.
const FixtureNoisyBlob = "WWW.Example.com\\nmail.example.com\n*.example.com admin@example.com\tapi.example.com\r\nexample.com notexample.org"

// internal/core/domain/fixtures_test.go
package domain

// Helper functions for tests in this package only

// fixtureTarget crea un target de prueba ya validado.
func fixtureTarget() Target {
	return Target{Root: "example.com"}
}

// fixtureCandidates retorna candidatos crudos como los devuelve una fuente real.
func fixtureCandidates() []string {
	return []string{
		"api.example.com,1.2.3.4",
		"*.example.com",
		"admin@example.com",
		"WWW.example.com\nmail.example.com",
		"dev.example.com\\nstaging.example.com",
		"bad_host.example.com",
		"other.org",
		"",
		"   ",
	}
}

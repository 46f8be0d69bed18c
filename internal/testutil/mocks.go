// internal/testutil/mocks.go
package testutil

import (
	"context"
	"sync"
)

// Nota: Los mocks específicos de domain/ports están en sus respectivos paquetes.
// Este archivo contiene solo utilidades genéricas sin dependencias circulares;
// MockFetcher satisface ports.Fetcher de forma estructural.

// MockFetcher responde por URL exacta con cuerpos o errores prefijados.
type MockFetcher struct {
	mu        sync.Mutex
	Responses map[string][]byte
	Errors    map[string]error
	FetchFunc func(ctx context.Context, url string) ([]byte, error)
	Calls     []string
}

// NewMockFetcher crea un fetcher vacío; URLs desconocidas devuelven cuerpo vacío.
func NewMockFetcher() *MockFetcher {
	return &MockFetcher{
		Responses: make(map[string][]byte),
		Errors:    make(map[string]error),
	}
}

// On registra la respuesta para una URL.
func (m *MockFetcher) On(url, body string) *MockFetcher {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses[url] = []byte(body)
	return m
}

// Fail registra un error para una URL.
func (m *MockFetcher) Fail(url string, err error) *MockFetcher {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Errors[url] = err
	return m
}

// Fetch simula una descarga.
func (m *MockFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, url)
	fn := m.FetchFunc
	err, failed := m.Errors[url]
	body := m.Responses[url]
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, url)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if failed {
		return nil, err
	}
	return body, nil
}

// CallCount retorna el número de llamadas a Fetch.
func (m *MockFetcher) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

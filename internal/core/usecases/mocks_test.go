// internal/core/usecases/mocks_test.go
package usecases

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"subscanner/internal/core/domain"
	"subscanner/internal/core/ports"
)

// mockSource es un mock de ports.Source para tests del orchestrator
type mockSource struct {
	name       string
	enabled    atomic.Bool
	searchFunc func(ctx context.Context, target domain.Target) *domain.HostSet
	calls      atomic.Int32
}

func newMockSource(name string, hosts ...string) *mockSource {
	m := &mockSource{name: name}
	m.enabled.Store(true)
	m.searchFunc = func(ctx context.Context, target domain.Target) *domain.HostSet {
		return domain.NewHostSet(hosts...)
	}
	return m
}

func (m *mockSource) Name() string      { return m.name }
func (m *mockSource) Enabled() bool     { return m.enabled.Load() }
func (m *mockSource) SetEnabled(v bool) { m.enabled.Store(v) }

func (m *mockSource) Search(ctx context.Context, target domain.Target) *domain.HostSet {
	m.calls.Add(1)
	return m.searchFunc(ctx, target)
}

func (m *mockSource) callCount() int {
	return int(m.calls.Load())
}

// mockNotifier es un mock de ports.Notifier para tests
type mockNotifier struct {
	mu         sync.Mutex
	notifyFunc func(ctx context.Context, event ports.Event) error
	events     []ports.Event
	closed     bool
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{events: []ports.Event{}}
}

func (m *mockNotifier) Notify(ctx context.Context, event ports.Event) error {
	m.mu.Lock()
	m.events = append(m.events, event)
	fn := m.notifyFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, event)
	}
	return nil
}

func (m *mockNotifier) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// getEvents returns a copy of every received event
func (m *mockNotifier) getEvents() []ports.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ports.Event(nil), m.events...)
}

// getEventsByType returns events filtered by type
func (m *mockNotifier) getEventsByType(eventType ports.EventType) []ports.Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	var filtered []ports.Event
	for _, e := range m.events {
		if e.Type == eventType {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// mockLookuper resuelve desde una tabla fija; los hosts en fail devuelven error.
type mockLookuper struct {
	mu      sync.Mutex
	table   map[string][]string
	fail    map[string]bool
	lookups []string
	block   chan struct{} // si no es nil, cada lookup espera a que se cierre o a ctx
}

var errLookupFailed = errors.New("lookup failed")

func newMockLookuper(table map[string][]string, fail ...string) *mockLookuper {
	m := &mockLookuper{table: table, fail: map[string]bool{}}
	for _, h := range fail {
		m.fail[h] = true
	}
	return m
}

func (m *mockLookuper) LookupHost(ctx context.Context, host string) ([]string, error) {
	m.mu.Lock()
	m.lookups = append(m.lookups, host)
	block := m.block
	m.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.fail[host] {
		return nil, errLookupFailed
	}
	return m.table[host], nil
}

func (m *mockLookuper) lookupCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.lookups)
}

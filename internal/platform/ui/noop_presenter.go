// internal/platform/ui/noop_presenter.go
package ui

import (
	"context"

	"subscanner/internal/core/domain"
	"subscanner/internal/core/ports"
)

// NoopPresenter es una implementación vacía del Presenter
// que no produce ninguna salida. Útil para modo quiet o headless.
type NoopPresenter struct{}

// NewNoopPresenter crea una instancia del presenter sin salida
func NewNoopPresenter() *NoopPresenter {
	return &NoopPresenter{}
}

// Notify descarta el evento
func (n *NoopPresenter) Notify(ctx context.Context, event ports.Event) error { return nil }

// Start no hace nada
func (n *NoopPresenter) Start(info ScanInfo) {}

// Finish no hace nada
func (n *NoopPresenter) Finish(result *domain.ScanResult) {}

// Error no hace nada
func (n *NoopPresenter) Error(msg string) {}

// Close no hace nada
func (n *NoopPresenter) Close() error {
	return nil
}

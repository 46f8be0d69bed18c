// internal/platform/ui/presenter.go
package ui

import (
	"strings"
	"time"

	"subscanner/internal/core/domain"
	"subscanner/internal/core/ports"
)

// UIMode define el modo de visualización
type UIMode string

const (
	UIModePretty UIMode = "pretty" // Spinners y colores (default)
	UIModePlain  UIMode = "plain"  // Una línea por evento, sin spinners
	UIModeQuiet  UIMode = "quiet"  // Sin UI visual
)

// ParseUIMode convierte un string a UIMode (default: pretty).
func ParseUIMode(s string) UIMode {
	switch UIMode(strings.ToLower(strings.TrimSpace(s))) {
	case UIModePlain:
		return UIModePlain
	case UIModeQuiet:
		return UIModeQuiet
	default:
		return UIModePretty
	}
}

// ScanInfo describe el escaneo que está por empezar.
type ScanInfo struct {
	Target       string
	Sources      []string
	Workers      int
	Timeout      time.Duration
	Resolve      bool
	StrictSuffix bool
}

// Presenter muestra el progreso del escaneo. Recibe los eventos del
// orchestrator como un ports.Notifier más.
type Presenter interface {
	ports.Notifier

	// Start muestra la cabecera del escaneo
	Start(info ScanInfo)

	// Finish muestra los resultados finales
	Finish(result *domain.ScanResult)

	// Error muestra un error terminal
	Error(msg string)
}

// New crea el presenter para mode.
func New(mode UIMode) Presenter {
	switch mode {
	case UIModeQuiet:
		return NewNoopPresenter()
	case UIModePlain:
		return NewPTermPresenter(false)
	default:
		return NewPTermPresenter(true)
	}
}

// internal/platform/ui/symbols.go
package ui

import "github.com/pterm/pterm"

// Status es el estado visible de una fuente o fase.
type Status int

const (
	StatusRunning  Status = iota // consultando
	StatusFound                  // terminó con resultados
	StatusEmpty                  // terminó sin resultados
	StatusCanceled               // interrumpido por cancelación o timeout
)

type glyph struct {
	name   string
	symbol string
	color  pterm.Color
}

var glyphs = map[Status]glyph{
	StatusRunning:  {"running", "⣾", pterm.FgCyan},
	StatusFound:    {"found", "✓", pterm.FgGreen},
	StatusEmpty:    {"empty", "⚠", pterm.FgYellow},
	StatusCanceled: {"canceled", "✗", pterm.FgRed},
}

func (s Status) glyph() glyph {
	if g, ok := glyphs[s]; ok {
		return g
	}
	return glyph{"unknown", "?", pterm.FgDefault}
}

func (s Status) String() string { return s.glyph().name }
func (s Status) Symbol() string { return s.glyph().symbol }
func (s Status) Color() pterm.Color { return s.glyph().color }
func (s Status) Style() *pterm.Style { return pterm.NewStyle(s.glyph().color) }

// statusFor elige el estado final de una fuente según lo encontrado.
func statusFor(found int) Status {
	if found == 0 {
		return StatusEmpty
	}
	return StatusFound
}

// Iconos de la cabecera y el resumen
const (
	IconTarget  = "🎯"
	IconStats   = "📊"
	IconTime    = "⏱"
	IconHosts   = "📦"
	IconSources = "🔌"
	IconWorkers = "⚙️"
)

// spinnerFrames secuencia braille de los spinners
var spinnerFrames = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

const SeparatorHeavy = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

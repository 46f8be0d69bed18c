// internal/platform/ui/colors.go
package ui

import "github.com/pterm/pterm"

// Paleta base
var (
	AshGray   = pterm.NewRGB(128, 128, 128)
	GhostCyan = pterm.NewRGB(0, 206, 209)
)

// Estilos preconfigurados para diferentes contextos
var (
	// StylePrimary - headers y elementos destacados
	StylePrimary = pterm.NewStyle(pterm.FgLightRed)

	// StyleAccent - acentos y highlights
	StyleAccent = pterm.NewStyle(pterm.FgCyan)

	// StyleSuccess - operaciones exitosas
	StyleSuccess = GhostCyan.ToRGBStyle()

	// StyleSecondary - texto secundario
	StyleSecondary = AshGray.ToRGBStyle()
)

// DisableColors apaga estilos y colores de toda la salida pterm (--no-color).
func DisableColors() {
	pterm.DisableStyling()
}

// internal/platform/ui/pterm_presenter.go
package ui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"subscanner/internal/core/domain"
	"subscanner/internal/core/ports"
)

// PTermPresenter implementa Presenter usando la biblioteca pterm
// para renderizar spinners, colores y tablas en la terminal.
type PTermPresenter struct {
	mu sync.Mutex

	// spinnersOn=false imprime una línea por evento (terminales sin TTY, CI)
	spinnersOn bool

	// Tracking de progreso
	scanStartTime time.Time
	totalSources  int
	completed     int
	found         map[string]int
	resolved      int
	resolveTotal  int

	// Spinners activos por source; "" es el spinner de resolución
	spinners map[string]*pterm.SpinnerPrinter
}

// NewPTermPresenter crea una nueva instancia del presenter con pterm
func NewPTermPresenter(spinners bool) *PTermPresenter {
	return &PTermPresenter{
		spinnersOn: spinners,
		found:      make(map[string]int),
		spinners:   make(map[string]*pterm.SpinnerPrinter),
	}
}

// Start inicia la presentación mostrando el header del escaneo
func (p *PTermPresenter) Start(info ScanInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.scanStartTime = time.Now()
	p.totalSources = len(info.Sources)

	if p.spinnersOn {
		_ = pterm.DefaultBigText.
			WithLetters(putils.LettersFromStringWithStyle("sub", StylePrimary), putils.LettersFromStringWithStyle("scanner", StyleAccent)).
			Render()
	}

	pterm.DefaultSection.Println("Scan Configuration")

	targetInfo := fmt.Sprintf("%s Target: %s\n", IconTarget, pterm.Cyan(info.Target))
	targetInfo += fmt.Sprintf("%s Sources: %s\n", IconSources, strings.Join(info.Sources, ", "))
	targetInfo += fmt.Sprintf("%s Workers: %d\n", IconWorkers, info.Workers)
	targetInfo += fmt.Sprintf("%s Timeout: %s\n", IconTime, info.Timeout)
	targetInfo += fmt.Sprintf("   Strict suffix: %s\n", onOff(info.StrictSuffix))
	targetInfo += fmt.Sprintf("   Resolve: %s", onOff(info.Resolve))

	pterm.DefaultBox.
		WithTitle("Target Information").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Println(targetInfo)

	pterm.Println()
}

// Notify traduce cada evento del escaneo a spinners o líneas de estado.
func (p *PTermPresenter) Notify(ctx context.Context, event ports.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch event.Type {
	case ports.EventTypeScanStarted:
		p.totalSources = event.Count

	case ports.EventTypeSourceStarted:
		p.startSpinner(event.Source, fmt.Sprintf("  %s Searching %s...", StatusRunning.Symbol(), pterm.Cyan(event.Source)))

	case ports.EventTypeSourceCompleted:
		p.completed++
		p.found[event.Source] = event.Count
		p.stopSpinner(event.Source)
		p.renderSourceLine(event.Source, event.Count, event.Duration)

	case ports.EventTypeScanCompleted:
		pterm.Println()
		pterm.Info.Printf("%d/%d sources finished, %d unique subdomains\n", p.completed, p.totalSources, event.Count)

	case ports.EventTypeScanCanceled:
		p.stopAll()
		StatusCanceled.Style().Printf("  %s %s\n", StatusCanceled.Symbol(), event.Message())

	case ports.EventTypeResolveStarted:
		p.resolveTotal = event.Count
		p.resolved = 0
		p.startSpinner("", fmt.Sprintf("  %s Resolving %s...", StatusRunning.Symbol(), plural(event.Count, "host")))

	case ports.EventTypeHostResolved:
		p.resolved++
		if s, ok := p.spinners[""]; ok {
			s.UpdateText(fmt.Sprintf("  %s Resolving... %d/%d (%s)", StatusRunning.Symbol(), p.resolved, p.resolveTotal, event.Source))
		}

	case ports.EventTypeResolveCompleted:
		p.stopSpinner("")
		StatusFound.Style().Printf("  %s Resolved %d/%d hosts\n", StatusFound.Symbol(), event.Count, p.resolveTotal)
	}
	return nil
}

// Error muestra un error
func (p *PTermPresenter) Error(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopAll()
	pterm.Error.Println(msg)
}

// Finish finaliza la presentación con la tabla de resultados
func (p *PTermPresenter) Finish(result *domain.ScanResult) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopAll()

	pterm.Println()
	pterm.Println(pterm.LightBlue(SeparatorHeavy))
	pterm.Println()

	if len(result.Hostnames) == 0 {
		pterm.Warning.Println("No subdomains found.")
		return
	}

	tableData := pterm.TableData{{"#", "Subdomain"}}
	if result.Resolved != nil {
		tableData[0] = append(tableData[0], "Address")
	}
	for i, h := range result.Hostnames {
		row := []string{fmt.Sprintf("%d", i+1), h}
		if result.Resolved != nil {
			addr, ok := result.Resolved[h]
			if !ok {
				addr = StyleSecondary.Sprint("-")
			}
			row = append(row, addr)
		}
		tableData = append(tableData, row)
	}

	_ = pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(tableData).
		Render()

	pterm.Println()
	summary := fmt.Sprintf("%s Subdomains: %s", IconStats, pterm.Cyan(fmt.Sprintf("%d", len(result.Hostnames))))
	if result.Resolved != nil {
		summary += fmt.Sprintf("   Resolved: %s", pterm.Green(fmt.Sprintf("%d", len(result.Resolved))))
	}
	summary += fmt.Sprintf("   %s %s", IconTime, formatDuration(result.Metadata.Duration))
	pterm.Println(summary)
}

// Close limpia recursos del presenter
func (p *PTermPresenter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopAll()
	return nil
}

func (p *PTermPresenter) startSpinner(key, text string) {
	if !p.spinnersOn {
		pterm.Println(text)
		return
	}
	spinner, err := pterm.DefaultSpinner.
		WithStyle(pterm.NewStyle(pterm.FgCyan)).
		WithSequence(spinnerFrames...).
		WithRemoveWhenDone(true).
		Start(text)
	if err != nil {
		return
	}
	p.spinners[key] = spinner
}

func (p *PTermPresenter) stopSpinner(key string) {
	if spinner, ok := p.spinners[key]; ok {
		_ = spinner.Stop()
		delete(p.spinners, key)
	}
}

func (p *PTermPresenter) stopAll() {
	for key := range p.spinners {
		p.stopSpinner(key)
	}
}

// renderSourceLine renderiza una línea con el resultado de un source
func (p *PTermPresenter) renderSourceLine(name string, found int, duration time.Duration) {
	status := statusFor(found)

	line := fmt.Sprintf("  %s %s", status.Symbol(), name)
	if duration > 0 {
		line += fmt.Sprintf(" (%s)", formatDuration(duration))
	}
	line += fmt.Sprintf(" %s %s", IconHosts, plural(found, "subdomain"))

	status.Style().Println(line)
}

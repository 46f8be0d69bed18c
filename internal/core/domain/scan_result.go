// internal/core/domain/scan_result.go
package domain

import (
	"fmt"
	"slices"
	"time"
)

// ScanResult representa el resultado completo de un escaneo.
type ScanResult struct {
	// ID identificador único del escaneo
	ID string `json:"id"`

	// Target objetivo del escaneo
	Target Target `json:"target"`

	// Hostnames subdominios descubiertos, ordenados
	Hostnames []string `json:"subdomains"`

	// Resolved hostname -> primera dirección resuelta (solo éxitos)
	Resolved map[string]string `json:"resolved,omitempty"`

	// Sources estadísticas por fuente, en orden de finalización
	Sources []SourceStat `json:"sources"`

	// Metadata información sobre el escaneo
	Metadata ScanMetadata `json:"metadata"`
}

// SourceStat resume la contribución de una fuente.
type SourceStat struct {
	Name     string        `json:"name"`
	Found    int           `json:"found"`
	Duration time.Duration `json:"duration"`
}

// ScanMetadata contiene información sobre la ejecución del escaneo.
type ScanMetadata struct {
	StartTime    time.Time     `json:"start_time"`
	EndTime      time.Time     `json:"end_time"`
	Duration     time.Duration `json:"duration"`
	SourcesUsed  []string      `json:"sources_used"`
	TotalSources int           `json:"total_sources"`
	Canceled     bool          `json:"canceled,omitempty"`
	Version      string        `json:"version,omitempty"`
}

// NewScanResult crea un nuevo resultado de escaneo.
func NewScanResult(target Target) *ScanResult {
	return &ScanResult{
		ID:        generateScanID(),
		Target:    target,
		Hostnames: []string{},
		Sources:   []SourceStat{},
		Metadata: ScanMetadata{
			StartTime: time.Now(),
		},
	}
}

// AddSourceStat registra la estadística de una fuente.
func (r *ScanResult) AddSourceStat(stat SourceStat) {
	r.Sources = append(r.Sources, stat)
	r.Metadata.SourcesUsed = append(r.Metadata.SourcesUsed, stat.Name)
}

// Finalize marca el escaneo como completado y calcula la duración.
func (r *ScanResult) Finalize() {
	r.Metadata.EndTime = time.Now()
	r.Metadata.Duration = r.Metadata.EndTime.Sub(r.Metadata.StartTime)
}

// Total retorna el número de subdominios descubiertos.
func (r *ScanResult) Total() int {
	return len(r.Hostnames)
}

// ResolvedHosts retorna los hostnames con dirección, ordenados.
func (r *ScanResult) ResolvedHosts() []string {
	out := make([]string, 0, len(r.Resolved))
	for h := range r.Resolved {
		out = append(out, h)
	}
	slices.SortFunc(out, CompareHosts)
	return out
}

// Summary retorna un resumen legible del resultado.
func (r *ScanResult) Summary() string {
	return fmt.Sprintf(
		"ScanResult{target=%s, subdomains=%d, resolved=%d, sources=%d, duration=%s}",
		r.Target.Root,
		len(r.Hostnames),
		len(r.Resolved),
		len(r.Sources),
		r.Metadata.Duration,
	)
}

// generateScanID genera un ID único para el escaneo basado en timestamp.
func generateScanID() string {
	return fmt.Sprintf("scan-%d", time.Now().UnixNano())
}

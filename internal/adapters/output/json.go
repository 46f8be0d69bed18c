// internal/adapters/output/json.go
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"subscanner/internal/core/domain"
)

// JSONDocument es el documento exportado en formato JSON.
type JSONDocument struct {
	Timestamp  time.Time         `json:"timestamp"`
	Target     string            `json:"target"`
	Total      int               `json:"total"`
	Subdomains []string          `json:"subdomains"`
	Resolved   map[string]string `json:"resolved,omitempty"`
}

// JSONExporter exporta el resultado como un único documento JSON.
type JSONExporter struct {
	Indent string
}

func (JSONExporter) Format() domain.ExportFormat { return domain.ExportFormatJSON }

// Export escribe timestamp, total y subdomains; resolved solo si hubo resolución.
func (e JSONExporter) Export(w io.Writer, result *domain.ScanResult) error {
	ts := result.Metadata.EndTime
	if ts.IsZero() {
		ts = time.Now()
	}

	hosts := result.Hostnames
	if hosts == nil {
		hosts = []string{}
	}

	doc := JSONDocument{
		Timestamp:  ts,
		Target:     result.Target.Root,
		Total:      len(hosts),
		Subdomains: hosts,
		Resolved:   result.Resolved,
	}

	enc := json.NewEncoder(w)
	if e.Indent != "" {
		enc.SetIndent("", e.Indent)
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

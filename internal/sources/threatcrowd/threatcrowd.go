// internal/sources/threatcrowd/threatcrowd.go
package threatcrowd

import (
	"context"
	"fmt"

	"subscanner/internal/core/domain"
	"subscanner/internal/core/ports"
	"subscanner/internal/platform/logx"
	"subscanner/internal/platform/registry"
	"subscanner/internal/sources/common"
)

const sourceName = "threatcrowd"

func init() {
	if err := registry.Global().Register(
		sourceName,
		func(fetcher ports.Fetcher, logger logx.Logger) (ports.Source, error) {
			return New(fetcher, logger), nil
		},
		ports.SourceMetadata{
			Name:        sourceName,
			Description: "ThreatCrowd domain report",
			Queries:     1,
		},
	); err != nil {
		logx.New().Warn("failed to register threatcrowd source", "error", err.Error())
	}
}

// ThreatCrowd busca en el reporte cualquier string entre comillas que termine en el dominio.
type ThreatCrowd struct {
	*common.BaseHTTPSource
}

// New crea la fuente ThreatCrowd.
func New(fetcher ports.Fetcher, logger logx.Logger) ports.Source {
	return &ThreatCrowd{BaseHTTPSource: common.NewBaseHTTPSource(sourceName, fetcher, logger)}
}

func (t *ThreatCrowd) Search(ctx context.Context, target domain.Target) *domain.HostSet {
	return t.Collect(ctx, target, common.Query{
		URL: fmt.Sprintf("https://www.threatcrowd.org/searchApi/v2/domain/report/?domain=%s", target.Root),
		Extract: common.RegexGroup(
			common.DomainPattern(`(?i)"([a-z0-9\-\.]+\.{domain})"`, target.Root),
		),
	})
}

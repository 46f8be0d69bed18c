// internal/sources/hackertarget/hackertarget.go
package hackertarget

import (
	"context"
	"fmt"

	"subscanner/internal/core/domain"
	"subscanner/internal/core/ports"
	"subscanner/internal/platform/logx"
	"subscanner/internal/platform/registry"
	"subscanner/internal/sources/common"
)

const sourceName = "hackertarget"

func init() {
	if err := registry.Global().Register(
		sourceName,
		func(fetcher ports.Fetcher, logger logx.Logger) (ports.Source, error) {
			return New(fetcher, logger), nil
		},
		ports.SourceMetadata{
			Name:        sourceName,
			Description: "HackerTarget host search (host,ip lines)",
			Queries:     1,
		},
	); err != nil {
		logx.New().Warn("failed to register hackertarget source", "error", err.Error())
	}
}

// HackerTarget consulta la API hostsearch, que responde una línea "host,ip" por resultado.
type HackerTarget struct {
	*common.BaseHTTPSource
}

// New crea la fuente HackerTarget.
func New(fetcher ports.Fetcher, logger logx.Logger) ports.Source {
	return &HackerTarget{BaseHTTPSource: common.NewBaseHTTPSource(sourceName, fetcher, logger)}
}

// Search toma el primer campo de cada línea.
func (h *HackerTarget) Search(ctx context.Context, target domain.Target) *domain.HostSet {
	return h.Collect(ctx, target, common.Query{
		URL:     fmt.Sprintf("https://api.hackertarget.com/hostsearch/?q=%s", target.Root),
		Extract: common.FirstField(","),
	})
}

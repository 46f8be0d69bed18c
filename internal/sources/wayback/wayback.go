// internal/sources/wayback/wayback.go
package wayback

import (
	"context"
	"fmt"

	"subscanner/internal/core/domain"
	"subscanner/internal/core/ports"
	"subscanner/internal/platform/logx"
	"subscanner/internal/platform/registry"
	"subscanner/internal/sources/common"
)

const sourceName = "wayback"

func init() {
	if err := registry.Global().Register(
		sourceName,
		func(fetcher ports.Fetcher, logger logx.Logger) (ports.Source, error) {
			return New(fetcher, logger), nil
		},
		ports.SourceMetadata{
			Name:        sourceName,
			Description: "Wayback Machine CDX index of archived URLs",
			Queries:     1,
		},
	); err != nil {
		logx.New().Warn("failed to register wayback source", "error", err.Error())
	}
}

// Wayback extrae el host de cada URL archivada bajo *.domain.
type Wayback struct {
	*common.BaseHTTPSource
}

// New crea la fuente Wayback Machine.
func New(fetcher ports.Fetcher, logger logx.Logger) ports.Source {
	return &Wayback{BaseHTTPSource: common.NewBaseHTTPSource(sourceName, fetcher, logger)}
}

// Search consulta el índice CDX colapsado por urlkey.
func (w *Wayback) Search(ctx context.Context, target domain.Target) *domain.HostSet {
	return w.Collect(ctx, target, common.Query{
		URL: fmt.Sprintf("https://web.archive.org/cdx/search/cdx?url=*.%s/*&output=json&fl=original&collapse=urlkey", target.Root),
		Extract: common.RegexGroup(
			common.DomainPattern(`(?i)https?://([a-z0-9\-\.]+\.{domain})`, target.Root),
		),
	})
}

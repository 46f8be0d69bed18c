// internal/sources/commoncrawl/commoncrawl.go
package commoncrawl

import (
	"context"
	"fmt"

	"subscanner/internal/core/domain"
	"subscanner/internal/core/ports"
	"subscanner/internal/platform/logx"
	"subscanner/internal/platform/registry"
	"subscanner/internal/sources/common"
)

const (
	sourceName = "commoncrawl"

	// Índice fijo; los índices más recientes rotan cada pocos meses
	crawlIndex = "CC-MAIN-2024-10"
)

func init() {
	if err := registry.Global().Register(
		sourceName,
		func(fetcher ports.Fetcher, logger logx.Logger) (ports.Source, error) {
			return New(fetcher, logger), nil
		},
		ports.SourceMetadata{
			Name:        sourceName,
			Description: "Common Crawl URL index (" + crawlIndex + ")",
			Queries:     1,
		},
	); err != nil {
		logx.New().Warn("failed to register commoncrawl source", "error", err.Error())
	}
}

// CommonCrawl extrae el host de las URLs indexadas por Common Crawl.
type CommonCrawl struct {
	*common.BaseHTTPSource
}

// New crea la fuente CommonCrawl.
func New(fetcher ports.Fetcher, logger logx.Logger) ports.Source {
	return &CommonCrawl{BaseHTTPSource: common.NewBaseHTTPSource(sourceName, fetcher, logger)}
}

// Search consulta el índice (una línea JSON por captura).
func (c *CommonCrawl) Search(ctx context.Context, target domain.Target) *domain.HostSet {
	return c.Collect(ctx, target, common.Query{
		URL: fmt.Sprintf("https://index.commoncrawl.org/%s-index?url=*.%s&output=json", crawlIndex, target.Root),
		Extract: common.RegexGroup(
			common.DomainPattern(`(?i)"url":\s*"https?://([a-z0-9\-\.]+\.{domain})`, target.Root),
		),
	})
}

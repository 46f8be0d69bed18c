// internal/sources/alienvault/alienvault.go
package alienvault

import (
	"context"
	"fmt"
	"regexp"

	"subscanner/internal/core/domain"
	"subscanner/internal/core/ports"
	"subscanner/internal/platform/logx"
	"subscanner/internal/platform/registry"
	"subscanner/internal/sources/common"
)

const sourceName = "alienvault"

// hostnamePattern tolera espacios tras los dos puntos del JSON.
var hostnamePattern = regexp.MustCompile(`"hostname":\s*"([^"]+)"`)

func init() {
	if err := registry.Global().Register(
		sourceName,
		func(fetcher ports.Fetcher, logger logx.Logger) (ports.Source, error) {
			return New(fetcher, logger), nil
		},
		ports.SourceMetadata{
			Name:        sourceName,
			Description: "AlienVault OTX passive DNS",
			Queries:     1,
		},
	); err != nil {
		logx.New().Warn("failed to register alienvault source", "error", err.Error())
	}
}

// AlienVault consulta el passive DNS de Open Threat Exchange.
type AlienVault struct {
	*common.BaseHTTPSource
}

// New crea la fuente AlienVault OTX.
func New(fetcher ports.Fetcher, logger logx.Logger) ports.Source {
	return &AlienVault{BaseHTTPSource: common.NewBaseHTTPSource(sourceName, fetcher, logger)}
}

// Search extrae cada campo hostname del cuerpo.
func (a *AlienVault) Search(ctx context.Context, target domain.Target) *domain.HostSet {
	return a.Collect(ctx, target, common.Query{
		URL:     fmt.Sprintf("https://otx.alienvault.com/api/v1/indicators/domain/%s/passive_dns", target.Root),
		Extract: common.RegexGroup(hostnamePattern),
	})
}

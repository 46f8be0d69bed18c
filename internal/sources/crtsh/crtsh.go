// internal/sources/crtsh/crtsh.go
package crtsh

import (
	"context"
	"encoding/json"
	"fmt"

	"subscanner/internal/core/domain"
	"subscanner/internal/core/ports"
	perrors "subscanner/internal/platform/errors"
	"subscanner/internal/platform/logx"
	"subscanner/internal/platform/registry"
	"subscanner/internal/sources/common"
)

const sourceName = "crt.sh"

// Auto-registro de la source al importar el package
func init() {
	if err := registry.Global().Register(
		sourceName,
		func(fetcher ports.Fetcher, logger logx.Logger) (ports.Source, error) {
			return New(fetcher, logger), nil
		},
		ports.SourceMetadata{
			Name:        sourceName,
			Description: "Certificate Transparency log search (wildcard + common name)",
			Queries:     2,
		},
	); err != nil {
		logx.New().Warn("failed to register crt.sh source", "error", err.Error())
	}
}

// CRT consulta los logs de Certificate Transparency indexados por crt.sh.
// Hace dos búsquedas: por subject comodín (%.domain) y por common name exacto.
type CRT struct {
	*common.BaseHTTPSource
}

// New crea una nueva instancia de la fuente crt.sh.
func New(fetcher ports.Fetcher, logger logx.Logger) ports.Source {
	return &CRT{BaseHTTPSource: common.NewBaseHTTPSource(sourceName, fetcher, logger)}
}

// Search ejecuta ambas consultas y une sus resultados.
func (c *CRT) Search(ctx context.Context, target domain.Target) *domain.HostSet {
	return c.Collect(ctx, target,
		common.Query{
			URL:     fmt.Sprintf("https://crt.sh/?q=%%25.%s&output=json", target.Root),
			Extract: extractNameValues,
		},
		common.Query{
			URL:     fmt.Sprintf("https://crt.sh/?q=%s&output=json", target.Root),
			Extract: extractCommonNames,
		},
	)
}

// certRecord representa un registro de certificado de crt.sh.
type certRecord struct {
	IssuerName string `json:"issuer_name"`
	CommonName string `json:"common_name"`
	NameValue  string `json:"name_value"` // varios nombres separados por \n
}

func decodeRecords(body []byte) ([]certRecord, error) {
	var records []certRecord
	if err := json.Unmarshal(body, &records); err != nil {
		// crt.sh devuelve HTML cuando está saturado
		return nil, perrors.Errorf("%w: %v", perrors.ErrInvalidResponse, err)
	}
	return records, nil
}

func extractNameValues(body []byte) ([]string, error) {
	records, err := decodeRecords(body)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.NameValue)
	}
	return out, nil
}

func extractCommonNames(body []byte) ([]string, error) {
	records, err := decodeRecords(body)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.CommonName)
	}
	return out, nil
}

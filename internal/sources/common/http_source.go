// Package common provides shared abstractions for source implementations.
package common

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"subscanner/internal/core/domain"
	"subscanner/internal/core/ports"
	"subscanner/internal/platform/logx"
)

// Extractor pulls raw candidate strings out of a response body.
// Candidates need not be clean; BaseHTTPSource normalizes them.
type Extractor func(body []byte) ([]string, error)

// Query is one HTTP GET issued by a source together with its extraction rule.
type Query struct {
	URL     string
	Extract Extractor
}

// BaseHTTPSource provides common functionality for HTTP-backed sources.
// It owns the enabled flag, fetches every query through the shared Fetcher,
// isolates failures per query and delegates cleanup to the target's normalizer.
//
// Usage:
//  1. Embed *BaseHTTPSource in your source struct
//  2. Build it with NewBaseHTTPSource
//  3. Implement Search by calling Collect with your queries
type BaseHTTPSource struct {
	name    string
	fetcher ports.Fetcher
	logger  logx.Logger
	enabled atomic.Bool
}

// NewBaseHTTPSource creates an enabled BaseHTTPSource.
func NewBaseHTTPSource(name string, fetcher ports.Fetcher, logger logx.Logger) *BaseHTTPSource {
	if logger == nil {
		logger = logx.Discard()
	}
	b := &BaseHTTPSource{
		name:    name,
		fetcher: fetcher,
		logger:  logger.With("source", name),
	}
	b.enabled.Store(true)
	return b
}

// Name returns the source name.
func (b *BaseHTTPSource) Name() string { return b.name }

// Enabled reports whether the source takes part in the next scan.
func (b *BaseHTTPSource) Enabled() bool { return b.enabled.Load() }

// SetEnabled toggles the source.
func (b *BaseHTTPSource) SetEnabled(enabled bool) { b.enabled.Store(enabled) }

// Logger returns the source-scoped logger.
func (b *BaseHTTPSource) Logger() logx.Logger { return b.logger }

// Collect runs queries in order and unions their normalized hostnames.
// A failing query is logged and contributes nothing; it never aborts the others.
func (b *BaseHTTPSource) Collect(ctx context.Context, target domain.Target, queries ...Query) *domain.HostSet {
	out := domain.NewHostSet()
	start := time.Now()

	for _, q := range queries {
		if ctx.Err() != nil {
			b.logger.Debug("search canceled", "target", target.Root)
			break
		}
		candidates, err := b.run(ctx, q)
		if err != nil {
			b.logger.Warn("query failed", "target", target.Root, "url", q.URL, "error", err.Error())
			continue
		}
		out.UnionWith(target.Normalize(candidates))
	}

	b.logger.Debug("search finished",
		"target", target.Root,
		"found", out.Len(),
		"duration", time.Since(start).String(),
	)
	return out
}

// run performs a single query; a panicking extractor is reported as an error.
func (b *BaseHTTPSource) run(ctx context.Context, q Query) (candidates []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			candidates, err = nil, fmt.Errorf("extractor panicked: %v", r)
		}
	}()

	if b.fetcher == nil {
		return nil, fmt.Errorf("no fetcher configured")
	}
	body, err := b.fetcher.Fetch(ctx, q.URL)
	if err != nil {
		return nil, err
	}
	if q.Extract == nil {
		return []string{string(body)}, nil
	}
	return q.Extract(body)
}

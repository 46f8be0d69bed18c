// internal/core/usecases/resolver.go
package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gammazero/workerpool"

	"subscanner/internal/core/domain"
	"subscanner/internal/core/ports"
	"subscanner/internal/platform/logx"
)

// ErrNoLookuper indica que se pidió resolución sin backend DNS configurado.
var ErrNoLookuper = errors.New("no lookuper configured")

const (
	defaultResolverWorkers = 50
	defaultLookupTimeout   = 5 * time.Second
)

// Resolver resuelve hostnames de forma concurrente y tolera fallos individuales.
type Resolver struct {
	lookuper   ports.Lookuper
	workers    int
	timeout    time.Duration
	logger     logx.Logger
	onResolved func(host, addr string)
}

// ResolverOptions configura el resolver.
type ResolverOptions struct {
	Lookuper      ports.Lookuper
	Workers       int
	LookupTimeout time.Duration
	Logger        logx.Logger

	// OnResolved se invoca tras cada resolución exitosa (opcional)
	OnResolved func(host, addr string)
}

// NewResolver crea un resolver aplicando valores por defecto.
func NewResolver(opts ResolverOptions) *Resolver {
	if opts.Workers <= 0 {
		opts.Workers = defaultResolverWorkers
	}
	if opts.LookupTimeout <= 0 {
		opts.LookupTimeout = defaultLookupTimeout
	}
	if opts.Logger == nil {
		opts.Logger = logx.Discard()
	}

	return &Resolver{
		lookuper:   opts.Lookuper,
		workers:    opts.Workers,
		timeout:    opts.LookupTimeout,
		logger:     opts.Logger.With("component", "resolver"),
		onResolved: opts.OnResolved,
	}
}

// Resolve lanza una búsqueda por hostname y retorna hostname -> primera dirección.
// Los fallos y respuestas vacías se omiten sin error. Solo la cancelación de ctx
// se reporta, junto con el mapa parcial.
func (r *Resolver) Resolve(ctx context.Context, hosts []string) (map[string]string, error) {
	if r.lookuper == nil {
		return nil, ErrNoLookuper
	}

	unique := domain.NewHostSet(hosts...).Sorted()
	resolved := NewResolutionMap()
	if len(unique) == 0 {
		return resolved.Snapshot(), nil
	}

	workers := r.workers
	if workers > len(unique) {
		workers = len(unique)
	}

	r.logger.Debug("resolving hosts", "hosts", len(unique), "workers", workers)

	pool := workerpool.New(workers)
	for _, host := range unique {
		pool.Submit(func() {
			if addr, ok := r.lookup(ctx, host); ok {
				resolved.Set(host, addr)
				if r.onResolved != nil {
					r.onResolved(host, addr)
				}
			}
		})
	}
	pool.StopWait()

	if err := ctx.Err(); err != nil {
		return resolved.Snapshot(), fmt.Errorf("%w: %w", domain.ErrScanCanceled, err)
	}
	return resolved.Snapshot(), nil
}

// lookup resuelve un host con su propio timeout; cualquier fallo es un "no".
func (r *Resolver) lookup(ctx context.Context, host string) (addr string, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Warn("lookup panicked", "host", host, "panic", rec)
			addr, ok = "", false
		}
	}()

	if ctx.Err() != nil {
		return "", false
	}

	lctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	addrs, err := r.lookuper.LookupHost(lctx, host)
	if err != nil {
		r.logger.Debug("lookup failed", "host", host, "error", err.Error())
		return "", false
	}
	if len(addrs) == 0 || addrs[0] == "" {
		r.logger.Debug("lookup returned no addresses", "host", host)
		return "", false
	}
	return addrs[0], true
}

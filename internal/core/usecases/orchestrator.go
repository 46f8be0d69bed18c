// internal/core/usecases/orchestrator.go
package usecases

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gammazero/workerpool"

	"subscanner/internal/core/domain"
	"subscanner/internal/core/ports"
	"subscanner/internal/platform/logx"
)

// Orchestrator coordina la ejecución concurrente de las fuentes habilitadas,
// fusiona sus resultados en un conjunto deduplicado y, opcionalmente, los resuelve.
type Orchestrator struct {
	mu      sync.RWMutex
	sources []ports.Source

	logger     logx.Logger
	dispatcher *Dispatcher
	resolver   *Resolver

	// Configuración
	maxWorkers int
}

// OrchestratorOptions configura el orchestrator.
type OrchestratorOptions struct {
	Sources   []ports.Source
	Logger    logx.Logger
	Observers []ports.Notifier

	// MaxWorkers limita las fuentes en paralelo (0 = una unidad por fuente habilitada)
	MaxWorkers int

	// Resolución
	Lookuper        ports.Lookuper
	ResolverWorkers int
	LookupTimeout   time.Duration
}

// NewOrchestrator crea una nueva instancia del orchestrator.
func NewOrchestrator(opts OrchestratorOptions) *Orchestrator {
	if opts.MaxWorkers < 0 {
		opts.MaxWorkers = 0
	}
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}

	o := &Orchestrator{
		logger:     opts.Logger.With("component", "orchestrator"),
		dispatcher: NewDispatcher(opts.Observers, 0, opts.Logger),
		maxWorkers: opts.MaxWorkers,
	}
	for _, s := range opts.Sources {
		o.AddSource(s)
	}

	o.resolver = NewResolver(ResolverOptions{
		Lookuper:      opts.Lookuper,
		Workers:       opts.ResolverWorkers,
		LookupTimeout: opts.LookupTimeout,
		Logger:        opts.Logger,
		OnResolved: func(host, addr string) {
			o.dispatcher.Publish(ports.Event{
				Type:    ports.EventTypeHostResolved,
				Source:  host,
				Address: addr,
			})
		},
	})

	return o
}

// AddSource registra una fuente. Una fuente con el mismo nombre (sin distinguir
// mayúsculas) reemplaza a la anterior.
func (o *Orchestrator) AddSource(s ports.Source) {
	if s == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	for i, existing := range o.sources {
		if strings.EqualFold(existing.Name(), s.Name()) {
			o.logger.Warn("replacing source with duplicate name", "source", s.Name())
			o.sources[i] = s
			return
		}
	}
	o.sources = append(o.sources, s)
}

// Sources retorna una copia de las fuentes registradas.
func (o *Orchestrator) Sources() []ports.Source {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return append([]ports.Source(nil), o.sources...)
}

// SetEnabled habilita o deshabilita una fuente por nombre, sin distinguir mayúsculas.
func (o *Orchestrator) SetEnabled(name string, enabled bool) error {
	o.mu.RLock()
	defer o.mu.RUnlock()

	for _, s := range o.sources {
		if strings.EqualFold(s.Name(), strings.TrimSpace(name)) {
			s.SetEnabled(enabled)
			o.logger.Debug("source toggled", "source", s.Name(), "enabled", enabled)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrUnknownSource, name)
}

// enabledSources filtra las fuentes habilitadas en el momento de la llamada.
func (o *Orchestrator) enabledSources() []ports.Source {
	o.mu.RLock()
	defer o.mu.RUnlock()

	var enabled []ports.Source
	for _, s := range o.sources {
		if s.Enabled() {
			enabled = append(enabled, s)
		}
	}
	return enabled
}

// Scan ejecuta las fuentes habilitadas y retorna los hostnames ordenados.
// Solo falla por un target inválido o por cancelación; en este último caso
// también retorna lo recolectado hasta entonces, ordenado.
func (o *Orchestrator) Scan(ctx context.Context, target domain.Target) ([]string, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	set, _, err := o.scan(ctx, target)
	return set.Sorted(), err
}

// Resolve resuelve hosts a su primera dirección; los fallos se omiten.
func (o *Orchestrator) Resolve(ctx context.Context, hosts []string) (map[string]string, error) {
	o.dispatcher.Publish(ports.NewEvent(ports.EventTypeResolveStarted, "resolver", len(hosts)))

	resolved, err := o.resolver.Resolve(ctx, hosts)

	if resolved != nil {
		o.dispatcher.Publish(ports.NewEvent(ports.EventTypeResolveCompleted, "resolver", len(resolved)))
	}
	return resolved, err
}

// Run ejecuta escaneo y, si resolve es true, resolución, retornando el informe completo.
func (o *Orchestrator) Run(ctx context.Context, target domain.Target, resolve bool) (*domain.ScanResult, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}

	result := domain.NewScanResult(target)
	result.Metadata.TotalSources = len(o.Sources())

	set, stats, err := o.scan(ctx, target)
	result.Hostnames = set.Sorted()
	for _, st := range stats {
		result.AddSourceStat(st)
	}
	if err != nil {
		result.Metadata.Canceled = true
		result.Finalize()
		return result, err
	}

	if resolve {
		resolved, err := o.Resolve(ctx, result.Hostnames)
		result.Resolved = resolved
		if err != nil {
			result.Metadata.Canceled = domain.IsCanceled(err)
			result.Finalize()
			return result, err
		}
	}

	result.Finalize()
	o.logger.Info("scan completed",
		"target", target.Root,
		"subdomains", len(result.Hostnames),
		"resolved", len(result.Resolved),
		"duration_ms", result.Metadata.Duration.Milliseconds(),
	)
	return result, nil
}

// scan es el fan-out sobre un target ya validado.
func (o *Orchestrator) scan(ctx context.Context, target domain.Target) (*ResultSet, []domain.SourceStat, error) {
	results := NewResultSet()
	stats := &sourceStats{}
	sources := o.enabledSources()

	o.logger.Info("starting scan",
		"target", target.Root,
		"sources", len(sources),
		"strict_suffix", target.StrictSuffix,
	)
	o.dispatcher.Publish(ports.Event{
		Type:   ports.EventTypeScanStarted,
		Target: target.Root,
		Count:  len(sources),
	})

	if len(sources) > 0 {
		workers := o.maxWorkers
		if workers == 0 || workers > len(sources) {
			workers = len(sources)
		}

		pool := workerpool.New(workers)
		for _, s := range sources {
			pool.Submit(func() {
				o.executeSource(ctx, s, target, results, stats)
			})
		}
		pool.StopWait()
	} else {
		o.logger.Warn("no enabled sources")
	}

	if err := ctx.Err(); err != nil {
		o.logger.Warn("scan canceled", "target", target.Root, "collected", results.Len(), "reason", err.Error())
		o.dispatcher.Publish(ports.Event{
			Type:   ports.EventTypeScanCanceled,
			Target: target.Root,
			Count:  results.Len(),
		})
		return results, stats.list(), fmt.Errorf("%w: %w", domain.ErrScanCanceled, err)
	}

	o.dispatcher.Publish(ports.Event{
		Type:   ports.EventTypeScanCompleted,
		Target: target.Root,
		Count:  results.Len(),
	})
	return results, stats.list(), nil
}

// executeSource ejecuta una fuente individual. Un pánico se contiene aquí y
// degrada el aporte de la fuente a vacío.
func (o *Orchestrator) executeSource(
	ctx context.Context,
	source ports.Source,
	target domain.Target,
	results *ResultSet,
	stats *sourceStats,
) {
	name := source.Name()
	if ctx.Err() != nil {
		o.logger.Debug("skipping source, scan canceled", "source", name)
		return
	}

	start := time.Now()
	found := 0
	defer func() {
		if r := recover(); r != nil {
			o.logger.Warn("source panicked", "source", name, "panic", r)
			found = 0
		}
		elapsed := time.Since(start)
		stats.add(domain.SourceStat{Name: name, Found: found, Duration: elapsed})
		o.dispatcher.Publish(ports.Event{
			Type:     ports.EventTypeSourceCompleted,
			Source:   name,
			Count:    found,
			Duration: elapsed,
		})
	}()

	o.dispatcher.Publish(ports.NewEvent(ports.EventTypeSourceStarted, name, 0))

	// I/O sin lock
	hosts := source.Search(ctx, target)
	inScope := o.filterInScope(name, hosts, target)
	found = inScope.Len()

	added := results.Merge(inScope)
	o.logger.Debug("source completed", "source", name, "found", found, "new", added)
}

// filterInScope garantiza que solo entren hostnames válidos del target,
// aunque una fuente no normalice correctamente.
func (o *Orchestrator) filterInScope(name string, hosts *domain.HostSet, target domain.Target) *domain.HostSet {
	out := domain.NewHostSet()
	rejected := 0
	for _, h := range hosts.Sorted() {
		lh := strings.ToLower(h)
		if target.Accepts(lh) {
			out.Add(lh)
		} else {
			rejected++
		}
	}
	if rejected > 0 {
		o.logger.Debug("dropped out-of-scope hosts", "source", name, "count", rejected)
	}
	return out
}

// Close detiene el dispatcher de eventos tras entregar los pendientes.
func (o *Orchestrator) Close() error {
	return o.dispatcher.Close()
}

// internal/platform/registry/source_registry.go
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"subscanner/internal/core/ports"
	"subscanner/internal/platform/logx"
)

// SourceRegistry gestiona el registro y construcción de sources.
// Implementa el patrón Registry + Factory para desacoplar la creación
// de sources del código de aplicación. Los nombres no distinguen mayúsculas.
type SourceRegistry struct {
	mu        sync.RWMutex
	factories map[string]SourceFactory
	metadata  map[string]ports.SourceMetadata
	logger    logx.Logger
}

// SourceFactory es una función que crea una instancia de Source sobre el transporte compartido.
type SourceFactory func(fetcher ports.Fetcher, logger logx.Logger) (ports.Source, error)

// globalRegistry es la instancia global del registry.
var globalRegistry *SourceRegistry
var once sync.Once

// Global retorna la instancia global del registry.
func Global() *SourceRegistry {
	once.Do(func() {
		globalRegistry = NewSourceRegistry(logx.New())
	})
	return globalRegistry
}

// NewSourceRegistry crea un nuevo registry de sources.
func NewSourceRegistry(logger logx.Logger) *SourceRegistry {
	return &SourceRegistry{
		factories: make(map[string]SourceFactory),
		metadata:  make(map[string]ports.SourceMetadata),
		logger:    logger.With("component", "source-registry"),
	}
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register registra una source factory con su metadata.
// Típicamente llamado desde init() de cada source package.
func (r *SourceRegistry) Register(name string, factory SourceFactory, meta ports.SourceMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key(name)
	if k == "" {
		return fmt.Errorf("source name cannot be empty")
	}

	if factory == nil {
		return fmt.Errorf("factory cannot be nil for source %s", name)
	}

	if _, exists := r.factories[k]; exists {
		return fmt.Errorf("source %s is already registered", name)
	}

	if meta.Name == "" {
		meta.Name = name
	}

	r.factories[k] = factory
	r.metadata[k] = meta
	r.logger.Debug("source registered", "name", name, "queries", meta.Queries)

	return nil
}

// MustRegister es Register para init(): un nombre duplicado es un error de programación.
func (r *SourceRegistry) MustRegister(name string, factory SourceFactory, meta ports.SourceMetadata) {
	if err := r.Register(name, factory, meta); err != nil {
		panic(err)
	}
}

// Build construye todas las sources registradas, ordenadas por nombre.
// Una factory que falla se registra en el log y se omite.
func (r *SourceRegistry) Build(fetcher ports.Fetcher, logger logx.Logger) ([]ports.Source, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Validación (fail-fast)
	if fetcher == nil {
		return nil, fmt.Errorf("fetcher cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	names := make([]string, 0, len(r.factories))
	for k := range r.factories {
		names = append(names, k)
	}
	sort.Strings(names)

	sources := make([]ports.Source, 0, len(names))
	for _, k := range names {
		source, err := r.factories[k](fetcher, logger)
		if err != nil {
			r.logger.Warn("source build error", "source", k, "error", err.Error())
			continue
		}
		sources = append(sources, source)
	}

	if len(sources) == 0 && len(names) > 0 {
		return nil, fmt.Errorf("no sources could be built")
	}

	logger.Debug("sources built", "count", len(sources), "registered", len(names))
	return sources, nil
}

// List retorna los nombres de todas las sources registradas, ordenados.
func (r *SourceRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.metadata))
	for _, meta := range r.metadata {
		names = append(names, meta.Name)
	}
	sort.Strings(names)
	return names
}

// GetMetadata retorna el metadata de una source.
func (r *SourceRegistry) GetMetadata(name string) (ports.SourceMetadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meta, exists := r.metadata[key(name)]
	return meta, exists
}

// GetAllMetadata retorna el metadata de todas las sources, ordenado por nombre.
func (r *SourceRegistry) GetAllMetadata() []ports.SourceMetadata {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]ports.SourceMetadata, 0, len(r.metadata))
	for _, meta := range r.metadata {
		result = append(result, meta)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// IsRegistered verifica si una source está registrada.
func (r *SourceRegistry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[key(name)]
	return exists
}

// Clear elimina todas las sources registradas (útil para testing).
func (r *SourceRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories = make(map[string]SourceFactory)
	r.metadata = make(map[string]ports.SourceMetadata)
}

// internal/core/usecases/result_set.go
package usecases

import (
	"sync"

	"subscanner/internal/core/domain"
)

// ResultSet es el conjunto compartido de hostnames de un escaneo.
// El lock se toma solo durante la unión, nunca durante I/O.
type ResultSet struct {
	mu    sync.Mutex
	hosts *domain.HostSet
}

// NewResultSet crea un conjunto vacío.
func NewResultSet() *ResultSet {
	return &ResultSet{hosts: domain.NewHostSet()}
}

// Merge une hosts al conjunto y retorna cuántos eran nuevos.
// La operación es conmutativa e idempotente.
func (r *ResultSet) Merge(hosts *domain.HostSet) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hosts.UnionWith(hosts)
}

// Len retorna el tamaño actual.
func (r *ResultSet) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hosts.Len()
}

// Sorted congela el conjunto como secuencia ordenada.
func (r *ResultSet) Sorted() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hosts.Sorted()
}

// ResolutionMap acumula hostname -> primera dirección bajo la misma disciplina de lock.
type ResolutionMap struct {
	mu sync.Mutex
	m  map[string]string
}

// NewResolutionMap crea un mapa vacío.
func NewResolutionMap() *ResolutionMap {
	return &ResolutionMap{m: make(map[string]string)}
}

// Set registra la dirección de host; la primera escritura gana.
func (r *ResolutionMap) Set(host, addr string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.m[host]; !ok {
		r.m[host] = addr
	}
}

// Len retorna el número de hosts resueltos.
func (r *ResolutionMap) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.m)
}

// Snapshot retorna una copia del mapa.
func (r *ResolutionMap) Snapshot() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]string, len(r.m))
	for k, v := range r.m {
		out[k] = v
	}
	return out
}

// sourceStats registra estadísticas por fuente en orden de finalización.
type sourceStats struct {
	mu    sync.Mutex
	stats []domain.SourceStat
}

func (s *sourceStats) add(stat domain.SourceStat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = append(s.stats, stat)
}

func (s *sourceStats) list() []domain.SourceStat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.SourceStat(nil), s.stats...)
}

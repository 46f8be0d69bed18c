// internal/core/domain/hostset.go
package domain

import (
	"slices"
	"strings"
)

// HostSet es un conjunto de hostnames único sin distinguir mayúsculas.
// Conserva la primera forma insertada. No es seguro para uso concurrente;
// el orchestrator lo protege con su propio lock.
type HostSet struct {
	items map[string]string
}

// NewHostSet crea un conjunto con los hosts dados.
func NewHostSet(hosts ...string) *HostSet {
	s := &HostSet{items: make(map[string]string, len(hosts))}
	for _, h := range hosts {
		s.Add(h)
	}
	return s
}

// Add inserta host; retorna false si ya existía.
func (s *HostSet) Add(host string) bool {
	if s.items == nil {
		s.items = make(map[string]string)
	}
	key := strings.ToLower(host)
	if _, ok := s.items[key]; ok {
		return false
	}
	s.items[key] = host
	return true
}

// UnionWith añade todos los elementos de other y retorna cuántos eran nuevos.
func (s *HostSet) UnionWith(other *HostSet) int {
	if other == nil {
		return 0
	}
	added := 0
	for _, h := range other.items {
		if s.Add(h) {
			added++
		}
	}
	return added
}

// Contains reporta si host está en el conjunto.
func (s *HostSet) Contains(host string) bool {
	if s == nil {
		return false
	}
	_, ok := s.items[strings.ToLower(host)]
	return ok
}

// Len retorna el número de elementos.
func (s *HostSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Sorted retorna los elementos ordenados lexicográficamente, sin distinguir mayúsculas.
func (s *HostSet) Sorted() []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, 0, len(s.items))
	for _, h := range s.items {
		out = append(out, h)
	}
	slices.SortFunc(out, CompareHosts)
	return out
}

// CompareHosts ordena hostnames sin distinguir mayúsculas.
func CompareHosts(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

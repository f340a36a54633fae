// Package syncgraph provides a thread-safe wrapper around graph.Graph for
// callers that share one graph between goroutines.
package syncgraph

import (
	"sync"

	"github.com/vk/graphlib/internal/graph"
)

// Graph guards a single graph.Graph with a read/write mutex. Readers run
// concurrently; a writer runs alone and its changes are never observed half
// applied.
type Graph[N, E any] struct {
	mu sync.RWMutex
	g  *graph.Graph[N, E]
}

// New wraps g. The caller must not use g directly afterwards.
func New[N, E any](g *graph.Graph[N, E]) *Graph[N, E] {
	return &Graph[N, E]{g: g}
}

// View runs fn with shared access. fn must not mutate the graph or keep it
// after returning.
func (s *Graph[N, E]) View(fn func(g *graph.Graph[N, E])) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.g)
}

// Update runs fn with exclusive access and returns its error.
func (s *Graph[N, E]) Update(fn func(g *graph.Graph[N, E]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.g)
}

// Snapshot returns an independent copy of the wrapped graph.
func (s *Graph[N, E]) Snapshot() *graph.Graph[N, E] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.g.FilterNodes(func(string) bool { return true })
}

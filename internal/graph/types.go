package graph

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Edge describes a single edge. For undirected graphs V <= W always holds, and
// Name is empty unless the graph is a multigraph.
type Edge struct {
	V    string
	W    string
	Name string
}

// edgeKey is the canonical identity of a stored edge.
type edgeKey struct {
	v, w, name string
}

func (k edgeKey) edge() Edge {
	return Edge{V: k.v, W: k.w, Name: k.name}
}

// other returns the endpoint of e opposite to v.
func (e Edge) other(v string) string {
	if e.V == v {
		return e.W
	}
	return e.V
}

type edgeEntry[E any] struct {
	edge  Edge
	label E
}

// incidence holds the edges entering and leaving one node.
type incidence struct {
	in  *orderedmap.OrderedMap[edgeKey, Edge]
	out *orderedmap.OrderedMap[edgeKey, Edge]
}

func newIncidence() *incidence {
	return &incidence{
		in:  orderedmap.New[edgeKey, Edge](),
		out: orderedmap.New[edgeKey, Edge](),
	}
}

// defaultLabel is either a constant or a factory keyed by K.
type defaultLabel[K, T any] struct {
	value   T
	factory func(K) T
}

func (d defaultLabel[K, T]) resolve(k K) T {
	if d.factory != nil {
		return d.factory(k)
	}
	return d.value
}

// Graph is an in-memory graph with string node ids, node labels of type N and
// edge labels of type E. The zero value is not usable; create graphs with New.
type Graph[N, E any] struct {
	directed   bool
	multigraph bool
	compound   bool

	label    string
	hasLabel bool

	defaultNode defaultLabel[string, N]
	defaultEdge defaultLabel[Edge, E]

	nodes *orderedmap.OrderedMap[string, N]
	edges *orderedmap.OrderedMap[edgeKey, *edgeEntry[E]]
	adj   map[string]*incidence

	// parent only holds nodes that have one; roots lists the rest in
	// insertion order.
	parent   map[string]string
	children map[string]*orderedmap.OrderedMap[string, struct{}]
	roots    *orderedmap.OrderedMap[string, struct{}]
}

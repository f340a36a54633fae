package graph

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Option configures the mode flags of a new Graph.
type Option func(*options)

type options struct {
	directed   bool
	multigraph bool
	compound   bool
}

// WithDirected sets whether edges have an orientation. Graphs are directed
// unless told otherwise.
func WithDirected(directed bool) Option {
	return func(o *options) { o.directed = directed }
}

// WithMultigraph allows more than one edge per node pair, told apart by name.
func WithMultigraph(multigraph bool) Option {
	return func(o *options) { o.multigraph = multigraph }
}

// WithCompound enables the parent/child hierarchy.
func WithCompound(compound bool) Option {
	return func(o *options) { o.compound = compound }
}

// New creates and returns an initialized, empty Graph.
func New[N, E any](opts ...Option) *Graph[N, E] {
	o := options{directed: true}
	for _, opt := range opts {
		opt(&o)
	}

	g := &Graph[N, E]{
		directed:   o.directed,
		multigraph: o.multigraph,
		compound:   o.compound,
		nodes:      orderedmap.New[string, N](),
		edges:      orderedmap.New[edgeKey, *edgeEntry[E]](),
		adj:        make(map[string]*incidence),
	}
	if g.compound {
		g.parent = make(map[string]string)
		g.children = make(map[string]*orderedmap.OrderedMap[string, struct{}])
		g.roots = orderedmap.New[string, struct{}]()
	}
	return g
}

// IsDirected reports whether the graph edges have an orientation.
func (g *Graph[N, E]) IsDirected() bool { return g.directed }

// IsMultigraph reports whether a node pair may carry several named edges.
func (g *Graph[N, E]) IsMultigraph() bool { return g.multigraph }

// IsCompound reports whether nodes may have a parent.
func (g *Graph[N, E]) IsCompound() bool { return g.compound }

// SetGraph sets the graph-level label.
func (g *Graph[N, E]) SetGraph(label string) *Graph[N, E] {
	g.label = label
	g.hasLabel = true
	return g
}

// GraphLabel returns the graph-level label and whether one was ever set.
func (g *Graph[N, E]) GraphLabel() (string, bool) {
	return g.label, g.hasLabel
}

// SetDefaultNodeLabel makes label the value given to nodes created without one.
func (g *Graph[N, E]) SetDefaultNodeLabel(label N) *Graph[N, E] {
	g.defaultNode = defaultLabel[string, N]{value: label}
	return g
}

// SetDefaultNodeLabelFunc makes fn produce the label of nodes created without
// one. fn receives the node id and is called once per created node.
func (g *Graph[N, E]) SetDefaultNodeLabelFunc(fn func(v string) N) *Graph[N, E] {
	g.defaultNode = defaultLabel[string, N]{factory: fn}
	return g
}

// SetDefaultEdgeLabel makes label the value given to edges created without one.
func (g *Graph[N, E]) SetDefaultEdgeLabel(label E) *Graph[N, E] {
	g.defaultEdge = defaultLabel[Edge, E]{value: label}
	return g
}

// SetDefaultEdgeLabelFunc makes fn produce the label of edges created without
// one. fn receives the canonical edge and is called once per created edge.
func (g *Graph[N, E]) SetDefaultEdgeLabelFunc(fn func(e Edge) E) *Graph[N, E] {
	g.defaultEdge = defaultLabel[Edge, E]{factory: fn}
	return g
}

// emptyCopy returns a graph with the same flags, graph label and default
// label rules but no nodes or edges.
func (g *Graph[N, E]) emptyCopy() *Graph[N, E] {
	c := New[N, E](
		WithDirected(g.directed),
		WithMultigraph(g.multigraph),
		WithCompound(g.compound),
	)
	c.label, c.hasLabel = g.label, g.hasLabel
	c.defaultNode = g.defaultNode
	c.defaultEdge = g.defaultEdge
	return c
}

func keys[K comparable, V any](m *orderedmap.OrderedMap[K, V]) []K {
	out := make([]K, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

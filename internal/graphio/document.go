package graphio

import (
	"github.com/pkg/errors"

	"github.com/vk/graphlib/internal/graph"
)

// Options carries the graph mode flags.
type Options struct {
	Directed   bool `json:"directed" yaml:"directed"`
	Multigraph bool `json:"multigraph" yaml:"multigraph"`
	Compound   bool `json:"compound" yaml:"compound"`
}

// Node is one serialized node.
type Node[N any] struct {
	V      string `json:"v" yaml:"v"`
	Value  N      `json:"value" yaml:"value"`
	Parent string `json:"parent,omitempty" yaml:"parent,omitempty"`
}

// Edge is one serialized edge.
type Edge[E any] struct {
	V     string `json:"v" yaml:"v"`
	W     string `json:"w" yaml:"w"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Value E      `json:"value" yaml:"value"`
}

// Document is the serialized form of a graph. A nil Options means a directed,
// simple, flat graph.
type Document[N, E any] struct {
	Options *Options  `json:"options,omitempty" yaml:"options,omitempty"`
	Nodes   []Node[N] `json:"nodes" yaml:"nodes"`
	Edges   []Edge[E] `json:"edges" yaml:"edges"`
	Value   *string   `json:"value,omitempty" yaml:"value,omitempty"`
}

// Write renders g as a Document.
func Write[N, E any](g *graph.Graph[N, E]) *Document[N, E] {
	doc := &Document[N, E]{
		Options: &Options{
			Directed:   g.IsDirected(),
			Multigraph: g.IsMultigraph(),
			Compound:   g.IsCompound(),
		},
		Nodes: make([]Node[N], 0, g.NodeCount()),
		Edges: make([]Edge[E], 0, g.EdgeCount()),
	}
	if label, ok := g.GraphLabel(); ok {
		doc.Value = &label
	}

	for _, v := range g.Nodes() {
		value, _ := g.Node(v)
		n := Node[N]{V: v, Value: value}
		if p, ok := g.Parent(v); ok {
			n.Parent = p
		}
		doc.Nodes = append(doc.Nodes, n)
	}
	for _, e := range g.Edges() {
		value, _ := g.EdgeFor(e)
		doc.Edges = append(doc.Edges, Edge[E]{V: e.V, W: e.W, Name: e.Name, Value: value})
	}
	return doc
}

// Read rebuilds a graph from doc. It fails when a parent link is invalid for
// the declared flags.
func Read[N, E any](doc *Document[N, E]) (*graph.Graph[N, E], error) {
	opts := Options{Directed: true}
	if doc.Options != nil {
		opts = *doc.Options
	}

	g := graph.New[N, E](
		graph.WithDirected(opts.Directed),
		graph.WithMultigraph(opts.Multigraph),
		graph.WithCompound(opts.Compound),
	)
	if doc.Value != nil {
		g.SetGraph(*doc.Value)
	}

	for _, n := range doc.Nodes {
		g.SetNode(n.V, n.Value)
	}
	for _, n := range doc.Nodes {
		if n.Parent == "" {
			continue
		}
		if err := g.SetParent(n.V, n.Parent); err != nil {
			return nil, errors.Wrapf(err, "read node %q", n.V)
		}
	}
	for _, e := range doc.Edges {
		g.SetNamedEdge(e.V, e.W, e.Name, e.Value)
	}
	return g, nil
}

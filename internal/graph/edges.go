package graph

// key builds the canonical identity of the edge (v, w, name).
func (g *Graph[N, E]) key(v, w, name string) edgeKey {
	if !g.directed && v > w {
		v, w = w, v
	}
	if !g.multigraph {
		name = ""
	}
	return edgeKey{v: v, w: w, name: name}
}

// SetEdge creates the edge v -> w or updates its label. Missing endpoints are
// created with the default node label. Without a label an existing edge is
// left untouched and a new edge gets the default edge label.
func (g *Graph[N, E]) SetEdge(v, w string, label ...E) *Graph[N, E] {
	return g.setEdge(g.key(v, w, ""), label)
}

// SetNamedEdge is SetEdge for the edge called name. The name only matters for
// multigraphs; other graphs keep a single edge per node pair.
func (g *Graph[N, E]) SetNamedEdge(v, w, name string, label ...E) *Graph[N, E] {
	return g.setEdge(g.key(v, w, name), label)
}

// SetEdgeFor is SetNamedEdge taking an edge descriptor.
func (g *Graph[N, E]) SetEdgeFor(e Edge, label ...E) *Graph[N, E] {
	return g.setEdge(g.key(e.V, e.W, e.Name), label)
}

func (g *Graph[N, E]) setEdge(k edgeKey, label []E) *Graph[N, E] {
	if entry, ok := g.edges.Get(k); ok {
		if len(label) > 0 {
			entry.label = label[0]
		}
		return g
	}

	g.SetNode(k.v)
	g.SetNode(k.w)

	e := k.edge()
	var l E
	if len(label) > 0 {
		l = label[0]
	} else {
		l = g.defaultEdge.resolve(e)
	}
	g.edges.Set(k, &edgeEntry[E]{edge: e, label: l})

	g.adj[k.v].out.Set(k, e)
	g.adj[k.w].in.Set(k, e)
	if !g.directed {
		g.adj[k.w].out.Set(k, e)
		g.adj[k.v].in.Set(k, e)
	}
	return g
}

// SetPath sets an edge between every consecutive pair of vs. Sequences shorter
// than two nodes do nothing.
func (g *Graph[N, E]) SetPath(vs []string, label ...E) *Graph[N, E] {
	for i := 1; i < len(vs); i++ {
		g.SetEdge(vs[i-1], vs[i], label...)
	}
	return g
}

// Edge returns the label of the edge v -> w with the optional name and whether
// the edge exists.
func (g *Graph[N, E]) Edge(v, w string, name ...string) (E, bool) {
	return g.edgeLabel(g.key(v, w, first(name)))
}

// EdgeFor is Edge taking an edge descriptor.
func (g *Graph[N, E]) EdgeFor(e Edge) (E, bool) {
	return g.edgeLabel(g.key(e.V, e.W, e.Name))
}

func (g *Graph[N, E]) edgeLabel(k edgeKey) (E, bool) {
	entry, ok := g.edges.Get(k)
	if !ok {
		var zero E
		return zero, false
	}
	return entry.label, true
}

// HasEdge reports whether the edge v -> w with the optional name exists.
func (g *Graph[N, E]) HasEdge(v, w string, name ...string) bool {
	_, ok := g.edges.Get(g.key(v, w, first(name)))
	return ok
}

// HasEdgeFor is HasEdge taking an edge descriptor.
func (g *Graph[N, E]) HasEdgeFor(e Edge) bool {
	_, ok := g.edges.Get(g.key(e.V, e.W, e.Name))
	return ok
}

// RemoveEdge deletes the edge v -> w with the optional name. Removing an
// absent edge does nothing.
func (g *Graph[N, E]) RemoveEdge(v, w string, name ...string) *Graph[N, E] {
	g.removeEdge(g.key(v, w, first(name)))
	return g
}

// RemoveEdgeFor is RemoveEdge taking an edge descriptor.
func (g *Graph[N, E]) RemoveEdgeFor(e Edge) *Graph[N, E] {
	g.removeEdge(g.key(e.V, e.W, e.Name))
	return g
}

func (g *Graph[N, E]) removeEdge(k edgeKey) {
	if _, ok := g.edges.Delete(k); !ok {
		return
	}
	for _, v := range [2]string{k.v, k.w} {
		if inc, ok := g.adj[v]; ok {
			inc.in.Delete(k)
			inc.out.Delete(k)
		}
	}
}

// EdgeCount returns the number of edges.
func (g *Graph[N, E]) EdgeCount() int {
	return g.edges.Len()
}

// Edges returns every edge in insertion order.
func (g *Graph[N, E]) Edges() []Edge {
	out := make([]Edge, 0, g.edges.Len())
	for pair := g.edges.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value.edge)
	}
	return out
}

package graph

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// SetNode creates node v or updates its label. Without a label an existing
// node is left untouched and a new node gets the default node label.
func (g *Graph[N, E]) SetNode(v string, label ...N) *Graph[N, E] {
	if _, ok := g.nodes.Get(v); ok {
		if len(label) > 0 {
			g.nodes.Set(v, label[0])
		}
		return g
	}

	var l N
	if len(label) > 0 {
		l = label[0]
	} else {
		l = g.defaultNode.resolve(v)
	}
	g.nodes.Set(v, l)
	g.adj[v] = newIncidence()
	if g.compound {
		g.children[v] = orderedmap.New[string, struct{}]()
		g.roots.Set(v, struct{}{})
	}
	return g
}

// SetNodes calls SetNode for every id in vs with the same optional label.
func (g *Graph[N, E]) SetNodes(vs []string, label ...N) *Graph[N, E] {
	for _, v := range vs {
		g.SetNode(v, label...)
	}
	return g
}

// Node returns the label of node v and whether v exists.
func (g *Graph[N, E]) Node(v string) (N, bool) {
	return g.nodes.Get(v)
}

// HasNode reports whether node v exists.
func (g *Graph[N, E]) HasNode(v string) bool {
	_, ok := g.nodes.Get(v)
	return ok
}

// RemoveNode deletes node v with all incident edges. In a compound graph the
// children of v move to the parent of v, or become roots. Removing an absent
// node does nothing.
func (g *Graph[N, E]) RemoveNode(v string) *Graph[N, E] {
	inc, ok := g.adj[v]
	if !ok {
		return g
	}

	if g.compound {
		p, hasParent := g.parent[v]
		g.detach(v)
		for _, child := range keys(g.children[v]) {
			g.detach(child)
			if hasParent {
				g.attach(child, p)
			} else {
				g.roots.Set(child, struct{}{})
			}
		}
		delete(g.children, v)
		g.roots.Delete(v)
	}

	// Collect first; removeEdge mutates the incidence maps.
	incident := append(keys(inc.in), keys(inc.out)...)
	for _, k := range incident {
		g.removeEdge(k)
	}

	delete(g.adj, v)
	g.nodes.Delete(v)
	return g
}

// NodeCount returns the number of nodes.
func (g *Graph[N, E]) NodeCount() int {
	return g.nodes.Len()
}

// Nodes returns all node ids in insertion order.
func (g *Graph[N, E]) Nodes() []string {
	return keys(g.nodes)
}

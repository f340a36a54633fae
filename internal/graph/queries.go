package graph

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Predecessors returns the nodes with an edge into v, and false if v is
// absent. For undirected graphs it equals Neighbors.
func (g *Graph[N, E]) Predecessors(v string) ([]string, bool) {
	inc, ok := g.adj[v]
	if !ok {
		return nil, false
	}
	return endpoints(v, inc.in), true
}

// Successors returns the nodes with an edge from v, and false if v is absent.
// For undirected graphs it equals Neighbors.
func (g *Graph[N, E]) Successors(v string) ([]string, bool) {
	inc, ok := g.adj[v]
	if !ok {
		return nil, false
	}
	return endpoints(v, inc.out), true
}

// Neighbors returns the predecessors and successors of v without duplicates,
// and false if v is absent.
func (g *Graph[N, E]) Neighbors(v string) ([]string, bool) {
	inc, ok := g.adj[v]
	if !ok {
		return nil, false
	}
	return endpoints(v, inc.in, inc.out), true
}

// endpoints lists the far end of every edge in sets, first occurrence wins.
func endpoints(v string, sets ...*orderedmap.OrderedMap[edgeKey, Edge]) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, set := range sets {
		for pair := set.Oldest(); pair != nil; pair = pair.Next() {
			u := pair.Value.other(v)
			if _, dup := seen[u]; dup {
				continue
			}
			seen[u] = struct{}{}
			out = append(out, u)
		}
	}
	return out
}

// InEdges returns the edges pointing at v, optionally only those coming from
// w, and false if v is absent.
func (g *Graph[N, E]) InEdges(v string, w ...string) ([]Edge, bool) {
	inc, ok := g.adj[v]
	if !ok {
		return nil, false
	}
	return incident(v, w, inc.in), true
}

// OutEdges returns the edges leaving v, optionally only those pointing at w,
// and false if v is absent.
func (g *Graph[N, E]) OutEdges(v string, w ...string) ([]Edge, bool) {
	inc, ok := g.adj[v]
	if !ok {
		return nil, false
	}
	return incident(v, w, inc.out), true
}

// NodeEdges returns the edges to or from v regardless of direction, optionally
// only those between v and w, and false if v is absent.
func (g *Graph[N, E]) NodeEdges(v string, w ...string) ([]Edge, bool) {
	inc, ok := g.adj[v]
	if !ok {
		return nil, false
	}
	return incident(v, w, inc.in, inc.out), true
}

func incident(v string, w []string, sets ...*orderedmap.OrderedMap[edgeKey, Edge]) []Edge {
	seen := make(map[edgeKey]struct{})
	out := []Edge{}
	for _, set := range sets {
		for pair := set.Oldest(); pair != nil; pair = pair.Next() {
			if len(w) > 0 && pair.Value.other(v) != w[0] {
				continue
			}
			if _, dup := seen[pair.Key]; dup {
				continue
			}
			seen[pair.Key] = struct{}{}
			out = append(out, pair.Value)
		}
	}
	return out
}

// Sinks returns the nodes without outgoing edges. In an undirected graph these
// are the isolated nodes.
func (g *Graph[N, E]) Sinks() []string {
	return g.nodesWhere(func(inc *incidence) bool { return inc.out.Len() == 0 })
}

// Sources returns the nodes without incoming edges. In an undirected graph
// these are the isolated nodes.
func (g *Graph[N, E]) Sources() []string {
	return g.nodesWhere(func(inc *incidence) bool { return inc.in.Len() == 0 })
}

func (g *Graph[N, E]) nodesWhere(match func(*incidence) bool) []string {
	out := []string{}
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		if match(g.adj[pair.Key]) {
			out = append(out, pair.Key)
		}
	}
	return out
}

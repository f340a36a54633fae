package graph

// FilterNodes returns a new graph holding the nodes accepted by keep and the
// edges between them. In a compound graph a node is kept only if its whole
// ancestor chain is kept too. The new graph has the same flags, graph label
// and default label rules; labels are copied by value and g is not modified.
// keep is called at most once per node.
func (g *Graph[N, E]) FilterNodes(keep func(v string) bool) *Graph[N, E] {
	out := g.emptyCopy()

	decided := make(map[string]bool, g.nodes.Len())
	var included func(v string) bool
	included = func(v string) bool {
		if ok, done := decided[v]; done {
			return ok
		}
		ok := keep(v)
		if ok && g.compound {
			if p, hasParent := g.parent[v]; hasParent {
				ok = included(p)
			}
		}
		decided[v] = ok
		return ok
	}

	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		if included(pair.Key) {
			out.SetNode(pair.Key, pair.Value)
		}
	}

	if g.compound {
		for pair := out.nodes.Oldest(); pair != nil; pair = pair.Next() {
			if p, ok := g.parent[pair.Key]; ok && decided[p] {
				out.detach(pair.Key)
				out.attach(pair.Key, p)
			}
		}
	}

	for pair := g.edges.Oldest(); pair != nil; pair = pair.Next() {
		k := pair.Key
		if decided[k.v] && decided[k.w] {
			out.setEdge(k, []E{pair.Value.label})
		}
	}
	return out
}

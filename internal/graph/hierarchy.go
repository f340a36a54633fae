package graph

import "github.com/pkg/errors"

// Parent returns the parent of v, or false when v is a root, is absent, or the
// graph is not compound.
func (g *Graph[N, E]) Parent(v string) (string, bool) {
	if !g.compound {
		return "", false
	}
	p, ok := g.parent[v]
	return p, ok
}

// SetParent makes p the parent of v, creating either node if needed. Without p,
// or with an empty p, v becomes a root, so a node with the empty id can never
// be a parent. It fails with ErrNotCompound on graphs
// without a hierarchy and with ErrCycle when p is v or a descendant of v; on
// failure the graph is unchanged.
func (g *Graph[N, E]) SetParent(v string, p ...string) error {
	if !g.compound {
		return errors.Wrapf(ErrNotCompound, "set parent of %q", v)
	}

	parent := first(p)
	if parent == "" {
		g.SetNode(v)
		if _, ok := g.parent[v]; ok {
			g.detach(v)
			g.roots.Set(v, struct{}{})
		}
		return nil
	}

	for a, ok := parent, true; ok; a, ok = g.parent[a] {
		if a == v {
			return errors.Wrapf(ErrCycle, "set parent of %q to %q", v, parent)
		}
	}

	g.SetNode(parent)
	g.SetNode(v)
	g.detach(v)
	g.attach(v, parent)
	return nil
}

// detach unlinks v from its parent or from the root set.
func (g *Graph[N, E]) detach(v string) {
	if p, ok := g.parent[v]; ok {
		g.children[p].Delete(v)
		delete(g.parent, v)
		return
	}
	g.roots.Delete(v)
}

func (g *Graph[N, E]) attach(v, p string) {
	g.parent[v] = p
	g.children[p].Set(v, struct{}{})
}

// Children returns the direct children of v. An empty v lists the root nodes,
// which for a graph that is not compound is every node; the children of a node
// whose id is empty cannot be listed. The result is nil when v is absent.
func (g *Graph[N, E]) Children(v string) []string {
	if v == "" {
		if !g.compound {
			return g.Nodes()
		}
		return keys(g.roots)
	}
	if !g.HasNode(v) {
		return nil
	}
	if !g.compound {
		return []string{}
	}
	return keys(g.children[v])
}

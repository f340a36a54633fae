// Package graph provides an in-memory graph model for directed and undirected,
// optionally compound, optionally multi-edge graphs.
//
// # Why Graph Package Exists
//
// Layout engines, serializers and the CLI all need one correct, queryable graph
// that knows nothing about geometry. The graph package is that model: it owns
// node and edge identity, the compound hierarchy and the incidence index, and
// answers traversal queries from those indices. Anything that positions nodes
// treats a Graph as its input and writes results back into labels.
//
// # Storage Model
//
// A Graph is arena-style: nodes are keyed by their string id and edges by a
// canonical edge key. Relations are index maps, never embedded pointers:
//
//	nodes     id       -> label            (insertion ordered)
//	edges     edgeKey  -> (Edge, label)    (insertion ordered)
//	adj       id       -> (in, out)        incident edge keys
//	parent    id       -> parent id        compound graphs only
//	children  id       -> child ids        compound graphs only
//
// **Edge keys** are the triple (tail, head, name). Undirected graphs sort the
// endpoints so (a, b) and (b, a) are the same edge, and graphs that are not
// multigraphs drop the name so at most one edge exists per pair.
//
// **Undirected incidence**: an undirected edge is indexed as both incoming and
// outgoing on each endpoint. As a consequence Predecessors, Successors and
// Neighbors agree, InEdges, OutEdges and NodeEdges agree, and Sinks and
// Sources both return the isolated nodes.
//
// # Labels
//
// Node and edge labels are opaque payloads of the caller-chosen types N and E.
// When a node or edge is created without a label, the default label rule is
// applied exactly once: either a constant or a factory called with the node id
// or the canonical Edge.
//
// # Thread-Safety
//
// A Graph is not safe for concurrent use. Wrap it with the syncgraph package
// when more than one goroutine needs access.
//
// # Usage
//
//	g := graph.New[string, int](graph.WithCompound(true))
//	g.SetNode("a", "A").SetNode("b", "B")
//	if err := g.SetParent("b", "a"); err != nil {
//	    return err
//	}
//	g.SetEdge("a", "b", 1)
//	sinks := g.Sinks() // ["b"]
package graph

// Package graphio converts graphs to and from their serialized document form.
//
// The document has the shape
//
//	{
//	  "options": {"directed": true, "multigraph": false, "compound": true},
//	  "nodes":   [{"v": "a", "value": ...}, {"v": "b", "value": ..., "parent": "a"}],
//	  "edges":   [{"v": "a", "w": "b", "name": "x", "value": ...}],
//	  "value":   "graph label"
//	}
//
// and is encoded as JSON or YAML. Node and edge order survive a round trip.
// Reading applies the mode flags first, then creates every node, then links
// parents, then adds edges, so documents may reference parents that appear
// later in the node list.
//
// Children and roots are not stored as lists: after a round trip Children(p)
// and Children("") follow node document order, which may differ from the order
// in which the source graph attached them.
package graphio

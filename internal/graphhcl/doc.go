// Package graphhcl loads graph definitions written in HCL.
//
// A definition is spread over one or more .hcl files:
//
//	graph {
//	  directed   = true
//	  compound   = true
//	  multigraph = false
//	  label      = "workflow"
//	}
//
//	node "a" {
//	  value = { width = 10, height = 20 }
//	}
//
//	node "b" {
//	  parent = "a"
//	}
//
//	edge "a" "b" {
//	  name  = "x"
//	  value = { weight = 1 }
//	}
//
//	path {
//	  nodes = ["a", "c", "d"]
//	}
//
// At most one graph block may appear across all files; without one the graph
// is directed, simple and flat. Files are read in walk order, and within the
// merged definition nodes are created first, then parents are linked, then
// edges and paths are added. Values become plain Go data: map[string]any,
// []any, float64, string and bool.
package graphhcl

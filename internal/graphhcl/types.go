package graphhcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes every top-level block of one file.
type fileRoot struct {
	Graphs []*graphBlock `hcl:"graph,block"`
	Nodes  []*nodeBlock  `hcl:"node,block"`
	Edges  []*edgeBlock  `hcl:"edge,block"`
	Paths  []*pathBlock  `hcl:"path,block"`
}

type graphBlock struct {
	Directed   *bool   `hcl:"directed,optional"`
	Multigraph bool    `hcl:"multigraph,optional"`
	Compound   bool    `hcl:"compound,optional"`
	Label      *string `hcl:"label,optional"`
}

type nodeBlock struct {
	Name   string         `hcl:"name,label"`
	Value  hcl.Expression `hcl:"value,optional"`
	Parent string         `hcl:"parent,optional"`
}

type edgeBlock struct {
	V     string         `hcl:"v,label"`
	W     string         `hcl:"w,label"`
	Name  string         `hcl:"name,optional"`
	Value hcl.Expression `hcl:"value,optional"`
}

type pathBlock struct {
	Nodes []string       `hcl:"nodes"`
	Value hcl.Expression `hcl:"value,optional"`
}

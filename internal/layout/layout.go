// Package layout defines the boundary between graphs and the routines that
// position them. A Layouter reads a graph and writes coordinates back into its
// node and edge labels; the graph package never interprets them.
package layout

import (
	"context"

	"github.com/vk/graphlib/internal/graph"
)

// Layouter assigns positions to the nodes and edges of g in place.
type Layouter[N, E any] interface {
	Layout(ctx context.Context, g *graph.Graph[N, E]) error
}

// Func adapts a plain function to the Layouter interface.
type Func[N, E any] func(ctx context.Context, g *graph.Graph[N, E]) error

// Layout calls f.
func (f Func[N, E]) Layout(ctx context.Context, g *graph.Graph[N, E]) error {
	return f(ctx, g)
}

// Point is a position in layout space.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Geometry is a node label carrying size hints and the computed center.
type Geometry struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
}

// Route is an edge label carrying the computed control points.
type Route struct {
	Points []Point `json:"points" yaml:"points"`
}

// MergeMap returns a copy of label with the entries of extra added. It is
// meant for graphs whose labels are decoded documents; a label that is not a
// map[string]any is replaced.
func MergeMap(label any, extra map[string]any) any {
	out := make(map[string]any)
	if m, ok := label.(map[string]any); ok {
		for k, v := range m {
			out[k] = v
		}
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

package layout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/graphlib/internal/graph"
)

func TestRanks(t *testing.T) {
	t.Run("longest path wins", func(t *testing.T) {
		g := graph.New[any, any]()
		g.SetPath([]string{"a", "b", "c"}).SetEdge("a", "c").SetNode("lonely")

		ranks, err := Ranks(g)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"a": 0, "b": 1, "c": 2, "lonely": 0}, ranks)
	})

	t.Run("cycles are rejected", func(t *testing.T) {
		g := graph.New[any, any]()
		g.SetPath([]string{"a", "b", "c", "a"})
		_, err := Ranks(g)
		assert.ErrorIs(t, err, ErrCyclic)
	})

	t.Run("undirected graphs are rejected", func(t *testing.T) {
		_, err := Ranks(graph.New[any, any](graph.WithDirected(false)))
		assert.ErrorIs(t, err, ErrUndirected)
	})
}

func TestRankedLayout(t *testing.T) {
	g := graph.New[Geometry, Route](graph.WithMultigraph(true))
	g.SetNode("a", Geometry{Width: 10, Height: 5})
	g.SetEdge("a", "b").SetEdge("a", "c").SetNamedEdge("a", "c", "again")

	l := &Ranked[Geometry, Route]{
		RankSep: 50,
		NodeSep: 20,
		PlaceNode: func(label Geometry, at Point) Geometry {
			label.X, label.Y = at.X, at.Y
			return label
		},
		PlaceEdge: func(label Route, points []Point) Route {
			label.Points = points
			return label
		},
	}
	var layouter Layouter[Geometry, Route] = l
	require.NoError(t, layouter.Layout(context.Background(), g))

	a, _ := g.Node("a")
	assert.Equal(t, Geometry{Width: 10, Height: 5, X: 0, Y: 0}, a)
	c, _ := g.Node("c")
	assert.Equal(t, Geometry{X: 20, Y: 50}, c)

	route, _ := g.Edge("a", "c", "again")
	assert.Equal(t, []Point{{X: 0, Y: 0}, {X: 20, Y: 50}}, route.Points)
	assert.Equal(t, 3, g.EdgeCount())
}

func TestFunc(t *testing.T) {
	called := false
	var l Layouter[any, any] = Func[any, any](func(ctx context.Context, g *graph.Graph[any, any]) error {
		called = true
		return nil
	})
	require.NoError(t, l.Layout(context.Background(), graph.New[any, any]()))
	assert.True(t, called)
}

func TestMergeMap(t *testing.T) {
	label := map[string]any{"width": 1.0}
	merged := MergeMap(label, map[string]any{"x": 2.0})

	assert.Equal(t, map[string]any{"width": 1.0, "x": 2.0}, merged)
	assert.Equal(t, map[string]any{"width": 1.0}, label)
	assert.Equal(t, map[string]any{"y": 3.0}, MergeMap("not a map", map[string]any{"y": 3.0}))
}

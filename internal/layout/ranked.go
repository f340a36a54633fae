package layout

import (
	"context"

	"github.com/pkg/errors"

	"github.com/vk/graphlib/internal/ctxlog"
	"github.com/vk/graphlib/internal/graph"
)

var (
	// ErrCyclic is returned when a graph cannot be ranked because of a cycle.
	ErrCyclic = errors.New("graph has a cycle")

	// ErrUndirected is returned when ranking is asked of an undirected graph.
	ErrUndirected = errors.New("graph is undirected")
)

// Ranked is a longest-path layering layout for directed acyclic graphs. Every
// node is placed on the rank one below its deepest predecessor; nodes of a rank
// are spread horizontally in insertion order.
type Ranked[N, E any] struct {
	// RankSep is the vertical distance between ranks.
	RankSep float64
	// NodeSep is the horizontal distance between nodes of one rank.
	NodeSep float64
	// PlaceNode returns label updated with the node position.
	PlaceNode func(label N, at Point) N
	// PlaceEdge returns label updated with the edge route.
	PlaceEdge func(label E, points []Point) E
}

// Ranks returns the rank of every node.
func Ranks[N, E any](g *graph.Graph[N, E]) (map[string]int, error) {
	if !g.IsDirected() {
		return nil, ErrUndirected
	}

	indegree := make(map[string]int, g.NodeCount())
	for _, v := range g.Nodes() {
		in, _ := g.InEdges(v)
		indegree[v] = len(in)
	}

	ranks := make(map[string]int, g.NodeCount())
	queue := g.Sources()
	for _, v := range queue {
		ranks[v] = 0
	}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		out, _ := g.OutEdges(v)
		for _, e := range out {
			if r := ranks[v] + 1; r > ranks[e.W] {
				ranks[e.W] = r
			}
			indegree[e.W]--
			if indegree[e.W] == 0 {
				queue = append(queue, e.W)
			}
		}
		indegree[v] = -1
	}

	for _, v := range g.Nodes() {
		if indegree[v] >= 0 {
			return nil, errors.Wrapf(ErrCyclic, "node %q is on or behind a cycle", v)
		}
	}
	return ranks, nil
}

// Layout positions every node and edge of g.
func (r *Ranked[N, E]) Layout(ctx context.Context, g *graph.Graph[N, E]) error {
	logger := ctxlog.FromContext(ctx)

	ranks, err := Ranks(g)
	if err != nil {
		return err
	}

	positions := make(map[string]Point, len(ranks))
	perRank := make(map[int]int)
	for _, v := range g.Nodes() {
		rank := ranks[v]
		positions[v] = Point{X: float64(perRank[rank]) * r.NodeSep, Y: float64(rank) * r.RankSep}
		perRank[rank]++
	}
	logger.Debug("Ranked layout computed.", "nodes", len(positions), "ranks", len(perRank))

	if r.PlaceNode != nil {
		for _, v := range g.Nodes() {
			label, _ := g.Node(v)
			g.SetNode(v, r.PlaceNode(label, positions[v]))
		}
	}
	if r.PlaceEdge != nil {
		for _, e := range g.Edges() {
			label, _ := g.EdgeFor(e)
			g.SetEdgeFor(e, r.PlaceEdge(label, []Point{positions[e.V], positions[e.W]}))
		}
	}
	return nil
}

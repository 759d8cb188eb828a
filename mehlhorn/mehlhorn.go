package mehlhorn

import (
	"sort"

	"github.com/goderik01/PACE2018/internal/unionfind"
	"github.com/goderik01/PACE2018/stpggraph"
	"github.com/goderik01/PACE2018/traverse"
)

// arc is a candidate connection between two terminals' Voronoi cells,
// carrying the original graph edge whose crossing produced it.
type arc struct {
	tu, tv stpggraph.Vertex
	weight stpggraph.Weight
	edge   stpggraph.EdgeHandle
}

// Solve computes a Mehlhorn 2-approximate Steiner tree over g's current
// edges and terminal set, returning the edges to buy (not yet bought: the
// caller decides whether and in what order to call BuyEdge, since star
// contraction needs to run this against a temporarily enlarged terminal
// set without disturbing the caller's notion of "real" terminals).
//
// Returns nil if fewer than two terminals are marked (there is nothing to
// connect) or if the terminals are not all reachable from one another.
func Solve(g *stpggraph.Graph) []stpggraph.EdgeHandle {
	terminals := g.Terminals()
	if len(terminals) < 2 {
		return nil
	}

	dist, prevEdge, owner, err := traverse.Dijkstra(g, traverse.WithSources(terminals...))
	if err != nil {
		return nil
	}

	var arcs []arc
	for _, e := range g.AllEdges() {
		s, t := g.Endpoints(e)
		os, ot := owner[s], owner[t]
		if os == stpggraph.NoVertex || ot == stpggraph.NoVertex || os == ot {
			continue
		}
		arcs = append(arcs, arc{
			tu:     os,
			tv:     ot,
			weight: dist[s] + g.Weight(e) + dist[t],
			edge:   e,
		})
	}
	if len(arcs) == 0 {
		return nil
	}
	sort.SliceStable(arcs, func(i, j int) bool { return arcs[i].weight < arcs[j].weight })

	uf := unionfind.New(g.VertexCount())
	need := len(terminals) - 1
	got := 0

	seen := make(map[int32]bool)
	var result []stpggraph.EdgeHandle
	addEdge := func(e stpggraph.EdgeHandle) {
		if !seen[e.Index()] {
			seen[e.Index()] = true
			result = append(result, e)
		}
	}

	for _, a := range arcs {
		if got == need {
			break
		}
		if uf.Same(int(a.tu), int(a.tv)) {
			continue
		}
		uf.Union(int(a.tu), int(a.tv))
		got++

		addEdge(a.edge)
		s, t := g.Endpoints(a.edge)
		for _, e := range traverse.PathTo(g, prevEdge, owner, s) {
			addEdge(e)
		}
		for _, e := range traverse.PathTo(g, prevEdge, owner, t) {
			addEdge(e)
		}
	}
	if got < need {
		return nil
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Index() < result[j].Index() })
	return result
}

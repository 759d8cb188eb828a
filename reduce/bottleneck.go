package reduce

import (
	"sort"

	"github.com/goderik01/PACE2018/bridge"
	"github.com/goderik01/PACE2018/stpggraph"
	"github.com/goderik01/PACE2018/traverse"
)

// BottleneckSteinerDistanceTest processes the graph's edges in ascending
// weight order through an incremental bridge-components structure. Two
// terminals joined by the cheapest edge available at their component
// boundary are always safe to buy. Beyond that, each time adding an edge
// closes a cycle, every tree edge the cycle renders non-bridge is tested:
// if both of its endpoints reach a terminal (or already are one) within the
// remaining weight budget down to the new edge's weight, the bridge edge is
// safe to buy outright, because it sits on the unique shortest connection
// between two terminal neighborhoods no other route within budget can beat.
//
// This is the one reduction rule that mutates the terminal set (the
// endpoints of every bought edge are promoted to terminals), so unlike the
// others it is not safe to re-run after local search has started treating
// some vertices as terminals only provisionally.
func BottleneckSteinerDistanceTest(g *stpggraph.Graph) int {
	sorted := g.AllEdges()
	sort.SliceStable(sorted, func(i, j int) bool { return g.Weight(sorted[i]) < g.Weight(sorted[j]) })

	inc := bridge.New(g.VertexCount())
	var toBuy []stpggraph.EdgeHandle
	lastWeight := stpggraph.Weight(-1)

	for i, e := range sorted {
		w := g.Weight(e)
		if w != lastWeight {
			for j := i; j < len(sorted) && g.Weight(sorted[j]) == w; j++ {
				f := sorted[j]
				fs, ft := g.Endpoints(f)
				if !inc.SameComponent(fs, ft) && g.IsTerminal(fs) && g.IsTerminal(ft) {
					toBuy = append(toBuy, f)
					inc.Link(g, f)
				}
			}
			lastWeight = w
		}

		removedBridges := inc.Link(g, e)
		for _, f := range removedBridges {
			if testEdge(g, f, w) {
				toBuy = append(toBuy, f)
			}
		}
	}

	count := 0
	for _, e := range toBuy {
		if _, ok := g.BuyEdge(e); ok {
			count++
		}
	}
	return count
}

// testEdge checks whether both endpoints of e reach a terminal within the
// weight budget threshold (after accounting for e's own weight and, on the
// second endpoint, whatever budget the first endpoint's search already
// spent), with e itself temporarily priced out of the search so the test
// cannot "cheat" by crossing e to reach the other side.
func testEdge(g *stpggraph.Graph, e stpggraph.EdgeHandle, threshold stpggraph.Weight) bool {
	origWeight := g.Weight(e)
	g.SetWeight(e, threshold+1)
	defer g.SetWeight(e, origWeight)

	remaining := threshold - origWeight
	s, t := g.Endpoints(e)
	for _, v := range [2]stpggraph.Vertex{s, t} {
		found := stpggraph.NoVertex
		dist, _, _, err := traverse.Dijkstra(g,
			traverse.WithSources(v),
			traverse.WithMaxDistance(remaining),
			traverse.WithStopAt(func(u stpggraph.Vertex) bool {
				if g.IsTerminal(u) {
					found = u
					return true
				}
				return false
			}),
		)
		if err != nil || found == stpggraph.NoVertex {
			return false
		}
		remaining -= dist[found]
	}

	g.MarkTerminal(s)
	g.MarkTerminal(t)
	return true
}

package reduce

import "github.com/goderik01/PACE2018/stpggraph"

// DegreeRules makes one forward pass over every vertex, applying whichever
// of the three degree-driven rules applies to it:
//
//   - a non-terminal of degree 1 has its single edge removed (it can never
//     help connect two terminals);
//   - a non-terminal of degree 2 is suppressed, replaced by a direct edge
//     between its two neighbors;
//   - a terminal of degree 1 has its single edge bought outright (it is
//     the only way to reach that terminal).
//
// Because later vertices in the pass see the effects of earlier ones but
// not vice versa, a single call does not reach a fixpoint; callers loop it
// (see Cheap) until the edge count stops changing.
func DegreeRules(g *stpggraph.Graph) (removedSteiner, suppressed, boughtTerminals int) {
	for v := stpggraph.Vertex(0); int(v) < g.VertexCount(); v++ {
		if g.IsTerminal(v) {
			if g.Degree(v) == 1 {
				if _, ok := g.BuyEdge(g.Incidence(v)[0]); ok {
					boughtTerminals++
				}
			}
			continue
		}
		switch g.Degree(v) {
		case 1:
			g.RemoveEdge(g.Incidence(v)[0])
			removedSteiner++
		case 2:
			g.SuppressVertex(v)
			suppressed++
		}
	}
	return removedSteiner, suppressed, boughtTerminals
}

// ShortestEdgeBetweenTerminals buys, for each terminal, its single cheapest
// incident edge if that edge leads to another terminal — two terminals
// joined by an edge cheaper than any other edge touching either of them
// can never benefit from routing through a third vertex first.
func ShortestEdgeBetweenTerminals(g *stpggraph.Graph) int {
	if g.TerminalCount() <= 1 {
		return 0
	}
	var candidates []stpggraph.EdgeHandle
	for _, t := range append([]stpggraph.Vertex(nil), g.Terminals()...) {
		inc := g.Incidence(t)
		if len(inc) == 0 {
			continue
		}
		min := inc[0]
		for _, e := range inc[1:] {
			if g.Weight(e) < g.Weight(min) {
				min = e
			}
		}
		if g.IsTerminal(g.Target(min)) {
			candidates = append(candidates, min)
		}
	}
	count := 0
	for _, e := range candidates {
		if _, ok := g.BuyEdge(e); ok {
			count++
		}
	}
	return count
}

// BuyZero buys every edge currently at weight zero: it can never cost more
// to include a free edge.
func BuyZero(g *stpggraph.Graph) int {
	var candidates []stpggraph.EdgeHandle
	for v := stpggraph.Vertex(0); int(v) < g.VertexCount(); v++ {
		for _, e := range g.Incidence(v) {
			if g.Target(e) > v && g.Weight(e) == 0 {
				candidates = append(candidates, e)
			}
		}
	}
	count := 0
	for _, e := range candidates {
		if _, ok := g.BuyEdge(e); ok {
			count++
		}
	}
	return count
}

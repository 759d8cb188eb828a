package reduce

import "github.com/goderik01/PACE2018/stpggraph"

// CherryDomination removes every edge (s, t) for which some other vertex n
// is adjacent to both s and t with combined weight no greater than (s,
// t)'s own — routing through n is never worse, so the direct edge is
// redundant. Candidates are found via a merge-join over the two endpoints'
// sorted incidence lists (a "cherry": the two-edge path s-n-t).
//
// Deletions within one pass can conflict (two dominated edges sharing an
// endpoint, each justified by the other), so a pass marks the endpoints of
// edges it actually deletes and defers any edge touching an already-marked
// endpoint to the next pass. CherryDomination repeats passes until one
// completes with no deferrals.
func CherryDomination(g *stpggraph.Graph) int {
	total := 0
	for {
		type candidate struct {
			e    stpggraph.EdgeHandle
			s, t stpggraph.Vertex
		}
		var candidates []candidate
		for v := stpggraph.Vertex(0); int(v) < g.VertexCount(); v++ {
			for _, e := range g.Incidence(v) {
				t := g.Target(e)
				if t <= v {
					continue // visit each undirected edge once, from its lower-indexed endpoint
				}
				if hasCherry(g, v, t, g.Weight(e)) {
					candidates = append(candidates, candidate{e: e, s: v, t: t})
				}
			}
		}
		if len(candidates) == 0 {
			return total
		}

		marked := make([]bool, g.VertexCount())
		rerun := false
		for _, c := range candidates {
			if marked[c.s] || marked[c.t] {
				rerun = true
				continue
			}
			marked[c.s] = true
			marked[c.t] = true
			g.RemoveEdge(c.e)
			total++
		}
		if !rerun {
			return total
		}
	}
}

// hasCherry reports whether some vertex n != s, t is adjacent to both s and
// t with combined weight <= w, found via a merge-join over their sorted
// incidence lists.
func hasCherry(g *stpggraph.Graph, s, t stpggraph.Vertex, w stpggraph.Weight) bool {
	is, it := g.Incidence(s), g.Incidence(t)
	i, j := 0, 0
	for i < len(is) && j < len(it) {
		ni, nj := g.Target(is[i]), g.Target(it[j])
		switch {
		case ni == nj:
			if g.Weight(is[i])+g.Weight(it[j]) <= w {
				return true
			}
			i++
			j++
		case ni < nj:
			i++
		default:
			j++
		}
	}
	return false
}

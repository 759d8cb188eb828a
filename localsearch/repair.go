package localsearch

import (
	"math/rand"

	"github.com/goderik01/PACE2018/mehlhorn"
	"github.com/goderik01/PACE2018/stpggraph"
)

// branchingVertices returns every vertex with degree >= 3 in edges' tree
// topology — candidates for the extra routing freedom a repair round
// explores. Grounded on heuristics.hpp's find_branching_vertices.
func branchingVertices(g *stpggraph.Graph, edges []stpggraph.EdgeHandle) []stpggraph.Vertex {
	degree := make(map[stpggraph.Vertex]int, len(edges))
	for _, e := range edges {
		degree[g.Source(e)]++
		degree[g.Target(e)]++
	}
	var ret []stpggraph.Vertex
	for v, d := range degree {
		if d >= 3 {
			ret = append(ret, v)
		}
	}
	return ret
}

// pickDestroyTargets draws k vertices uniformly at random (with repeats
// allowed, as rand() % size does in the original) from candidates, the
// "possible vertices" step destroy chooses fake terminals from.
func pickDestroyTargets(rng *rand.Rand, candidates []stpggraph.Vertex, k int) []stpggraph.Vertex {
	if k <= 0 || len(candidates) == 0 {
		return nil
	}
	picks := make([]stpggraph.Vertex, k)
	for i := range picks {
		picks[i] = candidates[rng.Intn(len(candidates))]
	}
	return picks
}

// repair marks fakeTerminals and every branching vertex of current on g,
// re-runs the Mehlhorn 2-approximation over the enlarged terminal set,
// prunes the result back to g's real terminals via cleanUpSolution, and
// restores g's terminal marks before returning.
//
// Grounded on heuristics.hpp's refine_solution, with greedy_2approx (an
// external paal call in the original) replaced by mehlhorn.Solve. g is
// never mutated beyond the temporary terminal marks undone before return —
// see package doc for why this search stays read-only.
func repair(g *stpggraph.Graph, real []stpggraph.Vertex, isReal map[stpggraph.Vertex]bool, current []stpggraph.EdgeHandle, fakeTerminals []stpggraph.Vertex) ([]stpggraph.EdgeHandle, stpggraph.Weight) {
	marked := append([]stpggraph.Vertex(nil), fakeTerminals...)
	marked = append(marked, branchingVertices(g, current)...)

	var newlyMarked []stpggraph.Vertex
	for _, v := range marked {
		if !g.IsTerminal(v) {
			g.MarkTerminal(v)
			newlyMarked = append(newlyMarked, v)
		}
	}

	edges := mehlhorn.Solve(g)

	for _, v := range newlyMarked {
		g.UnmarkTerminal(v)
	}

	if edges == nil {
		return nil, 0
	}
	return cleanUpSolution(g, edges, real[0], isReal)
}

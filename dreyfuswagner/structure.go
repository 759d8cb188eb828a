package dreyfuswagner

import (
	"math/rand"

	"github.com/goderik01/PACE2018/stpggraph"
)

// BuildStructure derives a randomized solution structure from solution, a
// tree spanning g's current terminal set: a post-order walk (rooted at
// g.Terminals()[0]) that, at every vertex with more than one outstanding
// child (its tree-children, plus its own terminal leaf if it is itself a
// non-root terminal), repeatedly merges two children chosen uniformly at
// random into a new internal structure position, until exactly one
// remains for that vertex to hand up to its own parent.
//
// solution is taken as a parameter rather than read from g.PartialSolution
// so a caller can derive a structure for any candidate tree over g's edges
// — including one it never actually bought into g — without contracting g
// to populate a partial solution first (see localsearch, which folds
// Dreyfus–Wagner over unbought candidate trees this way).
//
// Grounded on heuristics.hpp's get_solution_structure, including its
// exact two-draw distinct-index trick for picking the pair to merge
// (rand() % size, then rand() % (size-1) adjusted to skip the first
// draw) — reproduced here with rng supplied by the caller rather than a
// global PRNG, so local search controls and can seed it.
func BuildStructure(g *stpggraph.Graph, solution []stpggraph.EdgeHandle, rng *rand.Rand) []Node {
	n := g.VertexCount()
	terminals := g.Terminals()
	if len(terminals) == 0 {
		return nil
	}

	adj := make([][]stpggraph.EdgeHandle, n)
	for _, e := range solution {
		s, t := g.Source(e), g.Target(e)
		adj[s] = append(adj[s], e)
		adj[t] = append(adj[t], e.Reversed())
	}

	index := make([]int, n)
	for i := range index {
		index[i] = -1
	}
	var ret []Node
	for i, t := range terminals {
		if i == 0 {
			continue // the root terminal gets its index only once its own merge finishes
		}
		index[t] = len(ret)
		ret = append(ret, Node{Left: -1, Right: int(t)})
	}

	root := terminals[0]
	visited := make([]bool, n)
	visited[root] = true

	finish := func(v stpggraph.Vertex, parentEdge stpggraph.EdgeHandle) {
		var children []int
		for _, e := range adj[v] {
			if parentEdge.IsValid() && e.Index() == parentEdge.Index() {
				continue
			}
			children = append(children, index[g.Target(e)])
		}
		if index[v] != -1 {
			children = append(children, index[v])
		}
		for len(children) > 1 {
			i := rng.Intn(len(children))
			j := rng.Intn(len(children) - 1)
			if i <= j {
				j++
			} else {
				i, j = j, i
			}
			ret = append(ret, Node{Left: children[i], Right: children[j]})
			children[i] = len(ret) - 1
			last := len(children) - 1
			if j != last {
				children[j] = children[last]
			}
			children = children[:last]
		}
		index[v] = children[0]
	}

	type frame struct {
		v    stpggraph.Vertex
		pe   stpggraph.EdgeHandle
		next int
	}
	stack := []frame{{v: root, pe: stpggraph.NoEdge, next: 0}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(adj[top.v]) {
			e := adj[top.v][top.next]
			top.next++
			w := g.Target(e)
			if visited[w] {
				continue
			}
			visited[w] = true
			stack = append(stack, frame{v: w, pe: e, next: 0})
			continue
		}
		finish(top.v, top.pe)
		stack = stack[:len(stack)-1]
	}
	return ret
}

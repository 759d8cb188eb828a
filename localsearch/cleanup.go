package localsearch

import "github.com/goderik01/PACE2018/stpggraph"

// cleanUpSolution prunes edges — a tree that may still include fake
// terminals or non-spanning detours — down to the minimal subtree spanning
// realTerminals: an iterative post-order walk from root (which must be a
// real terminal present in edges) keeps an edge only if the subtree below it
// reaches a real terminal.
//
// Grounded on heuristics.hpp's clean_up_solution, which builds a synthetic
// zero-weight Graph over the candidate edges and runs its own DFS visitor to
// do the same root-to-terminal marking; here the walk runs directly over an
// adjacency list built from edges, since there is no need for a throwaway
// graph when the edges are already handles into g.
func cleanUpSolution(g *stpggraph.Graph, edges []stpggraph.EdgeHandle, root stpggraph.Vertex, isReal map[stpggraph.Vertex]bool) ([]stpggraph.EdgeHandle, stpggraph.Weight) {
	if len(edges) == 0 {
		return nil, 0
	}
	n := g.VertexCount()
	adj := make([][]stpggraph.EdgeHandle, n)
	for _, e := range edges {
		s, t := g.Source(e), g.Target(e)
		adj[s] = append(adj[s], e)
		adj[t] = append(adj[t], e.Reversed())
	}

	visited := make([]bool, n)
	keep := make([]bool, n)
	visited[root] = true

	type frame struct {
		v    stpggraph.Vertex
		pe   stpggraph.EdgeHandle
		next int
	}
	var out []stpggraph.EdgeHandle
	var weight stpggraph.Weight
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

		if isReal[top.v] {
			keep[top.v] = true
		}
		if keep[top.v] && top.pe.IsValid() {
			out = append(out, top.pe)
			weight += g.Weight(top.pe)
			keep[g.Source(top.pe)] = true
		}
		stack = stack[:len(stack)-1]
	}
	return out, weight
}

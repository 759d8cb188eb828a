package reduce

import (
	"github.com/goderik01/PACE2018/internal/dheap"
	"github.com/goderik01/PACE2018/stpggraph"
	"github.com/goderik01/PACE2018/traverse"
)

// ShortestPathDomination removes, for every vertex v, each of v's incident
// edges (v, u) that a shortest path from v to u never needs: either some
// other route to u is strictly shorter, or it ties the direct edge while at
// least one other shortest route to u also exists. Requires the graph to
// carry no zero-weight edges (run BuyZero first): a zero-weight edge would
// make "strictly shorter" meaningless at distance zero.
//
// Each source's search stops early once every one of its neighbors has had
// its final distance settled, rather than exploring the whole graph.
func ShortestPathDomination(g *stpggraph.Graph) int {
	n := g.VertexCount()
	dist := make([]stpggraph.Weight, n)
	predCount := make([]int, n)
	visited := make([]bool, n)
	neighborMask := make([]bool, n)
	count := 0

	for v := stpggraph.Vertex(0); int(v) < n; v++ {
		inc := g.Incidence(v)
		if len(inc) == 0 {
			continue
		}
		for i := 0; i < n; i++ {
			dist[i] = traverse.Inf
			predCount[i] = 0
			visited[i] = false
		}
		neighborsToGo := len(inc)
		for _, e := range inc {
			neighborMask[g.Target(e)] = true
		}
		dist[v] = 0
		predCount[v] = 1

		h := dheap.New(func(a, b int) bool { return dist[a] < dist[b] })
		h.Push(int(v))
		for !h.Empty() {
			u := stpggraph.Vertex(h.Pop())
			if visited[u] {
				continue
			}
			visited[u] = true
			if neighborMask[u] {
				neighborsToGo--
				neighborMask[u] = false
			}
			if neighborsToGo <= 0 {
				break
			}
			for _, e := range g.Incidence(u) {
				w := g.Target(e)
				nd := dist[u] + g.Weight(e)
				if !visited[w] && nd < dist[w] {
					dist[w] = nd
					predCount[w] = 1
					h.Push(int(w))
				} else if nd == dist[w] {
					predCount[w]++
				}
			}
		}
		for _, e := range inc {
			neighborMask[g.Target(e)] = false
		}

		var toRemove []stpggraph.EdgeHandle
		for _, e := range inc {
			u := g.Target(e)
			w := g.Weight(e)
			if w > dist[u] || (w == dist[u] && predCount[u] > 1) {
				toRemove = append(toRemove, e)
			}
		}
		for _, e := range toRemove {
			g.RemoveEdge(e)
			count++
		}
	}
	return count
}

package dreyfuswagner

import (
	"github.com/goderik01/PACE2018/internal/dheap"
	"github.com/goderik01/PACE2018/stpggraph"
	"github.com/goderik01/PACE2018/traverse"
)

// maxWork bounds structure-length * vertex-count: beyond it, a call gives
// up rather than spend unbounded memory and time on the distance arrays.
const maxWork = 400_000_000

// Node is one position of a solution structure: either a leaf naming a
// terminal (Left == -1, Right the terminal vertex) or an internal node
// combining two earlier positions (Left, Right are indices < this one's
// own position in the structure slice).
type Node struct {
	Left, Right int
}

// IsLeaf reports whether n is a (-1, terminal) leaf.
func (n Node) IsLeaf() bool { return n.Left == -1 }

// Solve computes the optimal Steiner tree realizing structure's shape
// over g's current terminal set and edges, returning its edges and true,
// or (nil, false) if the structure is empty, exceeds the size guardrail,
// or g currently has no terminals.
//
// structure[i].Right names a terminal for a leaf; the convention Solve
// shares with its caller is that g.Terminals()[0] is the designated root
// every non-leaf structure position is ultimately relative to.
func Solve(g *stpggraph.Graph, structure []Node) ([]stpggraph.EdgeHandle, bool) {
	if len(structure) == 0 {
		return nil, false
	}
	n := g.VertexCount()
	if int64(len(structure))*int64(n) > maxWork {
		return nil, false
	}
	terminals := g.Terminals()
	if len(terminals) == 0 {
		return nil, false
	}

	distOf := make([][]stpggraph.Weight, len(structure))
	predOf := make([][]stpggraph.EdgeHandle, len(structure))

	for i, node := range structure {
		dist := make([]stpggraph.Weight, n)
		if node.IsLeaf() {
			for v := range dist {
				dist[v] = traverse.Inf
			}
			dist[node.Right] = 0
		} else {
			dl, dr := distOf[node.Left], distOf[node.Right]
			for v := range dist {
				dist[v] = dl[v] + dr[v]
			}
		}
		predOf[i] = relax(g, dist)
		distOf[i] = dist
	}

	root := terminals[0]
	var result []stpggraph.EdgeHandle

	type frame struct {
		idx int
		v   stpggraph.Vertex
	}
	stack := []frame{{len(structure) - 1, root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		v := f.v
		for predOf[f.idx][v].IsValid() {
			e := predOf[f.idx][v]
			result = append(result, e)
			v = g.Source(e)
		}

		if !structure[f.idx].IsLeaf() {
			stack = append(stack, frame{structure[f.idx].Left, v})
			stack = append(stack, frame{structure[f.idx].Right, v})
		}
	}
	return result, true
}

// relax runs Dijkstra over g starting from every vertex's current value
// in dist (mutated in place), recording the edge that produced any
// further improvement. Seeding the whole vertex set up front rather than
// a single source is what makes this valid as the "combine two subtrees,
// then let the graph's edges improve the combination" step: since no edge
// weight is negative, settling vertices in non-decreasing distance order
// still finds the true minimum over both the precomputed values and any
// path the graph offers between them.
func relax(g *stpggraph.Graph, dist []stpggraph.Weight) []stpggraph.EdgeHandle {
	n := g.VertexCount()
	visited := make([]bool, n)
	prevEdge := make([]stpggraph.EdgeHandle, n)
	for i := range prevEdge {
		prevEdge[i] = stpggraph.NoEdge
	}

	h := dheap.New(func(a, b int) bool { return dist[a] < dist[b] })
	for v := 0; v < n; v++ {
		h.Push(v)
	}

	for !h.Empty() {
		u := stpggraph.Vertex(h.Pop())
		if visited[u] {
			continue
		}
		visited[u] = true
		for _, e := range g.Incidence(u) {
			w := g.Target(e)
			nd := dist[u] + g.Weight(e)
			if !visited[w] && nd < dist[w] {
				dist[w] = nd
				prevEdge[w] = e
				h.Push(int(w))
			}
		}
	}
	return prevEdge
}

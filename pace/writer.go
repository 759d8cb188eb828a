package pace

import (
	"bufio"
	"fmt"
	"io"

	"github.com/goderik01/PACE2018/stpggraph"
)

// Writer emits a stpggraph.Graph in PACE .gr format to an underlying
// io.Writer.
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

type wireEdge struct {
	u, v int
	w    stpggraph.Weight
}

// dedupEdges collapses g's live edges down to one entry per unordered
// vertex pair, keeping the cheapest weight seen for that pair — the
// original's count_edges/graph_to_file behavior of scanning every
// incidence list and only emitting an edge the first time its smaller
// endpoint is visited, folding in any parallel edge with a lower weight.
func dedupEdges(g *stpggraph.Graph) []wireEdge {
	best := make(map[[2]int]stpggraph.Weight)
	order := make([][2]int, 0)
	for _, h := range g.AllEdges() {
		s, t := int(g.Source(h)), int(g.Target(h))
		if s == t {
			continue // no loops
		}
		if s > t {
			s, t = t, s
		}
		key := [2]int{s, t}
		w := g.Weight(h)
		if cur, ok := best[key]; !ok || w < cur {
			if !ok {
				order = append(order, key)
			}
			best[key] = w
		}
	}
	out := make([]wireEdge, 0, len(order))
	for _, key := range order {
		out = append(out, wireEdge{u: key[0], v: key[1], w: best[key]})
	}
	return out
}

// Write emits g as a complete .gr instance: SECTION Graph / Nodes / Edges /
// E lines / END, a blank line, SECTION Terminals / Terminals / T lines /
// END, a blank line, and EOF — mirroring write.hpp's graph_to_file exactly,
// including its 1-based vertex renumbering.
func (w *Writer) Write(g *stpggraph.Graph) error {
	edges := dedupEdges(g)

	fmt.Fprintf(w.w, "SECTION Graph\n")
	fmt.Fprintf(w.w, "Nodes %d\n", g.VertexCount())
	fmt.Fprintf(w.w, "Edges %d\n", len(edges))
	for _, e := range edges {
		fmt.Fprintf(w.w, "E %d %d %d\n", e.u+1, e.v+1, e.w)
	}
	fmt.Fprintf(w.w, "END\n\n")

	fmt.Fprintf(w.w, "SECTION Terminals\n")
	fmt.Fprintf(w.w, "Terminals %d\n", g.TerminalCount())
	for v := 0; v < g.VertexCount(); v++ {
		if g.IsTerminal(stpggraph.Vertex(v)) {
			fmt.Fprintf(w.w, "T %d\n", v+1)
		}
	}
	fmt.Fprintf(w.w, "END\n\n")
	fmt.Fprintf(w.w, "EOF\n")

	return w.w.Flush()
}

// WriteSolution emits a PACE solution-file-style report: a VALUE line
// followed by one line per original edge pair in the tree g.BuyEdge has
// accumulated, 1-based. Used by cmd/stpg for the program's stdout contract.
func WriteSolution(w io.Writer, g *stpggraph.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "VALUE %d\n", g.SolutionWeight())
	for _, pair := range g.ExpandSolution() {
		fmt.Fprintf(bw, "%d %d\n", pair[0]+1, pair[1]+1)
	}
	return bw.Flush()
}

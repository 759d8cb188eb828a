package gen

import "github.com/goderik01/PACE2018/stpggraph"

// markTerminals promotes the first k of g's n vertices to terminals,
// where k is cfg.TerminalCount, or every vertex when TerminalCount is
// still its DefaultConfig sentinel (-1).
func markTerminals(g *stpggraph.Graph, n int, cfg Config) {
	k := cfg.TerminalCount
	if k < 0 || k > n {
		k = n
	}
	for i := 0; i < k; i++ {
		g.MarkTerminal(stpggraph.Vertex(i))
	}
}

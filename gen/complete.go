package gen

import "github.com/goderik01/PACE2018/stpggraph"

// Complete builds the complete graph K_n: every unordered pair of the n
// vertices joined by one edge weighted by cfg.WeightFn. Panics if n < 1.
//
// Grounded on lvlath/builder's api.go Complete factory; emission order is
// i ascending, j > i ascending, matching RandomSparse's undirected trial
// order for the same reason — stable, documented output for a fixed seed.
func Complete(n int, opts ...Option) *stpggraph.Graph {
	if n < 1 {
		panic("gen: Complete(n<1)")
	}
	cfg := newConfig(opts)
	g := stpggraph.New(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			u, v := stpggraph.Vertex(i), stpggraph.Vertex(j)
			w := cfg.WeightFn(cfg.Rng)
			g.AddOriginalEdge(u, v, w, u, v)
		}
	}
	markTerminals(g, n, cfg)
	return g
}

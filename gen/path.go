package gen

import "github.com/goderik01/PACE2018/stpggraph"

// Path builds a simple path on n vertices, 0-(1)-2-...-(n-1), each edge
// weighted by cfg.WeightFn. Panics if n < 2.
//
// Grounded on lvlath/builder's impl_path.go: deterministic vertex order,
// edges emitted in stable increasing order.
func Path(n int, opts ...Option) *stpggraph.Graph {
	if n < 2 {
		panic("gen: Path(n<2)")
	}
	cfg := newConfig(opts)
	g := stpggraph.New(n)
	for i := 1; i < n; i++ {
		u, v := stpggraph.Vertex(i-1), stpggraph.Vertex(i)
		w := cfg.WeightFn(cfg.Rng)
		g.AddOriginalEdge(u, v, w, u, v)
	}
	markTerminals(g, n, cfg)
	return g
}

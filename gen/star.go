package gen

import "github.com/goderik01/PACE2018/stpggraph"

// Star builds a star on n vertices: vertex 0 is the hub, vertices 1..n-1
// are leaves, each joined to the hub by one edge weighted by
// cfg.WeightFn. Panics if n < 2.
//
// Grounded on lvlath/builder's impl_star.go, with the hub placed at
// vertex 0 rather than a fixed "Center" string ID, since stpggraph has no
// notion of a reserved vertex label.
func Star(n int, opts ...Option) *stpggraph.Graph {
	if n < 2 {
		panic("gen: Star(n<2)")
	}
	cfg := newConfig(opts)
	g := stpggraph.New(n)
	hub := stpggraph.Vertex(0)
	for i := 1; i < n; i++ {
		leaf := stpggraph.Vertex(i)
		w := cfg.WeightFn(cfg.Rng)
		g.AddOriginalEdge(hub, leaf, w, hub, leaf)
	}
	markTerminals(g, n, cfg)
	return g
}

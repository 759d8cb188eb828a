package gen

import "github.com/goderik01/PACE2018/stpggraph"

// RandomSparse builds an Erdős–Rényi-like graph on n vertices: each
// unordered pair {i, j} is joined by an edge independently with
// probability p, weighted by cfg.WeightFn. Panics if n < 1 or p is
// outside [0, 1].
//
// Grounded on lvlath/builder's impl_random_sparse.go: stable trial order
// (i ascending, j > i ascending), Bernoulli draws taken from the same RNG
// that drives edge weights so a fixed seed reproduces the whole instance.
func RandomSparse(n int, p float64, opts ...Option) *stpggraph.Graph {
	if n < 1 {
		panic("gen: RandomSparse(n<1)")
	}
	if p < 0 || p > 1 {
		panic("gen: RandomSparse(p outside [0,1])")
	}
	cfg := newConfig(opts)
	g := stpggraph.New(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cfg.Rng.Float64() > p {
				continue
			}
			u, v := stpggraph.Vertex(i), stpggraph.Vertex(j)
			w := cfg.WeightFn(cfg.Rng)
			g.AddOriginalEdge(u, v, w, u, v)
		}
	}
	markTerminals(g, n, cfg)
	return g
}

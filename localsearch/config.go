package localsearch

import "math/rand"

// Config holds every tunable of Run. Build one with DefaultConfig and the
// With* options rather than constructing it directly.
type Config struct {
	PoolCap         int
	VertSizes       []int
	TieBreakPercent int
	RefineEvery     int
	MaxIterations   int
	Rng             *rand.Rand
}

// DefaultConfig mirrors end_heu's literal constants: a pool capped at 150
// entries, destroy sizes {0, 3, 7, 13}, a 20% tie-break acceptance
// probability, and a Dreyfus–Wagner folding attempt every 1000 iterations.
func DefaultConfig() Config {
	return Config{
		PoolCap:         150,
		VertSizes:       []int{0, 3, 7, 13},
		TieBreakPercent: 20,
		RefineEvery:     1000,
		MaxIterations:   20000,
		Rng:             rand.New(rand.NewSource(1)),
	}
}

// Option customizes a Config produced by DefaultConfig.
type Option func(*Config)

// WithPoolCap overrides the solution pool's combined capacity.
func WithPoolCap(n int) Option {
	if n <= 0 {
		panic("localsearch: WithPoolCap(n<=0)")
	}
	return func(c *Config) { c.PoolCap = n }
}

// WithVertSizes overrides the multiset of destroy sizes k is drawn from.
func WithVertSizes(sizes ...int) Option {
	if len(sizes) == 0 {
		panic("localsearch: WithVertSizes() needs at least one size")
	}
	return func(c *Config) { c.VertSizes = append([]int(nil), sizes...) }
}

// WithTieBreakPercent overrides the probability (0-100) of accepting a
// repaired candidate that merely ties the current best weight.
func WithTieBreakPercent(p int) Option {
	if p < 0 || p > 100 {
		panic("localsearch: WithTieBreakPercent out of [0,100]")
	}
	return func(c *Config) { c.TieBreakPercent = p }
}

// WithRefineEvery overrides the iteration cadence of the Dreyfus–Wagner
// folding attempt.
func WithRefineEvery(n int) Option {
	if n <= 0 {
		panic("localsearch: WithRefineEvery(n<=0)")
	}
	return func(c *Config) { c.RefineEvery = n }
}

// WithMaxIterations bounds how many destroy/repair rounds Run performs
// before giving up even if ctx never cancels — a backstop against an
// unbounded loop in tests and small instances.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic("localsearch: WithMaxIterations(n<=0)")
	}
	return func(c *Config) { c.MaxIterations = n }
}

// WithRand overrides the random source driving destroy picks, pool
// selection, and tie-break decisions. Use it in tests for determinism.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("localsearch: WithRand(nil)")
	}
	return func(c *Config) { c.Rng = r }
}

func newConfig(opts []Option) Config {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

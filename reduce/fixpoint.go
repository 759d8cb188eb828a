package reduce

import "github.com/goderik01/PACE2018/stpggraph"

// Cheap repeatedly applies the degree rules and the shortest-terminal-edge
// rule until a full round leaves the edge count unchanged. These are the
// rules safe to re-run arbitrarily often (they never promote a vertex to
// terminal).
func Cheap(g *stpggraph.Graph) {
	prev, cur := -1, g.EdgeCount()
	for prev != cur {
		DegreeRules(g)
		ShortestEdgeBetweenTerminals(g)
		prev = cur
		cur = g.EdgeCount()
	}
}

// All runs the full preprocessing pipeline: Cheap to a fixpoint, then each
// of cherry domination, shortest-path domination, the bottleneck
// Steiner-distance test, and a second shortest-path domination pass in
// turn, re-running Cheap and
// compressing the vertex numbering after each — mirroring the order the
// reference solver found effective, where each stronger (costlier) rule is
// given a chance to fire only once the cheap rules ahead of it have
// stopped finding anything.
func All(g *stpggraph.Graph) {
	Cheap(g)
	g.CompressGraph()

	CherryDomination(g)
	Cheap(g)
	g.CompressGraph()

	ShortestPathDomination(g)
	Cheap(g)
	g.CompressGraph()

	BottleneckSteinerDistanceTest(g)
	Cheap(g)
	g.CompressGraph()

	ShortestPathDomination(g)
	Cheap(g)
	g.CompressGraph()
}

// NonInvalidating runs the subset of rules the star contractor's round loop
// calls after every contraction round without risking the kind of work a
// full re-reduction would waste: plain degree rules every time, plus one
// cherry-domination pass the first time the graph is seen to still carry
// more than 20 terminals. ranCherry is owned by the caller (one bool per
// starcontract.Solver) so the one-shot gate doesn't leak into a
// process-wide global.
func NonInvalidating(g *stpggraph.Graph, ranCherry *bool) {
	if !*ranCherry && g.TerminalCount() > 20 {
		CherryDomination(g)
		*ranCherry = true
	}
	DegreeRules(g)
}

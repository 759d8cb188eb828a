package stpggraph

// SaveOriginal freezes a point-in-time snapshot of g and rewrites every
// edge record currently in the arena — live or already removed — to an
// External reference into that snapshot. It is idempotent: once a
// snapshot exists, later calls are no-ops.
//
// After this call, every edge subsequently produced by suppression carries
// a Pair history pointing at earlier edges in g's own arena, and every edge
// re-homed by contraction carries over the history of the edge it replaces;
// either way the chain bottoms out at an External leaf into the frozen
// snapshot —
// so Expand can always walk any current edge back to genuine original
// edges, however many rounds of reduction and contraction happened both
// before and after the snapshot was taken.
func (g *Graph) SaveOriginal() {
	if g.original != nil {
		return
	}
	snap := g.Clone()
	snap.original = nil
	g.original = snap
	for i := range g.edges {
		g.edges[i].hist = history{kind: histExternal, a: -1, b: int32(i)}
	}
}

// historyFrame is one entry of Expand's explicit resolution stack: an arena
// index together with the graph it lives in (the live graph for Pair
// children, the frozen snapshot once an External reference is followed).
type historyFrame struct {
	g   *Graph
	idx int32
}

// Expand walks the history DAG of every edge in edges and returns the
// multiset of original-edge endpoint pairs (in original, 0-based PACE
// numbering) they collectively represent. Duplicate original edges are not
// deduplicated; callers that need a set should dedupe the result
// themselves. Uses an explicit stack, never recursion, so history chains of
// any depth are safe.
func (g *Graph) Expand(edges []EdgeHandle) [][2]Vertex {
	var out [][2]Vertex
	stack := make([]historyFrame, 0, len(edges))
	for _, h := range edges {
		stack = append(stack, historyFrame{g: g, idx: h.idx})
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		hst := top.g.edges[top.idx].hist
		switch hst.kind {
		case histOriginal:
			out = append(out, [2]Vertex{Vertex(hst.a), Vertex(hst.b)})
		case histExternal:
			stack = append(stack, historyFrame{g: top.g.original, idx: hst.b})
		case histPair:
			stack = append(stack, historyFrame{g: top.g, idx: hst.a})
			stack = append(stack, historyFrame{g: top.g, idx: hst.b})
		}
	}
	return out
}

package stpggraph

// MarkTerminal promotes v to a terminal. It is idempotent.
func (g *Graph) MarkTerminal(v Vertex) {
	if g.terminal[v] {
		return
	}
	g.terminal[v] = true
	g.terminalList = append(g.terminalList, v)
}

// UnmarkTerminal demotes v back to a Steiner (non-terminal) vertex. It is
// idempotent. Used by the star contractor and local search to temporarily
// promote a vertex, run a sub-solver, and restore the original terminal set.
func (g *Graph) UnmarkTerminal(v Vertex) {
	if !g.terminal[v] {
		return
	}
	g.terminal[v] = false
	for i, t := range g.terminalList {
		if t == v {
			last := len(g.terminalList) - 1
			g.terminalList[i] = g.terminalList[last]
			g.terminalList = g.terminalList[:last]
			break
		}
	}
}

// Degree returns the number of live incident edges at v.
func (g *Graph) Degree(v Vertex) int { return len(g.inc[v]) }

// Incidence returns the live edges incident to v, sorted by neighbor
// vertex index. Callers must not mutate the returned slice.
func (g *Graph) Incidence(v Vertex) []EdgeHandle { return g.inc[v] }

// Source returns the endpoint h is directed away from.
func (g *Graph) Source(h EdgeHandle) Vertex {
	r := &g.edges[h.idx]
	if h.rev {
		return r.t
	}
	return r.s
}

// Target returns the endpoint h is directed toward.
func (g *Graph) Target(h EdgeHandle) Vertex {
	r := &g.edges[h.idx]
	if h.rev {
		return r.s
	}
	return r.t
}

// Weight returns the weight of the edge h names.
func (g *Graph) Weight(h EdgeHandle) Weight { return g.edges[h.idx].weight }

// Removed reports whether the edge h names has been removed (contracted,
// bought, or superseded by a cheaper parallel edge).
func (g *Graph) Removed(h EdgeHandle) bool { return g.edges[h.idx].removed }

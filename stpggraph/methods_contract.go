package stpggraph

// ContractEdge merges the two endpoints of e into one vertex and returns the
// surviving vertex. If either endpoint is a terminal, the terminal survives
// (forced to the "s" role); if both are terminals, the merged vertex keeps
// exactly one terminal mark. Every other edge touching the absorbed vertex
// is re-homed onto the survivor via AddEdge, so a cheaper parallel edge
// already present wins and the absorbed edge's history is preserved via its
// successor index either way.
func (g *Graph) ContractEdge(e EdgeHandle) Vertex {
	e = g.Resolve(e)
	s, t := g.Source(e), g.Target(e)
	if g.IsTerminal(t) {
		s, t = t, s
	}
	if g.IsTerminal(t) {
		// both endpoints were terminals; the merged vertex keeps one mark.
		g.UnmarkTerminal(t)
	}

	for _, f := range append([]EdgeHandle(nil), g.inc[t]...) {
		n := g.Target(f)
		w := g.Weight(f)
		h := g.edges[f.idx].hist
		g.unlinkIncidence(f)
		g.edges[f.idx].removed = true
		g.edgeCount--

		if n == s {
			g.edges[f.idx].successor = -1 // collapses to a self-loop on the survivor; eliminated
			continue
		}
		newH := g.AddEdge(s, n, w, h)
		g.edges[f.idx].successor = newH.idx
	}
	g.inc[t] = nil
	return s
}

// SuppressVertex removes a non-terminal, degree-2 vertex v by replacing its
// two incident edges with a single direct edge between its two neighbors,
// weighted by their sum. The new edge's history is a Pair node over the two
// suppressed edges, so a later Expand still reaches every original edge
// they represent.
//
// SuppressVertex panics if v is a terminal or does not have degree exactly
// 2; callers (reduce's degree rules) are expected to check first.
func (g *Graph) SuppressVertex(v Vertex) {
	if g.IsTerminal(v) || len(g.inc[v]) != 2 {
		panic("stpggraph: SuppressVertex precondition violated")
	}
	e, f := g.inc[v][0], g.inc[v][1]
	s, t := g.Target(e), g.Target(f)
	w := g.Weight(e) + g.Weight(f)
	ei, fi := e.idx, f.idx

	g.unlinkIncidence(e)
	g.edges[ei].removed = true
	g.edgeCount--
	g.unlinkIncidence(f)
	g.edges[fi].removed = true
	g.edgeCount--

	if s == t {
		g.edges[ei].successor = -1
		g.edges[fi].successor = -1
		return
	}
	newH := g.AddEdge(s, t, w, history{kind: histPair, a: ei, b: fi})
	g.edges[ei].successor = newH.idx
	g.edges[fi].successor = newH.idx
}

// BuyEdge resolves h to its live incarnation, adds it to the partial
// solution and running weight, and contracts it. Reports false (without
// effect) if h's edge was eliminated outright rather than forwarded.
func (g *Graph) BuyEdge(h EdgeHandle) (Vertex, bool) {
	resolved := g.Resolve(h)
	if !resolved.IsValid() {
		return NoVertex, false
	}
	g.partialSolution = append(g.partialSolution, resolved)
	g.solutionWeight += g.Weight(resolved)
	return g.ContractEdge(resolved), true
}

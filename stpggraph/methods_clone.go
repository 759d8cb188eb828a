package stpggraph

// Clone returns a deep, independent copy of g. The copy shares no mutable
// state with g; mutating one never affects the other. If g already carries
// an original-graph snapshot, the clone points at the same (immutable)
// snapshot rather than duplicating it.
func (g *Graph) Clone() *Graph {
	ng := &Graph{
		edges:           append([]edgeRecord(nil), g.edges...),
		inc:             make([][]EdgeHandle, len(g.inc)),
		terminal:        append([]bool(nil), g.terminal...),
		terminalList:    append([]Vertex(nil), g.terminalList...),
		partialSolution: append([]EdgeHandle(nil), g.partialSolution...),
		solutionWeight:  g.solutionWeight,
		vertexCount:     g.vertexCount,
		edgeCount:       g.edgeCount,
		original:        g.original,
	}
	for v := range g.inc {
		ng.inc[v] = append([]EdgeHandle(nil), g.inc[v]...)
	}
	return ng
}

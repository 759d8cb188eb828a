package stpggraph

// CompressGraph relabels vertices to close the gaps left by contraction and
// suppression, dropping any vertex left at degree zero that is not a
// terminal. It returns the forward map from old to new vertex index; a
// dropped vertex maps to -1.
//
// Edge identities, weights, and history are untouched — only the Vertex
// values stored on live edge records and in the terminal set are rewritten;
// a removed record keeps the numbering it was removed under.
// Original-numbered vertices baked into history leaves by prior
// SaveOriginal calls are unaffected, since Expand never consults the live
// vertex numbering.
func (g *Graph) CompressGraph() []int {
	forward := make([]int, g.vertexCount)
	next := 0
	for v := 0; v < g.vertexCount; v++ {
		if len(g.inc[v]) == 0 && !g.terminal[v] {
			forward[v] = -1
			continue
		}
		forward[v] = next
		next++
	}

	newInc := make([][]EdgeHandle, next)
	newTerminal := make([]bool, next)
	newTerminalList := make([]Vertex, 0, len(g.terminalList))
	for v := 0; v < g.vertexCount; v++ {
		nv := forward[v]
		if nv < 0 {
			continue
		}
		newInc[nv] = g.inc[v]
		newTerminal[nv] = g.terminal[v]
		if g.terminal[v] {
			newTerminalList = append(newTerminalList, Vertex(nv))
		}
	}

	for i := range g.edges {
		rec := &g.edges[i]
		if rec.removed {
			continue
		}
		if nv := forward[rec.s]; nv >= 0 {
			rec.s = Vertex(nv)
		}
		if nv := forward[rec.t]; nv >= 0 {
			rec.t = Vertex(nv)
		}
	}

	g.inc = newInc
	g.terminal = newTerminal
	g.terminalList = newTerminalList
	g.vertexCount = next
	return forward
}

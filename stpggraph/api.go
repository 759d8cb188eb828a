package stpggraph

// AddOriginalEdge inserts an edge that is itself one of the instance's
// original edges (as opposed to one synthesized by reduction or
// contraction). origS and origT are the edge's endpoints in the same
// 0-based numbering as s and t — they are recorded verbatim as an
// Original history leaf, since at construction time the live numbering and
// the original numbering coincide.
//
// This is the only way to introduce a histOriginal leaf; every other edge
// in the graph is either inserted this way (by the PACE loader) or derived
// from existing edges by SuppressVertex/ContractEdge.
func (g *Graph) AddOriginalEdge(s, t Vertex, w Weight, origS, origT Vertex) EdgeHandle {
	return g.AddEdge(s, t, w, history{kind: histOriginal, a: int32(origS), b: int32(origT)})
}

// Endpoints returns both endpoints of h as (source, target).
func (g *Graph) Endpoints(h EdgeHandle) (Vertex, Vertex) {
	return g.Source(h), g.Target(h)
}

// SetWeight overwrites the weight of the edge h names. Used by the
// bottleneck Steiner-distance test, which needs to temporarily inflate an
// edge's weight while probing distances around it without disturbing
// incidence-list order (sorted by neighbor, never by weight).
func (g *Graph) SetWeight(h EdgeHandle, w Weight) {
	g.edges[h.idx].weight = w
}

// AllEdges returns a canonical (non-reversed) handle for every live edge
// currently in the graph.
func (g *Graph) AllEdges() []EdgeHandle {
	out := make([]EdgeHandle, 0, g.edgeCount)
	for i := range g.edges {
		if g.edges[i].removed {
			continue
		}
		out = append(out, EdgeHandle{idx: int32(i), rev: false})
	}
	return out
}

// ExpandSolution is a convenience wrapping Expand over g's current partial
// solution (the edges bought via BuyEdge), deduplicating the resulting
// original-edge pairs (undirected, so (u,v) and (v,u) collapse together).
func (g *Graph) ExpandSolution() [][2]Vertex {
	pairs := g.Expand(g.partialSolution)
	seen := make(map[[2]Vertex]bool, len(pairs))
	out := pairs[:0]
	for _, p := range pairs {
		key := p
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}

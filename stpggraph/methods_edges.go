package stpggraph

import "sort"

// FindEdge reports whether an edge between s and t currently exists, and if
// so returns the handle directed s -> t.
func (g *Graph) FindEdge(s, t Vertex) (EdgeHandle, bool) {
	list := g.inc[s]
	i := sort.Search(len(list), func(i int) bool { return g.Target(list[i]) >= t })
	if i < len(list) && g.Target(list[i]) == t {
		return list[i], true
	}
	return NoEdge, false
}

// AddEdge inserts an edge (s, t, w) with the given provenance.
//
// If no edge between s and t exists, it is inserted and its handle
// returned. If one already exists with weight <= w, the existing edge is
// kept (the new history is discarded) and its handle is returned. If the
// existing edge is strictly more expensive, it is removed — forwarding to
// the new edge via its successor index, so any stale handle resolves
// through to the replacement — and the cheaper edge is inserted in its
// place.
func (g *Graph) AddEdge(s, t Vertex, w Weight, h history) EdgeHandle {
	if s == t {
		return NoEdge
	}
	if existing, ok := g.FindEdge(s, t); ok {
		if g.Weight(existing) <= w {
			return existing
		}
		g.unlinkIncidence(existing)
		rec := &g.edges[existing.idx]
		rec.removed = true
		rec.successor = int32(len(g.edges))
		g.edgeCount--
	}

	idx := int32(len(g.edges))
	g.edges = append(g.edges, edgeRecord{s: s, t: t, weight: w, successor: -1, hist: h})
	fwd := EdgeHandle{idx: idx, rev: false}
	g.insertIncidence(s, fwd)
	g.insertIncidence(t, fwd.Reversed())
	g.edgeCount++
	return fwd
}

// RemoveEdge deletes h from the graph without forwarding it anywhere (the
// vertices it used to connect become disconnected from it). Reports false
// if h was already removed.
func (g *Graph) RemoveEdge(h EdgeHandle) bool {
	rec := &g.edges[h.idx]
	if rec.removed {
		return false
	}
	g.unlinkIncidence(EdgeHandle{idx: h.idx, rev: false})
	rec.removed = true
	g.edgeCount--
	return true
}

// Resolve follows h's successor chain through any merges to the edge's
// current live incarnation. Returns NoEdge if the edge was eliminated
// outright (e.g. collapsed into a self-loop by a contraction) rather than
// replaced by another edge.
func (g *Graph) Resolve(h EdgeHandle) EdgeHandle {
	idx := h.idx
	for g.edges[idx].removed {
		succ := g.edges[idx].successor
		if succ < 0 {
			return NoEdge
		}
		idx = succ
	}
	return EdgeHandle{idx: idx, rev: false}
}

// insertIncidence inserts h into v's incidence list, kept sorted by
// neighbor (Target(h)) order.
func (g *Graph) insertIncidence(v Vertex, h EdgeHandle) {
	list := g.inc[v]
	nbr := g.Target(h)
	i := sort.Search(len(list), func(i int) bool { return g.Target(list[i]) >= nbr })
	list = append(list, EdgeHandle{})
	copy(list[i+1:], list[i:])
	list[i] = h
	g.inc[v] = list
}

// unlinkIncidence removes the edge h names from both of its endpoints'
// incidence lists. h may be given in either direction.
func (g *Graph) unlinkIncidence(h EdgeHandle) {
	rec := &g.edges[h.idx]
	g.removeFromIncidence(rec.s, h.idx)
	g.removeFromIncidence(rec.t, h.idx)
}

func (g *Graph) removeFromIncidence(v Vertex, idx int32) {
	list := g.inc[v]
	for i, e := range list {
		if e.idx == idx {
			g.inc[v] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

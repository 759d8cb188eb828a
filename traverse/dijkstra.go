package traverse

import (
	"errors"

	"github.com/goderik01/PACE2018/internal/dheap"
	"github.com/goderik01/PACE2018/stpggraph"
)

// ErrNoSources is returned when a Dijkstra run is configured with no seed
// vertices.
var ErrNoSources = errors.New("traverse: dijkstra requires at least one source")

// Dijkstra runs a multi-source shortest-path search over g from
// cfg.Sources, honoring a distance budget and an early-stop predicate.
//
// It returns, indexed by vertex: dist (shortest known distance, Inf if
// unreached), prevEdge (the edge used to reach the vertex on its shortest
// path, NoEdge for a source or an unreached vertex), and owner (which seed
// vertex's Voronoi region the vertex fell into — the vertex itself is its
// own owner for sources). owner implements the multi-source Voronoi
// partition Mehlhorn's 2-approximation builds on; single-source callers can
// simply ignore it.
func Dijkstra(g *stpggraph.Graph, opts ...DijkstraOption) (dist []stpggraph.Weight, prevEdge []stpggraph.EdgeHandle, owner []stpggraph.Vertex, err error) {
	cfg := DefaultDijkstraOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(cfg.Sources) == 0 {
		return nil, nil, nil, ErrNoSources
	}

	n := g.VertexCount()
	dist = make([]stpggraph.Weight, n)
	prevEdge = make([]stpggraph.EdgeHandle, n)
	owner = make([]stpggraph.Vertex, n)
	visited := make([]bool, n)
	for v := 0; v < n; v++ {
		dist[v] = Inf
		prevEdge[v] = stpggraph.NoEdge
		owner[v] = stpggraph.NoVertex
	}

	h := dheap.New(func(a, b int) bool { return dist[a] < dist[b] })
	for _, s := range cfg.Sources {
		dist[s] = 0
		owner[s] = s
		h.Push(int(s))
	}

	for !h.Empty() {
		u := stpggraph.Vertex(h.Pop())
		if visited[u] {
			continue
		}
		visited[u] = true
		if dist[u] > cfg.MaxDistance {
			break
		}
		if cfg.StopAt != nil && cfg.StopAt(u) {
			break
		}
		for _, e := range g.Incidence(u) {
			v := g.Target(e)
			if visited[v] {
				continue
			}
			nd := dist[u] + g.Weight(e)
			if nd < dist[v] {
				dist[v] = nd
				prevEdge[v] = e
				owner[v] = owner[u]
				h.Push(int(v))
			}
		}
	}
	return dist, prevEdge, owner, nil
}

// PathTo reconstructs the edges of the shortest path from a Dijkstra
// source to v, in root-to-v order, by walking prevEdge backward. Returns
// nil if v is unreached (prevEdge[v] is NoEdge and v is not itself a
// source, i.e. owner[v] != v).
func PathTo(g *stpggraph.Graph, prevEdge []stpggraph.EdgeHandle, owner []stpggraph.Vertex, v stpggraph.Vertex) []stpggraph.EdgeHandle {
	if owner[v] == stpggraph.NoVertex {
		return nil
	}
	var rev []stpggraph.EdgeHandle
	for v != owner[v] {
		e := prevEdge[v]
		if !e.IsValid() {
			return nil
		}
		rev = append(rev, e)
		v = g.Source(e)
	}
	path := make([]stpggraph.EdgeHandle, len(rev))
	for i, e := range rev {
		path[len(rev)-1-i] = e
	}
	return path
}

package starcontract

import (
	"context"
	"sort"

	"github.com/goderik01/PACE2018/internal/dheap"
	"github.com/goderik01/PACE2018/mehlhorn"
	"github.com/goderik01/PACE2018/reduce"
	"github.com/goderik01/PACE2018/stpggraph"
	"github.com/goderik01/PACE2018/traverse"
)

// Solver holds the per-vertex ratio cache that persists across rounds of
// Run, so a vertex whose neighborhood hasn't changed since it was last
// queried doesn't pay for another Dijkstra.
type Solver struct {
	g            *stpggraph.Graph
	bestRatioAt  []ratio
	ratioInvalid []bool
	ranCherry    bool
}

// New returns a Solver over g with every vertex's ratio cache marked
// invalid (computed lazily, the first time Run needs it).
func New(g *stpggraph.Graph) *Solver {
	n := g.VertexCount()
	bestRatioAt := make([]ratio, n)
	ratioInvalid := make([]bool, n)
	for i := range bestRatioAt {
		bestRatioAt[i] = infRatio
		ratioInvalid[i] = true
	}
	return &Solver{g: g, bestRatioAt: bestRatioAt, ratioInvalid: ratioInvalid}
}

// Run contracts stars round after round until at most one terminal
// remains, the context is canceled, or no further progress is possible.
// On cancellation it falls back to a single Mehlhorn 2-approximation pass
// over whatever graph remains and buys its edges, guaranteeing Run always
// leaves behind a connected Steiner tree over the terminals it started
// with (mirroring contract_till_the_bitter_end's stop-signal fallback).
func (s *Solver) Run(ctx context.Context) {
	reduce.BuyZero(s.g)
	reduce.All(s.g)

	for s.g.TerminalCount() > 1 {
		if ctx.Err() != nil {
			s.finalize()
			return
		}

		best := infRatio
		bestCenter := stpggraph.NoVertex
		aborted := false
		for v := stpggraph.Vertex(0); int(v) < s.g.VertexCount(); v++ {
			if ctx.Err() != nil {
				aborted = true
				break
			}
			if s.g.Degree(v) == 0 {
				continue
			}
			if s.ratioInvalid[v] {
				s.bestRatioAt[v] = s.findBestRatioAt(v)
				s.ratioInvalid[v] = false
			}
			if s.bestRatioAt[v].less(best) {
				best = s.bestRatioAt[v]
				bestCenter = v
			}
		}
		if aborted || bestCenter == stpggraph.NoVertex {
			s.finalize()
			return
		}

		star := s.findStar(bestCenter, best)
		s.contractStar(bestCenter, star)
		reduce.NonInvalidating(s.g, &s.ranCherry)
	}
}

// finalize buys a Mehlhorn 2-approximation over whatever is left of the
// graph, the fallback taken on cancellation or when no center improves on
// infRatio (nothing left worth contracting).
func (s *Solver) finalize() {
	for _, e := range mehlhorn.Solve(s.g) {
		s.g.BuyEdge(e)
	}
}

// findBestRatioAt runs a truncated Dijkstra from center, accumulating the
// weight-per-terminal ratio of terminals in increasing-distance order and
// stopping as soon as the running ratio is already at or below the next
// frontier distance (no terminal beyond that point could improve it).
//
// Grounded on star_contractions.hpp's find_best_ratio_at /
// ratio_counting_visitor. Implemented directly on internal/dheap (as
// reduce.ShortestPathDomination does) because the early-stop condition
// needs the evolving distance array inside the same loop that pops it,
// which traverse.Dijkstra's opaque internal heap does not expose.
func (s *Solver) findBestRatioAt(center stpggraph.Vertex) ratio {
	g := s.g
	n := g.VertexCount()
	dist := make([]stpggraph.Weight, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = traverse.Inf
	}
	dist[center] = 0

	h := dheap.New(func(a, b int) bool { return dist[a] < dist[b] })
	h.Push(int(center))

	var r ratio
	for !h.Empty() {
		v := stpggraph.Vertex(h.Pop())
		if visited[v] {
			continue
		}
		visited[v] = true

		if r.work() >= 1 && r.lessEqualInt(int64(dist[v])) {
			break
		}
		if g.IsTerminal(v) {
			r.weight += int64(dist[v])
			r.terminalCount++
		}

		for _, e := range g.Incidence(v) {
			w := g.Target(e)
			nd := dist[v] + g.Weight(e)
			if !visited[w] && nd < dist[w] {
				dist[w] = nd
				h.Push(int(w))
			}
		}
	}
	return r
}

// findStar runs a full Dijkstra from center and replays it, in
// increasing-distance order, against the two effects star_contractions.hpp
// interleaves in a single pass: collecting terminals into the star (until
// the accumulated ratio reaches bestRatio) and invalidating the ratio
// cache of every vertex whose cached-ratio-plus-bestRatio reaches its own
// distance from center (meaning the new merged vertex could change its
// best star). The full Dijkstra's prevEdge tree is discarded: contractStar
// buys its edges through mehlhorn.Solve instead (see its doc comment).
func (s *Solver) findStar(center stpggraph.Vertex, bestRatio ratio) []stpggraph.Vertex {
	g := s.g
	n := g.VertexCount()
	dist, _, _, err := traverse.Dijkstra(g, traverse.WithSources(center))
	if err != nil {
		return nil
	}

	order := make([]stpggraph.Vertex, 0, n)
	for v := stpggraph.Vertex(0); int(v) < n; v++ {
		if dist[v] < traverse.Inf {
			order = append(order, v)
		}
	}
	sort.SliceStable(order, func(i, j int) bool { return dist[order[i]] < dist[order[j]] })

	var star []stpggraph.Vertex
	completed := false
	var cur ratio
	for _, v := range order {
		if s.bestRatioAt[v].add(bestRatio).greaterEqualInt(int64(dist[v])) {
			s.ratioInvalid[v] = true
		}
		if completed || !g.IsTerminal(v) {
			continue
		}
		star = append(star, v)
		cur.weight += int64(dist[v])
		cur.terminalCount++
		if cur.work() >= 1 && cur.lessEqual(bestRatio) {
			completed = true
		}
	}
	return star
}

// contractStar buys a Steiner tree over center and the star's terminals
// and nothing else, per spec.md §4.6 step 4's redesign: every other
// terminal with live edges is unmarked for the duration, center and every
// vertex in star are temporarily promoted to terminals, mehlhorn.Solve
// runs over that terminal set, and every edge it returns is bought (each
// buy performs one contraction, same as the original). Afterward the
// promoted vertices that were not real terminals are demoted again, except
// the survivor of the last buy, which keeps its mark because it now holds
// the star's real terminals; every other terminal that still has live
// edges is marked again (one absorbed along the way is part of that
// survivor).
func (s *Solver) contractStar(center stpggraph.Vertex, star []stpggraph.Vertex) []stpggraph.EdgeHandle {
	g := s.g
	wasReal := make(map[stpggraph.Vertex]bool, len(star)+1)
	marks := append([]stpggraph.Vertex{center}, star...)
	for _, v := range marks {
		wasReal[v] = g.IsTerminal(v)
		g.MarkTerminal(v)
	}
	var others []stpggraph.Vertex
	for _, t := range append([]stpggraph.Vertex(nil), g.Terminals()...) {
		if _, inStar := wasReal[t]; !inStar && g.Degree(t) > 0 {
			others = append(others, t)
			g.UnmarkTerminal(t)
		}
	}

	edges := mehlhorn.Solve(g)

	survivor := stpggraph.NoVertex
	var bought []stpggraph.EdgeHandle
	for _, e := range edges {
		if v, ok := g.BuyEdge(e); ok {
			survivor = v
			bought = append(bought, e)
		}
	}

	for _, v := range marks {
		if !wasReal[v] && v != survivor {
			g.UnmarkTerminal(v)
		}
	}
	for _, t := range others {
		if g.Degree(t) > 0 {
			g.MarkTerminal(t)
		}
	}
	return bought
}

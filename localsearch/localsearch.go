package localsearch

import (
	"context"
	"math/rand"

	"github.com/goderik01/PACE2018/dreyfuswagner"
	"github.com/goderik01/PACE2018/mehlhorn"
	"github.com/goderik01/PACE2018/stpggraph"
)

// Run searches for a low-weight Steiner tree over g's terminal set via
// randomized destroy/repair rounds, returning the best edge set found
// (valid against g) or nil if g has fewer than two terminals or no initial
// Mehlhorn solution exists. g is never bought into: every round only
// toggles temporary terminal marks, restored before the round returns — see
// the package doc for why.
//
// Grounded on heuristics.hpp's end_heu: a solution pool capped at
// cfg.PoolCap, FNV-hash dedup, destroy sizes drawn from cfg.VertSizes,
// repair via mehlhorn.Solve with fake terminals, a cfg.TieBreakPercent
// chance of accepting an equal-weight repair, and a Dreyfus–Wagner folding
// attempt every cfg.RefineEvery iterations.
func Run(ctx context.Context, g *stpggraph.Graph, opts ...Option) []stpggraph.EdgeHandle {
	cfg := newConfig(opts)

	real := append([]stpggraph.Vertex(nil), g.Terminals()...)
	if len(real) < 2 {
		return nil
	}
	isReal := make(map[stpggraph.Vertex]bool, len(real))
	for _, v := range real {
		isReal[v] = true
	}

	initial := mehlhorn.Solve(g)
	if initial == nil {
		return nil
	}
	initial, initialWeight := cleanUpSolution(g, initial, real[0], isReal)
	best := solution{edges: initial, weight: initialWeight, hash: hashSolution(g, initial)}

	pl := newPool(cfg.PoolCap)
	pl.push(best)
	cur := best

	for i := 0; i < cfg.MaxIterations; i++ {
		if ctx.Err() != nil {
			break
		}

		// 1. Pick a current solution: best-so-far, or a random pool member.
		if cfg.Rng.Intn(2) == 0 {
			if s, ok := pl.pickRandom(cfg.Rng); ok {
				cur = s
			}
		} else {
			cur = best
		}

		// 2. Destroy: draw k candidate vertices from cur's branching points.
		k := cfg.VertSizes[cfg.Rng.Intn(len(cfg.VertSizes))]
		targets := pickDestroyTargets(cfg.Rng, branchingVertices(g, cur.edges), k)

		// 3. Repair.
		edges, weight := repair(g, real, isReal, cur.edges, targets)
		if edges == nil {
			continue
		}

		// 4. Accept on strict improvement, or with TieBreakPercent
		// probability on a tie; reject an already-known non-improving hash.
		hash := hashSolution(g, edges)
		if pl.seen(hash) && weight >= cur.weight {
			continue
		}
		if weight > cur.weight {
			continue
		}
		if weight == cur.weight && cfg.Rng.Intn(100) >= cfg.TieBreakPercent {
			continue
		}

		cand := solution{edges: edges, weight: weight, hash: hash}
		pl.push(cand)
		cur = cand
		if cand.weight < best.weight {
			best = cand
		}

		// 5. Periodic Dreyfus–Wagner folding over a random pool member.
		if (i+1)%cfg.RefineEvery == 0 {
			if refined, ok := tryRefine(g, real, isReal, pl, cfg.Rng); ok && refined.weight < best.weight {
				pl.push(refined)
				best = refined
				cur = refined
			}
		}
	}

	return best.edges
}

// tryRefine builds a randomized solution structure over a random pool
// member's tree and solves it exactly via dreyfuswagner, folding in the
// result if it is feasible. Never mutates g: BuildStructure and Solve both
// take g as a read-only substrate given an explicit edge list.
func tryRefine(g *stpggraph.Graph, real []stpggraph.Vertex, isReal map[stpggraph.Vertex]bool, pl *pool, rng *rand.Rand) (solution, bool) {
	cand, ok := pl.pickRandom(rng)
	if !ok {
		return solution{}, false
	}
	structure := dreyfuswagner.BuildStructure(g, cand.edges, rng)
	edges, ok := dreyfuswagner.Solve(g, structure)
	if !ok {
		return solution{}, false
	}
	edges, weight := cleanUpSolution(g, edges, real[0], isReal)
	if edges == nil {
		return solution{}, false
	}
	return solution{edges: edges, weight: weight, hash: hashSolution(g, edges)}, true
}

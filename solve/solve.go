// Package solve wires reduce, starcontract, and localsearch into the single
// pipeline spec.md §2's data-flow diagram describes: cheap reductions to a
// fixpoint, compress numbering, mid-cost reductions, save an original-edge
// snapshot, star contraction within a time budget, local-search refinement,
// expansion to original edges.
//
// Grounded on star_contractions.hpp's contract_till_the_bitter_end /
// print_emergency_solution for the overall shape, and debug.hpp's
// MyTimer/TIMER scoped-budget macro for the phase-deadline split — here
// translated to two context.Context values derived from one outer deadline,
// since context cancellation is Go's idiomatic replacement for a
// destructor-scoped timer.
package solve

import (
	"context"
	"time"

	"github.com/goderik01/PACE2018/localsearch"
	"github.com/goderik01/PACE2018/reduce"
	"github.com/goderik01/PACE2018/starcontract"
	"github.com/goderik01/PACE2018/stpggraph"
)

// Run drives g's full reduction/contraction/refinement pipeline and
// returns whichever graph — g itself, carrying the star-contraction
// solution, or an independent pre-contraction clone carrying a cheaper
// local-search solution — ends up with the lower SolutionWeight. The
// returned graph's ExpandSolution gives the final tree in original-edge
// terms.
//
// Local search never runs over g directly: see localsearch's package doc
// for why a read-only destroy/repair search needs a topology star
// contraction hasn't yet physically contracted. Run takes g.Clone() right
// after the shared reduction pass, before star contraction starts buying
// edges, and hands that clone to localsearch.Run. If the local-search
// candidate beats star contraction's own result, Run commits it into that
// same clone (the only graph its edge handles are valid against) and
// returns the clone instead of g.
func Run(ctx context.Context, g *stpggraph.Graph, opts ...Option) *stpggraph.Graph {
	cfg := newConfig(opts)
	logger := cfg.Logger

	if g.TerminalCount() < 1 {
		return g
	}
	if g.TerminalCount() == 1 {
		g.SaveOriginal()
		return g
	}

	reduce.BuyZero(g)
	reduce.All(g)
	g.SaveOriginal()
	searchGraph := g.Clone()

	starCtx, localCtx, cleanup := splitDeadline(ctx, cfg.LocalSearchFraction)
	defer cleanup()

	logger.Info("star contraction starting",
		"vertices", g.VertexCount(), "terminals", g.TerminalCount())
	starcontract.New(g).Run(starCtx)
	logger.Info("star contraction done", "weight", g.SolutionWeight())

	if searchGraph.TerminalCount() < 2 {
		return g
	}

	candidate := localsearch.Run(localCtx, searchGraph, cfg.LocalSearchOpts...)
	if candidate == nil {
		return g
	}

	var candidateWeight stpggraph.Weight
	for _, e := range candidate {
		candidateWeight += searchGraph.Weight(e)
	}
	logger.Info("local search done", "weight", candidateWeight)

	if searchGraph.SolutionWeight()+candidateWeight >= g.SolutionWeight() {
		return g
	}
	for _, e := range candidate {
		searchGraph.BuyEdge(e)
	}
	logger.Info("local search solution wins", "weight", searchGraph.SolutionWeight())
	return searchGraph
}

// splitDeadline carves an outer deadline into a star-contraction budget
// (the (1-localFraction) share) and hands the rest of the same deadline to
// local search. A context without a deadline is passed through unsplit for
// both phases — cancellation still propagates, there is simply no fixed
// wall-clock budget to divide. cleanup must be called once the star
// contraction phase has returned, mirroring MyTimer's destructor resetting
// the shared budget.
func splitDeadline(ctx context.Context, localFraction float64) (star, local context.Context, cleanup func()) {
	deadline, ok := ctx.Deadline()
	if !ok {
		return ctx, ctx, func() {}
	}
	total := time.Until(deadline)
	if total <= 0 {
		starCtx, cancel := context.WithDeadline(ctx, deadline)
		return starCtx, ctx, cancel
	}
	starBudget := time.Duration(float64(total) * (1 - localFraction))
	starCtx, cancel := context.WithDeadline(ctx, time.Now().Add(starBudget))
	return starCtx, ctx, cancel
}

// Package localsearch implements the randomized destroy/repair driver that
// refines a Steiner tree solution: spec.md §4.8, grounded on
// original_source/src/heuristics.hpp's end_heu.
//
// Unlike star contraction, which buys edges into the caller's graph as it
// goes, localsearch never mutates the graph it searches over: mehlhorn.Solve
// and temporary terminal marks are enough to score a candidate tree, so an
// entire destroy/repair round costs nothing but a handful of Dijkstra runs
// and produces a plain edge list. Run returns its best candidate; the caller
// decides whether and how to commit it (typically via a sequence of
// g.BuyEdge calls against the same graph lineage the candidates were scored
// against — see solve.Run).
//
// This is a deliberate departure from end_heu's own structure, documented in
// DESIGN.md: the original's tmp graph only ever accumulates a partial_solution
// list alongside a fixed topology, so "trying a solution" there is cheap by
// construction. This package's stpggraph.Graph instead contracts physically
// on BuyEdge, which would destroy the very topology destroy/repair needs to
// explore alternatives over — so the search stays read-only and the caller
// is expected to hand it a pre-contraction snapshot (typically g.Clone()
// taken right after the cheap reductions, before star contraction commits to
// a specific tree).
package localsearch

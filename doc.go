// Package pace2018 collects the subpackages of a PACE 2018 Steiner Tree
// Problem in Graphs (STPG) approximate solver, track 1.
//
// An instance is an undirected edge-weighted graph with a distinguished
// terminal subset; a solution is a minimum-weight connected subgraph
// spanning the terminals, optionally routing through non-terminal Steiner
// points. This module reads/writes the competition's .gr text format,
// represents instances under contraction-aware history tracking, reduces
// an instance to a smaller equivalent one by a battery of safe rules, and
// produces an approximate solution by star contraction, refined by
// destroy-and-repair local search that periodically folds pooled solutions
// through a Dreyfus–Wagner exact solve.
//
// Under the hood:
//
//	stpggraph/    — dense-vertex incidence-list graph with provenance
//	                history through suppression, contraction and merge.
//	reduce/       — safe instance-shrinking rules run to a fixpoint.
//	starcontract/ — greedy star contraction driving the approximation.
//	dreyfuswagner/— exact minimum Steiner tree DP, used by local search.
//	localsearch/  — destroy-and-repair refinement of a contracted solution.
//	pace/         — .gr format reader/writer.
//	solve/        — the full pipeline, wired end to end.
//	gen/          — synthetic instance generator for tests.
//	cmd/stpg/     — command-line entry point.
//
// See SPEC_FULL.md for the full specification and DESIGN.md for how each
// package is grounded.
package pace2018

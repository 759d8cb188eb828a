// Package dreyfuswagner implements a bounded exact Steiner-tree solver
// driven by an externally supplied solution structure: a randomized full
// binary tree over the terminals, given as a sequence of (left, right)
// index pairs into earlier positions, or (-1, terminal) leaves.
//
// For each position it computes a distance array representing the minimum
// weight of a subtree realizing that position's shape rooted near each
// vertex: a leaf's array is a plain single-source Dijkstra from its
// terminal; an internal node's array starts as the sum of its two
// children's arrays and is then relaxed through the graph's edges exactly
// as Dijkstra would, which is valid because edge weights are never
// negative (every vertex seeded into the heap at once computes a
// Bellman-style combine in one pass instead of iterating to a fixpoint).
//
// Grounded on original_source/src/heuristics.hpp's dreyfus_zid: the same
// recurrence, the same size guardrail (structure length times vertex count
// bounded at 4*10^8, beyond which the call gives up rather than run), and
// the same predecessor-edge stack-based recovery walk.
package dreyfuswagner

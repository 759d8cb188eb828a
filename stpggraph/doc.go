// Package stpggraph implements the mutating graph substrate the Steiner
// tree solver operates on: an append-only arena of edge records, sorted
// incidence lists, edge contraction, parallel-edge resolution, degree-2
// suppression, vertex-index compression, and a history DAG that lets any
// edge present in the evolving graph be expanded back to the set of
// original edges (from the PACE input) it represents.
//
// Vertices are dense non-negative integers in [0, VertexCount). An edge's
// identity is its arena index; two EdgeHandle values with the same index
// are the same edge. Removed edges keep their arena slot — only their
// Removed flag flips — so indices captured before a removal stay valid for
// history and successor-chain lookups.
//
// This package is deliberately single-threaded: spec.md's concurrency
// model (one cooperative goroutine, no locks, no background tasks) means
// none of the synchronization the teacher's general-purpose core.Graph
// carries (muVert, muEdgeAdj) applies here — see DESIGN.md for why those
// are dropped rather than adapted.
package stpggraph

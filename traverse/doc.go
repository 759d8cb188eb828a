// Package traverse provides the graph-walking kernels the rest of the
// solver is built on: an iterative depth-first walk with a tree-edge
// visitor callback, and a multi-source Dijkstra shortest-path search with
// an early-stop predicate and a distance budget.
//
// Both kernels operate directly on *stpggraph.Graph and use an explicit
// stack or heap rather than recursion, since instances the solver targets
// can have far more vertices than a goroutine's default stack comfortably
// recurses over.
package traverse

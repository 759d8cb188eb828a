// Package reduce implements the instance-shrinking heuristics the solver
// runs before and during the search: rules that are always safe to apply
// (degree-1/2 rules, zero-weight edges, cherry and shortest-path
// domination) and one that is safe only once, because it promotes vertices
// to terminals (the bottleneck Steiner/terminal-distance test).
//
// Each rule is exposed individually so tests can invoke a specific one; Cheap, All, and NonInvalidating compose them
// into the fixpoint drivers the rest of the solver calls.
package reduce

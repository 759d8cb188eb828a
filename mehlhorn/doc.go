// Package mehlhorn implements the Mehlhorn 2-approximation for the Steiner
// tree problem: multi-source Dijkstra from every terminal partitions the
// graph into Voronoi cells, a complete auxiliary graph over terminals is
// built from edges crossing cell boundaries, and a minimum spanning tree of
// that auxiliary graph expands back into a Steiner tree over the original
// graph whose weight is at most 2(1 - 1/|R|) times optimal.
//
// Grounded on spec.md §4.4, which is the only detailed algorithm source
// available here: the reference solver delegates this step to an opaque
// third-party call (paal::steiner_tree_greedy) with no algorithm of its own
// to translate. The auxiliary-graph MST step follows the sort-edges/
// union-find shape of the teacher's prim_kruskal.Kruskal.
package mehlhorn

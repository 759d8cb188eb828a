// Package unionfind implements a path-compressed, union-by-rank disjoint-set
// structure over dense integer elements, with an arbitrary per-class integer
// label carried on the representative.
//
// The label generalizes the teacher's (lvlath/prim_kruskal) inline
// map[string]string-based disjoint set, keyed here by contiguous vertex
// indices rather than strings, and adds a label slot so callers can attach a
// component identity to a class without a second parallel map.
package unionfind

// UnionFind is a disjoint-set structure over the dense range [0, n).
type UnionFind struct {
	parent []int
	rank   []int
	size   []int
	label  []int
}

// New returns a UnionFind over n singleton classes {0}, {1}, ..., {n-1},
// each initially labeled with its own index.
func New(n int) *UnionFind {
	uf := &UnionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
		size:   make([]int, n),
		label:  make([]int, n),
	}
	for i := 0; i < n; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
		uf.label[i] = i
	}
	return uf
}

// Find returns the representative of x's class, compressing the path from
// x to the root along the way.
//
// Complexity: amortized O(α(n)).
func (uf *UnionFind) Find(x int) int {
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[x] != root {
		uf.parent[x], x = root, uf.parent[x]
	}
	return root
}

// Same reports whether x and y are in the same class.
func (uf *UnionFind) Same(x, y int) bool {
	return uf.Find(x) == uf.Find(y)
}

// Label returns the label carried by x's class representative.
func (uf *UnionFind) Label(x int) int {
	return uf.label[uf.Find(x)]
}

// SetLabel overwrites the label of x's class representative.
func (uf *UnionFind) SetLabel(x, label int) {
	uf.label[uf.Find(x)] = label
}

// ClassSize returns the number of elements currently in x's class.
func (uf *UnionFind) ClassSize(x int) int {
	return uf.size[uf.Find(x)]
}

// Union merges the classes of x and y, by rank, and returns the new
// representative. If x and y are already in the same class, it is a no-op
// and returns that shared representative. The surviving root keeps its own
// label; callers that need the merged label to come from a specific side
// should call SetLabel afterward.
//
// Complexity: amortized O(α(n)).
func (uf *UnionFind) Union(x, y int) int {
	rx, ry := uf.Find(x), uf.Find(y)
	if rx == ry {
		return rx
	}
	if uf.rank[rx] > uf.rank[ry] {
		rx, ry = ry, rx
	}
	uf.parent[rx] = ry
	uf.size[ry] += uf.size[rx]
	if uf.rank[rx] == uf.rank[ry] {
		uf.rank[ry]++
	}
	return ry
}

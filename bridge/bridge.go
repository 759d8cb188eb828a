package bridge

import (
	"github.com/goderik01/PACE2018/internal/unionfind"
	"github.com/goderik01/PACE2018/stpggraph"
)

// Incremental maintains, over a fixed vertex set [0, n), both the ordinary
// connected components and the 2-edge-connected (bridge-free) components as
// edges are added one at a time via Link.
//
// The bridge-components are organized as a forest over component
// identities: each non-root bridge-component has a parent bridge-component
// and the tree edge (a bridge) that connects them. Link maintains this
// forest, joining components outright when an edge connects two that were
// previously separate, or walking up to the two sides' lowest common
// ancestor and condensing every bridge-component along the way into one
// when an edge closes a cycle within an already-connected component.
type Incremental struct {
	components *unionfind.UnionFind // ordinary connectivity
	bcc        *unionfind.UnionFind // 2-edge-connected components

	parentBC   []int
	parentEdge []stpggraph.EdgeHandle

	visited []bool
}

// New returns an Incremental structure over n initially-isolated vertices.
func New(n int) *Incremental {
	parentBC := make([]int, n)
	parentEdge := make([]stpggraph.EdgeHandle, n)
	for i := range parentBC {
		parentBC[i] = -1
		parentEdge[i] = stpggraph.NoEdge
	}
	return &Incremental{
		components: unionfind.New(n),
		bcc:        unionfind.New(n),
		parentBC:   parentBC,
		parentEdge: parentEdge,
		visited:    make([]bool, n),
	}
}

func (inc *Incremental) componentLabel(v stpggraph.Vertex) int {
	return inc.components.Find(inc.bcc.Find(int(v)))
}

// SameComponent reports whether u and v are connected at all.
func (inc *Incremental) SameComponent(u, v stpggraph.Vertex) bool {
	return inc.componentLabel(u) == inc.componentLabel(v)
}

// SameBridgeComponent reports whether u and v are in the same 2-edge-
// connected component (connected by at least two edge-disjoint paths, or
// identical).
func (inc *Incremental) SameBridgeComponent(u, v stpggraph.Vertex) bool {
	return inc.bcc.Find(int(u)) == inc.bcc.Find(int(v))
}

func (inc *Incremental) getParentBC(bcu int) int {
	pbc := inc.parentBC[inc.bcc.Find(bcu)]
	if pbc != -1 {
		pbc = inc.bcc.Find(pbc)
	}
	return pbc
}

func (inc *Incremental) getParentEdge(bcu int) stpggraph.EdgeHandle {
	return inc.parentEdge[inc.bcc.Find(bcu)]
}

// Link adds edge e (read from g) to the structure and returns every edge
// that was a bridge before this call and is rendered non-bridge by it —
// the bridges on the cycle e just closed, now condensed into e's
// bridge-component. Returns nil if e joins two previously-disconnected
// components (no bridges removed) or if e's endpoints were already in the
// same bridge-component (e itself adds nothing new).
func (inc *Incremental) Link(g *stpggraph.Graph, e stpggraph.EdgeHandle) []stpggraph.EdgeHandle {
	u, v := g.Source(e), g.Target(e)
	if inc.SameBridgeComponent(u, v) {
		return nil
	}
	if !inc.SameComponent(u, v) {
		inc.joinComponents(u, v, e)
		return nil
	}
	return inc.condense(u, v)
}

func (inc *Incremental) joinComponents(u, v stpggraph.Vertex, e stpggraph.EdgeHandle) {
	bcu := inc.bcc.Find(int(u))
	bcv := inc.bcc.Find(int(v))
	cu := inc.componentLabel(u)
	cv := inc.componentLabel(v)

	if inc.components.ClassSize(cu) > inc.components.ClassSize(cv) {
		cu, cv = cv, cu
		bcu, bcv = bcv, bcu
	}

	inc.evert(bcu)
	inc.parentBC[bcu] = bcv
	inc.parentEdge[bcu] = e
	inc.components.Union(cu, cv)
}

func (inc *Incremental) condense(u, v stpggraph.Vertex) []stpggraph.EdgeHandle {
	bcu := inc.bcc.Find(int(u))
	bcv := inc.bcc.Find(int(v))
	bcz := inc.findLCA(bcu, bcv)

	var removed []stpggraph.EdgeHandle
	var toLink []int
	for _, x := range [2]int{bcu, bcv} {
		bcx := x
		for bcx != bcz {
			removed = append(removed, inc.getParentEdge(bcx))
			toLink = append(toLink, bcx)
			bcx = inc.getParentBC(bcx)
		}
	}

	bczParent := inc.getParentBC(bcz)
	bczEdge := inc.getParentEdge(bcz)
	newBCZ := bcz
	for _, bcx := range toLink {
		newBCZ = inc.bcc.Union(bcx, bcz)
	}
	inc.parentBC[newBCZ] = bczParent
	inc.parentEdge[newBCZ] = bczEdge
	return removed
}

// findLCA locates the lowest common ancestor of bridge-components bcu and
// bcv in the bridge-component forest, via alternating single-step ascent
// with a visited marker, cleaning the marker back up before returning.
func (inc *Incremental) findLCA(bcu, bcv int) int {
	bcuStart, bcvStart := bcu, bcv
	lca := -1
	inc.visited[bcu] = true
	inc.visited[bcv] = true
loop:
	for {
		if p := inc.getParentBC(bcu); p != -1 {
			bcu = p
			if inc.visited[bcu] {
				lca = bcu
				break loop
			}
			inc.visited[bcu] = true
		}
		if p := inc.getParentBC(bcv); p != -1 {
			bcv = p
			if inc.visited[bcv] {
				lca = bcv
				break loop
			}
			inc.visited[bcv] = true
		}
	}

	for _, x := range [2]int{bcuStart, bcvStart} {
		y := x
		for inc.parentBC[y] != -1 && inc.visited[y] {
			inc.visited[y] = false
			y = inc.parentBC[y]
		}
		inc.visited[y] = false
	}
	for i := range inc.visited {
		inc.visited[i] = false
	}
	return lca
}

// evert reroots the bridge-component tree containing bcu so that bcu
// itself becomes the root, reversing the parent/edge pointers along the
// old path to the root.
func (inc *Incremental) evert(bcu int) {
	bcu = inc.bcc.Find(bcu)
	curr := bcu
	e := inc.getParentEdge(curr)
	par := inc.getParentBC(curr)
	for par != -1 {
		pp := inc.getParentBC(par)
		pe := inc.getParentEdge(par)
		inc.parentBC[par] = curr
		inc.parentEdge[par] = e
		e = pe
		curr = par
		par = pp
	}
	inc.parentBC[bcu] = -1
	inc.parentEdge[bcu] = stpggraph.NoEdge
}

package traverse

import (
	"errors"
	"math"

	"github.com/goderik01/PACE2018/stpggraph"
)

// ErrStopTraversal is a sentinel DFS's onTreeEdge callback can return to end
// a walk early without that counting as a failure; DFS returns nil, not this
// error, when stopped this way. Dijkstra takes no callbacks and never uses it.
var ErrStopTraversal = errors.New("traverse: stop traversal")

// Inf is the distance reported for a vertex Dijkstra never reached.
const Inf = stpggraph.Weight(math.MaxInt64 / 2)

// DijkstraOptions configures a Dijkstra run. The zero value is not valid;
// build one with DefaultDijkstraOptions.
type DijkstraOptions struct {
	Sources     []stpggraph.Vertex
	MaxDistance stpggraph.Weight
	StopAt      func(v stpggraph.Vertex) bool
}

// DijkstraOption mutates a DijkstraOptions in place.
type DijkstraOption func(*DijkstraOptions)

// DefaultDijkstraOptions returns an unbounded single-source-less
// configuration; callers must supply WithSources.
func DefaultDijkstraOptions() DijkstraOptions {
	return DijkstraOptions{MaxDistance: Inf}
}

// WithSources sets the seed vertices, each starting at distance zero. For a
// single-source search pass exactly one vertex; for Mehlhorn's Voronoi
// partition pass all current terminals.
func WithSources(vs ...stpggraph.Vertex) DijkstraOption {
	return func(o *DijkstraOptions) { o.Sources = vs }
}

// WithMaxDistance prunes the frontier once the best known distance to the
// vertex about to be finalized exceeds d. Used by the bounded bidirectional
// search in the bottleneck Steiner-distance test.
func WithMaxDistance(d stpggraph.Weight) DijkstraOption {
	return func(o *DijkstraOptions) { o.MaxDistance = d }
}

// WithStopAt installs an early-exit predicate, checked each time a vertex
// is finalized (popped from the heap with its distance settled). Returning
// true ends the search immediately, leaving dist/prevEdge/owner populated
// for every vertex finalized so far.
func WithStopAt(fn func(v stpggraph.Vertex) bool) DijkstraOption {
	return func(o *DijkstraOptions) { o.StopAt = fn }
}

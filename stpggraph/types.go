package stpggraph

// Vertex is a dense, zero-based vertex index.
type Vertex int32

// NoVertex is the sentinel returned where no vertex applies.
const NoVertex Vertex = -1

// Weight is an edge weight. PACE instances use non-negative integers; kept
// as int64 so accumulated tree weights never overflow for the instance
// sizes the format allows.
type Weight int64

// historyKind tags the three shapes a history node can take.
type historyKind uint8

const (
	// histOriginal is a leaf: the edge is exactly an edge of the PACE
	// input, identified by its 0-based endpoints in original numbering.
	histOriginal historyKind = iota
	// histExternal is a one-level indirection into the snapshot taken by
	// SaveOriginal: resolving it continues within the snapshot's own
	// history DAG at the given arena index.
	histExternal
	// histPair is an internal node produced by SuppressVertex: the edge
	// stands for the concatenation of two earlier edges, referenced by
	// their arena index in the graph that created them.
	histPair
)

// history is the provenance of one edge record.
type history struct {
	kind historyKind
	a, b int32
}

// edgeRecord is one arena slot. Both the forward and reverse EdgeHandle
// views of an edge share the same record.
type edgeRecord struct {
	s, t      Vertex
	weight    Weight
	removed   bool
	successor int32 // arena index this edge forwards to after a merge, or -1
	hist      history
}

// EdgeHandle is a directed view onto an edge record: idx names the arena
// slot, rev selects which stored endpoint is "source" from this handle's
// point of view.
type EdgeHandle struct {
	idx int32
	rev bool
}

// NoEdge is the zero value of EdgeHandle with idx -1; IsValid reports false
// for it.
var NoEdge = EdgeHandle{idx: -1}

// IsValid reports whether h names a real arena slot.
func (h EdgeHandle) IsValid() bool { return h.idx >= 0 }

// Index returns the arena index identifying this edge, independent of
// direction. Two handles with the same Index refer to the same edge.
func (h EdgeHandle) Index() int32 { return h.idx }

// Reversed returns the handle viewed from the opposite endpoint.
func (h EdgeHandle) Reversed() EdgeHandle { return EdgeHandle{idx: h.idx, rev: !h.rev} }

// Graph is an arena-based mutable multigraph: vertices are dense indices,
// edges live in an append-only arena, and incidence lists are kept sorted
// by neighbor index. A Graph started life as a PACE instance and is
// progressively rewritten in place by reduction, contraction, and
// suppression; SaveOriginal freezes a point-in-time copy so the final
// solution edges can always be traced back to the instance's own edges.
type Graph struct {
	edges []edgeRecord
	inc   [][]EdgeHandle

	terminal     []bool
	terminalList []Vertex

	partialSolution []EdgeHandle
	solutionWeight  Weight

	vertexCount int // count of vertex slots, suppressed and isolated ones included until CompressGraph drops them
	edgeCount   int // count of non-removed edges

	original *Graph // snapshot from SaveOriginal, nil until taken
}

// New returns an empty graph over n vertices, none of them terminals.
func New(n int) *Graph {
	return &Graph{
		edges: make([]edgeRecord, 0),
		inc:   make([][]EdgeHandle, n),
		terminal:    make([]bool, n),
		vertexCount: n,
	}
}

// VertexCount returns the number of vertex slots currently in the graph,
// including any left with degree zero.
func (g *Graph) VertexCount() int { return g.vertexCount }

// EdgeCount returns the number of edges currently present (not removed).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// TerminalCount returns the number of vertices currently marked terminal.
func (g *Graph) TerminalCount() int { return len(g.terminalList) }

// Terminals returns the current terminal set. Callers must not mutate the
// returned slice.
func (g *Graph) Terminals() []Vertex { return g.terminalList }

// IsTerminal reports whether v is currently marked as a terminal.
func (g *Graph) IsTerminal(v Vertex) bool { return g.terminal[v] }

// SolutionWeight returns the total weight of edges bought so far via BuyEdge.
func (g *Graph) SolutionWeight() Weight { return g.solutionWeight }

// PartialSolution returns the edges bought so far via BuyEdge. Callers must
// not mutate the returned slice.
func (g *Graph) PartialSolution() []EdgeHandle { return g.partialSolution }

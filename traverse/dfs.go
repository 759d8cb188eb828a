package traverse

import "github.com/goderik01/PACE2018/stpggraph"

// dfsFrame is one level of an iterative depth-first walk: the vertex
// currently being explored and the index of the next incidence entry to
// try.
type dfsFrame struct {
	v   stpggraph.Vertex
	idx int
}

// DFS walks the component of g reachable from start, depth-first, using an
// explicit stack. onTreeEdge, if non-nil, is called exactly once per edge
// of the resulting DFS tree, as (parent, child, edge-used-to-reach-child).
// Returning ErrStopTraversal from onTreeEdge ends the walk early (DFS then
// returns the visited set as populated so far and a nil error); any other
// error aborts the walk and is returned as-is.
func DFS(g *stpggraph.Graph, start stpggraph.Vertex, onTreeEdge func(parent, child stpggraph.Vertex, via stpggraph.EdgeHandle) error) ([]bool, error) {
	n := g.VertexCount()
	visited := make([]bool, n)
	visited[start] = true
	stack := []dfsFrame{{v: start}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		inc := g.Incidence(top.v)
		descended := false
		for top.idx < len(inc) {
			e := inc[top.idx]
			top.idx++
			child := g.Target(e)
			if visited[child] {
				continue
			}
			visited[child] = true
			if onTreeEdge != nil {
				if err := onTreeEdge(top.v, child, e); err != nil {
					if err == ErrStopTraversal {
						return visited, nil
					}
					return visited, err
				}
			}
			stack = append(stack, dfsFrame{v: child})
			descended = true
			break
		}
		if !descended && top.idx >= len(inc) {
			stack = stack[:len(stack)-1]
		}
	}
	return visited, nil
}

// Reachable returns the set of vertices reachable from start.
func Reachable(g *stpggraph.Graph, start stpggraph.Vertex) []bool {
	visited, _ := DFS(g, start, nil)
	return visited
}

// AllTerminalsConnected reports whether every current terminal is
// reachable from the first one — the cheap necessary precondition for a
// Steiner tree to exist at all.
func AllTerminalsConnected(g *stpggraph.Graph) bool {
	terminals := g.Terminals()
	if len(terminals) <= 1 {
		return true
	}
	visited := Reachable(g, terminals[0])
	for _, t := range terminals {
		if !visited[t] {
			return false
		}
	}
	return true
}

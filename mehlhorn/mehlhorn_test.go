package mehlhorn

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goderik01/PACE2018/stpggraph"
)

func TestSolveStarOfFourPicksAllFourSpokes(t *testing.T) {
	// A hub (0, non-terminal) with four terminal spokes (1..4). Every
	// spoke is the cheapest (and only) way to reach its terminal, so the
	// Mehlhorn tree must include all four.
	g := stpggraph.New(5)
	for _, v := range []stpggraph.Vertex{1, 2, 3, 4} {
		g.MarkTerminal(v)
	}
	g.AddOriginalEdge(0, 1, 1, 0, 1)
	g.AddOriginalEdge(0, 2, 2, 0, 2)
	g.AddOriginalEdge(0, 3, 3, 0, 3)
	g.AddOriginalEdge(0, 4, 4, 0, 4)

	edges := Solve(g)
	require.Len(t, edges, 4)
	var total stpggraph.Weight
	for _, e := range edges {
		total += g.Weight(e)
	}
	require.Equal(t, stpggraph.Weight(10), total)
}

func TestSolveSkipsRedundantParallelDetour(t *testing.T) {
	// Two terminals joined directly (weight 2) and via a longer detour
	// through a Steiner vertex (1+1=2, tied) and a strictly worse detour
	// (5+5). The tree must span both terminals at weight 2, never paying
	// for the worse detour.
	g := stpggraph.New(4)
	g.MarkTerminal(0)
	g.MarkTerminal(1)
	g.AddOriginalEdge(0, 1, 2, 0, 1)
	g.AddOriginalEdge(0, 2, 1, 0, 2)
	g.AddOriginalEdge(2, 1, 1, 2, 1)
	g.AddOriginalEdge(0, 3, 5, 0, 3)
	g.AddOriginalEdge(3, 1, 5, 3, 1)

	edges := Solve(g)
	var total stpggraph.Weight
	for _, e := range edges {
		total += g.Weight(e)
	}
	require.Equal(t, stpggraph.Weight(2), total)
}

func TestSolveReturnsNilWithFewerThanTwoTerminals(t *testing.T) {
	g := stpggraph.New(2)
	g.MarkTerminal(0)
	g.AddOriginalEdge(0, 1, 1, 0, 1)

	require.Nil(t, Solve(g))
}

func TestSolveReturnsNilWhenTerminalsDisconnected(t *testing.T) {
	g := stpggraph.New(4)
	g.MarkTerminal(0)
	g.MarkTerminal(1)
	g.MarkTerminal(2)
	g.MarkTerminal(3)
	g.AddOriginalEdge(0, 1, 1, 0, 1)
	g.AddOriginalEdge(2, 3, 1, 2, 3) // a separate component, unreachable from 0/1

	require.Nil(t, Solve(g))
}

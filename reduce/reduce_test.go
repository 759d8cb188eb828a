package reduce

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goderik01/PACE2018/stpggraph"
)

func TestDegreeRulesSuppressesAndBuysDegreeOne(t *testing.T) {
	g := stpggraph.New(4)
	g.MarkTerminal(0)
	g.MarkTerminal(3)
	g.AddOriginalEdge(0, 1, 1, 0, 1) // terminal 0, degree 1: must be bought
	g.AddOriginalEdge(1, 2, 1, 1, 2) // vertex 1: absorbed into 0 when 0-1 is bought
	g.AddOriginalEdge(2, 3, 1, 2, 3) // vertex 2: then non-terminal degree 2, suppressed

	removed, suppressed, bought := DegreeRules(g)
	require.Equal(t, 0, removed)
	require.GreaterOrEqual(t, suppressed+bought, 1)
	// whatever the exact split, at most two edges remain (this path in fact
	// collapses to a single vertex with none)
	require.LessOrEqual(t, g.EdgeCount(), 2)
}

func TestDegreeRulesRemovesDegreeOneNonTerminal(t *testing.T) {
	g := stpggraph.New(3)
	g.MarkTerminal(0)
	g.MarkTerminal(1)
	g.AddOriginalEdge(0, 1, 1, 0, 1)
	g.AddOriginalEdge(0, 2, 5, 0, 2) // vertex 2: non-terminal, degree 1, dead end

	removed, _, _ := DegreeRules(g)
	require.Equal(t, 1, removed)
	require.Equal(t, 0, g.Degree(2))
}

func TestShortestEdgeBetweenTerminalsBuysCheapestDirectLink(t *testing.T) {
	g := stpggraph.New(3)
	g.MarkTerminal(0)
	g.MarkTerminal(1)
	g.AddOriginalEdge(0, 1, 2, 0, 1)
	g.AddOriginalEdge(0, 2, 10, 0, 2)
	g.AddOriginalEdge(1, 2, 10, 1, 2)

	count := ShortestEdgeBetweenTerminals(g)
	require.Equal(t, 1, count)
	require.Equal(t, stpggraph.Weight(2), g.SolutionWeight())
}

func TestBuyZeroBuysFreeEdges(t *testing.T) {
	g := stpggraph.New(3)
	g.MarkTerminal(0)
	g.MarkTerminal(2)
	g.AddOriginalEdge(0, 1, 0, 0, 1)
	g.AddOriginalEdge(1, 2, 0, 1, 2)

	count := BuyZero(g)
	require.Equal(t, 2, count)
	require.Equal(t, stpggraph.Weight(0), g.SolutionWeight())
}

func TestCherryDominationRemovesDominatedDirectEdge(t *testing.T) {
	g := stpggraph.New(3)
	g.MarkTerminal(0)
	g.MarkTerminal(2)
	g.AddOriginalEdge(0, 2, 10, 0, 2) // dominated
	g.AddOriginalEdge(0, 1, 3, 0, 1)
	g.AddOriginalEdge(1, 2, 3, 1, 2) // 3+3=6 <= 10

	count := CherryDomination(g)
	require.Equal(t, 1, count)
	_, ok := g.FindEdge(0, 2)
	require.False(t, ok)
}

func TestCherryDominationKeepsTightEdge(t *testing.T) {
	g := stpggraph.New(3)
	g.AddOriginalEdge(0, 2, 4, 0, 2)
	g.AddOriginalEdge(0, 1, 3, 0, 1)
	g.AddOriginalEdge(1, 2, 3, 1, 2) // 3+3=6 > 4, direct edge survives

	count := CherryDomination(g)
	require.Equal(t, 0, count)
	_, ok := g.FindEdge(0, 2)
	require.True(t, ok)
}

func TestShortestPathDominationRemovesLongerParallelRoute(t *testing.T) {
	g := stpggraph.New(3)
	g.AddOriginalEdge(0, 1, 5, 0, 1) // strictly worse than 0-2-1 (2+2=4)
	g.AddOriginalEdge(0, 2, 2, 0, 2)
	g.AddOriginalEdge(2, 1, 2, 2, 1)

	count := ShortestPathDomination(g)
	require.Equal(t, 1, count)
	_, ok := g.FindEdge(0, 1)
	require.False(t, ok)
}

func TestBottleneckSteinerDistanceTestBuysCheaperDetourOverBridge(t *testing.T) {
	// 0 and 1 are terminals joined directly by an expensive edge, and also
	// by a two-hop detour through 2 that is cheaper overall. Closing the
	// triangle turns both detour edges into non-bridges; each tests safe
	// within budget (a terminal sits one hop away on both sides), so the
	// detour gets bought in full and beats the direct edge.
	g := stpggraph.New(3)
	g.MarkTerminal(0)
	g.MarkTerminal(1)
	g.AddOriginalEdge(0, 2, 1, 0, 2)
	g.AddOriginalEdge(2, 1, 1, 2, 1)
	g.AddOriginalEdge(0, 1, 5, 0, 1)

	BottleneckSteinerDistanceTest(g)
	require.Equal(t, stpggraph.Weight(2), g.SolutionWeight())
}

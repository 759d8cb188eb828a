package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goderik01/PACE2018/stpggraph"
)

func TestPathBuildsChainWithUnitWeights(t *testing.T) {
	g := Path(5)
	require.Equal(t, 5, g.VertexCount())
	require.Equal(t, 4, g.EdgeCount())
	require.Equal(t, 5, g.TerminalCount())
	require.Equal(t, 1, g.Degree(stpggraph.Vertex(0)))
	require.Equal(t, 1, g.Degree(stpggraph.Vertex(4)))
	for i := 1; i < 4; i++ {
		require.Equal(t, 2, g.Degree(stpggraph.Vertex(i)))
	}
	for _, h := range g.AllEdges() {
		require.Equal(t, stpggraph.Weight(1), g.Weight(h))
	}
}

func TestPathHonorsTerminalCount(t *testing.T) {
	g := Path(5, WithTerminals(2))
	require.Equal(t, 2, g.TerminalCount())
	require.True(t, g.IsTerminal(0))
	require.True(t, g.IsTerminal(1))
	require.False(t, g.IsTerminal(2))
}

func TestPathPanicsOnTooFewVertices(t *testing.T) {
	require.Panics(t, func() { Path(1) })
}

func TestStarBuildsHubAndLeaves(t *testing.T) {
	g := Star(4)
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())
	require.Equal(t, 3, g.Degree(stpggraph.Vertex(0)))
	for i := 1; i < 4; i++ {
		require.Equal(t, 1, g.Degree(stpggraph.Vertex(i)))
	}
}

func TestStarPanicsOnTooFewVertices(t *testing.T) {
	require.Panics(t, func() { Star(1) })
}

func TestCompleteBuildsAllPairs(t *testing.T) {
	g := Complete(4)
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 6, g.EdgeCount())
	for i := 0; i < 4; i++ {
		require.Equal(t, 3, g.Degree(stpggraph.Vertex(i)))
	}
}

func TestRandomSparseWithProbabilityOneIsComplete(t *testing.T) {
	g := RandomSparse(5, 1, WithSeed(42))
	require.Equal(t, 10, g.EdgeCount())
}

func TestRandomSparseWithProbabilityZeroHasNoEdges(t *testing.T) {
	g := RandomSparse(5, 0, WithSeed(42))
	require.Equal(t, 0, g.EdgeCount())
}

func TestRandomSparseIsDeterministicForAFixedSeed(t *testing.T) {
	a := RandomSparse(20, 0.4, WithSeed(7))
	b := RandomSparse(20, 0.4, WithSeed(7))
	require.Equal(t, a.EdgeCount(), b.EdgeCount())
}

func TestRandomSparsePanicsOnInvalidProbability(t *testing.T) {
	require.Panics(t, func() { RandomSparse(3, 1.5) })
	require.Panics(t, func() { RandomSparse(3, -0.1) })
}

func TestWithConstantWeightAppliesToAllEdges(t *testing.T) {
	g := Complete(4, WithConstantWeight(7))
	for _, h := range g.AllEdges() {
		require.Equal(t, stpggraph.Weight(7), g.Weight(h))
	}
}

func TestWithUniformWeightStaysInRange(t *testing.T) {
	g := RandomSparse(10, 0.5, WithSeed(3), WithUniformWeight(2, 9))
	for _, h := range g.AllEdges() {
		w := g.Weight(h)
		require.GreaterOrEqual(t, w, stpggraph.Weight(2))
		require.LessOrEqual(t, w, stpggraph.Weight(9))
	}
}

func TestWithTerminalsPanicsOnNonPositiveCount(t *testing.T) {
	require.Panics(t, func() { Path(5, WithTerminals(0)) })
}

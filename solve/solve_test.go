package solve

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/goderik01/PACE2018/stpggraph"
)

// The six scenarios below are spec.md §8's worked examples, run end to end
// through the full pipeline rather than against one subroutine in
// isolation.

func TestRunSolvesTriangle(t *testing.T) {
	g := stpggraph.New(3)
	g.MarkTerminal(0)
	g.MarkTerminal(1)
	g.MarkTerminal(2)
	g.AddOriginalEdge(0, 1, 3, 0, 1)
	g.AddOriginalEdge(1, 2, 2, 1, 2)
	g.AddOriginalEdge(2, 0, 70, 2, 0)

	out := Run(context.Background(), g)
	require.Equal(t, stpggraph.Weight(5), out.SolutionWeight())
}

func TestRunSolvesStarOfFour(t *testing.T) {
	g := stpggraph.New(5)
	g.MarkTerminal(0)
	g.MarkTerminal(1)
	g.MarkTerminal(2)
	g.MarkTerminal(3)
	g.AddOriginalEdge(0, 4, 1, 0, 4)
	g.AddOriginalEdge(1, 4, 2, 1, 4)
	g.AddOriginalEdge(2, 4, 3, 2, 4)
	g.AddOriginalEdge(3, 4, 4, 3, 4)

	out := Run(context.Background(), g)
	require.Equal(t, stpggraph.Weight(10), out.SolutionWeight())
}

func TestRunSolvesTwoParallelPaths(t *testing.T) {
	g := stpggraph.New(4)
	g.MarkTerminal(0)
	g.MarkTerminal(3)
	g.AddOriginalEdge(0, 1, 1, 0, 1)
	g.AddOriginalEdge(1, 2, 1, 1, 2)
	g.AddOriginalEdge(2, 3, 1, 2, 3)
	g.AddOriginalEdge(0, 3, 10, 0, 3)

	out := Run(context.Background(), g)
	require.Equal(t, stpggraph.Weight(3), out.SolutionWeight())
}

func TestRunSolvesCherryDomination(t *testing.T) {
	g := stpggraph.New(3)
	g.MarkTerminal(0)
	g.MarkTerminal(2)
	g.AddOriginalEdge(0, 1, 5, 0, 1)
	g.AddOriginalEdge(1, 2, 3, 1, 2)
	g.AddOriginalEdge(0, 2, 100, 0, 2)

	out := Run(context.Background(), g)
	require.Equal(t, stpggraph.Weight(8), out.SolutionWeight())
}

func TestRunSolvesDegreeOneTerminal(t *testing.T) {
	g := stpggraph.New(3)
	g.MarkTerminal(0)
	g.MarkTerminal(2)
	g.AddOriginalEdge(0, 1, 1, 0, 1)
	g.AddOriginalEdge(1, 2, 5, 1, 2)

	out := Run(context.Background(), g)
	require.Equal(t, stpggraph.Weight(6), out.SolutionWeight())
}

func TestRunSolvesZeroEdgeAbsorption(t *testing.T) {
	g := stpggraph.New(4)
	g.MarkTerminal(0)
	g.MarkTerminal(3)
	g.AddOriginalEdge(0, 1, 0, 0, 1)
	g.AddOriginalEdge(1, 2, 4, 1, 2)
	g.AddOriginalEdge(2, 3, 0, 2, 3)

	out := Run(context.Background(), g)
	require.Equal(t, stpggraph.Weight(4), out.SolutionWeight())
}

func TestRunReturnsTrivialSolutionForASingleTerminal(t *testing.T) {
	g := stpggraph.New(1)
	g.MarkTerminal(0)

	out := Run(context.Background(), g)
	require.Equal(t, stpggraph.Weight(0), out.SolutionWeight())
	require.Equal(t, 1, out.TerminalCount())
}

func TestRunReturnsTrivialSolutionForNoTerminals(t *testing.T) {
	g := stpggraph.New(2)
	g.AddOriginalEdge(0, 1, 1, 0, 1)

	out := Run(context.Background(), g)
	require.Equal(t, stpggraph.Weight(0), out.SolutionWeight())
}

// An already-expired deadline must still fall back to a feasible solution
// (Mehlhorn over the residual graph), never a nil/empty result.
func TestRunFallsBackToFeasibleSolutionOnExpiredDeadline(t *testing.T) {
	g := stpggraph.New(3)
	g.MarkTerminal(0)
	g.MarkTerminal(1)
	g.AddOriginalEdge(0, 1, 5, 0, 1)
	g.AddOriginalEdge(0, 2, 1, 0, 2)
	g.AddOriginalEdge(2, 1, 1, 2, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()
	time.Sleep(time.Millisecond)

	out := Run(ctx, g)
	require.LessOrEqual(t, out.SolutionWeight(), stpggraph.Weight(5))
	require.Greater(t, out.SolutionWeight(), stpggraph.Weight(0))
}

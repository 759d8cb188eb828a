package unionfind

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnionFindBasics(t *testing.T) {
	uf := New(5)
	for i := 0; i < 5; i++ {
		require.Equal(t, i, uf.Find(i))
	}

	uf.Union(0, 1)
	require.True(t, uf.Same(0, 1))
	require.False(t, uf.Same(0, 2))

	uf.Union(1, 2)
	require.True(t, uf.Same(0, 2))
	require.Equal(t, 3, uf.ClassSize(0))
}

func TestUnionFindLabel(t *testing.T) {
	uf := New(3)
	uf.SetLabel(0, 42)
	uf.Union(0, 1)
	// ranks tie, so 1's root survives and keeps its own label
	require.Equal(t, 1, uf.Label(1))

	uf.SetLabel(uf.Find(1), 7)
	require.Equal(t, 7, uf.Label(0))
	require.NotEqual(t, uf.Find(0), uf.Find(2))
}

func TestUnionFindIdempotentUnion(t *testing.T) {
	uf := New(4)
	r1 := uf.Union(0, 1)
	r2 := uf.Union(0, 1)
	require.Equal(t, r1, r2)
}

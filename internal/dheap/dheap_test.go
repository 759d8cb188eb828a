package dheap

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeapOrdersByLess(t *testing.T) {
	dist := map[int]int64{1: 5, 2: 3, 3: 9, 4: 1}
	h := New(func(a, b int) bool { return dist[a] < dist[b] })
	for k := range dist {
		h.Push(k)
	}
	require.Equal(t, 4, h.Len())

	var popped []int
	for !h.Empty() {
		popped = append(popped, h.Pop())
	}
	require.Equal(t, []int{4, 2, 1, 3}, popped)
}

func TestHeapDecreaseKey(t *testing.T) {
	dist := map[int]int64{1: 10, 2: 10}
	h := New(func(a, b int) bool { return dist[a] < dist[b] })
	h.Push(1)
	h.Push(2)

	dist[2] = 0
	h.Push(2) // decrease-key: 2 should now sift to the front.

	require.Equal(t, 2, h.Pop())
	require.Equal(t, 1, h.Pop())
}

func TestHeapRandomizedMatchesSort(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	dist := make(map[int]int64, 500)
	keys := make([]int, 500)
	for i := range keys {
		keys[i] = i
		dist[i] = rng.Int63n(1000)
	}

	h := New(func(a, b int) bool { return dist[a] < dist[b] })
	for _, k := range keys {
		h.Push(k)
	}

	sort.SliceStable(keys, func(i, j int) bool { return dist[keys[i]] < dist[keys[j]] })

	for _, want := range keys {
		got := h.Pop()
		require.Equal(t, dist[want], dist[got])
	}
}

func TestHeapPopEmptyPanics(t *testing.T) {
	h := New(func(a, b int) bool { return a < b })
	require.Panics(t, func() { h.Pop() })
}

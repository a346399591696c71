package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolation/unionfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewWeighted_InvalidSize verifies that non-positive sizes are rejected.
func TestNewWeighted_InvalidSize(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		w, err := unionfind.NewWeighted(n)
		assert.ErrorIs(t, err, unionfind.ErrInvalidSize, "n=%d", n)
		assert.Nil(t, w)
	}

	uf, err := unionfind.DefaultFactory(0)
	assert.ErrorIs(t, err, unionfind.ErrInvalidSize)
	assert.Nil(t, uf)
}

// TestWeighted_Singletons checks the initial state: every element is its own root.
func TestWeighted_Singletons(t *testing.T) {
	w, err := unionfind.NewWeighted(5)
	require.NoError(t, err)

	assert.Equal(t, 5, w.Len())
	assert.Equal(t, 5, w.Count())
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, w.Find(i))
		assert.Equal(t, 1, w.ComponentSize(i))
	}
	assert.False(t, w.Connected(0, 4))
}

// TestWeighted_UnionAndCount walks a fixed union sequence and tracks Count.
func TestWeighted_UnionAndCount(t *testing.T) {
	w, err := unionfind.NewWeighted(10)
	require.NoError(t, err)

	steps := []struct {
		p, q  int
		count int
	}{
		{4, 3, 9},
		{3, 8, 8},
		{6, 5, 7},
		{9, 4, 6},
		{2, 1, 5},
		{8, 9, 5}, // already connected
		{5, 0, 4},
		{7, 2, 3},
		{6, 1, 2},
		{1, 0, 2}, // already connected
		{6, 7, 2}, // already connected
	}
	for _, s := range steps {
		w.Union(s.p, s.q)
		assert.Equal(t, s.count, w.Count(), "after Union(%d,%d)", s.p, s.q)
		assert.True(t, w.Connected(s.p, s.q))
	}

	assert.True(t, w.Connected(3, 9))
	assert.True(t, w.Connected(0, 7))
	assert.False(t, w.Connected(0, 9))
	assert.Equal(t, 4, w.ComponentSize(8))
	assert.Equal(t, 6, w.ComponentSize(0))
}

// TestWeighted_SelfUnion ensures Union(p,p) does not change the component count.
func TestWeighted_SelfUnion(t *testing.T) {
	w, err := unionfind.NewWeighted(3)
	require.NoError(t, err)

	w.Union(1, 1)
	assert.Equal(t, 3, w.Count())
	assert.Equal(t, 1, w.Find(1))
}

// TestWeighted_MatchesNaiveLabels compares Connected against a quick-find
// labelling on a seeded random union sequence.
func TestWeighted_MatchesNaiveLabels(t *testing.T) {
	const n = 64
	r := rand.New(rand.NewSource(7))

	w, err := unionfind.NewWeighted(n)
	require.NoError(t, err)

	labels := make([]int, n)
	for i := range labels {
		labels[i] = i
	}
	relabel := func(from, to int) {
		for i := range labels {
			if labels[i] == from {
				labels[i] = to
			}
		}
	}

	for step := 0; step < 200; step++ {
		p, q := r.Intn(n), r.Intn(n)
		w.Union(p, q)
		if labels[p] != labels[q] {
			relabel(labels[p], labels[q])
		}

		a, b := r.Intn(n), r.Intn(n)
		require.Equal(t, labels[a] == labels[b], w.Connected(a, b), "step %d: Connected(%d,%d)", step, a, b)
	}

	distinct := make(map[int]struct{})
	for _, l := range labels {
		distinct[l] = struct{}{}
	}
	assert.Equal(t, len(distinct), w.Count())
}

// TestWeighted_FindStable checks that repeated Find calls return the same root.
func TestWeighted_FindStable(t *testing.T) {
	w, err := unionfind.NewWeighted(8)
	require.NoError(t, err)
	for i := 1; i < 8; i++ {
		w.Union(i-1, i)
	}

	root := w.Find(7)
	for i := 0; i < 8; i++ {
		assert.Equal(t, root, w.Find(i))
	}
	assert.Equal(t, 1, w.Count())
	assert.Equal(t, 8, w.ComponentSize(3))
}

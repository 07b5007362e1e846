package keysort

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_NilFirst(t *testing.T) {
	assert.Equal(t, -1, Compare(nil, "a"))
	assert.Equal(t, 1, Compare("a", nil))
	assert.Equal(t, 0, Compare(nil, nil))
}

func TestCompare_ScalarsBeforeTuples(t *testing.T) {
	assert.Equal(t, -1, Compare("z", Key{1}))
	assert.Equal(t, 1, Compare(Key{1}, 99))
}

func TestCompare_TuplePrefix(t *testing.T) {
	assert.Equal(t, -1, Compare(Key{1}, Key{1, 2}))
	assert.Equal(t, 1, Compare(Key{1, 2}, Key{1}))
	assert.Equal(t, 0, Compare(Key{1, "a"}, Key{1, "a"}))
}

func TestCompare_MixedKinds(t *testing.T) {
	// bool < int < float < string
	assert.Equal(t, -1, Compare(true, 0))
	assert.Equal(t, -1, Compare(7, 0.5))
	assert.Equal(t, -1, Compare(1.5, ""))
}

func TestSorted_Documented(t *testing.T) {
	got := Sorted([]any{nil, Key{1, 2}, "a", Key{1}})
	require.Equal(t, []any{nil, "a", Key{1}, Key{1, 2}}, got)
}

func TestSorted_StableUnderPermutation(t *testing.T) {
	values := []any{nil, "b", Key{1, 2}, "a", Key{1}, 3, nil, true}
	want := Sorted(values)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		perm := make([]any, len(values))
		for j, k := range rng.Perm(len(values)) {
			perm[j] = values[k]
		}
		assert.Equal(t, want, Sorted(perm))
	}
}

func TestSorted_NeverPanics(t *testing.T) {
	assert.NotPanics(t, func() {
		Sorted([]any{nil, struct{}{}, Key{nil, "x"}, 1.0, int64(2)})
	})
}

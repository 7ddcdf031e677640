package index

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertGetRemove(t *testing.T) {
	idx := New()

	_, ok := idx.Get("a")
	require.False(t, ok)

	prev, had := idx.Insert("a", CommandPosition{Generation: 1, Offset: 0, Length: 10})
	require.False(t, had)
	require.Zero(t, prev)

	got, ok := idx.Get("a")
	require.True(t, ok)
	require.Equal(t, uint64(1), got.Generation)
	require.EqualValues(t, 10, got.Length)

	prev, had = idx.Insert("a", CommandPosition{Generation: 2, Offset: 20, Length: 5})
	require.True(t, had)
	require.Equal(t, uint64(1), prev.Generation)

	removed, had := idx.Remove("a")
	require.True(t, had)
	require.Equal(t, uint64(2), removed.Generation)

	_, ok = idx.Get("a")
	require.False(t, ok)

	_, had = idx.Remove("missing")
	require.False(t, had)
}

func TestIterReflectsAllInsertedKeys(t *testing.T) {
	idx := New()
	idx.Insert("a", CommandPosition{Generation: 1})
	idx.Insert("b", CommandPosition{Generation: 1})
	idx.Insert("c", CommandPosition{Generation: 1})

	require.Equal(t, 3, idx.Len())

	keys := make(map[string]bool)
	for _, e := range idx.Iter() {
		keys[e.Key] = true
	}
	require.Equal(t, map[string]bool{"a": true, "b": true, "c": true}, keys)
}

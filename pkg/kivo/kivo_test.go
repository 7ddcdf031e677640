package kivo

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvindh-k/kivo/pkg/options"
)

func TestBasicRoundTrip(t *testing.T) {
	db, err := Open(options.WithDataDir(filepath.Join(t.TempDir(), "data")))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Set("a", "1"))
	require.NoError(t, db.Set("b", "2"))

	v, ok, err := db.Get("a")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "1", v)

	v, ok, err = db.Get("b")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "2", v)
}

func TestOverwriteThenReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	db, err := Open(options.WithDataDir(dir))
	require.NoError(t, err)
	require.NoError(t, db.Set("k", "1"))
	require.NoError(t, db.Set("k", "2"))

	v, ok, err := db.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "2", v)
	require.NoError(t, db.Close())

	db2, err := Open(options.WithDataDir(dir))
	require.NoError(t, err)
	defer db2.Close()

	v, ok, err = db2.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "2", v)

	require.NoError(t, db2.Set("k", "3"))
	v, ok, err = db2.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "3", v)
}

func TestRemove(t *testing.T) {
	db, err := Open(options.WithDataDir(filepath.Join(t.TempDir(), "data")))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Set("k", "v"))
	require.NoError(t, db.Remove("k"))

	_, ok, err := db.Get("k")
	require.NoError(t, err)
	require.False(t, ok)

	err = db.Remove("k")
	require.Error(t, err)
}

func TestEmptyKeyAndValueRejected(t *testing.T) {
	db, err := Open(options.WithDataDir(filepath.Join(t.TempDir(), "data")))
	require.NoError(t, err)
	defer db.Close()

	require.Error(t, db.Set("", "v"))
	require.Error(t, db.Set("k", ""))

	_, _, err = db.Get("")
	require.Error(t, err)

	require.Error(t, db.Remove(""))
}

func TestConcurrentSetsOfDisjointKeys(t *testing.T) {
	db, err := Open(options.WithDataDir(filepath.Join(t.TempDir(), "data")), options.WithReaderConcurrency(8))
	require.NoError(t, err)
	defer db.Close()

	const n = 200
	done := make(chan error, n)
	for i := 0; i < n; i++ {
		go func(i int) {
			done <- db.Set(fmt.Sprintf("key-%d", i), "value")
		}(i)
	}
	for i := 0; i < n; i++ {
		require.NoError(t, <-done)
	}
}

package reader

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	kivoerrors "github.com/arvindh-k/kivo/pkg/errors"
)

func TestPoolAcquireReleaseRoundTrip(t *testing.T) {
	sp := new(atomic.Uint64)
	base := NewHandle(t.TempDir(), sp, nil)
	pool := NewPool(base, 2)

	h1, err := pool.Acquire()
	require.NoError(t, err)
	h2, err := pool.Acquire()
	require.NoError(t, err)
	require.NotSame(t, h1, h2)

	_, err = pool.Acquire()
	require.Error(t, err)
	ee, ok := kivoerrors.AsEngineError(err)
	require.True(t, ok)
	require.Equal(t, kivoerrors.ErrorCodeNoReaderAvailable, ee.Code())

	pool.Release(h1)
	h3, err := pool.Acquire()
	require.NoError(t, err)
	require.Same(t, h1, h3)
}

package posio

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterTracksPosition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "0.log")

	w, err := OpenWriter(path)
	require.NoError(t, err)
	require.EqualValues(t, 0, w.Position())

	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.EqualValues(t, 5, w.Position())

	require.NoError(t, w.Flush())
	require.NoError(t, w.Close())
}

func TestWriterReopenAppendsAtExistingSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "0.log")

	w, err := OpenWriter(path)
	require.NoError(t, err)
	_, err = w.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	w2, err := OpenWriter(path)
	require.NoError(t, err)
	require.EqualValues(t, 5, w2.Position())
	require.NoError(t, w2.Close())
}

func TestReaderSeekAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "0.log")

	w, err := OpenWriter(path)
	require.NoError(t, err)
	_, err = w.Write([]byte("helloworld"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	buf := make([]byte, 5)
	_, err = io.ReadFull(r, buf)
	require.NoError(t, err)
	require.Equal(t, "hello", string(buf))
	require.EqualValues(t, 5, r.Position())

	pos, err := r.Seek(5, io.SeekStart)
	require.NoError(t, err)
	require.EqualValues(t, 5, pos)
	require.EqualValues(t, 5, r.Position())

	_, err = io.ReadFull(r, buf)
	require.NoError(t, err)
	require.Equal(t, "world", string(buf))
}

package segdir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortedGenerationsSkipsStrayFiles(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"3.log", "1.log", "10.log", "notes.txt", "abc.log"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	generations, err := SortedGenerations(dir)
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 3, 10}, generations)
}

func TestSortedGenerationsEmptyDir(t *testing.T) {
	generations, err := SortedGenerations(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, generations)
}

func TestLogPath(t *testing.T) {
	require.Equal(t, filepath.Join("/data", "7.log"), LogPath("/data", 7))
}

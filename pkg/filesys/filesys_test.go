package filesys

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateDirCreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	require.NoError(t, CreateDir(dir, 0755, true))

	ok, err := Exists(dir)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCreateDirForceToleratesExisting(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, CreateDir(dir, 0755, true))
}

func TestCreateDirRejectsFileAtPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	err := CreateDir(path, 0755, true)
	require.ErrorIs(t, err, ErrIsNotDir)
}

func TestExistsReportsMissingPath(t *testing.T) {
	ok, err := Exists(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	require.False(t, ok)
}

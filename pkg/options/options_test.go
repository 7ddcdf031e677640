package options

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	require.NoError(t, NewDefaultOptions().Validate())
}

func TestApplyOverridesDefaults(t *testing.T) {
	opts := NewDefaultOptions().Apply(
		WithDataDir("/tmp/kivo-test"),
		WithReaderConcurrency(32),
		WithCompactionThreshold(2048),
	)

	require.Equal(t, "/tmp/kivo-test", opts.DataDir)
	require.EqualValues(t, 32, opts.ReaderConcurrency)
	require.EqualValues(t, 2048, opts.CompactionThreshold)
}

func TestWithDataDirIgnoresBlank(t *testing.T) {
	opts := NewDefaultOptions().Apply(WithDataDir("   "))
	require.Equal(t, DefaultDataDir, opts.DataDir)
}

func TestValidateRejectsZeroFields(t *testing.T) {
	require.Error(t, Options{}.Validate())
	require.Error(t, Options{DataDir: "/tmp/x"}.Validate())
}

func TestLoadFileLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kivo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dataDir: /var/lib/kivo-custom\n"), 0644))

	opts, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "/var/lib/kivo-custom", opts.DataDir)
	require.Equal(t, DefaultReaderConcurrency, opts.ReaderConcurrency)
}

func TestLoadFileRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kivo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dataDir: [unterminated\n"), 0644))

	_, err := LoadFile(path)
	require.Error(t, err)
}

// Package options provides data structures and functions for configuring
// kivo. It defines the parameters that control where segment files live,
// how many concurrent readers the engine admits, and how much reclaimable
// space the writer tolerates before it triggers compaction.
package options

import (
	"strings"

	kivoerrors "github.com/arvindh-k/kivo/pkg/errors"
)

// Options defines the configuration parameters for a kivo Engine.
type Options struct {
	// DataDir is the directory where `<generation>.log` segment files live.
	// It is created on Open if it does not already exist.
	//
	// Default: "/var/lib/kivo"
	DataDir string `yaml:"dataDir" json:"dataDir"`

	// ReaderConcurrency is the number of reader handles in the pool, i.e.
	// the number of Get operations that may proceed in parallel. A Get that
	// arrives when the pool is empty fails immediately with
	// ErrorCodeNoReaderAvailable rather than blocking.
	//
	// Default: 16
	ReaderConcurrency uint32 `yaml:"readerConcurrency" json:"readerConcurrency"`

	// CompactionThreshold is the number of reclaimable bytes the writer
	// tolerates (the uncompacted counter, §3) before it triggers a
	// compaction at the end of the Set/Remove that crosses it.
	//
	// Default: 1 MiB
	CompactionThreshold uint64 `yaml:"compactionThreshold" json:"compactionThreshold"`
}

// OptionFunc is a function type that modifies kivo's configuration.
type OptionFunc func(*Options)

// WithDefaultOptions resets every field to its documented default. Useful
// as the first entry in an OptionFunc chain that then overrides a subset.
func WithDefaultOptions() OptionFunc {
	return func(o *Options) {
		*o = NewDefaultOptions()
	}
}

// WithDataDir sets the directory where segment files are stored.
func WithDataDir(directory string) OptionFunc {
	return func(o *Options) {
		directory = strings.TrimSpace(directory)
		if directory != "" {
			o.DataDir = directory
		}
	}
}

// WithReaderConcurrency sets the size of the reader handle pool.
func WithReaderConcurrency(n uint32) OptionFunc {
	return func(o *Options) {
		if n > 0 {
			o.ReaderConcurrency = n
		}
	}
}

// WithCompactionThreshold sets the reclaimable-bytes threshold that triggers
// compaction.
func WithCompactionThreshold(bytes uint64) OptionFunc {
	return func(o *Options) {
		if bytes > 0 {
			o.CompactionThreshold = bytes
		}
	}
}

// Apply returns a copy of o with every opt applied in order.
func (o Options) Apply(opts ...OptionFunc) Options {
	result := o
	for _, opt := range opts {
		if opt != nil {
			opt(&result)
		}
	}
	return result
}

// Validate reports whether the Options are usable: a non-empty data
// directory, a non-zero reader pool, and a non-zero compaction threshold.
func (o Options) Validate() error {
	if strings.TrimSpace(o.DataDir) == "" {
		return kivoerrors.NewConfigurationValidationError("dataDir", "must not be empty")
	}
	if o.ReaderConcurrency == 0 {
		return kivoerrors.NewConfigurationValidationError("readerConcurrency", "must be greater than zero")
	}
	if o.CompactionThreshold == 0 {
		return kivoerrors.NewConfigurationValidationError("compactionThreshold", "must be greater than zero")
	}
	return nil
}

package options

const (
	// DefaultDataDir is the default base directory where kivo will store
	// its segment files, if no other directory is specified.
	DefaultDataDir = "/var/lib/kivo"

	// DefaultReaderConcurrency is the default number of reader handles in
	// the pool, i.e. the default ceiling on concurrent Get operations.
	DefaultReaderConcurrency uint32 = 16

	// DefaultCompactionThreshold is the default number of reclaimable bytes
	// the writer tolerates before triggering compaction (1 MiB).
	DefaultCompactionThreshold uint64 = 1024 * 1024
)

// defaultOptions holds the default configuration settings for a kivo Engine.
var defaultOptions = Options{
	DataDir:             DefaultDataDir,
	ReaderConcurrency:   DefaultReaderConcurrency,
	CompactionThreshold: DefaultCompactionThreshold,
}

// NewDefaultOptions returns a copy of the default Options.
func NewDefaultOptions() Options {
	return defaultOptions
}

// Package segdir names and enumerates segment files in a data directory.
// Every segment is a file named "<generation>.log"; nothing else in the
// directory is meaningful to the store.
package segdir

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// logExt is the extension every segment file carries.
const logExt = ".log"

// LogPath returns the path of the segment file for generation g in dir.
func LogPath(dir string, g uint64) string {
	return filepath.Join(dir, strconv.FormatUint(g, 10)+logExt)
}

// SortedGenerations reads dir and returns every generation it holds a
// "<u64>.log" segment for, ascending. Entries that are not a file, don't
// carry the ".log" extension, or whose name doesn't parse as a uint64 are
// silently skipped: a stray file in the directory must not abort startup.
func SortedGenerations(dir string) ([]uint64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	generations := make([]uint64, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasSuffix(name, logExt) {
			continue
		}

		g, err := strconv.ParseUint(strings.TrimSuffix(name, logExt), 10, 64)
		if err != nil {
			continue
		}

		generations = append(generations, g)
	}

	sort.Slice(generations, func(i, j int) bool { return generations[i] < generations[j] })
	return generations, nil
}

package writer

import (
	"os"

	"github.com/arvindh-k/kivo/internal/index"
	"github.com/arvindh-k/kivo/internal/posio"
	"github.com/arvindh-k/kivo/internal/segdir"
	kivoerrors "github.com/arvindh-k/kivo/pkg/errors"
)

// compact rewrites the live set of records into a fresh segment, retires
// every older segment, and resets the reclaimable-bytes estimate. The
// caller must already hold w.mu.
//
// The ordering below is load-bearing: every index entry is repointed at
// the compacted generation (step 3) before the safe point advances past
// the generations being retired (step 4). A reader that read an index
// entry before compaction started still has a valid, unmodified old
// segment to read from; a reader that reads the index afterward sees only
// the new generation. No reader ever observes a position naming a
// generation that has already been unlinked.
func (w *Writer) compact() error {
	compactedGeneration := w.currentGeneration + 1
	nextGeneration := w.currentGeneration + 2

	// Step 1: seal the currently active segment and start a fresh one so
	// writes that follow this compaction land on nextGeneration, never on
	// the segment being compacted.
	nextWriter, err := posio.OpenWriter(segdir.LogPath(w.dir, nextGeneration))
	if err != nil {
		return kivoerrors.ClassifySegmentOpenError(err, segdir.LogPath(w.dir, nextGeneration), nextGeneration)
	}

	staleWriter := w.current
	w.current = nextWriter
	w.currentGeneration = nextGeneration

	if err := staleWriter.Close(); err != nil && w.log != nil {
		w.log.Warnw("failed to close superseded segment writer", "error", err)
	}

	// Step 2: open the compaction output and copy every live record into
	// it, verbatim — no decode/reencode round trip, so the compacted bytes
	// are byte-identical to what a reader already holding them open would
	// see.
	compactionPath := segdir.LogPath(w.dir, compactedGeneration)
	compactionWriter, err := posio.OpenWriter(compactionPath)
	if err != nil {
		return kivoerrors.ClassifySegmentOpenError(err, compactionPath, compactedGeneration)
	}

	var relocated int64
	for _, entry := range w.idx.Iter() {
		raw, err := w.compactionReader.ReadRaw(entry)
		if err != nil {
			compactionWriter.Close()
			return err
		}
		if _, err := compactionWriter.Write(raw); err != nil {
			compactionWriter.Close()
			return err
		}

		w.idx.Insert(entry.Key, index.CommandPosition{
			Generation: compactedGeneration,
			Offset:     relocated,
			Length:     entry.Length,
		})
		relocated += entry.Length
	}

	if err := compactionWriter.Flush(); err != nil {
		compactionWriter.Close()
		return kivoerrors.NewStorageError(err, kivoerrors.ErrorCodeIO, "failed to flush compacted segment").
			WithGeneration(compactedGeneration)
	}
	if err := compactionWriter.Close(); err != nil && w.log != nil {
		w.log.Warnw("failed to close compacted segment writer", "error", err)
	}

	// Step 3/4: every live key now points at compactedGeneration; only
	// after that is true may the safe point advance past it.
	w.safePoint.Store(compactedGeneration)

	// The compaction reader's own cache may still hold descriptors for the
	// generations just retired; drop them immediately rather than waiting
	// for its next use. Other reader handles evict lazily on their own
	// next read.
	w.compactionReader.CloseStale()

	generations, err := segdir.SortedGenerations(w.dir)
	if err != nil {
		if w.log != nil {
			w.log.Warnw("failed to enumerate segment directory during compaction cleanup", "error", err)
		}
	} else {
		for _, gen := range generations {
			if gen >= compactedGeneration {
				continue
			}
			// Unlink failures are logged, not fatal: some platforms refuse
			// to remove a file with open descriptors, and the next
			// compaction retries.
			if err := os.Remove(segdir.LogPath(w.dir, gen)); err != nil && w.log != nil {
				w.log.Warnw("failed to unlink superseded segment", "generation", gen, "error", err)
			}
		}
	}

	w.uncompacted = 0
	return nil
}

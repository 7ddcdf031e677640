// Package writer implements the single mutator of the store: it owns the
// active segment, appends Set and Remove records, keeps the index in
// step with what is on disk, tracks how many bytes are reclaimable, and
// triggers compaction once that estimate crosses a configured threshold.
//
// Every exported method takes the same mutex, so Set, Remove and the
// internal compact pass are mutually exclusive with one another; readers
// never contend for it.
package writer

import (
	"io"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/arvindh-k/kivo/internal/index"
	"github.com/arvindh-k/kivo/internal/posio"
	"github.com/arvindh-k/kivo/internal/reader"
	"github.com/arvindh-k/kivo/internal/record"
	"github.com/arvindh-k/kivo/internal/segdir"
	kivoerrors "github.com/arvindh-k/kivo/pkg/errors"
)

// Writer is the store's single mutator.
type Writer struct {
	mu sync.Mutex

	dir       string
	idx       *index.Index
	safePoint *atomic.Uint64
	log       *zap.SugaredLogger

	current           *posio.Writer
	currentGeneration uint64
	uncompacted       uint64
	threshold         uint64

	// compactionReader is a dedicated reader Handle used only by compact,
	// so relocating live records during compaction never borrows from the
	// pool that serves Get.
	compactionReader *reader.Handle
}

// Open replays every existing segment in dir to rebuild idx, then opens a
// fresh active segment for subsequent writes. It is the only way to
// construct a Writer.
//
// Replay stops at the first record it cannot decode: the record.Decode
// contract distinguishes a clean end of stream (io.EOF, meaning every
// byte in the segment was a well-formed record) from a truncated tail
// (io.ErrUnexpectedEOF, meaning the process crashed mid-append). In the
// latter case the segment file itself is left untouched — only the
// in-memory understanding of it stops at the recoverable prefix — so that
// a later compaction relocates exactly the surviving records. A record
// whose payload does not parse as a command ends replay of its segment
// the same way.
func Open(dir string, idx *index.Index, safePoint *atomic.Uint64, threshold uint64, log *zap.SugaredLogger) (*Writer, error) {
	generations, err := segdir.SortedGenerations(dir)
	if err != nil {
		return nil, kivoerrors.ClassifyDirectoryCreationError(err, dir)
	}

	var uncompacted uint64
	for _, gen := range generations {
		n, err := replay(dir, gen, idx)
		if err != nil {
			return nil, err
		}
		uncompacted += n
	}

	currentGeneration := uint64(1)
	if len(generations) > 0 {
		currentGeneration = generations[len(generations)-1] + 1
	}

	current, err := posio.OpenWriter(segdir.LogPath(dir, currentGeneration))
	if err != nil {
		return nil, kivoerrors.ClassifySegmentOpenError(err, segdir.LogPath(dir, currentGeneration), currentGeneration)
	}

	return &Writer{
		dir:               dir,
		idx:               idx,
		safePoint:         safePoint,
		log:               log,
		current:           current,
		currentGeneration: currentGeneration,
		uncompacted:       uncompacted,
		threshold:         threshold,
		compactionReader:  reader.NewHandle(dir, safePoint, log),
	}, nil
}

// replay rebuilds idx's entries for generation gen and returns the
// reclaimable-bytes estimate contributed by that segment: the framed
// length of every record a later Set or Remove superseded, plus the framed length
// of every Remove record itself (the record is never read back, so its
// bytes are reclaimable the moment it is written).
func replay(dir string, gen uint64, idx *index.Index) (uint64, error) {
	path := segdir.LogPath(dir, gen)
	rdr, err := posio.OpenReader(path)
	if err != nil {
		return 0, kivoerrors.ClassifySegmentOpenError(err, path, gen)
	}
	defer rdr.Close()

	var uncompacted uint64
	offset := int64(0)
	for {
		cmd, n, err := record.Decode(rdr)
		if err == io.EOF {
			break
		}
		if err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			// A malformed payload ends replay of this segment just as a
			// truncated tail does.
			break
		}

		switch cmd.Kind {
		case record.KindSet:
			pos := index.CommandPosition{Generation: gen, Offset: offset, Length: n}
			if prev, had := idx.Insert(cmd.Key, pos); had {
				uncompacted += uint64(prev.Length)
			}
		case record.KindRemove:
			if prev, had := idx.Remove(cmd.Key); had {
				uncompacted += uint64(prev.Length)
			}
			uncompacted += uint64(n)
		}

		offset += n
	}

	return uncompacted, nil
}

// Set appends a Set record, updates the index, and triggers compaction if
// the reclaimable-bytes estimate now exceeds the configured threshold.
func (w *Writer) Set(key, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	start := w.current.Position()
	if _, err := record.Encode(w.current, record.NewSet(key, value)); err != nil {
		return err
	}
	if err := w.current.Flush(); err != nil {
		return kivoerrors.NewStorageError(err, kivoerrors.ErrorCodeIO, "failed to flush segment writer").
			WithGeneration(w.currentGeneration)
	}
	end := w.current.Position()

	pos := index.CommandPosition{Generation: w.currentGeneration, Offset: start, Length: end - start}
	if prev, had := w.idx.Insert(key, pos); had {
		w.uncompacted += uint64(prev.Length)
	}

	if w.uncompacted > w.threshold {
		return w.compact()
	}
	return nil
}

// Remove appends a Remove record and drops key from the index, failing
// with KeyNotFound if key was not present.
func (w *Writer) Remove(key string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.idx.Get(key); !ok {
		return kivoerrors.NewKeyNotFoundError(key)
	}

	start := w.current.Position()
	if _, err := record.Encode(w.current, record.NewRemove(key)); err != nil {
		return err
	}
	if err := w.current.Flush(); err != nil {
		return kivoerrors.NewStorageError(err, kivoerrors.ErrorCodeIO, "failed to flush segment writer").
			WithGeneration(w.currentGeneration)
	}
	end := w.current.Position()

	if prev, had := w.idx.Remove(key); had {
		w.uncompacted += uint64(prev.Length)
	}
	w.uncompacted += uint64(end - start)

	if w.uncompacted > w.threshold {
		return w.compact()
	}
	return nil
}

// Close flushes and closes the active segment and the compaction reader's
// descriptors. It takes the writer lock itself, so it waits for any
// in-flight Set, Remove or compaction to finish.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	err := w.current.Close()
	if cerr := w.compactionReader.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

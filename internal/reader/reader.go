// Package reader implements the reader side of the store: per-slot
// Handles, each holding its own cache of open segment descriptors, and a
// bounded Pool of Handles sized to the configured reader concurrency.
//
// No descriptor is ever shared across Handles. While the store is open, a
// Handle closes a cached descriptor only in CloseStale, once the shared
// safe point has advanced past that descriptor's generation: pool Handles
// do so lazily on their next read, and compaction calls it directly on its
// own Handle. This is what lets compaction retire segments without
// coordinating with readers in flight. Handle.Close releases every
// remaining descriptor at shutdown.
package reader

import (
	"io"
	"sync/atomic"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/arvindh-k/kivo/internal/index"
	"github.com/arvindh-k/kivo/internal/posio"
	"github.com/arvindh-k/kivo/internal/record"
	"github.com/arvindh-k/kivo/internal/segdir"
	kivoerrors "github.com/arvindh-k/kivo/pkg/errors"
)

// Handle is one reader's view over the segment set: a shared directory
// path and safe point, and a private descriptor cache. A Handle must only
// ever be used from one goroutine at a time; the Pool enforces this by
// handing out at most one concurrent borrow per Handle.
type Handle struct {
	dir       string
	safePoint *atomic.Uint64
	cache     map[uint64]*posio.Reader
	log       *zap.SugaredLogger
}

// NewHandle creates a Handle with an empty descriptor cache over dir,
// coordinating deletion with the shared safePoint.
func NewHandle(dir string, safePoint *atomic.Uint64, log *zap.SugaredLogger) *Handle {
	return &Handle{dir: dir, safePoint: safePoint, cache: make(map[uint64]*posio.Reader), log: log}
}

// Clone manufactures a fresh Handle sharing this one's directory and safe
// point but starting with an empty descriptor cache — how new reader pool
// slots are built without cross-goroutine descriptor sharing.
func (h *Handle) Clone() *Handle {
	return NewHandle(h.dir, h.safePoint, h.log)
}

// CloseStale evicts and closes every cached descriptor whose generation
// is strictly below the current safe point. It is called before every
// read and may also be invoked directly by compaction once it has
// advanced the safe point, so its own reader handle releases its
// descriptors for the segments it just finished relocating out of.
func (h *Handle) CloseStale() {
	sp := h.safePoint.Load()
	for gen, rdr := range h.cache {
		if gen >= sp {
			continue
		}
		if err := rdr.Close(); err != nil && h.log != nil {
			h.log.Warnw("failed to close stale segment descriptor", "generation", gen, "error", err)
		}
		delete(h.cache, gen)
	}
}

// descriptor returns the cached reader for generation gen, opening and
// caching one if absent.
func (h *Handle) descriptor(gen uint64) (*posio.Reader, error) {
	h.CloseStale()

	if rdr, ok := h.cache[gen]; ok {
		return rdr, nil
	}

	path := segdir.LogPath(h.dir, gen)
	rdr, err := posio.OpenReader(path)
	if err != nil {
		return nil, kivoerrors.ClassifySegmentOpenError(err, path, gen)
	}

	h.cache[gen] = rdr
	return rdr, nil
}

// seekIfNeeded moves rdr to offset unless it is already positioned there.
func seekIfNeeded(rdr *posio.Reader, offset int64) error {
	if rdr.Position() == offset {
		return nil
	}
	_, err := rdr.Seek(offset, 0)
	return err
}

// ReadCommand decodes the command at pos and fails with
// UnexpectedCommandType unless it is a Set — the only command kind the
// index is ever supposed to point at.
func (h *Handle) ReadCommand(pos index.CommandPosition) (record.Command, error) {
	rdr, err := h.descriptor(pos.Generation)
	if err != nil {
		return record.Command{}, err
	}
	if err := seekIfNeeded(rdr, pos.Offset); err != nil {
		return record.Command{}, err
	}

	cmd, _, err := record.Decode(rdr)
	if err != nil {
		return record.Command{}, err
	}
	if cmd.Kind != record.KindSet {
		return record.Command{}, kivoerrors.NewUnexpectedCommandTypeError(pos.Key, pos.Generation)
	}

	return cmd, nil
}

// ReadRaw returns the exact, unparsed bytes of the record at pos: the
// frame header and payload, copied opaquely. Compaction uses this to
// relocate a live record into the compacted segment without a
// deserialize/reserialize round trip.
func (h *Handle) ReadRaw(pos index.CommandPosition) ([]byte, error) {
	rdr, err := h.descriptor(pos.Generation)
	if err != nil {
		return nil, err
	}
	if err := seekIfNeeded(rdr, pos.Offset); err != nil {
		return nil, err
	}

	buf := make([]byte, pos.Length)
	if _, err := io.ReadFull(rdr, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Close closes every descriptor this Handle currently holds open.
func (h *Handle) Close() error {
	var errs error
	for gen, rdr := range h.cache {
		if err := rdr.Close(); err != nil {
			errs = multierr.Append(errs, err)
		}
		delete(h.cache, gen)
	}
	return errs
}

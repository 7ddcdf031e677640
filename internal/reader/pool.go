package reader

import (
	"go.uber.org/multierr"

	kivoerrors "github.com/arvindh-k/kivo/pkg/errors"
)

// Pool is a bounded collection of reader Handles sized to the configured
// reader concurrency. A Get pops a Handle, uses it, and pushes it back;
// if the pool is empty the operation fails immediately rather than
// blocking — back pressure the caller is expected to retry.
type Pool struct {
	handles chan *Handle
}

// NewPool builds a Pool of n Handles, each cloned from base so they share
// its directory and safe point but start with independent descriptor
// caches.
func NewPool(base *Handle, n uint32) *Pool {
	handles := make(chan *Handle, n)
	for i := uint32(0); i < n; i++ {
		handles <- base.Clone()
	}
	return &Pool{handles: handles}
}

// Acquire pops a Handle from the pool, or fails with NoReaderAvailable if
// none is free.
func (p *Pool) Acquire() (*Handle, error) {
	select {
	case h := <-p.handles:
		return h, nil
	default:
		return nil, kivoerrors.NewNoReaderAvailableError("")
	}
}

// Release returns a Handle borrowed via Acquire back to the pool.
func (p *Pool) Release(h *Handle) {
	p.handles <- h
}

// Close drains the pool and closes every Handle's open descriptors.
func (p *Pool) Close() error {
	var errs error
	close(p.handles)
	for h := range p.handles {
		if err := h.Close(); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

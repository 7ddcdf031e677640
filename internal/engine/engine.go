// Package engine is the core's central coordinator. It owns the index,
// the single writer, and the reader pool, and is the thing pkg/kivo's
// public Instance wraps. It dispatches Get across the reader pool and
// serializes Set/Remove through the writer; compaction itself lives in
// the writer package since it only ever runs under the writer's lock.
package engine

import (
	stdErrors "errors"
	"sync/atomic"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/arvindh-k/kivo/internal/index"
	"github.com/arvindh-k/kivo/internal/reader"
	"github.com/arvindh-k/kivo/internal/writer"
	kivoerrors "github.com/arvindh-k/kivo/pkg/errors"
	"github.com/arvindh-k/kivo/pkg/filesys"
	"github.com/arvindh-k/kivo/pkg/options"
)

// ErrEngineClosed is returned when attempting to perform operations on a
// closed engine.
var ErrEngineClosed = stdErrors.New("operation failed: cannot access closed engine")

// Engine coordinates the index, writer and reader pool that together
// implement the engine contract: Set, Get, Remove.
type Engine struct {
	log    *zap.SugaredLogger
	closed atomic.Bool
	idx    *index.Index
	writer *writer.Writer
	pool   *reader.Pool
}

// Config holds the parameters needed to open an Engine.
type Config struct {
	Options *options.Options
	Logger  *zap.SugaredLogger
}

// New opens an Engine over the directory named in config.Options: it
// creates the directory if necessary, replays every existing segment to
// rebuild the index, opens a fresh active segment, and builds a reader
// pool sized to the configured concurrency.
func New(config *Config) (*Engine, error) {
	if config == nil || config.Options == nil || config.Logger == nil {
		return nil, kivoerrors.NewValidationError(
			nil, kivoerrors.ErrorCodeInvalidInput, "engine configuration is required",
		).WithField("config").WithRule("required")
	}

	opts := config.Options
	log := config.Logger

	if err := filesys.CreateDir(opts.DataDir, 0755, true); err != nil {
		return nil, kivoerrors.ClassifyDirectoryCreationError(err, opts.DataDir)
	}

	idx := index.New()
	safePoint := new(atomic.Uint64)

	wtr, err := writer.Open(opts.DataDir, idx, safePoint, opts.CompactionThreshold, log)
	if err != nil {
		return nil, err
	}

	baseHandle := reader.NewHandle(opts.DataDir, safePoint, log)
	pool := reader.NewPool(baseHandle, opts.ReaderConcurrency)

	return &Engine{log: log, idx: idx, writer: wtr, pool: pool}, nil
}

// Set stores value under key, durably.
func (e *Engine) Set(key, value string) error {
	if e.closed.Load() {
		return ErrEngineClosed
	}
	return e.writer.Set(key, value)
}

// Remove dissociates key, failing with KeyNotFound if it was absent.
func (e *Engine) Remove(key string) error {
	if e.closed.Load() {
		return ErrEngineClosed
	}
	return e.writer.Remove(key)
}

// Get returns the value last Set for key, and whether key was present.
func (e *Engine) Get(key string) (string, bool, error) {
	if e.closed.Load() {
		return "", false, ErrEngineClosed
	}

	pos, ok := e.idx.Get(key)
	if !ok {
		return "", false, nil
	}

	handle, err := e.pool.Acquire()
	if err != nil {
		return "", false, err
	}
	defer e.pool.Release(handle)

	cmd, err := handle.ReadCommand(pos)
	if err != nil {
		return "", false, err
	}
	return cmd.Value, true, nil
}

// Close shuts the engine down: it flushes and closes the active segment
// and every reader handle's open descriptors. Close is idempotent; a
// second call returns ErrEngineClosed.
func (e *Engine) Close() error {
	if !e.closed.CompareAndSwap(false, true) {
		return ErrEngineClosed
	}

	var errs error
	if err := e.writer.Close(); err != nil {
		errs = multierr.Append(errs, err)
	}
	if err := e.pool.Close(); err != nil {
		errs = multierr.Append(errs, err)
	}
	return errs
}

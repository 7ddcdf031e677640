// Package kivo is the public entry point to the store: a persistent,
// embeddable key/value engine with a single writer and a pool of
// lock-free readers, periodically compacting its own append-only log.
package kivo

import (
	"github.com/arvindh-k/kivo/internal/engine"
	"github.com/arvindh-k/kivo/pkg/logger"
	"github.com/arvindh-k/kivo/pkg/options"
)

// Instance is a handle onto one open store. It is cheaply copyable: every
// copy shares the same underlying Engine and denotes the same store, so
// Instance can be passed by value across goroutines and collaborators.
type Instance struct {
	eng *engine.Engine
}

// Open opens the store, creating its data directory if necessary and
// replaying any existing segments to rebuild the in-memory index.
//
//	db, err := kivo.Open(options.WithDataDir("/var/lib/kivo"))
func Open(opts ...options.OptionFunc) (Instance, error) {
	applied := options.NewDefaultOptions().Apply(opts...)
	if err := applied.Validate(); err != nil {
		return Instance{}, err
	}

	eng, err := engine.New(&engine.Config{
		Options: &applied,
		Logger:  logger.New("kivo"),
	})
	if err != nil {
		return Instance{}, err
	}

	return Instance{eng: eng}, nil
}

// Set stores value under key, durably.
func (i Instance) Set(key, value string) error {
	if key == "" {
		return emptyArgument("key")
	}
	if value == "" {
		return emptyArgument("value")
	}
	return i.eng.Set(key, value)
}

// Get returns the value last Set for key, and whether key was present.
func (i Instance) Get(key string) (string, bool, error) {
	if key == "" {
		return "", false, emptyArgument("key")
	}
	return i.eng.Get(key)
}

// Remove dissociates key, failing with KeyNotFound if it was absent.
func (i Instance) Remove(key string) error {
	if key == "" {
		return emptyArgument("key")
	}
	return i.eng.Remove(key)
}

// Close flushes and releases every resource the store holds. Close is
// idempotent across clones of the same Instance: whichever clone calls it
// first tears the store down, and later calls report that it is already
// closed.
func (i Instance) Close() error {
	return i.eng.Close()
}

// Package index is the in-memory map from key to its latest CommandPosition.
//
// It wraps NonLockingReadMap, a lock-free ordered map: gets never block,
// and iteration is safe concurrent with inserts because each slot is
// replaced atomically rather than mutated. The writer is the only
// mutator in practice — external callers already serialize Set/Remove/
// compact through a single mutex — so the map's optimistic write loop
// never faces write-write contention; it only needs to coexist with
// concurrent lock-free reads from the reader pool and with compaction's
// per-key reindexing.
package index

import (
	NonLockingReadMap "github.com/launix-de/NonLockingReadMap"
)

// Index maps key to CommandPosition.
type Index struct {
	m NonLockingReadMap.NonLockingReadMap[CommandPosition, string]
}

// New returns an empty Index.
func New() *Index {
	return &Index{m: NonLockingReadMap.New[CommandPosition, string]()}
}

// Get returns the position currently indexed for key, if any.
func (idx *Index) Get(key string) (CommandPosition, bool) {
	p := idx.m.Get(key)
	if p == nil {
		return CommandPosition{}, false
	}
	return *p, true
}

// Insert records pos as key's latest position, returning the position it
// superseded, if any. The writer adds the superseded position's Length to
// its uncompacted counter.
func (idx *Index) Insert(key string, pos CommandPosition) (CommandPosition, bool) {
	pos.Key = key
	prev := idx.m.Set(&pos)
	if prev == nil {
		return CommandPosition{}, false
	}
	return *prev, true
}

// Remove drops key from the index, returning the position it held, if
// any.
func (idx *Index) Remove(key string) (CommandPosition, bool) {
	prev := idx.m.Remove(key)
	if prev == nil {
		return CommandPosition{}, false
	}
	return *prev, true
}

// Iter returns every (key, position) pair currently indexed. It reflects
// a consistent snapshot of the underlying slice pointer at the time of
// the call; concurrent inserts that land after this call are simply not
// included. Compaction only needs entries to never appear torn, not a
// frozen snapshot, so this is sufficient for it to iterate safely.
func (idx *Index) Iter() []CommandPosition {
	entries := idx.m.GetAll()
	out := make([]CommandPosition, 0, len(entries))
	for _, e := range entries {
		out = append(out, *e)
	}
	return out
}

// Len returns the number of keys currently indexed.
func (idx *Index) Len() int {
	return len(idx.m.GetAll())
}

// Package collision detects xxhash collisions between distinct dictionary
// keys so that the encoder can fail fast instead of silently sharing
// dictionary state between two unrelated fields.
package collision

import "github.com/samholt/fastenc/errs"

// Tracker records which field key produced which dictionary hash and flags
// the case where two distinct keys hash to the same value.
//
// Unlike a content-addressed store that can tolerate collisions by falling
// back to a secondary lookup, a FAST dictionary has no such fallback: two
// colliding fields would silently share copy/increment/delta state. Tracker
// therefore treats a collision as fatal.
type Tracker struct {
	seen map[uint64]string
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[uint64]string)}
}

// Track records that key produced hash. It returns errs.ErrDictionaryKeyCollision
// if hash was already produced by a different key.
func (t *Tracker) Track(key string, hash uint64) error {
	if existing, ok := t.seen[hash]; ok {
		if existing != key {
			return errs.ErrDictionaryKeyCollision
		}

		return nil
	}

	t.seen[hash] = key

	return nil
}

// Count returns the number of distinct hashes tracked.
func (t *Tracker) Count() int {
	return len(t.seen)
}

// Reset clears all tracked hashes.
func (t *Tracker) Reset() {
	for k := range t.seen {
		delete(t.seen, k)
	}
}

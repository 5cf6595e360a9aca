// Package collision maps 64-bit key hashes to registry ids and detects
// keys that share a hash.
package collision

// Tracker tracks key hashes and detects hash collisions during
// registration. A hash held by two keys no longer resolves.
type Tracker struct {
	ids      map[uint64]int      // hash → id of the first key with that hash
	collided map[uint64]struct{} // hashes held by more than one key
	count    int
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		ids:      make(map[uint64]int),
		collided: make(map[uint64]struct{}),
	}
}

// Track records that the key hashing to hash was given id. It reports
// false when another key already holds the hash.
func (t *Tracker) Track(hash uint64, id int) bool {
	t.count++
	if _, exists := t.ids[hash]; exists {
		t.collided[hash] = struct{}{}
		return false
	}
	t.ids[hash] = id

	return true
}

// Lookup returns the id tracked under hash. It fails for unknown hashes
// and for hashes shared by several keys.
func (t *Tracker) Lookup(hash uint64) (int, bool) {
	if _, ok := t.collided[hash]; ok {
		return 0, false
	}
	id, ok := t.ids[hash]

	return id, ok
}

// HasCollision returns true if a collision has been detected.
func (t *Tracker) HasCollision() bool {
	return len(t.collided) > 0
}

// Collisions returns the number of hashes shared by more than one key.
func (t *Tracker) Collisions() int {
	return len(t.collided)
}

// Count returns the number of tracked keys.
func (t *Tracker) Count() int {
	return t.count
}

// Reset clears all tracked hashes and collision state.
func (t *Tracker) Reset() {
	clear(t.ids)
	clear(t.collided)
	t.count = 0
}

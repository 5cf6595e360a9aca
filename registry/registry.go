// Package registry provides a keyed arena of values with stable integer
// ids. A Registry is the usual global id source for containers.
package registry

import (
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/rimecraft-rs/rimecraft-sub000/errs"
	"github.com/rimecraft-rs/rimecraft-sub000/internal/collision"
	"github.com/rimecraft-rs/rimecraft-sub000/internal/hash"
	"github.com/rimecraft-rs/rimecraft-sub000/palette"
)

// Registry assigns consecutive ids, starting at 0, to values in
// registration order. Each value has a unique string key.
//
// Registration stops after Freeze. All methods are safe for concurrent use.
type Registry[V comparable] struct {
	mu      sync.RWMutex
	keys    []string
	values  []V
	byKey   map[string]int
	byValue map[V]int
	hashes  *collision.Tracker
	frozen  bool
	// fingerprint is computed on Freeze.
	fingerprint uint64
}

var _ palette.Source[string] = (*Registry[string])(nil)

// New creates an empty registry.
func New[V comparable]() *Registry[V] {
	return &Registry[V]{
		byKey:   make(map[string]int),
		byValue: make(map[V]int),
		hashes:  collision.NewTracker(),
	}
}

// Register adds v under key and returns its id.
func (r *Registry[V]) Register(key string, v V) (int, error) {
	if key == "" {
		return 0, errs.ErrEmptyKey
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return 0, fmt.Errorf("%w: cannot register %q", errs.ErrRegistryFrozen, key)
	}
	if _, ok := r.byKey[key]; ok {
		return 0, fmt.Errorf("%w: %q", errs.ErrDuplicateKey, key)
	}
	if _, ok := r.byValue[v]; ok {
		return 0, fmt.Errorf("%w: value for %q already registered", errs.ErrDuplicateEntry, key)
	}

	id := len(r.values)
	r.keys = append(r.keys, key)
	r.values = append(r.values, v)
	r.byKey[key] = id
	r.byValue[v] = id
	r.hashes.Track(hash.ID(key), id)

	return id, nil
}

// MustRegister is like Register but panics on error.
func (r *Registry[V]) MustRegister(key string, v V) int {
	id, err := r.Register(key, v)
	if err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}

	return id
}

// Freeze stops further registration. It is idempotent.
func (r *Registry[V]) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return
	}
	r.frozen = true
	r.fingerprint = hash.Fingerprint(r.keys)
}

// Frozen reports whether Freeze was called.
func (r *Registry[V]) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.frozen
}

// Fingerprint identifies the id assignment: two registries with the same
// keys in the same order share a fingerprint.
func (r *Registry[V]) Fingerprint() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.frozen {
		return r.fingerprint
	}

	return hash.Fingerprint(r.keys)
}

// IndexOf returns the id of v.
func (r *Registry[V]) IndexOf(v V) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byValue[v]

	return id, ok
}

// ValueOf returns the value with the given id.
func (r *Registry[V]) ValueOf(id int) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if id < 0 || id >= len(r.values) {
		var zero V
		return zero, false
	}

	return r.values[id], true
}

// Len returns the number of registered values.
func (r *Registry[V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.values)
}

// Get returns the value registered under key.
func (r *Registry[V]) Get(key string) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byKey[key]
	if !ok {
		var zero V
		return zero, false
	}

	return r.values[id], true
}

// ID returns the id registered under key.
func (r *Registry[V]) ID(key string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byKey[key]

	return id, ok
}

// ByKeyID returns the id whose key hashes to keyID, the xxHash64 of the
// key. Hashes shared by two keys do not resolve.
func (r *Registry[V]) ByKeyID(keyID uint64) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.hashes.Lookup(keyID)
}

// HasKeyIDCollision reports whether two registered keys share a hash.
func (r *Registry[V]) HasKeyIDCollision() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.hashes.HasCollision()
}

// Key returns the key of the given id.
func (r *Registry[V]) Key(id int) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if id < 0 || id >= len(r.keys) {
		return "", false
	}

	return r.keys[id], true
}

// Keys returns every key in id order.
func (r *Registry[V]) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.keys)
}

// All iterates over (id, value) pairs in id order over a snapshot taken
// when iteration starts.
func (r *Registry[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		r.mu.RLock()
		values := r.values[:len(r.values):len(r.values)]
		r.mu.RUnlock()

		for i, v := range values {
			if !yield(i, v) {
				return
			}
		}
	}
}

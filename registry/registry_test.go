package registry

import (
	"sync"
	"testing"

	"github.com/rimecraft-rs/rimecraft-sub000/errs"
	"github.com/rimecraft-rs/rimecraft-sub000/internal/hash"
	"github.com/stretchr/testify/require"
)

type blockState struct {
	Name  string
	Level int
}

func newBlocks(t *testing.T) *Registry[blockState] {
	t.Helper()
	r := New[blockState]()
	for i, key := range []string{"air", "stone", "water"} {
		id, err := r.Register("minecraft:"+key, blockState{Name: key})
		require.NoError(t, err)
		require.Equal(t, i, id)
	}

	return r
}

func TestRegistry_Lookup(t *testing.T) {
	r := newBlocks(t)
	require.Equal(t, 3, r.Len())

	id, ok := r.IndexOf(blockState{Name: "stone"})
	require.True(t, ok)
	require.Equal(t, 1, id)

	v, ok := r.ValueOf(2)
	require.True(t, ok)
	require.Equal(t, "water", v.Name)

	_, ok = r.ValueOf(3)
	require.False(t, ok)
	_, ok = r.ValueOf(-1)
	require.False(t, ok)
	_, ok = r.IndexOf(blockState{Name: "lava"})
	require.False(t, ok)

	v, ok = r.Get("minecraft:air")
	require.True(t, ok)
	require.Equal(t, blockState{Name: "air"}, v)
	_, ok = r.Get("minecraft:lava")
	require.False(t, ok)

	id, ok = r.ID("minecraft:water")
	require.True(t, ok)
	require.Equal(t, 2, id)

	key, ok := r.Key(1)
	require.True(t, ok)
	require.Equal(t, "minecraft:stone", key)
	_, ok = r.Key(7)
	require.False(t, ok)

	require.Equal(t, []string{"minecraft:air", "minecraft:stone", "minecraft:water"}, r.Keys())
}

func TestRegistry_RegisterErrors(t *testing.T) {
	r := newBlocks(t)

	_, err := r.Register("", blockState{Name: "x"})
	require.ErrorIs(t, err, errs.ErrEmptyKey)

	_, err = r.Register("minecraft:air", blockState{Name: "other"})
	require.ErrorIs(t, err, errs.ErrDuplicateKey)

	_, err = r.Register("minecraft:air2", blockState{Name: "air"})
	require.ErrorIs(t, err, errs.ErrDuplicateEntry)

	require.Panics(t, func() { r.MustRegister("minecraft:stone", blockState{Name: "z"}) })
	require.Equal(t, 3, r.Len())
}

func TestRegistry_Freeze(t *testing.T) {
	r := newBlocks(t)
	before := r.Fingerprint()

	r.Freeze()
	r.Freeze()
	require.True(t, r.Frozen())
	require.Equal(t, before, r.Fingerprint())

	_, err := r.Register("minecraft:lava", blockState{Name: "lava"})
	require.ErrorIs(t, err, errs.ErrRegistryFrozen)
}

func TestRegistry_Fingerprint(t *testing.T) {
	a := newBlocks(t)
	b := newBlocks(t)
	require.Equal(t, a.Fingerprint(), b.Fingerprint())

	b.MustRegister("minecraft:lava", blockState{Name: "lava", Level: 15})
	require.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestRegistry_All(t *testing.T) {
	r := newBlocks(t)

	var names []string
	for id, v := range r.All() {
		require.Len(t, names, id)
		names = append(names, v.Name)
	}
	require.Equal(t, []string{"air", "stone", "water"}, names)

	count := 0
	for range r.All() {
		count++
		break
	}
	require.Equal(t, 1, count)
}

func TestRegistry_ConcurrentReads(t *testing.T) {
	r := newBlocks(t)
	r.Freeze()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 1000 {
				v, ok := r.ValueOf(i % 3)
				if !ok {
					t.Error("missing value")
					return
				}
				if id, _ := r.IndexOf(v); id != i%3 {
					t.Error("id mismatch")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestRegistry_ByKeyID(t *testing.T) {
	r := newBlocks(t)
	require.False(t, r.HasKeyIDCollision())

	id, ok := r.ByKeyID(hash.ID("minecraft:water"))
	require.True(t, ok)
	require.Equal(t, 2, id)

	_, ok = r.ByKeyID(hash.ID("minecraft:lava"))
	require.False(t, ok)
}

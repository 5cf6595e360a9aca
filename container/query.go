package container

import (
	"maps"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/rimecraft-rs/rimecraft-sub000/internal/pool"
)

// Count calls fn once per distinct value with the number of cells holding
// it. The counts sum to Len(). Values are reported in local id order.
func (c *Container[V]) Count(fn func(v V, n int)) {
	st := c.st
	if st.storage == nil || st.palette.Len() == 1 {
		fn(c.value(0), c.n)
		return
	}

	ids, release := pool.GetUint32Slice(c.n)
	defer release()
	st.storage.UnpackAll(ids)

	if st.palette.Config().Strategy.HasLocalDictionary() {
		hist, releaseHist := pool.GetIntSlice(st.palette.Len())
		defer releaseHist()
		for _, id := range ids {
			hist[id]++
		}
		for id, n := range hist {
			if n > 0 {
				fn(c.value(uint32(id)), n) //nolint:gosec
			}
		}

		return
	}

	hist := make(map[uint32]int)
	for _, id := range ids {
		hist[id]++
	}
	for _, id := range slices.Sorted(maps.Keys(hist)) {
		fn(c.value(id), hist[id])
	}
}

// Cells returns the set of cell indices holding v.
func (c *Container[V]) Cells(v V) *roaring.Bitmap {
	cells := roaring.New()
	id, ok := c.st.palette.Index(v)
	if !ok {
		return cells
	}
	if c.st.storage == nil {
		if id == 0 {
			cells.AddRange(0, uint64(c.n))
		}
		return cells
	}

	for i, cur := range c.st.storage.All() {
		if cur == id {
			cells.Add(uint32(i)) //nolint:gosec
		}
	}

	return cells
}

// PaletteValues returns the dictionary in local id order. For Direct this
// is the whole global domain.
func (c *Container[V]) PaletteValues() []V {
	return c.st.palette.Values()
}

// HasAny reports whether pred holds for any dictionary entry. With a local
// dictionary the entries may include values no longer stored in any cell;
// with Direct only stored values are tested.
func (c *Container[V]) HasAny(pred func(V) bool) bool {
	if c.st.palette.Config().Strategy.HasLocalDictionary() {
		for _, v := range c.st.palette.All() {
			if pred(v) {
				return true
			}
		}

		return false
	}

	seen := make(map[uint32]struct{})
	for _, id := range c.st.storage.All() {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if pred(c.value(id)) {
			return true
		}
	}

	return false
}

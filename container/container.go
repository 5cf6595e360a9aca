package container

import (
	"fmt"
	"time"

	"github.com/rimecraft-rs/rimecraft-sub000/bitpack"
	"github.com/rimecraft-rs/rimecraft-sub000/errs"
	"github.com/rimecraft-rs/rimecraft-sub000/internal/options"
	"github.com/rimecraft-rs/rimecraft-sub000/palette"
	"github.com/rimecraft-rs/rimecraft-sub000/provider"
)

// Provider chooses palette configurations and fixes the container's shape.
type Provider interface {
	provider.Policy
	// CellCount returns the number of cells, 1 << (3 × EdgeBits).
	CellCount() int
	// EdgeBits returns log2 of the region's edge length.
	EdgeBits() int
}

// state is replaced as a whole on resize.
type state[V comparable] struct {
	palette *palette.Palette[V]
	// storage is nil when bits is 0.
	storage *bitpack.Array
	bits    int
}

func (s *state[V]) id(i int) uint32 {
	if s.storage == nil {
		return 0
	}

	return s.storage.Get(i)
}

func (s *state[V]) clone() *state[V] {
	c := &state[V]{palette: s.palette.Clone(), bits: s.bits}
	if s.storage != nil {
		c.storage = s.storage.Clone()
	}

	return c
}

// Container stores one value of type V per cell.
type Container[V comparable] struct {
	source   palette.Source[V]
	provider Provider
	n        int
	st       *state[V]
	cfg      *settings
}

func newContainer[V comparable](source palette.Source[V], prov Provider, opts []Option) (*Container[V], error) {
	if source == nil {
		return nil, errs.ErrNilSource
	}
	if prov == nil {
		return nil, fmt.Errorf("%w: nil provider", errs.ErrInvalidPolicy)
	}
	n := prov.CellCount()
	if n <= 0 || n > bitpack.MaxLen {
		return nil, fmt.Errorf("%w: %d cells", errs.ErrInvalidLength, n)
	}

	cfg := defaultSettings()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Container[V]{source: source, provider: prov, n: n, cfg: cfg}, nil
}

func newState[V comparable](cfg palette.Config, source palette.Source[V], n int) (*state[V], error) {
	p, err := palette.New(cfg, source, nil)
	if err != nil {
		return nil, err
	}
	st := &state[V]{palette: p, bits: cfg.Bits}
	if cfg.Bits > 0 {
		if st.storage, err = bitpack.New(cfg.Bits, n); err != nil {
			return nil, err
		}
	}

	return st, nil
}

// OfSingle creates a container with every cell set to v.
func OfSingle[V comparable](source palette.Source[V], prov Provider, v V, opts ...Option) (*Container[V], error) {
	c, err := newContainer(source, prov, opts)
	if err != nil {
		return nil, err
	}
	if c.st, err = newState(prov.Config(0, source.Len()), source, c.n); err != nil {
		return nil, err
	}
	c.indexOrUpgrade(v)

	return c, nil
}

// New creates a container from an explicit configuration, storage and
// dictionary entries. A nil storage starts every cell at local id 0.
//
// Every id in storage must resolve: below len(entries) for local
// dictionaries, a known global id for Direct.
func New[V comparable](source palette.Source[V], prov Provider, cfg palette.Config, storage *bitpack.Array, entries []V, opts ...Option) (*Container[V], error) {
	c, err := newContainer(source, prov, opts)
	if err != nil {
		return nil, err
	}

	p, err := palette.New(cfg, source, entries)
	if err != nil {
		return nil, err
	}
	st := &state[V]{palette: p, bits: cfg.Bits}

	switch {
	case storage == nil && cfg.Bits > 0:
		if st.storage, err = bitpack.New(cfg.Bits, c.n); err != nil {
			return nil, err
		}
	case storage != nil:
		if storage.Len() != c.n || storage.Bits() != cfg.Bits {
			return nil, fmt.Errorf("%w: %d cells at %d bits, want %d cells at %d bits",
				errs.ErrStorageShape, storage.Len(), storage.Bits(), c.n, cfg.Bits)
		}
		if cfg.Bits > 0 {
			st.storage = storage
		}
	}

	if err := validateIDs(st, source); err != nil {
		return nil, err
	}
	c.st = st

	return c, nil
}

// validateIDs checks that every cell resolves through the palette.
func validateIDs[V comparable](st *state[V], source palette.Source[V]) error {
	if !st.palette.Config().Strategy.HasLocalDictionary() {
		for i, id := range st.storage.All() {
			if _, ok := source.ValueOf(int(id)); !ok {
				return fmt.Errorf("%w: %d at cell %d", errs.ErrUnknownID, id, i)
			}
		}

		return nil
	}

	size := uint32(st.palette.Len()) //nolint:gosec
	if size == 0 {
		return fmt.Errorf("%w: empty palette", errs.ErrInvalidLocalID)
	}
	if st.storage == nil {
		return nil
	}
	for i, id := range st.storage.All() {
		if id >= size {
			return fmt.Errorf("%w: %d at cell %d, palette holds %d", errs.ErrInvalidLocalID, id, i, size)
		}
	}

	return nil
}

func (c *Container[V]) checkIndex(i int) {
	if i < 0 || i >= c.n {
		panic(fmt.Sprintf("container: cell %d out of range [0, %d)", i, c.n))
	}
}

func (c *Container[V]) value(id uint32) V {
	v, ok := c.st.palette.Get(id)
	if !ok {
		panic(fmt.Sprintf("container: local id %d missing from %s palette", id, c.st.palette.Config()))
	}

	return v
}

// indexOrUpgrade returns the local id of v, upgrading the state until the
// palette can hold it.
func (c *Container[V]) indexOrUpgrade(v V) uint32 {
	for {
		id, needBits, ok := c.st.palette.IndexOrInsert(v)
		if ok {
			return id
		}
		if needBits == 0 {
			panic(fmt.Sprintf("container: value %v is not in the global id source", v))
		}
		if !c.resize(needBits) {
			panic(fmt.Sprintf("container: provider returned %s again for %d bits", c.st.palette.Config(), needBits))
		}
	}
}

// resize rebuilds the state for needBits and reports whether it changed.
// An unchanged configuration is left alone.
func (c *Container[V]) resize(needBits int) bool {
	start := time.Now()
	old := c.st
	from := old.palette.Config()
	to := c.provider.Config(needBits, c.source.Len())
	if to == from {
		return false
	}

	next, err := newState(to, c.source, c.n)
	if err != nil {
		panic(fmt.Sprintf("container: cannot build %s state: %v", to, err))
	}

	translated := make(map[uint32]uint32)
	for i := range c.n {
		oldID := old.id(i)
		newID, ok := translated[oldID]
		if !ok {
			v := c.value(oldID)
			var fits bool
			newID, _, fits = next.palette.IndexOrInsert(v)
			if !fits {
				panic(fmt.Sprintf("container: %s palette cannot import %v from %s", to, v, from))
			}
			translated[oldID] = newID
		}
		if next.storage != nil {
			next.storage.Set(i, newID)
		}
	}

	c.st = next
	c.cfg.logger.LogResize(from, to, c.n)
	c.cfg.metrics.RecordResize(from, to, time.Since(start))

	return true
}

// Get returns the value at cell i. It panics if i is out of range.
func (c *Container[V]) Get(i int) V {
	c.checkIndex(i)

	return c.value(c.st.id(i))
}

// Set stores v at cell i, upgrading the palette if needed. It panics if i
// is out of range or v is outside the global domain once Direct is reached.
func (c *Container[V]) Set(i int, v V) {
	c.checkIndex(i)
	id := c.indexOrUpgrade(v)
	if c.st.storage != nil {
		c.st.storage.Set(i, id)
	}
}

// Swap stores v at cell i and returns the previous value.
func (c *Container[V]) Swap(i int, v V) V {
	c.checkIndex(i)
	id := c.indexOrUpgrade(v)
	if c.st.storage == nil {
		return c.value(0)
	}

	return c.value(c.st.storage.Swap(i, id))
}

// Index returns the cell index of (x, y, z), laid out y-major then z then
// x. It panics if a coordinate falls outside the region.
func (c *Container[V]) Index(x, y, z int) int {
	e := c.provider.EdgeBits()
	edge := 1 << e
	if x < 0 || x >= edge || y < 0 || y >= edge || z < 0 || z >= edge {
		panic(fmt.Sprintf("container: coordinate (%d, %d, %d) outside %d-cell edge", x, y, z, edge))
	}

	return (y<<e|z)<<e | x
}

// GetAt returns the value at (x, y, z).
func (c *Container[V]) GetAt(x, y, z int) V {
	return c.Get(c.Index(x, y, z))
}

// SetAt stores v at (x, y, z).
func (c *Container[V]) SetAt(x, y, z int, v V) {
	c.Set(c.Index(x, y, z), v)
}

// SwapAt stores v at (x, y, z) and returns the previous value.
func (c *Container[V]) SwapAt(x, y, z int, v V) V {
	return c.Swap(c.Index(x, y, z), v)
}

// Len returns the number of cells.
func (c *Container[V]) Len() int {
	return c.n
}

// Config returns the current palette configuration.
func (c *Container[V]) Config() palette.Config {
	return c.st.palette.Config()
}

// Source returns the global id source.
func (c *Container[V]) Source() palette.Source[V] {
	return c.source
}

// Clone returns a deep copy with the same source, provider and options.
func (c *Container[V]) Clone() *Container[V] {
	cp := *c
	cp.st = c.st.clone()

	return &cp
}

// Slice returns a uniform container holding the first dictionary entry.
func (c *Container[V]) Slice() *Container[V] {
	s := &Container[V]{source: c.source, provider: c.provider, n: c.n, cfg: c.cfg}
	st, err := newState(c.provider.Config(0, c.source.Len()), c.source, c.n)
	if err != nil {
		panic(fmt.Sprintf("container: %v", err))
	}
	s.st = st
	s.indexOrUpgrade(c.value(0))

	return s
}

package palette

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/rimecraft-rs/rimecraft-sub000/bitpack"
	"github.com/rimecraft-rs/rimecraft-sub000/errs"
	"github.com/rimecraft-rs/rimecraft-sub000/format"
)

// Palette maps values to small local ids using one of four strategies.
//
// The strategy is fixed at construction. A full palette never grows in
// place: IndexOrInsert reports the width it needs and the owner rebuilds a
// larger one.
type Palette[V comparable] struct {
	strategy format.Strategy
	bits     int
	source   Source[V]

	// Singular, Linear and HashDictionary keep entries in id order.
	entries []V
	// HashDictionary only.
	reverse map[V]uint32
}

// New creates a palette for cfg pre-filled with entries in id order.
// Entries are ignored for Direct.
func New[V comparable](cfg Config, source Source[V], entries []V) (*Palette[V], error) {
	if cfg.Bits < 0 || cfg.Bits > bitpack.MaxBits {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidBitWidth, cfg.Bits)
	}

	p := &Palette[V]{strategy: cfg.Strategy, bits: cfg.Bits, source: source}
	switch cfg.Strategy {
	case format.StrategySingular:
		if cfg.Bits != 0 {
			return nil, fmt.Errorf("%w: singular palette with %d bits", errs.ErrInvalidBitWidth, cfg.Bits)
		}
		if len(entries) > 1 {
			return nil, fmt.Errorf("%w: singular palette with %d entries", errs.ErrTooManyEntries, len(entries))
		}
		p.entries = append(make([]V, 0, 1), entries...)
	case format.StrategyLinear, format.StrategyHashDictionary:
		if len(entries) > cfg.Capacity() {
			return nil, fmt.Errorf("%w: %d entries for %s", errs.ErrTooManyEntries, len(entries), cfg)
		}
		seen := make(map[V]uint32, len(entries))
		for i, v := range entries {
			if _, dup := seen[v]; dup {
				return nil, fmt.Errorf("%w: entry %d", errs.ErrDuplicateEntry, i)
			}
			seen[v] = uint32(i) //nolint:gosec
		}
		p.entries = slices.Clone(entries)
		if cfg.Strategy == format.StrategyHashDictionary {
			p.reverse = seen
		}
	case format.StrategyDirect:
		if source == nil {
			return nil, fmt.Errorf("%w: direct palette", errs.ErrNilSource)
		}
		if cfg.Bits == 0 {
			return nil, fmt.Errorf("%w: direct palette needs at least 1 bit", errs.ErrInvalidBitWidth)
		}
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidStrategy, cfg.Strategy)
	}

	return p, nil
}

// Config returns the palette's strategy and bit width.
func (p *Palette[V]) Config() Config {
	return Config{Strategy: p.strategy, Bits: p.bits}
}

// Source returns the global id source the palette was built with.
func (p *Palette[V]) Source() Source[V] {
	return p.source
}

// Index returns the local id of v without inserting it.
func (p *Palette[V]) Index(v V) (uint32, bool) {
	switch p.strategy {
	case format.StrategySingular, format.StrategyLinear:
		if i := slices.Index(p.entries, v); i >= 0 {
			return uint32(i), true //nolint:gosec
		}
	case format.StrategyHashDictionary:
		id, ok := p.reverse[v]
		return id, ok
	case format.StrategyDirect:
		if id, ok := p.source.IndexOf(v); ok {
			return uint32(id), true //nolint:gosec
		}
	}

	return 0, false
}

// IndexOrInsert returns the local id of v, inserting it if there is room.
//
// When the palette is full, ok is false, the palette is unchanged and
// needBits is the smallest width that would have room: 1 for Singular,
// bits+1 for Linear and HashDictionary. Direct never fills up; it reports
// ok=false with needBits=0 only for a value outside the global domain.
func (p *Palette[V]) IndexOrInsert(v V) (id uint32, needBits int, ok bool) {
	switch p.strategy {
	case format.StrategySingular:
		if len(p.entries) == 0 {
			p.entries = append(p.entries, v)
			return 0, 0, true
		}
		if p.entries[0] == v {
			return 0, 0, true
		}

		return 0, 1, false
	case format.StrategyLinear:
		if i := slices.Index(p.entries, v); i >= 0 {
			return uint32(i), 0, true //nolint:gosec
		}

		return p.append(v)
	case format.StrategyHashDictionary:
		if id, found := p.reverse[v]; found {
			return id, 0, true
		}
		id, needBits, ok = p.append(v)
		if ok {
			p.reverse[v] = id
		}

		return id, needBits, ok
	default:
		id, ok = p.Index(v)
		return id, 0, ok
	}
}

func (p *Palette[V]) append(v V) (uint32, int, bool) {
	if len(p.entries) >= 1<<p.bits {
		return 0, p.bits + 1, false
	}
	p.entries = append(p.entries, v)

	return uint32(len(p.entries) - 1), 0, true //nolint:gosec
}

// Get returns the value with local id id.
func (p *Palette[V]) Get(id uint32) (V, bool) {
	if p.strategy == format.StrategyDirect {
		return p.source.ValueOf(int(id))
	}
	if uint64(id) >= uint64(len(p.entries)) {
		var zero V
		return zero, false
	}

	return p.entries[id], true
}

// Len returns the number of distinct entries, or the domain size for Direct.
func (p *Palette[V]) Len() int {
	if p.strategy == format.StrategyDirect {
		return p.source.Len()
	}

	return len(p.entries)
}

// All iterates over (local id, value) pairs in id order.
func (p *Palette[V]) All() iter.Seq2[uint32, V] {
	return func(yield func(uint32, V) bool) {
		n := p.Len()
		for i := range n {
			v, ok := p.Get(uint32(i)) //nolint:gosec
			if !ok {
				continue
			}
			if !yield(uint32(i), v) { //nolint:gosec
				return
			}
		}
	}
}

// Values returns the entries in id order.
func (p *Palette[V]) Values() []V {
	if p.strategy != format.StrategyDirect {
		return slices.Clone(p.entries)
	}

	out := make([]V, 0, p.source.Len())
	for _, v := range p.All() {
		out = append(out, v)
	}

	return out
}

// Clone returns an independent copy sharing the source.
func (p *Palette[V]) Clone() *Palette[V] {
	c := *p
	c.entries = slices.Clone(p.entries)
	c.reverse = maps.Clone(p.reverse)

	return &c
}

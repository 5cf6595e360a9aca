package container

import (
	"fmt"
	"slices"
	"time"

	"github.com/rimecraft-rs/rimecraft-sub000/bitpack"
	"github.com/rimecraft-rs/rimecraft-sub000/codec"
	"github.com/rimecraft-rs/rimecraft-sub000/errs"
	"github.com/rimecraft-rs/rimecraft-sub000/format"
	"github.com/rimecraft-rs/rimecraft-sub000/internal/pool"
	"github.com/rimecraft-rs/rimecraft-sub000/palette"
	"github.com/rimecraft-rs/rimecraft-sub000/provider"
)

// Serialized is the human-readable form. Palette lists the distinct
// values in order of first appearance; Data packs each cell's index into
// Palette and is absent when the width is 0.
type Serialized[V any] struct {
	Palette []V      `json:"palette" cbor:"palette"`
	Data    []uint64 `json:"data,omitempty" cbor:"data,omitempty"`
}

// ToSerialized builds the human-readable form from the values actually
// stored, independent of the live palette.
func (c *Container[V]) ToSerialized() (Serialized[V], error) {
	st := c.st
	ids, release := pool.GetUint32Slice(c.n)
	defer release()
	if st.storage != nil {
		st.storage.UnpackAll(ids)
	} else {
		clear(ids)
	}

	minimal, err := palette.New(palette.Config{
		Strategy: format.StrategyHashDictionary,
		Bits:     provider.CeilLog2(c.n),
	}, c.source, nil)
	if err != nil {
		return Serialized[V]{}, err
	}

	// Runs of equal ids are common, so remember the last translation.
	prevOld, prevNew := ^uint32(0), uint32(0)
	for i, id := range ids {
		if id != prevOld {
			newID, _, ok := minimal.IndexOrInsert(c.value(id))
			if !ok {
				panic("container: minimal palette overflow")
			}
			prevOld, prevNew = id, newID
		}
		ids[i] = prevNew
	}

	out := Serialized[V]{Palette: minimal.Values()}
	bits := provider.MinimalBits(c.provider, minimal.Len(), c.source.Len())
	if bits == 0 {
		return out, nil
	}

	packed, err := bitpack.Pack(bits, ids)
	if err != nil {
		return Serialized[V]{}, err
	}
	out.Data = packed.Words()

	return out, nil
}

// FromSerialized replaces the contents with s. The configuration is
// derived from len(s.Palette). On error the container is unchanged.
func (c *Container[V]) FromSerialized(s Serialized[V]) error {
	st, err := c.serializedState(s)
	if err != nil {
		return err
	}
	c.st = st

	return nil
}

func (c *Container[V]) serializedState(s Serialized[V]) (*state[V], error) {
	if len(s.Palette) == 0 {
		return nil, errs.ErrEmptyPalette
	}

	if err := noDuplicates(s.Palette); err != nil {
		return nil, err
	}
	globals := make([]uint32, len(s.Palette))
	for i, v := range s.Palette {
		id, ok := c.source.IndexOf(v)
		if !ok {
			return nil, fmt.Errorf("%w: palette entry %d", errs.ErrUnknownValue, i)
		}
		globals[i] = uint32(id) //nolint:gosec
	}

	size := c.source.Len()
	bits := provider.MinimalBits(c.provider, len(s.Palette), size)
	cfg := c.provider.Config(bits, size)

	if bits == 0 {
		p, err := palette.New(cfg, c.source, s.Palette)
		if err != nil {
			return nil, err
		}

		return &state[V]{palette: p, bits: cfg.Bits}, nil
	}

	if s.Data == nil {
		return nil, fmt.Errorf("%w: %d palette entries need %d bits", errs.ErrMissingData, len(s.Palette), bits)
	}
	packed, err := bitpack.FromWords(bits, c.n, slices.Clone(s.Data))
	if err != nil {
		return nil, err
	}

	if cfg.Strategy.HasLocalDictionary() {
		p, err := palette.New(cfg, c.source, s.Palette)
		if err != nil {
			return nil, err
		}
		st := &state[V]{palette: p, storage: packed, bits: cfg.Bits}
		if err := validateIDs(st, c.source); err != nil {
			return nil, err
		}

		return st, nil
	}

	// Direct: the words index s.Palette, so re-map every cell to its global id.
	ids, release := pool.GetUint32Slice(c.n)
	defer release()
	packed.UnpackAll(ids)
	for i, id := range ids {
		if int(id) >= len(globals) {
			return nil, fmt.Errorf("%w: %d at cell %d, palette holds %d", errs.ErrInvalidLocalID, id, i, len(globals))
		}
		ids[i] = globals[id]
	}

	storage, err := bitpack.Pack(cfg.Bits, ids)
	if err != nil {
		return nil, err
	}
	p, err := palette.New(cfg, c.source, nil)
	if err != nil {
		return nil, err
	}

	return &state[V]{palette: p, storage: storage, bits: cfg.Bits}, nil
}

func noDuplicates[V comparable](values []V) error {
	seen := make(map[V]struct{}, len(values))
	for i, v := range values {
		if _, ok := seen[v]; ok {
			return fmt.Errorf("%w: palette entry %d", errs.ErrDuplicateEntry, i)
		}
		seen[v] = struct{}{}
	}

	return nil
}

// MarshalWith encodes the human-readable form with cd, or codec.Default
// when cd is nil.
func (c *Container[V]) MarshalWith(cd codec.Codec) ([]byte, error) {
	if cd == nil {
		cd = codec.Default
	}
	start := time.Now()

	s, err := c.ToSerialized()
	var out []byte
	if err == nil {
		out, err = cd.Marshal(s)
	}
	c.cfg.metrics.RecordEncode(cd.Name(), len(out), time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("%s encode: %w", cd.Name(), err)
	}

	return out, nil
}

// UnmarshalWith decodes a human-readable form written by cd, or
// codec.Default when cd is nil, into the container.
func (c *Container[V]) UnmarshalWith(cd codec.Codec, data []byte) error {
	if cd == nil {
		cd = codec.Default
	}
	start := time.Now()

	var s Serialized[V]
	err := cd.Unmarshal(data, &s)
	if err == nil {
		err = c.FromSerialized(s)
	}
	c.cfg.metrics.RecordDecode(cd.Name(), len(data), time.Since(start), err)
	if err != nil {
		return fmt.Errorf("%s decode: %w", cd.Name(), err)
	}

	return nil
}

// MarshalJSON encodes the human-readable form as JSON.
func (c *Container[V]) MarshalJSON() ([]byte, error) {
	return c.MarshalWith(codec.GoJSON{})
}

// UnmarshalJSON decodes JSON into an already constructed container.
func (c *Container[V]) UnmarshalJSON(data []byte) error {
	return c.UnmarshalWith(codec.GoJSON{}, data)
}

// MarshalCBOR encodes the human-readable form as deterministic CBOR.
func (c *Container[V]) MarshalCBOR() ([]byte, error) {
	return c.MarshalWith(codec.CBOR{})
}

// UnmarshalCBOR decodes CBOR into an already constructed container.
func (c *Container[V]) UnmarshalCBOR(data []byte) error {
	return c.UnmarshalWith(codec.CBOR{}, data)
}

package palette

import (
	"fmt"

	"github.com/rimecraft-rs/rimecraft-sub000/encoding"
	"github.com/rimecraft-rs/rimecraft-sub000/errs"
	"github.com/rimecraft-rs/rimecraft-sub000/format"
)

// Binary layout, entries written as global ids:
//
//	Singular:               uvarint id
//	Linear, HashDictionary: uvarint count, count × uvarint id
//	Direct:                 nothing

func (p *Palette[V]) globalID(v V) (uint32, error) {
	if p.source == nil {
		return 0, errs.ErrNilSource
	}
	id, ok := p.source.IndexOf(v)
	if !ok {
		return 0, fmt.Errorf("%w: %v", errs.ErrUnknownValue, v)
	}

	return uint32(id), nil //nolint:gosec
}

// AppendBinary appends the dictionary as global ids.
func (p *Palette[V]) AppendBinary(dst []byte) ([]byte, error) {
	switch p.strategy {
	case format.StrategySingular:
		if len(p.entries) == 0 {
			return dst, errs.ErrUninitializedPalette
		}
		id, err := p.globalID(p.entries[0])
		if err != nil {
			return dst, err
		}

		return encoding.AppendUvarint32(dst, id), nil
	case format.StrategyLinear, format.StrategyHashDictionary:
		dst = encoding.AppendUvarint32(dst, uint32(len(p.entries))) //nolint:gosec
		for _, v := range p.entries {
			id, err := p.globalID(v)
			if err != nil {
				return dst, err
			}
			dst = encoding.AppendUvarint32(dst, id)
		}

		return dst, nil
	default:
		return dst, nil
	}
}

// EncodedLen returns the size AppendBinary would write.
func (p *Palette[V]) EncodedLen() (int, error) {
	switch p.strategy {
	case format.StrategySingular:
		if len(p.entries) == 0 {
			return 0, errs.ErrUninitializedPalette
		}
		id, err := p.globalID(p.entries[0])
		if err != nil {
			return 0, err
		}

		return encoding.UvarintLen(id), nil
	case format.StrategyLinear, format.StrategyHashDictionary:
		n := encoding.UvarintLen(uint32(len(p.entries))) //nolint:gosec
		for _, v := range p.entries {
			id, err := p.globalID(v)
			if err != nil {
				return 0, err
			}
			n += encoding.UvarintLen(id)
		}

		return n, nil
	default:
		return 0, nil
	}
}

func (p *Palette[V]) readValue(data []byte) (V, int, error) {
	var zero V
	id, n, err := encoding.ReadUvarint32(data)
	if err != nil {
		return zero, 0, err
	}
	if p.source == nil {
		return zero, 0, errs.ErrNilSource
	}
	v, ok := p.source.ValueOf(int(id))
	if !ok {
		return zero, 0, fmt.Errorf("%w: %d", errs.ErrUnknownID, id)
	}

	return v, n, nil
}

// DecodeFrom replaces the entries with a dictionary read from the start of
// data and returns the number of bytes consumed. The strategy and width
// are kept. On error the palette is unchanged.
func (p *Palette[V]) DecodeFrom(data []byte) (int, error) {
	switch p.strategy {
	case format.StrategySingular:
		v, n, err := p.readValue(data)
		if err != nil {
			return 0, fmt.Errorf("singular entry: %w", err)
		}
		p.entries = append(p.entries[:0], v)

		return n, nil
	case format.StrategyLinear, format.StrategyHashDictionary:
		count, off, err := encoding.ReadUvarint32(data)
		if err != nil {
			return 0, fmt.Errorf("palette length: %w", err)
		}
		if uint64(count) > uint64(p.Config().Capacity()) {
			return 0, fmt.Errorf("%w: %d entries for %s", errs.ErrTooManyEntries, count, p.Config())
		}

		// every entry takes at least one byte
		hint := min(int(count), len(data)-off)
		entries := make([]V, 0, hint)
		reverse := make(map[V]uint32, hint)
		for i := range count {
			v, n, err := p.readValue(data[off:])
			if err != nil {
				return 0, fmt.Errorf("palette entry %d: %w", i, err)
			}
			if _, dup := reverse[v]; dup {
				return 0, fmt.Errorf("%w: entry %d", errs.ErrDuplicateEntry, i)
			}
			reverse[v] = i
			entries = append(entries, v)
			off += n
		}

		p.entries = entries
		if p.strategy == format.StrategyHashDictionary {
			p.reverse = reverse
		}

		return off, nil
	default:
		return 0, nil
	}
}

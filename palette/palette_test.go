package palette

import (
	"testing"

	"github.com/rimecraft-rs/rimecraft-sub000/errs"
	"github.com/rimecraft-rs/rimecraft-sub000/format"
	"github.com/stretchr/testify/require"
)

func byteSource() *ListSource[uint8] {
	values := make([]uint8, 256)
	for i := range values {
		values[i] = uint8(i)
	}

	return NewListSource(values...)
}

func TestSingular(t *testing.T) {
	p, err := New(Config{Strategy: format.StrategySingular}, byteSource(), nil)
	require.NoError(t, err)
	require.Equal(t, 0, p.Len())

	_, ok := p.Get(0)
	require.False(t, ok)

	id, needBits, ok := p.IndexOrInsert(36)
	require.True(t, ok)
	require.Equal(t, uint32(0), id)
	require.Zero(t, needBits)

	v, ok := p.Get(0)
	require.True(t, ok)
	require.Equal(t, uint8(36), v)
	require.Equal(t, []uint8{36}, p.Values())
	require.Equal(t, 1, p.Len())
	require.Equal(t, Config{Strategy: format.StrategySingular}, p.Config())

	_, needBits, ok = p.IndexOrInsert(39)
	require.False(t, ok)
	require.Equal(t, 1, needBits)
	require.Equal(t, 1, p.Len())

	_, ok = p.Index(39)
	require.False(t, ok)
}

func TestGrowingStrategies(t *testing.T) {
	for _, strategy := range []format.Strategy{format.StrategyLinear, format.StrategyHashDictionary} {
		t.Run(strategy.String(), func(t *testing.T) {
			cfg := Config{Strategy: strategy, Bits: 2}
			p, err := New(cfg, byteSource(), []uint8{36, 39})
			require.NoError(t, err)
			require.Equal(t, 2, p.Len())

			id, _, ok := p.IndexOrInsert(140)
			require.True(t, ok)
			require.Equal(t, uint32(2), id)

			id, _, ok = p.IndexOrInsert(4)
			require.True(t, ok)
			require.Equal(t, uint32(3), id)

			id, _, ok = p.IndexOrInsert(39)
			require.True(t, ok)
			require.Equal(t, uint32(1), id)

			_, needBits, ok := p.IndexOrInsert(114)
			require.False(t, ok)
			require.Equal(t, 3, needBits)

			v, ok := p.Get(0)
			require.True(t, ok)
			require.Equal(t, uint8(36), v)
			_, ok = p.Get(4)
			require.False(t, ok)

			require.Equal(t, []uint8{36, 39, 140, 4}, p.Values())
			require.Equal(t, 4, p.Len())
			require.Equal(t, cfg, p.Config())

			_, ok = p.Index(114)
			require.False(t, ok)
		})
	}
}

func TestDirect(t *testing.T) {
	source := NewListSource[uint8](36, 39, 140, 4)
	p, err := New(Config{Strategy: format.StrategyDirect, Bits: 2}, source, []uint8{99})
	require.NoError(t, err)

	require.Equal(t, 4, p.Len())
	for want, v := range []uint8{36, 39, 140, 4} {
		id, ok := p.Index(v)
		require.True(t, ok)
		require.Equal(t, uint32(want), id)

		id, needBits, ok := p.IndexOrInsert(v)
		require.True(t, ok)
		require.Zero(t, needBits)
		require.Equal(t, uint32(want), id)

		got, ok := p.Get(uint32(want))
		require.True(t, ok)
		require.Equal(t, v, got)
	}
	require.Equal(t, []uint8{36, 39, 140, 4}, p.Values())

	_, needBits, ok := p.IndexOrInsert(200)
	require.False(t, ok)
	require.Zero(t, needBits)

	buf, err := p.AppendBinary(nil)
	require.NoError(t, err)
	require.Empty(t, buf)

	n, err := p.DecodeFrom([]byte{1, 2, 3})
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestNew_Validation(t *testing.T) {
	source := byteSource()
	tests := []struct {
		name    string
		cfg     Config
		entries []uint8
		err     error
	}{
		{"singular with bits", Config{format.StrategySingular, 1}, nil, errs.ErrInvalidBitWidth},
		{"singular with two entries", Config{format.StrategySingular, 0}, []uint8{1, 2}, errs.ErrTooManyEntries},
		{"linear over capacity", Config{format.StrategyLinear, 1}, []uint8{1, 2, 3}, errs.ErrTooManyEntries},
		{"hash duplicate", Config{format.StrategyHashDictionary, 2}, []uint8{1, 2, 1}, errs.ErrDuplicateEntry},
		{"linear duplicate", Config{format.StrategyLinear, 2}, []uint8{5, 5}, errs.ErrDuplicateEntry},
		{"width too large", Config{format.StrategyLinear, 33}, nil, errs.ErrInvalidBitWidth},
		{"direct without bits", Config{format.StrategyDirect, 0}, nil, errs.ErrInvalidBitWidth},
		{"unknown strategy", Config{format.Strategy(9), 4}, nil, errs.ErrInvalidStrategy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg, source, tt.entries)
			require.ErrorIs(t, err, tt.err)
		})
	}

	_, err := New[uint8](Config{format.StrategyDirect, 8}, nil, nil)
	require.ErrorIs(t, err, errs.ErrNilSource)
}

func TestNew_CopiesEntries(t *testing.T) {
	entries := []uint8{1, 2}
	p, err := New(Config{format.StrategyLinear, 2}, byteSource(), entries)
	require.NoError(t, err)

	entries[0] = 9
	v, _ := p.Get(0)
	require.Equal(t, uint8(1), v)
}

func TestClone(t *testing.T) {
	p, err := New(Config{format.StrategyHashDictionary, 3}, byteSource(), []uint8{1, 2})
	require.NoError(t, err)

	c := p.Clone()
	_, _, ok := c.IndexOrInsert(3)
	require.True(t, ok)

	require.Equal(t, 2, p.Len())
	require.Equal(t, 3, c.Len())
	_, ok = p.Index(3)
	require.False(t, ok)
}

func TestAll_StopsEarly(t *testing.T) {
	p, err := New(Config{format.StrategyLinear, 2}, byteSource(), []uint8{7, 8, 9})
	require.NoError(t, err)

	var ids []uint32
	for id := range p.All() {
		ids = append(ids, id)
		if id == 1 {
			break
		}
	}
	require.Equal(t, []uint32{0, 1}, ids)
}

func TestConfig(t *testing.T) {
	require.Equal(t, 1, Config{format.StrategySingular, 0}.Capacity())
	require.Equal(t, 16, Config{format.StrategyLinear, 4}.Capacity())
	require.Equal(t, 256, Config{format.StrategyHashDictionary, 8}.Capacity())
	require.Equal(t, -1, Config{format.StrategyDirect, 15}.Capacity())
	require.Equal(t, "Linear/4", Config{format.StrategyLinear, 4}.String())
}

func TestListSource(t *testing.T) {
	s := NewListSource("air", "stone", "air")
	require.Equal(t, 3, s.Len())

	id, ok := s.IndexOf("air")
	require.True(t, ok)
	require.Equal(t, 0, id)

	_, ok = s.IndexOf("dirt")
	require.False(t, ok)

	_, ok = s.ValueOf(3)
	require.False(t, ok)
	_, ok = s.ValueOf(-1)
	require.False(t, ok)
}

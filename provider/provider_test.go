package provider

import (
	"testing"

	"github.com/rimecraft-rs/rimecraft-sub000/errs"
	"github.com/rimecraft-rs/rimecraft-sub000/format"
	"github.com/rimecraft-rs/rimecraft-sub000/palette"
	"github.com/stretchr/testify/require"
)

func TestBlockStates_Config(t *testing.T) {
	const domain = 20000 // 15 bits
	tests := []struct {
		bits int
		want palette.Config
	}{
		{0, palette.Config{Strategy: format.StrategySingular}},
		{1, palette.Config{Strategy: format.StrategyLinear, Bits: 4}},
		{3, palette.Config{Strategy: format.StrategyLinear, Bits: 4}},
		{4, palette.Config{Strategy: format.StrategyLinear, Bits: 4}},
		{5, palette.Config{Strategy: format.StrategyHashDictionary, Bits: 5}},
		{8, palette.Config{Strategy: format.StrategyHashDictionary, Bits: 8}},
		{9, palette.Config{Strategy: format.StrategyDirect, Bits: 15}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, BlockStates.Config(tt.bits, domain), "bits=%d", tt.bits)
	}

	require.Equal(t, 4096, BlockStates.CellCount())
	require.Equal(t, 4, BlockStates.EdgeBits())
	require.NoError(t, BlockStates.Validate())
}

func TestBiomes_Config(t *testing.T) {
	const domain = 64 // 6 bits
	tests := []struct {
		bits int
		want palette.Config
	}{
		{0, palette.Config{Strategy: format.StrategySingular}},
		{1, palette.Config{Strategy: format.StrategyLinear, Bits: 1}},
		{2, palette.Config{Strategy: format.StrategyLinear, Bits: 2}},
		{3, palette.Config{Strategy: format.StrategyLinear, Bits: 3}},
		{4, palette.Config{Strategy: format.StrategyDirect, Bits: 6}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Biomes.Config(tt.bits, domain), "bits=%d", tt.bits)
	}

	require.Equal(t, 64, Biomes.CellCount())
	require.NoError(t, Biomes.Validate())
}

func TestCeilLog2(t *testing.T) {
	tests := map[int]int{0: 0, 1: 0, 2: 1, 3: 2, 4: 2, 5: 3, 16: 4, 17: 5, 256: 8, 257: 9}
	for n, want := range tests {
		require.Equal(t, want, CeilLog2(n), "n=%d", n)
	}
}

func TestDirectBits(t *testing.T) {
	require.Equal(t, 1, DirectBits(0))
	require.Equal(t, 1, DirectBits(1))
	require.Equal(t, 1, DirectBits(2))
	require.Equal(t, 15, DirectBits(20000))
	require.Equal(t, 32, DirectBits(1<<40))
}

func TestMinimalBits(t *testing.T) {
	const domain = 20000
	tests := []struct {
		n    int
		want int
	}{
		{1, 0},
		{2, 4},
		{16, 4},
		{17, 5},
		{256, 8},
		{257, 9}, // Direct keeps the raw width
		{1000, 10},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, MinimalBits(BlockStates, tt.n, domain), "n=%d", tt.n)
	}

	require.Equal(t, 3, MinimalBits(Biomes, 5, 64))
	require.Equal(t, 4, MinimalBits(Biomes, 9, 64))
}

func TestThresholds_Validate(t *testing.T) {
	tests := []struct {
		name string
		t    Thresholds
	}{
		{"too many cells", Thresholds{Edge: 9, LinearMinBits: 1, LinearMaxBits: 2}},
		{"negative edge", Thresholds{Edge: -1, LinearMinBits: 1, LinearMaxBits: 2}},
		{"zero linear min", Thresholds{Edge: 1, LinearMinBits: 0, LinearMaxBits: 2}},
		{"inverted linear", Thresholds{Edge: 1, LinearMinBits: 3, LinearMaxBits: 2}},
		{"hash too wide", Thresholds{Edge: 1, LinearMinBits: 1, LinearMaxBits: 2, HashMaxBits: 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.t.Validate(), errs.ErrInvalidPolicy)
		})
	}
}

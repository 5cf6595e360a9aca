package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStrategy_String(t *testing.T) {
	tests := []struct {
		strategy Strategy
		want     string
	}{
		{StrategySingular, "Singular"},
		{StrategyLinear, "Linear"},
		{StrategyHashDictionary, "HashDictionary"},
		{StrategyDirect, "Direct"},
		{Strategy(0), "Unknown"},
		{Strategy(0x9), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.strategy.String())
		})
	}
}

func TestStrategy_IsValid(t *testing.T) {
	require.True(t, StrategySingular.IsValid())
	require.True(t, StrategyDirect.IsValid())
	require.False(t, Strategy(0).IsValid())
	require.False(t, Strategy(5).IsValid())
}

func TestStrategy_HasLocalDictionary(t *testing.T) {
	require.True(t, StrategySingular.HasLocalDictionary())
	require.True(t, StrategyLinear.HasLocalDictionary())
	require.True(t, StrategyHashDictionary.HasLocalDictionary())
	require.False(t, StrategyDirect.HasLocalDictionary())
}

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0).String())
}

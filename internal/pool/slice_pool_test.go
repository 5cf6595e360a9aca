package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetUint32Slice(t *testing.T) {
	t.Run("returns slice with requested size", func(t *testing.T) {
		ids, cleanup := GetUint32Slice(4096)
		defer cleanup()

		require.Len(t, ids, 4096)
	})

	t.Run("reuses pooled storage when capacity suffices", func(t *testing.T) {
		ids, cleanup := GetUint32Slice(64)
		ids[0] = 7
		cleanup()

		again, cleanup2 := GetUint32Slice(32)
		defer cleanup2()
		require.Len(t, again, 32)
	})
}

func TestGetIntSlice_Zeroed(t *testing.T) {
	hist, cleanup := GetIntSlice(16)
	for i := range hist {
		hist[i] = i + 1
	}
	cleanup()

	again, cleanup2 := GetIntSlice(16)
	defer cleanup2()
	for _, v := range again {
		require.Zero(t, v)
	}
}

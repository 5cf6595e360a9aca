package pool

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(64)
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 64, bb.Cap())
}

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(4)

	n, err := bb.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 3, n)
	_, _ = bb.Write([]byte{4, 5, 6})
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6}, bb.Bytes())

	capBefore := bb.Cap()
	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, capBefore, bb.Cap())
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(8)
	_, _ = bb.Write([]byte("palette"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(7), n)
	require.Equal(t, "palette", out.String())

	_, err = bb.WriteTo(errorWriter{})
	require.Error(t, err)
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity is a no-op", func(t *testing.T) {
		bb := NewByteBuffer(100)
		bb.Grow(50)
		require.Equal(t, 100, bb.Cap())
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(10)
		_, _ = bb.Write([]byte{1, 2, 3})
		bb.Grow(20)
		require.Equal(t, 3+PayloadBufferDefaultSize, bb.Cap())
		require.Equal(t, []byte{1, 2, 3}, bb.Bytes())
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		size := 8 * PayloadBufferDefaultSize
		bb := NewByteBuffer(size)
		_, _ = bb.Write(make([]byte, size))
		bb.Grow(1)
		require.Equal(t, size+size/4, bb.Cap())
	})

	t.Run("never grows less than required", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(3 * PayloadBufferDefaultSize)
		require.GreaterOrEqual(t, bb.Cap(), 3*PayloadBufferDefaultSize)
	})
}

func TestByteBufferPool_Threshold(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	require.Equal(t, 16, bb.Cap())

	_, _ = bb.Write([]byte{9, 9, 9})
	p.Put(bb)

	again := p.Get()
	require.Equal(t, 0, again.Len(), "buffers come back reset")

	p.Put(nil)
	p.Put(NewByteBuffer(128)) // dropped, above threshold
}

func TestDefaultPools(t *testing.T) {
	payload := GetPayloadBuffer()
	require.GreaterOrEqual(t, payload.Cap(), 0)
	PutPayloadBuffer(payload)

	blob := GetBlobBuffer()
	require.NotNil(t, blob)
	PutBlobBuffer(blob)
}

func TestPool_ConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				bb := GetPayloadBuffer()
				_, _ = bb.Write([]byte{1, 2, 3, 4})
				PutPayloadBuffer(bb)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkPool_GetWritePut(b *testing.B) {
	data := make([]byte, 4096)
	b.ReportAllocs()
	for b.Loop() {
		bb := GetPayloadBuffer()
		_, _ = bb.Write(data)
		PutPayloadBuffer(bb)
	}
}

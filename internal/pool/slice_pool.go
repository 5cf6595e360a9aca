package pool

import "sync"

// Typed slice pools for the flat id buffers used when a container unpacks
// all of its cells at once (counting, human-readable encoding, decoding).
var (
	uint32SlicePool = sync.Pool{
		New: func() any { return &[]uint32{} },
	}
	intSlicePool = sync.Pool{
		New: func() any { return &[]int{} },
	}
)

// GetUint32Slice retrieves a uint32 slice of exactly size elements.
//
// The contents are not zeroed. The caller must call the returned cleanup
// function, typically with defer, to give the slice back.
//
// Example:
//
//	ids, cleanup := pool.GetUint32Slice(4096)
//	defer cleanup()
//	array.UnpackAll(ids)
func GetUint32Slice(size int) ([]uint32, func()) {
	ptr, _ := uint32SlicePool.Get().(*[]uint32)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint32, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { uint32SlicePool.Put(ptr) }
}

// GetIntSlice retrieves a zeroed int slice of exactly size elements,
// used as a histogram indexed by local id.
func GetIntSlice(size int) ([]int, func()) {
	ptr, _ := intSlicePool.Get().(*[]int)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]int, size)
	} else {
		slice = slice[:size]
		clear(slice)
	}
	*ptr = slice

	return slice, func() { intSlicePool.Put(ptr) }
}

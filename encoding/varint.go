package encoding

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/rimecraft-rs/rimecraft-sub000/errs"
)

// MaxVarintLen32 is the longest encoding of a uint32.
const MaxVarintLen32 = 5

// AppendUvarint32 appends v as an unsigned LEB128 varint.
func AppendUvarint32(dst []byte, v uint32) []byte {
	return binary.AppendUvarint(dst, uint64(v))
}

// UvarintLen returns the encoded size of v.
func UvarintLen(v uint32) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}

	return n
}

// ReadUvarint32 decodes a varint from the start of data and returns the
// value and the number of bytes consumed.
func ReadUvarint32(data []byte) (uint32, int, error) {
	v, n := binary.Uvarint(data)
	switch {
	case n == 0:
		return 0, 0, fmt.Errorf("%w: varint", errs.ErrTruncated)
	case n < 0:
		return 0, 0, errs.ErrVarintOverflow
	case v > math.MaxUint32:
		return 0, 0, fmt.Errorf("%w: %d", errs.ErrVarintOverflow, v)
	}

	return uint32(v), n, nil
}

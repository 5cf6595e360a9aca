package encoding

import (
	"fmt"

	"github.com/rimecraft-rs/rimecraft-sub000/endian"
	"github.com/rimecraft-rs/rimecraft-sub000/errs"
)

// WordSize is the encoded size of one packed word.
const WordSize = 8

// AppendWords appends a uvarint word count followed by every word in the
// engine's byte order.
func AppendWords(dst []byte, engine endian.EndianEngine, words []uint64) []byte {
	dst = AppendUvarint32(dst, uint32(len(words))) //nolint:gosec
	for _, w := range words {
		dst = engine.AppendUint64(dst, w)
	}

	return dst
}

// WordsLen returns the encoded size of n words including the count prefix.
func WordsLen(n int) int {
	return UvarintLen(uint32(n)) + n*WordSize //nolint:gosec
}

// DecodeWords reads a length-prefixed word sequence from the start of
// data. The count must equal want. It returns the words and the number of
// bytes consumed.
func DecodeWords(data []byte, engine endian.EndianEngine, want int) ([]uint64, int, error) {
	count, n, err := ReadUvarint32(data)
	if err != nil {
		return nil, 0, fmt.Errorf("word count: %w", err)
	}
	if uint64(count) != uint64(want) {
		return nil, 0, fmt.Errorf("%w: got %d words, want %d", errs.ErrWordCountMismatch, count, want)
	}

	end := n + want*WordSize
	if len(data) < end {
		return nil, 0, fmt.Errorf("%w: need %d bytes of words, have %d", errs.ErrTruncated, want*WordSize, len(data)-n)
	}

	words := make([]uint64, want)
	for i := range words {
		off := n + i*WordSize
		words[i] = engine.Uint64(data[off : off+WordSize])
	}

	return words, end, nil
}

package bitpack

import (
	"fmt"
	"iter"
	"math/bits"

	"github.com/rimecraft-rs/rimecraft-sub000/errs"
)

const (
	// MaxBits is the widest supported cell.
	MaxBits = 32
	// MaxLen is the largest supported cell count. The division-free word
	// index is exact for every index below it.
	MaxLen = 1 << 26
	// WordBits is the width of a backing word.
	WordBits = 64
)

type indexParams struct {
	scale  uint64
	offset uint64
	shift  uint
}

// params is keyed by elements per word, 1 through 64.
var params [WordBits + 1]indexParams

func init() {
	for d := 1; d <= WordBits; d++ {
		switch {
		case d == 1:
			params[d] = indexParams{scale: 0xFFFFFFFF, offset: 0xFFFFFFFF}
		case d&(d-1) == 0:
			params[d] = indexParams{scale: 1 << 31, shift: uint(bits.TrailingZeros(uint(d)) - 1)}
		default:
			s := (uint64(1) << 32) / uint64(d)
			params[d] = indexParams{scale: s, offset: s}
		}
	}
}

// Array is a fixed-length sequence of bits-wide ids packed into uint64 words.
type Array struct {
	words []uint64
	bits  int
	n     int
	mask  uint64
	epw   int
	p     indexParams
}

// WordCount returns the number of words needed to pack n cells of the given width.
func WordCount(bitWidth, n int) int {
	if bitWidth == 0 {
		return 0
	}
	epw := WordBits / bitWidth

	return (n + epw - 1) / epw
}

func validate(bitWidth, n int) error {
	if bitWidth < 0 || bitWidth > MaxBits {
		return fmt.Errorf("%w: %d", errs.ErrInvalidBitWidth, bitWidth)
	}
	if n < 0 || n > MaxLen {
		return fmt.Errorf("%w: %d", errs.ErrInvalidLength, n)
	}

	return nil
}

func newArray(bitWidth, n int, words []uint64) *Array {
	a := &Array{words: words, bits: bitWidth, n: n}
	if bitWidth > 0 {
		a.mask = (uint64(1) << bitWidth) - 1
		a.epw = WordBits / bitWidth
		a.p = params[a.epw]
	}

	return a
}

// New creates a zeroed array of n cells, each bitWidth bits wide.
func New(bitWidth, n int) (*Array, error) {
	if err := validate(bitWidth, n); err != nil {
		return nil, err
	}

	return newArray(bitWidth, n, make([]uint64, WordCount(bitWidth, n))), nil
}

// FromWords wraps already packed words. The array takes ownership of words.
func FromWords(bitWidth, n int, words []uint64) (*Array, error) {
	if err := validate(bitWidth, n); err != nil {
		return nil, err
	}
	if want := WordCount(bitWidth, n); len(words) != want {
		return nil, fmt.Errorf("%w: got %d words, want %d for %d cells at %d bits",
			errs.ErrWordCountMismatch, len(words), want, n, bitWidth)
	}

	return newArray(bitWidth, n, words), nil
}

// Pack packs ids into a new array of width bitWidth.
func Pack(bitWidth int, ids []uint32) (*Array, error) {
	a, err := New(bitWidth, len(ids))
	if err != nil {
		return nil, err
	}
	for i, id := range ids {
		if uint64(id) > a.mask {
			return nil, fmt.Errorf("%w: id %d at cell %d does not fit %d bits", errs.ErrIDOutOfRange, id, i, bitWidth)
		}
		a.set(i, id)
	}

	return a, nil
}

func (a *Array) checkIndex(i int) {
	if i < 0 || i >= a.n {
		panic(fmt.Sprintf("bitpack: index %d out of range [0, %d)", i, a.n))
	}
}

// locate returns the word holding cell i and the cell's bit offset in it.
func (a *Array) locate(i int) (int, uint) {
	w := int((uint64(i)*a.p.scale + a.p.offset) >> 32 >> a.p.shift)

	return w, uint((i - w*a.epw) * a.bits)
}

func (a *Array) set(i int, id uint32) uint32 {
	if a.bits == 0 {
		return 0
	}
	w, shift := a.locate(i)
	word := a.words[w]
	a.words[w] = word&^(a.mask<<shift) | (uint64(id)&a.mask)<<shift

	return uint32((word >> shift) & a.mask)
}

// Get returns the id stored at cell i. It panics if i is out of range.
func (a *Array) Get(i int) uint32 {
	a.checkIndex(i)
	if a.bits == 0 {
		return 0
	}
	w, shift := a.locate(i)

	return uint32((a.words[w] >> shift) & a.mask)
}

// Set stores id at cell i. It panics if i is out of range or id is wider
// than the array.
func (a *Array) Set(i int, id uint32) {
	a.Swap(i, id)
}

// Swap stores id at cell i and returns the previous id. It panics if i is
// out of range or id is wider than the array.
func (a *Array) Swap(i int, id uint32) uint32 {
	a.checkIndex(i)
	if uint64(id) > a.mask {
		panic(fmt.Sprintf("bitpack: id %d exceeds %d-bit width", id, a.bits))
	}

	return a.set(i, id)
}

// UnpackAll writes every id into out[:Len()]. It panics if out is shorter
// than Len().
func (a *Array) UnpackAll(out []uint32) {
	if len(out) < a.n {
		panic(fmt.Sprintf("bitpack: unpack buffer of %d cells, need %d", len(out), a.n))
	}
	out = out[:a.n]
	if a.bits == 0 {
		clear(out)
		return
	}

	i := 0
	for _, word := range a.words {
		for j := 0; j < a.epw && i < a.n; j++ {
			out[i] = uint32(word & a.mask)
			word >>= uint(a.bits)
			i++
		}
	}
}

// All iterates over (cell, id) pairs in cell order.
func (a *Array) All() iter.Seq2[int, uint32] {
	return func(yield func(int, uint32) bool) {
		if a.bits == 0 {
			for i := range a.n {
				if !yield(i, 0) {
					return
				}
			}
			return
		}

		i := 0
		for _, word := range a.words {
			for j := 0; j < a.epw && i < a.n; j++ {
				if !yield(i, uint32(word&a.mask)) {
					return
				}
				word >>= uint(a.bits)
				i++
			}
		}
	}
}

// Words returns the backing words. The slice is shared with the array.
func (a *Array) Words() []uint64 {
	return a.words
}

// Bits returns the cell width.
func (a *Array) Bits() int {
	return a.bits
}

// Len returns the number of cells.
func (a *Array) Len() int {
	return a.n
}

// Max returns the largest id a cell can hold.
func (a *Array) Max() uint32 {
	return uint32(a.mask)
}

// ElementsPerWord returns the number of cells packed in each word, or 0
// for the degenerate width.
func (a *Array) ElementsPerWord() int {
	return a.epw
}

// Clone returns a deep copy.
func (a *Array) Clone() *Array {
	c := *a
	c.words = append([]uint64(nil), a.words...)

	return &c
}

func (a *Array) String() string {
	return fmt.Sprintf("bitpack(%d bits x %d)", a.bits, a.n)
}

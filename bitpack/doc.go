// Package bitpack implements a fixed-width packed integer array.
//
// Each cell holds an id of Bits() bits. Ids are packed into 64-bit words,
// floor(64/bits) per word, and never straddle a word boundary: the
// remaining high bits of every word are padding.
//
//	bits=5: 12 cells per word, 4 padding bits
//	word 0: [c11 c10 ... c1 c0] (c0 in the least significant bits)
//
// The word holding cell i is found without a division instruction, using a
// (scale, offset, shift) triple precomputed per elements-per-word:
//
//	word = ((i*scale + offset) >> 32) >> shift
//
// which equals i / elementsPerWord for every i below MaxLen.
//
// A bit width of 0 is the degenerate case: no words are allocated and every
// cell reads as id 0.
//
// An Array is not safe for concurrent mutation. Concurrent reads are safe.
package bitpack

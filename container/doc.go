// Package container implements the paletted container: a fixed number of
// cells, one per position of a cubic region, each holding a domain value
// stored as a small local id.
//
// A Container pairs a palette.Palette, which maps values to local ids,
// with a bitpack.Array holding one id per cell. When a new value does not
// fit the palette, the container asks its Provider for a larger
// configuration, re-imports every cell into a fresh palette and storage,
// and swaps the new state in. Callers never see the overflow.
//
// Two encodings are supported:
//
//	binary          bits u8 | dictionary as global ids | [uvarint n | n × u64]
//	human-readable  {"palette": [v, ...], "data": [u64, ...]}
//
// The binary form keeps the live local ids. The human-readable form always
// rebuilds a minimal dictionary of the values actually present, so the two
// do not share an id space.
//
// A Container is not safe for concurrent mutation; a single writer with
// external synchronization is assumed.
package container

// Package compress provides the compression codecs applied to framed
// container payloads.
//
// A container payload is already dictionary coded and bit packed, so
// general-purpose compression mostly pays off on large, repetitive
// regions (long runs of the same local id) and on the varint dictionary.
//
// Supported algorithms:
//   - None: payload stored as-is
//   - Zstd: best ratio, moderate speed
//   - S2: balanced speed and ratio
//   - LZ4: fastest decompression
//
// The pure-Go zstd implementation from klauspost/compress is the default.
// Building with both cgo and the gozstd tag switches to valyala/gozstd.
//
// Example:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//
// All codecs are safe for concurrent use.
package compress

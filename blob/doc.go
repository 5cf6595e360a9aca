// Package blob frames a single container encoding for storage.
//
// A blob is a fixed 20-byte header followed by the container's binary
// encoding, optionally compressed:
//
//	magic "PLT1" | flags u8 | compression u8 | reserved u16 |
//	fingerprint u64 | payload length u32 | payload
//
// Flag bit 0 selects big-endian for the header integers and the packed
// words inside the payload. The fingerprint identifies the global id source
// the payload was written against, usually registry.Registry.Fingerprint;
// Decode refuses a blob whose fingerprint differs from the reader's.
//
// # Encoding
//
//	data, err := blob.Encode(c, reg.Fingerprint(),
//	    blob.WithCompression(format.CompressionZstd),
//	    blob.WithLittleEndian(),
//	)
//
// # Decoding
//
//	c, _ := container.OfSingle(reg, provider.BlockStates, air)
//	if err := blob.Decode(data, c, reg.Fingerprint()); err != nil {
//	    return err
//	}
//
// Decode leaves the container unchanged on error.
package blob

// Package endian provides the byte order used for packed words on the wire.
//
// The binary container format writes each packed 64-bit word as a fixed-width
// integer. The network protocol the format originates from is big-endian, so
// GetWordEngine returns the big-endian engine; little-endian is available for
// local storage where the reader is known.
//
//	engine := endian.GetWordEngine()
//	buf = engine.AppendUint64(buf, word)
//
// All functions in this package are safe for concurrent use. The returned
// engines are the stateless values from encoding/binary.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetWordEngine returns the default engine for packed words, which is big-endian.
func GetWordEngine() EndianEngine {
	return binary.BigEndian
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	return engine == binary.BigEndian
}

// FromFlag returns the big-endian engine when bigEndian is set, little-endian otherwise.
func FromFlag(bigEndian bool) EndianEngine {
	if bigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

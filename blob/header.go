package blob

import (
	"fmt"

	"github.com/rimecraft-rs/rimecraft-sub000/endian"
	"github.com/rimecraft-rs/rimecraft-sub000/errs"
	"github.com/rimecraft-rs/rimecraft-sub000/format"
)

const (
	HeaderSize = 20 // fixed header size in bytes

	FlagBigEndian = 0x01 // packed words and header integers are big-endian
	flagMask      = FlagBigEndian

	MaxPayloadSize = 1<<32 - 1
)

// Magic identifies a version 1 blob.
var Magic = [4]byte{'P', 'L', 'T', '1'}

// Header is the fixed-size section at the start of a blob.
type Header struct {
	Flags       uint8                  // byte offset 4
	Compression format.CompressionType // byte offset 5
	// Fingerprint identifies the global id source.
	Fingerprint uint64 // byte offset 8-15
	// PayloadLen is the size of the payload after compression.
	PayloadLen uint32 // byte offset 16-19
}

// IsBigEndian reports whether the payload's words are big-endian.
func (h Header) IsBigEndian() bool {
	return h.Flags&FlagBigEndian != 0
}

// Engine returns the byte order selected by the flags.
func (h Header) Engine() endian.EndianEngine {
	return endian.FromFlag(h.IsBigEndian())
}

// Bytes serializes the header.
func (h Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst.
func (h Header) AppendTo(dst []byte) []byte {
	engine := h.Engine()

	dst = append(dst, Magic[:]...)
	dst = append(dst, h.Flags, byte(h.Compression))
	dst = engine.AppendUint16(dst, 0)
	dst = engine.AppendUint64(dst, h.Fingerprint)

	return engine.AppendUint32(dst, h.PayloadLen)
}

// Parse reads the header from exactly HeaderSize bytes.
//
// Returns ErrInvalidHeaderSize, ErrInvalidMagicNumber, ErrInvalidHeaderFlags
// or ErrInvalidCompression.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}
	if [4]byte(data[0:4]) != Magic {
		return fmt.Errorf("%w: %q", errs.ErrInvalidMagicNumber, data[0:4])
	}

	flags := data[4]
	if flags&^flagMask != 0 {
		return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidHeaderFlags, flags)
	}
	h.Flags = flags
	engine := h.Engine()
	if reserved := engine.Uint16(data[6:8]); reserved != 0 {
		return fmt.Errorf("%w: reserved 0x%04x", errs.ErrInvalidHeaderFlags, reserved)
	}

	h.Compression = format.CompressionType(data[5])
	if !validCompression(h.Compression) {
		return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, data[5])
	}
	h.Fingerprint = engine.Uint64(data[8:16])
	h.PayloadLen = engine.Uint32(data[16:20])

	return nil
}

// ParseHeader parses the header at the start of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}

func validCompression(c format.CompressionType) bool {
	switch c {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		return true
	default:
		return false
	}
}

package container

import (
	"encoding"
	"fmt"
	"time"

	"github.com/rimecraft-rs/rimecraft-sub000/bitpack"
	"github.com/rimecraft-rs/rimecraft-sub000/endian"
	wire "github.com/rimecraft-rs/rimecraft-sub000/encoding"
	"github.com/rimecraft-rs/rimecraft-sub000/errs"
	"github.com/rimecraft-rs/rimecraft-sub000/internal/pool"
	"github.com/rimecraft-rs/rimecraft-sub000/palette"
)

// FormatBinary names the binary encoding in metrics.
const FormatBinary = "binary"

var (
	_ encoding.BinaryMarshaler   = (*Container[int])(nil)
	_ encoding.BinaryUnmarshaler = (*Container[int])(nil)
	_ encoding.BinaryAppender    = (*Container[int])(nil)
)

// WordOrder returns the byte order used for packed words.
func (c *Container[V]) WordOrder() endian.EndianEngine {
	return c.cfg.order
}

// EncodedLen returns the size of the binary encoding.
func (c *Container[V]) EncodedLen() (int, error) {
	n, err := c.st.palette.EncodedLen()
	if err != nil {
		return 0, err
	}
	n++ // bits
	if c.st.storage != nil {
		n += wire.WordsLen(len(c.st.storage.Words()))
	}

	return n, nil
}

// AppendBinary appends the binary encoding to dst:
//
//	u8 bits | dictionary | [uvarint word count | words]
//
// Words are written only when bits is non-zero.
func (c *Container[V]) AppendBinary(dst []byte) ([]byte, error) {
	return c.AppendBinaryOrder(dst, c.cfg.order)
}

// AppendBinaryOrder is AppendBinary with packed words written in order
// instead of the configured word order.
func (c *Container[V]) AppendBinaryOrder(dst []byte, order endian.EndianEngine) ([]byte, error) {
	st := c.st
	dst = append(dst, byte(st.bits))

	dst, err := st.palette.AppendBinary(dst)
	if err != nil {
		return dst, fmt.Errorf("encode %s palette: %w", st.palette.Config(), err)
	}
	if st.storage != nil {
		dst = wire.AppendWords(dst, order, st.storage.Words())
	}

	return dst, nil
}

// MarshalBinary returns the binary encoding in a new slice.
func (c *Container[V]) MarshalBinary() ([]byte, error) {
	start := time.Now()
	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	var err error
	buf.B, err = c.AppendBinary(buf.B)
	c.cfg.metrics.RecordEncode(FormatBinary, buf.Len(), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// UnmarshalBinary replaces the contents with a binary encoding that must
// span all of data. On error the container is unchanged.
func (c *Container[V]) UnmarshalBinary(data []byte) error {
	return c.UnmarshalBinaryOrder(data, c.cfg.order)
}

// UnmarshalBinaryOrder is UnmarshalBinary with packed words read in order
// instead of the configured word order.
func (c *Container[V]) UnmarshalBinaryOrder(data []byte, order endian.EndianEngine) error {
	start := time.Now()
	st, n, err := c.decodeState(data, order)
	if err == nil && n != len(data) {
		err = fmt.Errorf("%w: %d bytes", errs.ErrTrailingData, len(data)-n)
	}
	c.cfg.metrics.RecordDecode(FormatBinary, n, time.Since(start), err)
	if err != nil {
		return err
	}
	c.st = st

	return nil
}

// DecodeFrom replaces the contents with a binary encoding read from the
// start of data and returns the number of bytes consumed.
//
// The configuration is the one the provider gives for the encoded width,
// which must reproduce that width. On error the container is unchanged.
func (c *Container[V]) DecodeFrom(data []byte) (int, error) {
	return c.DecodeFromOrder(data, c.cfg.order)
}

// DecodeFromOrder is DecodeFrom with packed words read in order instead of
// the configured word order.
func (c *Container[V]) DecodeFromOrder(data []byte, order endian.EndianEngine) (int, error) {
	start := time.Now()
	st, n, err := c.decodeState(data, order)
	c.cfg.metrics.RecordDecode(FormatBinary, n, time.Since(start), err)
	if err != nil {
		return 0, err
	}
	c.st = st

	return n, nil
}

func (c *Container[V]) decodeState(data []byte, order endian.EndianEngine) (*state[V], int, error) {
	if len(data) == 0 {
		return nil, 0, fmt.Errorf("%w: missing bit width", errs.ErrTruncated)
	}
	bits := int(data[0])
	cfg := c.provider.Config(bits, c.source.Len())
	if cfg.Bits != bits {
		return nil, 0, fmt.Errorf("%w: encoded width %d maps to %s", errs.ErrInvalidBitWidth, bits, cfg)
	}

	p, err := palette.New(cfg, c.source, nil)
	if err != nil {
		return nil, 0, err
	}
	off := 1
	n, err := p.DecodeFrom(data[off:])
	if err != nil {
		return nil, 0, fmt.Errorf("decode %s palette: %w", cfg, err)
	}
	off += n

	st := &state[V]{palette: p, bits: bits}
	if bits > 0 {
		words, n, err := wire.DecodeWords(data[off:], order, bitpack.WordCount(bits, c.n))
		if err != nil {
			return nil, 0, fmt.Errorf("decode storage: %w", err)
		}
		off += n
		if st.storage, err = bitpack.FromWords(bits, c.n, words); err != nil {
			return nil, 0, err
		}
	}

	if err := validateIDs(st, c.source); err != nil {
		return nil, 0, err
	}

	return st, off, nil
}

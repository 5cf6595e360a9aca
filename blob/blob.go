package blob

import (
	"fmt"

	"github.com/rimecraft-rs/rimecraft-sub000/compress"
	"github.com/rimecraft-rs/rimecraft-sub000/endian"
	"github.com/rimecraft-rs/rimecraft-sub000/errs"
	"github.com/rimecraft-rs/rimecraft-sub000/internal/options"
	"github.com/rimecraft-rs/rimecraft-sub000/internal/pool"
)

// Encoder is implemented by container.Container.
type Encoder interface {
	AppendBinaryOrder(dst []byte, order endian.EndianEngine) ([]byte, error)
}

// Decoder is implemented by container.Container. UnmarshalBinaryOrder
// must consume all of data and leave the receiver unchanged on error.
type Decoder interface {
	UnmarshalBinaryOrder(data []byte, order endian.EndianEngine) error
}

// Encode frames the binary encoding of c under fingerprint.
func Encode(c Encoder, fingerprint uint64, opts ...Option) ([]byte, error) {
	cfg := defaultSettings()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	h := Header{Compression: cfg.compression, Fingerprint: fingerprint}
	if cfg.bigEndian {
		h.Flags |= FlagBigEndian
	}

	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	var err error
	if buf.B, err = c.AppendBinaryOrder(buf.B, h.Engine()); err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return nil, err
	}
	payload, err := codec.Compress(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compress payload with %s: %w", h.Compression, err)
	}
	if uint64(len(payload)) > MaxPayloadSize {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrPayloadLengthMismatch, len(payload))
	}
	h.PayloadLen = uint32(len(payload)) //nolint:gosec

	// payload may alias the pooled buffer
	out := make([]byte, 0, HeaderSize+len(payload))
	out = h.AppendTo(out)

	return append(out, payload...), nil
}

// Decode replaces the contents of c with the container framed in data.
// The blob must have been written under fingerprint.
func Decode(data []byte, c Decoder, fingerprint uint64) error {
	h, err := ParseHeader(data)
	if err != nil {
		return err
	}
	if h.Fingerprint != fingerprint {
		return fmt.Errorf("%w: blob 0x%016x, source 0x%016x", errs.ErrFingerprintMismatch, h.Fingerprint, fingerprint)
	}
	if got := len(data) - HeaderSize; uint64(got) != uint64(h.PayloadLen) {
		return fmt.Errorf("%w: header says %d bytes, have %d", errs.ErrPayloadLengthMismatch, h.PayloadLen, got)
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return err
	}
	payload, err := codec.Decompress(data[HeaderSize:])
	if err != nil {
		return fmt.Errorf("decompress payload with %s: %w", h.Compression, err)
	}

	if err := c.UnmarshalBinaryOrder(payload, h.Engine()); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	return nil
}

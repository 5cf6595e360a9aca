package blob

import (
	"fmt"

	"github.com/rimecraft-rs/rimecraft-sub000/errs"
	"github.com/rimecraft-rs/rimecraft-sub000/format"
	"github.com/rimecraft-rs/rimecraft-sub000/internal/options"
)

type settings struct {
	compression format.CompressionType
	bigEndian   bool
}

func defaultSettings() *settings {
	return &settings{
		compression: format.CompressionZstd,
		bigEndian:   true,
	}
}

// Option configures Encode.
type Option = options.Option[*settings]

// WithCompression sets the payload compression. The default is Zstd.
func WithCompression(c format.CompressionType) Option {
	return options.New(func(s *settings) error {
		if !validCompression(c) {
			return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, c)
		}
		s.compression = c

		return nil
	})
}

// WithLittleEndian writes the header integers and packed words little-endian.
func WithLittleEndian() Option {
	return options.NoError(func(s *settings) {
		s.bigEndian = false
	})
}

// WithBigEndian writes the header integers and packed words big-endian,
// which is the default.
func WithBigEndian() Option {
	return options.NoError(func(s *settings) {
		s.bigEndian = true
	})
}

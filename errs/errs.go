// Package errs defines the sentinel errors returned by the codec layers.
//
// Dictionary saturation is never reported through this package: it is an
// internal signal handled by the container's upgrade protocol. Only decoding
// and construction failures that a caller can recover from are listed here.
package errs

import "errors"

// Bit-packed array construction errors.
var (
	// ErrInvalidBitWidth is returned when a bit width is negative or wider than the supported maximum.
	ErrInvalidBitWidth = errors.New("invalid bit width")
	// ErrInvalidLength is returned when an array length is negative or too large to address.
	ErrInvalidLength = errors.New("invalid array length")
	// ErrWordCountMismatch is returned when packed words don't match the length implied by bit width and cell count.
	ErrWordCountMismatch = errors.New("packed word count mismatch")
	// ErrIDOutOfRange is returned when a packed id does not fit the requested bit width.
	ErrIDOutOfRange = errors.New("id exceeds bit width")
)

// Dictionary errors.
var (
	// ErrInvalidStrategy is returned for an unknown dictionary strategy tag.
	ErrInvalidStrategy = errors.New("invalid palette strategy")
	// ErrTooManyEntries is returned when initial entries exceed the capacity of the chosen configuration.
	ErrTooManyEntries = errors.New("too many palette entries")
	// ErrDuplicateEntry is returned when a dictionary would hold the same value twice.
	ErrDuplicateEntry = errors.New("duplicate palette entry")
	// ErrUninitializedPalette is returned when encoding a Singular palette that holds no value.
	ErrUninitializedPalette = errors.New("use of an uninitialized palette")
	// ErrUnknownValue is returned when a value is absent from the global id source.
	ErrUnknownValue = errors.New("value not present in global id source")
	// ErrUnknownID is returned when a global id is absent from the global id source.
	ErrUnknownID = errors.New("unknown global id")
	// ErrInvalidLocalID is returned when packed data references a local id outside the dictionary.
	ErrInvalidLocalID = errors.New("local id outside palette")
	// ErrNilSource is returned when a Direct palette or a container is built without a global id source.
	ErrNilSource = errors.New("nil global id source")
)

// Provider policy errors.
var (
	// ErrInvalidPolicy is returned when provider thresholds are inconsistent or address too many cells.
	ErrInvalidPolicy = errors.New("invalid provider policy")
)

// Wire format errors.
var (
	// ErrTruncated is returned when the input ends before a complete structure was read.
	ErrTruncated = errors.New("truncated data")
	// ErrVarintOverflow is returned when a variable-length integer exceeds 32 bits.
	ErrVarintOverflow = errors.New("varint overflows uint32")
	// ErrMissingData is returned when a human-readable payload has a non-zero bit width but no data.
	ErrMissingData = errors.New("missing values for non-zero storage")
	// ErrEmptyPalette is returned when a human-readable payload has an empty palette.
	ErrEmptyPalette = errors.New("empty palette")
	// ErrStorageShape is returned when explicit storage does not match the container's bit width or cell count.
	ErrStorageShape = errors.New("storage does not match container shape")
)

// Blob framing errors.
var (
	// ErrInvalidHeaderSize is returned when the blob is shorter than its fixed header.
	ErrInvalidHeaderSize = errors.New("invalid header size")
	// ErrInvalidMagicNumber is returned when the blob magic does not match.
	ErrInvalidMagicNumber = errors.New("invalid magic number")
	// ErrInvalidHeaderFlags is returned when reserved header bits are set.
	ErrInvalidHeaderFlags = errors.New("invalid header flags")
	// ErrInvalidCompression is returned for an unknown compression type.
	ErrInvalidCompression = errors.New("invalid compression type")
	// ErrFingerprintMismatch is returned when a blob was written against a different global id source.
	ErrFingerprintMismatch = errors.New("global id source fingerprint mismatch")
	// ErrPayloadLengthMismatch is returned when the payload length in the header does not match the data.
	ErrPayloadLengthMismatch = errors.New("payload length mismatch")
	// ErrTrailingData is returned when bytes remain after a complete container payload.
	ErrTrailingData = errors.New("trailing data after payload")
)

// Registry errors.
var (
	// ErrRegistryFrozen is returned when registering into a frozen registry.
	ErrRegistryFrozen = errors.New("registry is frozen")
	// ErrDuplicateKey is returned when a key is registered twice.
	ErrDuplicateKey = errors.New("duplicate registry key")
	// ErrEmptyKey is returned when registering with an empty key.
	ErrEmptyKey = errors.New("empty registry key")
)

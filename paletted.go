// Package paletted stores one value per cell of a fixed cubic region in a
// compact, adaptively encoded form.
//
// A container keeps a small dictionary of the distinct values it holds and
// a bit-packed array of dictionary ids, one per cell. The dictionary starts
// as a single value with zero bits per cell and is rebuilt wider as new
// values arrive: Singular, then Linear, then HashDictionary, and finally
// Direct, which stores ids from the global id source without a dictionary.
//
// # Basic Usage
//
//	reg := registry.New[string]()
//	reg.MustRegister("minecraft:air", "air")
//	reg.MustRegister("minecraft:stone", "stone")
//	reg.Freeze()
//
//	c, _ := paletted.NewBlockStates(reg, "air")
//	c.SetAt(0, 0, 0, "stone")
//
//	data, _ := c.MarshalBinary()         // network form
//	js, _ := c.MarshalJSON()             // human-readable form
//	framed, _ := paletted.Encode(c, reg) // compressed blob
//
// # Package Structure
//
// This package provides top-level wrappers for the common cases. The
// building blocks live in their own packages:
//
//   - bitpack: fixed-width packed arrays with division-free addressing
//   - palette: the four dictionary strategies
//   - provider: policies choosing a strategy and width
//   - container: the container, its upgrade protocol and both codecs
//   - registry: a keyed global id source
//   - blob: compressed single-container framing
//   - codec: JSON and CBOR codecs for the human-readable form
package paletted

import (
	"github.com/rimecraft-rs/rimecraft-sub000/blob"
	"github.com/rimecraft-rs/rimecraft-sub000/container"
	"github.com/rimecraft-rs/rimecraft-sub000/internal/hash"
	"github.com/rimecraft-rs/rimecraft-sub000/palette"
	"github.com/rimecraft-rs/rimecraft-sub000/provider"
)

// FingerprintSource is a global id source that can identify itself in a
// blob header. registry.Registry implements it.
type FingerprintSource[V comparable] interface {
	palette.Source[V]
	Fingerprint() uint64
}

// NewBlockStates creates a 16×16×16 container filled with v.
//
// Parameters:
//   - source: Global id source for the values
//   - v: Initial value of every cell
//   - opts: Container options
//
// Returns:
//   - *container.Container[V]: Uniform container using provider.BlockStates
//   - error: Construction error
func NewBlockStates[V comparable](source palette.Source[V], v V, opts ...container.Option) (*container.Container[V], error) {
	return container.OfSingle(source, provider.BlockStates, v, opts...)
}

// NewBiomes creates a 4×4×4 container filled with v.
func NewBiomes[V comparable](source palette.Source[V], v V, opts ...container.Option) (*container.Container[V], error) {
	return container.OfSingle(source, provider.Biomes, v, opts...)
}

// Encode frames c as a blob stamped with the fingerprint of source.
func Encode[V comparable](c *container.Container[V], source FingerprintSource[V], opts ...blob.Option) ([]byte, error) {
	return blob.Encode(c, source.Fingerprint(), opts...)
}

// Decode replaces the contents of c with a blob written against source.
func Decode[V comparable](data []byte, c *container.Container[V], source FingerprintSource[V]) error {
	return blob.Decode(data, c, source.Fingerprint())
}

// KeyID returns the xxHash64 of a registry key. It is stable across
// processes, unlike the key's registry index, and resolves through
// registry.Registry.ByKeyID.
func KeyID(key string) uint64 {
	return hash.ID(key)
}

// Package provider implements the policies that choose a palette
// configuration for a container from the number of bits its contents need.
package provider

import (
	"fmt"
	"math/bits"

	"github.com/rimecraft-rs/rimecraft-sub000/bitpack"
	"github.com/rimecraft-rs/rimecraft-sub000/errs"
	"github.com/rimecraft-rs/rimecraft-sub000/format"
	"github.com/rimecraft-rs/rimecraft-sub000/palette"
)

// Policy maps a requested bit width to a palette configuration.
type Policy interface {
	// Config returns the configuration for bitWidth given a global domain
	// of domainSize values.
	Config(bitWidth, domainSize int) palette.Config
}

// Thresholds is a Policy driven by width cut-offs:
//
//	0                       Singular
//	1 .. LinearMaxBits      Linear, padded up to LinearMinBits
//	.. HashMaxBits          HashDictionary
//	above                   Direct at ceil(log2(domainSize))
//
// A HashMaxBits no larger than LinearMaxBits disables HashDictionary.
type Thresholds struct {
	Edge          int
	LinearMinBits int
	LinearMaxBits int
	HashMaxBits   int
}

var (
	// BlockStates covers a 16×16×16 region of block states.
	BlockStates = Thresholds{Edge: 4, LinearMinBits: 4, LinearMaxBits: 4, HashMaxBits: 8}
	// Biomes covers a 4×4×4 region of biomes.
	Biomes = Thresholds{Edge: 2, LinearMinBits: 1, LinearMaxBits: 3, HashMaxBits: 3}
)

// Config implements Policy.
func (t Thresholds) Config(bitWidth, domainSize int) palette.Config {
	switch {
	case bitWidth <= 0:
		return palette.Config{Strategy: format.StrategySingular}
	case bitWidth <= t.LinearMaxBits:
		return palette.Config{Strategy: format.StrategyLinear, Bits: max(bitWidth, t.LinearMinBits)}
	case bitWidth <= t.HashMaxBits:
		return palette.Config{Strategy: format.StrategyHashDictionary, Bits: bitWidth}
	default:
		return palette.Config{Strategy: format.StrategyDirect, Bits: DirectBits(domainSize)}
	}
}

// CellCount returns the number of cells, 2^(3×Edge).
func (t Thresholds) CellCount() int {
	return 1 << (3 * t.Edge)
}

// EdgeBits returns log2 of the region's edge length.
func (t Thresholds) EdgeBits() int {
	return t.Edge
}

// Validate reports inconsistent thresholds.
func (t Thresholds) Validate() error {
	switch {
	case t.Edge < 0 || t.CellCount() > bitpack.MaxLen:
		return fmt.Errorf("%w: edge bits %d", errs.ErrInvalidPolicy, t.Edge)
	case t.LinearMinBits < 1 || t.LinearMinBits > t.LinearMaxBits:
		return fmt.Errorf("%w: linear bits %d..%d", errs.ErrInvalidPolicy, t.LinearMinBits, t.LinearMaxBits)
	case t.HashMaxBits > bitpack.MaxBits:
		return fmt.Errorf("%w: hash bits %d", errs.ErrInvalidPolicy, t.HashMaxBits)
	}

	return nil
}

// CeilLog2 returns the number of bits needed to tell n values apart:
// 0 for n <= 1.
func CeilLog2(n int) int {
	if n <= 1 {
		return 0
	}

	return bits.Len(uint(n - 1))
}

// DirectBits returns the Direct width for a domain of size values, at
// least 1 and at most bitpack.MaxBits.
func DirectBits(size int) int {
	return min(max(CeilLog2(size), 1), bitpack.MaxBits)
}

// MinimalBits returns the width used to pack n distinct values in the
// human-readable form: the configured width, or ceil(log2(n)) itself when
// the policy would switch to Direct.
func MinimalBits(p Policy, n, domainSize int) int {
	j := CeilLog2(n)
	if cfg := p.Config(j, domainSize); cfg.Strategy != format.StrategyDirect {
		return cfg.Bits
	}

	return j
}

package palette

import (
	"fmt"

	"github.com/rimecraft-rs/rimecraft-sub000/format"
)

// Config is the (strategy, bit width) pair a provider hands out for an
// occupancy level.
type Config struct {
	Strategy format.Strategy
	Bits     int
}

// Capacity returns how many distinct values a palette with this config can
// hold, or -1 for Direct.
func (c Config) Capacity() int {
	switch c.Strategy {
	case format.StrategySingular:
		return 1
	case format.StrategyLinear, format.StrategyHashDictionary:
		return 1 << c.Bits
	default:
		return -1
	}
}

func (c Config) String() string {
	return fmt.Sprintf("%s/%d", c.Strategy, c.Bits)
}

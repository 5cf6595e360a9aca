package format

type (
	Strategy        uint8
	CompressionType uint8
)

const (
	StrategySingular       Strategy = 0x1 // StrategySingular holds exactly one value with zero bits per cell.
	StrategyLinear         Strategy = 0x2 // StrategyLinear holds an ordered list searched by equality scan.
	StrategyHashDictionary Strategy = 0x3 // StrategyHashDictionary holds an ordered list plus a reverse hash map.
	StrategyDirect         Strategy = 0x4 // StrategyDirect stores global ids directly, without a local dictionary.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (s Strategy) String() string {
	switch s {
	case StrategySingular:
		return "Singular"
	case StrategyLinear:
		return "Linear"
	case StrategyHashDictionary:
		return "HashDictionary"
	case StrategyDirect:
		return "Direct"
	default:
		return "Unknown"
	}
}

// IsValid reports whether s is one of the four known strategies.
func (s Strategy) IsValid() bool {
	return s >= StrategySingular && s <= StrategyDirect
}

// HasLocalDictionary reports whether the strategy keeps its own value list,
// i.e. whether local ids differ from global ids.
func (s Strategy) HasLocalDictionary() bool {
	return s != StrategyDirect
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

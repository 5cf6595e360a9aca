package container

import (
	"sync/atomic"
	"time"

	"github.com/rimecraft-rs/rimecraft-sub000/palette"
)

// Metrics receives container events. Implementations must be safe for
// concurrent use when shared between containers.
type Metrics interface {
	// RecordResize is called after every palette upgrade.
	RecordResize(from, to palette.Config, duration time.Duration)
	// RecordEncode is called after encoding in the named format.
	RecordEncode(format string, size int, duration time.Duration, err error)
	// RecordDecode is called after decoding in the named format.
	RecordDecode(format string, size int, duration time.Duration, err error)
}

// NoopMetrics ignores every event.
type NoopMetrics struct{}

func (NoopMetrics) RecordResize(palette.Config, palette.Config, time.Duration) {}
func (NoopMetrics) RecordEncode(string, int, time.Duration, error)            {}
func (NoopMetrics) RecordDecode(string, int, time.Duration, error)            {}

// BasicMetrics counts events in memory.
type BasicMetrics struct {
	Resizes       atomic.Int64
	ResizeNanos   atomic.Int64
	DirectResizes atomic.Int64
	Encodes       atomic.Int64
	EncodeErrors  atomic.Int64
	EncodedBytes  atomic.Int64
	Decodes       atomic.Int64
	DecodeErrors  atomic.Int64
	DecodedBytes  atomic.Int64
}

var _ Metrics = (*BasicMetrics)(nil)

// RecordResize implements Metrics.
func (b *BasicMetrics) RecordResize(_, to palette.Config, duration time.Duration) {
	b.Resizes.Add(1)
	b.ResizeNanos.Add(duration.Nanoseconds())
	if !to.Strategy.HasLocalDictionary() {
		b.DirectResizes.Add(1)
	}
}

// RecordEncode implements Metrics.
func (b *BasicMetrics) RecordEncode(_ string, size int, _ time.Duration, err error) {
	b.Encodes.Add(1)
	if err != nil {
		b.EncodeErrors.Add(1)
		return
	}
	b.EncodedBytes.Add(int64(size))
}

// RecordDecode implements Metrics.
func (b *BasicMetrics) RecordDecode(_ string, size int, _ time.Duration, err error) {
	b.Decodes.Add(1)
	if err != nil {
		b.DecodeErrors.Add(1)
		return
	}
	b.DecodedBytes.Add(int64(size))
}

// BasicMetricsStats is a point-in-time copy of BasicMetrics.
type BasicMetricsStats struct {
	Resizes        int64
	ResizeAvgNanos int64
	DirectResizes  int64
	Encodes        int64
	EncodeErrors   int64
	EncodedBytes   int64
	Decodes        int64
	DecodeErrors   int64
	DecodedBytes   int64
}

// GetStats returns a snapshot of the counters.
func (b *BasicMetrics) GetStats() BasicMetricsStats {
	s := BasicMetricsStats{
		Resizes:       b.Resizes.Load(),
		DirectResizes: b.DirectResizes.Load(),
		Encodes:       b.Encodes.Load(),
		EncodeErrors:  b.EncodeErrors.Load(),
		EncodedBytes:  b.EncodedBytes.Load(),
		Decodes:       b.Decodes.Load(),
		DecodeErrors:  b.DecodeErrors.Load(),
		DecodedBytes:  b.DecodedBytes.Load(),
	}
	if s.Resizes > 0 {
		s.ResizeAvgNanos = b.ResizeNanos.Load() / s.Resizes
	}

	return s
}

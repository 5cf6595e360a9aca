package container

import (
	"github.com/rimecraft-rs/rimecraft-sub000/endian"
	"github.com/rimecraft-rs/rimecraft-sub000/internal/options"
)

type settings struct {
	logger  *Logger
	metrics Metrics
	order   endian.EndianEngine
}

func defaultSettings() *settings {
	return &settings{
		logger:  NoopLogger(),
		metrics: NoopMetrics{},
		order:   endian.GetWordEngine(),
	}
}

// Option configures a Container.
type Option = options.Option[*settings]

// WithLogger sets the logger receiving upgrade events. Nil keeps the
// discarding default.
func WithLogger(l *Logger) Option {
	return options.NoError(func(s *settings) {
		if l != nil {
			s.logger = l
		}
	})
}

// WithMetrics sets the metrics sink. Nil keeps the no-op default.
func WithMetrics(m Metrics) Option {
	return options.NoError(func(s *settings) {
		if m != nil {
			s.metrics = m
		}
	})
}

// WithWordOrder sets the byte order of packed words in the binary format.
// Both sides of a transfer must agree; the default is big-endian.
func WithWordOrder(engine endian.EndianEngine) Option {
	return options.NoError(func(s *settings) {
		if engine != nil {
			s.order = engine
		}
	})
}

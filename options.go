package hanfuzz

import (
	"log/slog"

	"github.com/hupe1980/hanfuzz/dict"
)

type options struct {
	dict             dict.Dict
	tones            bool
	maxConcurrency   int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Index construction behavior.
type Option func(*options)

// WithDict configures the pronunciation dictionary used for tokenization.
//
// If nil is passed, the default go-pinyin backed dictionary is used. Pass
// dict.Empty() to run without pinyin data (literal matching only).
func WithDict(d dict.Dict) Option {
	return func(o *options) {
		o.dict = d
	}
}

// WithTones keeps tonal diacritics on readings instead of the default
// tone-insensitive normalization. Only affects the default dictionary; a
// dictionary set via WithDict is used as-is.
func WithTones() Option {
	return func(o *options) {
		o.tones = true
	}
}

// WithMaxConcurrency bounds the number of entries evaluated in parallel
// during search. Values <= 0 mean one worker per CPU.
func WithMaxConcurrency(n int) Option {
	return func(o *options) {
		o.maxConcurrency = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
//
// Example with JSON logging:
//
//	logger := hanfuzz.NewJSONLogger(slog.LevelDebug)
//	idx, _ := hanfuzz.New(items, selector, hanfuzz.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

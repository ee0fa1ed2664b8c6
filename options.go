package vecbench

import (
	"log/slog"
)

type options struct {
	reporter Reporter
	logger   *Logger
	runID    string
	runInfo  *RunInfo
}

// Option configures Suite construction.
type Option func(*options)

// WithReporter configures the sink that receives benchmark records.
//
// If nil is passed, records are discarded.
func WithReporter(r Reporter) Option {
	return func(o *options) {
		if r == nil {
			r = NoopReporter{}
		}
		o.reporter = r
	}
}

// WithLogger configures structured logging for suite phases.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger at the given level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithRunID overrides the generated run identifier. Useful for correlating
// a run with an external job ID. Empty keeps the generated one.
func WithRunID(id string) Option {
	return func(o *options) {
		o.runID = id
	}
}

// WithRunInfo adopts externally built run metadata, typically from
// NewRunInfo so a reporting sink and the Suite describe the same run.
// The Config field is replaced with the Config passed to New.
func WithRunInfo(info RunInfo) Option {
	return func(o *options) {
		o.runInfo = &info
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		reporter: NoopReporter{},
		logger:   NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

package simplex

import "log/slog"

// DefaultMaxIterations bounds the number of pivots a single Solve performs.
const DefaultMaxIterations = 10000

type options struct {
	maxIter int
	logger  *slog.Logger
}

type Option func(*options)

// WithMaxIterations caps the number of pivots. A value <= 0 removes the cap,
// in which case a cycling problem never returns.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIter = n
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		maxIter: DefaultMaxIterations,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

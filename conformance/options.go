package conformance

import "runtime"

const (
	// DefaultIterations is the number of random operations per width.
	DefaultIterations = 1 << 12
	// DefaultSeed seeds every width's generator; the width is mixed in.
	DefaultSeed int64 = 4711
)

type options struct {
	iterations  int
	seed        int64
	concurrency int
	logger      *Logger
}

func defaultOptions() options {
	return options{
		iterations:  DefaultIterations,
		seed:        DefaultSeed,
		concurrency: runtime.GOMAXPROCS(0),
		logger:      NoopLogger(),
	}
}

// Option configures a conformance run.
type Option func(*options)

// WithIterations sets the number of random operations per width.
// Values below 1 are ignored.
func WithIterations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.iterations = n
		}
	}
}

// WithSeed sets the base seed. Runs with equal seeds are reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithConcurrency limits how many widths RunWidths checks at once.
// Values below 1 select GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		o.concurrency = n
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

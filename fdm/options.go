package fdm

import (
	"github.com/sirupsen/logrus"
)

// DefaultProgressEvery is the number of time steps between progress log entries.
const DefaultProgressEvery = 100

const (
	panicWorkers  = "fdm: WithWorkers: n must be >= 1"
	panicProgress = "fdm: WithProgressEvery: n must be >= 1"
)

// Option configures an engine.
type Option func(*Options)

// Options is the resolved engine configuration.
type Options struct {
	logger        *logrus.Logger
	progressEvery int
	workers       int
	history       bool
	differencing  AverageDifferencing
}

// WithLogger sets the logger. A nil logger restores the logrus standard logger.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = logrus.StandardLogger()
		}
		o.logger = l
	}
}

// WithProgressEvery logs a progress entry every n time steps at Debug level.
// Panics if n < 1.
func WithProgressEvery(n int) Option {
	if n < 1 {
		panic(panicProgress)
	}

	return func(o *Options) { o.progressEvery = n }
}

// WithWorkers splits each Asian time step across n goroutines, with a barrier
// between steps. Results are identical for every n. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkers)
	}

	return func(o *Options) { o.workers = n }
}

// WithHistory makes the Asian engine keep every time slice instead of only
// the current and next one.
func WithHistory() Option {
	return func(o *Options) { o.history = true }
}

// WithAverageDifferencing selects the Asian ∂V/∂A stencil. Default Upwind.
func WithAverageDifferencing(d AverageDifferencing) Option {
	return func(o *Options) { o.differencing = d }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		logger:        logrus.StandardLogger(),
		progressEvery: DefaultProgressEvery,
		workers:       1,
		differencing:  Upwind,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

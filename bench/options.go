package bench

import (
	"time"

	"github.com/NataliiaYakorieva/goit-algo-hw-05/search"
)

// DefaultRepetitions is how many times each matcher runs per case.
const DefaultRepetitions = 10

type options struct {
	repetitions int
	concurrency int
	algorithms  []search.Algorithm
	logger      *Logger
	collector   Collector
	now         func() time.Time
}

// Option configures a Runner.
type Option func(*options)

// WithRepetitions sets how many times each matcher is invoked per case.
// The reported time is the total over all repetitions.
// Values below 1 restore DefaultRepetitions.
func WithRepetitions(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = DefaultRepetitions
		}
		o.repetitions = n
	}
}

// WithConcurrency sets how many cases are timed at once. Timings taken in
// parallel compete for CPU, so the default of 1 gives the most stable numbers.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.concurrency = n
	}
}

// WithAlgorithms replaces the matchers under test. An empty list restores
// search.Algorithms.
func WithAlgorithms(algs ...search.Algorithm) Option {
	return func(o *options) {
		if len(algs) == 0 {
			algs = search.Algorithms()
		}
		o.algorithms = algs
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

// WithCollector sets the collector notified after every measurement.
func WithCollector(c Collector) Option {
	return func(o *options) {
		if c == nil {
			c = NoopCollector{}
		}
		o.collector = c
	}
}

// WithClock overrides the time source used for measurements.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now == nil {
			now = time.Now
		}
		o.now = now
	}
}

func newOptions(opts []Option) options {
	o := options{
		repetitions: DefaultRepetitions,
		concurrency: 1,
		algorithms:  search.Algorithms(),
		logger:      NoopLogger(),
		collector:   NoopCollector{},
		now:         time.Now,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

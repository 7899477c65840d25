package bench

import (
	"sync"
	"sync/atomic"
	"time"
)

// Collector receives one record per timed (case, algorithm) measurement.
// Implementations must be safe for concurrent use; the runner may time
// several cases at once.
type Collector interface {
	// RecordSearch is called after a matcher finished all repetitions of a
	// case. elapsed covers every repetition, index is the reported match.
	RecordSearch(algorithm string, elapsed time.Duration, index int)
}

// NoopCollector discards all records.
type NoopCollector struct{}

func (NoopCollector) RecordSearch(string, time.Duration, int) {}

// BasicCollector keeps in-memory counters per algorithm.
type BasicCollector struct {
	mu    sync.Mutex
	stats map[string]*AlgorithmStats
}

// AlgorithmStats accumulates the measurements of one algorithm.
type AlgorithmStats struct {
	Searches   atomic.Int64
	Misses     atomic.Int64
	TotalNanos atomic.Int64
}

// NewBasicCollector returns an empty BasicCollector.
func NewBasicCollector() *BasicCollector {
	return &BasicCollector{stats: make(map[string]*AlgorithmStats)}
}

func (c *BasicCollector) RecordSearch(algorithm string, elapsed time.Duration, index int) {
	s := c.get(algorithm)
	s.Searches.Add(1)
	if index < 0 {
		s.Misses.Add(1)
	}
	s.TotalNanos.Add(elapsed.Nanoseconds())
}

func (c *BasicCollector) get(algorithm string) *AlgorithmStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.stats[algorithm]
	if !ok {
		s = new(AlgorithmStats)
		c.stats[algorithm] = s
	}
	return s
}

// Snapshot is a point-in-time copy of one algorithm's counters.
type Snapshot struct {
	Searches int64
	Misses   int64
	Total    time.Duration
}

// Snapshot returns the counters recorded so far, keyed by algorithm.
func (c *BasicCollector) Snapshot() map[string]Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]Snapshot, len(c.stats))
	for name, s := range c.stats {
		out[name] = Snapshot{
			Searches: s.Searches.Load(),
			Misses:   s.Misses.Load(),
			Total:    time.Duration(s.TotalNanos.Load()),
		}
	}
	return out
}

package vecgeom

import (
	"sync"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordOperation is called after each Toolkit call.
	// vectors is the input batch length, err is nil if successful.
	RecordOperation(op string, vectors int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordOperation(string, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	mu  sync.Mutex
	ops map[string]*opCounters
}

type opCounters struct {
	calls      atomic.Int64
	errors     atomic.Int64
	vectors    atomic.Int64
	totalNanos atomic.Int64
}

func (b *BasicMetricsCollector) counters(op string) *opCounters {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ops == nil {
		b.ops = make(map[string]*opCounters)
	}
	c, ok := b.ops[op]
	if !ok {
		c = &opCounters{}
		b.ops[op] = c
	}
	return c
}

// RecordOperation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOperation(op string, vectors int, duration time.Duration, err error) {
	c := b.counters(op)
	c.calls.Add(1)
	c.vectors.Add(int64(vectors))
	c.totalNanos.Add(duration.Nanoseconds())
	if err != nil {
		c.errors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics keyed by operation.
func (b *BasicMetricsCollector) GetStats() map[string]OperationStats {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make(map[string]OperationStats, len(b.ops))
	for op, c := range b.ops {
		calls := c.calls.Load()
		s := OperationStats{
			Calls:   calls,
			Errors:  c.errors.Load(),
			Vectors: c.vectors.Load(),
		}
		if calls > 0 {
			s.AvgNanos = c.totalNanos.Load() / calls
		}
		out[op] = s
	}
	return out
}

// OperationStats is a snapshot of one operation's counters.
type OperationStats struct {
	Calls    int64
	Errors   int64
	Vectors  int64
	AvgNanos int64
}

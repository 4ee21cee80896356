package hanfuzz

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordAppend is called after each append operation. added is the
	// number of items cached, skipped the number ignored (duplicates or
	// empty text), duration the total time taken.
	RecordAppend(added, skipped int, duration time.Duration)

	// RecordSearch is called after each search operation. results is the
	// number of entries that matched, duration the time taken.
	RecordSearch(results int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAppend(int, int, time.Duration) {}
func (NoopMetricsCollector) RecordSearch(int, time.Duration)     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AppendCount      atomic.Int64
	AppendItems      atomic.Int64
	AppendSkipped    atomic.Int64
	SearchCount      atomic.Int64
	SearchResults    atomic.Int64
	SearchTotalNanos atomic.Int64
}

// RecordAppend implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAppend(added, skipped int, duration time.Duration) {
	b.AppendCount.Add(1)
	b.AppendItems.Add(int64(added))
	b.AppendSkipped.Add(int64(skipped))
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(results int, duration time.Duration) {
	b.SearchCount.Add(1)
	b.SearchResults.Add(int64(results))
	b.SearchTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AppendCount:    b.AppendCount.Load(),
		AppendItems:    b.AppendItems.Load(),
		AppendSkipped:  b.AppendSkipped.Load(),
		SearchCount:    b.SearchCount.Load(),
		SearchResults:  b.SearchResults.Load(),
		SearchAvgNanos: b.getAvgSearchNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgSearchNanos() int64 {
	count := b.SearchCount.Load()
	if count == 0 {
		return 0
	}
	return b.SearchTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AppendCount    int64
	AppendItems    int64
	AppendSkipped  int64
	SearchCount    int64
	SearchResults  int64
	SearchAvgNanos int64
}

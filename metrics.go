package cinema

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems.
type MetricsCollector interface {
	// RecordAdd is called after each add. replaced reports whether an
	// existing title was overwritten.
	RecordAdd(replaced bool)

	// RecordRemove is called after each remove operation.
	RecordRemove(duration time.Duration, err error)

	// RecordFilter is called after each filter operation.
	// filters is the number of filters applied, matched the size of the result.
	RecordFilter(filters, matched int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(bool)                              {}
func (NoopMetricsCollector) RecordRemove(time.Duration, error)           {}
func (NoopMetricsCollector) RecordFilter(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddCount         atomic.Int64
	ReplaceCount     atomic.Int64
	RemoveCount      atomic.Int64
	RemoveErrors     atomic.Int64
	FilterCount      atomic.Int64
	FilterErrors     atomic.Int64
	FilterMatched    atomic.Int64
	FilterTotalNanos atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(replaced bool) {
	b.AddCount.Add(1)
	if replaced {
		b.ReplaceCount.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(duration time.Duration, err error) {
	b.RemoveCount.Add(1)
	if err != nil {
		b.RemoveErrors.Add(1)
	}
}

// RecordFilter implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFilter(filters, matched int, duration time.Duration, err error) {
	b.FilterCount.Add(1)
	b.FilterTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FilterErrors.Add(1)
		return
	}
	b.FilterMatched.Add(int64(matched))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddCount:       b.AddCount.Load(),
		ReplaceCount:   b.ReplaceCount.Load(),
		RemoveCount:    b.RemoveCount.Load(),
		RemoveErrors:   b.RemoveErrors.Load(),
		FilterCount:    b.FilterCount.Load(),
		FilterErrors:   b.FilterErrors.Load(),
		FilterMatched:  b.FilterMatched.Load(),
		FilterAvgNanos: b.getAvgFilterNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgFilterNanos() int64 {
	count := b.FilterCount.Load()
	if count == 0 {
		return 0
	}
	return b.FilterTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AddCount       int64
	ReplaceCount   int64
	RemoveCount    int64
	RemoveErrors   int64
	FilterCount    int64
	FilterErrors   int64
	FilterMatched  int64
	FilterAvgNanos int64
}

package fsresult

import (
	"sync/atomic"
	"time"

	"github.com/jvens/fsresult/fserr"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    ops      *prometheus.CounterVec
//	    failures *prometheus.CounterVec
//	}
//
//	func (p *PrometheusCollector) RecordOperation(op string, d time.Duration, err *fserr.Error) {
//	    p.ops.WithLabelValues(op).Inc()
//	    if err != nil {
//	        p.failures.WithLabelValues(op, err.Kind.String()).Inc()
//	    }
//	}
type MetricsCollector interface {
	// RecordOperation is called after every wrapped primitive.
	// err is nil if the call succeeded.
	RecordOperation(op string, duration time.Duration, err *fserr.Error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordOperation(string, time.Duration, *fserr.Error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	OperationCount atomic.Int64
	FailureCount   atomic.Int64
	TotalNanos     atomic.Int64

	kindCounts [fserr.IOError + 1]atomic.Int64
}

// RecordOperation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOperation(_ string, duration time.Duration, err *fserr.Error) {
	b.OperationCount.Add(1)
	b.TotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FailureCount.Add(1)
		if int(err.Kind) < len(b.kindCounts) {
			b.kindCounts[err.Kind].Add(1)
		}
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		OperationCount: b.OperationCount.Load(),
		FailureCount:   b.FailureCount.Load(),
		FailuresByKind: make(map[fserr.Kind]int64),
	}
	if stats.OperationCount > 0 {
		stats.AvgNanos = b.TotalNanos.Load() / stats.OperationCount
	}
	for k := range b.kindCounts {
		if n := b.kindCounts[k].Load(); n > 0 {
			stats.FailuresByKind[fserr.Kind(k)] = n
		}
	}
	return stats
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector counters.
type BasicMetricsStats struct {
	OperationCount int64
	FailureCount   int64
	AvgNanos       int64
	FailuresByKind map[fserr.Kind]int64
}

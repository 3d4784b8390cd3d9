// Package metrics provides the MetricsRecorder interface and a noop implementation.
package metrics

import "time"

// MetricsRecorder is the interface for recording operational metrics:
// archive tier hits and misses, pass/operation latencies, and errors.
type MetricsRecorder interface {
	RecordHit(tier string)
	RecordMiss(tier string)
	RecordLatency(op string, d time.Duration)
	RecordError(op string)
}

// Noop is a MetricsRecorder that discards all data.
type Noop struct{}

func (Noop) RecordHit(tier string)                    {}
func (Noop) RecordMiss(tier string)                   {}
func (Noop) RecordLatency(op string, d time.Duration) {}
func (Noop) RecordError(op string)                    {}

package ledgerseek

import "time"

// MetricsObserver defines the interface for observing seeker events.
type MetricsObserver interface {
	// OnLookup is called after every provider call.
	OnLookup(duration time.Duration, seq int64, err error)

	// OnSeek is called when a whole search completes.
	OnSeek(duration time.Duration, iterations, lookups int, err error)
}

// NoopMetricsObserver is a no-op implementation of MetricsObserver.
type NoopMetricsObserver struct{}

func (o *NoopMetricsObserver) OnLookup(duration time.Duration, seq int64, err error) {}

func (o *NoopMetricsObserver) OnSeek(duration time.Duration, iterations, lookups int, err error) {}

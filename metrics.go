package segbits

import (
	"sync/atomic"
	"time"
)

// MetricsObserver defines the interface for observing container events.
// Field access (Get, Set) is never observed.
type MetricsObserver interface {
	// OnInit is called after every Init with the bytes and segments held
	// afterwards.
	OnInit(duration time.Duration, bytes, segments int, err error)

	// OnRelease is called when segments are released by Init or Close.
	OnRelease(segments, bytes int)

	// OnClear is called after Clear.
	OnClear(bytes int)
}

// NoopMetricsObserver is a no-op implementation of MetricsObserver.
type NoopMetricsObserver struct{}

func (NoopMetricsObserver) OnInit(time.Duration, int, int, error) {}
func (NoopMetricsObserver) OnRelease(int, int)                    {}
func (NoopMetricsObserver) OnClear(int)                           {}

// BasicMetricsObserver provides simple in-memory counters.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsObserver struct {
	InitCount        atomic.Int64
	InitErrors       atomic.Int64
	InitTotalNanos   atomic.Int64
	SegmentsHeld     atomic.Int64
	BytesHeld        atomic.Int64
	SegmentsReleased atomic.Int64
	ClearCount       atomic.Int64
}

// OnInit implements MetricsObserver.
func (b *BasicMetricsObserver) OnInit(duration time.Duration, bytes, segments int, err error) {
	b.InitCount.Add(1)
	b.InitTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InitErrors.Add(1)
	}
	b.SegmentsHeld.Add(int64(segments))
	b.BytesHeld.Add(int64(bytes))
}

// OnRelease implements MetricsObserver.
func (b *BasicMetricsObserver) OnRelease(segments, bytes int) {
	b.SegmentsReleased.Add(int64(segments))
	b.SegmentsHeld.Add(-int64(segments))
	b.BytesHeld.Add(-int64(bytes))
}

// OnClear implements MetricsObserver.
func (b *BasicMetricsObserver) OnClear(int) {
	b.ClearCount.Add(1)
}

// Stats is a point-in-time copy of BasicMetricsObserver.
type Stats struct {
	InitCount        int64
	InitErrors       int64
	InitAvgNanos     int64
	SegmentsHeld     int64
	BytesHeld        int64
	SegmentsReleased int64
	ClearCount       int64
}

// GetStats returns a snapshot of the counters.
func (b *BasicMetricsObserver) GetStats() Stats {
	s := Stats{
		InitCount:        b.InitCount.Load(),
		InitErrors:       b.InitErrors.Load(),
		SegmentsHeld:     b.SegmentsHeld.Load(),
		BytesHeld:        b.BytesHeld.Load(),
		SegmentsReleased: b.SegmentsReleased.Load(),
		ClearCount:       b.ClearCount.Load(),
	}
	if s.InitCount > 0 {
		s.InitAvgNanos = b.InitTotalNanos.Load() / s.InitCount
	}
	return s
}

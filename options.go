package segbits

import (
	"log/slog"

	"github.com/hupe1980/segbits/internal/mem"
	"github.com/hupe1980/segbits/internal/resource"
	"github.com/hupe1980/segbits/internal/segment"
)

const (
	// DefaultSegmentSize is the default segment size in bytes.
	DefaultSegmentSize = segment.DefaultSegmentSize
	// DefaultMaxSegments is the default maximum number of segments.
	DefaultMaxSegments = segment.DefaultMaxSegments
)

type options struct {
	segmentSize int
	maxSegments int
	useMmap     bool
	budget      *resource.Controller
	rollback    bool
	logger      *Logger
	metrics     MetricsObserver
}

// Option configures a BitArray at construction.
type Option func(*options)

// WithSegmentSize sets the maximum size of one segment in bytes.
// Values <= 0 select DefaultSegmentSize.
func WithSegmentSize(n int) Option {
	return func(o *options) {
		o.segmentSize = n
	}
}

// WithMaxSegments sets the maximum number of segments.
// Values <= 0 select DefaultMaxSegments.
//
// Together with WithSegmentSize this fixes the capacity of the container:
// Init fails with ErrNoMemory for anything larger than n*segmentSize bytes.
func WithMaxSegments(n int) Option {
	return func(o *options) {
		o.maxSegments = n
	}
}

// WithMmap backs segments with anonymous off-heap mappings instead of Go
// heap slices. Segments are unmapped on Init and Close.
func WithMmap() Option {
	return func(o *options) {
		o.useMmap = true
	}
}

// WithMemoryBudget charges every segment against a shared memory budget.
// A segment that does not fit in the budget fails Init with ErrNoMemory.
//
// Example:
//
//	budget := segbits.NewMemoryBudget(1024)
//	a := segbits.New(segbits.WithMemoryBudget(budget))
//	b := segbits.New(segbits.WithMemoryBudget(budget))
func WithMemoryBudget(budget *MemoryBudget) Option {
	return func(o *options) {
		if budget == nil {
			o.budget = nil
			return
		}
		o.budget = budget.rc
	}
}

// WithRollbackOnFailure controls what happens to the segments already
// allocated when a later segment allocation fails during Init.
//
// By default (false) they stay held until the next Init or Close; with true
// they are released before Init returns.
func WithRollbackOnFailure(rollback bool) Option {
	return func(o *options) {
		o.rollback = rollback
	}
}

// WithLogger configures structured logging for lifecycle operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := segbits.NewJSONLogger(slog.LevelDebug)
//	a := segbits.New(segbits.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsObserver configures an observer for lifecycle events.
// Pass nil to disable metrics.
func WithMetricsObserver(m MetricsObserver) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsObserver{}
		}
		o.metrics = m
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		segmentSize: DefaultSegmentSize,
		maxSegments: DefaultMaxSegments,
		logger:      NoopLogger(),
		metrics:     NoopMetricsObserver{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

func (o options) allocator() mem.Allocator {
	var base mem.Allocator = mem.HeapAllocator{}
	if o.useMmap {
		base = mem.MmapAllocator{}
	}
	if o.budget == nil {
		return base
	}
	return &mem.BudgetAllocator{Base: base, Budget: o.budget}
}

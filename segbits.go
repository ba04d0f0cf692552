package segbits

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"math"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/cespare/xxhash/v2"
	"github.com/hupe1980/segbits/internal/conv"
	"github.com/hupe1980/segbits/internal/segment"
)

// MaxFieldWidth is the widest supported field in bits.
const MaxFieldWidth = 32

// BitArray is a fixed-capacity array of fixed-width unsigned fields packed
// into a bounded set of segments.
//
// The zero value is not usable; create one with New. A BitArray is not safe
// for concurrent use.
type BitArray struct {
	width  int
	count  int
	bytes  int
	status Status
	store  *segment.Store

	logger  *Logger
	metrics MetricsObserver
}

// New creates an empty BitArray. No memory is allocated until Init.
func New(optFns ...Option) *BitArray {
	o := applyOptions(optFns)
	return &BitArray{
		store: segment.New(segment.Config{
			SegmentSize: o.segmentSize,
			MaxSegments: o.maxSegments,
			Allocator:   o.allocator(),
			Rollback:    o.rollback,
		}),
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// Init releases any segments held and allocates storage for fieldCount
// fields of fieldWidth bits each. All fields read as zero afterwards.
//
// Init fails with an error matching ErrNoMemory when
// ceil(fieldWidth*fieldCount/8) exceeds Capacity (nothing is allocated) or
// when a segment allocation fails. In the latter case the segments allocated
// before the failure stay held until the next Init or Close, unless the
// container was built WithRollbackOnFailure(true).
func (a *BitArray) Init(fieldWidth, fieldCount int) error {
	start := time.Now()
	ctx := context.Background()

	_ = a.release(ctx)
	a.width, a.count, a.bytes = fieldWidth, fieldCount, 0

	err := a.allocate()
	switch {
	case err == nil:
		a.status = StatusOK
	case errors.Is(err, ErrInvalidArgument):
		a.status = StatusInvalidArgument
		a.width, a.count = 0, 0
	default:
		a.status = StatusNoMemory
	}

	a.logger.WithFieldWidth(fieldWidth).WithCount(fieldCount).LogInit(ctx, a.bytes, a.store.Len(), err)
	a.metrics.OnInit(time.Since(start), a.store.Held(), a.store.Len(), err)
	return err
}

func (a *BitArray) allocate() error {
	if a.width < 0 || a.width > MaxFieldWidth || a.count < 0 || uint64(a.count) > math.MaxUint32 {
		return fmt.Errorf("%w: width %d, count %d", ErrInvalidArgument, a.width, a.count)
	}

	total, err := conv.PackedBytes(a.width, a.count)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if total > uint64(a.store.Capacity()) {
		return &CapacityError{Requested: total, Available: a.store.Capacity()}
	}
	a.bytes = int(total)

	if err := a.store.Allocate(a.bytes); err != nil {
		return fmt.Errorf("%w: %w", ErrNoMemory, err)
	}
	return nil
}

// Close releases all segments. The BitArray may be reused with Init.
// It returns the first error reported while releasing segments.
func (a *BitArray) Close() error {
	err := a.release(context.Background())
	a.width, a.count, a.bytes = 0, 0, 0
	a.status = StatusUninitialized
	return err
}

func (a *BitArray) release(ctx context.Context) error {
	segments, held := a.store.Len(), a.store.Held()
	if segments == 0 {
		return nil
	}

	err := a.store.Release()
	a.logger.LogRelease(ctx, segments, held, err)
	a.metrics.OnRelease(segments, held)
	return err
}

// Get returns the value of field index.
//
// Get performs no checks: index must be in [0, Len()) and the last Init must
// have succeeded. Use GetChecked when that is not guaranteed.
func (a *BitArray) Get(index int) uint32 {
	pos := uint64(index) * uint64(a.width)
	var v uint32
	for i := a.width - 1; i >= 0; i-- {
		v = v<<1 | a.store.ReadBit(pos+uint64(i))
	}
	return v
}

// Set stores the low FieldWidth bits of value in field index and returns
// value unchanged. Higher bits are dropped.
//
// Set performs no checks: index must be in [0, Len()) and the last Init must
// have succeeded. Use SetChecked when that is not guaranteed.
func (a *BitArray) Set(index int, value uint32) uint32 {
	pos := uint64(index) * uint64(a.width)
	for i := 0; i < a.width; i++ {
		a.store.WriteBit(pos+uint64(i), value>>uint(i))
	}
	return value
}

// Clear sets every field to zero.
func (a *BitArray) Clear() {
	a.store.Zero(a.bytes)
	a.metrics.OnClear(a.bytes)
}

// Fill sets every field to value (truncated to FieldWidth bits).
func (a *BitArray) Fill(value uint32) {
	for i := 0; i < a.count; i++ {
		a.Set(i, value)
	}
}

// GetChecked is Get with the preconditions verified.
func (a *BitArray) GetChecked(index int) (uint32, error) {
	if err := a.checkIndex(index); err != nil {
		return 0, err
	}
	return a.Get(index), nil
}

// SetChecked is Set with the preconditions verified. Nothing is written
// when it returns an error.
func (a *BitArray) SetChecked(index int, value uint32) error {
	if err := a.checkIndex(index); err != nil {
		return err
	}
	if value > a.MaxValue() {
		return &ValueOverflowError{Value: value, FieldWidth: a.width}
	}
	a.Set(index, value)
	return nil
}

func (a *BitArray) checkIndex(index int) error {
	if a.status != StatusOK {
		return fmt.Errorf("%w: status %s", ErrNotInitialized, a.status)
	}
	if index < 0 || index >= a.count {
		return &IndexOutOfRangeError{Index: index, Len: a.count}
	}
	return nil
}

// All yields every field index with its value, in order.
func (a *BitArray) All() iter.Seq2[int, uint32] {
	return func(yield func(int, uint32) bool) {
		if a.status != StatusOK {
			return
		}
		for i := 0; i < a.count; i++ {
			if !yield(i, a.Get(i)) {
				return
			}
		}
	}
}

// NonZero returns the indices of all fields whose value is not zero.
func (a *BitArray) NonZero() *roaring.Bitmap {
	bm := roaring.New()
	for i, v := range a.All() {
		if v != 0 {
			bm.Add(uint32(i)) //nolint:gosec // Init bounds count to MaxUint32
		}
	}
	return bm
}

// AppendBytes appends a copy of the packed storage, segments concatenated
// in order, to dst.
func (a *BitArray) AppendBytes(dst []byte) []byte {
	for _, seg := range a.store.All() {
		dst = append(dst, seg...)
	}
	return dst
}

// Checksum returns the xxhash64 of the packed storage. Arrays holding the
// same fields have the same checksum whatever their segment size.
func (a *BitArray) Checksum() uint64 {
	d := xxhash.New()
	for _, seg := range a.store.All() {
		_, _ = d.Write(seg)
	}
	return d.Sum64()
}

// Status returns the outcome of the last Init.
func (a *BitArray) Status() Status { return a.status }

// Len returns the number of fields.
func (a *BitArray) Len() int { return a.count }

// FieldWidth returns the number of bits per field.
func (a *BitArray) FieldWidth() int { return a.width }

// MaxValue returns the largest value a field can hold.
func (a *BitArray) MaxValue() uint32 {
	if a.width <= 0 {
		return 0
	}
	return uint32(uint64(1)<<uint(a.width) - 1) //nolint:gosec // width <= 32
}

// Size returns the number of bytes of packed storage.
func (a *BitArray) Size() int { return a.bytes }

// Segments returns the number of segments held.
func (a *BitArray) Segments() int { return a.store.Len() }

// SegmentSize returns the maximum size of one segment in bytes.
func (a *BitArray) SegmentSize() int { return a.store.SegmentSize() }

// MaxSegments returns the maximum number of segments.
func (a *BitArray) MaxSegments() int { return a.store.MaxSegments() }

// Capacity returns the largest storage size Init accepts, in bytes.
func (a *BitArray) Capacity() int { return a.store.Capacity() }

func (a *BitArray) String() string {
	return fmt.Sprintf("BitArray{width: %d, len: %d, bytes: %d, segments: %d, status: %s}",
		a.width, a.count, a.bytes, a.store.Len(), a.status)
}

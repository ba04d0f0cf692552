// Package segbits provides a fixed-capacity bit-packed array for
// memory-constrained programs.
//
// A BitArray stores fieldCount unsigned integers of fieldWidth bits each
// (1 to 32), packed back to back with no padding. Storage is split into at
// most MaxSegments segments of at most SegmentSize bytes, so no single
// allocation is larger than one segment.
//
// # Quick Start
//
//	a := segbits.New()                 // 4 segments of 200 bytes
//	if err := a.Init(3, 1000); err != nil {
//	    // errors.Is(err, segbits.ErrNoMemory)
//	}
//	defer a.Close()
//
//	a.Set(0, 5)
//	a.Set(1, 6)
//	v := a.Get(1) // 6
//
// # Layout
//
// Field i occupies bits [i*fieldWidth, (i+1)*fieldWidth) of the logical
// byte stream formed by concatenating the segments, and bit k of the stream
// is bit k%8 of byte k/8. The lowest bit of a field is stored first.
//
// # Capacity
//
// Init needs ceil(fieldWidth*fieldCount/8) bytes. Anything above
// MaxSegments*SegmentSize fails with ErrNoMemory before allocating:
//
//	a := segbits.New(
//	    segbits.WithSegmentSize(4096),
//	    segbits.WithMaxSegments(16),
//	)
//
// Segments can come from the Go heap (default), from anonymous off-heap
// mappings (WithMmap), and can be charged against a MemoryBudget shared by
// several arrays (WithMemoryBudget).
//
// # Unchecked Access
//
// Get and Set do not validate the index, the value or the array's state.
// Excess value bits are dropped silently, and out-of-range indices are
// undefined behaviour. GetChecked and SetChecked verify all three and return
// ErrNotInitialized, ErrIndexOutOfRange or ErrValueOverflow instead.
//
// # Thread Safety
//
// A BitArray is not safe for concurrent use; callers must serialize access.
// MemoryBudget is safe for concurrent use.
package segbits

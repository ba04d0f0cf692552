package segbits

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMemory is returned by Init when the requested size exceeds the
	// container's capacity or a segment could not be allocated.
	ErrNoMemory = errors.New("segbits: no memory")

	// ErrInvalidArgument is returned by Init for a field width outside
	// [0, 32] or a field count outside [0, math.MaxUint32].
	ErrInvalidArgument = errors.New("segbits: invalid field width or count")

	// ErrNotInitialized is returned by the checked accessors when the last
	// Init did not succeed.
	ErrNotInitialized = errors.New("segbits: not initialized")

	// ErrIndexOutOfRange is returned by the checked accessors for an index
	// outside [0, Len()).
	ErrIndexOutOfRange = errors.New("segbits: index out of range")

	// ErrValueOverflow is returned by SetChecked for a value wider than the
	// field width.
	ErrValueOverflow = errors.New("segbits: value overflows field width")
)

// CapacityError reports a request larger than MaxSegments*SegmentSize.
//
// It matches ErrNoMemory with errors.Is.
type CapacityError struct {
	Requested uint64
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("segbits: no memory: %d bytes requested, capacity is %d", e.Requested, e.Available)
}

func (e *CapacityError) Unwrap() error { return ErrNoMemory }

// IndexOutOfRangeError reports an index outside [0, Len).
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("segbits: index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *IndexOutOfRangeError) Unwrap() error { return ErrIndexOutOfRange }

// ValueOverflowError reports a value that does not fit in FieldWidth bits.
type ValueOverflowError struct {
	Value      uint32
	FieldWidth int
}

func (e *ValueOverflowError) Error() string {
	return fmt.Sprintf("segbits: value %d does not fit in %d bits", e.Value, e.FieldWidth)
}

func (e *ValueOverflowError) Unwrap() error { return ErrValueOverflow }

// Status is the outcome of the most recent Init.
type Status uint8

const (
	// StatusUninitialized means Init has not been called, or Close was.
	StatusUninitialized Status = iota
	// StatusOK means the last Init allocated all segments.
	StatusOK
	// StatusNoMemory means the last Init exceeded capacity or failed to
	// allocate a segment.
	StatusNoMemory
	// StatusInvalidArgument means the last Init was given an unusable field
	// width or count.
	StatusInvalidArgument
)

func (s Status) String() string {
	switch s {
	case StatusUninitialized:
		return "uninitialized"
	case StatusOK:
		return "ok"
	case StatusNoMemory:
		return "no memory"
	case StatusInvalidArgument:
		return "invalid argument"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

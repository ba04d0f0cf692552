package segment

import (
	"errors"
	"fmt"
	"iter"

	"github.com/hupe1980/segbits/internal/mem"
)

const (
	// DefaultSegmentSize is the default size of a segment in bytes.
	DefaultSegmentSize = 200
	// DefaultMaxSegments is the default maximum number of segments.
	DefaultMaxSegments = 4
)

var (
	// ErrCapacityExceeded is returned when a requested size does not fit in
	// MaxSegments segments.
	ErrCapacityExceeded = errors.New("segment: capacity exceeded")
	// ErrAllocationFailed is returned when a segment could not be allocated.
	ErrAllocationFailed = errors.New("segment: allocation failed")
)

// Config configures a Store. Zero values select the defaults.
type Config struct {
	SegmentSize int
	MaxSegments int
	Allocator   mem.Allocator
	// Rollback releases the segments already allocated when a later
	// segment allocation fails. Without it they stay held until the next
	// Allocate or Release.
	Rollback bool
}

// Store is an ordered set of byte segments forming one logical buffer.
type Store struct {
	segmentSize int
	maxSegments int
	segmentBits uint64
	alloc       mem.Allocator
	rollback    bool

	blocks []*mem.Block
	segs   [][]byte // segs[i] == blocks[i].Bytes()
	size   int      // bytes requested by the last Allocate
}

// New creates an empty Store.
func New(cfg Config) *Store {
	if cfg.SegmentSize <= 0 {
		cfg.SegmentSize = DefaultSegmentSize
	}
	if cfg.MaxSegments <= 0 {
		cfg.MaxSegments = DefaultMaxSegments
	}
	if cfg.Allocator == nil {
		cfg.Allocator = mem.HeapAllocator{}
	}

	return &Store{
		segmentSize: cfg.SegmentSize,
		maxSegments: cfg.MaxSegments,
		segmentBits: uint64(cfg.SegmentSize) * 8,
		alloc:       cfg.Allocator,
		rollback:    cfg.Rollback,
	}
}

// SegmentSize returns the maximum size of one segment in bytes.
func (s *Store) SegmentSize() int { return s.segmentSize }

// MaxSegments returns the maximum number of segments.
func (s *Store) MaxSegments() int { return s.maxSegments }

// Capacity returns the largest size Allocate accepts.
func (s *Store) Capacity() int { return s.segmentSize * s.maxSegments }

// Len returns the number of segments currently held.
func (s *Store) Len() int { return len(s.segs) }

// Size returns the size requested by the last Allocate, which may exceed the
// bytes actually held after a failed allocation.
func (s *Store) Size() int { return s.size }

// Held returns the number of bytes held across all segments.
func (s *Store) Held() int {
	n := 0
	for _, seg := range s.segs {
		n += len(seg)
	}
	return n
}

// Allocate releases the current segments and allocates new ones covering
// size bytes. All new bytes are zero.
func (s *Store) Allocate(size int) error {
	if err := s.Release(); err != nil {
		return err
	}

	if size < 0 || size > s.Capacity() {
		return fmt.Errorf("%w: %d bytes requested, %d available", ErrCapacityExceeded, size, s.Capacity())
	}
	s.size = size

	s.blocks = make([]*mem.Block, 0, (size+s.segmentSize-1)/s.segmentSize)
	s.segs = make([][]byte, 0, cap(s.blocks))

	for remaining := size; remaining > 0; {
		n := min(remaining, s.segmentSize)
		b, err := s.alloc.Alloc(n)
		if err != nil {
			err = fmt.Errorf("%w: segment %d (%d bytes): %w", ErrAllocationFailed, len(s.segs), n, err)
			if s.rollback {
				return errors.Join(err, s.Release())
			}
			return err
		}
		// Heap blocks are zeroed by make, fresh mappings by the kernel, but
		// an allocator may recycle memory.
		clear(b.Bytes())

		s.blocks = append(s.blocks, b)
		s.segs = append(s.segs, b.Bytes())
		remaining -= n
	}

	return nil
}

// Release frees all segments. It returns the first error reported by the
// allocator; every segment is released regardless.
func (s *Store) Release() error {
	var firstErr error
	for _, b := range s.blocks {
		if err := b.Free(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.blocks = nil
	s.segs = nil
	s.size = 0
	return firstErr
}

// Zero clears the first n bytes of the logical buffer, segment by segment.
func (s *Store) Zero(n int) {
	for _, seg := range s.segs {
		if n <= 0 {
			break
		}
		m := min(n, len(seg))
		clear(seg[:m])
		n -= m
	}
}

// Locate translates an absolute bit position into a segment index, a byte
// offset within that segment and a bit offset within that byte.
func (s *Store) Locate(pos uint64) (seg, off int, bit uint) {
	rem := pos % s.segmentBits
	return int(pos / s.segmentBits), int(rem >> 3), uint(rem & 7)
}

// ReadBit returns the bit at pos as 0 or 1.
// pos must lie inside the held segments.
func (s *Store) ReadBit(pos uint64) uint32 {
	seg, off, bit := s.Locate(pos)
	return uint32(s.segs[seg][off]>>bit) & 1
}

// WriteBit sets the bit at pos when v is odd and clears it otherwise,
// leaving the other bits of the byte untouched.
// pos must lie inside the held segments.
func (s *Store) WriteBit(pos uint64, v uint32) {
	seg, off, bit := s.Locate(pos)
	if v&1 == 0 {
		s.segs[seg][off] &^= 1 << bit
	} else {
		s.segs[seg][off] |= 1 << bit
	}
}

// All yields the held segments in order. Callers must not retain or modify
// the yielded slices.
func (s *Store) All() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		for i, seg := range s.segs {
			if !yield(i, seg) {
				return
			}
		}
	}
}

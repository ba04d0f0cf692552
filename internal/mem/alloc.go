package mem

import (
	"errors"
	"unsafe"
)

// Alignment is the byte alignment of heap blocks (one cache line).
const Alignment = 64

// ErrAllocationFailed is returned when a block cannot be allocated.
var ErrAllocationFailed = errors.New("mem: allocation failed")

// Allocator hands out blocks of memory for segments.
type Allocator interface {
	Alloc(size int) (*Block, error)
}

// Block is one allocated buffer. It is owned by whoever called Alloc.
type Block struct {
	data    []byte
	release func() error
}

// Bytes returns the block's buffer. The slice is invalid after Free.
func (b *Block) Bytes() []byte {
	return b.data
}

// Len returns the block size in bytes.
func (b *Block) Len() int {
	return len(b.data)
}

// Free returns the block to its allocator. It is idempotent.
func (b *Block) Free() error {
	b.data = nil
	if b.release == nil {
		return nil
	}
	release := b.release
	b.release = nil
	return release()
}

// HeapAllocator allocates aligned blocks from the Go heap.
type HeapAllocator struct{}

// Alloc implements Allocator.
func (HeapAllocator) Alloc(size int) (*Block, error) {
	if size <= 0 {
		return nil, ErrAllocationFailed
	}
	return &Block{data: AllocAligned(size)}, nil
}

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	// Allocate size + alignment to ensure we can find an aligned offset
	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	// Calculate the offset to the first aligned byte
	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	// Cap the slice so appends cannot spill into the padding
	return buf[offset : offset+uintptr(size) : offset+uintptr(size)]
}

package mem

import (
	"fmt"

	"github.com/hupe1980/segbits/internal/mmap"
)

// MmapAllocator allocates blocks from anonymous off-heap mappings.
type MmapAllocator struct{}

// Alloc implements Allocator.
func (MmapAllocator) Alloc(size int) (*Block, error) {
	m, err := mmap.MapAnon(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}
	// Field access touches bits in no particular order.
	_ = m.Advise(mmap.AccessRandom)

	return &Block{
		data:    m.Bytes(),
		release: m.Close,
	}, nil
}

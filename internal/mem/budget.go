package mem

import (
	"errors"
	"fmt"

	"github.com/hupe1980/segbits/internal/resource"
)

// BudgetAllocator charges every block against a shared memory budget.
type BudgetAllocator struct {
	// Base performs the actual allocation. Nil means HeapAllocator.
	Base Allocator
	// Budget limits the total bytes held. Nil means unlimited.
	Budget *resource.Controller
}

// Alloc implements Allocator.
func (a *BudgetAllocator) Alloc(size int) (*Block, error) {
	n := int64(size)
	if err := a.Budget.AcquireMemory(n); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}

	base := a.Base
	if base == nil {
		base = HeapAllocator{}
	}

	b, err := base.Alloc(size)
	if err != nil {
		a.Budget.ReleaseMemory(n)
		return nil, err
	}

	inner := b.release
	b.release = func() error {
		var err error
		if inner != nil {
			err = inner()
		}
		a.Budget.ReleaseMemory(n)
		return err
	}
	return b, nil
}

// IsBudgetExceeded reports whether err was caused by an exhausted budget.
func IsBudgetExceeded(err error) bool {
	return errors.Is(err, resource.ErrMemoryLimitExceeded)
}

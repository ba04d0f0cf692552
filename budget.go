package segbits

import "github.com/hupe1980/segbits/internal/resource"

// MemoryBudget is a memory limit shared by any number of containers.
// It is safe for concurrent use.
type MemoryBudget struct {
	rc *resource.Controller
}

// NewMemoryBudget creates a budget of limit bytes. A limit <= 0 only tracks
// usage.
func NewMemoryBudget(limit int64) *MemoryBudget {
	return &MemoryBudget{
		rc: resource.NewController(resource.Config{MemoryLimitBytes: limit}),
	}
}

// Used returns the bytes currently held by segments drawn from the budget.
func (b *MemoryBudget) Used() int64 {
	return b.rc.MemoryUsage()
}

// Limit returns the configured limit (0 if unlimited).
func (b *MemoryBudget) Limit() int64 {
	return b.rc.MemoryLimit()
}

// Available returns the bytes that can still be drawn, or -1 if unlimited.
func (b *MemoryBudget) Available() int64 {
	return b.rc.Available()
}

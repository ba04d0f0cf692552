// Package resource implements a shared memory budget for segment storage.
//
// A Controller tracks how many bytes of segment storage are held and, when a
// limit is configured, refuses reservations that would exceed it:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 2048,
//	})
//
//	if err := rc.AcquireMemory(200); err != nil {
//	    // ErrMemoryLimitExceeded - the segment is not allocated
//	}
//	defer rc.ReleaseMemory(200)
//
// Acquisition never blocks. It either succeeds immediately or fails with
// ErrMemoryLimitExceeded, which the allocators in internal/mem surface as a
// failed segment allocation.
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use, so several containers
// may draw from one budget.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
package resource

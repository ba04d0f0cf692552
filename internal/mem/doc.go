// Package mem provides the allocators that back segment buffers.
//
// # Allocators
//
//   - HeapAllocator: 64-byte aligned Go heap slices (the default)
//   - MmapAllocator: off-heap anonymous mappings, unmapped on Free
//   - BudgetAllocator: wraps another allocator and charges every block
//     against a shared resource.Controller, failing once the budget is spent
//
// Every allocation returns a *Block that owns its bytes until Free is called.
package mem

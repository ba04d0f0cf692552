// Package mmap provides anonymous memory mappings for off-heap segment storage.
//
// # Overview
//
// MapAnon creates a private read-write mapping that lives outside the Go
// heap. Segment buffers backed by such mappings do not add to GC pressure and
// are returned to the operating system as soon as they are closed.
//
// # Usage
//
//	m, err := mmap.MapAnon(200)
//	if err != nil { ... }
//	defer m.Close()
//
//	buf := m.Bytes() // zero-filled, len 200
//
//	// Provide kernel hints for access patterns
//	m.Advise(mmap.AccessRandom)
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE, madvise(2) for hints
//   - Windows: VirtualAlloc/VirtualFree (advice is a no-op)
//
// # Thread Safety
//
// Close is idempotent and protected by an atomic flag. Callers must ensure
// no goroutine touches Bytes() after Close() returns.
package mmap

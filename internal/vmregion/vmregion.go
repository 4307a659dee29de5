// Package vmregion acquires and releases a single anonymous virtual-memory
// mapping from the OS. It is the thing that actually backs heap.Init's
// "requests size bytes of anonymous, private, read/write virtual memory"
// contract, as opposed to a plain make([]byte, size) that would leave the
// region inside the Go runtime's own GC-managed heap.
package vmregion

import "fmt"

// Map requests size bytes of anonymous, private, read/write memory from the
// OS and returns a byte slice backed by that mapping. size must be positive.
func Map(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("vmregion: size must be positive, got %d", size)
	}
	return mmap(size)
}

// Unmap releases a region previously returned by Map. It is not called by
// package heap itself (the allocator's core intentionally offers no teardown
// operation, matching its region-for-process-lifetime contract) but is
// exposed so tests and long-running benchmarks can avoid leaking mappings.
func Unmap(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return munmap(b)
}

package heap

import "io"

// defaultHeap backs the package-level functions below, giving callers a
// process-wide singleton as a thin wrapper around an explicit *Heap: callers
// that want an isolated allocator should construct their own with New instead.
var defaultHeap = New()

// Init initializes the process-wide default Heap. See Heap.Init.
func Init(size int) error { return defaultHeap.Init(size) }

// Alloc allocates from the process-wide default Heap. See Heap.Alloc.
func Alloc(req int) (uintptr, bool) { return defaultHeap.Alloc(req) }

// Free frees into the process-wide default Heap. See Heap.Free.
func Free(p uintptr) error { return defaultHeap.Free(p) }

// DisplayFree prints the process-wide default Heap's free list. See Heap.DisplayFree.
func DisplayFree(w io.Writer) { defaultHeap.DisplayFree(w) }

// DisplayAll prints the process-wide default Heap's full layout. See Heap.DisplayAll.
func DisplayAll(w io.Writer) { defaultHeap.DisplayAll(w) }

// Default returns the process-wide default Heap, for callers that need the
// explicit object (e.g. to pass it to package heap/audit).
func Default() *Heap { return defaultHeap }

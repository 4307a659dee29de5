// Package heap implements a boundary-tag, next-fit heap allocator over a
// single fixed-size region of anonymous virtual memory obtained once at
// Init. Every block, free or allocated, carries an identical header and
// footer tag, so the physical neighbors of any block can be found in O(1)
// for coalescing; free blocks additionally thread an intrusive doubly
// linked list through their payloads, and allocation resumes its search
// from a persistent cursor rather than the list head.
//
// Addresses handed out by Alloc and accepted by Free are uintptr values
// into the mapped region rather than unsafe.Pointer/[]byte, because that
// region is OS-mapped memory (internal/vmregion), not a slice managed by
// the Go garbage collector. The region is pinned by holding the backing
// []byte in Heap.arena so the Go runtime never reclaims it out from under
// outstanding addresses.
//
// The core performs no locking of its own: callers that need concurrent
// access must serialize calls to a Heap themselves.
package heap

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/tagheap/tagheap/internal/vmregion"
)

var (
	// ErrAlreadyInitialized is returned by Init when called more than once
	// on the same Heap.
	ErrAlreadyInitialized = errors.New("heap: already initialized")

	// ErrInvalidSize is returned by Init when size is not positive, or is
	// too small to hold even one block's worth of boundary tags.
	ErrInvalidSize = errors.New("heap: invalid size")

	// ErrOutOfRange is returned by Free when the given address is the null
	// address or falls outside the managed region.
	ErrOutOfRange = errors.New("heap: address out of range")

	// ErrMapFailed is returned by Init when the OS refuses the region
	// mapping; the underlying cause is included in the message.
	ErrMapFailed = errors.New("heap: region mapping failed")
)

// minRegionSize is the smallest region Init will accept: one block's header
// and footer (2*tagSize) plus room for a free-list node in its payload
// (16 bytes), so the lone initial free block can actually hold prev/next.
const minRegionSize = 2*tagSize + 16

// Heap is a boundary-tag, next-fit allocator over one fixed-size region.
// Its zero value is not initialized; call Init before Alloc or Free.
type Heap struct {
	arena []byte // keeps the mapped region alive and bounds-checkable

	top uintptr // address of the first block's header
	bot uintptr // address one past the last block's footer

	head    uintptr // head of the free list, 0 if empty
	current uintptr // next-fit cursor, 0 iff the free list is empty

	initialized bool
}

// New returns an uninitialized Heap.
func New() *Heap {
	return &Heap{}
}

// Init reserves a region of size bytes and installs it as one giant free
// block. If size is not a multiple of 16 the managed region is rounded down
// to the nearest 16-byte multiple before mapping, never up, so the mapping
// holds no bytes the caller did not ask for.
func (h *Heap) Init(size int) error {
	if h.initialized {
		return ErrAlreadyInitialized
	}
	if size <= 0 {
		return ErrInvalidSize
	}

	usable := size &^ 15
	if usable < minRegionSize {
		return fmt.Errorf("%w: usable size %d below minimum %d", ErrInvalidSize, usable, minRegionSize)
	}

	arena, err := vmregion.Map(usable)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMapFailed, err)
	}

	base := uintptr(unsafe.Pointer(&arena[0]))
	h.arena = arena
	h.top = base
	h.bot = base + uintptr(usable)

	setBlock(h.top, usable, true)
	node := payloadOf(h.top)
	writeNode(node, 0, 0)
	h.head = node
	h.current = node
	h.initialized = true
	return nil
}

// nextNeighbor returns the header address of the block physically
// following header, and false if header's footer already ends at bot.
func (h *Heap) nextNeighbor(header uintptr) (uintptr, bool) {
	t := readTag(header)
	n := t.pair + tagSize
	if n >= h.bot {
		return 0, false
	}
	return n, true
}

// prevNeighbor returns the header address of the block physically
// preceding header, and false if header is already at top.
func (h *Heap) prevNeighbor(header uintptr) (uintptr, bool) {
	if header <= h.top {
		return 0, false
	}
	prevFooter := header - tagSize
	return readTag(prevFooter).pair, true
}

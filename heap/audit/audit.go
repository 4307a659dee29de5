// Package audit walks a heap.Heap's region and free list to check the
// invariants a well-formed allocator must never violate. It is opt-in
// diagnostic tooling, not part of Alloc/Free's hot path: a reusable,
// repeatable pass rather than a panic-on-corruption guard inside the
// allocator itself.
package audit

import (
	"fmt"

	"github.com/tagheap/tagheap/heap"
)

// tagSize mirrors the boundary-tag size package heap uses, which it does not
// export; every offset in this file derives from it.
const tagSize = 16

// Report collects every invariant violation found by Check in one pass,
// instead of stopping at the first one.
type Report struct {
	Violations []string
}

func (r *Report) add(format string, args ...any) {
	r.Violations = append(r.Violations, fmt.Sprintf(format, args...))
}

// Err returns an error summarizing the report, or nil if it is clean.
func (r *Report) Err() error {
	if len(r.Violations) == 0 {
		return nil
	}
	return fmt.Errorf("audit: %d invariant violation(s), first: %s", len(r.Violations), r.Violations[0])
}

// Audit walks h's region and free list and reports every violation of:
//
//   - coverage: the blocks tile the region exactly, each header starting
//     where the previous footer ended, the first at top and the last
//     footer ending at bot.
//   - header/footer agreement: every block's header and footer must carry
//     matching size and free fields, and cross-link to one another.
//   - 16-byte alignment: every block's header address and payload size
//     must be a multiple of 16.
//   - no adjacent free blocks: two physically consecutive free blocks are
//     a coalescing bug.
//   - free-list/tag agreement: a block is on the free list if and only if
//     its tag says free, with no duplicate or dangling list entries.
//   - cursor validity: the next-fit cursor is either 0 (empty list) or a
//     node that is actually reachable on the free list.
//
// Audit never mutates h; it is safe to call between any two Alloc/Free
// calls, concurrently with nothing else touching h.
func Audit(h *heap.Heap) *Report {
	r := &Report{}
	if !h.Initialized() {
		r.add("heap is not initialized")
		return r
	}

	top, bot := h.Bounds()
	onFreeList := make(map[uintptr]bool)
	for _, n := range h.FreeListNodes() {
		if onFreeList[n] {
			r.add("free list node %#x appears more than once", n)
			continue
		}
		onFreeList[n] = true
	}

	var prevFree bool
	seenTagFree := make(map[uintptr]bool)
	expect := top

	h.Walk(func(b heap.BlockInfo) bool {
		if b.Header != expect {
			r.add("block at %#x does not start where the previous block ended (%#x)", b.Header, expect)
		}
		expect = b.Footer + tagSize

		if b.Header%16 != 0 {
			r.add("block at %#x is not 16-byte aligned", b.Header)
		}
		if b.Size%16 != 0 {
			r.add("block at %#x has non-16-aligned payload size %d", b.Header, b.Size)
		}
		if b.Header < top || b.Footer >= bot {
			r.add("block at %#x extends outside the managed region [%#x, %#x)", b.Header, top, bot)
		}

		if b.Footer != b.Header+tagSize+uintptr(b.Size) {
			r.add("block at %#x has corrupt tag: header pair %#x disagrees with its own size %d", b.Header, b.Footer, b.Size)
		}
		if b.FooterSize != b.Size || b.FooterFree != b.Free {
			r.add("block at %#x has corrupt tag: footer says size=%d free=%v, header says size=%d free=%v",
				b.Header, b.FooterSize, b.FooterFree, b.Size, b.Free)
		}
		if b.FooterPair != b.Header {
			r.add("block at %#x has corrupt tag: footer pair %#x does not point back at the header", b.Header, b.FooterPair)
		}

		seenTagFree[b.Header] = b.Free
		if b.Free && prevFree {
			r.add("adjacent free blocks meet at %#x without coalescing", b.Header)
		}
		prevFree = b.Free

		payload := b.Header + tagSize
		onList := onFreeList[payload]
		if b.Free && !onList {
			r.add("block at %#x is tagged free but missing from the free list", b.Header)
		}
		if !b.Free && onList {
			r.add("block at %#x is tagged allocated but present on the free list", b.Header)
		}
		return true
	})

	if expect != bot {
		r.add("region is not fully tiled: last block ends at %#x, expected %#x", expect, bot)
	}

	for n := range onFreeList {
		header := n - tagSize
		if free, ok := seenTagFree[header]; !ok {
			r.add("free list node %#x does not correspond to any block in the region", n)
		} else if !free {
			r.add("free list node %#x's block is tagged allocated", n)
		}
	}

	cursor := h.Cursor()
	head := h.Head()
	if len(onFreeList) == 0 {
		if cursor != 0 {
			r.add("cursor %#x is non-zero but the free list is empty", cursor)
		}
	} else {
		if cursor == 0 {
			r.add("cursor is zero but the free list is non-empty")
		} else if !onFreeList[cursor] {
			r.add("cursor %#x does not point at a free list node", cursor)
		}
		if head == 0 || !onFreeList[head] {
			r.add("head %#x does not point at a free list node", head)
		}
	}

	return r
}

// Check runs Audit and reduces its report to a single error, for the
// common case of "is this heap well-formed" rather than a full listing.
// Returns nil if Audit found nothing wrong.
func Check(h *heap.Heap) error {
	return Audit(h).Err()
}

package heap

// Alloc allocates a block able to hold req bytes, using next-fit placement
// starting from the cursor left by the previous call. It returns the
// payload address and true on success, or (0, false) if req is not
// positive, the free list is empty, or no free block is large enough.
//
// The returned address is always 16-byte aligned and has at least req
// usable bytes: req is rounded up to the next multiple of 16, and when the
// selected block is too small to split, the whole block is handed over.
func (h *Heap) Alloc(req int) (uintptr, bool) {
	if req <= 0 || h.current == 0 {
		return 0, false
	}

	want := roundUp16(req)

	start := h.current
	cur := start
	for {
		header := headerOf(cur)
		size := int(readTag(header).size)
		if size >= want {
			return h.allocateFrom(cur, header, size, want), true
		}

		next := nodeNext(cur)
		if next == 0 {
			next = h.head
		}
		cur = next
		if cur == start {
			return 0, false
		}
	}
}

// allocateFrom carries out the split-or-consume decision and bookkeeping
// for the free block selected by Alloc's search: cur is its free-list node,
// header its boundary-tag address, size its current payload, and want the
// already-16-byte-rounded request.
func (h *Heap) allocateFrom(cur, header uintptr, size, want int) uintptr {
	if size > want+splitSlack {
		// Room for a genuine remainder block: shrink the selection and
		// splice the leftover in as a brand-new free block.
		remainderHeader := header + uintptr(want+2*tagSize)
		remainderSpan := size - want
		setBlock(remainderHeader, remainderSpan, true)
		h.prepend(payloadOf(remainderHeader))
	} else {
		// Leftover payload would be at most one free node's worth (16
		// bytes); hand over the whole block.
		want = size
	}

	// Cursor must move before cur's tags/list membership change underneath
	// it; see freelist.go's advanceCursor doc comment.
	h.advanceCursor(cur)

	setBlock(header, want+2*tagSize, false)
	h.unlink(cur)

	return payloadOf(header)
}

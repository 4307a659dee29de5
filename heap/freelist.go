package heap

// prepend inserts node at the head of the free list. This is the only
// insertion operation the list supports (O(1), unordered; next-fit does
// not require any particular traversal order).
func (h *Heap) prepend(node uintptr) {
	if h.head == 0 {
		writeNode(node, 0, 0)
		h.head = node
		h.current = node
		return
	}

	oldHead := h.head
	writeNode(node, 0, oldHead)
	setNodePrev(oldHead, node)
	if h.current == oldHead {
		h.current = node
	}
	h.head = node
}

// unlink detaches node from the free list, patching its neighbors' links
// and, if node was both the head and the cursor, advancing the cursor to
// the new head before the head pointer itself moves. Alloc's allocateFrom
// pre-advances the cursor, so this check is a no-op whenever that moved the
// cursor off node; when node is the only entry on the list, advanceCursor
// wraps back onto node itself and this check is what clears the cursor to 0.
func (h *Heap) unlink(node uintptr) {
	prev := nodePrev(node)
	next := nodeNext(node)

	if h.head == node {
		if h.current == h.head {
			h.current = next
		}
		h.head = next
	}
	if prev != 0 {
		setNodeNext(prev, next)
	}
	if next != 0 {
		setNodePrev(next, prev)
	}
}

// replaceNode relinks node's former neighbors to point at replacement
// instead, moving node's list slot to a different address in one step.
// Used when coalescing merges "this" block forward into a free successor:
// the merged block keeps this's header address, so the successor's old
// free-list slot must be taken over by that new address.
func (h *Heap) replaceNode(node, replacement uintptr) {
	prev := nodePrev(node)
	next := nodeNext(node)

	writeNode(replacement, prev, next)
	if prev != 0 {
		setNodeNext(prev, replacement)
	} else {
		h.head = replacement
	}
	if next != 0 {
		setNodePrev(next, replacement)
	}
	if h.current == node {
		h.current = replacement
	}
}

// detachNode removes node from the free list without introducing a
// replacement slot. If the cursor pointed at node, it is reseated onto
// keep instead of generically advancing. Used when coalescing merges a
// free successor into an already-listed predecessor, so the cursor must
// land on the surviving, now-larger block rather than wherever unlink's
// default rule would send it.
func (h *Heap) detachNode(node, keep uintptr) {
	prev := nodePrev(node)
	next := nodeNext(node)

	if prev != 0 {
		setNodeNext(prev, next)
	} else {
		h.head = next
	}
	if next != 0 {
		setNodePrev(next, prev)
	}
	if h.current == node {
		h.current = keep
	}
}

// advanceCursor moves current past node, wrapping to head at the end of
// the list. node need not be the current cursor position itself: Alloc
// calls this with the selected block, before the selected node's tags are
// rewritten or it is unlinked, so the next-fit search resumes past it on
// the next call.
func (h *Heap) advanceCursor(node uintptr) {
	next := nodeNext(node)
	if next == 0 {
		next = h.head
	}
	h.current = next
}

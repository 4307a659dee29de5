package heap

// Free returns the block at payload address p to the allocator, coalescing
// it with any free physical neighbor(s). It returns ErrOutOfRange if p is
// the null address or falls outside the managed region.
//
// Freeing an address not returned by Alloc, or freeing the same address
// twice, is undefined behavior; Free trusts its input. Use package
// heap/audit to detect the symptoms after the fact.
func (h *Heap) Free(p uintptr) error {
	if p == 0 || p < h.top || p >= h.bot {
		return ErrOutOfRange
	}
	h.coalesce(headerOf(p))
	return nil
}

// coalesce frees the block at header and merges it with whichever physical
// neighbors are themselves free, so that no two adjacent free blocks remain.
func (h *Heap) coalesce(header uintptr) {
	this := readTag(header)

	nextHeader, hasNext := h.nextNeighbor(header)
	prevHeader, hasPrev := h.prevNeighbor(header)

	nextFree := hasNext && readTag(nextHeader).free == 1
	prevFree := hasPrev && readTag(prevHeader).free == 1

	switch {
	case prevFree && nextFree:
		h.coalesceBoth(prevHeader, header, nextHeader, this)
	case prevFree:
		h.coalescePrevOnly(prevHeader, this)
	case nextFree:
		h.coalesceNextOnly(header, nextHeader, this)
	default:
		h.coalesceNeither(header, this)
	}
}

// coalesceNeither: no free neighbor. The block becomes a new, standalone
// free-list entry; its span is unchanged.
func (h *Heap) coalesceNeither(header uintptr, this tag) {
	setBlock(header, int(this.size)+2*tagSize, true)
	h.prepend(payloadOf(header))
}

// coalescePrevOnly: the predecessor absorbs this block. The predecessor's
// node address never moves, so the free list needs no relinking at all.
func (h *Heap) coalescePrevOnly(prevHeader uintptr, this tag) {
	prev := readTag(prevHeader)
	mergedSpan := int(prev.size) + int(this.size) + 4*tagSize
	setBlock(prevHeader, mergedSpan, true)
}

// coalesceNextOnly: the successor absorbs into this block, whose header
// address becomes the merged block's header. The successor's free-list
// slot must be taken over by that (new) node address.
func (h *Heap) coalesceNextOnly(header, nextHeader uintptr, this tag) {
	next := readTag(nextHeader)
	mergedSpan := int(this.size) + int(next.size) + 4*tagSize
	setBlock(header, mergedSpan, true)
	h.replaceNode(payloadOf(nextHeader), payloadOf(header))
}

// coalesceBoth: both neighbors are free. The predecessor absorbs this
// block and the successor; the predecessor's node stays put, and the
// successor's node is simply detached (no replacement needed, since it
// is now covered by the predecessor's already-listed node).
func (h *Heap) coalesceBoth(prevHeader, header, nextHeader uintptr, this tag) {
	prev := readTag(prevHeader)
	next := readTag(nextHeader)
	mergedSpan := int(prev.size) + int(this.size) + int(next.size) + 6*tagSize
	setBlock(prevHeader, mergedSpan, true)
	h.detachNode(payloadOf(nextHeader), payloadOf(prevHeader))
}

package heap

// BlockInfo describes one physical block for a caller walking the region,
// e.g. package heap/audit or a display routine outside this package. The
// header's and footer's tag fields are reported separately so a checker can
// catch disagreement between the two ends of a block.
type BlockInfo struct {
	Header uintptr
	Footer uintptr // the header tag's pair link
	Size   int     // payload size per the header tag
	Free   bool    // free flag per the header tag

	FooterSize int     // payload size per the footer tag
	FooterFree bool    // free flag per the footer tag
	FooterPair uintptr // the footer tag's back-link, normally Header
}

// Walk calls fn once for every physical block in the region, in address
// order from top to bot. It stops early if fn returns false.
func (h *Heap) Walk(fn func(BlockInfo) bool) {
	for cur, ok := h.top, h.initialized; ok; cur, ok = h.nextNeighbor(cur) {
		t := readTag(cur)
		ft := readTag(t.pair)
		info := BlockInfo{
			Header:     cur,
			Footer:     t.pair,
			Size:       int(t.size),
			Free:       t.free == 1,
			FooterSize: int(ft.size),
			FooterFree: ft.free == 1,
			FooterPair: ft.pair,
		}
		if !fn(info) {
			return
		}
	}
}

// FreeListNodes returns the payload addresses currently on the free list,
// in traversal order starting from Head.
func (h *Heap) FreeListNodes() []uintptr {
	var out []uintptr
	for n := h.head; n != 0; n = nodeNext(n) {
		out = append(out, n)
	}
	return out
}

// Bounds returns the first header address and the first address past the
// last footer in the managed region.
func (h *Heap) Bounds() (top, bot uintptr) { return h.top, h.bot }

// Cursor returns the next-fit cursor's current free-list node, or 0 if the
// free list is empty.
func (h *Heap) Cursor() uintptr { return h.current }

// Head returns the free list's head node, or 0 if it is empty.
func (h *Heap) Head() uintptr { return h.head }

// Initialized reports whether Init has been called successfully.
func (h *Heap) Initialized() bool { return h.initialized }

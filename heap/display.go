package heap

import (
	"fmt"
	"io"
)

// DisplayFree writes the address and payload size of every block currently
// on the free list to w, in free-list traversal order (not physical
// address order). It is purely observational and never mutates state.
func (h *Heap) DisplayFree(w io.Writer) {
	fmt.Fprintln(w, "---Free chunks:")
	for n := h.head; n != 0; n = nodeNext(n) {
		header := headerOf(n)
		fmt.Fprintf(w, "\tAddress: %#x\tSize: %d\n", header, readTag(header).size)
	}
}

// DisplayAll writes the entire region's physical block layout to w: every
// block's header, its free-list node if free, its footer, and finally a
// compact strip of "|####|"/"|    |" markers showing the free/used
// alternation across the region. It is purely observational.
func (h *Heap) DisplayAll(w io.Writer) {
	h.DisplayFree(w)

	fmt.Fprintln(w, "---DisplayAll")
	for cur, ok := h.top, h.initialized; ok; cur, ok = h.nextNeighbor(cur) {
		t := readTag(cur)
		fmt.Fprintf(w, "Header: (%#x)\n\tsize = %d,\t free = %d,\t pair = %#x\n", cur, t.size, t.free, t.pair)
		if t.free == 1 {
			node := payloadOf(cur)
			prev, next := readNode(node)
			fmt.Fprintf(w, "Node: (%#x)\n\tnext = %#x,\t prev = %#x\n", node, next, prev)
		}
		footer := t.pair
		ft := readTag(footer)
		fmt.Fprintf(w, "Footer: (%#x)\n\tsize = %d,\t free = %d,\t pair = %#x\n", footer, ft.size, ft.free, ft.pair)
	}

	fmt.Fprint(w, "\n\t")
	for cur, ok := h.top, h.initialized; ok; cur, ok = h.nextNeighbor(cur) {
		if readTag(cur).free == 1 {
			fmt.Fprint(w, "|    |")
		} else {
			fmt.Fprint(w, "|####|")
		}
	}
	fmt.Fprint(w, "\n\n")
}

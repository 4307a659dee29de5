package heap

import "unsafe"

// tagSize is the size in bytes of a single boundary tag (header or footer).
// Both carry size, free and pair fields packed into 16 bytes: two int32s
// (8 bytes) followed by a uintptr (8 bytes on a 64-bit target), with no
// padding since the uintptr already falls on an 8-byte boundary.
const tagSize = 16

// splitSlack is the amount of extra payload a selected free block must carry,
// beyond the rounded request, before Alloc bothers splitting it. It is
// 2*tagSize (header+footer of the new remainder block) plus one free-list
// node's worth of payload (16 bytes on the target this code assumes).
// Spelled out as a literal rather than derived from unsafe.Sizeof(node{})
// so the split threshold does not silently change across build targets.
const splitSlack = 48

// tag is the in-memory layout of a boundary tag. Both the header and the
// footer of a block use this exact layout; size and free always agree
// between them, and pair cross-links header and footer to each other.
type tag struct {
	size int32
	free int32
	pair uintptr
}

// readTag loads the boundary tag at addr.
func readTag(addr uintptr) tag {
	p := unsafe.Pointer(addr)
	return tag{
		size: *(*int32)(p),
		free: *(*int32)(unsafe.Add(p, 4)),
		pair: *(*uintptr)(unsafe.Add(p, 8)),
	}
}

// writeTag stores t at addr.
func writeTag(addr uintptr, t tag) {
	p := unsafe.Pointer(addr)
	*(*int32)(p) = t.size
	*(*int32)(unsafe.Add(p, 4)) = t.free
	*(*uintptr)(unsafe.Add(p, 8)) = t.pair
}

// setBlock writes matching header and footer tags for a block spanning
// totalSize bytes (header + payload + footer) starting at addr, with the
// given free state. This is the only place a block's tags are written.
func setBlock(addr uintptr, totalSize int, free bool) {
	payload := int32(totalSize) - 2*tagSize
	freeFlag := int32(0)
	if free {
		freeFlag = 1
	}
	header := addr
	footer := addr + uintptr(totalSize) - tagSize
	writeTag(header, tag{size: payload, free: freeFlag, pair: footer})
	writeTag(footer, tag{size: payload, free: freeFlag, pair: header})
}

// readNode loads the free-list link fields stored in a free block's payload.
func readNode(addr uintptr) (prev, next uintptr) {
	p := unsafe.Pointer(addr)
	prev = *(*uintptr)(p)
	next = *(*uintptr)(unsafe.Add(p, 8))
	return prev, next
}

// writeNode stores the free-list link fields in a free block's payload.
func writeNode(addr uintptr, prev, next uintptr) {
	p := unsafe.Pointer(addr)
	*(*uintptr)(p) = prev
	*(*uintptr)(unsafe.Add(p, 8)) = next
}

func nodePrev(addr uintptr) uintptr {
	prev, _ := readNode(addr)
	return prev
}

func nodeNext(addr uintptr) uintptr {
	_, next := readNode(addr)
	return next
}

func setNodePrev(addr, prev uintptr) {
	_, next := readNode(addr)
	writeNode(addr, prev, next)
}

func setNodeNext(addr, next uintptr) {
	prev, _ := readNode(addr)
	writeNode(addr, prev, next)
}

// headerOf returns the header address of the block whose payload starts at
// payload. payloadOf is its inverse. Together with Heap.nextNeighbor,
// Heap.prevNeighbor, setBlock (footer address) and Heap.allocateFrom
// (split-remainder header) these are where the package does raw offset
// arithmetic on tagged memory.
func headerOf(payload uintptr) uintptr {
	return payload - tagSize
}

func payloadOf(header uintptr) uintptr {
	return header + tagSize
}

// roundUp16 rounds n up to the next multiple of 16.
func roundUp16(n int) int {
	return (n + 15) &^ 15
}

package heap

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// arenaAddr returns the uintptr address of arena[offset], for constructing
// fake free-list nodes directly in a plain byte slice without going through
// Heap.Init (these tests exercise the free-list primitives in isolation,
// independent of boundary-tag bookkeeping).
func arenaAddr(arena []byte, offset int) uintptr {
	return uintptr(unsafe.Pointer(&arena[offset]))
}

func listNodes(h *Heap) []uintptr {
	var out []uintptr
	for n := h.head; n != 0; n = nodeNext(n) {
		out = append(out, n)
	}
	return out
}

func TestPrependIntoEmptyList(t *testing.T) {
	arena := make([]byte, 256)
	h := &Heap{}
	node := arenaAddr(arena, 0)

	h.prepend(node)
	assert.Equal(t, node, h.head)
	assert.Equal(t, node, h.current)
	assert.Zero(t, nodeNext(node))
	assert.Zero(t, nodePrev(node))
}

func TestPrependOntoExisting(t *testing.T) {
	arena := make([]byte, 256)
	h := &Heap{}
	n0 := arenaAddr(arena, 0)
	n1 := arenaAddr(arena, 32)

	h.prepend(n0)
	h.prepend(n1)

	assert.Equal(t, n1, h.head)
	assert.Equal(t, n1, h.current) // current tracked old head, moves with it
	assert.Equal(t, n0, nodeNext(n1))
	assert.Equal(t, n1, nodePrev(n0))
	assert.Equal(t, []uintptr{n1, n0}, listNodes(h))
}

func TestUnlinkMiddleNode(t *testing.T) {
	arena := make([]byte, 256)
	h := &Heap{}
	n0 := arenaAddr(arena, 0)
	n1 := arenaAddr(arena, 32)
	n2 := arenaAddr(arena, 64)
	h.prepend(n0)
	h.prepend(n1)
	h.prepend(n2) // list: n2, n1, n0

	h.unlink(n1)
	assert.Equal(t, []uintptr{n2, n0}, listNodes(h))
	assert.Equal(t, n0, nodeNext(n2))
	assert.Equal(t, n2, nodePrev(n0))
}

func TestUnlinkHeadAdvancesCursor(t *testing.T) {
	arena := make([]byte, 256)
	h := &Heap{}
	n0 := arenaAddr(arena, 0)
	n1 := arenaAddr(arena, 32)
	h.prepend(n0)
	h.prepend(n1) // list: n1, n0; head == current == n1

	h.unlink(n1)
	assert.Equal(t, n0, h.head)
	assert.Equal(t, n0, h.current)
}

func TestReplaceNodePreservesPosition(t *testing.T) {
	arena := make([]byte, 256)
	h := &Heap{}
	n0 := arenaAddr(arena, 0)
	n1 := arenaAddr(arena, 32)
	n2 := arenaAddr(arena, 64)
	replacement := arenaAddr(arena, 96)
	h.prepend(n0)
	h.prepend(n1)
	h.prepend(n2) // list: n2, n1, n0
	h.current = n1

	h.replaceNode(n1, replacement)
	assert.Equal(t, []uintptr{n2, replacement, n0}, listNodes(h))
	assert.Equal(t, replacement, h.current)
}

func TestReplaceNodeAtHead(t *testing.T) {
	arena := make([]byte, 256)
	h := &Heap{}
	n0 := arenaAddr(arena, 0)
	replacement := arenaAddr(arena, 32)
	h.prepend(n0)

	h.replaceNode(n0, replacement)
	assert.Equal(t, replacement, h.head)
	assert.Equal(t, replacement, h.current)
}

func TestDetachNodeReseatsCursorOntoKeep(t *testing.T) {
	arena := make([]byte, 256)
	h := &Heap{}
	n0 := arenaAddr(arena, 0)
	n1 := arenaAddr(arena, 32)
	h.prepend(n0)
	h.prepend(n1) // list: n1, n0; current == n1
	h.current = n0

	h.detachNode(n0, n1)
	assert.Equal(t, []uintptr{n1}, listNodes(h))
	assert.Equal(t, n1, h.current)
}

func TestAdvanceCursorWrapsAtTail(t *testing.T) {
	arena := make([]byte, 256)
	h := &Heap{}
	n0 := arenaAddr(arena, 0)
	n1 := arenaAddr(arena, 32)
	h.prepend(n0)
	h.prepend(n1) // list: n1, n0

	h.advanceCursor(n0) // n0 is the tail, no next: wraps to head
	assert.Equal(t, n1, h.current)

	h.advanceCursor(n1)
	assert.Equal(t, n0, h.current)
}

package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHeap(t *testing.T, size int) *Heap {
	t.Helper()
	h := New()
	require.NoError(t, h.Init(size))
	return h
}

func TestInit(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"valid_4096", 4096, false},
		{"valid_not_multiple_of_16", 4090, false}, // rounds down, still usable
		{"zero", 0, true},
		{"negative", -1, true},
		{"too_small_for_one_node", 16, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New()
			err := h.Init(tt.size)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInitTwiceFails(t *testing.T) {
	h := newTestHeap(t, 4096)
	assert.ErrorIs(t, h.Init(4096), ErrAlreadyInitialized)
}

func TestInitLoneFreeBlock(t *testing.T) {
	h := newTestHeap(t, 4096)
	assert.Equal(t, h.head, h.current)
	require.NotZero(t, h.head)

	header := headerOf(h.head)
	tg := readTag(header)
	assert.Equal(t, int32(4096-2*tagSize), tg.size)
	assert.Equal(t, int32(1), tg.free)
	assert.Equal(t, h.top, header)
}

func TestAddressAlignment(t *testing.T) {
	h := newTestHeap(t, 4096)
	p, ok := h.Alloc(1)
	require.True(t, ok)
	assert.Zero(t, p%16)
}

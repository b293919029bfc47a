package atlas

import "container/heap"

// AtlasID identifies an atlas. IDs start at 1; 0 means none.
type AtlasID uint32

// ImageID identifies a packed image. IDs start at 1; 0 means none.
type ImageID uint32

// Slot is the result of a successful Add.
type Slot struct {
	ImageID ImageID
	AtlasID AtlasID
}

// imageSlot records where an image lives. A slot with count 0 is free and
// its index is on the manager's free ID heap.
type imageSlot struct {
	atlas  int
	blocks []int
	width  int
	height int
	count  uint32
}

// idHeap is a min-heap of free image slot indexes so the lowest free ID is
// always reused first.
type idHeap []int

func (h idHeap) Len() int           { return len(h) }
func (h idHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h idHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *idHeap) Push(x any)        { *h = append(*h, x.(int)) }

func (h *idHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// store places s in the lowest free slot, or appends it, and returns its index.
func (m *Manager) store(s imageSlot) int {
	if m.freeImages.Len() > 0 {
		i := heap.Pop(&m.freeImages).(int)
		m.images[i] = s
		return i
	}
	m.images = append(m.images, s)
	return len(m.images) - 1
}

// release marks slot i free and returns its blocks to the owning atlas.
func (m *Manager) release(i int) {
	s := &m.images[i]
	s.count = 0
	a := m.atlases[s.atlas]
	for _, b := range s.blocks {
		a.blocks.release(b)
	}
	s.blocks = nil
	heap.Push(&m.freeImages, i)
}

// slotAt resolves id to a live slot index.
func (m *Manager) slotAt(id ImageID) (int, bool) {
	if id == 0 || int(id) > len(m.images) {
		return 0, false
	}
	i := int(id) - 1
	return i, m.images[i].count > 0
}

package atlas

// blockAllocator hands out the fixed-size blocks of one atlas.
//
// next is the 1-based index of the next never-issued block, or 0 once all
// virgin blocks are gone. Released blocks go to a FIFO free list. A block is
// either virgin, assigned to exactly one image, or on the free list.
type blockAllocator struct {
	total int
	next  int
	free  []int
}

func newBlockAllocator(total int) blockAllocator {
	return blockAllocator{total: total, next: 1}
}

// available reports whether allocate would succeed.
func (a *blockAllocator) available() bool {
	return a.next != 0 || len(a.free) > 0
}

// allocate returns the next block, virgin blocks first, then the oldest
// released block. ok is false when the atlas is full.
func (a *blockAllocator) allocate() (block int, ok bool) {
	if a.next != 0 {
		block = a.next - 1
		a.next = block + 2
		if a.next > a.total {
			a.next = 0
		}
		return block, true
	}
	if len(a.free) == 0 {
		return 0, false
	}
	block = a.free[0]
	a.free = a.free[1:]
	return block, true
}

func (a *blockAllocator) release(block int) {
	a.free = append(a.free, block)
}

// virgin returns the number of blocks never issued.
func (a *blockAllocator) virgin() int {
	if a.next == 0 {
		return 0
	}
	return a.total - a.next + 1
}

// freeCount returns the number of blocks available for allocation.
func (a *blockAllocator) freeCount() int {
	return a.virgin() + len(a.free)
}

// used returns the number of blocks currently assigned to images.
func (a *blockAllocator) used() int {
	return a.total - a.freeCount()
}

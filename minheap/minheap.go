// Package minheap implements the indexed binary min-heap described in doc.go.
//
// The structure is two parallel fixed arrays: arr holds identifiers in heap
// order, pos maps each identifier back to its slot in arr (-1 when absent).
// Every structural mutation goes through swap, the only function allowed to
// move identifiers, so arr and pos can never drift apart — that dual-array
// consistency is the central invariant of the type.
package minheap

// absent marks an identifier that is not currently in the heap.
const absent = -1

// Heap is an indexed min-heap over identifiers [0..Cap()), ordered by a
// caller-owned priority slice passed to each mutating call.
//
// Invariants (hold after every exported call):
//
//   - Heap order: prio[arr[i]] ≤ prio[arr[child(i)]] for every live node i.
//   - Position consistency: arr[pos[k]] == k for every k in the heap, and
//     pos[arr[i]] == i for every live slot i.
//   - 0 ≤ Len() ≤ Cap().
//
// The zero value is not usable; construct with New.
type Heap struct {
	arr  []int // identifiers in heap order; slots [0..size) are live
	pos  []int // identifier → slot in arr, or absent
	size int   // current number of identifiers in the heap
}

// New returns an empty heap for the identifier universe [0, n).
// Both internal arrays are allocated once; the heap never grows beyond n.
// Returns ErrBadCapacity if n is negative.
//
// Complexity: O(n) time, O(n) space.
func New(n int) (*Heap, error) {
	if n < 0 {
		return nil, ErrBadCapacity
	}

	h := &Heap{
		arr:  make([]int, n),
		pos:  make([]int, n),
		size: 0,
	}
	// Every identifier starts outside the heap.
	for k := range h.pos {
		h.pos[k] = absent
	}

	return h, nil
}

// Insert places identifier k into the heap, ordered by prio[k].
//
// Preconditions (violations panic with the named sentinel):
//   - 0 ≤ k < Cap()          — ErrOutOfRange
//   - k is not in the heap   — ErrDuplicate
//   - len(prio) ≥ Cap()      — ErrShortPriorities
//
// Complexity: O(log N).
func (h *Heap) Insert(k int, prio []float64) {
	h.checkPrio(prio)
	if k < 0 || k >= len(h.pos) {
		panic(ErrOutOfRange)
	}
	if h.pos[k] != absent {
		panic(ErrDuplicate)
	}

	// 1) Append k to the first free slot and record its position.
	h.arr[h.size] = k
	h.pos[k] = h.size
	h.size++

	// 2) Restore heap order along the root path.
	h.siftUp(h.size-1, prio)
}

// DecreaseKey restores heap order after the caller lowered prio[k] in place.
// The heap itself never writes priorities; the caller mutates prio[k] first
// and then calls DecreaseKey. A call on an element whose priority did not
// actually decrease is a no-op (no swaps are performed).
//
// Only downward moves are handled: raising a priority and calling DecreaseKey
// leaves the heap out of order.
//
// Preconditions (violations panic with the named sentinel):
//   - 0 ≤ k < Cap()       — ErrOutOfRange
//   - k is in the heap    — ErrAbsent
//   - len(prio) ≥ Cap()   — ErrShortPriorities
//
// Complexity: O(log N).
func (h *Heap) DecreaseKey(k int, prio []float64) {
	h.checkPrio(prio)
	if k < 0 || k >= len(h.pos) {
		panic(ErrOutOfRange)
	}
	if h.pos[k] == absent {
		panic(ErrAbsent)
	}

	h.siftUp(h.pos[k], prio)
}

// PopMin removes and returns the identifier with minimum priority.
// Panics with ErrEmptyHeap if the heap is empty, ErrShortPriorities if the
// priority slice cannot index every identifier.
//
// Complexity: O(log N).
func (h *Heap) PopMin(prio []float64) int {
	h.checkPrio(prio)
	if h.size == 0 {
		panic(ErrEmptyHeap)
	}

	// 1) The minimum lives at the root.
	min := h.arr[0]

	// 2) Move the last element to the root; swap keeps pos consistent and
	//    parks the minimum in the slot about to fall out of the live range.
	h.swap(0, h.size-1)

	// 3) Shrink the live range and mark the removed identifier absent.
	h.size--
	h.pos[min] = absent

	// 4) Restore heap order from the root down. A heap of size ≤ 1 is
	//    trivially ordered.
	if h.size > 1 {
		h.siftDown(0, prio)
	}

	return min
}

// Empty reports whether the heap holds no identifiers.
func (h *Heap) Empty() bool { return h.size == 0 }

// Len returns the number of identifiers currently in the heap.
func (h *Heap) Len() int { return h.size }

// Cap returns the size of the identifier universe fixed at construction.
func (h *Heap) Cap() int { return len(h.pos) }

// Contains reports whether identifier k is currently in the heap.
// Identifiers outside [0, Cap()) are never contained.
func (h *Heap) Contains(k int) bool {
	return k >= 0 && k < len(h.pos) && h.pos[k] != absent
}

// siftUp walks the element at slot i toward the root, swapping with its
// parent while strictly smaller. Strictly-less keeps ties in place.
func (h *Heap) siftUp(i int, prio []float64) {
	var parent int
	for i > 0 {
		parent = (i - 1) / 2
		if prio[h.arr[i]] >= prio[h.arr[parent]] {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// siftDown restores heap order rooted at slot i by repeatedly swapping with
// the smaller child until neither child is strictly smaller.
func (h *Heap) siftDown(i int, prio []float64) {
	var left, right, smallest int
	for {
		left, right = 2*i+1, 2*i+2
		smallest = i
		if left < h.size && prio[h.arr[left]] < prio[h.arr[smallest]] {
			smallest = left
		}
		if right < h.size && prio[h.arr[right]] < prio[h.arr[smallest]] {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// swap exchanges the identifiers at slots x and y and updates the position
// index for both. This is the only place an identifier changes slots; sift
// routines are expressed purely in terms of it so arr and pos stay mutually
// consistent.
func (h *Heap) swap(x, y int) {
	h.arr[x], h.arr[y] = h.arr[y], h.arr[x]
	h.pos[h.arr[x]] = x
	h.pos[h.arr[y]] = y
}

// checkPrio validates that the priority slice can index every identifier.
func (h *Heap) checkPrio(prio []float64) {
	if len(prio) < len(h.pos) {
		panic(ErrShortPriorities)
	}
}

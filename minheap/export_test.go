package minheap

// Test-only bridge exposing the heap's internal arrays to minheap_test, so
// the order and position-consistency invariants can be verified white-box
// without widening the production API.

// Live returns the live portion of the heap array (identifiers in heap
// order). The returned slice aliases internal state; tests must not mutate.
func (h *Heap) Live() []int { return h.arr[:h.size] }

// Positions returns the identifier → slot index (absent == -1).
// The returned slice aliases internal state; tests must not mutate.
func (h *Heap) Positions() []int { return h.pos }

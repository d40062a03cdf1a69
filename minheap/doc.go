// Package minheap provides an indexed, decrease-key-capable binary min-heap
// over a fixed universe of integer identifiers [0..N), ordered by an
// externally owned priority slice.
//
// Overview:
//
//   - The heap stores identifiers, never priorities. Every operation that
//     compares elements receives the caller's priority slice by reference,
//     so a priority can be decreased in place (by the caller) and the heap
//     re-ordered in O(log N) via DecreaseKey — no rebuild, no linear scan.
//   - A reverse position index maps each identifier to its current slot in
//     the heap array, which is what makes in-place decrease-key possible.
//   - This is the priority-queue primitive behind the graph-analysis
//     algorithms in this module: k-core peeling (kcore), eager Dijkstra
//     (dijkstra) and key-per-vertex Prim (prim).
//
// When to use:
//
//   - Node priorities change monotonically downward while the node waits in
//     the queue (degrees under peeling, tentative distances, MST keys).
//   - The identifier universe is closed and known up front (0..N-1).
//
// When NOT to use:
//
//   - Arbitrary key types or an unbounded universe — use container/heap.
//   - Priorities that may increase while queued — DecreaseKey only sifts up.
//
// Contract:
//
//   - Each identifier is inserted at most once between pops; priorities are
//     read through the slice passed on each call and never mutated or kept.
//   - Precondition violations are caller bugs and panic with a sentinel
//     error value (ErrOutOfRange, ErrDuplicate, ErrAbsent, ErrEmptyHeap,
//     ErrShortPriorities) rather than silently corrupting the heap.
//   - Equal priorities never reorder: all comparisons are strictly-less, so
//     ties keep whichever element was placed first. Callers treat equal
//     priorities as interchangeable.
//
// Complexity:
//
//   - Insert / DecreaseKey / PopMin: O(log N) time.
//   - Empty / Len / Contains:       O(1) time.
//   - Space: O(N), allocated once at construction; no growth beyond N.
//
// Thread safety: none. The heap and the priority slice must be confined to
// one goroutine, or guarded externally together (DecreaseKey is only correct
// if it observes the priority write that preceded it).
package minheap

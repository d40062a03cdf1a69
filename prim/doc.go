// Package prim computes minimum spanning trees of undirected, weighted CSR
// graphs with the key-per-vertex (decrease-key) variant of Prim's algorithm.
//
// Overview:
//
//   - Every vertex outside the growing tree carries a key: the weight of the
//     lightest edge connecting it to the tree (+Inf until touched). Keys
//     live in a dense slice that is also the priority array of an indexed
//     minheap.Heap, so improving a key is an in-place write followed by an
//     O(log V) DecreaseKey.
//   - The classic alternative pushes candidate edges lazily and skips stale
//     pops; the eager variant keeps at most one heap entry per vertex, so
//     memory stays O(V) instead of O(E).
//
// Input contract: the matrix must be weighted and symmetric (each undirected
// edge stored in both rows); Symmetric() is checked up front. Negative
// weights are legal for MST.
//
// Complexity:
//
//   - Time:  O(E log V) — every edge inspected once per endpoint, at most
//     one DecreaseKey each.
//   - Space: O(V) beyond the input.
//
// Errors (sentinel):
//
//   - ErrNilMatrix    — nil adjacency matrix.
//   - ErrUnweighted   — the matrix carries no edge weights.
//   - ErrAsymmetric   — directed (non-mirrored) storage.
//   - ErrBadRoot      — root outside [0, NumNodes()).
//   - ErrDisconnected — no spanning tree exists (zero vertices, or some
//     vertex unreachable from the root).
package prim

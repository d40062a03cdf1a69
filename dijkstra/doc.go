// Package dijkstra provides single-source shortest paths on weighted CSR
// graphs with non-negative edge weights, using the eager (decrease-key)
// variant of Dijkstra's algorithm.
//
// Overview:
//
//   - Distances are held in a dense slice that doubles as the priority array
//     of an indexed minheap.Heap: when a relaxation improves dist[v], the
//     slice is written in place and the heap re-ordered with DecreaseKey.
//   - Unlike the lazy variant (push duplicates, skip stale pops), the heap
//     holds each vertex at most once, so it never outgrows the vertex
//     universe and no staleness checks are needed on pop.
//
// Key features:
//
//   - Functional options: Source (required), WithReturnPath for a
//     predecessor slice, WithMaxDistance to bound exploration.
//   - O(E) pre-scan rejects negative weights before any state is built.
//   - Works on directed and undirected (symmetric) CSR storage alike.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — V inserts/pops, ≤ E decrease-keys,
//     each O(log V).
//   - Space: O(V) — dist, prev and the heap; nothing proportional to E.
//
// Errors (sentinel):
//
//   - ErrNilMatrix      — nil adjacency matrix.
//   - ErrUnweighted     — the matrix carries no edge weights.
//   - ErrBadSource      — source outside [0, NumNodes()).
//   - ErrNegativeWeight — some stored weight is negative (wrapped with the
//     offending edge).
//   - ErrBadMaxDistance — panicked by WithMaxDistance on a negative bound.
//
// Results: dist[v] == math.Inf(1) marks v unreachable; prev[v] == -1 marks
// "no predecessor" (the source itself, or an unreachable vertex).
//
// Thread safety: none; the matrix is read-only during a run, so concurrent
// runs over the same matrix are safe.
package dijkstra

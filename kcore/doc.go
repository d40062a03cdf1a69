// Package kcore implements k-core decomposition of an undirected graph via
// degree peeling over the indexed min-heap.
//
// Overview:
//
//   - The k-core of a graph is its maximal subgraph in which every node has
//     degree ≥ k. The core value of a node is the largest k for which the
//     node belongs to the k-core; the core number of the graph is the
//     largest core value over all nodes.
//   - Decompose computes every node's core value in one pass: all nodes are
//     seeded into a minheap.Heap keyed by degree; the minimum-degree node is
//     peeled, its still-queued neighbors have their scores decremented in
//     place and re-ordered with DecreaseKey. The running maximum of peeled
//     scores is the peeled node's core value.
//
// This is the drive pattern the indexed heap exists for: priorities (the
// residual degrees) live in a caller-owned slice, strictly decrease over the
// run, and re-order in O(log n) per touch instead of rebuilding the queue.
//
// Complexity:
//
//   - Time:  O(E log n) — each edge causes at most one DecreaseKey, each
//     node exactly one Insert and one PopMin.
//   - Space: O(n) beyond the input.
//
// Input contract: the adjacency matrix is interpreted as undirected; pass a
// symmetrically stored csr.Matrix (each edge in both rows). Self-loops and
// parallel edges are counted as stored, matching a raw degree reading.
//
// Errors (sentinel):
//
//   - ErrNilMatrix — nil adjacency passed to Decompose or Core.
//   - ErrBadK     — negative k passed to Core.
package kcore

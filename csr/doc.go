// Package csr provides a compressed sparse row (CSR) adjacency container —
// the read-only graph representation consumed by the algorithm packages in
// this module (kcore, dijkstra, prim).
//
// Layout:
//
//	indptr  — n+1 row offsets; row i spans indices[indptr[i]:indptr[i+1]]
//	indices — column index (neighbor identifier) of every stored edge
//	data    — optional edge weights, parallel to indices; nil when unweighted
//
// Nodes are dense integer identifiers [0..n), matching the identifier
// universe of minheap. Directed edges are rows; an undirected graph is a
// symmetric matrix (each edge stored in both rows), which Symmetric reports.
//
// Construction:
//
//   - New validates raw indptr/indices/data triples (monotone offsets,
//     in-range column indices, weight length) and fails with sentinel errors.
//   - FromAdjacency / FromWeighted build a matrix from per-node neighbor
//     lists, the convenient form in tests and small programs.
//
// The container is immutable after construction and safe for concurrent
// readers. Accessors taking a node identifier panic with ErrNodeRange when
// the identifier falls outside [0..n); algorithm packages validate their
// inputs before touching rows.
//
// Complexity: all single-row accessors are O(1) (Neighbors and Weights
// return subslices, no copying); Degrees is O(n); Symmetric is O(E log E).
package csr

// Package sknetwork is a Go port of graph-analysis primitives built around
// one idea: node priorities that change while queued, re-ordered in
// logarithmic time instead of rebuilt.
//
// 🚀 What is in the box?
//
//	A small, focused library of index-oriented graph machinery:
//		• minheap  — indexed, decrease-key binary min-heap over [0..N) with
//		             caller-owned priorities (the core primitive)
//		• csr      — compressed sparse row adjacency, the read-only graph
//		             container every algorithm consumes
//		• kcore    — k-core decomposition by degree peeling
//		• dijkstra — eager (decrease-key) single-source shortest paths
//		• prim     — key-per-vertex minimum spanning trees
//
// ✨ Design principles:
//
//   - Index-oriented – nodes are dense integers [0..N), no node objects,
//     no hashing on hot paths
//   - Borrowed priorities – the heap reads the caller's slice per call and
//     never stores or mutates a priority
//   - Fail fast – precondition breaches panic with sentinel errors instead
//     of corrupting state; input validation returns sentinels
//   - Pure Go – no cgo; testify and gonum appear in tests only
//
// Quick ASCII example (k-core):
//
//	    0───1
//	     \ /
//	      2───3───4      → core values [2 2 2 1 1]
//
// Start with minheap if you are building your own traversal, or with kcore /
// dijkstra / prim to consume a ready-made one.
package sknetwork

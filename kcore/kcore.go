// Package kcore implements the peeling algorithm described in doc.go.
package kcore

import (
	"errors"

	"github.com/abidlabs/scikit-network/csr"
	"github.com/abidlabs/scikit-network/minheap"
)

var (
	// ErrNilMatrix indicates a nil adjacency matrix.
	ErrNilMatrix = errors.New("kcore: adjacency matrix is nil")
	// ErrBadK indicates a negative core order requested from Core.
	ErrBadK = errors.New("kcore: k must be non-negative")
)

// Decompose computes the core value of every node of the undirected graph
// adj and the core number of the graph (the maximum core value; 0 for an
// empty graph).
//
// Steps:
//  1. Validate: adj non-nil.
//  2. Seed scores with the node degrees and insert every node into the heap.
//  3. Peel: pop the minimum-score node; its core value is the running
//     maximum of popped scores (a popped score can be lower than the current
//     maximum when earlier peels already stripped the node below it).
//  4. For each still-queued neighbor of the peeled node, decrement its score
//     in place and restore heap order with DecreaseKey.
//  5. Repeat until the heap drains; return per-node core values and the max.
//
// Complexity: O(E log n) time, O(n) space.
func Decompose(adj *csr.Matrix) ([]int, int, error) {
	// 1) Validate input.
	if adj == nil {
		return nil, 0, ErrNilMatrix
	}

	n := adj.NumNodes()
	labels := make([]int, n)
	if n == 0 {
		return labels, 0, nil
	}

	// 2) Seed residual degrees and fill the heap. The scores slice is the
	//    caller-side priority array of the heap contract: the loop below
	//    mutates it in place and notifies the heap afterwards.
	scores := make([]float64, n)
	for i, d := range adj.Degrees() {
		scores[i] = float64(d)
	}

	h, err := minheap.New(n)
	if err != nil {
		return nil, 0, err
	}
	for i := 0; i < n; i++ {
		h.Insert(i, scores)
	}

	// 3) Peel from the lowest residual degree upward.
	coreNumber := 0
	var node int
	for !h.Empty() {
		node = h.PopMin(scores)

		// The core value never decreases along the peeling order.
		if c := int(scores[node]); c > coreNumber {
			coreNumber = c
		}
		labels[node] = coreNumber

		// 4) Strip the peeled node from its still-queued neighbors.
		for _, nb := range adj.Neighbors(node) {
			if !h.Contains(nb) {
				continue // already peeled
			}
			scores[nb]--
			h.DecreaseKey(nb, scores)
		}
	}

	// 5) Every node is labeled; coreNumber is the graph's core number.
	return labels, coreNumber, nil
}

// Core returns the identifiers of the nodes in the k-core of adj, ascending.
// The result is empty (non-nil) when the k-core is empty.
//
// Complexity: O(E log n) time (dominated by Decompose).
func Core(adj *csr.Matrix, k int) ([]int, error) {
	if adj == nil {
		return nil, ErrNilMatrix
	}
	if k < 0 {
		return nil, ErrBadK
	}

	labels, _, err := Decompose(adj)
	if err != nil {
		return nil, err
	}

	nodes := make([]int, 0, len(labels))
	for i, c := range labels {
		if c >= k {
			nodes = append(nodes, i)
		}
	}

	return nodes, nil
}

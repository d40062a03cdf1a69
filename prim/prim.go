// Package prim implements the decrease-key MST algorithm described in doc.go.
package prim

import (
	"math"

	"github.com/abidlabs/scikit-network/csr"
	"github.com/abidlabs/scikit-network/minheap"
)

// Prim computes the minimum spanning tree of the undirected, weighted graph
// adj, grown from root.
//
// Steps:
//  1. Validate: adj non-nil, weighted, symmetric; root in range; at least
//     one vertex.
//  2. Initialize per-vertex keys to +Inf, the root's to 0, and seed the heap
//     with the root alone.
//  3. Pop the cheapest attachable vertex, record the edge that attaches it
//     (except for the root), then scan its row: every lighter edge to a
//     vertex outside the tree lowers that vertex's key in place, followed by
//     DecreaseKey (or Insert on first touch).
//  4. After the heap drains, fewer than V-1 edges means some vertex was
//     never reached → ErrDisconnected.
//
// Returns the V-1 MST edges in attachment order and their total weight.
// A single-vertex graph yields an empty edge list and zero weight.
//
// Complexity: O(E log V) time, O(V) space (plus the Symmetric check's O(E log E)).
func Prim(adj *csr.Matrix, root int) ([]Edge, float64, error) {
	// 1) Validate the matrix and root.
	if adj == nil {
		return nil, 0, ErrNilMatrix
	}
	if !adj.Weighted() {
		return nil, 0, ErrUnweighted
	}

	n := adj.NumNodes()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if root < 0 || root >= n {
		return nil, 0, ErrBadRoot
	}
	if !adj.Symmetric() {
		return nil, 0, ErrAsymmetric
	}

	// 2) Keys: lightest known attachment cost per vertex. The slice is the
	//    heap's priority array; parent remembers which tree vertex offered
	//    that cost.
	key := make([]float64, n)
	parent := make([]int, n)
	for i := range key {
		key[i] = math.Inf(1)
		parent[i] = -1
	}
	key[root] = 0

	h, err := minheap.New(n)
	if err != nil {
		return nil, 0, err
	}
	h.Insert(root, key)

	inTree := make([]bool, n)
	mst := make([]Edge, 0, n-1)
	var total float64

	// 3) Grow the tree one vertex per pop.
	var u, v int
	for !h.Empty() {
		u = h.PopMin(key)
		inTree[u] = true

		// The popped key is final: record the attaching edge (root has none).
		if parent[u] != -1 {
			mst = append(mst, Edge{From: parent[u], To: u, Weight: key[u]})
			total += key[u]
		}

		// Offer u's edges to every vertex still outside the tree.
		row := adj.Neighbors(u)
		for j, w := range adj.Weights(u) {
			v = row[j]
			if inTree[v] || w >= key[v] {
				continue // settled, or no improvement (strict keeps ties stable)
			}

			// In-place decrease, then notify the heap.
			key[v] = w
			parent[v] = u
			if h.Contains(v) {
				h.DecreaseKey(v, key)
			} else {
				h.Insert(v, key)
			}
		}
	}

	// 4) Every vertex must have been attached exactly once.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

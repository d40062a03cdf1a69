// Package csr implements the CSR adjacency container described in doc.go.
package csr

import "sort"

// Matrix is an immutable compressed sparse row adjacency matrix.
// Construct with New, FromAdjacency or FromWeighted; the zero value is an
// empty graph with no nodes.
type Matrix struct {
	indptr  []int     // n+1 row offsets, indptr[0] == 0
	indices []int     // neighbor identifiers, grouped by row
	data    []float64 // parallel edge weights; nil for unweighted graphs
}

// New builds a Matrix from raw CSR triples, validating the structure:
//
//  1. indptr non-empty with indptr[0] == 0 (ErrEmptyIndptr).
//  2. Offsets non-decreasing and indptr[n] == len(indices) (ErrBadIndptr).
//  3. Every stored column index within [0, n) (ErrIndexRange).
//  4. data nil, or len(data) == len(indices) (ErrDataLength).
//
// The slices are retained, not copied; callers must not mutate them after.
//
// Complexity: O(n + E) time.
func New(indptr, indices []int, data []float64) (*Matrix, error) {
	// 1) Row offsets must exist and be anchored at zero.
	if len(indptr) < 1 || indptr[0] != 0 {
		return nil, ErrEmptyIndptr
	}

	// 2) Offsets grow monotonically and close over every stored edge.
	for i := 1; i < len(indptr); i++ {
		if indptr[i] < indptr[i-1] {
			return nil, ErrBadIndptr
		}
	}
	if indptr[len(indptr)-1] != len(indices) {
		return nil, ErrBadIndptr
	}

	// 3) Every neighbor identifier must be a valid node.
	n := len(indptr) - 1
	for _, col := range indices {
		if col < 0 || col >= n {
			return nil, ErrIndexRange
		}
	}

	// 4) Weights, when present, pair one-to-one with edges.
	if data != nil && len(data) != len(indices) {
		return nil, ErrDataLength
	}

	return &Matrix{indptr: indptr, indices: indices, data: data}, nil
}

// FromAdjacency builds an unweighted Matrix from per-node neighbor lists:
// adj[i] holds the neighbors of node i. Neighbor identifiers are validated
// against len(adj).
//
// Complexity: O(n + E) time and space.
func FromAdjacency(adj [][]int) (*Matrix, error) {
	indptr := make([]int, len(adj)+1)
	total := 0
	for i, row := range adj {
		total += len(row)
		indptr[i+1] = total
	}

	indices := make([]int, 0, total)
	for _, row := range adj {
		indices = append(indices, row...)
	}

	return New(indptr, indices, nil)
}

// FromWeighted builds a weighted Matrix from parallel neighbor and weight
// lists: weights[i][j] is the weight of the edge adj[i][j]. Ragged rows
// (mismatched lengths) fail with ErrDataLength.
//
// Complexity: O(n + E) time and space.
func FromWeighted(adj [][]int, weights [][]float64) (*Matrix, error) {
	indptr := make([]int, len(adj)+1)
	total := 0
	for i, row := range adj {
		if len(weights) <= i || len(weights[i]) != len(row) {
			return nil, ErrDataLength
		}
		total += len(row)
		indptr[i+1] = total
	}

	indices := make([]int, 0, total)
	data := make([]float64, 0, total)
	for i, row := range adj {
		indices = append(indices, row...)
		data = append(data, weights[i]...)
	}

	return New(indptr, indices, data)
}

// NumNodes returns the number of nodes n.
func (m *Matrix) NumNodes() int {
	if len(m.indptr) == 0 {
		return 0 // zero value: empty graph
	}

	return len(m.indptr) - 1
}

// NumEdges returns the number of stored (directed) edges. An undirected
// graph stores each edge twice.
func (m *Matrix) NumEdges() int { return len(m.indices) }

// Weighted reports whether the matrix carries edge weights.
func (m *Matrix) Weighted() bool { return m.data != nil }

// Degree returns the out-degree of node i (row length).
// Panics with ErrNodeRange for identifiers outside [0, NumNodes()).
func (m *Matrix) Degree(i int) int {
	m.checkNode(i)

	return m.indptr[i+1] - m.indptr[i]
}

// Degrees returns the out-degree of every node in a freshly allocated slice.
//
// Complexity: O(n).
func (m *Matrix) Degrees() []int {
	deg := make([]int, m.NumNodes())
	for i := range deg {
		deg[i] = m.indptr[i+1] - m.indptr[i]
	}

	return deg
}

// Neighbors returns the neighbor identifiers of node i as a subslice of the
// underlying storage — no copy; callers must not mutate it.
// Panics with ErrNodeRange for identifiers outside [0, NumNodes()).
func (m *Matrix) Neighbors(i int) []int {
	m.checkNode(i)

	return m.indices[m.indptr[i]:m.indptr[i+1]]
}

// Weights returns the edge weights of node i's row, parallel to Neighbors(i),
// as a subslice of the underlying storage. Returns nil for unweighted
// matrices. Panics with ErrNodeRange for identifiers outside [0, NumNodes()).
func (m *Matrix) Weights(i int) []float64 {
	m.checkNode(i)
	if m.data == nil {
		return nil
	}

	return m.data[m.indptr[i]:m.indptr[i+1]]
}

// Symmetric reports whether every stored edge (u, v, w) has a mirror
// (v, u, w) — i.e. whether the matrix represents an undirected graph.
// Parallel edges are matched by multiplicity.
//
// Complexity: O(E log E) time, O(E) space.
func (m *Matrix) Symmetric() bool {
	type arc struct {
		from, to int
		weight   float64
	}

	// Materialize the edge list and its transpose, then compare as multisets.
	forward := make([]arc, 0, len(m.indices))
	mirror := make([]arc, 0, len(m.indices))
	for u := 0; u < m.NumNodes(); u++ {
		row := m.indices[m.indptr[u]:m.indptr[u+1]]
		for j, v := range row {
			w := 0.0
			if m.data != nil {
				w = m.data[m.indptr[u]+j]
			}
			forward = append(forward, arc{u, v, w})
			mirror = append(mirror, arc{v, u, w})
		}
	}

	less := func(s []arc) func(a, b int) bool {
		return func(a, b int) bool {
			if s[a].from != s[b].from {
				return s[a].from < s[b].from
			}
			if s[a].to != s[b].to {
				return s[a].to < s[b].to
			}

			return s[a].weight < s[b].weight
		}
	}
	sort.Slice(forward, less(forward))
	sort.Slice(mirror, less(mirror))

	for i := range forward {
		if forward[i] != mirror[i] {
			return false
		}
	}

	return true
}

// checkNode panics with ErrNodeRange when i is not a valid node identifier.
func (m *Matrix) checkNode(i int) {
	if i < 0 || i >= m.NumNodes() {
		panic(ErrNodeRange)
	}
}

package prim_test

import (
	"math/rand"
	"testing"

	"github.com/abidlabs/scikit-network/csr"
	"github.com/abidlabs/scikit-network/prim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// link is an undirected, weighted test edge.
type link struct {
	u, v   int
	weight float64
}

// buildSymmetric stores every link in both rows of a weighted csr.Matrix.
func buildSymmetric(t testing.TB, n int, links []link) *csr.Matrix {
	t.Helper()

	adj := make([][]int, n)
	weights := make([][]float64, n)
	for _, l := range links {
		adj[l.u] = append(adj[l.u], l.v)
		weights[l.u] = append(weights[l.u], l.weight)
		adj[l.v] = append(adj[l.v], l.u)
		weights[l.v] = append(weights[l.v], l.weight)
	}
	m, err := csr.FromWeighted(adj, weights)
	require.NoError(t, err)

	return m
}

// TestPrim_Validation exercises every sentinel in order.
func TestPrim_Validation(t *testing.T) {
	// 1. Nil matrix.
	_, _, err := prim.Prim(nil, 0)
	assert.ErrorIs(t, err, prim.ErrNilMatrix)

	// 2. Unweighted matrix.
	plain, err := csr.FromAdjacency([][]int{{1}, {0}})
	require.NoError(t, err)
	_, _, err = prim.Prim(plain, 0)
	assert.ErrorIs(t, err, prim.ErrUnweighted)

	// 3. Zero vertices: no spanning tree exists.
	empty, err := csr.New([]int{0}, nil, []float64{})
	require.NoError(t, err)
	_, _, err = prim.Prim(empty, 0)
	assert.ErrorIs(t, err, prim.ErrDisconnected)

	// 4. Root out of range.
	m := buildSymmetric(t, 2, []link{{0, 1, 1}})
	_, _, err = prim.Prim(m, 2)
	assert.ErrorIs(t, err, prim.ErrBadRoot)
	_, _, err = prim.Prim(m, -1)
	assert.ErrorIs(t, err, prim.ErrBadRoot)

	// 5. Directed (asymmetric) storage.
	oneWay, err := csr.FromWeighted([][]int{{1}, {}}, [][]float64{{1}, {}})
	require.NoError(t, err)
	_, _, err = prim.Prim(oneWay, 0)
	assert.ErrorIs(t, err, prim.ErrAsymmetric)
}

// TestPrim_SingleVertex returns the trivial empty MST.
func TestPrim_SingleVertex(t *testing.T) {
	m := buildSymmetric(t, 1, nil)

	edges, total, err := prim.Prim(m, 0)
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)
}

// TestPrim_Triangle drops the heaviest edge of a triangle.
//
//	0—1 (1), 1—2 (2), 0—2 (3) → MST {0—1, 1—2}, weight 3.
func TestPrim_Triangle(t *testing.T) {
	m := buildSymmetric(t, 3, []link{{0, 1, 1}, {1, 2, 2}, {0, 2, 3}})

	edges, total, err := prim.Prim(m, 0)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, total, 1e-12)
	assert.Equal(t, []prim.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
	}, edges, "edges are reported in attachment order")
}

// TestPrim_DecreaseKeyAttachment forces a queued vertex to switch parents
// when a lighter attachment appears (the decrease-key path).
func TestPrim_DecreaseKeyAttachment(t *testing.T) {
	// From root 0, vertex 2 is first reachable at weight 5 (0—2), but once
	// vertex 1 joins, 1—2 offers weight 1 and must win.
	m := buildSymmetric(t, 3, []link{{0, 1, 2}, {0, 2, 5}, {1, 2, 1}})

	edges, total, err := prim.Prim(m, 0)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, total, 1e-12)
	assert.Equal(t, []prim.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 2, Weight: 1},
	}, edges)
}

// TestPrim_RootIndependentWeight verifies that every root yields the same
// total weight on a graph with a unique MST.
func TestPrim_RootIndependentWeight(t *testing.T) {
	m := buildSymmetric(t, 5, []link{
		{0, 1, 4}, {0, 2, 1}, {1, 2, 3},
		{1, 3, 2}, {2, 4, 6}, {3, 4, 5},
	})

	for root := 0; root < 5; root++ {
		edges, total, err := prim.Prim(m, root)
		require.NoError(t, err)
		assert.Len(t, edges, 4)
		assert.InDelta(t, 11.0, total, 1e-12, "root %d", root)
	}
}

// TestPrim_Disconnected detects a vertex no edge can reach.
func TestPrim_Disconnected(t *testing.T) {
	// Component {0,1} plus isolated vertex 2.
	m := buildSymmetric(t, 3, []link{{0, 1, 1}})

	_, _, err := prim.Prim(m, 0)
	assert.ErrorIs(t, err, prim.ErrDisconnected)
}

// TestPrim_NegativeWeights accepts negative edges (legal for MST, unlike
// shortest paths).
func TestPrim_NegativeWeights(t *testing.T) {
	m := buildSymmetric(t, 3, []link{{0, 1, -2}, {1, 2, 4}, {0, 2, -1}})

	edges, total, err := prim.Prim(m, 0)
	require.NoError(t, err)
	assert.Len(t, edges, 2)
	assert.InDelta(t, -3.0, total, 1e-12, "MST keeps both negative edges")
}

// TestPrim_RandomSpanningProperties checks structural MST properties on
// randomized connected graphs: V-1 edges, every vertex covered exactly once
// as an attachment target, total equal to the sum of reported weights.
func TestPrim_RandomSpanningProperties(t *testing.T) {
	const n = 200

	r := rand.New(rand.NewSource(99))

	// Random connected graph: a scrambled spine plus random chords.
	perm := r.Perm(n)
	links := make([]link, 0, 4*n)
	for i := 1; i < n; i++ {
		links = append(links, link{perm[i-1], perm[i], 1 + r.Float64()*9})
	}
	seen := make(map[[2]int]bool, 4*n)
	for len(links) < 4*n {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		if u > v {
			u, v = v, u
		}
		if seen[[2]int{u, v}] {
			continue
		}
		seen[[2]int{u, v}] = true
		links = append(links, link{u, v, 1 + r.Float64()*9})
	}
	m := buildSymmetric(t, n, links)

	edges, total, err := prim.Prim(m, 0)
	require.NoError(t, err)
	require.Len(t, edges, n-1)

	attached := make([]bool, n)
	attached[0] = true // the root joins without an edge
	sum := 0.0
	for _, e := range edges {
		assert.True(t, attached[e.From], "From side must already be in the tree")
		assert.False(t, attached[e.To], "each vertex attaches exactly once")
		attached[e.To] = true
		sum += e.Weight
	}
	assert.InDelta(t, sum, total, 1e-9)
	for v, ok := range attached {
		assert.True(t, ok, "vertex %d must be spanned", v)
	}
}

package kcore_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/abidlabs/scikit-network/csr"
	"github.com/abidlabs/scikit-network/kcore"
)

// randomSymmetric builds a random undirected graph with n nodes and roughly
// edges distinct edges, reproducibly seeded.
func randomSymmetric(b *testing.B, n, edges int) *csr.Matrix {
	b.Helper()

	r := rand.New(rand.NewSource(42))
	adj := make([][]int, n)
	seen := make(map[[2]int]bool, edges)
	for added := 0; added < edges; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue // no loops in the benchmark graph
		}
		if u > v {
			u, v = v, u
		}
		if seen[[2]int{u, v}] {
			continue
		}
		seen[[2]int{u, v}] = true
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
		added++
	}

	m, err := csr.FromAdjacency(adj)
	if err != nil {
		b.Fatalf("FromAdjacency failed: %v", err)
	}

	return m
}

// BenchmarkDecompose measures peeling across grown graph sizes (E = 8·n).
func BenchmarkDecompose(b *testing.B) {
	for _, n := range []int{1_000, 10_000, 100_000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := randomSymmetric(b, n, 8*n)

			b.ResetTimer() // ignore graph construction
			for i := 0; i < b.N; i++ {
				if _, _, err := kcore.Decompose(m); err != nil {
					b.Fatalf("Decompose failed: %v", err)
				}
			}
		})
	}
}

// Package dijkstra implements the eager decrease-key algorithm described in
// doc.go.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/abidlabs/scikit-network/csr"
	"github.com/abidlabs/scikit-network/minheap"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of the weighted graph adj.
//
// Returns:
//
//   - dist: per-vertex distance from the source; math.Inf(1) if unreachable
//     (or beyond MaxDistance).
//   - prev: predecessor slice when WithReturnPath is set, nil otherwise.
//     prev[v] == u means a shortest path to v arrives from u; -1 marks the
//     source and unreachable vertices.
//   - err:  a sentinel (possibly wrapped) when validation fails.
//
// Preconditions and validation (in order):
//  1. adj must be non-nil (ErrNilMatrix).
//  2. adj must be weighted (ErrUnweighted).
//  3. Source must be a valid vertex (ErrBadSource).
//  4. No stored weight may be negative (ErrNegativeWeight, wrapped with the
//     offending edge).
//
// Complexity: O((V + E) log V) time, O(V) space.
func Dijkstra(adj *csr.Matrix, opts ...Option) ([]float64, []int, error) {
	// 1) Build Options from defaults plus caller overrides.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the matrix.
	if adj == nil {
		return nil, nil, ErrNilMatrix
	}
	if !adj.Weighted() {
		return nil, nil, ErrUnweighted
	}

	// 3) Validate the source vertex.
	n := adj.NumNodes()
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, nil, ErrBadSource
	}

	// 4) Pre-scan all edges for negative weights; fail fast with context.
	for u := 0; u < n; u++ {
		row := adj.Neighbors(u)
		for j, w := range adj.Weights(u) {
			if w < 0 {
				return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, u, row[j], w)
			}
		}
	}

	// 5) Run the traversal.
	r, err := newRunner(adj, cfg)
	if err != nil {
		return nil, nil, err
	}
	r.process()

	// 6) Hand back the predecessor slice only when requested.
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state of a single Dijkstra execution.
type runner struct {
	adj  *csr.Matrix   // input graph; read-only during the run
	cfg  Options       // resolved configuration
	dist []float64     // tentative distances; ALSO the heap's priority array
	prev []int         // predecessor per vertex, -1 when none
	done []bool        // vertex finalized (popped) already
	h    *minheap.Heap // indexed heap keyed by dist
}

// newRunner allocates the per-run state and seeds the source.
func newRunner(adj *csr.Matrix, cfg Options) (*runner, error) {
	n := adj.NumNodes()

	// Distances start at +Inf; the source at 0.
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[cfg.Source] = 0

	// Predecessors start at -1 (none).
	prev := make([]int, n)
	for i := range prev {
		prev[i] = -1
	}

	h, err := minheap.New(n)
	if err != nil {
		return nil, err
	}

	r := &runner{adj: adj, cfg: cfg, dist: dist, prev: prev, done: make([]bool, n), h: h}

	// Seed the frontier with the source. Other vertices enter the heap the
	// first time a relaxation reaches them, so the heap tracks the frontier
	// rather than the whole vertex set.
	r.h.Insert(cfg.Source, r.dist)

	return r, nil
}

// process pops the closest frontier vertex, finalizes it, and relaxes its
// outgoing edges, until the frontier drains or exceeds MaxDistance.
func (r *runner) process() {
	var u int
	for !r.h.Empty() {
		// 1) The heap's minimum is final: every alternative route would pass
		//    through a vertex at least as far away.
		u = r.h.PopMin(r.dist)

		// 2) Beyond the exploration bound nothing closer remains; stop.
		if r.dist[u] > r.cfg.MaxDistance {
			r.dist[u] = math.Inf(1) // not finalized; report unreachable
			r.prev[u] = -1
			continue
		}
		r.done[u] = true

		// 3) Relax u's outgoing edges.
		r.relax(u)
	}
}

// relax improves the tentative distance of u's neighbors, writing dist in
// place and re-ordering the heap via DecreaseKey (or Insert on first touch).
func (r *runner) relax(u int) {
	row := r.adj.Neighbors(u)
	weights := r.adj.Weights(u)

	var v int
	var candidate float64
	for j, w := range weights {
		v = row[j]
		if r.done[v] {
			continue // already finalized; cannot improve
		}

		candidate = r.dist[u] + w
		if candidate >= r.dist[v] {
			continue // not an improvement; strict to avoid pointless sifts
		}

		// In-place decrease, then notify the heap — the heap never writes
		// priorities itself.
		r.dist[v] = candidate
		r.prev[v] = u
		if r.h.Contains(v) {
			r.h.DecreaseKey(v, r.dist)
		} else {
			r.h.Insert(v, r.dist)
		}
	}
}

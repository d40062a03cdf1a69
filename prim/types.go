// Package prim defines the result type and sentinel errors of the MST
// implementation.
package prim

import "errors"

var (
	// ErrNilMatrix indicates a nil adjacency matrix.
	ErrNilMatrix = errors.New("prim: adjacency matrix is nil")
	// ErrUnweighted indicates a matrix without edge weights; an MST is
	// meaningless without them.
	ErrUnweighted = errors.New("prim: adjacency matrix must be weighted")
	// ErrAsymmetric indicates directed storage: some stored edge has no
	// equal-weight mirror, so the matrix is not an undirected graph.
	ErrAsymmetric = errors.New("prim: adjacency matrix must be symmetric")
	// ErrBadRoot indicates a root vertex outside [0, NumNodes()).
	ErrBadRoot = errors.New("prim: root vertex out of range")
	// ErrDisconnected indicates that no spanning tree covers every vertex:
	// the graph is empty or not connected.
	ErrDisconnected = errors.New("prim: graph is disconnected")
)

// Edge is one MST edge, oriented from the tree side (From) toward the vertex
// it attached (To).
type Edge struct {
	From   int     // tree-side endpoint
	To     int     // newly attached vertex
	Weight float64 // weight of the chosen edge
}

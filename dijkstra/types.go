// Package dijkstra defines the configuration options and sentinel errors of
// the shortest-path implementation.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilMatrix indicates that a nil *csr.Matrix was passed.
	ErrNilMatrix = errors.New("dijkstra: adjacency matrix is nil")

	// ErrUnweighted indicates a matrix without edge weights; Dijkstra
	// requires weighted edges to order the queue.
	ErrUnweighted = errors.New("dijkstra: adjacency matrix must be weighted")

	// ErrBadSource indicates a source vertex outside [0, NumNodes()).
	ErrBadSource = errors.New("dijkstra: source vertex out of range")

	// ErrNegativeWeight indicates a negative edge weight, detected by the
	// O(E) pre-scan before any traversal state is built.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates a negative MaxDistance; panicked by
	// WithMaxDistance, never returned.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures a Dijkstra run.
//
// Source      – starting vertex (must be a valid node of the matrix).
// ReturnPath  – if true, return the predecessor slice; otherwise prev is nil.
// MaxDistance – vertices whose final distance exceeds this bound are not
// finalized or relaxed. Must be ≥ 0. Default math.Inf(1) (no cap).
type Options struct {
	Source      int     // starting vertex identifier
	ReturnPath  bool    // whether to return the predecessor slice
	MaxDistance float64 // exploration bound; +Inf disables it
}

// Option is a functional option mutating Options.
type Option func(*Options)

// Source sets the starting vertex. Required: the default (-1) fails
// validation with ErrBadSource.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithReturnPath enables the predecessor slice in the result.
// prev[v] is the vertex preceding v on a shortest path, -1 for the source
// and for unreachable vertices.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance bounds exploration: vertices farther than max from the
// source are left at +Inf. Panics with ErrBadMaxDistance when max < 0;
// an invalid bound is a configuration bug, surfaced at option time.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance)
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns the baseline configuration:
//
//   - Source:      -1 (must be overridden via Source)
//   - ReturnPath:  false
//   - MaxDistance: +Inf (explore everything reachable)
func DefaultOptions() Options {
	return Options{
		Source:      -1,
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
	}
}

package csr

import "errors"

var (
	// ErrEmptyIndptr indicates an indptr with no rows (length < 1) or a
	// first offset different from zero.
	ErrEmptyIndptr = errors.New("csr: indptr must start at 0 and have at least one entry")
	// ErrBadIndptr indicates non-monotone offsets, or a final offset that
	// does not equal the number of stored edges.
	ErrBadIndptr = errors.New("csr: indptr offsets must be non-decreasing and end at len(indices)")
	// ErrIndexRange indicates a stored column index outside [0, n).
	ErrIndexRange = errors.New("csr: column index out of range")
	// ErrDataLength indicates a weight slice whose length differs from the
	// number of stored edges.
	ErrDataLength = errors.New("csr: data length must equal len(indices)")
	// ErrNodeRange indicates an accessor called with a node identifier
	// outside [0, n). Panicked, not returned: a caller bug, not input data.
	ErrNodeRange = errors.New("csr: node identifier out of range")
)

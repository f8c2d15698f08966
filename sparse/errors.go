// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set for the format contracts.
// Kernel packages return these sentinels (optionally wrapped with context
// via fmt.Errorf("...: %w", Err)); tests match them with errors.Is.

package sparse

import "errors"

var (
	// ErrNilMatrix is returned when a nil matrix pointer is passed to a
	// kernel or validator.
	ErrNilMatrix = errors.New("sparse: matrix is nil")

	// ErrBadRowPointer indicates a malformed row-pointer array: wrong
	// length, Ap[0] != 0, or a decreasing entry.
	ErrBadRowPointer = errors.New("sparse: malformed row pointer")

	// ErrIndexOutOfRange indicates a column index outside [0, cols).
	ErrIndexOutOfRange = errors.New("sparse: column index out of range")

	// ErrShapeMismatch indicates incompatible matrix dimensions between
	// operands, or a non-square matrix where a square one is required.
	ErrShapeMismatch = errors.New("sparse: shape mismatch")

	// ErrBlockShape indicates an invalid or incompatible BSR block shape.
	ErrBlockShape = errors.New("sparse: invalid block shape")

	// ErrCapacity indicates a caller-provided output matrix with less
	// physical storage than the documented upper bound requires.
	ErrCapacity = errors.New("sparse: insufficient output capacity")

	// ErrBufferLength indicates a caller-provided value buffer whose length
	// does not match what the kernel documents.
	ErrBufferLength = errors.New("sparse: buffer has wrong length")

	// ErrEmptyLattice indicates a lattice constructor called with a
	// non-positive extent.
	ErrEmptyLattice = errors.New("sparse: lattice extent must be positive")
)

// SPDX-License-Identifier: MIT
// Package sparse: canonical structural validators.
// Validators return plain sentinels wrapped with a short locating context;
// kernels call them once up front and then run as total functions.

package sparse

import "fmt"

// Validate checks the CSR format contract: row-pointer shape and
// monotonicity, column-index range, and value-buffer capacity.
// Complexity: O(rows + nnz).
func (m *CSR[I, T]) Validate() error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.Rows < 0 || m.Cols < 0 {
		return fmt.Errorf("negative dimension %dx%d: %w", m.Rows, m.Cols, ErrShapeMismatch)
	}
	if err := validatePointer(m.Ap, m.Rows); err != nil {
		return err
	}
	nnz := int(m.Ap[m.Rows])
	if len(m.Aj) < nnz || len(m.Ax) < nnz {
		return fmt.Errorf("nnz %d exceeds storage (%d indices, %d values): %w",
			nnz, len(m.Aj), len(m.Ax), ErrCapacity)
	}
	return validateIndices(m.Aj[:nnz], m.Cols)
}

// Validate checks the BSR format contract: block shape, row-pointer shape
// and monotonicity, block-column range, and block-value capacity.
// Complexity: O(blockRows + nnzb).
func (m *BSR[I, T]) Validate() error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.R < 1 || m.C < 1 {
		return fmt.Errorf("block shape %dx%d: %w", m.R, m.C, ErrBlockShape)
	}
	if m.BlockRows < 0 || m.BlockCols < 0 {
		return fmt.Errorf("negative dimension %dx%d: %w", m.BlockRows, m.BlockCols, ErrShapeMismatch)
	}
	if err := validatePointer(m.Ap, m.BlockRows); err != nil {
		return err
	}
	nnzb := int(m.Ap[m.BlockRows])
	if len(m.Aj) < nnzb || len(m.Ax) < nnzb*m.R*m.C {
		return fmt.Errorf("nnzb %d exceeds storage (%d indices, %d values): %w",
			nnzb, len(m.Aj), len(m.Ax), ErrCapacity)
	}
	return validateIndices(m.Aj[:nnzb], m.BlockCols)
}

// ValidateBufferLen checks a caller-provided kernel buffer against its
// documented minimum length. Oversized buffers are fine; short ones are not.
func ValidateBufferLen(name string, got, want int) error {
	if got < want {
		return fmt.Errorf("%s: got %d, need %d: %w", name, got, want, ErrBufferLength)
	}
	return nil
}

// validatePointer checks a row-pointer array of the given row count:
// length, leading zero, and monotone nondecrease.
func validatePointer[I Index](ap []I, rows int) error {
	if len(ap) != rows+1 {
		return fmt.Errorf("pointer length %d for %d rows: %w", len(ap), rows, ErrBadRowPointer)
	}
	if ap[0] != 0 {
		return fmt.Errorf("Ap[0] = %d: %w", ap[0], ErrBadRowPointer)
	}
	for i := 0; i < rows; i++ {
		if ap[i+1] < ap[i] {
			return fmt.Errorf("Ap decreases at row %d: %w", i, ErrBadRowPointer)
		}
	}
	return nil
}

// validateIndices checks that every column index lies in [0, cols).
func validateIndices[I Index](aj []I, cols int) error {
	for p, j := range aj {
		if j < 0 || int(j) >= cols {
			return fmt.Errorf("Aj[%d] = %d with %d columns: %w", p, j, cols, ErrIndexOutOfRange)
		}
	}
	return nil
}

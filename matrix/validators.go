// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    match them with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Handles both a nil interface and a typed nil *Dense.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRowStochastic – Composite: NotNil → Square → finite, non-negative
// entries whose rows sum to 1 within eps.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrNotRowStochastic.
// Complexity: O(n²).
func ValidateRowStochastic(m Matrix, opts ...Option) error {
	const tag = "ValidateRowStochastic"
	if err := ValidateSquareNonNil(m); err != nil {
		return validatorErrorf(tag, err)
	}
	o := gatherOptions(opts...)

	n := m.Rows()
	var i, j int
	var v float64
	var err error
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf(tag, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(tag, denseErrorf(ctxAt, i, j, ErrNaNInf))
			}
			if v < 0 {
				return validatorErrorf(tag, fmt.Errorf("row %d col %d = %g: %w", i, j, v, ErrNotRowStochastic))
			}
		}
	}
	sums, err := RowSums(m)
	if err != nil {
		return validatorErrorf(tag, err)
	}
	for i, sum := range sums {
		if math.Abs(sum-1) > o.eps {
			return validatorErrorf(tag, fmt.Errorf("row %d sums to %g: %w", i, sum, ErrNotRowStochastic))
		}
	}

	return nil
}

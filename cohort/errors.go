// SPDX-License-Identifier: MIT

package cohort

import "errors"

var (
	// ErrInvalidShape indicates a non-positive class, sex or region count.
	ErrInvalidShape = errors.New("cohort: dimensions must be > 0")

	// ErrRagged indicates nested input whose inner lengths disagree.
	ErrRagged = errors.New("cohort: ragged nested input")

	// ErrShapeMismatch indicates two containers that must agree in shape do not.
	ErrShapeMismatch = errors.New("cohort: shape mismatch")
)

// SPDX-License-Identifier: MIT

// Package matrix offers a small dense linear-algebra surface used by the
// stock-dynamics engine for regional transition matrices.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe At/Set accessors.
//   - Validators for shape, squareness and row-stochastic structure.
//   - MatVec (column vector) and VecMat (row vector) products, RowSums.
//
// Migration moves a per-class abundance row vector x (one entry per region)
// through a region×region matrix M as x' = x·M, so VecMat is the hot kernel.
// Each row of M is a probability distribution over destination regions,
// which ValidateRowStochastic enforces at ingestion time.
//
// Complexity:
//
//	At/Set are O(1); VecMat and MatVec are O(r*c); Clone is O(r*c).
package matrix

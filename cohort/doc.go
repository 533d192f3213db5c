// SPDX-License-Identifier: MIT

// Package cohort defines the dense containers the stock-dynamics engine
// computes on.
//
// What & Why:
//
//	Tensor is the population state N[class][sex][region] for one timestep.
//	Table is a per-(class, sex) coefficient table such as vulnerability,
//	maturity, weight, fecundity or stage duration.
//
//	Both are flat, row-major float64 buffers. They deliberately accept NaN
//	and ±Inf: structurally degenerate cells (survival ≥ 1, zero duration)
//	produce undefined values that must flow through the model untouched so
//	downstream consumers can mask them.
//
// Layout:
//
//	Tensor offset = (c*sexes + s)*regions + r, so Row(c, s) is a contiguous
//	region vector and can be handed to vector kernels without copying.
//
// Accessors panic on out-of-range indices the way slice indexing does;
// shapes are fixed by the parameter record and validated before any
// computation runs.
package cohort

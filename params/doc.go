// SPDX-License-Identifier: MIT

// Package params holds the Parameter Record and SimulationConfig consumed by
// the stock-dynamics engine, and the single validation pass that runs before
// any timestep executes.
//
// Ingestion contract:
//
//	Record   — class/region names and the raw coefficient tables in the
//	           orientation an external tabular layer produces them
//	           (Survnaturalfrac[class][sex][region], per-sex rows of
//	           per-class values, per-region vectors, migration tables keyed
//	           by class name).
//	Config   — the flat run configuration (population type, recruitment
//	           theory, units, horizon, coefficients, feature flags).
//	Validate — one eager pass: a run either fully validates or never starts.
//	Normalize— validated, sex-broadcast, class-indexed Tables.
//
// Errors are sentinels (ErrMissingParameter, ErrRangeViolation, ErrShape,
// ErrInvalidConfig) wrapped in a *FieldError naming the offending field.
//
// Scenario files (Config + Record) are YAML; Encode/Decode round-trip every
// table bit-for-bit.
package params

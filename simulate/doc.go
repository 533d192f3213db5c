// SPDX-License-Identifier: MIT

// Package simulate drives a complete run: it validates the parameter
// record, builds the run's read-only components, and steps the population
// through time.
//
// A run moves through the phases
//
//	Uninitialized → [Equilibrating] → Running → Done
//
// with Failed reachable from any non-terminal phase. Equilibrating applies
// only to stage-based populations: the cycle runs for a fixed number of
// unrecorded warm-up steps, and a fresh copy of the result becomes N[0].
//
// Run is synchronous and allocates everything it mutates, so independent
// runs may execute concurrently. Batch does exactly that over a bounded
// worker pool.
package simulate

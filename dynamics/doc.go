// SPDX-License-Identifier: MIT

// Package dynamics builds the generation-0 population and advances it one
// timestep at a time.
//
// Initial seeds the first class with dispersal[r]·total_init_recruits/sexes.
// Stage-based populations put a 1.0 placeholder in every other cell, to be
// dissolved by an equilibration phase. Age-based populations chain survival
// down the interior ages and close the terminal plus group with the
// geometric series
//
//	N[n−1] = N[n−2]·S[n−2] / (1 − S[n−1])
//
// Cycle.Step is a pure transition N[t−1] → N[t]: recruitment from N[t−1],
// aging (age-based) or graduation/stasis (stage-based), first class
// overwritten by recruits, then migration.
package dynamics

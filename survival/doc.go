// SPDX-License-Identifier: MIT

// Package survival derives per-cohort survival and, for stage-based runs,
// graduation/stasis probabilities.
//
// Total survival combines natural survival with fishing mortality:
//
//	S[c,s,r] = natural[c,s,r] · (1 − vulnerability[c,s] · exploitation[r])
//
// Stage-based cohorts spend an expected D steps in a stage. Under constant
// per-step survival S the probability of graduating this step and the
// probability of staying are
//
//	G = S^D·(1−S) / (1−S^D)
//	P = S·(1−S^(D−1)) / (1−S^D)
//
// Neither formula is clamped or guarded. When S^D = 1 (S = 1, or D = 0)
// both are NaN; this marks structurally undefined cells that downstream
// consumers mask on purpose, so the IEEE value is returned as is.
package survival

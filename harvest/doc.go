// SPDX-License-Identifier: MIT

// Package harvest computes catch and its monetary value from a standing
// population.
//
//	harvest[r] = Σ_{c,s} N[c,s,r] · vulnerability[c,s] · exploitation[r] (· weight[c,s])
//	value[r]   = harvest[r] · frac_post_process · unit_price
//
// The weight factor applies when harvest units are Weight. Value is a zero
// vector when valuation is disabled. NaN cells propagate into the affected
// region; NaNSafeSum is the masked reduction for reporting.
package harvest

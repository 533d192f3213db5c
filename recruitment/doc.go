// SPDX-License-Identifier: MIT

// Package recruitment converts spawning output into new first-class
// recruits per region.
//
// Every strategy starts from the spawning output
//
//	spawners = Σ_{c,s,r} N[c,s,r] · maturity[c,s] · w[c,s]
//
// where w is the weight table when spawn units are Weight, 1 when they are
// Individuals, and the fecundity table for the Fecundity theory. Recruits
// are split across regions by larval dispersal and divided evenly between
// sexes:
//
//	BevertonHolt: dispersal[r] · α·spawners/(β+spawners) / sexes
//	Ricker:       dispersal[r] · α·spawners/sexes · e^(−β·spawners)
//	Fecundity:    dispersal[r] · spawners / sexes
//	Fixed:        dispersal[r] · total_recur_recruits / sexes
//
// A caller-supplied Func plugs in any other theory; it is used exactly like
// a built-in Policy.
package recruitment

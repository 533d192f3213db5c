// SPDX-License-Identifier: MIT

// Package habitat adjusts natural survival for a habitat-change scenario.
//
// Each class depends on zero or more habitats with a weight in [0,1]; each
// habitat's area changes by a fraction in [−1, +∞) per region. For class c
// and region r the mean weighted change over the habitats the class depends
// on is
//
//	m[c,r] = Σ_{h: dep[h,c]>0} dep[h,c]·chg[h,r] / |{h: dep[h,c]>0}|
//
// and survival becomes S'[c,s,r] = S[c,s,r]·(1 + γ·m[c,r]). Classes with no
// habitat dependency keep their survival. The result is not clamped: an
// expanding habitat can push survival to or past 1, which the rest of the
// engine treats as a structurally degenerate cell.
package habitat

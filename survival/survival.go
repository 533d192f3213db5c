// SPDX-License-Identifier: MIT

package survival

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/fisheries/cohort"
)

// ErrShape indicates inputs whose class, sex or region axes disagree.
var ErrShape = errors.New("survival: shape mismatch")

// Total returns S = natural·(1 − vulnerability·exploitation), cell by cell.
// Results may be negative when inputs leave their documented ranges.
// Complexity: O(C·S·R).
func Total(natural *cohort.Tensor, vulnerability *cohort.Table, exploitation []float64) (*cohort.Tensor, error) {
	classes, sexes, regions := natural.Shape()
	if vc, vs := vulnerability.Shape(); vc != classes || vs != sexes {
		return nil, fmt.Errorf("vulnerability %dx%d vs survival %dx%d: %w", vc, vs, classes, sexes, ErrShape)
	}
	if len(exploitation) != regions {
		return nil, fmt.Errorf("exploitation has %d regions, want %d: %w", len(exploitation), regions, ErrShape)
	}

	out := natural.Clone()
	for c := 0; c < classes; c++ {
		for s := 0; s < sexes; s++ {
			v := vulnerability.At(c, s)
			row := out.Row(c, s)
			for r := range row {
				row[r] *= 1 - v*exploitation[r]
			}
		}
	}

	return out, nil
}

// GrowthAndStasis returns the graduation (G) and stasis (P) probabilities
// for every (class, sex, region) cell of total survival S, using the
// class/sex stage duration D.
// Complexity: O(C·S·R).
func GrowthAndStasis(total *cohort.Tensor, duration *cohort.Table) (g, p *cohort.Tensor, err error) {
	classes, sexes, _ := total.Shape()
	if dc, ds := duration.Shape(); dc != classes || ds != sexes {
		return nil, nil, fmt.Errorf("duration %dx%d vs survival %dx%d: %w", dc, ds, classes, sexes, ErrShape)
	}

	g = total.Clone()
	p = total.Clone()
	for c := 0; c < classes; c++ {
		for s := 0; s < sexes; s++ {
			d := duration.At(c, s)
			gRow, pRow := g.Row(c, s), p.Row(c, s)
			for r, sv := range total.Row(c, s) {
				gRow[r], pRow[r] = Probabilities(sv, d)
			}
		}
	}

	return g, p, nil
}

// Probabilities evaluates G and P for one survival value and stage duration.
func Probabilities(s, d float64) (g, p float64) {
	sd := math.Pow(s, d)
	denom := 1 - sd
	if denom == 0 {
		return math.NaN(), math.NaN()
	}
	g = sd * (1 - s) / denom
	p = s * (1 - math.Pow(s, d-1)) / denom

	return g, p
}

// SPDX-License-Identifier: MIT

package dynamics

import (
	"fmt"

	"github.com/katalvlaran/fisheries/cohort"
	"github.com/katalvlaran/fisheries/params"
)

// StagePlaceholder seeds every non-first stage-based cell before equilibration.
const StagePlaceholder = 1.0

// Initial builds N[0] for the given population type.
// total is the fishing-adjusted survival; it is read only for age-based runs.
// Complexity: O(C·S·R).
func Initial(pt params.PopulationType, total *cohort.Tensor, dispersal []float64, initRecruits float64) (*cohort.Tensor, error) {
	classes, sexes, regions := total.Shape()
	if len(dispersal) != regions {
		return nil, fmt.Errorf("dispersal has %d regions, want %d: %w", len(dispersal), regions, ErrShape)
	}
	n, err := cohort.NewTensor(classes, sexes, regions)
	if err != nil {
		return nil, err
	}

	for s := 0; s < sexes; s++ {
		row := n.Row(0, s)
		for r := range row {
			row[r] = dispersal[r] * initRecruits / float64(sexes)
		}
	}

	switch pt {
	case params.StageBased:
		for c := 1; c < classes; c++ {
			for s := 0; s < sexes; s++ {
				row := n.Row(c, s)
				for r := range row {
					row[r] = StagePlaceholder
				}
			}
		}
	case params.AgeBased:
		last := classes - 1
		for c := 1; c < last; c++ {
			age(n, total, c)
		}
		if last > 0 {
			for s := 0; s < sexes; s++ {
				prev, self, out := n.Row(last-1, s), total.Row(last, s), n.Row(last, s)
				sPrev := total.Row(last-1, s)
				for r := range out {
					out[r] = prev[r] * sPrev[r] / (1 - self[r])
				}
			}
		}
	default:
		return nil, fmt.Errorf("dynamics: population type %s: %w", pt, params.ErrInvalidConfig)
	}

	return n, nil
}

// age sets class c to class c−1 times its survival, for every sex.
func age(n, total *cohort.Tensor, c int) {
	_, sexes, _ := n.Shape()
	for s := 0; s < sexes; s++ {
		prev, surv, out := n.Row(c-1, s), total.Row(c-1, s), n.Row(c, s)
		for r := range out {
			out[r] = prev[r] * surv[r]
		}
	}
}

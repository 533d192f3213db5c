// SPDX-License-Identifier: MIT

package habitat

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fisheries/cohort"
)

// ErrShape indicates dependency/change tables that do not match the tensor.
var ErrShape = errors.New("habitat: table shape mismatch")

// Multipliers returns the class×region survival multipliers 1 + γ·m[c,r].
//
// dep is [habitat][class], chg is [habitat][region].
// Complexity: O(H·C·R).
func Multipliers(dep, chg [][]float64, gamma float64, classes, regions int) ([][]float64, error) {
	if len(dep) != len(chg) {
		return nil, fmt.Errorf("%d dependency rows vs %d change rows: %w", len(dep), len(chg), ErrShape)
	}
	for h := range dep {
		if len(dep[h]) != classes || len(chg[h]) != regions {
			return nil, fmt.Errorf("habitat %d: %w", h, ErrShape)
		}
	}

	out := make([][]float64, classes)
	for c := 0; c < classes; c++ {
		row := make([]float64, regions)
		var n int
		for h := range dep {
			if dep[h][c] <= 0 {
				continue
			}
			n++
			for r := 0; r < regions; r++ {
				row[r] += dep[h][c] * chg[h][r]
			}
		}
		for r := range row {
			if n > 0 {
				row[r] /= float64(n)
			}
			row[r] = 1 + gamma*row[r]
		}
		out[c] = row
	}

	return out, nil
}

// Adjust returns a new survival tensor scaled by the scenario multipliers.
// The input tensor is not modified.
func Adjust(natural *cohort.Tensor, dep, chg [][]float64, gamma float64) (*cohort.Tensor, error) {
	classes, sexes, regions := natural.Shape()
	mult, err := Multipliers(dep, chg, gamma, classes, regions)
	if err != nil {
		return nil, err
	}

	out := natural.Clone()
	for c := 0; c < classes; c++ {
		for s := 0; s < sexes; s++ {
			row := out.Row(c, s)
			for r := range row {
				row[r] *= mult[c][r]
			}
		}
	}

	return out, nil
}

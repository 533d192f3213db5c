// SPDX-License-Identifier: MIT

package simulate

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/fisheries/cohort"
	"github.com/katalvlaran/fisheries/harvest"
	"github.com/katalvlaran/fisheries/params"
)

// Results is the output series of one run. Every slice is indexed by
// timestep and has TotalTimesteps entries. Nothing in it is shared with
// another run.
type Results struct {
	RunID          uuid.UUID
	Classes        []string
	Regions        []string
	PopulationType params.PopulationType

	N        []*cohort.Tensor
	Harvest  [][]float64 // [t][region]
	Value    [][]float64 // [t][region]
	Spawners []float64
}

// Summary aggregates one timestep across regions. NaN regions are skipped.
type Summary struct {
	Timestep int
	Harvest  float64
	Value    float64
	Spawners float64
}

// Timesteps returns the number of recorded steps.
func (r *Results) Timesteps() int { return len(r.N) }

// At summarizes timestep t.
func (r *Results) At(t int) Summary {
	return Summary{
		Timestep: t,
		Harvest:  harvest.NaNSafeSum(r.Harvest[t]),
		Value:    harvest.NaNSafeSum(r.Value[t]),
		Spawners: r.Spawners[t],
	}
}

// Final summarizes the last timestep.
func (r *Results) Final() Summary { return r.At(len(r.N) - 1) }

// TotalAbundance sums N[t] over every class, sex and region. NaN cells make
// the total NaN.
func (r *Results) TotalAbundance(t int) float64 { return r.N[t].Sum() }

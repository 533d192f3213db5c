// SPDX-License-Identifier: MIT

package recruitment

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/fisheries/cohort"
)

// Policy turns a population into per-region recruits and the spawning
// output that produced them.
type Policy interface {
	SpawnersAndRecruits(n *cohort.Tensor) (recruits []float64, spawners float64)
}

// Func adapts a plain function to Policy.
type Func func(n *cohort.Tensor) (recruits []float64, spawners float64)

// SpawnersAndRecruits calls f(n).
func (f Func) SpawnersAndRecruits(n *cohort.Tensor) ([]float64, float64) { return f(n) }

// SpawningOutput returns Σ N·maturity·w over every (class, sex, region).
// A nil w counts mature individuals.
// Complexity: O(C·S·R).
func SpawningOutput(n *cohort.Tensor, maturity, w *cohort.Table) float64 {
	classes, sexes, _ := n.Shape()
	var total float64
	for c := 0; c < classes; c++ {
		for s := 0; s < sexes; s++ {
			k := maturity.At(c, s)
			if w != nil {
				k *= w.At(c, s)
			}
			total += k * floats.Sum(n.Row(c, s))
		}
	}

	return total
}

// spawning holds what every built-in strategy shares.
type spawning struct {
	maturity  *cohort.Table
	weight    *cohort.Table
	dispersal []float64
	sexes     float64
}

func (sp spawning) output(n *cohort.Tensor) float64 {
	return SpawningOutput(n, sp.maturity, sp.weight)
}

// distribute splits total recruits over regions and sexes.
func (sp spawning) distribute(total float64) []float64 {
	out := make([]float64, len(sp.dispersal))
	floats.ScaleTo(out, total/sp.sexes, sp.dispersal)

	return out
}

// BevertonHolt saturates recruitment at Alpha as spawners grow.
type BevertonHolt struct {
	spawning
	Alpha, Beta float64
}

// SpawnersAndRecruits implements Policy.
func (b *BevertonHolt) SpawnersAndRecruits(n *cohort.Tensor) ([]float64, float64) {
	sp := b.output(n)

	return b.distribute(b.Alpha * sp / (b.Beta + sp)), sp
}

// Ricker peaks at spawners = 1/Beta and declines beyond it.
type Ricker struct {
	spawning
	Alpha, Beta float64
}

// SpawnersAndRecruits implements Policy.
func (k *Ricker) SpawnersAndRecruits(n *cohort.Tensor) ([]float64, float64) {
	sp := k.output(n)

	return k.distribute(k.Alpha * sp * math.Exp(-k.Beta*sp)), sp
}

// Fecundity recruits every egg counted by the fecundity table.
type Fecundity struct {
	spawning
}

// SpawnersAndRecruits implements Policy.
func (f *Fecundity) SpawnersAndRecruits(n *cohort.Tensor) ([]float64, float64) {
	sp := f.output(n)

	return f.distribute(sp), sp
}

// Fixed recruits a constant total regardless of stock size. Spawners are
// still reported.
type Fixed struct {
	spawning
	Total float64
}

// SpawnersAndRecruits implements Policy.
func (f *Fixed) SpawnersAndRecruits(n *cohort.Tensor) ([]float64, float64) {
	return f.distribute(f.Total), f.output(n)
}

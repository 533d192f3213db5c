// SPDX-License-Identifier: MIT

package harvest

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/fisheries/cohort"
	"github.com/katalvlaran/fisheries/params"
)

// ErrShape indicates a population tensor that does not match the tables.
var ErrShape = errors.New("harvest: shape mismatch")

// Calculator holds the read-only coefficients of one run.
type Calculator struct {
	vulnerability *cohort.Table
	weight        *cohort.Table // nil: count individuals
	exploitation  []float64

	valuation bool
	frac      float64
	price     float64
}

// New builds a Calculator for cfg from normalized tables.
func New(cfg params.Config, t *params.Tables) (*Calculator, error) {
	h := &Calculator{
		vulnerability: t.Vulnerability,
		exploitation:  t.Exploitation,
		valuation:     cfg.ValuationEnabled,
	}
	if cfg.HarvestUnits == params.Weight {
		if t.Weight == nil {
			return nil, &params.FieldError{Field: "Weight", Detail: "required when harvest_units=Weight", Err: params.ErrMissingParameter}
		}
		h.weight = t.Weight
	}
	if h.valuation {
		if cfg.FracPostProcess == nil || cfg.UnitPrice == nil {
			return nil, &params.FieldError{Field: "frac_post_process/unit_price", Detail: "required when valuation is enabled", Err: params.ErrMissingParameter}
		}
		h.frac, h.price = *cfg.FracPostProcess, *cfg.UnitPrice
	}

	return h, nil
}

// Harvest returns the catch per region.
// Complexity: O(C·S·R).
func (h *Calculator) Harvest(n *cohort.Tensor) ([]float64, error) {
	classes, sexes, regions := n.Shape()
	if vc, vs := h.vulnerability.Shape(); vc != classes || vs != sexes || len(h.exploitation) != regions {
		return nil, fmt.Errorf("tensor %dx%dx%d: %w", classes, sexes, regions, ErrShape)
	}

	out := make([]float64, regions)
	for c := 0; c < classes; c++ {
		for s := 0; s < sexes; s++ {
			k := h.vulnerability.At(c, s)
			if h.weight != nil {
				k *= h.weight.At(c, s)
			}
			floats.AddScaled(out, k, n.Row(c, s))
		}
	}
	floats.Mul(out, h.exploitation)

	return out, nil
}

// Value converts a harvest vector to money. It returns zeros when valuation
// is disabled.
func (h *Calculator) Value(harvest []float64) []float64 {
	out := make([]float64, len(harvest))
	if !h.valuation {
		return out
	}
	for r, x := range harvest {
		out[r] = x * h.frac * h.price
	}

	return out
}

// Assess returns harvest and value for n in one call.
func (h *Calculator) Assess(n *cohort.Tensor) (harvest, value []float64, err error) {
	if harvest, err = h.Harvest(n); err != nil {
		return nil, nil, err
	}

	return harvest, h.Value(harvest), nil
}

// NaNSafeSum adds the non-NaN entries of v.
func NaNSafeSum(v []float64) float64 {
	var acc float64
	for _, x := range v {
		if !math.IsNaN(x) {
			acc += x
		}
	}

	return acc
}

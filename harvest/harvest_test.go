// SPDX-License-Identifier: MIT
package harvest_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fisheries/cohort"
	"github.com/katalvlaran/fisheries/harvest"
	"github.com/katalvlaran/fisheries/params"
)

func record() *params.Record {
	return &params.Record{
		Classes:              []string{"young", "old"},
		Regions:              []string{"east", "west"},
		Survnaturalfrac:      [][][]float64{{{0.5, 0.5}}, {{0.8, 0.8}}},
		Vulnfishing:          [][]float64{{0.5, 1}},
		Maturity:             [][]float64{{0, 1}},
		Weight:               [][]float64{{2, 4}},
		Exploitationfraction: []float64{0.1, 0.5},
		Larvaldispersal:      []float64{0.5, 0.5},
	}
}

func config() params.Config {
	return params.Config{
		PopulationType:     params.AgeBased,
		Sexes:              1,
		RecruitmentType:    params.Fixed,
		SpawnUnits:         params.Individuals,
		HarvestUnits:       params.Individuals,
		TotalTimesteps:     1,
		TotalRecurRecruits: params.Float(10),
	}
}

func calculator(t *testing.T, cfg params.Config) *harvest.Calculator {
	t.Helper()
	tabs, err := params.Normalize(record(), cfg)
	require.NoError(t, err)
	h, err := harvest.New(cfg, tabs)
	require.NoError(t, err)

	return h
}

func population(t *testing.T) *cohort.Tensor {
	t.Helper()
	n, err := cohort.TensorFrom([][][]float64{{{100, 40}}, {{10, 20}}})
	require.NoError(t, err)

	return n
}

func TestHarvestUnits(t *testing.T) {
	cases := []struct {
		name  string
		units params.Units
		want  []float64
	}{
		// east: (100·0.5 + 10·1)·0.1, west: (40·0.5 + 20·1)·0.5
		{"individuals", params.Individuals, []float64{6, 20}},
		// east: (100·0.5·2 + 10·4)·0.1, west: (40·0.5·2 + 20·4)·0.5
		{"weight", params.Weight, []float64{14, 60}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := config()
			cfg.HarvestUnits = tc.units
			got, err := calculator(t, cfg).Harvest(population(t))
			require.NoError(t, err)
			assert.InDeltaSlice(t, tc.want, got, 1e-12)
		})
	}
}

func TestValue(t *testing.T) {
	cfg := config()
	h := calculator(t, cfg)
	assert.Equal(t, []float64{0, 0}, h.Value([]float64{6, 20}), "valuation off")

	cfg.ValuationEnabled = true
	cfg.FracPostProcess = params.Float(0.5)
	cfg.UnitPrice = params.Float(3)
	hv, val, err := calculator(t, cfg).Assess(population(t))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{6, 20}, hv, 1e-12)
	assert.InDeltaSlice(t, []float64{9, 30}, val, 1e-12)
}

// TestValueScalesLinearly checks doubling the price doubles value.
func TestValueScalesLinearly(t *testing.T) {
	cfg := config()
	cfg.ValuationEnabled = true
	cfg.FracPostProcess = params.Float(0.2863)
	cfg.UnitPrice = params.Float(29.93)
	_, v1, err := calculator(t, cfg).Assess(population(t))
	require.NoError(t, err)

	cfg.UnitPrice = params.Float(2 * 29.93)
	_, v2, err := calculator(t, cfg).Assess(population(t))
	require.NoError(t, err)
	for r := range v1 {
		assert.InEpsilon(t, 2*v1[r], v2[r], 1e-12)
	}
}

func TestNaNPropagatesAndMasks(t *testing.T) {
	n := population(t)
	n.Set(1, 0, 1, math.NaN())
	got, err := calculator(t, config()).Harvest(n)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, got[0], 1e-12)
	assert.True(t, math.IsNaN(got[1]))
	assert.InDelta(t, 6.0, harvest.NaNSafeSum(got), 1e-12)
}

func TestErrors(t *testing.T) {
	cfg := config()
	tabs, err := params.Normalize(record(), cfg)
	require.NoError(t, err)

	noWeight := *tabs
	noWeight.Weight = nil
	cfg.HarvestUnits = params.Weight
	_, err = harvest.New(cfg, &noWeight)
	require.ErrorIs(t, err, params.ErrMissingParameter)

	h := calculator(t, config())
	wrong, err := cohort.NewTensor(3, 1, 2)
	require.NoError(t, err)
	_, err = h.Harvest(wrong)
	require.ErrorIs(t, err, harvest.ErrShape)
}

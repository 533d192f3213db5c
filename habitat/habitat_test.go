// SPDX-License-Identifier: MIT
package habitat_test

import (
	"testing"

	"github.com/katalvlaran/fisheries/cohort"
	"github.com/katalvlaran/fisheries/habitat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMultipliers covers averaging over depended-on habitats only.
func TestMultipliers(t *testing.T) {
	// Two habitats, two classes, two regions.
	// Class 0 depends on both habitats; class 1 on none.
	dep := [][]float64{
		{1.0, 0},
		{0.5, 0},
	}
	chg := [][]float64{
		{-0.5, 0.0},
		{1.0, -1.0},
	}

	m, err := habitat.Multipliers(dep, chg, 1, 2, 2)
	require.NoError(t, err)
	// region 0: (1·-0.5 + 0.5·1)/2 = 0 → 1; region 1: (0 + 0.5·-1)/2 = -0.25 → 0.75
	assert.InDeltaSlice(t, []float64{1, 0.75}, m[0], 1e-12)
	assert.Equal(t, []float64{1, 1}, m[1])

	half, err := habitat.Multipliers(dep, chg, 0.5, 2, 2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 0.875}, half[0], 1e-12)
}

func TestAdjustDoesNotMutateInput(t *testing.T) {
	s, err := cohort.TensorFrom([][][]float64{{{0.8, 0.8}}, {{0.6, 0.6}}})
	require.NoError(t, err)

	out, err := habitat.Adjust(s, [][]float64{{1, 0}}, [][]float64{{-0.5, 0.25}}, 1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.4, 1.0}, out.Row(0, 0), 1e-12)
	assert.Equal(t, []float64{0.6, 0.6}, out.Row(1, 0))
	assert.Equal(t, []float64{0.8, 0.8}, s.Row(0, 0))
}

func TestMultipliersShape(t *testing.T) {
	_, err := habitat.Multipliers([][]float64{{1}}, nil, 1, 1, 1)
	require.ErrorIs(t, err, habitat.ErrShape)
	_, err = habitat.Multipliers([][]float64{{1, 1}}, [][]float64{{0}}, 1, 1, 1)
	require.ErrorIs(t, err, habitat.ErrShape)
}

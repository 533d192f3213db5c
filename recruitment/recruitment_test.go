// SPDX-License-Identifier: MIT
package recruitment_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fisheries/cohort"
	"github.com/katalvlaran/fisheries/params"
	"github.com/katalvlaran/fisheries/recruitment"
)

func record() *params.Record {
	return &params.Record{
		Classes:              []string{"juvenile", "adult"},
		Regions:              []string{"inshore", "offshore"},
		Survnaturalfrac:      [][][]float64{{{0.5, 0.5}}, {{0.8, 0.8}}},
		Vulnfishing:          [][]float64{{0, 1}},
		Maturity:             [][]float64{{0, 1}},
		Weight:               [][]float64{{1, 2}},
		Fecundity:            [][]float64{{5, 10}},
		Exploitationfraction: []float64{0.1, 0.2},
		Larvaldispersal:      []float64{0.25, 0.75},
	}
}

func config(rt params.RecruitmentType) params.Config {
	return params.Config{
		PopulationType:     params.AgeBased,
		Sexes:              1,
		RecruitmentType:    rt,
		SpawnUnits:         params.Weight,
		HarvestUnits:       params.Individuals,
		TotalTimesteps:     10,
		TotalInitRecruits:  100,
		Alpha:              params.Float(100),
		Beta:               params.Float(20),
		TotalRecurRecruits: params.Float(1000),
	}
}

func population(t *testing.T) *cohort.Tensor {
	t.Helper()
	n, err := cohort.TensorFrom([][][]float64{{{100, 50}}, {{10, 30}}})
	require.NoError(t, err)

	return n
}

func policy(t *testing.T, rec *params.Record, cfg params.Config) recruitment.Policy {
	t.Helper()
	tabs, err := params.Normalize(rec, cfg)
	require.NoError(t, err)
	p, err := recruitment.New(cfg, tabs, nil)
	require.NoError(t, err)

	return p
}

func TestSpawningOutput(t *testing.T) {
	n := population(t)
	mat, err := cohort.TableFromSexClass([][]float64{{0, 1}}, 2, 1)
	require.NoError(t, err)
	w, err := cohort.TableFromSexClass([][]float64{{1, 2}}, 2, 1)
	require.NoError(t, err)

	assert.Equal(t, 80.0, recruitment.SpawningOutput(n, mat, w))
	assert.Equal(t, 40.0, recruitment.SpawningOutput(n, mat, nil), "nil weight counts individuals")
}

func TestStrategies(t *testing.T) {
	cases := []struct {
		name     string
		rt       params.RecruitmentType
		spawners float64
		total    float64
	}{
		{"beverton-holt", params.BevertonHolt, 80, 100 * 80 / (20 + 80.0)},
		{"ricker", params.Ricker, 80, 100 * 80 * math.Exp(-0.01*80.0)},
		{"fecundity", params.Fecundity, 400, 400},
		{"fixed", params.Fixed, 80, 1000},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := config(tc.rt)
			if tc.rt == params.Ricker {
				cfg.Beta = params.Float(0.01)
			}
			rec, sp := policy(t, record(), cfg).SpawnersAndRecruits(population(t))
			assert.InDelta(t, tc.spawners, sp, 1e-9)
			require.Len(t, rec, 2)
			assert.InDelta(t, 0.25*tc.total, rec[0], 1e-9*math.Max(1, tc.total))
			assert.InDelta(t, 0.75*tc.total, rec[1], 1e-9*math.Max(1, tc.total))
		})
	}
}

func TestIndividualsSpawnUnits(t *testing.T) {
	cfg := config(params.BevertonHolt)
	cfg.SpawnUnits = params.Individuals
	_, sp := policy(t, record(), cfg).SpawnersAndRecruits(population(t))
	assert.Equal(t, 40.0, sp)
}

func TestRecruitsSplitBetweenSexes(t *testing.T) {
	cfg := config(params.Fixed)
	cfg.Sexes = 2
	rec, _ := policy(t, record(), cfg).SpawnersAndRecruits(mustTensor(t, 2, 2, 2))
	assert.InDelta(t, 125.0, rec[0], 1e-9)
	assert.InDelta(t, 375.0, rec[1], 1e-9)
}

// TestLinearInDispersal checks recruits[r]/dispersal[r] is the same for every
// region and every built-in theory.
func TestLinearInDispersal(t *testing.T) {
	dispersals := [][]float64{{0.25, 0.75}, {0.5, 0.5}, {0.9, 0.1}}
	for _, rt := range []params.RecruitmentType{params.BevertonHolt, params.Ricker, params.Fecundity, params.Fixed} {
		var base float64
		for i, d := range dispersals {
			rec := record()
			rec.Larvaldispersal = d
			cfg := config(rt)
			cfg.Beta = params.Float(1e-3)
			out, _ := policy(t, rec, cfg).SpawnersAndRecruits(population(t))
			for r := range out {
				k := out[r] / d[r]
				if i == 0 && r == 0 {
					base = k
					continue
				}
				assert.InEpsilon(t, base, k, 1e-12, "%s dispersal %v", rt, d)
			}
		}
	}
}

func TestSpawningOutputNonNegative(t *testing.T) {
	n := mustTensor(t, 3, 2, 4)
	for i := range n.Data() {
		n.Data()[i] = float64(i % 7)
	}
	mat, err := cohort.TableFromSexClass([][]float64{{0, 0.5, 1}, {0.1, 0.2, 0.3}}, 3, 2)
	require.NoError(t, err)
	w, err := cohort.Ones(3, 2)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, recruitment.SpawningOutput(n, mat, w), 0.0)
}

func TestCustom(t *testing.T) {
	cfg := config(params.Custom)
	tabs, err := params.Normalize(record(), cfg)
	require.NoError(t, err)

	_, err = recruitment.New(cfg, tabs, nil)
	require.ErrorIs(t, err, params.ErrMissingParameter)

	var calls int
	fn := recruitment.Func(func(n *cohort.Tensor) ([]float64, float64) {
		calls++
		return []float64{1, 2}, n.Sum()
	})
	p, err := recruitment.New(cfg, tabs, fn)
	require.NoError(t, err)
	rec, sp := p.SpawnersAndRecruits(population(t))
	assert.Equal(t, []float64{1, 2}, rec)
	assert.Equal(t, 190.0, sp)
	assert.Equal(t, 1, calls)
}

func TestNewMissing(t *testing.T) {
	cfg := config(params.Ricker)
	tabs, err := params.Normalize(record(), cfg)
	require.NoError(t, err)

	noAlpha := cfg
	noAlpha.Alpha = nil
	_, err = recruitment.New(noAlpha, tabs, nil)
	var fe *params.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "alpha", fe.Field)
	assert.ErrorIs(t, err, params.ErrMissingParameter)

	noFec := *tabs
	noFec.Fecundity = nil
	_, err = recruitment.New(config(params.Fecundity), &noFec, nil)
	assert.ErrorIs(t, err, params.ErrMissingParameter)

	bad := cfg
	bad.RecruitmentType = 42
	_, err = recruitment.New(bad, tabs, nil)
	assert.ErrorIs(t, err, params.ErrInvalidConfig)
}

func mustTensor(t *testing.T, classes, sexes, regions int) *cohort.Tensor {
	t.Helper()
	n, err := cohort.NewTensor(classes, sexes, regions)
	require.NoError(t, err)

	return n
}

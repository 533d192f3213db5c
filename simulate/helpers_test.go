// SPDX-License-Identifier: MIT
package simulate_test

import "github.com/katalvlaran/fisheries/params"

// ageRecord is a three-age, two-region pooled-sex stock with a migrating
// adult class.
func ageRecord() *params.Record {
	return &params.Record{
		Classes: []string{"age0", "age1", "age2+"},
		Regions: []string{"bay", "shelf"},
		Survnaturalfrac: [][][]float64{
			{{0.4, 0.5}},
			{{0.7, 0.7}},
			{{0.6, 0.5}},
		},
		Vulnfishing:          [][]float64{{0, 0.5, 1}},
		Maturity:             [][]float64{{0, 0.4, 1}},
		Weight:               [][]float64{{0.05, 0.6, 1.8}},
		Exploitationfraction: []float64{0.2, 0.1},
		Larvaldispersal:      []float64{0.7, 0.3},
		Migration: map[string][][]float64{
			"age2+": {{0.8, 0.2}, {0.1, 0.9}},
		},
	}
}

func fixedConfig() params.Config {
	return params.Config{
		PopulationType:     params.AgeBased,
		Sexes:              1,
		RecruitmentType:    params.Fixed,
		SpawnUnits:         params.Weight,
		HarvestUnits:       params.Weight,
		TotalTimesteps:     40,
		TotalInitRecruits:  10000,
		TotalRecurRecruits: params.Float(10000),
	}
}

// stageRecord is a three-stage single-region stock with S = 0.5 and D = 2
// everywhere, so G = 1/6 and P = 1/3.
func stageRecord() *params.Record {
	return &params.Record{
		Classes:              []string{"larva", "juvenile", "adult"},
		Regions:              []string{"reef"},
		Survnaturalfrac:      [][][]float64{{{0.5}}, {{0.5}}, {{0.5}}},
		Vulnfishing:          [][]float64{{0, 0, 1}},
		Maturity:             [][]float64{{0, 0, 1}},
		Duration:             [][]float64{{2, 2, 2}},
		Exploitationfraction: []float64{0},
		Larvaldispersal:      []float64{1},
	}
}

func stageConfig() params.Config {
	return params.Config{
		PopulationType:      params.StageBased,
		Sexes:               1,
		RecruitmentType:     params.Fixed,
		SpawnUnits:          params.Individuals,
		HarvestUnits:        params.Individuals,
		TotalTimesteps:      30,
		TotalInitRecruits:   1000,
		TotalRecurRecruits:  params.Float(1000),
		EquilibrationCycles: 200,
	}
}

// SPDX-License-Identifier: MIT
package params_test

import "github.com/katalvlaran/fisheries/params"

// ageRecord is a small pooled-sex, two-region, four-age record.
func ageRecord() *params.Record {
	return &params.Record{
		Classes: []string{"age0", "age1", "age2", "age3"},
		Regions: []string{"north", "south"},
		Survnaturalfrac: [][][]float64{
			{{0.5, 0.5}},
			{{0.7, 0.6}},
			{{0.8, 0.8}},
			{{0.8, 0.7}},
		},
		Vulnfishing:          [][]float64{{0, 0.2, 1, 1}},
		Maturity:             [][]float64{{0, 0.5, 1, 1}},
		Weight:               [][]float64{{0.1, 0.8, 1.9, 3.2}},
		Exploitationfraction: []float64{0.3, 0.1},
		Larvaldispersal:      []float64{0.6, 0.4},
		Migration: map[string][][]float64{
			"age2": {{0.9, 0.1}, {0.2, 0.8}},
		},
	}
}

func rickerConfig() params.Config {
	return params.Config{
		PopulationType:    params.AgeBased,
		Sexes:             1,
		RecruitmentType:   params.Ricker,
		SpawnUnits:        params.Weight,
		HarvestUnits:      params.Weight,
		TotalTimesteps:    50,
		TotalInitRecruits: 1e5,
		Alpha:             params.Float(6),
		Beta:              params.Float(1e-6),
	}
}

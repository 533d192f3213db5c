// SPDX-License-Identifier: MIT

package params

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fisheries/matrix"
)

// Validate runs the single eager validation pass over a record and its
// configuration. It returns the first violation as a *FieldError wrapping
// ErrMissingParameter, ErrRangeViolation, ErrShape or ErrInvalidConfig.
//
// Order: configuration → axes → required tables → shapes and ranges.
func Validate(rec *Record, cfg Config) error {
	if rec == nil {
		return fieldErr("record", ErrMissingParameter, "nil record")
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	if err := validateAxes(rec); err != nil {
		return err
	}
	if err := validateRequired(rec, cfg); err != nil {
		return err
	}

	classes, regions, sexes := len(rec.Classes), len(rec.Regions), cfg.Sexes

	if err := checkSurvival(rec.Survnaturalfrac, classes, sexes, regions); err != nil {
		return err
	}
	if err := checkSexClass("Vulnfishing", rec.Vulnfishing, classes, sexes, 0, 1); err != nil {
		return err
	}
	if err := checkSexClass("Maturity", rec.Maturity, classes, sexes, 0, 1); err != nil {
		return err
	}
	if rec.Weight != nil {
		if err := checkSexClass("Weight", rec.Weight, classes, sexes, 0, math.Inf(1)); err != nil {
			return err
		}
	}
	if rec.Fecundity != nil {
		if err := checkSexClass("Fecundity", rec.Fecundity, classes, sexes, 0, math.Inf(1)); err != nil {
			return err
		}
	}
	if rec.Duration != nil {
		if err := checkSexClass("Duration", rec.Duration, classes, sexes, 0, math.Inf(1)); err != nil {
			return err
		}
	}
	if err := checkRegionVector("Exploitationfraction", rec.Exploitationfraction, regions); err != nil {
		return err
	}
	if err := checkRegionVector("Larvaldispersal", rec.Larvaldispersal, regions); err != nil {
		return err
	}
	var sum float64
	for _, v := range rec.Larvaldispersal {
		sum += v
	}
	if math.Abs(sum-1) > DispersalTolerance {
		return fieldErr("Larvaldispersal", ErrRangeViolation, "sums to %g, want 1", sum)
	}
	if cfg.MigrationEnabled {
		if err := checkMigration(rec); err != nil {
			return err
		}
	}
	if rec.Habitat != nil {
		if err := checkHabitat(rec.Habitat, classes, regions); err != nil {
			return err
		}
	}

	return nil
}

func validateConfig(cfg Config) error {
	if _, ok := populationNames[cfg.PopulationType]; !ok {
		return fieldErr("population_type", ErrInvalidConfig, "%s", cfg.PopulationType)
	}
	if cfg.Sexes != 1 && cfg.Sexes != 2 {
		return fieldErr("sexsp", ErrInvalidConfig, "got %d, want 1 or 2", cfg.Sexes)
	}
	if _, ok := recruitmentNames[cfg.RecruitmentType]; !ok {
		return fieldErr("recruitment_type", ErrInvalidConfig, "%s", cfg.RecruitmentType)
	}
	if _, ok := unitNames[cfg.SpawnUnits]; !ok {
		return fieldErr("spawn_units", ErrInvalidConfig, "%s", cfg.SpawnUnits)
	}
	if _, ok := unitNames[cfg.HarvestUnits]; !ok {
		return fieldErr("harvest_units", ErrInvalidConfig, "%s", cfg.HarvestUnits)
	}
	if cfg.TotalTimesteps <= 0 {
		return fieldErr("total_timesteps", ErrRangeViolation, "got %d, want > 0", cfg.TotalTimesteps)
	}
	if err := checkScalar("total_init_recruits", cfg.TotalInitRecruits, 0, math.Inf(1)); err != nil {
		return err
	}
	if cfg.EquilibrationCycles < 0 {
		return fieldErr("equilibration_cycles", ErrRangeViolation, "got %d, want >= 0", cfg.EquilibrationCycles)
	}

	switch cfg.RecruitmentType {
	case BevertonHolt, Ricker:
		if err := requirePositive("alpha", cfg.Alpha, cfg.RecruitmentType); err != nil {
			return err
		}
		if err := requirePositive("beta", cfg.Beta, cfg.RecruitmentType); err != nil {
			return err
		}
	case Fixed:
		if cfg.TotalRecurRecruits == nil {
			return fieldErr("total_recur_recruits", ErrMissingParameter, "required when recruitment_type=%s", Fixed)
		}
		if err := checkScalar("total_recur_recruits", *cfg.TotalRecurRecruits, 0, math.Inf(1)); err != nil {
			return err
		}
	}

	if cfg.ValuationEnabled {
		if cfg.FracPostProcess == nil {
			return fieldErr("frac_post_process", ErrMissingParameter, "required when valuation is enabled")
		}
		if err := checkScalar("frac_post_process", *cfg.FracPostProcess, 0, 1); err != nil {
			return err
		}
		if cfg.UnitPrice == nil {
			return fieldErr("unit_price", ErrMissingParameter, "required when valuation is enabled")
		}
		if err := checkScalar("unit_price", *cfg.UnitPrice, 0, math.Inf(1)); err != nil {
			return err
		}
	}

	return nil
}

func validateAxes(rec *Record) error {
	if len(rec.Classes) == 0 {
		return fieldErr("Classes", ErrMissingParameter, "at least one class is required")
	}
	if len(rec.Regions) == 0 {
		return fieldErr("Regions", ErrMissingParameter, "at least one region is required")
	}
	if err := checkUnique("Classes", rec.Classes); err != nil {
		return err
	}

	return checkUnique("Regions", rec.Regions)
}

// validateRequired reports tables the configuration needs but the record lacks.
func validateRequired(rec *Record, cfg Config) error {
	always := []struct {
		field   string
		present bool
	}{
		{"Survnaturalfrac", rec.Survnaturalfrac != nil},
		{"Vulnfishing", rec.Vulnfishing != nil},
		{"Maturity", rec.Maturity != nil},
		{"Exploitationfraction", rec.Exploitationfraction != nil},
		{"Larvaldispersal", rec.Larvaldispersal != nil},
	}
	for _, req := range always {
		if !req.present {
			return fieldErr(req.field, ErrMissingParameter, "always required")
		}
	}
	if rec.Weight == nil {
		if cfg.SpawnUnits == Weight {
			return fieldErr("Weight", ErrMissingParameter, "required when spawn_units=%s", Weight)
		}
		if cfg.HarvestUnits == Weight {
			return fieldErr("Weight", ErrMissingParameter, "required when harvest_units=%s", Weight)
		}
	}
	if rec.Fecundity == nil && cfg.RecruitmentType == Fecundity {
		return fieldErr("Fecundity", ErrMissingParameter, "required when recruitment_type=%s", Fecundity)
	}
	if rec.Duration == nil && cfg.PopulationType == StageBased {
		return fieldErr("Duration", ErrMissingParameter, "required when population_type=%s", StageBased)
	}
	if cfg.MigrationEnabled && len(rec.Migration) == 0 {
		return fieldErr("Migration", ErrMissingParameter, "required when migration is enabled")
	}

	return nil
}

func requirePositive(field string, v *float64, rt RecruitmentType) error {
	if v == nil {
		return fieldErr(field, ErrMissingParameter, "required when recruitment_type=%s", rt)
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) || *v <= 0 {
		return fieldErr(field, ErrRangeViolation, "got %g, want > 0", *v)
	}

	return nil
}

func checkScalar(field string, v, lo, hi float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < lo || v > hi {
		return fieldErr(field, ErrRangeViolation, "got %g, want within [%g, %g]", v, lo, hi)
	}

	return nil
}

func checkUnique(field string, names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			return fieldErr(field, ErrShape, "duplicate name %q", n)
		}
		seen[n] = struct{}{}
	}

	return nil
}

func checkSurvival(v [][][]float64, classes, sexes, regions int) error {
	const field = "Survnaturalfrac"
	if len(v) != classes {
		return fieldErr(field, ErrShape, "got %d classes, want %d", len(v), classes)
	}
	for c := range v {
		if len(v[c]) != 1 && len(v[c]) != sexes {
			return fieldErr(field, ErrShape, "class %d has %d sexes, want 1 or %d", c, len(v[c]), sexes)
		}
		for s := range v[c] {
			if len(v[c][s]) != regions {
				return fieldErr(field, ErrShape, "class %d sex %d has %d regions, want %d", c, s, len(v[c][s]), regions)
			}
			for r, x := range v[c][s] {
				if err := checkScalar(fmt.Sprintf("%s[%d][%d][%d]", field, c, s, r), x, 0, 1); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func checkSexClass(field string, v [][]float64, classes, sexes int, lo, hi float64) error {
	if len(v) != 1 && len(v) != sexes {
		return fieldErr(field, ErrShape, "got %d sex rows, want 1 or %d", len(v), sexes)
	}
	for s := range v {
		if len(v[s]) != classes {
			return fieldErr(field, ErrShape, "sex row %d has %d classes, want %d", s, len(v[s]), classes)
		}
		for c, x := range v[s] {
			if err := checkScalar(fmt.Sprintf("%s[%d][%d]", field, s, c), x, lo, hi); err != nil {
				return err
			}
		}
	}

	return nil
}

func checkRegionVector(field string, v []float64, regions int) error {
	if len(v) != regions {
		return fieldErr(field, ErrShape, "got %d regions, want %d", len(v), regions)
	}
	for r, x := range v {
		if err := checkScalar(fmt.Sprintf("%s[%d]", field, r), x, 0, 1); err != nil {
			return err
		}
	}

	return nil
}

func checkMigration(rec *Record) error {
	regions := len(rec.Regions)
	for name, rows := range rec.Migration {
		field := fmt.Sprintf("Migration[%s]", name)
		if rec.ClassIndex(name) < 0 {
			return fieldErr(field, ErrShape, "unknown class")
		}
		m, err := matrix.NewDenseFrom(rows)
		if err != nil {
			return &FieldError{Field: field, Err: fmt.Errorf("%w: %w", ErrShape, err)}
		}
		if m.Rows() != regions || m.Cols() != regions {
			return fieldErr(field, ErrShape, "got %dx%d, want %dx%d", m.Rows(), m.Cols(), regions, regions)
		}
		if err = matrix.ValidateRowStochastic(m, matrix.WithEpsilon(DispersalTolerance)); err != nil {
			return &FieldError{Field: field, Err: fmt.Errorf("%w: %w", ErrRangeViolation, err)}
		}
	}

	return nil
}

func checkHabitat(h *HabitatScenario, classes, regions int) error {
	if err := checkScalar("habitat.gamma", h.Gamma, 0, 1); err != nil {
		return err
	}
	if len(h.Dependency) != len(h.Habitats) {
		return fieldErr("habitat.dependency", ErrShape, "got %d habitats, want %d", len(h.Dependency), len(h.Habitats))
	}
	if len(h.Change) != len(h.Habitats) {
		return fieldErr("habitat.change", ErrShape, "got %d habitats, want %d", len(h.Change), len(h.Habitats))
	}
	for i := range h.Habitats {
		if len(h.Dependency[i]) != classes {
			return fieldErr("habitat.dependency", ErrShape, "habitat %d has %d classes, want %d", i, len(h.Dependency[i]), classes)
		}
		for c, x := range h.Dependency[i] {
			if err := checkScalar(fmt.Sprintf("habitat.dependency[%d][%d]", i, c), x, 0, 1); err != nil {
				return err
			}
		}
		if len(h.Change[i]) != regions {
			return fieldErr("habitat.change", ErrShape, "habitat %d has %d regions, want %d", i, len(h.Change[i]), regions)
		}
		for r, x := range h.Change[i] {
			if err := checkScalar(fmt.Sprintf("habitat.change[%d][%d]", i, r), x, -1, math.Inf(1)); err != nil {
				return err
			}
		}
	}

	return nil
}

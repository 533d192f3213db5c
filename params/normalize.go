// SPDX-License-Identifier: MIT

package params

import (
	"fmt"

	"github.com/katalvlaran/fisheries/cohort"
	"github.com/katalvlaran/fisheries/habitat"
	"github.com/katalvlaran/fisheries/matrix"
)

// Tables is the validated, sex-broadcast form of a Record.
// It is read-only once built and may be shared across concurrent runs.
type Tables struct {
	Classes []string
	Regions []string
	Sexes   int

	// NaturalSurvival[class][sex][region], habitat-adjusted when the record
	// carries a habitat scenario.
	NaturalSurvival *cohort.Tensor

	Vulnerability *cohort.Table
	Maturity      *cohort.Table
	// Weight, Fecundity and Duration are nil when the record omits them.
	Weight    *cohort.Table
	Fecundity *cohort.Table
	Duration  *cohort.Table

	Exploitation []float64
	Dispersal    []float64

	// Migration[class] is the class's region×region matrix, nil for
	// non-migratory classes. The slice itself is nil when migration is off.
	Migration []*matrix.Dense
}

// Normalize validates rec against cfg and builds Tables.
func Normalize(rec *Record, cfg Config) (*Tables, error) {
	if err := Validate(rec, cfg); err != nil {
		return nil, err
	}
	classes, regions, sexes := len(rec.Classes), len(rec.Regions), cfg.Sexes

	t := &Tables{
		Classes:      append([]string(nil), rec.Classes...),
		Regions:      append([]string(nil), rec.Regions...),
		Sexes:        sexes,
		Exploitation: append([]float64(nil), rec.Exploitationfraction...),
		Dispersal:    append([]float64(nil), rec.Larvaldispersal...),
	}

	surv, err := cohort.NewTensor(classes, sexes, regions)
	if err != nil {
		return nil, err
	}
	for c := 0; c < classes; c++ {
		for s := 0; s < sexes; s++ {
			src := rec.Survnaturalfrac[c][0]
			if len(rec.Survnaturalfrac[c]) == sexes {
				src = rec.Survnaturalfrac[c][s]
			}
			copy(surv.Row(c, s), src)
		}
	}
	if h := rec.Habitat; h != nil && len(h.Habitats) > 0 {
		if surv, err = habitat.Adjust(surv, h.Dependency, h.Change, h.Gamma); err != nil {
			return nil, fmt.Errorf("params: habitat: %w", err)
		}
	}
	t.NaturalSurvival = surv

	build := func(field string, v [][]float64) (*cohort.Table, error) {
		if v == nil {
			return nil, nil
		}
		tab, err := cohort.TableFromSexClass(v, classes, sexes)
		if err != nil {
			return nil, &FieldError{Field: field, Err: fmt.Errorf("%w: %w", ErrShape, err)}
		}

		return tab, nil
	}
	if t.Vulnerability, err = build("Vulnfishing", rec.Vulnfishing); err != nil {
		return nil, err
	}
	if t.Maturity, err = build("Maturity", rec.Maturity); err != nil {
		return nil, err
	}
	if t.Weight, err = build("Weight", rec.Weight); err != nil {
		return nil, err
	}
	if t.Fecundity, err = build("Fecundity", rec.Fecundity); err != nil {
		return nil, err
	}
	if t.Duration, err = build("Duration", rec.Duration); err != nil {
		return nil, err
	}

	if cfg.MigrationEnabled {
		t.Migration = make([]*matrix.Dense, classes)
		for name, rows := range rec.Migration {
			m, err := matrix.NewDenseFrom(rows)
			if err != nil {
				return nil, &FieldError{Field: "Migration[" + name + "]", Err: fmt.Errorf("%w: %w", ErrShape, err)}
			}
			t.Migration[rec.ClassIndex(name)] = m
		}
	}

	return t, nil
}

// MigratoryClasses counts classes with a configured migration matrix.
func (t *Tables) MigratoryClasses() int {
	var n int
	for _, m := range t.Migration {
		if m != nil {
			n++
		}
	}

	return n
}

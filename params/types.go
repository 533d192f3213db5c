// SPDX-License-Identifier: MIT

package params

import (
	"fmt"
	"strings"
)

// PopulationType selects the cohort representation.
type PopulationType int

const (
	// AgeBased cohorts age one class per timestep; the last class is a plus group.
	AgeBased PopulationType = iota + 1
	// StageBased cohorts graduate or stay according to stage duration.
	StageBased
)

// RecruitmentType selects the recruitment theory.
type RecruitmentType int

const (
	BevertonHolt RecruitmentType = iota + 1
	Ricker
	Fecundity
	Fixed
	// Custom recruitment is supplied by the caller as a function.
	Custom
)

// Units selects whether spawning output or harvest is counted in
// individuals or in biomass.
type Units int

const (
	Individuals Units = iota + 1
	Weight
)

var (
	populationNames  = map[PopulationType]string{AgeBased: "Age-based", StageBased: "Stage-based"}
	recruitmentNames = map[RecruitmentType]string{
		BevertonHolt: "Beverton-Holt",
		Ricker:       "Ricker",
		Fecundity:    "Fecundity",
		Fixed:        "Fixed",
		Custom:       "Custom",
	}
	unitNames = map[Units]string{Individuals: "Individuals", Weight: "Weight"}
)

func (p PopulationType) String() string { return enumString(populationNames, p) }

func (r RecruitmentType) String() string { return enumString(recruitmentNames, r) }

func (u Units) String() string { return enumString(unitNames, u) }

// MarshalText implements encoding.TextMarshaler.
func (p PopulationType) MarshalText() ([]byte, error) { return enumMarshal(populationNames, p) }

// UnmarshalText implements encoding.TextUnmarshaler (case-insensitive).
func (p *PopulationType) UnmarshalText(b []byte) error { return enumUnmarshal(populationNames, p, b) }

// MarshalText implements encoding.TextMarshaler.
func (r RecruitmentType) MarshalText() ([]byte, error) { return enumMarshal(recruitmentNames, r) }

// UnmarshalText implements encoding.TextUnmarshaler (case-insensitive).
// "Other" is accepted as an alias of Custom.
func (r *RecruitmentType) UnmarshalText(b []byte) error {
	if strings.EqualFold(strings.TrimSpace(string(b)), "Other") {
		*r = Custom
		return nil
	}

	return enumUnmarshal(recruitmentNames, r, b)
}

// MarshalText implements encoding.TextMarshaler.
func (u Units) MarshalText() ([]byte, error) { return enumMarshal(unitNames, u) }

// UnmarshalText implements encoding.TextUnmarshaler (case-insensitive).
func (u *Units) UnmarshalText(b []byte) error { return enumUnmarshal(unitNames, u, b) }

func enumString[T ~int](names map[T]string, v T) string {
	if s, ok := names[v]; ok {
		return s
	}

	return fmt.Sprintf("unknown(%d)", int(v))
}

func enumMarshal[T ~int](names map[T]string, v T) ([]byte, error) {
	s, ok := names[v]
	if !ok {
		return nil, fmt.Errorf("unknown(%d): %w", int(v), ErrInvalidConfig)
	}

	return []byte(s), nil
}

func enumUnmarshal[T ~int](names map[T]string, dst *T, b []byte) error {
	in := strings.TrimSpace(string(b))
	for v, s := range names {
		if strings.EqualFold(s, in) {
			*dst = v
			return nil
		}
	}

	return fmt.Errorf("unknown value %q: %w", in, ErrInvalidConfig)
}

// DefaultEquilibrationCycles is the warm-up length of stage-based runs when
// Config.EquilibrationCycles is zero.
const DefaultEquilibrationCycles = 100

// DispersalTolerance bounds |Σ Larvaldispersal − 1| and migration row sums.
const DispersalTolerance = 1e-6

// Config is the flat run configuration.
//
// Optional coefficients are pointers so "absent" and "zero" stay distinct;
// Validate decides which ones the selected theory requires.
type Config struct {
	PopulationType  PopulationType  `yaml:"population_type"`
	Sexes           int             `yaml:"sexsp"`
	RecruitmentType RecruitmentType `yaml:"recruitment_type"`
	SpawnUnits      Units           `yaml:"spawn_units"`
	HarvestUnits    Units           `yaml:"harvest_units"`

	TotalTimesteps     int      `yaml:"total_timesteps"`
	TotalInitRecruits  float64  `yaml:"total_init_recruits"`
	Alpha              *float64 `yaml:"alpha,omitempty"`
	Beta               *float64 `yaml:"beta,omitempty"`
	TotalRecurRecruits *float64 `yaml:"total_recur_recruits,omitempty"`
	FracPostProcess    *float64 `yaml:"frac_post_process,omitempty"`
	UnitPrice          *float64 `yaml:"unit_price,omitempty"`

	MigrationEnabled    bool `yaml:"migration_enabled"`
	ValuationEnabled    bool `yaml:"valuation_enabled"`
	Batch               bool `yaml:"batch"`
	EquilibrationCycles int  `yaml:"equilibration_cycles,omitempty"`
}

// Equilibration returns the effective warm-up length (stage-based runs only).
func (c Config) Equilibration() int {
	if c.PopulationType != StageBased {
		return 0
	}
	if c.EquilibrationCycles == 0 {
		return DefaultEquilibrationCycles
	}

	return c.EquilibrationCycles
}

// Float returns a pointer to v, for filling optional Config coefficients.
func Float(v float64) *float64 { return &v }

// HabitatScenario describes habitat area change and each class's dependency
// on those habitats. It is optional; see package habitat.
type HabitatScenario struct {
	Habitats []string `yaml:"habitats"`
	// Dependency[habitat][class] ∈ [0,1].
	Dependency [][]float64 `yaml:"dependency"`
	// Change[habitat][region] ∈ [−1, +∞): fractional change in habitat area.
	Change [][]float64 `yaml:"change"`
	// Gamma ∈ [0,1] scales how strongly survival tracks habitat change.
	Gamma float64 `yaml:"gamma"`
}

// Record is the validated Parameter Record produced by the ingestion layer.
//
// Sex-indexed tables may carry a single sex row, which is broadcast to every
// sex during Normalize.
type Record struct {
	Classes []string `yaml:"classes"`
	Regions []string `yaml:"regions"`

	// Survnaturalfrac[class][sex][region].
	Survnaturalfrac [][][]float64 `yaml:"survnaturalfrac"`
	// Per-sex rows of per-class values: X[sex][class].
	Vulnfishing [][]float64 `yaml:"vulnfishing"`
	Maturity    [][]float64 `yaml:"maturity"`
	Weight      [][]float64 `yaml:"weight,omitempty"`
	Fecundity   [][]float64 `yaml:"fecundity,omitempty"`
	Duration    [][]float64 `yaml:"duration,omitempty"`

	Exploitationfraction []float64 `yaml:"exploitationfraction"`
	Larvaldispersal      []float64 `yaml:"larvaldispersal"`

	// Migration maps a class name to its region×region transition table.
	Migration map[string][][]float64 `yaml:"migration,omitempty"`

	Habitat *HabitatScenario `yaml:"habitat,omitempty"`
}

// ClassIndex returns the position of the named class, or -1.
func (r *Record) ClassIndex(name string) int {
	for i, c := range r.Classes {
		if c == name {
			return i
		}
	}

	return -1
}

// SPDX-License-Identifier: MIT

package recruitment

import "github.com/katalvlaran/fisheries/params"

// New builds the Policy selected by cfg.RecruitmentType from normalized
// tables. custom is consulted only for params.Custom.
//
// Missing tables or coefficients are reported as *params.FieldError
// wrapping params.ErrMissingParameter; Normalize normally catches them first.
func New(cfg params.Config, t *params.Tables, custom Func) (Policy, error) {
	base := spawning{
		maturity:  t.Maturity,
		dispersal: t.Dispersal,
		sexes:     float64(t.Sexes),
	}
	if cfg.SpawnUnits == params.Weight {
		if t.Weight == nil {
			return nil, missing("Weight", "spawn_units=Weight")
		}
		base.weight = t.Weight
	}

	switch cfg.RecruitmentType {
	case params.BevertonHolt, params.Ricker:
		if cfg.Alpha == nil {
			return nil, missing("alpha", "recruitment_type="+cfg.RecruitmentType.String())
		}
		if cfg.Beta == nil {
			return nil, missing("beta", "recruitment_type="+cfg.RecruitmentType.String())
		}
		if cfg.RecruitmentType == params.Ricker {
			return &Ricker{spawning: base, Alpha: *cfg.Alpha, Beta: *cfg.Beta}, nil
		}

		return &BevertonHolt{spawning: base, Alpha: *cfg.Alpha, Beta: *cfg.Beta}, nil
	case params.Fecundity:
		if t.Fecundity == nil {
			return nil, missing("Fecundity", "recruitment_type=Fecundity")
		}
		base.weight = t.Fecundity

		return &Fecundity{spawning: base}, nil
	case params.Fixed:
		if cfg.TotalRecurRecruits == nil {
			return nil, missing("total_recur_recruits", "recruitment_type=Fixed")
		}

		return &Fixed{spawning: base, Total: *cfg.TotalRecurRecruits}, nil
	case params.Custom:
		if custom == nil {
			return nil, missing("custom recruitment", "recruitment_type=Custom")
		}

		return custom, nil
	}

	return nil, &params.FieldError{Field: "recruitment_type", Detail: cfg.RecruitmentType.String(), Err: params.ErrInvalidConfig}
}

func missing(field, why string) error {
	return &params.FieldError{Field: field, Detail: "required when " + why, Err: params.ErrMissingParameter}
}

var (
	_ Policy = (*BevertonHolt)(nil)
	_ Policy = (*Ricker)(nil)
	_ Policy = (*Fecundity)(nil)
	_ Policy = (*Fixed)(nil)
	_ Policy = Func(nil)
)

// SPDX-License-Identifier: MIT

package dynamics

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fisheries/cohort"
	"github.com/katalvlaran/fisheries/migration"
	"github.com/katalvlaran/fisheries/params"
	"github.com/katalvlaran/fisheries/recruitment"
	"github.com/katalvlaran/fisheries/survival"
)

var (
	// ErrShape indicates a tensor that does not match the cycle's tables.
	ErrShape = errors.New("dynamics: shape mismatch")

	// ErrRecruits indicates a recruitment policy returned the wrong number
	// of regions.
	ErrRecruits = errors.New("dynamics: recruits length mismatch")
)

// Cycle is the one-timestep transition of a run. All fields are read-only
// after NewCycle, so one Cycle may be stepped from several goroutines on
// distinct tensors.
type Cycle struct {
	pt       params.PopulationType
	total    *cohort.Tensor // S, age-based
	grow     *cohort.Tensor // G, stage-based
	stay     *cohort.Tensor // P, stage-based
	policy   recruitment.Policy
	migrator *migration.Engine
}

// NewCycle prepares the transition. duration is required for stage-based
// runs and ignored otherwise; migrator may be nil.
func NewCycle(pt params.PopulationType, total *cohort.Tensor, duration *cohort.Table,
	policy recruitment.Policy, migrator *migration.Engine) (*Cycle, error) {
	if policy == nil {
		return nil, fmt.Errorf("dynamics: recruitment policy: %w", params.ErrMissingParameter)
	}
	c := &Cycle{pt: pt, total: total, policy: policy, migrator: migrator}

	switch pt {
	case params.AgeBased:
	case params.StageBased:
		if duration == nil {
			return nil, &params.FieldError{Field: "Duration", Detail: "required for stage-based cycles", Err: params.ErrMissingParameter}
		}
		g, p, err := survival.GrowthAndStasis(total, duration)
		if err != nil {
			return nil, fmt.Errorf("dynamics: %w", err)
		}
		c.grow, c.stay = g, p
	default:
		return nil, fmt.Errorf("dynamics: population type %s: %w", pt, params.ErrInvalidConfig)
	}

	return c, nil
}

// Step returns N[t] and the spawning output computed from prev.
// prev is not modified.
// Complexity: O(C·S·R) plus migration.
func (cy *Cycle) Step(prev *cohort.Tensor) (next *cohort.Tensor, spawners float64, err error) {
	if !prev.SameShape(cy.total) {
		return nil, 0, ErrShape
	}
	classes, sexes, regions := prev.Shape()

	recruits, spawners := cy.policy.SpawnersAndRecruits(prev)
	if len(recruits) != regions {
		return nil, 0, fmt.Errorf("got %d, want %d: %w", len(recruits), regions, ErrRecruits)
	}

	next, err = cohort.NewTensor(classes, sexes, regions)
	if err != nil {
		return nil, 0, err
	}

	last := classes - 1
	for c := 1; c < classes; c++ {
		for s := 0; s < sexes; s++ {
			in, out := prev.Row(c-1, s), next.Row(c, s)
			self := prev.Row(c, s)
			switch {
			case cy.pt == params.StageBased:
				g, p := cy.grow.Row(c-1, s), cy.stay.Row(c, s)
				for r := range out {
					out[r] = in[r]*g[r] + self[r]*p[r]
				}
			case c == last:
				sIn, sSelf := cy.total.Row(c-1, s), cy.total.Row(c, s)
				for r := range out {
					out[r] = in[r]*sIn[r] + self[r]*sSelf[r]
				}
			default:
				sIn := cy.total.Row(c-1, s)
				for r := range out {
					out[r] = in[r] * sIn[r]
				}
			}
		}
	}

	for s := 0; s < sexes; s++ {
		copy(next.Row(0, s), recruits)
	}

	if err = cy.migrator.ApplyInPlace(next); err != nil {
		return nil, 0, fmt.Errorf("dynamics: %w", err)
	}

	return next, spawners, nil
}

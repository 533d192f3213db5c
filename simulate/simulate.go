// SPDX-License-Identifier: MIT

package simulate

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/fisheries/cohort"
	"github.com/katalvlaran/fisheries/dynamics"
	"github.com/katalvlaran/fisheries/harvest"
	"github.com/katalvlaran/fisheries/migration"
	"github.com/katalvlaran/fisheries/params"
	"github.com/katalvlaran/fisheries/recruitment"
	"github.com/katalvlaran/fisheries/survival"
)

// Run validates rec and cfg and executes one complete simulation.
//
// Validation happens once, before any timestep; a run either fully
// validates or never starts. NaN and Inf cells produced by degenerate
// inputs are carried through the series, not reported as errors.
func Run(rec *params.Record, cfg params.Config, opts ...Option) (*Results, error) {
	o := gatherOptions(opts...)
	log := o.logger.With("run_id", o.runID.String())
	m := &machine{}

	res, err := run(rec, cfg, o, m, log)
	if err != nil {
		_ = m.to(Failed)
		log.Warn("run failed", "phase", m.phase, "error", err)

		return nil, err
	}

	return res, nil
}

// plan holds the read-only components of one run.
type plan struct {
	tables *params.Tables
	total  *cohort.Tensor
	cycle  *dynamics.Cycle
	catch  *harvest.Calculator
}

func build(rec *params.Record, cfg params.Config, o options) (*plan, error) {
	tables, err := params.Normalize(rec, cfg)
	if err != nil {
		return nil, err
	}
	total, err := survival.Total(tables.NaturalSurvival, tables.Vulnerability, tables.Exploitation)
	if err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}
	policy, err := recruitment.New(cfg, tables, o.custom)
	if err != nil {
		return nil, err
	}
	migrator := migration.Disabled()
	if cfg.MigrationEnabled {
		if migrator, err = migration.New(tables.Migration, len(tables.Regions)); err != nil {
			return nil, fmt.Errorf("simulate: %w", err)
		}
	}
	cycle, err := dynamics.NewCycle(cfg.PopulationType, total, tables.Duration, policy, migrator)
	if err != nil {
		return nil, err
	}
	catch, err := harvest.New(cfg, tables)
	if err != nil {
		return nil, err
	}

	return &plan{tables: tables, total: total, cycle: cycle, catch: catch}, nil
}

func run(rec *params.Record, cfg params.Config, o options, m *machine, log *slog.Logger) (*Results, error) {
	p, err := build(rec, cfg, o)
	if err != nil {
		return nil, err
	}

	n0, err := dynamics.Initial(cfg.PopulationType, p.total, p.tables.Dispersal, cfg.TotalInitRecruits)
	if err != nil {
		return nil, err
	}

	var spawners0 float64
	if cfg.PopulationType == params.StageBased {
		if err = m.to(Equilibrating); err != nil {
			return nil, err
		}
		cycles := cfg.Equilibration()
		log.Debug("phase", "phase", m.phase, "cycles", cycles)
		cur := n0
		for i := 0; i < cycles; i++ {
			if cur, spawners0, err = p.cycle.Step(cur); err != nil {
				return nil, fmt.Errorf("simulate: equilibration step %d: %w", i, err)
			}
		}
		n0 = cur.Clone()
	}

	if err = m.to(Running); err != nil {
		return nil, err
	}
	log.Debug("phase", "phase", m.phase, "timesteps", cfg.TotalTimesteps)

	steps := cfg.TotalTimesteps
	res := &Results{
		RunID:          o.runID,
		Classes:        p.tables.Classes,
		Regions:        p.tables.Regions,
		PopulationType: cfg.PopulationType,
		N:              make([]*cohort.Tensor, steps),
		Harvest:        make([][]float64, steps),
		Value:          make([][]float64, steps),
		Spawners:       make([]float64, steps),
	}
	res.N[0], res.Spawners[0] = n0, spawners0
	if res.Harvest[0], res.Value[0], err = p.catch.Assess(n0); err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}

	for t := 1; t < steps; t++ {
		if res.N[t], res.Spawners[t], err = p.cycle.Step(res.N[t-1]); err != nil {
			return nil, fmt.Errorf("simulate: step %d: %w", t, err)
		}
		if res.Harvest[t], res.Value[t], err = p.catch.Assess(res.N[t]); err != nil {
			return nil, fmt.Errorf("simulate: step %d: %w", t, err)
		}
	}

	if err = m.to(Done); err != nil {
		return nil, err
	}
	final := res.Final()
	log.Info("run complete",
		"population_type", cfg.PopulationType,
		"recruitment_type", cfg.RecruitmentType,
		"timesteps", steps,
		"final_harvest", final.Harvest,
		"final_spawners", final.Spawners,
	)

	return res, nil
}

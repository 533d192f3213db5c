// Package fisheries simulates the abundance, spawning output, catch and
// catch value of a single fished stock over discrete timesteps.
//
// What is in the box?
//
//	• Age-based cohorts with a plus group, or stage-based cohorts with
//	  graduation/stasis derived from stage duration
//	• Five recruitment theories: Beverton-Holt, Ricker, Fecundity, Fixed,
//	  and caller-supplied functions
//	• Pooled or sex-specific parameters (a single sex row is broadcast)
//	• Regional structure with larval dispersal and per-class migration
//	• Harvest in individuals or biomass, with optional valuation
//	• Habitat-change scenarios scaling natural survival
//
// Layout, leaves first:
//
//	matrix/      — dense row-major matrices, row-stochastic checks, VecMat
//	cohort/      — the [class][sex][region] population tensor and class×sex tables
//	params/      — parameter record, run configuration, validation, YAML scenarios
//	habitat/     — habitat-scenario survival multipliers
//	survival/    — total survival and graduation/stasis probabilities
//	recruitment/ — spawning output and recruitment policies
//	migration/   — per-class regional migration
//	harvest/     — catch and value per region
//	dynamics/    — generation-0 builder and the one-step cycle
//	simulate/    — run driver, results, parallel batches
//	cmd/fisheries — command-line runner for YAML scenarios
//
// A run in four lines:
//
//	sc, err := params.LoadFile("cod.yaml")
//	res, err := simulate.Run(&sc.Record, sc.Config)
//	final := res.Final()
//	fmt.Println(final.Harvest, final.Spawners)
//
// Degenerate inputs (survival of exactly 1, zero stage duration) produce
// NaN or Inf cells. They are carried through the series unchanged; use
// harvest.NaNSafeSum or Results.Final for masked totals.
package fisheries

// Package engine drives the daily simulation cycle: move to work, contact
// at work, move home, contact at home, disease progression, and
// occasional random long-distance travel (spec §2, §4.3-§4.5). Grounded
// on the source repo's internal/engine/simulation.go (a Simulation
// struct wiring every subsystem together and logging a per-period
// summary) and internal/engine/tick.go (a step counter driving
// per-period callbacks), generalized here from a multi-layered tick
// schedule (minute/hour/day) to the domain's single fixed-length "one
// step = one day" cadence.
package engine

import (
	"log/slog"

	"github.com/nkeilbart/exaepi/internal/agents"
	"github.com/nkeilbart/exaepi/internal/contact"
	"github.com/nkeilbart/exaepi/internal/disease"
	"github.com/nkeilbart/exaepi/internal/rng"
	"github.com/nkeilbart/exaepi/internal/world"
)

// Config holds the per-run knobs spec §6 names under "Simulation":
// nsteps, plot_int, random_travel_int and aggregated_diag_int, plus the
// RNG seed. The initial-condition type is chosen by the caller, not here.
type Config struct {
	NSteps          int
	PlotInterval    int
	RandomTravelInt int
	AggDiagInterval int
	Seed            rng.Seed
}

// Simulation ties the agent store, grid, disease parameters, and per-cell
// stats table together and runs the daily cycle over them.
type Simulation struct {
	Store  *agents.Store
	Grid   *world.Grid
	Params *disease.Params
	Stats  disease.StatsTable
	Config Config

	homeBins *world.BinSet
	workBins *world.BinSet

	Step int64
}

// NewSimulation builds a Simulation over an already-populated store and
// grid.
func NewSimulation(store *agents.Store, grid *world.Grid, params *disease.Params, cfg Config) *Simulation {
	return &Simulation{
		Store:  store,
		Grid:   grid,
		Params: params,
		Stats:  disease.NewStatsTable(grid.NumCells()),
		Config: cfg,
	}
}

// Run advances the simulation for Config.NSteps days, calling onStep
// after every completed day with the step number (1-indexed) for the
// caller to snapshot/checkpoint.
func (s *Simulation) Run(onStep func(step int64)) {
	slog.Info("simulation starting", "nsteps", s.Config.NSteps, "agents", s.Store.Len(), "cells", s.Grid.NumCells())

	for step := int64(1); step <= int64(s.Config.NSteps); step++ {
		s.Step = step
		s.RunDay(step)
		if onStep != nil {
			onStep(step)
		}
	}

	counts := s.Store.CountByStatus()
	slog.Info("simulation finished",
		"steps", s.Config.NSteps,
		"never", counts[agents.Never],
		"infected", counts[agents.Infected],
		"immune", counts[agents.Immune],
		"susceptible", counts[agents.Susceptible],
		"dead", counts[agents.Dead],
	)
}

// RunDay advances the simulation by exactly one day: work phase, home
// phase, progression, and (on the configured interval) random travel
// (spec §2, §4.3).
func (s *Simulation) RunDay(step int64) {
	ag := s.Store.Agents()

	world.MoveToWork(s.Grid, ag)
	s.workBins = world.Build(s.Grid, ag, world.WorkCell)
	contact.RunPhase(s.Params, ag, s.workBins, true, s.Config.Seed, step)

	world.MoveToHome(s.Grid, ag)
	s.homeBins = world.Build(s.Grid, ag, world.HomeCell)
	contact.RunPhase(s.Params, ag, s.homeBins, false, s.Config.Seed, step)

	for i := range ag {
		a := &ag[i]
		cellIdx := s.Grid.LinearIndex(world.Cell{I: int(a.HomeI), J: int(a.HomeJ)})
		if cellIdx < 0 || cellIdx >= len(s.Stats) {
			continue
		}
		disease.Progress(a, s.Stats.Cell(cellIdx), s.Config.Seed, step)
	}

	if s.Config.RandomTravelInt > 0 && step%int64(s.Config.RandomTravelInt) == 0 {
		world.RandomTravel(s.Grid, ag, s.Config.Seed, step)
	}

	if step%10 == 0 || step == int64(s.Config.NSteps) {
		hosp, icu, vent, deaths := s.Stats.Totals()
		slog.Info("day complete", "step", step, "hospitalized", hosp, "icu", icu, "ventilator", vent, "deaths", deaths)
	}
}

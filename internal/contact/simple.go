package contact

import (
	"math"

	"github.com/nkeilbart/exaepi/internal/agents"
	"github.com/nkeilbart/exaepi/internal/disease"
	"github.com/nkeilbart/exaepi/internal/rng"
	"github.com/nkeilbart/exaepi/internal/world"
)

// Strain transmission rates used only by the simple cell kernel (spec
// §4.4, §9 open question: these are hardcoded and intentionally do not go
// through disease.Params.PTrans — flagged as a likely-intentional
// divergence of the demo-mode kernel, not a bug to fix).
const (
	simpleBeta0 = 1e-4
	simpleBeta1 = 2e-4
)

// InteractAgents is the simple cell kernel (spec §4.2, §4.4): it ignores
// all mixing-group structure and infects purely by strain-specific
// per-contact probability against the cell's infected count. It is not
// called by engine.Simulation, which runs RunPhase for every initial
// condition, Demo included.
func InteractAgents(p *disease.Params, ag []agents.Agent, bins *world.BinSet, seed rng.Seed, step int64) {
	ncells := len(bins.Offsets) - 1
	for c := 0; c < ncells; c++ {
		cellAgents := bins.CellAgents(c)
		var n0, n1 int
		for _, idx := range cellAgents {
			a := &ag[idx]
			if a.Status == agents.Infected {
				if a.Strain == 0 {
					n0++
				} else {
					n1++
				}
			}
		}
		if n0 == 0 && n1 == 0 {
			continue
		}
		p0 := 1 - math.Pow(1-simpleBeta0, float64(n0))
		p1 := 1 - math.Pow(1-simpleBeta1, float64(n1))

		for _, idx := range cellAgents {
			a := &ag[idx]
			if !a.IsSusceptible() {
				continue
			}
			u0 := rng.Float64(seed, step, uint64(a.ID), "simple-strain0")
			if u0 < p0 {
				infectSimple(p, a, 0, seed, step)
				continue
			}
			u1 := rng.Float64(seed, step, uint64(a.ID), "simple-strain1")
			if u1 < p1 {
				infectSimple(p, a, 1, seed, step)
			}
		}
	}
}

func infectSimple(p *disease.Params, a *agents.Agent, strain uint8, seed rng.Seed, step int64) {
	a.Status = agents.Infected
	a.Strain = strain
	a.DiseaseCounter = 0
	a.IncubationPeriod, a.InfectiousPeriod, a.SymptomdevPeriod =
		disease.SamplePeriods(p, seed, step, uint64(a.ID))
}

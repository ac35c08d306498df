package world

import (
	"github.com/nkeilbart/exaepi/internal/agents"
	"github.com/nkeilbart/exaepi/internal/rng"
)

// RandomTravelProb is the per-agent per-day probability of a random
// long-distance jump (spec §4.3, E6).
const RandomTravelProb = 1e-4

// MoveToHome sets every agent's continuous position to its home cell's
// center. Embarrassingly parallel, idempotent (spec invariant 7): calling
// it twice in a row leaves positions unchanged.
func MoveToHome(g *Grid, ag []agents.Agent) {
	for i := range ag {
		a := &ag[i]
		a.X, a.Y = g.CenterOf(Cell{I: int(a.HomeI), J: int(a.HomeJ)})
	}
}

// MoveToWork sets every agent's continuous position to its work cell's
// center.
func MoveToWork(g *Grid, ag []agents.Agent) {
	for i := range ag {
		a := &ag[i]
		a.X, a.Y = g.CenterOf(Cell{I: int(a.WorkI), J: int(a.WorkJ)})
	}
}

// RandomWalk perturbs every agent's position by U(-1,1)*dx independently
// per axis, seeded deterministically by (seed, step, agent id).
func RandomWalk(g *Grid, ag []agents.Agent, seed rng.Seed, step int64) {
	for i := range ag {
		a := &ag[i]
		dx := (2*rng.Float64(seed, step, uint64(a.ID), "walk-x") - 1) * g.Dx
		dy := (2*rng.Float64(seed, step, uint64(a.ID), "walk-y") - 1) * g.Dx
		a.X += dx
		a.Y += dy
	}
}

// RandomTravel jumps a small fraction of agents to a uniformly random point
// in the domain, modeling rare long-distance travel (spec §4.3, E6).
func RandomTravel(g *Grid, ag []agents.Agent, seed rng.Seed, step int64) {
	lx, ly := g.Length()
	for i := range ag {
		a := &ag[i]
		if rng.Float64(seed, step, uint64(a.ID), "travel-roll") < RandomTravelProb {
			a.X = rng.Float64(seed, step, uint64(a.ID), "travel-x") * lx
			a.Y = rng.Float64(seed, step, uint64(a.ID), "travel-y") * ly
		}
	}
}

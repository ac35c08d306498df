// Package contact implements the binned spatial contact kernel: per cell,
// for every ordered pair of co-located agents, it accumulates the
// receiver's running non-infection probability across every applicable
// mixing group (spec §4.4), then commits new infections.
package contact

import (
	"math"
	"sync/atomic"
	"unsafe"

	"github.com/nkeilbart/exaepi/internal/agents"
	"github.com/nkeilbart/exaepi/internal/disease"
	"github.com/nkeilbart/exaepi/internal/rng"
	"github.com/nkeilbart/exaepi/internal/world"
)

// ResetProb sets every agent's running non-infection probability back to 1
// before a phase's contact pass, per spec §4.4 ("each agent's prob is
// initialized to 1").
func ResetProb(ag []agents.Agent) {
	for i := range ag {
		ag[i].Prob = 1
	}
}

// RunCell runs the per-cell mixing-group procedure (spec §4.4) for one
// cell's bin of agents, multiplying each susceptible receiver's Prob by
// every applicable mixing group's (1 - infect*rate) term. daytime selects
// the work-phase transmission terms; !daytime selects the home-phase ones.
func RunCell(p *disease.Params, ag []agents.Agent, cellAgents []int, daytime bool) {
	for _, ii := range cellAgents {
		receiver := &ag[ii]
		if !receiver.IsSusceptible() {
			continue
		}
		for _, jj := range cellAgents {
			if jj == ii {
				continue
			}
			transmitter := &ag[jj]
			if transmitter.Status != agents.Infected || !transmitter.CanTransmit() {
				continue
			}
			factor := pairFactor(p, receiver, transmitter, daytime)
			if factor < 1 {
				combineProb(receiver, factor)
			}
		}
	}
}

// pairFactor computes the product, over every applicable mixing group for
// this ordered (receiver, transmitter) pair, of (1 - infect*rate*scale).
func pairFactor(p *disease.Params, i, j *agents.Agent, daytime bool) float64 {
	infect := p.Infect(j.Strain)
	factor := 1.0

	if !daytime && i.Nborhood == j.Nborhood && i.Family == j.Family {
		factor *= 1 - infect*householdRate(p, i, j)*p.PFA
	}

	if !daytime && i.Nborhood == j.Nborhood && i.Family/4 == j.Family/4 &&
		!i.Withdrawn && !j.Withdrawn {
		factor *= 1 - infect*neighborhoodClusterRate(p, i, j)*p.PNH*p.SocialScale
	}

	if !i.Withdrawn && !j.Withdrawn {
		factor *= 1 - infect*communityRate(p, i, j)*p.PCO*p.SocialScale
	}

	if daytime && j.Workgroup != 0 && j.WorkI >= 0 && i.WorkI >= 0 && i.Workgroup == j.Workgroup {
		factor *= 1 - infect*p.XmitWork*p.PWO*p.WorkScale
	}

	if i.Nborhood == j.Nborhood {
		factor *= 1 - infect*hoodRate(p, i, j)*p.PNH
	}

	if daytime && i.Nborhood == j.Nborhood && i.School == j.School && (i.School == 5 || i.School > 5) {
		factor *= 1 - infect*daycareRate(p, i.School)*p.PSC*p.SocialScale
	}

	if daytime && i.School == j.School && i.School >= 1 && i.School <= 4 {
		factor *= 1 - infect*schoolRate(p, i, j)*p.PSC
	}

	return factor
}

func isChild(a *agents.Agent) bool { return a.AgeGroup <= agents.Age5to17 }

func householdRate(p *disease.Params, i, j *agents.Agent) float64 {
	if isChild(j) {
		if j.School >= 0 {
			return p.XmitChild[i.AgeGroup]
		}
		return p.XmitChildSC[i.AgeGroup]
	}
	if j.School >= 0 {
		return p.XmitAdult[i.AgeGroup]
	}
	return p.XmitAdultSC[i.AgeGroup]
}

func neighborhoodClusterRate(p *disease.Params, i, j *agents.Agent) float64 {
	if isChild(j) {
		if j.School >= 0 {
			return p.XmitNCChild[i.AgeGroup]
		}
		return p.XmitNCChildSC[i.AgeGroup]
	}
	if j.School >= 0 {
		return p.XmitNCAdult[i.AgeGroup]
	}
	return p.XmitNCAdultSC[i.AgeGroup]
}

func communityRate(p *disease.Params, i, j *agents.Agent) float64 {
	if j.School >= 0 {
		return p.XmitComm[i.AgeGroup]
	}
	return p.XmitCommSC[i.AgeGroup]
}

func hoodRate(p *disease.Params, i, j *agents.Agent) float64 {
	if j.School >= 0 {
		return p.XmitHood[i.AgeGroup]
	}
	return p.XmitHoodSC[i.AgeGroup]
}

func daycareRate(p *disease.Params, school int8) float64 {
	if school == 5 {
		return p.XmitSchool[5]
	}
	return p.XmitSchool[6]
}

func schoolRate(p *disease.Params, i, j *agents.Agent) float64 {
	s := j.School
	switch {
	case isChild(i) && isChild(j):
		return p.XmitSchool[s]
	case isChild(i) && !isChild(j):
		return p.XmitSchAdultToChild[s]
	case !isChild(i) && isChild(j):
		return p.XmitSchChildToAdult[s]
	default:
		return 0
	}
}

// combineProb atomically multiplies a.Prob by factor using a
// compare-and-swap loop on the underlying bit pattern (design doc "Atomic
// multiplicative combine on prob[i]"), so that concurrent updates to the
// same receiver from different transmitters in the same cell are never
// lost regardless of visitation order.
func combineProb(a *agents.Agent, factor float64) {
	addr := (*uint64)(unsafe.Pointer(&a.Prob))
	for {
		oldBits := atomic.LoadUint64(addr)
		oldVal := math.Float64frombits(oldBits)
		newVal := oldVal * factor
		newBits := math.Float64bits(newVal)
		if atomic.CompareAndSwapUint64(addr, oldBits, newBits) {
			return
		}
	}
}

// InfectAgents is the commit step: each susceptible agent's Prob now holds
// its probability of not being infected today. Flip it to 1-Prob, draw
// U(0,1), and on success transition to Infected, sampling fresh period
// lengths (spec §4.4 "Commit").
func InfectAgents(p *disease.Params, ag []agents.Agent, seed rng.Seed, step int64) {
	for i := range ag {
		a := &ag[i]
		if !a.IsSusceptible() {
			continue
		}
		pInfect := 1 - a.Prob
		if pInfect <= 0 {
			continue
		}
		if rng.Float64(seed, step, uint64(a.ID), "infect-draw") >= pInfect {
			continue
		}
		a.Status = agents.Infected
		a.DiseaseCounter = 0
		a.IncubationPeriod, a.InfectiousPeriod, a.SymptomdevPeriod =
			disease.SamplePeriods(p, seed, step, uint64(a.ID))
	}
}

// RunPhase runs the full per-phase contact pass over every owned cell's
// bin and commits new infections. bins must have been built for the
// current phase (home or work) before calling.
func RunPhase(p *disease.Params, ag []agents.Agent, bins *world.BinSet, daytime bool, seed rng.Seed, step int64) {
	ResetProb(ag)
	ncells := len(bins.Offsets) - 1
	for c := 0; c < ncells; c++ {
		cellAgents := bins.CellAgents(c)
		if len(cellAgents) < 2 {
			continue
		}
		RunCell(p, ag, cellAgents, daytime)
	}
	InfectAgents(p, ag, seed, step)
}

package disease

import (
	"math"

	"github.com/nkeilbart/exaepi/internal/agents"
	"github.com/nkeilbart/exaepi/internal/rng"
)

// Age-stratified daily risk tables, indexed by agents.AgeGroup (spec §4.5).
var (
	chr = [agents.NumAgeGroups]float64{.0104, .0104, .070, .28, 1.0}   // symptomatic -> hospital
	cic = [agents.NumAgeGroups]float64{.24, .24, .24, .36, .35}        // hospital -> ICU
	cve = [agents.NumAgeGroups]float64{.12, .12, .12, .22, .22}        // ICU -> ventilator
	cvf = [agents.NumAgeGroups]float64{.20, .20, .20, .45, 1.26}       // ventilator-stage death tiers
)

// minPeriod is the clamp floor for Normal-sampled period lengths (spec §7:
// "clamped to a small positive value, >= 0.5 day recommended").
const minPeriod = 0.5

// SamplePeriods draws a fresh agent's incubation/infectious/symptom-onset
// period lengths from independent Normal distributions, clamping any
// non-positive sample up to minPeriod (spec §4.4 commit step, §7).
func SamplePeriods(p *Params, seed rng.Seed, step int64, agentID uint64) (incubation, infectious, symptomdev float64) {
	incubation = clampPositive(rng.Normal(seed, step, agentID, "incubation-period", p.IncubationMean, p.IncubationStd))
	infectious = clampPositive(rng.Normal(seed, step, agentID, "infectious-period", p.InfectiousMean, p.InfectiousStd))
	symptomdev = clampPositive(rng.Normal(seed, step, agentID, "symptomdev-period", p.SymptomdevMean, p.SymptomdevStd))
	return
}

func clampPositive(v float64) float64 {
	if v < minPeriod {
		return minPeriod
	}
	return v
}

// treatmentTimerBase returns the initial hospital-stay countdown for a
// newly-hospitalized agent, by age group (spec §4.5 step 3).
func treatmentTimerBase(age agents.AgeGroup, seed rng.Seed, step int64, agentID uint64) float64 {
	switch age {
	case agents.AgeUnder5, agents.Age5to17, agents.Age18to29:
		return 3
	case agents.Age65Plus:
		return 7
	case agents.Age30to64:
		if rng.Float64(seed, step, agentID, "ward-duration-3064") < 0.57 {
			return 3
		}
		return 8
	default:
		return 3
	}
}

// Progress advances one infected agent's disease state by one day (spec
// §4.5). Non-infected agents (never/susceptible/immune/dead) are
// untouched. cellStats is the home-community counter set this agent's
// hospitalization events are attributed to.
func Progress(a *agents.Agent, cellStats *CellStats, seed rng.Seed, step int64) {
	if a.Status != agents.Infected {
		return
	}

	before := a.DiseaseCounter
	a.DiseaseCounter++

	if a.DiseaseCounter < a.IncubationPeriod {
		return // still incubating, non-transmitting
	}

	onsetDay := math.Ceil(a.IncubationPeriod)
	justOnset := before < onsetDay && a.DiseaseCounter >= onsetDay
	if justOnset && a.TreatmentTimer == 0 {
		onSymptomOnset(a, cellStats, seed, step)
	} else if a.TreatmentTimer > 0 {
		// Decrement only runs on days after the onset day sets the timer,
		// matching spec §4.5 rule 4 (rule 3's timer-set and rule 4's first
		// decrement never happen on the same day).
		progressTreatment(a, cellStats, seed, step)
		return
	}

	if a.DiseaseCounter >= a.IncubationPeriod+a.InfectiousPeriod {
		a.Status = agents.Immune
	}
}

func onSymptomOnset(a *agents.Agent, cellStats *CellStats, seed rng.Seed, step int64) {
	a.Symptomatic = true
	age := a.AgeGroup
	agentID := uint64(a.ID)

	if rng.Float64(seed, step, agentID, "hospitalize") >= chr[age] {
		return
	}

	a.TreatmentTimer = treatmentTimerBase(age, seed, step, agentID)
	cellStats.Hospitalized.Add(1)

	if rng.Float64(seed, step, agentID, "icu") >= cic[age] {
		return
	}
	a.TreatmentTimer += 10
	cellStats.ICU.Add(1)

	if rng.Float64(seed, step, agentID, "ventilator") >= cve[age] {
		return
	}
	a.TreatmentTimer += 10
	cellStats.Ventilator.Add(1)
}

func progressTreatment(a *agents.Agent, cellStats *CellStats, seed rng.Seed, step int64) {
	a.TreatmentTimer--
	age := a.AgeGroup
	agentID := uint64(a.ID)

	switch a.TreatmentTimer {
	case 20: // end of ventilator stage
		if rng.Float64(seed, step, agentID, "vent-death") < clamp01(cvf[age]) {
			kill(a, cellStats)
		}
		cellStats.Ventilator.Add(-1)
	case 10: // end of ICU stage
		if cvf[age] > 1 {
			if rng.Float64(seed, step, agentID, "icu-death") < clamp01(cvf[age]-1) {
				kill(a, cellStats)
			}
		}
		cellStats.ICU.Add(-1)
	case 0: // end of ward stage
		if cvf[age] > 2 {
			if rng.Float64(seed, step, agentID, "ward-death") < clamp01(cvf[age]-2) {
				kill(a, cellStats)
			}
		}
		cellStats.Hospitalized.Add(-1)
		if a.Status != agents.Dead {
			a.Status = agents.Immune
		}
	}
}

func kill(a *agents.Agent, cellStats *CellStats) {
	a.Status = agents.Dead
	cellStats.Deaths.Add(1)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

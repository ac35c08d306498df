// Package disease holds the immutable per-run disease parameter table
// (spec §2 component 2) and the stochastic progression state machine
// (spec §4.5). Grounded on the pattern of a single parameter struct built
// once and shared by reference (internal/agents.SpawnConfig in the
// source repo), generalized from "one config field" to the full
// age-stratified transmission/mortality tables this domain needs.
package disease

import "github.com/nkeilbart/exaepi/internal/agents"

// Params is the immutable disease parameter table: transmission
// coefficients by mixing group and receiver age group, incubation/
// infectious/symptom-onset period distributions, vaccine efficacy, and
// reinfection probability. One instance is built at startup and shared by
// reference across the contact kernel and progression kernel (design doc
// "Global mutable state" note: never copied per-worker).
type Params struct {
	NStrain      int
	ReinfectProb float64
	VacEff       float64
	PTrans       []float64 // per strain
	PAsymp       []float64 // per strain
	ReducedInf   []float64 // per strain

	IncubationMean, IncubationStd float64
	InfectiousMean, InfectiousStd float64
	SymptomdevMean, SymptomdevStd float64

	// Infect is the base per-contact coefficient (spec §4.4: infect =
	// lparm.infect * lparm.vac_eff). lparm.infect folds in PTrans[strain];
	// callers index by the transmitter's strain.
	InfectBase []float64 // per strain

	// Per-venue contact multipliers, named directly after the recognized
	// config keys in spec §6.
	PSC, PCO, PNH, PWO, PFA, PBAR float64

	// Hooks left at 1.0 per spec §4.4 ("social_scale = 1 and work_scale = 1
	// currently, left as per-cell hooks").
	SocialScale, WorkScale float64

	// Transmission vectors, indexed by the receiver's age group (spec
	// §4.4: "Contributions use the age group of the receiver i").
	XmitChild, XmitChildSC     [agents.NumAgeGroups]float64
	XmitAdult, XmitAdultSC     [agents.NumAgeGroups]float64
	XmitNCChild, XmitNCChildSC [agents.NumAgeGroups]float64
	XmitNCAdult, XmitNCAdultSC [agents.NumAgeGroups]float64
	XmitComm, XmitCommSC       [agents.NumAgeGroups]float64
	XmitHood, XmitHoodSC       [agents.NumAgeGroups]float64

	XmitWork float64 // scalar, no age stratification (spec §4.4 table)

	// Indexed by school id (0..6; id 6 stands for "6 or greater").
	XmitSchool          [7]float64
	XmitSchAdultToChild [7]float64
	XmitSchChildToAdult [7]float64
}

// Default returns a baseline parameter table. The age-stratified
// transmission coefficients are not named as config keys in spec §6 (only
// the per-venue multipliers and the disease.* scalars are), so their
// magnitudes are an implementation choice; see DESIGN.md.
func Default() *Params {
	p := &Params{
		NStrain:        1,
		ReinfectProb:   0,
		VacEff:         1.0,
		PTrans:         []float64{1.0, 1.0},
		PAsymp:         []float64{0.4, 0.4},
		ReducedInf:     []float64{0.5, 0.5},
		IncubationMean: 3.0,
		IncubationStd:  1.0,
		InfectiousMean: 7.0,
		InfectiousStd:  2.0,
		SymptomdevMean: 2.0,
		SymptomdevStd:  1.0,
		InfectBase:     []float64{0.02, 0.02},
		PSC:            1.0,
		PCO:            1.0,
		PNH:            1.0,
		PWO:            1.0,
		PFA:            1.0,
		PBAR:           1.0,
		SocialScale:    1.0,
		WorkScale:      1.0,
		XmitWork:       0.03,
	}
	for g := 0; g < agents.NumAgeGroups; g++ {
		p.XmitChild[g] = 0.10
		p.XmitChildSC[g] = 0.04
		p.XmitAdult[g] = 0.08
		p.XmitAdultSC[g] = 0.03
		p.XmitNCChild[g] = 0.05
		p.XmitNCChildSC[g] = 0.02
		p.XmitNCAdult[g] = 0.04
		p.XmitNCAdultSC[g] = 0.015
		p.XmitComm[g] = 0.01
		p.XmitCommSC[g] = 0.004
		p.XmitHood[g] = 0.02
		p.XmitHoodSC[g] = 0.008
	}
	for s := 0; s < 7; s++ {
		p.XmitSchool[s] = 0.06
		p.XmitSchAdultToChild[s] = 0.03
		p.XmitSchChildToAdult[s] = 0.03
	}
	return p
}

// Infect returns the base transmission coefficient for a transmitting
// agent's strain, scaled by that strain's PTrans entry (when present) and
// by vaccine efficacy (spec §4.4).
func (p *Params) Infect(strain uint8) float64 {
	base := 0.0
	if int(strain) < len(p.InfectBase) {
		base = p.InfectBase[strain]
	}
	if int(strain) < len(p.PTrans) {
		base *= p.PTrans[strain]
	}
	return base * p.VacEff
}

// Package agents provides the agent data model: a fixed-size record per
// individual, laid out as a pair of typed field groups (integer, real)
// rather than a grab-bag of loosely-typed indices.
package agents

import "fmt"

// ID uniquely identifies an agent for its entire lifetime. IDs are assigned
// once at creation and never reused or renumbered, even after death.
type ID uint64

// Status is the epidemiological state of an agent.
type Status uint8

const (
	Never Status = iota
	Infected
	Immune
	Susceptible
	Dead
)

func (s Status) String() string {
	switch s {
	case Never:
		return "never"
	case Infected:
		return "infected"
	case Immune:
		return "immune"
	case Susceptible:
		return "susceptible"
	case Dead:
		return "dead"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// AgeGroup buckets an agent by age for transmission and mortality tables.
type AgeGroup uint8

const (
	AgeUnder5 AgeGroup = iota
	Age5to17
	Age18to29
	Age30to64
	Age65Plus
	NumAgeGroups = int(Age65Plus) + 1
)

// School encodes an agent's school assignment. Zero means not in school;
// a negative value means an adult not employed at a school.
const (
	SchoolNotWorker int8 = -1 // adult, not employed at a school
	SchoolNone      int8 = 0
	SchoolHigh      int8 = 1
	SchoolMiddle    int8 = 2
	// SchoolElementary0, SchoolElementary1 = 3, 4 (by neighborhood pair)
	SchoolDaycare   int8 = 5
	SchoolPlaygroup int8 = 6 // 6 or greater = playgroup
)

// IntFields groups the agent's integer-valued (categorical/relational)
// attributes. Kept separate from RealFields so that a bulk-import or a
// binning pass can touch only the fields it needs.
type IntFields struct {
	Status       Status
	Strain       uint8 // 0 or 1
	AgeGroup     AgeGroup
	Family       int32
	HomeI, HomeJ int32
	WorkI, WorkJ int32
	Nborhood     uint8 // 0..3
	WorkNborhood uint8
	School       int8 // -1, 0, 1, 2, 3, 4, 5, >=6
	Workgroup    int32
	Withdrawn    bool
	Symptomatic  bool
}

// RealFields groups the agent's real-valued (continuous) attributes.
type RealFields struct {
	X, Y float64

	DiseaseCounter float64 // days since infection
	TreatmentTimer float64 // hospital-stay countdown
	Prob           float64 // running non-infection probability for the current phase

	IncubationPeriod float64
	InfectiousPeriod float64
	SymptomdevPeriod float64
}

// Agent is one individual. The ID is immutable; Status=Dead is terminal but
// the record is retained (no re-numbering, no removal).
type Agent struct {
	ID ID
	IntFields
	RealFields
}

// IsSusceptible reports whether a can still acquire an infection.
func (a *Agent) IsSusceptible() bool {
	return a.Status == Never || a.Status == Susceptible
}

// CanTransmit reports whether a is infected and done incubating, i.e. it can
// pass the disease on to a susceptible contact.
func (a *Agent) CanTransmit() bool {
	return a.Status == Infected && a.DiseaseCounter >= a.IncubationPeriod
}

package contact

import (
	"testing"

	"github.com/nkeilbart/exaepi/internal/agents"
	"github.com/nkeilbart/exaepi/internal/disease"
	"github.com/nkeilbart/exaepi/internal/world"
)

func TestInteractAgents_NoInfectedAgentsNoSpread(t *testing.T) {
	p := disease.Default()
	ag := singleCellPopulation(50, 0)
	g := world.NewGrid(1, 1, 1.0)
	bins := world.Build(g, ag, world.HomeCell)

	InteractAgents(p, ag, bins, 42, 1)

	if got := countStatus(ag, agents.Infected); got != 0 {
		t.Fatalf("InteractAgents infected %d agents with no infected seed present", got)
	}
}

func TestInteractAgents_SpreadsFromSeed(t *testing.T) {
	p := disease.Default()
	ag := singleCellPopulation(300, 0)
	for i := 0; i < 20; i++ {
		ag[i].Status = agents.Infected
		ag[i].Strain = 0
	}
	initialInfected := countStatus(ag, agents.Infected)
	g := world.NewGrid(1, 1, 1.0)

	for step := int64(1); step <= 60; step++ {
		bins := world.Build(g, ag, world.HomeCell)
		InteractAgents(p, ag, bins, 42, step)
	}

	if got := countStatus(ag, agents.Infected); got <= initialInfected {
		t.Errorf("InteractAgents did not spread infection after 60 steps with 20 seed infections, got %d infected (started with %d)", got, initialInfected)
	}
}

func TestInteractAgents_RecoveredAgentsAreSkipped(t *testing.T) {
	p := disease.Default()
	ag := singleCellPopulation(20, 0)
	ag[0].Status = agents.Infected
	for i := 1; i < len(ag); i++ {
		ag[i].Status = agents.Immune
	}
	g := world.NewGrid(1, 1, 1.0)
	bins := world.Build(g, ag, world.HomeCell)

	InteractAgents(p, ag, bins, 1, 1)

	for i := 1; i < len(ag); i++ {
		if ag[i].Status != agents.Immune {
			t.Fatalf("agent %d with Immune status was reinfected by InteractAgents", i)
		}
	}
}

func TestInfectSimple_SetsStrainAndPeriods(t *testing.T) {
	p := disease.Default()
	a := &agents.Agent{ID: 1}
	infectSimple(p, a, 1, 42, 3)

	if a.Status != agents.Infected {
		t.Errorf("infectSimple did not set Status to Infected")
	}
	if a.Strain != 1 {
		t.Errorf("infectSimple set Strain = %d, want 1", a.Strain)
	}
	if a.IncubationPeriod <= 0 || a.InfectiousPeriod <= 0 {
		t.Errorf("infectSimple left non-positive progression periods: incubation=%v infectious=%v", a.IncubationPeriod, a.InfectiousPeriod)
	}
}

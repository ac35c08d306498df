package agents

import "testing"

func TestIsSusceptible(t *testing.T) {
	cases := []struct {
		status Status
		want   bool
	}{
		{Never, true},
		{Susceptible, true},
		{Infected, false},
		{Immune, false},
		{Dead, false},
	}
	for _, c := range cases {
		a := Agent{IntFields: IntFields{Status: c.status}}
		if got := a.IsSusceptible(); got != c.want {
			t.Errorf("IsSusceptible() with status %v = %v, want %v", c.status, got, c.want)
		}
	}
}

func TestCanTransmit_RequiresPastIncubation(t *testing.T) {
	a := Agent{
		IntFields:  IntFields{Status: Infected},
		RealFields: RealFields{DiseaseCounter: 2, IncubationPeriod: 3},
	}
	if a.CanTransmit() {
		t.Error("agent still incubating should not be able to transmit")
	}
	a.DiseaseCounter = 3
	if !a.CanTransmit() {
		t.Error("agent past incubation should be able to transmit")
	}
}

func TestStatusString(t *testing.T) {
	if Dead.String() == "" || Infected.String() == "" {
		t.Error("Status.String() returned empty string for a known status")
	}
}

package world

import (
	"testing"

	"github.com/nkeilbart/exaepi/internal/agents"
)

func TestMoveToHome_SetsCellCenter(t *testing.T) {
	g := NewGrid(5, 5, 2.0)
	ag := []agents.Agent{{IntFields: agents.IntFields{HomeI: 2, HomeJ: 3}}}
	MoveToHome(g, ag)

	wantX, wantY := g.CenterOf(Cell{2, 3})
	if ag[0].X != wantX || ag[0].Y != wantY {
		t.Errorf("MoveToHome set (%v,%v), want (%v,%v)", ag[0].X, ag[0].Y, wantX, wantY)
	}
}

func TestMoveToHome_Idempotent(t *testing.T) {
	g := NewGrid(5, 5, 2.0)
	ag := []agents.Agent{{IntFields: agents.IntFields{HomeI: 1, HomeJ: 1}}}
	MoveToHome(g, ag)
	x1, y1 := ag[0].X, ag[0].Y
	MoveToHome(g, ag)
	if ag[0].X != x1 || ag[0].Y != y1 {
		t.Error("MoveToHome is not idempotent")
	}
}

func TestMoveToWork_SetsCellCenter(t *testing.T) {
	g := NewGrid(5, 5, 1.0)
	ag := []agents.Agent{{IntFields: agents.IntFields{WorkI: 4, WorkJ: 0}}}
	MoveToWork(g, ag)

	wantX, wantY := g.CenterOf(Cell{4, 0})
	if ag[0].X != wantX || ag[0].Y != wantY {
		t.Errorf("MoveToWork set (%v,%v), want (%v,%v)", ag[0].X, ag[0].Y, wantX, wantY)
	}
}

func TestRandomTravel_StaysWithinDomain(t *testing.T) {
	g := NewGrid(10, 10, 1.0)
	ag := make([]agents.Agent, 500)
	for i := range ag {
		ag[i].ID = agents.ID(i + 1)
	}
	RandomTravel(g, ag, 99, 1)

	lx, ly := g.Length()
	for i := range ag {
		if ag[i].X < 0 || ag[i].X >= lx || ag[i].Y < 0 || ag[i].Y >= ly {
			t.Fatalf("agent %d landed at (%v,%v), outside domain [0,%v)x[0,%v)", i, ag[i].X, ag[i].Y, lx, ly)
		}
	}
}

func TestRandomTravel_Deterministic(t *testing.T) {
	g := NewGrid(10, 10, 1.0)
	ag1 := make([]agents.Agent, 50)
	ag2 := make([]agents.Agent, 50)
	for i := range ag1 {
		ag1[i].ID = agents.ID(i + 1)
		ag2[i].ID = agents.ID(i + 1)
	}
	RandomTravel(g, ag1, 7, 3)
	RandomTravel(g, ag2, 7, 3)
	for i := range ag1 {
		if ag1[i].X != ag2[i].X || ag1[i].Y != ag2[i].Y {
			t.Fatalf("agent %d: non-deterministic random travel", i)
		}
	}
}

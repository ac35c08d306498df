package world

import (
	"testing"

	"github.com/nkeilbart/exaepi/internal/agents"
)

func buildAgentsAt(homes []Cell) []agents.Agent {
	ag := make([]agents.Agent, len(homes))
	for i, c := range homes {
		ag[i] = agents.Agent{
			ID: agents.ID(i + 1),
			IntFields: agents.IntFields{
				HomeI: int32(c.I), HomeJ: int32(c.J),
				WorkI: int32(c.I), WorkJ: int32(c.J),
			},
		}
	}
	return ag
}

func TestBuild_GroupsAgentsByCell(t *testing.T) {
	g := NewGrid(3, 3, 1.0)
	ag := buildAgentsAt([]Cell{{0, 0}, {1, 1}, {0, 0}, {2, 2}})

	bins := Build(g, ag, HomeCell)

	cell00 := bins.CellAgents(g.LinearIndex(Cell{0, 0}))
	if len(cell00) != 2 {
		t.Fatalf("cell (0,0) has %d agents, want 2", len(cell00))
	}
	seen := map[int]bool{cell00[0]: true, cell00[1]: true}
	if !seen[0] || !seen[2] {
		t.Errorf("cell (0,0) bin = %v, want indices {0,2}", cell00)
	}

	cell11 := bins.CellAgents(g.LinearIndex(Cell{1, 1}))
	if len(cell11) != 1 || cell11[0] != 1 {
		t.Errorf("cell (1,1) bin = %v, want [1]", cell11)
	}
}

func TestBuild_EmptyCellHasNoAgents(t *testing.T) {
	g := NewGrid(3, 3, 1.0)
	ag := buildAgentsAt([]Cell{{0, 0}})
	bins := Build(g, ag, HomeCell)

	empty := bins.CellAgents(g.LinearIndex(Cell{2, 2}))
	if len(empty) != 0 {
		t.Errorf("unpopulated cell has %d agents, want 0", len(empty))
	}
}

func TestBuild_OutOfBoundsAgentsExcludedFromRealCells(t *testing.T) {
	g := NewGrid(2, 2, 1.0)
	ag := buildAgentsAt([]Cell{{5, 5}, {0, 0}})
	bins := Build(g, ag, HomeCell)

	total := 0
	for c := 0; c < g.NumCells(); c++ {
		total += len(bins.CellAgents(c))
	}
	if total != 1 {
		t.Errorf("real cells hold %d agents, want 1 (out-of-bounds agent excluded)", total)
	}
}

func TestWorkCellHomeCell(t *testing.T) {
	a := &agents.Agent{IntFields: agents.IntFields{HomeI: 1, HomeJ: 2, WorkI: 3, WorkJ: 4}}
	if got := HomeCell(a); got != (Cell{1, 2}) {
		t.Errorf("HomeCell = %+v, want {1 2}", got)
	}
	if got := WorkCell(a); got != (Cell{3, 4}) {
		t.Errorf("WorkCell = %+v, want {3 4}", got)
	}
}

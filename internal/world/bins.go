package world

import "github.com/nkeilbart/exaepi/internal/agents"

// BinSet is a per-cell contiguous index view over an agent store for one
// day phase (home or work). Agents in cell c are Indices[Offsets[c] :
// Offsets[c+1]]. A BinSet is a weak view: it holds indices into the store
// it was built from and must be rebuilt (never mutated in place) after any
// motion that changes cell membership, per design doc "cyclic dependencies".
type BinSet struct {
	Offsets []int // length NumCells+1, monotonic non-decreasing
	Indices []int // length len(agents), a permutation of [0, len(agents))
}

// Build constructs a BinSet by a counting sort of ag over the grid's cells,
// using the supplied cellOf function to read each agent's current phase
// position (home or work). Construction is deterministic for a given input
// ordering (ties within a cell preserve the original relative order).
func Build(g *Grid, ag []agents.Agent, cellOf func(*agents.Agent) Cell) *BinSet {
	n := len(ag)
	ncells := g.NumCells()

	counts := make([]int, ncells+1)
	cellIdx := make([]int, n)
	for i := range ag {
		c := cellOf(&ag[i])
		li := 0
		if g.InBounds(c) {
			li = g.LinearIndex(c)
		} else {
			li = ncells // out-of-bounds agents collect in a trailing bucket
		}
		cellIdx[i] = li
		counts[li]++
	}

	offsets := make([]int, ncells+2)
	for c := 0; c <= ncells; c++ {
		offsets[c+1] = offsets[c] + counts[c]
	}

	cursor := make([]int, ncells+1)
	copy(cursor, offsets[:ncells+1])

	indices := make([]int, n)
	for i := range ag {
		li := cellIdx[i]
		indices[cursor[li]] = i
		cursor[li]++
	}

	return &BinSet{Offsets: offsets[:ncells+1], Indices: indices}
}

// CellAgents returns the dense indices of agents currently in cell c.
func (b *BinSet) CellAgents(c int) []int {
	return b.Indices[b.Offsets[c]:b.Offsets[c+1]]
}

// HomeCell reads an agent's home-phase cell.
func HomeCell(a *agents.Agent) Cell {
	return Cell{I: int(a.HomeI), J: int(a.HomeJ)}
}

// WorkCell reads an agent's work-phase cell.
func WorkCell(a *agents.Agent) Cell {
	return Cell{I: int(a.WorkI), J: int(a.WorkJ)}
}

// PositionCell reads an agent's actual current position's cell, i.e. where
// the agent physically is rather than its home/work assignment. Nothing in
// this module builds bins with it; the engine bins by HomeCell and WorkCell.
func PositionCell(g *Grid) func(*agents.Agent) Cell {
	return func(a *agents.Agent) Cell {
		return g.CellOf(a.X, a.Y)
	}
}

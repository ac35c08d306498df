package world

import "testing"

func TestCellOf_FloorDivision(t *testing.T) {
	g := NewGrid(10, 10, 2.0)
	cases := []struct {
		x, y   float64
		i, j   int
	}{
		{0.0, 0.0, 0, 0},
		{1.99, 0.0, 0, 0},
		{2.0, 0.0, 1, 0},
		{3.5, 5.9, 1, 2},
		{-0.5, 0.0, -1, 0},
	}
	for _, c := range cases {
		got := g.CellOf(c.x, c.y)
		if got.I != c.i || got.J != c.j {
			t.Errorf("CellOf(%v,%v) = %+v, want {%d %d}", c.x, c.y, got, c.i, c.j)
		}
	}
}

func TestLinearIndex_RowMajor(t *testing.T) {
	g := NewGrid(5, 5, 1.0)
	if got := g.LinearIndex(Cell{I: 2, J: 1}); got != 7 {
		t.Errorf("LinearIndex({2,1}) = %d, want 7", got)
	}
	if got := g.LinearIndex(Cell{I: 0, J: 0}); got != 0 {
		t.Errorf("LinearIndex({0,0}) = %d, want 0", got)
	}
}

func TestCenterOf_RoundTrips(t *testing.T) {
	g := NewGrid(5, 5, 2.0)
	c := Cell{I: 3, J: 2}
	x, y := g.CenterOf(c)
	got := g.CellOf(x, y)
	if got != c {
		t.Errorf("CenterOf/CellOf round trip: got %+v, want %+v", got, c)
	}
}

func TestInBounds(t *testing.T) {
	g := NewGrid(3, 3, 1.0)
	if !g.InBounds(Cell{I: 0, J: 0}) || !g.InBounds(Cell{I: 2, J: 2}) {
		t.Error("corner cells reported out of bounds")
	}
	if g.InBounds(Cell{I: 3, J: 0}) || g.InBounds(Cell{I: -1, J: 0}) {
		t.Error("out-of-range cells reported in bounds")
	}
}

func TestNumCells(t *testing.T) {
	g := NewGrid(4, 6, 1.0)
	if g.NumCells() != 24 {
		t.Errorf("NumCells() = %d, want 24", g.NumCells())
	}
}

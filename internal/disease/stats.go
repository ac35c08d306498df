package disease

import "sync/atomic"

// CellStats holds the per-cell hospitalization/ICU/ventilator/death
// counters the progression kernel updates. Fields are atomic so that
// parallel workers touching the same cell produce a correct sum
// regardless of visitation order (spec §5).
type CellStats struct {
	Hospitalized atomic.Int64
	ICU          atomic.Int64
	Ventilator   atomic.Int64
	Deaths       atomic.Int64
}

// StatsTable is one CellStats per community. Indexed by the same linear
// cell index world.Grid.LinearIndex produces.
type StatsTable []CellStats

// NewStatsTable allocates a zeroed stats table for ncells communities.
func NewStatsTable(ncells int) StatsTable {
	return make(StatsTable, ncells)
}

// Cell returns a pointer to the given cell's counters.
func (t StatsTable) Cell(i int) *CellStats {
	return &t[i]
}

// Totals sums every cell's counters, for per-run reporting.
func (t StatsTable) Totals() (hosp, icu, vent, deaths int64) {
	for i := range t {
		hosp += t[i].Hospitalized.Load()
		icu += t[i].ICU.Load()
		vent += t[i].Ventilator.Load()
		deaths += t[i].Deaths.Load()
	}
	return
}

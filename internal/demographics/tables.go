// Package demographics holds the immutable per-unit demographic tables
// (spec §2 component 1) and the demographic initializer that populates a
// grid of communities from them (spec §4.1, §4.2). Grounded on the
// teacher's agents.Spawner (source repo internal/agents/spawner.go): a
// seeded generator that walks a population count and produces typed
// records, generalized here from "one flat population count" to the
// household/age/school structure census data requires.
package demographics

import "log/slog"

// Unit is one census administrative region's demographic record, as read
// from the census file (spec §6). Fields match the file's column order.
type Unit struct {
	ID         int
	Population int
	DayWorkers int
	FIPS       int
	Tract      int

	// Age cohort counts, N<5 N5-17 N18-29 N30-64 N65+ (indices match
	// agents.AgeGroup 0..4 directly).
	N [5]int

	// Household-size counts, H1..H7 (1 through 7+ occupants).
	H [7]int
}

// Tables is the immutable demographic table set: one Unit per census
// region plus the Start index that maps a linear community number to its
// owning unit. Built once at startup and shared by reference with the
// initializer (spec §2).
type Tables struct {
	Units []Unit
	// Start[u] is the first community index belonging to Units[u];
	// Start[len(Units)] is the total community count, Ncommunity.
	Start []int
}

// communitiesForPopulation returns how many standard 2000-person
// communities a unit's population spans: at least one, since the last
// community of a unit may hold as little as the 0..2000 remainder (spec
// §4.1 step 3).
func communitiesForPopulation(population int) int {
	if population <= 0 {
		return 1
	}
	n := (population + 1999) / 2000
	if n < 1 {
		n = 1
	}
	return n
}

// NewTables builds a Tables from a slice of Units, computing the Start
// index. The order of units fixes their community numbering.
func NewTables(units []Unit) *Tables {
	start := make([]int, len(units)+1)
	for i, u := range units {
		start[i+1] = start[i] + communitiesForPopulation(u.Population)
		if u.H == ([7]int{}) {
			slog.Warn("unit reports zero household counts, using default household-size CDF", "unit", u.ID)
		}
	}
	return &Tables{Units: units, Start: start}
}

// Ncommunity returns the total number of communities across every unit.
func (t *Tables) Ncommunity() int {
	return t.Start[len(t.Start)-1]
}

// UnitForCommunity finds the unit u such that Start[u] <= community <
// Start[u+1] (spec §4.1 step 2). Returns false if community is out of
// range.
func (t *Tables) UnitForCommunity(community int) (int, bool) {
	if community < 0 || community >= t.Ncommunity() {
		return 0, false
	}
	lo, hi := 0, len(t.Units)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if t.Start[mid] <= community {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo, true
}

// CommunitySize returns the number of residents the initializer should
// place in the given community: 0 if fewer than 1000 of the unit's
// residents remain after the earlier communities' 2000 each
// (workgroup-only cell), else the standard 2000 (spec §4.1 step 3).
func (t *Tables) CommunitySize(unit, community int) int {
	u := t.Units[unit]
	if u.Population < 1000+2000*(community-t.Start[unit]) {
		return 0
	}
	return 2000
}

// defaultHouseholdCDF is used when a unit reports zero household counts
// (spec §4.1 step 4).
var defaultHouseholdCDF = [7]int{330, 670, 800, 900, 970, 990, 1000}

// HouseholdCDF returns the cumulative household-size distribution scaled
// to 1000 for a unit (spec §4.1 step 4): cdf[size-1] is the exclusive upper
// bound for `size`, so cdf[size-2] <= draw < cdf[size-1] selects `size`
// (the lower bound for size 1 is 0).
func HouseholdCDF(u *Unit) [7]int {
	var total int
	for _, h := range u.H {
		total += h
	}
	if total == 0 {
		return defaultHouseholdCDF
	}
	var cdf [7]int
	cum := 0
	for i, h := range u.H {
		cum += h * 1000 / total
		cdf[i] = cum
	}
	cdf[6] = 1000 // guard against rounding leaving the top bucket short
	return cdf
}

// SchoolAgeProb returns p_schoolage = 100*N17/(N5+N17), the percentage
// (0-100) of a size>=3 household's non-parent children who are
// school-age, falling back to the documented default of 76 when the
// unit's age data is absent (spec §4.1 step 7).
func SchoolAgeProb(u *Unit) float64 {
	n5, n17 := u.N[0], u.N[1]
	if n5+n17 == 0 {
		return 76
	}
	return 100 * float64(n17) / float64(n5+n17)
}

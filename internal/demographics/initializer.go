package demographics

import (
	"fmt"

	"github.com/nkeilbart/exaepi/internal/agents"
	"github.com/nkeilbart/exaepi/internal/rng"
	"github.com/nkeilbart/exaepi/internal/world"
)

// InitCell populates one owned cell (i,j) with agents drawn from its
// unit's demographic tables (spec §4.1). It returns the number of agents
// added, or an error if the per-age-group sum invariant is violated
// (spec §7: a fatal assertion, since it indicates corrupt input).
func InitCell(t *Tables, g *world.Grid, cell world.Cell, seed rng.Seed, store *agents.Store) (int, error) {
	community := g.LinearIndex(cell)
	if community >= t.Ncommunity() {
		return 0, nil // empty cell, beyond the last unit's last community
	}

	unit, ok := t.UnitForCommunity(community)
	if !ok {
		return 0, nil
	}

	communitySize := t.CommunitySize(unit, community)
	if communitySize == 0 {
		return 0, nil // workgroup-only cell, no residents
	}

	cdf := HouseholdCDF(&t.Units[unit])
	schoolAgeProb := SchoolAgeProb(&t.Units[unit])

	families := drawFamilies(cdf, communitySize, seed, community)

	var ageCounts [agents.NumAgeGroups]int
	x, y := g.CenterOf(cell)
	familyID := int32(0)
	added := 0

	for _, size := range families {
		ages := assignAges(size, schoolAgeProb, seed, community, int(familyID))
		for _, age := range ages {
			nborhood := uint8(rng.Stream(seed, int64(community), uint64(familyID), "nborhood").Intn(4))
			school := schoolFor(age, nborhood, seed, community, int(familyID), len(ages))

			a := agents.Agent{
				IntFields: agents.IntFields{
					Status:       agents.Never,
					AgeGroup:     age,
					Family:       familyID,
					HomeI:        int32(cell.I),
					HomeJ:        int32(cell.J),
					WorkI:        int32(cell.I),
					WorkJ:        int32(cell.J),
					Nborhood:     nborhood,
					WorkNborhood: 5 * nborhood,
					School:       school,
					Workgroup:    0,
				},
				RealFields: agents.RealFields{
					X: x, Y: y,
				},
			}
			store.Add(a)
			ageCounts[age]++
			added++
		}
		familyID++
	}

	var total int
	for _, c := range ageCounts {
		total += c
	}
	if total != added {
		return 0, fmt.Errorf("demographics: community %d age-group sum %d != resident count %d", community, total, added)
	}

	return added, nil
}

// drawFamilies repeatedly draws a household size from the cdf (spec §4.1
// step 5) until the cell's total population reaches communitySize+1,
// returning the list of family sizes drawn.
func drawFamilies(cdf [7]int, communitySize int, seed rng.Seed, community int) []int {
	var sizes []int
	population := 0
	draw := 0
	for population < communitySize+1 {
		il := rng.Stream(seed, int64(community), uint64(draw), "household-draw").Intn(1000)
		draw++
		size := sizeFromCDF(cdf, il)
		sizes = append(sizes, size)
		population += size
	}
	return sizes
}

func sizeFromCDF(cdf [7]int, il int) int {
	prev := 0
	for size := 1; size <= 7; size++ {
		if prev <= il && il < cdf[size-1] {
			return size
		}
		prev = cdf[size-1]
	}
	return 7
}

// assignAges draws the age group for every member of one family of the
// given size (spec §4.1 step 7).
func assignAges(size int, schoolAgeProb float64, seed rng.Seed, community, familyID int) []agents.AgeGroup {
	switch {
	case size == 1:
		return []agents.AgeGroup{drawSoloAge(seed, community, familyID)}
	case size == 2:
		r := rng.Stream(seed, int64(community), uint64(familyID), "size2-variant").Float64() * 100
		if r < 1 {
			parent := drawAdultPairAge(seed, community, familyID)
			child := drawChildAge(schoolAgeProb, seed, community, familyID, 0)
			return []agents.AgeGroup{parent, child}
		}
		adult := drawSoloAge(seed, community, familyID) // size-2 two-adult path: 28/40/32, same distribution as size-1
		return []agents.AgeGroup{adult, adult}
	default:
		adult := drawAdultPairAge(seed, community, familyID)
		ages := make([]agents.AgeGroup, 0, size)
		ages = append(ages, adult, adult)
		for k := 0; k < size-2; k++ {
			ages = append(ages, drawChildAge(schoolAgeProb, seed, community, familyID, k+1))
		}
		return ages
	}
}

// drawSoloAge implements the size-1 distribution: 28% group4, 40% group3,
// 32% group2.
func drawSoloAge(seed rng.Seed, community, familyID int) agents.AgeGroup {
	r := rng.Stream(seed, int64(community), uint64(familyID), "solo-age").Float64() * 100
	switch {
	case r < 28:
		return agents.Age65Plus
	case r < 68:
		return agents.Age30to64
	default:
		return agents.Age18to29
	}
}

// drawAdultPairAge draws one age group shared by both adults of a
// household of size 3+ (and the single-parent branch of a size-2
// household), 2% group 4, 60% group 3, 38% group 2 — satisfying the
// "parents" invariant that at least two members share one adult age
// group.
func drawAdultPairAge(seed rng.Seed, community, familyID int) agents.AgeGroup {
	r := rng.Stream(seed, int64(community), uint64(familyID), "adult-pair-age").Float64() * 100
	switch {
	case r < 2:
		return agents.Age65Plus
	case r < 62:
		return agents.Age30to64
	default:
		return agents.Age18to29
	}
}

// drawChildAge draws a school-age (group 1) child with probability
// schoolAgeProb percent, else a pre-school (group 0) child.
func drawChildAge(schoolAgeProb float64, seed rng.Seed, community, familyID, childIdx int) agents.AgeGroup {
	r := rng.Stream(seed, int64(community), uint64(familyID*17+childIdx), "child-age").Float64() * 100
	if r < schoolAgeProb {
		return agents.Age5to17
	}
	return agents.AgeUnder5
}

// schoolFor assigns an agent's school per spec §4.1 step 8-9: age 0 goes
// to daycare, age 1 draws assign_school, all other ages are not in
// school.
func schoolFor(age agents.AgeGroup, nborhood uint8, seed rng.Seed, community, familyID, familySize int) int8 {
	switch age {
	case agents.AgeUnder5:
		return agents.SchoolDaycare
	case agents.Age5to17:
		return assignSchool(nborhood, seed, community, familyID)
	default:
		return agents.SchoolNotWorker
	}
}

// assignSchool draws r in [0,100) and buckets into elementary/middle/high
// per spec §4.1 step 9.
func assignSchool(nborhood uint8, seed rng.Seed, community, familyID int) int8 {
	r := rng.Stream(seed, int64(community), uint64(familyID), "assign-school").Float64() * 100
	switch {
	case r < 36:
		return 3 + int8(nborhood/2)
	case r < 68:
		return 2
	case r < 93:
		return 1
	default:
		return 0
	}
}

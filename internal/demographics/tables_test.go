package demographics

import "testing"

func TestCommunitiesForPopulation(t *testing.T) {
	cases := []struct {
		pop  int
		want int
	}{
		{0, 1},
		{1, 1},
		{2000, 1},
		{2001, 2},
		{4000, 2},
		{4001, 3},
	}
	for _, c := range cases {
		if got := communitiesForPopulation(c.pop); got != c.want {
			t.Errorf("communitiesForPopulation(%d) = %d, want %d", c.pop, got, c.want)
		}
	}
}

func TestNewTables_StartIndex(t *testing.T) {
	units := []Unit{
		{ID: 0, Population: 3000}, // 2 communities
		{ID: 1, Population: 1500}, // 1 community
	}
	tb := NewTables(units)
	if tb.Ncommunity() != 3 {
		t.Fatalf("Ncommunity() = %d, want 3", tb.Ncommunity())
	}
	for community, wantUnit := range map[int]int{0: 0, 1: 0, 2: 1} {
		u, ok := tb.UnitForCommunity(community)
		if !ok || u != wantUnit {
			t.Errorf("UnitForCommunity(%d) = (%d, %v), want (%d, true)", community, u, ok, wantUnit)
		}
	}
	if _, ok := tb.UnitForCommunity(3); ok {
		t.Error("UnitForCommunity(3) should be out of range")
	}
}

func TestCommunitySize_LastCommunityRule(t *testing.T) {
	units := []Unit{{ID: 0, Population: 2500}} // 2 communities: 2000 + 500
	tb := NewTables(units)
	if got := tb.CommunitySize(0, 0); got != 2000 {
		t.Errorf("first community size = %d, want 2000", got)
	}
	// Population(2500) < 1000 + 2000*(1-0) = 3000, so the second community
	// (the unit remainder, 500 residents < 1000 threshold) is workgroup-only.
	if got := tb.CommunitySize(0, 1); got != 0 {
		t.Errorf("second community size = %d, want 0 (below the 1000 remainder threshold)", got)
	}
}

func TestCommunitySize_RemainderOver1000(t *testing.T) {
	units := []Unit{{ID: 0, Population: 3200}} // 2 communities: 2000 + 1200
	tb := NewTables(units)
	if got := tb.CommunitySize(0, 1); got != 2000 {
		t.Errorf("second community size = %d, want 2000 (remainder exceeds 1000 threshold)", got)
	}
}

func TestHouseholdCDF_FallsBackToDefault(t *testing.T) {
	u := &Unit{} // all H counts zero
	cdf := HouseholdCDF(u)
	if cdf != defaultHouseholdCDF {
		t.Errorf("HouseholdCDF(zero unit) = %v, want default %v", cdf, defaultHouseholdCDF)
	}
}

func TestHouseholdCDF_ScalesToThousand(t *testing.T) {
	u := &Unit{H: [7]int{1, 1, 1, 1, 1, 1, 4}} // total 10
	cdf := HouseholdCDF(u)
	if cdf[6] != 1000 {
		t.Errorf("HouseholdCDF top bucket = %d, want 1000", cdf[6])
	}
	for i := 1; i < 7; i++ {
		if cdf[i] < cdf[i-1] {
			t.Fatalf("HouseholdCDF not monotonic at index %d: %v", i, cdf)
		}
	}
}

func TestSchoolAgeProb_DefaultsWhenAbsent(t *testing.T) {
	u := &Unit{}
	if got := SchoolAgeProb(u); got != 76 {
		t.Errorf("SchoolAgeProb(empty unit) = %v, want 76", got)
	}
}

func TestSchoolAgeProb_ComputedFromCounts(t *testing.T) {
	u := &Unit{N: [5]int{25, 75, 0, 0, 0}}
	if got := SchoolAgeProb(u); got != 75 {
		t.Errorf("SchoolAgeProb = %v, want 75", got)
	}
}

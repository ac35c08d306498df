package agents

import "testing"

func TestStore_AddAssignsSequentialIDs(t *testing.T) {
	s := NewStore()
	id1 := s.Add(Agent{})
	id2 := s.Add(Agent{})
	if id2 != id1+1 {
		t.Errorf("ids not sequential: %d then %d", id1, id2)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestStore_ByID(t *testing.T) {
	s := NewStore()
	id := s.Add(Agent{IntFields: IntFields{AgeGroup: Age30to64}})

	a, ok := s.ByID(id)
	if !ok {
		t.Fatal("ByID did not find agent just added")
	}
	if a.AgeGroup != Age30to64 {
		t.Errorf("ByID returned agent with AgeGroup %v, want Age30to64", a.AgeGroup)
	}

	if _, ok := s.ByID(id + 100); ok {
		t.Error("ByID found an agent for an id that was never added")
	}
}

func TestStore_CountByStatus(t *testing.T) {
	s := NewStore()
	s.Add(Agent{IntFields: IntFields{Status: Never}})
	s.Add(Agent{IntFields: IntFields{Status: Infected}})
	s.Add(Agent{IntFields: IntFields{Status: Infected}})
	s.Add(Agent{IntFields: IntFields{Status: Dead}})

	counts := s.CountByStatus()
	if counts[Never] != 1 || counts[Infected] != 2 || counts[Dead] != 1 {
		t.Errorf("CountByStatus() = %v, want never=1 infected=2 dead=1", counts)
	}
}

func TestStore_SetNextID(t *testing.T) {
	s := NewStore()
	s.SetNextID(1000)
	id := s.Add(Agent{})
	if id != 1000 {
		t.Errorf("Add() after SetNextID(1000) assigned %d, want 1000", id)
	}
}

package agents

// Store is a grid-partitioned collection of agents held in a single
// contiguous slice, the data-parallel analogue of a []*agents.Agent +
// id-index pair (internal/engine/simulation.go in the source repo) but
// value-typed for cache-friendly bulk passes over the population.
type Store struct {
	items  []Agent
	byID   map[ID]int
	nextID ID
}

// NewStore creates an empty store. Agent ids start at 1 so that the zero
// value of ID can signal "no agent".
func NewStore() *Store {
	return &Store{
		byID:   make(map[ID]int),
		nextID: 1,
	}
}

// Len returns the number of agents held by this worker's tile, living or
// dead (dead agents are retained, never removed).
func (s *Store) Len() int { return len(s.items) }

// Agents returns the backing slice directly. Callers running a data-parallel
// pass may mutate elements in place; callers must not change the slice's
// length or order, since bins (world.BinSet) index into it.
func (s *Store) Agents() []Agent { return s.items }

// At returns a pointer to the agent at the given dense index.
func (s *Store) At(i int) *Agent { return &s.items[i] }

// NextID previews the id that the next Add call will assign, without
// consuming it.
func (s *Store) NextID() ID { return s.nextID }

// SetNextID overrides the id counter, used when restoring a checkpoint so
// newly-created agents (there are none in this core, but callers composing
// the engine may add some) never collide with restored ids.
func (s *Store) SetNextID(id ID) { s.nextID = id }

// Add appends a new agent, assigning it the next unused id, and returns the
// finished record's id.
func (s *Store) Add(a Agent) ID {
	a.ID = s.nextID
	s.nextID++
	s.items = append(s.items, a)
	s.byID[a.ID] = len(s.items) - 1
	return a.ID
}

// ByID looks up an agent by its immutable id. Returns false if no such
// agent exists in this worker's tile.
func (s *Store) ByID(id ID) (*Agent, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return &s.items[idx], true
}

// CountByStatus reduces the population into per-status totals, used for the
// per-run totals output named in spec §6 and the universal invariant that
// the sum of per-status counts is constant across steps.
func (s *Store) CountByStatus() map[Status]int {
	out := make(map[Status]int, 5)
	for i := range s.items {
		out[s.items[i].Status]++
	}
	return out
}

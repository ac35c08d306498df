package demographics

import (
	"math"
	"sort"

	"github.com/nkeilbart/exaepi/internal/agents"
	"github.com/nkeilbart/exaepi/internal/rng"
	"github.com/nkeilbart/exaepi/internal/world"
)

// Demo initial-condition parameters (spec §4.2): a hard-coded 3000x3000
// grid used for synthetic benchmarking, independent of any census file.
const (
	DemoGridSize       = 3000
	DemoBorderWidth    = 200
	DemoBorderPopGoal  = 1e8
	demoPopBins        = 1000
	demoLogPopMin      = 1.062
	demoLogPopMax      = 4.0
	demoSeedInfectProb = 1e-6
	demoStrain1Frac    = 0.30
)

// GenerateDemo builds the synthetic Demo initial condition: a 3000x3000
// grid whose cells are assigned population counts from a log-spaced,
// power-law-weighted pool, with the heaviest cells greedily packed into
// the border region until its total population reaches 1e8 residents,
// and the remaining cells (border and interior) filled with what's left.
// A small fraction of agents are seeded infected. This mode is
// deterministic for a given seed; in a distributed run the draws are
// made once (by whichever worker owns rank 0 in spec's terms) and the
// resulting per-cell populations are broadcast — an external
// domain-decomposition concern per spec §5, not reproduced here since
// this engine runs single-process.
func GenerateDemo(seed rng.Seed, store *agents.Store) *world.Grid {
	g := world.NewGrid(DemoGridSize, DemoGridSize, 1.0)
	ncells := g.NumCells()

	pool := demoPopulationPool(ncells, seed)
	assignment := demoAssignPopulations(g, pool, seed)

	for cellIdx, pop := range assignment {
		if pop <= 0 {
			continue
		}
		i := cellIdx % g.NI
		j := cellIdx / g.NI
		cell := world.Cell{I: i, J: j}
		x, y := g.CenterOf(cell)
		for k := 0; k < pop; k++ {
			a := agents.Agent{
				IntFields: agents.IntFields{
					Status:   agents.Never,
					AgeGroup: agents.Age30to64,
					HomeI:    int32(i), HomeJ: int32(j),
					WorkI: int32(i), WorkJ: int32(j),
					School: agents.SchoolNotWorker,
				},
				RealFields: agents.RealFields{X: x, Y: y},
			}
			id := store.Add(a)
			seedDemoInfection(store, id, seed, int64(cellIdx*100000+k))
		}
	}
	return g
}

func seedDemoInfection(store *agents.Store, id agents.ID, seed rng.Seed, step int64) {
	a, ok := store.ByID(id)
	if !ok {
		return
	}
	if rng.Float64(seed, step, uint64(id), "demo-seed-infect") >= demoSeedInfectProb {
		return
	}
	a.Status = agents.Infected
	a.DiseaseCounter = 0
	a.IncubationPeriod, a.InfectiousPeriod, a.SymptomdevPeriod = 3, 7, 2
	if rng.Float64(seed, step, uint64(id), "demo-seed-strain") < demoStrain1Frac {
		a.Strain = 1
	}
}

// demoPopulationPool samples demoPopBins log-spaced population values in
// [10^1.062, 10^4], weights each by p^-1.5, and expands the weighted
// distribution into a pool of exactly ncells population values (spec
// §4.2: "counts ∝ p^(−1.5), scale to ncell²").
func demoPopulationPool(ncells int, seed rng.Seed) []int {
	bins := make([]float64, demoPopBins)
	weights := make([]float64, demoPopBins)
	var totalWeight float64
	for i := 0; i < demoPopBins; i++ {
		logp := demoLogPopMin + float64(i)*(demoLogPopMax-demoLogPopMin)/float64(demoPopBins-1)
		p := math.Pow(10, logp)
		bins[i] = p
		w := math.Pow(p, -1.5)
		weights[i] = w
		totalWeight += w
	}

	pool := make([]int, 0, ncells)
	assigned := 0
	for i := 0; i < demoPopBins; i++ {
		count := int(math.Round(weights[i] / totalWeight * float64(ncells)))
		if i == demoPopBins-1 {
			count = ncells - assigned // absorb rounding error in the last bin
		}
		if count < 0 {
			count = 0
		}
		for k := 0; k < count && assigned < ncells; k++ {
			pool = append(pool, int(math.Round(bins[i])))
			assigned++
		}
	}
	for assigned < ncells {
		pool = append(pool, int(math.Round(bins[0])))
		assigned++
	}
	return pool[:ncells]
}

// demoAssignPopulations shuffles the cell ids, splits them into a
// within-DemoBorderWidth "border" pool and an "interior" pool, and
// greedily hands the heaviest population values in pool to border cells
// until the border's running total reaches DemoBorderPopGoal, then fills
// every remaining cell (border or interior) with what's left (spec §4.2).
func demoAssignPopulations(g *world.Grid, pool []int, seed rng.Seed) []int {
	ncells := g.NumCells()
	order := make([]int, ncells)
	for i := range order {
		order[i] = i
	}
	shuffleDeterministic(order, seed)

	var border, interior []int
	for _, c := range order {
		i, j := c%g.NI, c/g.NI
		if i < DemoBorderWidth || i >= g.NI-DemoBorderWidth || j < DemoBorderWidth || j >= g.NJ-DemoBorderWidth {
			border = append(border, c)
		} else {
			interior = append(interior, c)
		}
	}

	sorted := append([]int(nil), pool...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	assignment := make([]int, ncells)
	idx := 0
	var borderPop int64
	bi := 0
	for bi < len(border) && borderPop < DemoBorderPopGoal && idx < len(sorted) {
		assignment[border[bi]] = sorted[idx]
		borderPop += int64(sorted[idx])
		idx++
		bi++
	}

	remainingCells := make([]int, 0, ncells-idx)
	for ; bi < len(border); bi++ {
		remainingCells = append(remainingCells, border[bi])
	}
	remainingCells = append(remainingCells, interior...)

	for _, c := range remainingCells {
		if idx >= len(sorted) {
			break
		}
		assignment[c] = sorted[idx]
		idx++
	}
	return assignment
}

func shuffleDeterministic(order []int, seed rng.Seed) {
	r := rng.Stream(seed, 0, 0, "demo-shuffle")
	for i := len(order) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}
}

// Command episim runs the agent-based epidemic simulator: it loads a
// parameter file, builds the initial population, and advances the
// daily movement/contact/progression cycle for the configured number
// of steps. Grounded on the source repo's cmd/worldsim/main.go (slog
// setup, signal-driven graceful shutdown).
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/nkeilbart/exaepi/internal/agents"
	"github.com/nkeilbart/exaepi/internal/checkpoint"
	"github.com/nkeilbart/exaepi/internal/config"
	"github.com/nkeilbart/exaepi/internal/demographics"
	"github.com/nkeilbart/exaepi/internal/disease"
	"github.com/nkeilbart/exaepi/internal/engine"
	"github.com/nkeilbart/exaepi/internal/rng"
	"github.com/nkeilbart/exaepi/internal/world"
)

func main() {
	level := slog.LevelInfo
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))

	inputPath := flag.String("input", "", "path to the flat key/value parameter file")
	dbPath := flag.String("db", "episim.db", "path to the checkpoint sqlite database")
	seedFlag := flag.Int64("seed", 42, "RNG seed")
	flag.Parse()

	if *inputPath == "" {
		slog.Error("missing required -input parameter file")
		os.Exit(1)
	}

	cfg, err := config.Load(*inputPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	seed := rng.Seed(cfg.IntOr("seed", int(*seedFlag)))

	db, err := checkpoint.Open(*dbPath)
	if err != nil {
		slog.Error("failed to open checkpoint database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("checkpoint database opened", "path", *dbPath)

	params := disease.FromConfig(cfg)
	icType := cfg.StringOr("ic_type", "Demo")

	store := agents.NewStore()
	var grid *world.Grid

	switch icType {
	case "Demo":
		slog.Info("building demo initial condition")
		grid = demographics.GenerateDemo(seed, store)
	case "Census":
		grid, err = buildCensusIC(cfg, seed, store)
		if err != nil {
			slog.Error("failed to build census initial condition", "error", err)
			os.Exit(1)
		}
	default:
		slog.Error("unrecognized ic_type (must be Demo or Census)", "ic_type", icType)
		os.Exit(1)
	}

	slog.Info("initial condition ready", "agents", store.Len(), "cells", grid.NumCells())

	if caseFilePath := cfg.StringOr("case_filename", ""); caseFilePath != "" {
		cases, err := checkpoint.ReadCaseFile(caseFilePath)
		if err != nil {
			slog.Error("failed to read case file", "error", err)
			os.Exit(1)
		}
		slog.Info("case file loaded", "rows", len(cases))
	}

	simCfg := engine.Config{
		NSteps:          cfg.IntOr("nsteps", 30),
		PlotInterval:    cfg.IntOr("plot_int", 1),
		RandomTravelInt: cfg.IntOr("random_travel_int", 1),
		AggDiagInterval: cfg.IntOr("aggregated_diag_int", 1),
		Seed:            seed,
	}
	sim := engine.NewSimulation(store, grid, params, simCfg)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	stopped := false
	go func() {
		sig := <-sigCh
		slog.Info("received signal, will stop after the current step completes", "signal", sig)
		stopped = true
	}()

	sim.Run(func(step int64) {
		if step%int64(simCfg.PlotInterval) == 0 {
			if err := db.SavePlotfile(plotfileRows(sim, step)); err != nil {
				slog.Error("failed to save plotfile", "step", step, "error", err)
			}
		}
		if err := db.SaveStepTotals(step, &sim.Stats); err != nil {
			slog.Error("failed to save step totals", "step", step, "error", err)
		}
		if simCfg.AggDiagInterval > 0 && step%int64(simCfg.AggDiagInterval) == 0 {
			if err := db.SaveDiagnostics(aggregatedDiagnostics(sim, step)); err != nil {
				slog.Error("failed to save diagnostics", "step", step, "error", err)
			}
		}
		if stopped {
			slog.Info("stopping early by request", "step", step)
			os.Exit(0)
		}
	})

	counts := store.CountByStatus()
	isTTY := isatty.IsTerminal(os.Stdout.Fd())
	if isTTY {
		fmt.Printf("\nSimulation complete: %s agents simulated over %d days.\n",
			humanize.Comma(int64(store.Len())), simCfg.NSteps)
		fmt.Printf("never=%s infected=%s immune=%s susceptible=%s dead=%s\n",
			humanize.Comma(int64(counts[agents.Never])),
			humanize.Comma(int64(counts[agents.Infected])),
			humanize.Comma(int64(counts[agents.Immune])),
			humanize.Comma(int64(counts[agents.Susceptible])),
			humanize.Comma(int64(counts[agents.Dead])),
		)
	} else {
		fmt.Printf("never=%d infected=%d immune=%d susceptible=%d dead=%d\n",
			counts[agents.Never], counts[agents.Infected], counts[agents.Immune],
			counts[agents.Susceptible], counts[agents.Dead])
	}
}

// buildCensusIC loads the census and workerflow files named in cfg and
// runs the demographic initializer over every cell of the implied grid
// (spec §4.1, §6).
func buildCensusIC(cfg *config.Config, seed rng.Seed, store *agents.Store) (*world.Grid, error) {
	censusPath, err := cfg.String("census_filename")
	if err != nil {
		return nil, err
	}
	units, err := demographics.ReadCensus(censusPath)
	if err != nil {
		return nil, err
	}

	if workerflowPath := cfg.StringOr("workerflow_filename", ""); workerflowPath != "" {
		if _, err := demographics.ReadWorkerflow(workerflowPath); err != nil {
			return nil, err
		}
	}

	tables := demographics.NewTables(units)
	maxGridSize := cfg.IntOr("max_grid_size", 1024)
	dx := cfg.Float64Or("dx", 1.0)
	grid := world.NewGrid(maxGridSize, maxGridSize, dx)

	for j := 0; j < grid.NJ; j++ {
		for i := 0; i < grid.NI; i++ {
			community := grid.LinearIndex(world.Cell{I: i, J: j})
			if community >= tables.Ncommunity() {
				continue
			}
			if _, err := demographics.InitCell(tables, grid, world.Cell{I: i, J: j}, seed, store); err != nil {
				return nil, err
			}
		}
	}
	return grid, nil
}

// aggregatedDiagnostics produces the run-wide diagnostic row for this
// step (spec §6 "periodic per-FIPS aggregated counts"). Per-FIPS
// breakdown requires a cell-to-FIPS lookup that only the census
// initializer has (demographics.Unit.FIPS); since diagnostics I/O is an
// external collaborator per spec §1, this driver reports one aggregated
// FIPS=0 row rather than reconstructing that lookup here.
func aggregatedDiagnostics(sim *engine.Simulation, step int64) []checkpoint.DiagnosticRow {
	counts := sim.Store.CountByStatus()
	_, _, _, deaths := sim.Stats.Totals()
	return []checkpoint.DiagnosticRow{{
		Step:             step,
		FIPS:             0,
		CasesToday:       int64(counts[agents.Infected]),
		CumulativeCases:  int64(counts[agents.Infected] + counts[agents.Immune] + counts[agents.Dead]),
		CumulativeDeaths: deaths,
	}}
}

func plotfileRows(sim *engine.Simulation, step int64) []checkpoint.CellSnapshot {
	ncells := sim.Grid.NumCells()
	type cellAgg struct {
		pop, infected, immune, dead int
	}
	agg := make([]cellAgg, ncells)
	for _, a := range sim.Store.Agents() {
		idx := sim.Grid.LinearIndex(world.Cell{I: int(a.HomeI), J: int(a.HomeJ)})
		if idx < 0 || idx >= ncells {
			continue
		}
		agg[idx].pop++
		switch a.Status {
		case agents.Infected:
			agg[idx].infected++
		case agents.Immune:
			agg[idx].immune++
		case agents.Dead:
			agg[idx].dead++
		}
	}

	rows := make([]checkpoint.CellSnapshot, 0, ncells)
	for idx, a := range agg {
		if a.pop == 0 {
			continue
		}
		i, j := idx%sim.Grid.NI, idx/sim.Grid.NI
		cs := sim.Stats.Cell(idx)
		rows = append(rows, checkpoint.CellSnapshot{
			Step: step, CellI: i, CellJ: j,
			Population: a.pop, Infected: a.infected, Immune: a.immune, Dead: a.dead,
			Hospitalized: int(cs.Hospitalized.Load()),
			ICU:          int(cs.ICU.Load()),
			Ventilator:   int(cs.Ventilator.Load()),
		})
	}
	return rows
}

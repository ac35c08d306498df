// Package checkpoint provides SQLite-based simulation snapshot storage:
// periodic per-cell plotfile dumps, per-FIPS diagnostics, and run status
// totals (spec §6 Outputs). Grounded on the source repo's
// internal/persistence/db.go (sqlx + modernc.org/sqlite schema-migration
// pattern), generalized from a full-world-state save to epidemic output
// tables.
package checkpoint

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/nkeilbart/exaepi/internal/disease"
)

// DB wraps a SQLite connection for checkpoint and diagnostics storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at path and runs its schema
// migration.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("checkpoint: open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("checkpoint: migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS plotfile (
		step INTEGER NOT NULL,
		cell_i INTEGER NOT NULL,
		cell_j INTEGER NOT NULL,
		population INTEGER NOT NULL,
		infected INTEGER NOT NULL,
		immune INTEGER NOT NULL,
		dead INTEGER NOT NULL,
		hospitalized INTEGER NOT NULL,
		icu INTEGER NOT NULL,
		ventilator INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS diagnostics (
		step INTEGER NOT NULL,
		fips INTEGER NOT NULL,
		cases_today INTEGER NOT NULL,
		cumulative_cases INTEGER NOT NULL,
		deaths_today INTEGER NOT NULL,
		cumulative_deaths INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS run_status (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_plotfile_step ON plotfile(step);
	CREATE INDEX IF NOT EXISTS idx_diagnostics_step ON diagnostics(step);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// CellSnapshot is one cell's plotfile row for a given step.
type CellSnapshot struct {
	Step         int64
	CellI, CellJ int
	Population   int
	Infected     int
	Immune       int
	Dead         int
	Hospitalized int
	ICU          int
	Ventilator   int
}

// SavePlotfile writes one step's per-cell snapshot rows (spec §6: periodic
// plotfile output).
func (db *DB) SavePlotfile(rows []CellSnapshot) error {
	if len(rows) == 0 {
		return nil
	}
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`INSERT INTO plotfile
		(step, cell_i, cell_j, population, infected, immune, dead, hospitalized, icu, ventilator)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(r.Step, r.CellI, r.CellJ, r.Population, r.Infected,
			r.Immune, r.Dead, r.Hospitalized, r.ICU, r.Ventilator); err != nil {
			return fmt.Errorf("checkpoint: insert plotfile row step %d cell (%d,%d): %w", r.Step, r.CellI, r.CellJ, err)
		}
	}
	return tx.Commit()
}

// DiagnosticRow is one FIPS region's daily case/death diagnostic (spec §6
// case file format, mirrored for output).
type DiagnosticRow struct {
	Step             int64
	FIPS             int
	CasesToday       int64
	CumulativeCases  int64
	DeathsToday      int64
	CumulativeDeaths int64
}

// SaveDiagnostics writes one step's per-FIPS aggregated diagnostics.
func (db *DB) SaveDiagnostics(rows []DiagnosticRow) error {
	if len(rows) == 0 {
		return nil
	}
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, r := range rows {
		_, err := tx.Exec(`INSERT INTO diagnostics
			(step, fips, cases_today, cumulative_cases, deaths_today, cumulative_deaths)
			VALUES (?, ?, ?, ?, ?, ?)`,
			r.Step, r.FIPS, r.CasesToday, r.CumulativeCases, r.DeathsToday, r.CumulativeDeaths)
		if err != nil {
			return fmt.Errorf("checkpoint: insert diagnostics row step %d fips %d: %w", r.Step, r.FIPS, err)
		}
	}
	return tx.Commit()
}

// SaveStatus stores a key-value run status entry (e.g. last completed
// step, wall-clock elapsed).
func (db *DB) SaveStatus(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO run_status (key, value) VALUES (?, ?)", key, value)
	return err
}

// GetStatus retrieves a run status value.
func (db *DB) GetStatus(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM run_status WHERE key = ?", key)
	return value, err
}

// SaveStepTotals logs the run-wide hospitalized/ICU/ventilator/death
// totals after a step, drawn from a disease.StatsTable (spec §6 summary
// output), and stores only the death total, under key "step_<n>_deaths".
func (db *DB) SaveStepTotals(step int64, stats *disease.StatsTable) error {
	hosp, icu, vent, deaths := stats.Totals()
	slog.Info("checkpoint totals", "step", step, "hospitalized", hosp, "icu", icu, "ventilator", vent, "deaths", deaths)
	return db.SaveStatus(fmt.Sprintf("step_%d_deaths", step), fmt.Sprintf("%d", deaths))
}

package demographics

import (
	"bufio"
	"fmt"
	"os"
)

// ReadCensus parses the census file (spec §6): ASCII, a count header
// followed by one unit per line --
//
//	ID population day_workers FIPS tract N<5 N5-17 N18-29 N30-64 N65+ H1 H2 H3 H4 H5 H6 H7
func ReadCensus(path string) ([]Unit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("demographics: open census file %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return nil, fmt.Errorf("demographics: census file %s: missing count header", path)
	}
	var count int
	if _, err := fmt.Sscanf(scanner.Text(), "%d", &count); err != nil {
		return nil, fmt.Errorf("demographics: census file %s: bad count header %q: %w", path, scanner.Text(), err)
	}

	units := make([]Unit, 0, count)
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		var u Unit
		_, err := fmt.Sscan(scanner.Text(),
			&u.ID, &u.Population, &u.DayWorkers, &u.FIPS, &u.Tract,
			&u.N[0], &u.N[1], &u.N[2], &u.N[3], &u.N[4],
			&u.H[0], &u.H[1], &u.H[2], &u.H[3], &u.H[4], &u.H[5], &u.H[6])
		if err != nil {
			return nil, fmt.Errorf("demographics: census file %s:%d: %w", path, lineNo, err)
		}
		units = append(units, u)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("demographics: read census file %s: %w", path, err)
	}
	if len(units) != count {
		return nil, fmt.Errorf("demographics: census file %s: header declared %d units, found %d", path, count, len(units))
	}
	return units, nil
}

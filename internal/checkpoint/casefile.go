package checkpoint

import (
	"bufio"
	"fmt"
	"os"
)

// CaseRecord is one row of the case file (spec §6): observed daily and
// cumulative case counts for a FIPS region. Records are parsed only;
// nothing in this module applies them to a run.
type CaseRecord struct {
	FIPS            int
	CasesToday      int64
	CumulativeCases int64
}

// ReadCaseFile parses the case file (spec §6): ASCII, three columns per
// row -- FIPS cases_today cumulative_cases.
func ReadCaseFile(path string) ([]CaseRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("checkpoint: open case file %s: %w", path, err)
	}
	defer f.Close()

	var records []CaseRecord
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		var r CaseRecord
		if _, err := fmt.Sscan(line, &r.FIPS, &r.CasesToday, &r.CumulativeCases); err != nil {
			return nil, fmt.Errorf("checkpoint: case file %s:%d: %w", path, lineNo, err)
		}
		records = append(records, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("checkpoint: read case file %s: %w", path, err)
	}
	return records, nil
}

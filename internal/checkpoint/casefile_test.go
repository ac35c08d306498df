package checkpoint

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadCaseFile_ParsesRows(t *testing.T) {
	contents := "17031 12 340\n17043 5 88\n"
	path := filepath.Join(t.TempDir(), "cases.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := ReadCaseFile(path)
	if err != nil {
		t.Fatalf("ReadCaseFile returned error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("ReadCaseFile returned %d records, want 2", len(records))
	}
	want := CaseRecord{FIPS: 17031, CasesToday: 12, CumulativeCases: 340}
	if records[0] != want {
		t.Errorf("records[0] = %+v, want %+v", records[0], want)
	}
}

func TestReadCaseFile_SkipsBlankLines(t *testing.T) {
	contents := "17031 12 340\n\n17043 5 88\n"
	path := filepath.Join(t.TempDir(), "cases.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	records, err := ReadCaseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Errorf("ReadCaseFile with a blank line returned %d records, want 2", len(records))
	}
}

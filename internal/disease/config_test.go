package disease

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nkeilbart/exaepi/internal/config"
)

func TestFromConfig_OverridesNamedKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.txt")
	contents := "disease.nstrain = 2\n" +
		"disease.vac_eff = 0.5\n" +
		"disease.incubation_length_mean = 4.5\n" +
		"contact.pSC = 0.2\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	p := FromConfig(cfg)
	if p.NStrain != 2 {
		t.Errorf("NStrain = %d, want 2", p.NStrain)
	}
	if p.VacEff != 0.5 {
		t.Errorf("VacEff = %v, want 0.5", p.VacEff)
	}
	if p.IncubationMean != 4.5 {
		t.Errorf("IncubationMean = %v, want 4.5", p.IncubationMean)
	}
	if p.PSC != 0.2 {
		t.Errorf("PSC = %v, want 0.2", p.PSC)
	}
	// Unset keys keep their Default() values.
	if p.PCO != Default().PCO {
		t.Errorf("PCO = %v, want default %v", p.PCO, Default().PCO)
	}
}

func TestFromConfig_EmptyConfigMatchesDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(path, []byte("# no keys\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	p := FromConfig(cfg)
	def := Default()
	if p.NStrain != def.NStrain || p.VacEff != def.VacEff {
		t.Error("FromConfig with no overrides diverged from Default()")
	}
}

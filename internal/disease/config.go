package disease

import "github.com/nkeilbart/exaepi/internal/config"

// FromConfig builds a Params starting from Default() and overriding every
// field spec §6 names as a recognized disease.* / contact multiplier
// config key. Unrecognized keys and the age-stratified Xmit* tables (not
// named as config keys by spec §6) keep their Default() values.
func FromConfig(c *config.Config) *Params {
	p := Default()

	p.NStrain = c.IntOr("disease.nstrain", p.NStrain)
	p.ReinfectProb = c.Float64Or("disease.reinfect_prob", p.ReinfectProb)
	p.VacEff = c.Float64Or("disease.vac_eff", p.VacEff)

	if v, err := c.FloatSlice("disease.p_trans"); err == nil {
		p.PTrans = v
	}
	if v, err := c.FloatSlice("disease.p_asymp"); err == nil {
		p.PAsymp = v
	}
	if v, err := c.FloatSlice("disease.reduced_inf"); err == nil {
		p.ReducedInf = v
	}
	if v, err := c.FloatSlice("disease.infect_base"); err == nil {
		p.InfectBase = v
	}

	p.IncubationMean = c.Float64Or("disease.incubation_length_mean", p.IncubationMean)
	p.IncubationStd = c.Float64Or("disease.incubation_length_std", p.IncubationStd)
	p.InfectiousMean = c.Float64Or("disease.infectious_length_mean", p.InfectiousMean)
	p.InfectiousStd = c.Float64Or("disease.infectious_length_std", p.InfectiousStd)
	p.SymptomdevMean = c.Float64Or("disease.symptomdev_length_mean", p.SymptomdevMean)
	p.SymptomdevStd = c.Float64Or("disease.symptomdev_length_std", p.SymptomdevStd)

	p.PSC = c.Float64Or("contact.pSC", p.PSC)
	p.PCO = c.Float64Or("contact.pCO", p.PCO)
	p.PNH = c.Float64Or("contact.pNH", p.PNH)
	p.PWO = c.Float64Or("contact.pWO", p.PWO)
	p.PFA = c.Float64Or("contact.pFA", p.PFA)
	p.PBAR = c.Float64Or("contact.pBAR", p.PBAR)

	return p
}

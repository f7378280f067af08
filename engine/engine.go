package engine

import (
	"math"

	"tw/material"
	"tw/model"
	"tw/thermowell"
)

// First-mode eigenvalue coefficients λ₁ of the Euler-Bernoulli beam per
// support condition. The natural frequency is
//
//	f_n = λ₁²/(2π·L²) · √(E·I / (m′·F_m))
//
// with F_m the empirical tip-mass correction factor.
var lambda1 = map[model.SupportCondition]float64{
	model.SupportCantilever:   1.875104,
	model.SupportPinnedPinned: math.Pi,
	model.SupportFixedPinned:  3.926602,
	model.SupportFixedFixed:   4.730041,
}

// Engine evaluates the closed-form resonance formulas. It holds only the
// configured constants; every computation is a deterministic, side-effect-free
// function of its inputs.
type Engine struct {
	cfg Config
}

func NewEngine() *Engine {
	return &Engine{cfg: engCfg}
}

// NewEngineWithConfig builds an engine with explicit constants, for tests and
// for callers that do not use the ini file.
func NewEngineWithConfig(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Compute validates the parameters and derives all output quantities. A
// velocity sweep is evaluated when the request carries one. On a validation
// failure no results are returned.
func (e *Engine) Compute(p model.Parameters) (*model.Results, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}

	mat, err := material.Resolve(p.MaterialPreset, p.ElasticModulus, p.MaterialDensity)
	if err != nil {
		return nil, invalid("material_preset", err.Error())
	}

	w := thermowell.New(p)
	area := w.SectionArea()
	second := w.SecondMoment()
	mPrime := w.MassPerLength(mat.Density)

	zeta := e.dampingRatio(p)
	st := e.strouhal(p)

	support := p.Support
	if support == "" {
		support = model.SupportCantilever
	}
	lambda := lambda1[support]

	// Empirical tip-mass correction. Placeholder for a full eigenvalue solve;
	// calibrated against the cantilever case.
	length := p.ImmersionLength
	tipRatio := p.SensorMass / (mPrime * length)
	massFactor := 1 + e.cfg.TipMassFactor*tipRatio

	fn := lambda * lambda / (2 * math.Pi * length * length) *
		math.Sqrt(mat.ElasticModulus*second/(mPrime*massFactor))

	shedD := w.SheddingDiameter()
	fs := st * p.Velocity / shedD

	ratio := fs / fn
	inBand := ratio >= e.cfg.ResonanceBandLow && ratio <= e.cfg.ResonanceBandHigh

	// Wake frequency ratio f_n/f_s. At zero flow there is no excitation, so
	// it is reported as 0 with no risk rather than +Inf.
	wfr := 0.0
	risk := false
	if fs > 0 {
		wfr = fn / fs
		risk = wfr < e.cfg.TargetWFR
	}

	scruton := 4 * math.Pi * zeta * mPrime / (p.FluidDensity * shedD * shedD)

	amplification := stressAmplification(ratio, zeta)

	reynolds := 0.0
	if p.Viscosity > 0 {
		reynolds = p.FluidDensity * p.Velocity * shedD / p.Viscosity
	}

	r := &model.Results{
		NaturalFrequency:    fn,
		SheddingFrequency:   fs,
		FrequencyRatio:      ratio,
		InResonanceBand:     inBand,
		WakeFrequencyRatio:  wfr,
		ResonanceRisk:       risk,
		ScrutonNumber:       scruton,
		StressAmplification: amplification,
		Material:            mat,
		Intermediates: model.Intermediates{
			StiffnessDiameter:   w.StiffnessDiameter(),
			SheddingDiameter:    shedD,
			WallThickness:       w.MinWallThickness(),
			SectionArea:         area,
			SecondMoment:        second,
			MassPerLength:       mPrime,
			TipMassRatio:        tipRatio,
			EffectiveMassFactor: massFactor,
			DampingRatio:        zeta,
			Strouhal:            st,
			ReynoldsTip:         reynolds,
		},
	}

	if p.Sweep != nil {
		r.Sweep = sweepCurve(*p.Sweep, st, shedD, fn)
	}
	return r, nil
}

// stressAmplification scales a static stress into a dynamic one near
// resonance: 1/√((1−r²)² + (2ζr)²). Baseline 1 at r = 0, peak near r = 1.
func stressAmplification(ratio, zeta float64) float64 {
	a := 1 - ratio*ratio
	b := 2 * zeta * ratio
	return 1 / math.Sqrt(a*a+b*b)
}

func (e *Engine) dampingRatio(p model.Parameters) float64 {
	if p.DampingRatio != nil {
		return *p.DampingRatio
	}
	compliance := p.SupportCompliance
	if compliance == 0 {
		compliance = 1
	}
	return math.Max(e.cfg.DampingFloor, e.cfg.DampingPerCompliance*compliance)
}

func (e *Engine) strouhal(p model.Parameters) float64 {
	if p.Strouhal != nil && *p.Strouhal > 0 {
		return *p.Strouhal
	}
	return e.cfg.StrouhalNumber
}

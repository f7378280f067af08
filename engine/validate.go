package engine

import (
	"fmt"

	"tw/model"
)

// ValidationError identifies the first parameter that violates a documented
// physical or geometric constraint. The computation is aborted as a whole; no
// partial results are produced.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// Validate checks a parameter set against the documented constraints and
// returns the first violation found.
func Validate(p model.Parameters) error {
	if p.ImmersionLength <= 0 {
		return invalid("immersion_length_m", "must be positive")
	}
	if p.RootDiameter <= 0 {
		return invalid("root_diameter_m", "must be positive")
	}
	if p.TipDiameter <= 0 {
		return invalid("tip_diameter_m", "must be positive")
	}
	if p.TipDiameter > p.RootDiameter {
		return invalid("tip_diameter_m", "must not exceed the root diameter")
	}
	if p.BoreDiameter <= 0 {
		return invalid("bore_diameter_m", "must be positive")
	}
	if p.BoreDiameter >= p.TipDiameter {
		return invalid("bore_diameter_m", "leaves non-positive wall thickness at the tip")
	}
	if p.FilletRadius < 0 {
		return invalid("fillet_radius_m", "must not be negative")
	}
	switch p.Profile {
	case "", model.ProfileStraight, model.ProfileStepped, model.ProfileTapered:
	default:
		return invalid("profile", fmt.Sprintf("unknown profile %q", p.Profile))
	}
	if p.ElasticModulus != nil && *p.ElasticModulus <= 0 {
		return invalid("elastic_modulus_pa", "must be positive")
	}
	if p.MaterialDensity != nil && *p.MaterialDensity <= 0 {
		return invalid("material_density_kg_per_m3", "must be positive")
	}
	if p.FluidDensity <= 0 {
		return invalid("fluid_density_kg_per_m3", "must be positive")
	}
	if p.Velocity < 0 {
		return invalid("velocity_m_per_s", "must not be negative")
	}
	if p.Viscosity < 0 {
		return invalid("viscosity_pa_s", "must not be negative")
	}
	switch p.Support {
	case "", model.SupportCantilever, model.SupportPinnedPinned, model.SupportFixedPinned, model.SupportFixedFixed:
	default:
		return invalid("support_condition", fmt.Sprintf("unknown support condition %q", p.Support))
	}
	if p.SupportCompliance < 0 {
		return invalid("support_compliance_factor", "must not be negative")
	}
	if p.SensorMass < 0 {
		return invalid("added_sensor_mass_kg", "must not be negative")
	}
	if p.DampingRatio != nil && (*p.DampingRatio <= 0 || *p.DampingRatio >= 1) {
		return invalid("damping_ratio", "must be in (0, 1)")
	}
	if p.Sweep != nil {
		if p.Sweep.Bottom < 0 {
			return invalid("velocity_sweep", "bottom must not be negative")
		}
		if p.Sweep.Top < p.Sweep.Bottom {
			return invalid("velocity_sweep", "top must not be below bottom")
		}
		if p.Sweep.Step <= 0 {
			return invalid("velocity_sweep", "step must be positive")
		}
	}
	return nil
}

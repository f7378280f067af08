package model

import "time"

// Shank profile of the well, from mounting root to sensor tip.
type Profile string

const (
	ProfileStraight Profile = "straight"
	ProfileStepped  Profile = "stepped"
	ProfileTapered  Profile = "tapered"
)

// Beam support condition at the mounting point.
type SupportCondition string

const (
	SupportCantilever   SupportCondition = "cantilever"
	SupportPinnedPinned SupportCondition = "pinned_pinned"
	SupportFixedPinned  SupportCondition = "fixed_pinned"
	SupportFixedFixed   SupportCondition = "fixed_fixed"
)

// Parameters is the full input set for one computation, rebuilt from the GUI
// widget values on every interaction. Lengths are meters, the modulus is Pa,
// densities are kg/m³, velocities are m/s.
type Parameters struct {
	ImmersionLength float64 `json:"immersion_length_m"`
	RootDiameter    float64 `json:"root_diameter_m"`
	TipDiameter     float64 `json:"tip_diameter_m"`
	BoreDiameter    float64 `json:"bore_diameter_m"`
	FilletRadius    float64 `json:"fillet_radius_m"`
	Profile         Profile `json:"profile"`

	MaterialPreset  string   `json:"material_preset"`
	ElasticModulus  *float64 `json:"elastic_modulus_pa,omitempty"`
	MaterialDensity *float64 `json:"material_density_kg_per_m3,omitempty"`

	FluidDensity float64 `json:"fluid_density_kg_per_m3"`
	Velocity     float64 `json:"velocity_m_per_s"`
	Viscosity    float64 `json:"viscosity_pa_s"`

	Support           SupportCondition `json:"support_condition"`
	SupportCompliance float64          `json:"support_compliance_factor"`
	SensorMass        float64          `json:"added_sensor_mass_kg"`
	DampingRatio      *float64         `json:"damping_ratio,omitempty"`

	Strouhal *float64       `json:"strouhal_number,omitempty"`
	Sweep    *VelocitySweep `json:"velocity_sweep,omitempty"`
}

// Velocity range swept for the shedding-frequency curve.
type VelocitySweep struct {
	Bottom float64 `json:"bottom"`
	Top    float64 `json:"top"`
	Step   float64 `json:"step"`
}

// One point of the shedding-frequency-vs-velocity curve.
type SweepPoint struct {
	Velocity          float64 `json:"velocity_m_per_s"`
	SheddingFrequency float64 `json:"shedding_frequency_hz"`
	FrequencyRatio    float64 `json:"frequency_ratio"`
}

// Material properties actually used for a computation.
type Material struct {
	Preset         string  `json:"preset"`
	ElasticModulus float64 `json:"elastic_modulus_pa"`
	Density        float64 `json:"density_kg_per_m3"`
	Notes          string  `json:"notes"`
	Overridden     bool    `json:"overridden"`
}

// Intermediates carries the derived quantities shown in the GUI detail panel.
type Intermediates struct {
	StiffnessDiameter   float64 `json:"stiffness_diameter_m"`
	SheddingDiameter    float64 `json:"shedding_diameter_m"`
	WallThickness       float64 `json:"min_wall_thickness_m"`
	SectionArea         float64 `json:"section_area_m2"`
	SecondMoment        float64 `json:"second_moment_m4"`
	MassPerLength       float64 `json:"mass_per_length_kg_per_m"`
	TipMassRatio        float64 `json:"tip_mass_ratio"`
	EffectiveMassFactor float64 `json:"effective_mass_factor"`
	DampingRatio        float64 `json:"damping_ratio_used"`
	Strouhal            float64 `json:"strouhal_number_used"`
	ReynoldsTip         float64 `json:"re_tip_based"`
}

// Results is everything the engine derives from one Parameters value.
type Results struct {
	NaturalFrequency    float64 `json:"natural_frequency_hz"`
	SheddingFrequency   float64 `json:"vortex_shedding_frequency_hz"`
	FrequencyRatio      float64 `json:"frequency_ratio"`
	InResonanceBand     bool    `json:"in_resonance_band"`
	WakeFrequencyRatio  float64 `json:"wake_frequency_ratio"`
	ResonanceRisk       bool    `json:"resonance_risk"`
	ScrutonNumber       float64 `json:"scruton_number"`
	StressAmplification float64 `json:"stress_amplification_factor"`

	Material      Material      `json:"material_used"`
	Intermediates Intermediates `json:"intermediates"`

	Sweep []SweepPoint `json:"sweep,omitempty"`
}

// Record is one finished computation kept in the per-session history.
type Record struct {
	At      time.Time  `json:"at"`
	Params  Parameters `json:"params"`
	Results Results    `json:"results"`
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

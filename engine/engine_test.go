package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tw/model"
)

func f64(v float64) *float64 { return &v }

// Reference case: 20/15/6 mm steel well, 150 mm immersion, water at 2 m/s.
func steelInWater() model.Parameters {
	return model.Parameters{
		ImmersionLength: 0.150,
		RootDiameter:    0.020,
		TipDiameter:     0.015,
		BoreDiameter:    0.006,
		FilletRadius:    0.002,
		Profile:         model.ProfileTapered,
		ElasticModulus:  f64(200e9),
		MaterialDensity: f64(7850),
		FluidDensity:    1000,
		Velocity:        2,
		Viscosity:       0.001,
	}
}

func TestComputeSteelInWater(t *testing.T) {
	eng := NewEngine()
	res, err := eng.Compute(steelInWater())
	require.NoError(t, err)

	assert.Greater(t, res.NaturalFrequency, 0.0)
	assert.False(t, math.IsNaN(res.NaturalFrequency))
	assert.False(t, math.IsInf(res.NaturalFrequency, 0))

	// f_s = St·V/D_tip = 0.22·2/0.015
	assert.InDelta(t, 29.3333, res.SheddingFrequency, 1e-3)

	assert.Greater(t, res.FrequencyRatio, 0.0)
	assert.False(t, math.IsNaN(res.FrequencyRatio))
	assert.False(t, math.IsInf(res.FrequencyRatio, 0))
	assert.Equal(t, res.SheddingFrequency/res.NaturalFrequency, res.FrequencyRatio)

	assert.Greater(t, res.ScrutonNumber, 0.0)
	assert.Greater(t, res.StressAmplification, 0.0)
	assert.Equal(t, res.NaturalFrequency/res.SheddingFrequency, res.WakeFrequencyRatio)
	assert.Greater(t, res.Intermediates.ReynoldsTip, 0.0)
}

func TestComputeIsDeterministic(t *testing.T) {
	eng := NewEngine()
	a, err := eng.Compute(steelInWater())
	require.NoError(t, err)
	b, err := eng.Compute(steelInWater())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestZeroVelocity(t *testing.T) {
	p := steelInWater()
	p.Velocity = 0
	res, err := NewEngine().Compute(p)
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.SheddingFrequency)
	assert.Equal(t, 0.0, res.FrequencyRatio)
	assert.InDelta(t, 1.0, res.StressAmplification, 1e-12)
	assert.Equal(t, 0.0, res.WakeFrequencyRatio)
	assert.False(t, res.ResonanceRisk)
	assert.False(t, res.InResonanceBand)
}

func TestTipMassReducesNaturalFrequency(t *testing.T) {
	eng := NewEngine()
	prev := math.Inf(1)
	for _, mass := range []float64{0, 0.005, 0.02, 0.1} {
		p := steelInWater()
		p.SensorMass = mass
		res, err := eng.Compute(p)
		require.NoError(t, err)
		assert.Less(t, res.NaturalFrequency, prev, "sensor mass %v kg", mass)
		prev = res.NaturalFrequency
	}
}

func TestStressAmplificationPeaksAtResonance(t *testing.T) {
	const zeta = 0.01

	below := []float64{0.0, 0.2, 0.5, 0.8, 0.95}
	for i := 1; i < len(below); i++ {
		assert.Greater(t, stressAmplification(below[i], zeta), stressAmplification(below[i-1], zeta),
			"amplification must grow approaching resonance from below (r=%v)", below[i])
	}

	above := []float64{1.05, 1.2, 1.5, 2.0}
	for i := 1; i < len(above); i++ {
		assert.Less(t, stressAmplification(above[i], zeta), stressAmplification(above[i-1], zeta),
			"amplification must fall leaving resonance upward (r=%v)", above[i])
	}

	assert.Equal(t, 1.0, stressAmplification(0, zeta))
}

func TestResonanceBandFlag(t *testing.T) {
	eng := NewEngine()
	base, err := eng.Compute(steelInWater())
	require.NoError(t, err)

	// Pick the velocity that puts the shedding frequency exactly on f_n.
	p := steelInWater()
	p.Velocity = base.NaturalFrequency * base.Intermediates.SheddingDiameter / base.Intermediates.Strouhal
	res, err := eng.Compute(p)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, res.FrequencyRatio, 1e-9)
	assert.True(t, res.InResonanceBand)
	assert.True(t, res.ResonanceRisk)
}

func TestStifferSupportRaisesNaturalFrequency(t *testing.T) {
	eng := NewEngine()
	order := []model.SupportCondition{
		model.SupportCantilever,
		model.SupportPinnedPinned,
		model.SupportFixedPinned,
		model.SupportFixedFixed,
	}
	prev := 0.0
	for _, support := range order {
		p := steelInWater()
		p.Support = support
		res, err := eng.Compute(p)
		require.NoError(t, err)
		assert.Greater(t, res.NaturalFrequency, prev, "support %s", support)
		prev = res.NaturalFrequency
	}
}

func TestProfileSheddingDiameter(t *testing.T) {
	eng := NewEngine()

	straight := steelInWater()
	straight.Profile = model.ProfileStraight
	rs, err := eng.Compute(straight)
	require.NoError(t, err)

	tapered := steelInWater()
	rt, err := eng.Compute(tapered)
	require.NoError(t, err)

	// With tip < root the straight profile sheds off the larger root
	// diameter, so its shedding frequency is lower.
	assert.Less(t, rs.SheddingFrequency, rt.SheddingFrequency)
	assert.Equal(t, straight.RootDiameter, rs.Intermediates.SheddingDiameter)
	assert.Equal(t, tapered.TipDiameter, rt.Intermediates.SheddingDiameter)
}

func TestPositiveOutputsAcrossPresets(t *testing.T) {
	eng := NewEngine()
	presets := []string{
		"Stainless Steel (SS304)",
		"Stainless Steel (SS316 / SS316L)",
		"Carbon Steel (approx. A36)",
		"Titanium (Grade 2)",
		"Aluminum (6061-T6)",
	}
	for _, preset := range presets {
		p := steelInWater()
		p.MaterialPreset = preset
		p.ElasticModulus = nil
		p.MaterialDensity = nil
		res, err := eng.Compute(p)
		require.NoError(t, err, preset)
		assert.Greater(t, res.NaturalFrequency, 0.0, preset)
		assert.Greater(t, res.SheddingFrequency, 0.0, preset)
		assert.Greater(t, res.ScrutonNumber, 0.0, preset)
	}
}

func TestExplicitDampingRatioIsUsed(t *testing.T) {
	p := steelInWater()
	p.DampingRatio = f64(0.03)
	res, err := NewEngine().Compute(p)
	require.NoError(t, err)
	assert.Equal(t, 0.03, res.Intermediates.DampingRatio)
}

func TestDefaultDampingFollowsCompliance(t *testing.T) {
	eng := NewEngine()

	p := steelInWater()
	res, err := eng.Compute(p)
	require.NoError(t, err)
	assert.Equal(t, 0.01, res.Intermediates.DampingRatio)

	// A very stiff support bottoms out at the floor.
	p.SupportCompliance = 0.1
	res, err = eng.Compute(p)
	require.NoError(t, err)
	assert.Equal(t, 0.005, res.Intermediates.DampingRatio)
}

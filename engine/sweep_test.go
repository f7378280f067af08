package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tw/model"
)

func TestSweepRatioMatchesScalarFormula(t *testing.T) {
	eng := NewEngine()
	points, err := eng.Sweep(steelInWater(), model.VelocitySweep{Bottom: 0, Top: 4, Step: 0.5})
	require.NoError(t, err)
	require.Len(t, points, 9)

	base, err := eng.Compute(steelInWater())
	require.NoError(t, err)

	for _, pt := range points {
		assert.Equal(t, pt.SheddingFrequency/base.NaturalFrequency, pt.FrequencyRatio)
	}
	assert.Equal(t, 0.0, points[0].Velocity)
	assert.Equal(t, 0.0, points[0].SheddingFrequency)
	assert.InDelta(t, 4.0, points[len(points)-1].Velocity, 1e-12)
}

func TestSweepIsOrdered(t *testing.T) {
	points, err := NewEngine().Sweep(steelInWater(), model.VelocitySweep{Bottom: 0.5, Top: 3, Step: 0.25})
	require.NoError(t, err)
	for i := 1; i < len(points); i++ {
		assert.Greater(t, points[i].Velocity, points[i-1].Velocity)
		assert.Greater(t, points[i].SheddingFrequency, points[i-1].SheddingFrequency)
	}
}

func TestComputeCarriesRequestedSweep(t *testing.T) {
	p := steelInWater()
	p.Sweep = &model.VelocitySweep{Bottom: 0, Top: 2, Step: 1}
	res, err := NewEngine().Compute(p)
	require.NoError(t, err)
	require.Len(t, res.Sweep, 3)
}

func TestComputeWithoutSweepHasNone(t *testing.T) {
	res, err := NewEngine().Compute(steelInWater())
	require.NoError(t, err)
	assert.Nil(t, res.Sweep)
}

func TestDefaultSweepSpansTwiceTheVelocity(t *testing.T) {
	eng := NewEngine()
	sw := eng.DefaultSweep(2)
	assert.Equal(t, 0.0, sw.Bottom)
	assert.Equal(t, 4.0, sw.Top)

	points, err := eng.Sweep(steelInWater(), sw)
	require.NoError(t, err)
	assert.Len(t, points, Cfg().SweepPoints)
}

func TestDefaultSweepAtStandstill(t *testing.T) {
	sw := NewEngine().DefaultSweep(0)
	assert.Equal(t, 0.1, sw.Top, "plot range stays non-degenerate at zero flow")
	assert.Greater(t, sw.Step, 0.0)
}

func TestDefaultSweepPointCountConfigurable(t *testing.T) {
	cfg := Cfg()
	cfg.SweepPoints = 11
	eng := NewEngineWithConfig(cfg)

	points, err := eng.Sweep(steelInWater(), eng.DefaultSweep(2))
	require.NoError(t, err)
	assert.Len(t, points, 11)
}

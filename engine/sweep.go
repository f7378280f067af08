package engine

import (
	"math"

	"tw/model"
)

// Sweep evaluates the shedding frequency across a velocity range without the
// scalar outputs; the GUI uses it to refresh the plot alone.
func (e *Engine) Sweep(p model.Parameters, sweep model.VelocitySweep) ([]model.SweepPoint, error) {
	p.Sweep = &sweep
	res, err := e.Compute(p)
	if err != nil {
		return nil, err
	}
	return res.Sweep, nil
}

// DefaultSweep spans twice the request velocity from standstill, the range the
// GUI plots by default, with the configured number of points.
func (e *Engine) DefaultSweep(velocity float64) model.VelocitySweep {
	top := math.Max(2*velocity, 0.1)
	points := e.cfg.SweepPoints
	if points < 2 {
		points = 2
	}
	return model.VelocitySweep{
		Bottom: 0,
		Top:    top,
		Step:   top / float64(points-1),
	}
}

// sweepCurve steps the range by index so accumulated floating-point error
// cannot change the point count.
func sweepCurve(sweep model.VelocitySweep, st, shedD, fn float64) []model.SweepPoint {
	n := int(math.Floor((sweep.Top-sweep.Bottom)/sweep.Step+1e-9)) + 1
	points := make([]model.SweepPoint, 0, n)
	for i := 0; i < n; i++ {
		v := sweep.Bottom + float64(i)*sweep.Step
		fs := st * v / shedD
		points = append(points, model.SweepPoint{
			Velocity:          v,
			SheddingFrequency: fs,
			FrequencyRatio:    fs / fn,
		})
	}
	return points
}

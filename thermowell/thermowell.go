package thermowell

import (
	"math"

	log "github.com/sirupsen/logrus"

	"tw/model"
)

// Thermowell holds the geometry of the well as inserted into the process
// line. Derived section properties are evaluated on an effective outer
// diameter per profile, with the bore subtracted (annular section):
//
//	straight: the root diameter over the whole shank
//	stepped:  (2·root + tip)/3
//	tapered:  (root + tip)/2
//
// Vortex shedding is governed by the diameter the flow sees near the tip, so
// the shedding diameter is the tip diameter for stepped/tapered wells and the
// root diameter for straight ones.
type Thermowell struct {
	Profile         model.Profile
	ImmersionLength float64
	RootDiameter    float64
	TipDiameter     float64
	BoreDiameter    float64
	FilletRadius    float64
}

func New(p model.Parameters) *Thermowell {
	w := &Thermowell{
		Profile:         p.Profile,
		ImmersionLength: p.ImmersionLength,
		RootDiameter:    p.RootDiameter,
		TipDiameter:     p.TipDiameter,
		BoreDiameter:    p.BoreDiameter,
		FilletRadius:    p.FilletRadius,
	}
	if w.Profile == "" {
		w.Profile = model.ProfileTapered
	}
	log.WithFields(log.Fields{
		"profile":  w.Profile,
		"root_m":   w.RootDiameter,
		"tip_m":    w.TipDiameter,
		"bore_m":   w.BoreDiameter,
		"length_m": w.ImmersionLength,
	}).Debug("thermowell geometry")
	return w
}

// StiffnessDiameter is the effective outer diameter used for the bending
// section properties.
func (w *Thermowell) StiffnessDiameter() float64 {
	switch w.Profile {
	case model.ProfileStraight:
		return w.RootDiameter
	case model.ProfileStepped:
		return (2*w.RootDiameter + w.TipDiameter) / 3
	default:
		return (w.RootDiameter + w.TipDiameter) / 2
	}
}

// SheddingDiameter is the characteristic diameter for vortex shedding.
func (w *Thermowell) SheddingDiameter() float64 {
	if w.Profile == model.ProfileStraight {
		return w.RootDiameter
	}
	return w.TipDiameter
}

// SectionArea is the annular cross-section area on the stiffness diameter.
func (w *Thermowell) SectionArea() float64 {
	d := w.StiffnessDiameter()
	return math.Pi * (d*d - w.BoreDiameter*w.BoreDiameter) / 4
}

// SecondMoment is the annular second moment of area on the stiffness diameter.
func (w *Thermowell) SecondMoment() float64 {
	d := w.StiffnessDiameter()
	return math.Pi * (math.Pow(d, 4) - math.Pow(w.BoreDiameter, 4)) / 64
}

// MassPerLength is the structural mass per unit length for the given material
// density. No fluid added-mass correction is applied.
func (w *Thermowell) MassPerLength(density float64) float64 {
	return density * w.SectionArea()
}

// MinWallThickness is the thinnest wall around the bore. With tip ≤ root the
// tip section is governing.
func (w *Thermowell) MinWallThickness() float64 {
	outer := w.TipDiameter
	if w.RootDiameter < outer {
		outer = w.RootDiameter
	}
	return (outer - w.BoreDiameter) / 2
}

package geometry

import "math"

// Modulation scale factors. These are part of the shape definition, not
// tuning knobs; changing them changes every generated mesh.
const (
	twistPhaseScale = 0.067
	grooveScale     = 0.06
	waveScale       = 0.15
)

// Modulation is the periodic radius perturbation shared by both shape
// families. The groove term ripples around the circumference, the wave
// term ripples along the axis, and the twist term skews the groove
// phase linearly with height.
type Modulation struct {
	BaseWidth     float64
	SegmentCount  int
	TwistAngle    float64
	GrooveDepth   float64
	WaveFrequency float64
	WaveDepth     float64
}

// Modulation returns the outer-shell modulation for these parameters.
func (p Params) Modulation() Modulation {
	return Modulation{
		BaseWidth:     p.Width,
		SegmentCount:  p.SegmentCount,
		TwistAngle:    p.TwistAngle,
		GrooveDepth:   p.GrooveDepth,
		WaveFrequency: p.WaveFrequency,
		WaveDepth:     p.WaveDepth,
	}
}

// Inner returns a copy with the base width reduced by the wall
// thickness. The groove and wave terms are untouched, so the inner
// shell tracks the outer shell in phase.
func (m Modulation) Inner(wallThickness float64) Modulation {
	m.BaseWidth -= wallThickness
	return m
}

// Radius evaluates the modulated radius at azimuthal angle phi
// (radians) and lengthRatio in [0, 1], where 0 is the bottom rim and 1
// the top rim.
func (m Modulation) Radius(phi, lengthRatio float64) float64 {
	phi += m.TwistAngle * twistPhaseScale * math.Pi * lengthRatio
	return m.BaseWidth +
		m.GrooveDepth*grooveScale*math.Cos(float64(m.SegmentCount)*phi) +
		m.WaveDepth*waveScale*math.Cos(m.WaveFrequency*lengthRatio)
}

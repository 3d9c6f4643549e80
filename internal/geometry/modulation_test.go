package geometry

import (
	"math"
	"testing"
)

func TestRadiusZeroDepths(t *testing.T) {
	m := Modulation{BaseWidth: 2.5, SegmentCount: 5, TwistAngle: 20, WaveFrequency: 3}

	for _, phi := range []float64{0, 1, math.Pi, 5} {
		for _, ratio := range []float64{0, 0.5, 1} {
			if r := m.Radius(phi, ratio); r != 2.5 {
				t.Errorf("Radius(%v, %v) = %v, want 2.5 with zero depths", phi, ratio, r)
			}
		}
	}
}

func TestRadiusTwistSkew(t *testing.T) {
	twisted := Modulation{BaseWidth: 1.2, SegmentCount: 5, TwistAngle: 30, GrooveDepth: 2, WaveFrequency: 4, WaveDepth: 1}
	straight := twisted
	straight.TwistAngle = 0

	// At the bottom rim the twist term vanishes.
	if got, want := twisted.Radius(1.0, 0), straight.Radius(1.0, 0); got != want {
		t.Errorf("bottom rim radius = %v, want %v regardless of twist", got, want)
	}

	// Elsewhere the twist is a pure phase shift of the groove.
	for _, ratio := range []float64{0.25, 0.5, 1} {
		phi := 0.7
		shifted := phi + 30*twistPhaseScale*math.Pi*ratio
		got := twisted.Radius(phi, ratio)
		want := straight.Radius(shifted, ratio)
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("ratio %v: twisted radius = %v, want %v", ratio, got, want)
		}
	}
}

func TestRadiusGroovePeriod(t *testing.T) {
	m := Modulation{BaseWidth: 2.5, SegmentCount: 8, GrooveDepth: 3}

	phi := 0.3
	period := 2 * math.Pi / 8
	if got, want := m.Radius(phi+period, 0.5), m.Radius(phi, 0.5); math.Abs(got-want) > 1e-12 {
		t.Errorf("radius one groove period apart: %v vs %v", got, want)
	}
}

func TestRadiusDepthScales(t *testing.T) {
	m := Modulation{BaseWidth: 2.0, SegmentCount: 1, GrooveDepth: 1, WaveFrequency: 0, WaveDepth: 1}

	// phi = 0, ratio chosen so both cosines evaluate to 1.
	got := m.Radius(0, 0)
	want := 2.0 + grooveScale + waveScale
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Radius(0, 0) = %v, want %v", got, want)
	}
}

func TestInnerShiftsBaseWidthOnly(t *testing.T) {
	outer := Modulation{BaseWidth: 2.5, SegmentCount: 5, TwistAngle: 20, GrooveDepth: 1, WaveFrequency: 3, WaveDepth: 1}
	inner := outer.Inner(0.5)

	if inner.BaseWidth != 2.0 {
		t.Fatalf("inner base width = %v, want 2.0", inner.BaseWidth)
	}
	for _, phi := range []float64{0, 0.9, 2.2} {
		d := outer.Radius(phi, 0.6) - inner.Radius(phi, 0.6)
		if math.Abs(d-0.5) > 1e-12 {
			t.Errorf("shell separation at phi %v = %v, want 0.5", phi, d)
		}
	}
}

func TestRadiusDeterministic(t *testing.T) {
	m := DefaultParams(KindHollow).Modulation()
	for i := 0; i < 100; i++ {
		phi := float64(i) * 0.1
		if m.Radius(phi, 0.3) != m.Radius(phi, 0.3) {
			t.Fatalf("radius at phi %v not reproducible", phi)
		}
	}
}

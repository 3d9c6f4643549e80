package geometry

import (
	"errors"
	"fmt"
)

// ErrMissingParameter is returned when a required field is absent from a
// parameter map.
var ErrMissingParameter = errors.New("missing parameter")

// Parameter map keys, shared with favorites records and CLI flags.
const (
	KeySegmentCount  = "segment_count"
	KeyWidth         = "width"
	KeyTwistAngle    = "twist_angle"
	KeyGrooveDepth   = "groove_depth"
	KeyWaveFrequency = "wave_frequency"
	KeyWaveDepth     = "wave_depth"
	KeyWallThickness = "wall_thickness"
)

// Params are the user-facing shape parameters. SegmentCount sets the
// groove frequency, not the tessellation resolution. WallThickness
// applies to the hollow family only and is ignored by the solid builder.
type Params struct {
	SegmentCount  int
	Width         float64
	TwistAngle    float64
	GrooveDepth   float64
	WaveFrequency float64
	WaveDepth     float64
	WallThickness float64
}

// ParamRange describes one parameter for UI collaborators: its map key,
// advisory slider range, and default value.
type ParamRange struct {
	Key     string
	Min     float64
	Max     float64
	Default float64
}

// DefaultParams returns the default parameter set for a shape kind.
func DefaultParams(kind ShapeKind) Params {
	if kind == KindHollow {
		return Params{
			SegmentCount:  5,
			Width:         2.5,
			TwistAngle:    20,
			GrooveDepth:   1.0,
			WaveFrequency: 3.0,
			WaveDepth:     1.0,
			WallThickness: defaultWallThickness,
		}
	}
	return Params{
		SegmentCount:  5,
		Width:         1.2,
		TwistAngle:    10,
		GrooveDepth:   1.0,
		WaveFrequency: 4.0,
		WaveDepth:     1.0,
	}
}

// Ranges returns the advisory parameter ranges for a shape kind, in
// slider order. Ranges are UI guidance: the service clamps to them at
// the request boundary, but the builders accept any values.
func Ranges(kind ShapeKind) []ParamRange {
	if kind == KindHollow {
		return []ParamRange{
			{KeySegmentCount, 2, 9, 5},
			{KeyWidth, 2, 3, 2.5},
			{KeyTwistAngle, 0, 45, 20},
			{KeyGrooveDepth, 0, 5, 1},
			{KeyWaveFrequency, 0, 20, 3},
			{KeyWaveDepth, 0, 5, 1},
			{KeyWallThickness, 0.1, 1, defaultWallThickness},
		}
	}
	return []ParamRange{
		{KeySegmentCount, 2, 9, 5},
		{KeyWidth, 0.5, 2, 1.2},
		{KeyTwistAngle, 0, 45, 10},
		{KeyGrooveDepth, 0, 5, 1},
		{KeyWaveFrequency, 0, 20, 4},
		{KeyWaveDepth, 0, 5, 1},
	}
}

// ParamsFromMap converts a parameter map into Params for the given
// kind. Every field except wall thickness is required; an absent field
// wraps ErrMissingParameter. A missing wall thickness falls back to the
// family default.
func ParamsFromMap(kind ShapeKind, m map[string]float64) (Params, error) {
	var p Params
	for _, r := range Ranges(kind) {
		v, ok := m[r.Key]
		if !ok {
			if r.Key == KeyWallThickness {
				v = r.Default
			} else {
				return Params{}, fmt.Errorf("%w: %s", ErrMissingParameter, r.Key)
			}
		}
		p.set(r.Key, v)
	}
	return p, nil
}

// Map converts Params into a parameter map for the given kind. Wall
// thickness is included only for the hollow family.
func (p Params) Map(kind ShapeKind) map[string]float64 {
	ranges := Ranges(kind)
	m := make(map[string]float64, len(ranges))
	for _, r := range ranges {
		m[r.Key] = p.value(r.Key)
	}
	return m
}

// Clamp forces every field into the advisory range for the kind and
// returns the adjusted copy along with the keys that changed.
func (p Params) Clamp(kind ShapeKind) (Params, []string) {
	var adjusted []string
	out := p
	for _, r := range Ranges(kind) {
		v := out.value(r.Key)
		switch {
		case v < r.Min:
			v = r.Min
		case v > r.Max:
			v = r.Max
		default:
			continue
		}
		out.set(r.Key, v)
		adjusted = append(adjusted, r.Key)
	}
	return out, adjusted
}

func (p Params) value(key string) float64 {
	switch key {
	case KeySegmentCount:
		return float64(p.SegmentCount)
	case KeyWidth:
		return p.Width
	case KeyTwistAngle:
		return p.TwistAngle
	case KeyGrooveDepth:
		return p.GrooveDepth
	case KeyWaveFrequency:
		return p.WaveFrequency
	case KeyWaveDepth:
		return p.WaveDepth
	case KeyWallThickness:
		return p.WallThickness
	}
	return 0
}

func (p *Params) set(key string, v float64) {
	switch key {
	case KeySegmentCount:
		p.SegmentCount = int(v)
	case KeyWidth:
		p.Width = v
	case KeyTwistAngle:
		p.TwistAngle = v
	case KeyGrooveDepth:
		p.GrooveDepth = v
	case KeyWaveFrequency:
		p.WaveFrequency = v
	case KeyWaveDepth:
		p.WaveDepth = v
	case KeyWallThickness:
		p.WallThickness = v
	}
}

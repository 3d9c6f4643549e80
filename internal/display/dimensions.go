// Package display derives, caches, and throttles the dimension readout
// and camera framing for the primary displayed object.
package display

import (
	"fmt"

	"github.com/Faultbox/lathe/internal/geometry"
)

// Dimensions is the size summary shown for a displayed object: the
// generated height/diameter pair when the shape family provides a
// diameter, otherwise a bounding-box measurement.
type Dimensions struct {
	Kind geometry.ShapeKind

	Height      float64
	Diameter    float64
	HasDiameter bool

	// Measured extents, filled on the fallback path.
	Width float64
	Depth float64
}

// String formats the readout text.
func (d Dimensions) String() string {
	if d.HasDiameter {
		return fmt.Sprintf("Height: %.2f inches | Diameter: %.2f inches", d.Height, d.Diameter)
	}
	return fmt.Sprintf("Width: %.2f inches\nHeight: %.2f inches\nDepth: %.2f inches", d.Width, d.Height, d.Depth)
}

// Readout receives dimension text updates.
type Readout interface {
	ShowDimensions(d Dimensions)
}

// Framer adjusts the camera to frame an object of the given size. A
// diameter of zero or less means the object has no known diameter.
type Framer interface {
	FrameView(height, diameter float64)
}

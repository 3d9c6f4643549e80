package geometry

import (
	"math"

	"github.com/chewxy/math32"
)

// Fixed tessellation of the hollow family.
const (
	hollowHeight = 7.0
	hollowSlices = 40
	hollowStacks = 40
)

// defaultWallThickness separates the shells when the caller does not
// choose a wall thickness.
const defaultWallThickness = 0.5

// BuildHollow generates the double-shell family: concentric outer and
// inner walls sealed by annular caps at both rims, so the mesh is
// watertight. Wall normals are per-vertex radial, negated on the inner
// shell so they face the cavity.
func BuildHollow(p Params) *Result {
	outer := p.Modulation()
	inner := outer.Inner(p.WallThickness)

	const n = hollowSlices
	buf := newMeshBuffer(4*n+4*n*hollowStacks, 4*n+4*n*hollowStacks)

	half := hollowHeight / 2

	// Cap rings. The top rim sits at length ratio 1, the bottom at 0.
	topOuter := make([]uint32, n)
	topInner := make([]uint32, n)
	bottomOuter := make([]uint32, n)
	bottomInner := make([]uint32, n)
	for i := 0; i < n; i++ {
		angle := ringAngle(i, n)
		c, s := math.Cos(angle), math.Sin(angle)

		r := outer.Radius(angle, 1.0)
		topOuter[i] = buf.addVertex(r*c, r*s, half, 0, 0, 1)
		r = inner.Radius(angle, 1.0)
		topInner[i] = buf.addVertex(r*c, r*s, half, 0, 0, 1)
		r = outer.Radius(angle, 0.0)
		bottomOuter[i] = buf.addVertex(r*c, r*s, -half, 0, 0, -1)
		r = inner.Radius(angle, 0.0)
		bottomInner[i] = buf.addVertex(r*c, r*s, -half, 0, 0, -1)
	}

	// Annular caps, two triangles per quad, facing +z on top and -z on
	// the bottom.
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		buf.addTriangle(topInner[i], topOuter[i], topOuter[next])
		buf.addTriangle(topInner[i], topOuter[next], topInner[next])
		buf.addTriangle(bottomInner[i], bottomInner[next], bottomOuter[next])
		buf.addTriangle(bottomInner[i], bottomOuter[next], bottomOuter[i])
	}

	// Walls: per band, one shared vertex ring per shell and edge. Cap
	// and wall rings at the rims repeat the exact same position math,
	// which is what keeps the rim edges shared rather than split.
	for h := 0; h < hollowStacks; h++ {
		z1 := half - hollowHeight*float64(h)/hollowStacks
		z2 := half - hollowHeight*float64(h+1)/hollowStacks
		ratio1 := 1.0 - float64(h)/hollowStacks
		ratio2 := 1.0 - float64(h+1)/hollowStacks

		outerUpper := make([]uint32, n)
		outerLower := make([]uint32, n)
		innerUpper := make([]uint32, n)
		innerLower := make([]uint32, n)

		for i := 0; i < n; i++ {
			angle := ringAngle(i, n)
			c, s := math.Cos(angle), math.Sin(angle)
			nx := math32.Cos(float32(angle))
			ny := math32.Sin(float32(angle))

			r := outer.Radius(angle, ratio1)
			outerUpper[i] = buf.addVertex(r*c, r*s, z1, nx, ny, 0)
			r = outer.Radius(angle, ratio2)
			outerLower[i] = buf.addVertex(r*c, r*s, z2, nx, ny, 0)
			r = inner.Radius(angle, ratio1)
			innerUpper[i] = buf.addVertex(r*c, r*s, z1, -nx, -ny, 0)
			r = inner.Radius(angle, ratio2)
			innerLower[i] = buf.addVertex(r*c, r*s, z2, -nx, -ny, 0)
		}

		for i := 0; i < n; i++ {
			next := (i + 1) % n
			// Outer shell winds outward.
			buf.addTriangle(outerUpper[i], outerLower[i], outerLower[next])
			buf.addTriangle(outerUpper[i], outerLower[next], outerUpper[next])
			// Inner shell winds reversed, toward the cavity.
			buf.addTriangle(innerUpper[i], innerUpper[next], innerLower[i])
			buf.addTriangle(innerLower[i], innerUpper[next], innerLower[next])
		}
	}

	mesh := buf.mesh()
	return &Result{
		Kind:          KindHollow,
		Mesh:          mesh,
		Height:        mesh.Bounds.SizeZ(),
		Diameter:      mesh.Bounds.SizeX(),
		HasDiameter:   true,
		VertexCount:   mesh.VertexCount(),
		TriangleCount: mesh.TriangleCount(),
	}
}

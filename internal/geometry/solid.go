package geometry

import (
	"math"

	"github.com/chewxy/math32"
)

// Fixed tessellation of the solid family. These set mesh resolution
// only; the user's segment count sets groove frequency.
const (
	solidHeight = 2.0
	solidSlices = 100
	solidStacks = 50
)

// BuildSolid generates the single-shell family: modulated top and
// bottom cap fans joined by a segmented side wall. The result is a
// closed mesh with 2+2*solidSlices+4*solidSlices*solidStacks vertices.
func BuildSolid(p Params) *Result {
	mod := p.Modulation()

	const n = solidSlices
	buf := newMeshBuffer(2+2*n+4*n*solidStacks, 2*n+2*n*solidStacks)

	half := solidHeight / 2

	topCenter := buf.addVertex(0, 0, half, 0, 0, 1)
	bottomCenter := buf.addVertex(0, 0, -half, 0, 0, -1)

	// Rim rings for both caps.
	top := make([]uint32, n)
	bottom := make([]uint32, n)
	for i := 0; i < n; i++ {
		angle := ringAngle(i, n)
		c, s := math.Cos(angle), math.Sin(angle)
		r := mod.Radius(angle, 1.0)
		top[i] = buf.addVertex(r*c, r*s, half, 0, 0, 1)
		r = mod.Radius(angle, 0.0)
		bottom[i] = buf.addVertex(r*c, r*s, -half, 0, 0, -1)
	}

	// Cap fans. The bottom fan reverses winding so its normal faces -z.
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		buf.addTriangle(topCenter, top[i], top[next])
		buf.addTriangle(bottomCenter, bottom[next], bottom[i])
	}

	// Side wall: one band per stack, four fresh vertices per quad, all
	// sharing a flat radial normal taken at the quad's mid-angle. The
	// normal ignores the groove slope; shading is knowingly approximate.
	for h := 0; h < solidStacks; h++ {
		z1 := half - solidHeight*float64(h)/solidStacks
		z2 := half - solidHeight*float64(h+1)/solidStacks
		ratio1 := 1.0 - float64(h)/solidStacks
		ratio2 := 1.0 - float64(h+1)/solidStacks

		for i := 0; i < n; i++ {
			next := (i + 1) % n
			angle1 := ringAngle(i, n)
			angle2 := ringAngle(next, n)
			c1, s1 := math.Cos(angle1), math.Sin(angle1)
			c2, s2 := math.Cos(angle2), math.Sin(angle2)

			mid := float32((angle1 + angle2) / 2)
			nx := math32.Cos(mid)
			ny := math32.Sin(mid)

			r := mod.Radius(angle1, ratio1)
			v1 := buf.addVertex(r*c1, r*s1, z1, nx, ny, 0)
			r = mod.Radius(angle1, ratio2)
			v2 := buf.addVertex(r*c1, r*s1, z2, nx, ny, 0)
			r = mod.Radius(angle2, ratio2)
			v3 := buf.addVertex(r*c2, r*s2, z2, nx, ny, 0)
			r = mod.Radius(angle2, ratio1)
			v4 := buf.addVertex(r*c2, r*s2, z1, nx, ny, 0)

			buf.addTriangle(v1, v2, v3)
			buf.addTriangle(v1, v3, v4)
		}
	}

	mesh := buf.mesh()
	return &Result{
		Kind:          KindSolid,
		Mesh:          mesh,
		Height:        mesh.Bounds.SizeZ(),
		VertexCount:   mesh.VertexCount(),
		TriangleCount: mesh.TriangleCount(),
	}
}

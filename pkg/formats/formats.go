// Package formats writes triangle meshes to interchange file formats.
package formats

import (
	"errors"

	"github.com/Faultbox/lathe/pkg/math"
)

// ErrEmptyMesh is returned when a writer is handed a mesh with no
// triangles.
var ErrEmptyMesh = errors.New("mesh has no triangles")

// TriangleMesh is the read surface the writers consume. Triangles wind
// counter-clockwise seen from outside; Vertex returns the position and
// per-vertex normal.
type TriangleMesh interface {
	VertexCount() int
	TriangleCount() int
	Vertex(i int) (position, normal [3]float32)
	Triangle(i int) (a, b, c uint32)
}

// faceNormal returns the unit normal of a triangle, or zero for a
// degenerate one.
func faceNormal(a, b, c [3]float32) [3]float32 {
	av := math.Vec3{X: a[0], Y: a[1], Z: a[2]}
	bv := math.Vec3{X: b[0], Y: b[1], Z: b[2]}
	cv := math.Vec3{X: c[0], Y: c[1], Z: c[2]}

	n := bv.Sub(av).Cross(cv.Sub(av)).Normalize()
	return [3]float32{n.X, n.Y, n.Z}
}

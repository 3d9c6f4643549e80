package geometry

import "math"

// meshBuffer accumulates vertices and triangles during generation and
// tracks the bounding box of every vertex added.
type meshBuffer struct {
	vertices []Vertex
	indices  []uint32
	bounds   Bounds
}

func newMeshBuffer(vertexCap, triangleCap int) *meshBuffer {
	return &meshBuffer{
		vertices: make([]Vertex, 0, vertexCap),
		indices:  make([]uint32, 0, 3*triangleCap),
		bounds: Bounds{
			Min: [3]float32{1e10, 1e10, 1e10},
			Max: [3]float32{-1e10, -1e10, -1e10},
		},
	}
}

// addVertex appends a vertex and returns its index.
func (b *meshBuffer) addVertex(x, y, z float64, nx, ny, nz float32) uint32 {
	pos := [3]float32{float32(x), float32(y), float32(z)}
	b.updateBounds(pos)
	b.vertices = append(b.vertices, Vertex{Position: pos, Normal: [3]float32{nx, ny, nz}})
	return uint32(len(b.vertices) - 1)
}

// addTriangle appends one triangle in counter-clockwise winding order.
func (b *meshBuffer) addTriangle(v1, v2, v3 uint32) {
	b.indices = append(b.indices, v1, v2, v3)
}

func (b *meshBuffer) updateBounds(p [3]float32) {
	for i := range p {
		if p[i] < b.bounds.Min[i] {
			b.bounds.Min[i] = p[i]
		}
		if p[i] > b.bounds.Max[i] {
			b.bounds.Max[i] = p[i]
		}
	}
}

// mesh finalizes the buffer into an immutable Mesh.
func (b *meshBuffer) mesh() *Mesh {
	return &Mesh{Vertices: b.vertices, Indices: b.indices, Bounds: b.bounds}
}

// ringAngle returns the azimuthal angle of slice i out of n. All ring
// positions derive from this one expression, so vertices emitted at the
// same slice by different call sites are bit-identical.
func ringAngle(i, n int) float64 {
	return 2 * math.Pi * float64(i) / float64(n)
}

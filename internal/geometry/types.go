// Package geometry builds triangulated solid-of-revolution meshes from
// shape parameters and caches the results keyed by rounded parameters.
package geometry

// Vertex is a mesh vertex with position and normal.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Mesh holds an indexed triangle mesh ready for scene attachment.
// Meshes are immutable once built and may be shared across scene nodes.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// IsEmpty reports whether the mesh has no triangles.
func (m *Mesh) IsEmpty() bool { return len(m.Indices) == 0 }

// Vertex returns the position and normal of vertex i.
func (m *Mesh) Vertex(i int) (position, normal [3]float32) {
	v := m.Vertices[i]
	return v.Position, v.Normal
}

// Triangle returns the vertex indices of triangle i.
func (m *Mesh) Triangle(i int) (a, b, c uint32) {
	return m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]
}

// Bounds is an axis-aligned bounding box tracked during mesh generation.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// SizeX returns the x extent.
func (b Bounds) SizeX() float64 { return float64(b.Max[0]) - float64(b.Min[0]) }

// SizeY returns the y extent.
func (b Bounds) SizeY() float64 { return float64(b.Max[1]) - float64(b.Min[1]) }

// SizeZ returns the z extent. The revolution axis is z, so this is the
// built object's height.
func (b Bounds) SizeZ() float64 { return float64(b.Max[2]) - float64(b.Min[2]) }

// Result is the immutable outcome of building one shape. A Result is
// created once per cache miss and shared read-only with every caller
// that receives a cache hit afterwards.
type Result struct {
	Kind ShapeKind
	Mesh *Mesh

	// Height is the tracked z extent of the generated mesh.
	Height float64

	// Diameter is the tracked x extent. Only the hollow family
	// advertises one; HasDiameter is false for solid results and the
	// display layer falls back to measured node bounds.
	Diameter    float64
	HasDiameter bool

	// Generation metadata.
	VertexCount   int
	TriangleCount int
}

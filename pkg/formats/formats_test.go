package formats

import (
	"testing"
)

// fixtureMesh is a hand-built TriangleMesh for writer tests.
type fixtureMesh struct {
	verts   [][3]float32
	normals [][3]float32
	tris    [][3]uint32
}

func (m *fixtureMesh) VertexCount() int   { return len(m.verts) }
func (m *fixtureMesh) TriangleCount() int { return len(m.tris) }

func (m *fixtureMesh) Vertex(i int) (position, normal [3]float32) {
	return m.verts[i], m.normals[i]
}

func (m *fixtureMesh) Triangle(i int) (a, b, c uint32) {
	t := m.tris[i]
	return t[0], t[1], t[2]
}

// quadMesh returns a unit square in the xy plane, wound toward +z.
func quadMesh() *fixtureMesh {
	up := [3]float32{0, 0, 1}
	return &fixtureMesh{
		verts:   [][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		normals: [][3]float32{up, up, up, up},
		tris:    [][3]uint32{{0, 1, 2}, {0, 2, 3}},
	}
}

func TestFaceNormal(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c [3]float32
		want    [3]float32
	}{
		{
			name: "counter-clockwise in xy faces +z",
			a:    [3]float32{0, 0, 0}, b: [3]float32{1, 0, 0}, c: [3]float32{0, 1, 0},
			want: [3]float32{0, 0, 1},
		},
		{
			name: "clockwise in xy faces -z",
			a:    [3]float32{0, 0, 0}, b: [3]float32{0, 1, 0}, c: [3]float32{1, 0, 0},
			want: [3]float32{0, 0, -1},
		},
		{
			name: "degenerate is zero",
			a:    [3]float32{1, 1, 1}, b: [3]float32{1, 1, 1}, c: [3]float32{2, 2, 2},
			want: [3]float32{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := faceNormal(tt.a, tt.b, tt.c); got != tt.want {
				t.Errorf("faceNormal = %v, want %v", got, tt.want)
			}
		})
	}
}

package formats

import (
	"bufio"
	"fmt"
	"io"
)

// WriteOBJ writes the mesh as Wavefront OBJ text: one v record per
// vertex position, one vn per vertex normal, then f records referencing
// both with 1-based indices.
func WriteOBJ(w io.Writer, m TriangleMesh) error {
	if m.TriangleCount() == 0 {
		return ErrEmptyMesh
	}

	bw := bufio.NewWriter(w)
	for i := 0; i < m.VertexCount(); i++ {
		p, _ := m.Vertex(i)
		fmt.Fprintf(bw, "v %g %g %g\n", p[0], p[1], p[2])
	}
	for i := 0; i < m.VertexCount(); i++ {
		_, n := m.Vertex(i)
		fmt.Fprintf(bw, "vn %g %g %g\n", n[0], n[1], n[2])
	}
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a+1, a+1, b+1, b+1, c+1, c+1)
	}
	return bw.Flush()
}

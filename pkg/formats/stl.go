package formats

import (
	"encoding/binary"
	"io"
)

// stlHeaderSize is the fixed binary STL header length.
const stlHeaderSize = 80

// stlTriangle is the 50-byte on-disk triangle record.
type stlTriangle struct {
	Normal   [3]float32
	Vertices [3][3]float32
	Attr     uint16
}

// WriteSTL writes the mesh as binary little-endian STL: an 80-byte
// header carrying the name, a uint32 triangle count, then one
// stlTriangle per face with a recomputed flat normal and a zero
// attribute count. Output is exactly 84 + 50*triangles bytes.
func WriteSTL(w io.Writer, m TriangleMesh, name string) error {
	if m.TriangleCount() == 0 {
		return ErrEmptyMesh
	}

	// A binary STL must not open with the ASCII marker "solid", so the
	// header carries a fixed prefix ahead of the mesh name.
	var header [stlHeaderSize]byte
	copy(header[:], "lathe mesh: "+name)
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(m.TriangleCount())); err != nil {
		return err
	}

	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		pa, _ := m.Vertex(int(a))
		pb, _ := m.Vertex(int(b))
		pc, _ := m.Vertex(int(c))

		tri := stlTriangle{
			Normal:   faceNormal(pa, pb, pc),
			Vertices: [3][3]float32{pa, pb, pc},
		}
		if err := binary.Write(w, binary.LittleEndian, &tri); err != nil {
			return err
		}
	}
	return nil
}

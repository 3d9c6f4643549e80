package geometry

import "fmt"

// edge identifies an undirected triangle edge by its endpoint
// positions. The builders duplicate vertices where surfaces meet, so
// identity must be positional; exact float keys work because shared
// positions are emitted from identical expressions.
type edge struct {
	a, b [3]float32
}

func makeEdge(a, b [3]float32) edge {
	if posLess(b, a) {
		a, b = b, a
	}
	return edge{a, b}
}

func posLess(a, b [3]float32) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// CheckClosed verifies that every edge of the mesh is shared by exactly
// two triangles. A nil return means the surface is closed.
func CheckClosed(m *Mesh) error {
	if m.IsEmpty() {
		return fmt.Errorf("mesh has no triangles")
	}
	counts := make(map[edge]int, len(m.Indices))
	for t := 0; t+2 < len(m.Indices); t += 3 {
		a := m.Vertices[m.Indices[t]].Position
		b := m.Vertices[m.Indices[t+1]].Position
		c := m.Vertices[m.Indices[t+2]].Position
		counts[makeEdge(a, b)]++
		counts[makeEdge(b, c)]++
		counts[makeEdge(c, a)]++
	}
	bad := 0
	for _, count := range counts {
		if count != 2 {
			bad++
		}
	}
	if bad > 0 {
		return fmt.Errorf("mesh not closed: %d of %d edges are not on exactly two triangles", bad, len(counts))
	}
	return nil
}

// SignedVolume integrates the volume enclosed by the mesh. It is
// positive when triangles wind counter-clockwise seen from outside, so
// a closed mesh with a negative signed volume is inside out.
func SignedVolume(m *Mesh) float64 {
	var vol float64
	for t := 0; t+2 < len(m.Indices); t += 3 {
		a := m.Vertices[m.Indices[t]].Position
		b := m.Vertices[m.Indices[t+1]].Position
		c := m.Vertices[m.Indices[t+2]].Position

		ax, ay, az := float64(a[0]), float64(a[1]), float64(a[2])
		bx, by, bz := float64(b[0]), float64(b[1]), float64(b[2])
		cx, cy, cz := float64(c[0]), float64(c[1]), float64(c[2])

		vol += ax*(by*cz-bz*cy) + ay*(bz*cx-bx*cz) + az*(bx*cy-by*cx)
	}
	return vol / 6
}

package scene

import (
	"github.com/Faultbox/lathe/internal/geometry"
	"github.com/Faultbox/lathe/pkg/math"
)

// Node is a display object: one mesh, its placement, and the graph
// handle it is attached under. Nodes are plain data; the Service moves
// them between the graph and the pool.
type Node struct {
	Name     string
	Mesh     *geometry.Mesh
	Result   *geometry.Result
	Position math.Vec3
	Scale    float32
	Handle   Handle
}

// Bounds returns the mesh bounds scaled and translated into graph
// space. The second return is false when the node holds no mesh.
func (n *Node) Bounds() (geometry.Bounds, bool) {
	if n == nil || n.Mesh == nil {
		return geometry.Bounds{}, false
	}
	scale := n.Scale
	if scale == 0 {
		scale = 1
	}
	offset := [3]float32{n.Position.X, n.Position.Y, n.Position.Z}
	b := n.Mesh.Bounds
	for i := 0; i < 3; i++ {
		b.Min[i] = b.Min[i]*scale + offset[i]
		b.Max[i] = b.Max[i]*scale + offset[i]
	}
	return b, true
}

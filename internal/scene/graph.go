package scene

import (
	"fmt"

	"github.com/Faultbox/lathe/internal/geometry"
)

// Handle identifies one attachment in a Graph. The zero handle is never
// issued.
type Handle int

// Graph is the scene attachment surface a renderer provides. The
// pipeline only attaches finished meshes, releases their geometry, and
// detaches; placement stays on the Node.
type Graph interface {
	Attach(mesh *geometry.Mesh) (Handle, error)
	ClearGeometry(h Handle)
	Detach(h Handle)
}

// MemoryGraph is an in-process Graph for headless use: the CLI, the
// app shell, and tests.
type MemoryGraph struct {
	next     Handle
	attached map[Handle]*geometry.Mesh
	total    int
}

// NewMemoryGraph creates an empty graph.
func NewMemoryGraph() *MemoryGraph {
	return &MemoryGraph{attached: make(map[Handle]*geometry.Mesh)}
}

// Attach registers a mesh and returns its handle.
func (g *MemoryGraph) Attach(mesh *geometry.Mesh) (Handle, error) {
	if mesh == nil {
		return 0, fmt.Errorf("attach: nil mesh")
	}
	g.next++
	g.attached[g.next] = mesh
	g.total++
	return g.next, nil
}

// ClearGeometry releases the mesh held under a handle. The attachment
// itself remains until Detach.
func (g *MemoryGraph) ClearGeometry(h Handle) {
	if _, ok := g.attached[h]; ok {
		g.attached[h] = nil
	}
}

// Detach removes an attachment. Unknown handles are ignored.
func (g *MemoryGraph) Detach(h Handle) {
	delete(g.attached, h)
}

// Len returns the number of current attachments.
func (g *MemoryGraph) Len() int { return len(g.attached) }

// TotalAttached returns the number of attachments made over the graph's
// lifetime.
func (g *MemoryGraph) TotalAttached() int { return g.total }

// Mesh returns the mesh currently held under a handle.
func (g *MemoryGraph) Mesh(h Handle) (*geometry.Mesh, bool) {
	m, ok := g.attached[h]
	return m, ok
}

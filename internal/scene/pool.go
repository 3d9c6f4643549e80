package scene

// DefaultPoolCapacity bounds how many detached nodes the pool keeps.
const DefaultPoolCapacity = 32

// NodePool recycles detached display nodes. Get strips whatever mesh
// and placement a pooled node carried in its previous life; Put drops
// nodes beyond capacity.
type NodePool struct {
	free     []*Node
	capacity int

	created int
	reused  int
}

// NewNodePool creates a pool. A non-positive capacity falls back to
// DefaultPoolCapacity.
func NewNodePool(capacity int) *NodePool {
	if capacity <= 0 {
		capacity = DefaultPoolCapacity
	}
	return &NodePool{capacity: capacity}
}

// Get returns a cleared node under the given name, reusing a pooled
// node when one is available.
func (p *NodePool) Get(name string) *Node {
	if n := len(p.free); n > 0 {
		node := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		*node = Node{Name: name, Scale: 1}
		p.reused++
		return node
	}
	p.created++
	return &Node{Name: name, Scale: 1}
}

// Put stores a node for reuse. Nil nodes and nodes beyond capacity are
// dropped.
func (p *NodePool) Put(node *Node) {
	if node == nil || len(p.free) >= p.capacity {
		return
	}
	p.free = append(p.free, node)
}

// Len returns the number of pooled nodes.
func (p *NodePool) Len() int { return len(p.free) }

// Created returns how many nodes were allocated fresh.
func (p *NodePool) Created() int { return p.created }

// Reused returns how many Gets were served from the pool.
func (p *NodePool) Reused() int { return p.reused }

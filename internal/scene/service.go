// Package scene manages display objects for generated geometry: an
// object-creation service in front of the per-family geometry caches, a
// node pool, and the attachment interface a renderer implements.
package scene

import (
	"errors"
	"fmt"
	"time"

	"github.com/Faultbox/lathe/internal/geometry"
	"github.com/Faultbox/lathe/pkg/math"
)

// ErrUnsupportedShapeKind is returned for requests naming a kind with
// no registered family.
var ErrUnsupportedShapeKind = errors.New("unsupported shape kind")

// perfWindowSize bounds the rolling creation-latency window.
const perfWindowSize = 100

// Request asks the service for one display object. A request placed at
// the origin is the primary object and drives the display pipeline;
// side objects (gallery entries) use any other position.
type Request struct {
	Kind     geometry.ShapeKind
	Params   geometry.Params
	Position math.Vec3
	Scale    float32 // 0 means 1
}

// DisplayUpdater receives the primary object after every build. The
// display throttler implements it.
type DisplayUpdater interface {
	UpdateDisplay(node *Node, result *geometry.Result)
}

// Config sizes the service's owned state.
type Config struct {
	CacheCapacity int
	PoolCapacity  int
}

// DefaultConfig returns the default service sizing.
func DefaultConfig() Config {
	return Config{
		CacheCapacity: geometry.DefaultCacheCapacity,
		PoolCapacity:  DefaultPoolCapacity,
	}
}

// PerformanceStats summarizes object creation latency. Count is the
// lifetime total; Min, Avg, and Max cover the most recent
// perfWindowSize creations.
type PerformanceStats struct {
	Count int
	Min   time.Duration
	Avg   time.Duration
	Max   time.Duration
}

// Service builds display objects on demand. It resolves the shape
// family, clamps parameters at the request boundary, consults the
// family's geometry cache, places the result on a pooled node, and
// attaches it to the graph.
type Service struct {
	graph   Graph
	display DisplayUpdater
	pool    *NodePool
	caches  map[geometry.ShapeKind]*geometry.Cache

	latencies []time.Duration
	created   int

	// OnClamp, when set, observes parameter adjustments made at the
	// request boundary.
	OnClamp func(kind geometry.ShapeKind, adjusted []string)
}

// NewService creates a Service on the given graph. display may be nil
// when no display pipeline is wired.
func NewService(graph Graph, display DisplayUpdater, cfg Config) *Service {
	kinds := geometry.Kinds()
	caches := make(map[geometry.ShapeKind]*geometry.Cache, len(kinds))
	for _, kind := range kinds {
		caches[kind] = geometry.NewCache(kind, cfg.CacheCapacity)
	}
	return &Service{
		graph:   graph,
		display: display,
		pool:    NewNodePool(cfg.PoolCapacity),
		caches:  caches,
	}
}

// CreateObject builds or fetches geometry for the request and returns
// it attached to the graph on a pooled node. Primary requests also push
// the result through the display updater.
func (s *Service) CreateObject(req Request) (*Node, error) {
	family, ok := geometry.FamilyFor(req.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedShapeKind, req.Kind)
	}

	params, adjusted := req.Params.Clamp(req.Kind)
	if len(adjusted) > 0 && s.OnClamp != nil {
		s.OnClamp(req.Kind, adjusted)
	}

	start := time.Now()
	result, _ := s.caches[req.Kind].GetOrBuild(params, family.Build)

	node := s.pool.Get(string(req.Kind) + "_object")
	node.Mesh = result.Mesh
	node.Result = result
	node.Position = req.Position
	if req.Scale > 0 {
		node.Scale = req.Scale
	}

	handle, err := s.graph.Attach(result.Mesh)
	if err != nil {
		s.pool.Put(node)
		return nil, fmt.Errorf("attach %s object: %w", req.Kind, err)
	}
	node.Handle = handle
	s.record(time.Since(start))

	if req.Position == (math.Vec3{}) && s.display != nil {
		s.display.UpdateDisplay(node, result)
	}
	return node, nil
}

// Recycle releases a node's geometry, detaches it, and returns the node
// to the pool.
func (s *Service) Recycle(node *Node) {
	if node == nil {
		return
	}
	if node.Handle != 0 {
		s.graph.ClearGeometry(node.Handle)
		s.graph.Detach(node.Handle)
		node.Handle = 0
	}
	s.pool.Put(node)
}

// SupportedKinds lists the shape kinds the service can build.
func (s *Service) SupportedKinds() []geometry.ShapeKind {
	return geometry.Kinds()
}

// CacheStats returns the per-family geometry cache counters.
func (s *Service) CacheStats() map[geometry.ShapeKind]geometry.CacheStats {
	out := make(map[geometry.ShapeKind]geometry.CacheStats, len(s.caches))
	for kind, c := range s.caches {
		out[kind] = c.Stats()
	}
	return out
}

// PerformanceStats returns the creation latency summary.
func (s *Service) PerformanceStats() PerformanceStats {
	stats := PerformanceStats{Count: s.created}
	if len(s.latencies) == 0 {
		return stats
	}
	stats.Min = s.latencies[0]
	var sum time.Duration
	for _, d := range s.latencies {
		if d < stats.Min {
			stats.Min = d
		}
		if d > stats.Max {
			stats.Max = d
		}
		sum += d
	}
	stats.Avg = sum / time.Duration(len(s.latencies))
	return stats
}

// Pool returns the service's node pool.
func (s *Service) Pool() *NodePool { return s.pool }

func (s *Service) record(d time.Duration) {
	s.created++
	s.latencies = append(s.latencies, d)
	if len(s.latencies) > perfWindowSize {
		s.latencies = s.latencies[1:]
	}
}

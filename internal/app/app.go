// Package app assembles the headless application shell: the object
// service, debounced display pipeline, orbit camera, and favorites
// store, driven by kind selection and batched parameter edits.
package app

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/lathe/internal/camera"
	"github.com/Faultbox/lathe/internal/display"
	"github.com/Faultbox/lathe/internal/favorites"
	"github.com/Faultbox/lathe/internal/geometry"
	"github.com/Faultbox/lathe/internal/scene"
	"github.com/Faultbox/lathe/pkg/math"
)

// ErrUnknownParameter is returned when a parameter key does not exist
// for the currently selected shape kind.
var ErrUnknownParameter = errors.New("unknown parameter")

// Favorites gallery layout: a row behind the primary object, centered
// on x, entries shrunk so neighbours do not overlap.
const (
	gallerySpacing = 4.0
	galleryRow     = 6.0
	galleryScale   = 0.5
)

// Config sizes the shell's components.
type Config struct {
	GeometryCacheCapacity int
	DisplayCacheCapacity  int
	PoolCapacity          int
	DebounceWindow        time.Duration
	FavoritesPath         string
}

// DefaultConfig returns the component defaults.
func DefaultConfig() Config {
	return Config{
		GeometryCacheCapacity: geometry.DefaultCacheCapacity,
		DisplayCacheCapacity:  display.DefaultCacheCapacity,
		PoolCapacity:          scene.DefaultPoolCapacity,
		DebounceWindow:        display.DefaultWindow,
		FavoritesPath:         favorites.DefaultPath,
	}
}

// Stats aggregates the counters of every component the shell owns.
type Stats struct {
	Kind        geometry.ShapeKind
	Caches      map[geometry.ShapeKind]geometry.CacheStats
	Performance scene.PerformanceStats
	Display     display.Stats
	Attached    int
	Gallery     int
	PoolCreated int
	PoolReused  int
}

// App is the application shell. It holds the current shape kind and
// parameters, batches parameter edits inside the debounce window, and
// rebuilds the primary object when a batch applies.
type App struct {
	log *zap.Logger

	graph     *scene.MemoryGraph
	service   *scene.Service
	camera    *camera.Orbit
	throttler *display.Throttler
	store     *favorites.Store

	kind   geometry.ShapeKind
	params geometry.Params

	primary *scene.Node
	gallery []*scene.Node

	window    time.Duration
	pending   map[string]float64
	lastApply time.Time

	now func() time.Time
}

// New wires the shell's components. log may be nil.
func New(cfg Config, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	def := DefaultConfig()
	if cfg.GeometryCacheCapacity <= 0 {
		cfg.GeometryCacheCapacity = def.GeometryCacheCapacity
	}
	if cfg.DisplayCacheCapacity <= 0 {
		cfg.DisplayCacheCapacity = def.DisplayCacheCapacity
	}
	if cfg.PoolCapacity <= 0 {
		cfg.PoolCapacity = def.PoolCapacity
	}
	if cfg.DebounceWindow <= 0 {
		cfg.DebounceWindow = def.DebounceWindow
	}
	if cfg.FavoritesPath == "" {
		cfg.FavoritesPath = def.FavoritesPath
	}

	graph := scene.NewMemoryGraph()
	cam := camera.NewOrbit()
	throttler := display.NewThrottler(&logReadout{log: log}, cam, display.Config{
		Window:   cfg.DebounceWindow,
		Capacity: cfg.DisplayCacheCapacity,
	})
	service := scene.NewService(graph, throttler, scene.Config{
		CacheCapacity: cfg.GeometryCacheCapacity,
		PoolCapacity:  cfg.PoolCapacity,
	})
	service.OnClamp = func(kind geometry.ShapeKind, adjusted []string) {
		log.Warn("parameters clamped to range",
			zap.String("kind", kind.String()),
			zap.Strings("parameters", adjusted))
	}

	return &App{
		log:       log,
		graph:     graph,
		service:   service,
		camera:    cam,
		throttler: throttler,
		store:     favorites.NewStore(cfg.FavoritesPath),
		window:    cfg.DebounceWindow,
		pending:   make(map[string]float64),
		now:       time.Now,
	}
}

// Kind returns the currently selected shape kind.
func (a *App) Kind() geometry.ShapeKind { return a.kind }

// Params returns the currently applied parameters.
func (a *App) Params() geometry.Params { return a.params }

// Camera returns the orbit camera the display pipeline frames with.
func (a *App) Camera() *camera.Orbit { return a.camera }

// SelectKind switches the active shape family, resets the parameters to
// the family defaults, drops any pending edits, and rebuilds.
func (a *App) SelectKind(kind geometry.ShapeKind) error {
	if _, ok := geometry.FamilyFor(kind); !ok {
		return fmt.Errorf("%w: %q", scene.ErrUnsupportedShapeKind, kind)
	}
	if kind == a.kind {
		return nil
	}
	a.kind = kind
	a.params = geometry.DefaultParams(kind)
	a.pending = make(map[string]float64)
	a.log.Info("shape kind selected", zap.String("kind", kind.String()))
	return a.Rebuild()
}

// SetParameter records one slider edit. Edits merge into a pending
// batch; the whole batch applies, with a rebuild, once the debounce
// window has elapsed since the last application. Edits landing inside
// the window only update the batch.
func (a *App) SetParameter(key string, value float64) error {
	if !validKey(a.kind, key) {
		return fmt.Errorf("%w: %q", ErrUnknownParameter, key)
	}
	a.pending[key] = value
	if !a.lastApply.IsZero() && a.now().Sub(a.lastApply) < a.window {
		return nil
	}
	return a.applyPending()
}

// Flush applies a trailing pending batch regardless of the window. Call
// it when an edit gesture ends.
func (a *App) Flush() error {
	if len(a.pending) == 0 {
		return nil
	}
	return a.applyPending()
}

func (a *App) applyPending() error {
	merged := a.params.Map(a.kind)
	for key, value := range a.pending {
		merged[key] = value
	}
	params, err := geometry.ParamsFromMap(a.kind, merged)
	if err != nil {
		return err
	}
	a.params = params
	a.pending = make(map[string]float64)
	a.lastApply = a.now()
	return a.Rebuild()
}

// Rebuild replaces the primary object with one built from the current
// kind and parameters.
func (a *App) Rebuild() error {
	if a.primary != nil {
		a.service.Recycle(a.primary)
		a.primary = nil
	}
	node, err := a.service.CreateObject(scene.Request{Kind: a.kind, Params: a.params})
	if err != nil {
		return err
	}
	a.primary = node
	a.log.Debug("primary object rebuilt",
		zap.String("kind", a.kind.String()),
		zap.Int("triangles", node.Result.TriangleCount))
	return nil
}

// SaveFavorite appends the current kind and parameters to the favorites
// store and returns the new total.
func (a *App) SaveFavorite() (int, error) {
	record := favorites.NewRecord(a.kind.String(), a.params.Map(a.kind), a.now())
	total, err := a.store.Append(record)
	if err != nil {
		return 0, err
	}
	a.log.Info("favorite saved",
		zap.String("kind", a.kind.String()),
		zap.Int("total", total))
	return total, nil
}

// ShowFavorites builds every stored favorite as a gallery row and
// returns the number of entries shown. Records that no longer parse are
// skipped. An existing gallery is recycled first.
func (a *App) ShowFavorites() (int, error) {
	records, err := a.store.Load()
	if err != nil {
		return 0, err
	}
	a.clearGallery()
	if len(records) == 0 {
		return 0, nil
	}

	startX := -gallerySpacing * float32(len(records)-1) / 2
	for i, record := range records {
		kind, err := geometry.ParseShapeKind(record.ObjectType)
		if err != nil {
			a.log.Warn("skipping favorite",
				zap.Int("index", i),
				zap.String("object_type", record.ObjectType),
				zap.Error(err))
			continue
		}
		params, err := geometry.ParamsFromMap(kind, record.Parameters)
		if err != nil {
			a.log.Warn("skipping favorite",
				zap.Int("index", i),
				zap.String("object_type", record.ObjectType),
				zap.Error(err))
			continue
		}
		node, err := a.service.CreateObject(scene.Request{
			Kind:     kind,
			Params:   params,
			Position: math.Vec3{X: startX + gallerySpacing*float32(i), Y: galleryRow},
			Scale:    galleryScale,
		})
		if err != nil {
			return len(a.gallery), err
		}
		a.gallery = append(a.gallery, node)
	}
	a.log.Info("favorites gallery shown", zap.Int("entries", len(a.gallery)))
	return len(a.gallery), nil
}

// FocusFavorite aims the camera at gallery entry i and resets the view.
func (a *App) FocusFavorite(i int) error {
	if i < 0 || i >= len(a.gallery) {
		return fmt.Errorf("no gallery entry %d", i)
	}
	p := a.gallery[i].Position
	a.camera.SetTarget(p.X, p.Y, p.Z)
	a.camera.Reset()
	return nil
}

// ClearFavorites removes the stored favorites and recycles the gallery.
func (a *App) ClearFavorites() error {
	if err := a.store.Clear(); err != nil {
		return err
	}
	a.clearGallery()
	a.log.Info("favorites cleared")
	return nil
}

// Stats snapshots every component's counters.
func (a *App) Stats() Stats {
	pool := a.service.Pool()
	return Stats{
		Kind:        a.kind,
		Caches:      a.service.CacheStats(),
		Performance: a.service.PerformanceStats(),
		Display:     a.throttler.Stats(),
		Attached:    a.graph.Len(),
		Gallery:     len(a.gallery),
		PoolCreated: pool.Created(),
		PoolReused:  pool.Reused(),
	}
}

func (a *App) clearGallery() {
	for _, node := range a.gallery {
		a.service.Recycle(node)
	}
	a.gallery = a.gallery[:0]
}

func validKey(kind geometry.ShapeKind, key string) bool {
	for _, r := range geometry.Ranges(kind) {
		if r.Key == key {
			return true
		}
	}
	return false
}

// logReadout feeds dimension readouts into the log. A UI collaborator
// would implement Readout with an on-screen label instead.
type logReadout struct {
	log *zap.Logger
}

func (r *logReadout) ShowDimensions(d display.Dimensions) {
	r.log.Info("dimensions", zap.String("text", d.String()))
}

package display

import (
	"fmt"
	"time"

	"github.com/Faultbox/lathe/internal/geometry"
	"github.com/Faultbox/lathe/internal/scene"
)

// DefaultWindow is the minimum spacing between applied display updates.
const DefaultWindow = 100 * time.Millisecond

// DefaultCacheCapacity bounds the derived display-data cache.
const DefaultCacheCapacity = 64

// Config sizes the throttler.
type Config struct {
	Window   time.Duration
	Capacity int
}

// DefaultConfig returns the default throttling parameters.
func DefaultConfig() Config {
	return Config{Window: DefaultWindow, Capacity: DefaultCacheCapacity}
}

// Stats is a snapshot of throttler activity. Pending counts the updates
// dropped since the last applied one.
type Stats struct {
	Applied     int
	Pending     int
	CacheSize   int
	CacheHits   int
	CacheMisses int
}

type displayEntry struct {
	dims     Dimensions
	lastUsed time.Time
}

// Throttler debounces display recalculation for the primary object.
// Updates landing inside the debounce window are dropped outright, not
// queued; the pending counter makes the drops observable. Applied
// updates resolve their dimension data through a bounded cache and then
// notify the readout and framer collaborators.
type Throttler struct {
	readout Readout
	framer  Framer

	window    time.Duration
	lastApply time.Time
	pending   int
	applied   int

	cache    map[string]*displayEntry
	capacity int
	hits     int
	misses   int

	now func() time.Time
}

// NewThrottler binds the readout and framer collaborators; either may
// be nil. Zero config fields fall back to defaults.
func NewThrottler(readout Readout, framer Framer, cfg Config) *Throttler {
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCacheCapacity
	}
	return &Throttler{
		readout:  readout,
		framer:   framer,
		window:   cfg.Window,
		cache:    make(map[string]*displayEntry, cfg.Capacity),
		capacity: cfg.Capacity,
		now:      time.Now,
	}
}

// UpdateDisplay refreshes the readout and camera framing for the
// primary object, unless an update was applied less than one window
// ago, in which case the call is dropped.
func (t *Throttler) UpdateDisplay(node *scene.Node, result *geometry.Result) {
	now := t.now()
	if !t.lastApply.IsZero() && now.Sub(t.lastApply) < t.window {
		t.pending++
		return
	}
	t.pending = 0

	key := displayKey(result)
	dims, ok := t.lookup(key, now)
	if !ok {
		dims = measure(node, result)
		t.insert(key, dims, now)
	}

	if t.readout != nil {
		t.readout.ShowDimensions(dims)
	}
	if t.framer != nil {
		t.framer.FrameView(dims.Height, dims.Diameter)
	}
	t.lastApply = now
	t.applied++
}

// Stats returns a snapshot of the throttler counters.
func (t *Throttler) Stats() Stats {
	return Stats{
		Applied:     t.applied,
		Pending:     t.pending,
		CacheSize:   len(t.cache),
		CacheHits:   t.hits,
		CacheMisses: t.misses,
	}
}

// displayKey folds a result into the display-cache key. Extents are
// keyed at readout precision, so results that display identically share
// an entry.
func displayKey(result *geometry.Result) string {
	return fmt.Sprintf("%s|%.2f|%.2f|%t", result.Kind, result.Height, result.Diameter, result.HasDiameter)
}

// measure selects the dimensions for a result: generated extents when
// the family provides a diameter, otherwise the node's bounding box
// with height taken along the revolution axis z.
func measure(node *scene.Node, result *geometry.Result) Dimensions {
	dims := Dimensions{Kind: result.Kind, Height: result.Height}
	if result.HasDiameter {
		dims.Diameter = result.Diameter
		dims.HasDiameter = true
		return dims
	}
	if b, ok := node.Bounds(); ok {
		dims.Width = b.SizeX()
		dims.Height = b.SizeZ()
		dims.Depth = b.SizeY()
	}
	return dims
}

func (t *Throttler) lookup(key string, now time.Time) (Dimensions, bool) {
	e, ok := t.cache[key]
	if !ok {
		t.misses++
		return Dimensions{}, false
	}
	t.hits++
	e.lastUsed = now
	return e.dims, true
}

func (t *Throttler) insert(key string, dims Dimensions, now time.Time) {
	if len(t.cache) >= t.capacity {
		var oldestKey string
		var oldest time.Time
		first := true
		for k, e := range t.cache {
			if first || e.lastUsed.Before(oldest) {
				first = false
				oldestKey = k
				oldest = e.lastUsed
			}
		}
		if !first {
			delete(t.cache, oldestKey)
		}
	}
	t.cache[key] = &displayEntry{dims: dims, lastUsed: now}
}

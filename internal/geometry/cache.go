package geometry

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DefaultCacheCapacity bounds the distinct parameter sets kept per
// shape family.
const DefaultCacheCapacity = 128

// BuildFunc produces a Result for one parameter set. Builders are pure
// and do not validate their inputs.
type BuildFunc func(Params) *Result

// CacheStats is a point-in-time snapshot of the cache counters.
type CacheStats struct {
	Hits      int
	Misses    int
	Evictions int
	Size      int
}

// HitRate returns hits over total lookups, or 0 before any lookup.
func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

type cacheEntry struct {
	result     *Result
	lastAccess time.Time
	accesses   int
}

// Cache memoizes built geometry for one shape family. Parameters are
// rounded before keying, so near-identical slider positions share an
// entry. When full, the entry with the oldest last access is evicted;
// no recency order is kept beyond that timestamp. Not safe for
// concurrent use.
type Cache struct {
	kind     ShapeKind
	capacity int
	entries  map[string]*cacheEntry

	hits      int
	misses    int
	evictions int

	now func() time.Time
}

// NewCache creates a cache for one shape family. A non-positive
// capacity falls back to DefaultCacheCapacity.
func NewCache(kind ShapeKind, capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &Cache{
		kind:     kind,
		capacity: capacity,
		entries:  make(map[string]*cacheEntry, capacity),
		now:      time.Now,
	}
}

// CacheKey normalizes parameters into a deterministic lookup key.
// The segment count keys as an integer, widths and angles to two
// decimals, depths and wall thickness to three. Fields are joined in
// sorted name order, so the key is independent of construction order.
func CacheKey(kind ShapeKind, p Params) string {
	fields := map[string]string{
		KeySegmentCount:  strconv.Itoa(p.SegmentCount),
		KeyWidth:         fmt.Sprintf("%.2f", p.Width),
		KeyTwistAngle:    fmt.Sprintf("%.2f", p.TwistAngle),
		KeyGrooveDepth:   fmt.Sprintf("%.3f", p.GrooveDepth),
		KeyWaveFrequency: fmt.Sprintf("%.2f", p.WaveFrequency),
		KeyWaveDepth:     fmt.Sprintf("%.3f", p.WaveDepth),
	}
	if kind == KindHollow {
		fields[KeyWallThickness] = fmt.Sprintf("%.3f", p.WallThickness)
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for i, name := range names {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteString(fields[name])
	}
	return sb.String()
}

// GetOrBuild returns the cached result for an equivalent parameter set,
// building and inserting on a miss. The boolean reports a hit. The
// returned Result is shared across callers and must be treated as
// read-only.
func (c *Cache) GetOrBuild(p Params, build BuildFunc) (*Result, bool) {
	key := CacheKey(c.kind, p)
	if e, ok := c.entries[key]; ok {
		c.hits++
		e.lastAccess = c.now()
		e.accesses++
		return e.result, true
	}

	c.misses++
	result := build(p)
	if len(c.entries) >= c.capacity {
		c.evictOldest()
	}
	c.entries[key] = &cacheEntry{result: result, lastAccess: c.now(), accesses: 1}
	return result, false
}

// evictOldest removes the entry with the oldest last access. Ties fall
// to map iteration order.
func (c *Cache) evictOldest() {
	var oldestKey string
	var oldest time.Time
	first := true
	for key, e := range c.entries {
		if first || e.lastAccess.Before(oldest) {
			first = false
			oldestKey = key
			oldest = e.lastAccess
		}
	}
	if !first {
		delete(c.entries, oldestKey)
		c.evictions++
	}
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Size:      len(c.entries),
	}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int { return len(c.entries) }

package app

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Faultbox/lathe/internal/favorites"
	"github.com/Faultbox/lathe/internal/geometry"
	"github.com/Faultbox/lathe/internal/scene"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestApp(t *testing.T) (*App, *fakeClock, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "favorites.json")
	a := New(Config{FavoritesPath: path}, nil)
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	a.now = clock.Now
	return a, clock, path
}

func TestSelectKindBuildsPrimary(t *testing.T) {
	a, _, _ := newTestApp(t)

	if err := a.SelectKind(geometry.KindHollow); err != nil {
		t.Fatalf("SelectKind failed: %v", err)
	}

	stats := a.Stats()
	if stats.Kind != geometry.KindHollow {
		t.Errorf("expected kind hollow, got %s", stats.Kind)
	}
	if stats.Attached != 1 {
		t.Errorf("expected 1 attached object, got %d", stats.Attached)
	}
	if stats.Performance.Count != 1 {
		t.Errorf("expected 1 creation, got %d", stats.Performance.Count)
	}
	if a.Params() != geometry.DefaultParams(geometry.KindHollow) {
		t.Errorf("expected hollow defaults, got %+v", a.Params())
	}

	// Re-selecting the current kind is a no-op
	if err := a.SelectKind(geometry.KindHollow); err != nil {
		t.Fatalf("re-select failed: %v", err)
	}
	if got := a.Stats().Performance.Count; got != 1 {
		t.Errorf("expected no rebuild on re-select, got %d creations", got)
	}

	// Switching kinds recycles the old primary and builds a new one
	if err := a.SelectKind(geometry.KindSolid); err != nil {
		t.Fatalf("switch to solid failed: %v", err)
	}
	stats = a.Stats()
	if stats.Attached != 1 {
		t.Errorf("expected 1 attached after switch, got %d", stats.Attached)
	}
	if stats.Performance.Count != 2 {
		t.Errorf("expected 2 creations after switch, got %d", stats.Performance.Count)
	}
	if a.Params() != geometry.DefaultParams(geometry.KindSolid) {
		t.Errorf("expected solid defaults after switch, got %+v", a.Params())
	}
}

func TestSelectKindUnknown(t *testing.T) {
	a, _, _ := newTestApp(t)

	err := a.SelectKind(geometry.ShapeKind("pyramid"))
	if !errors.Is(err, scene.ErrUnsupportedShapeKind) {
		t.Errorf("expected ErrUnsupportedShapeKind, got %v", err)
	}
}

func TestSetParameterBatching(t *testing.T) {
	a, clock, _ := newTestApp(t)
	if err := a.SelectKind(geometry.KindHollow); err != nil {
		t.Fatalf("SelectKind failed: %v", err)
	}

	// The first edit applies immediately
	if err := a.SetParameter(geometry.KeyTwistAngle, 30); err != nil {
		t.Fatalf("SetParameter failed: %v", err)
	}
	if got := a.Params().TwistAngle; got != 30 {
		t.Errorf("expected twist 30 applied, got %v", got)
	}
	if got := a.Stats().Performance.Count; got != 2 {
		t.Errorf("expected 2 creations, got %d", got)
	}

	// Edits inside the window accumulate without rebuilding
	clock.Advance(10 * time.Millisecond)
	if err := a.SetParameter(geometry.KeyGrooveDepth, 2); err != nil {
		t.Fatalf("SetParameter failed: %v", err)
	}
	clock.Advance(10 * time.Millisecond)
	if err := a.SetParameter(geometry.KeyWaveDepth, 3); err != nil {
		t.Fatalf("SetParameter failed: %v", err)
	}
	if got := a.Params().GrooveDepth; got != 1 {
		t.Errorf("expected groove depth still at default, got %v", got)
	}
	if got := a.Stats().Performance.Count; got != 2 {
		t.Errorf("expected no rebuild inside window, got %d creations", got)
	}

	// The next edit past the window applies the whole batch in one rebuild
	clock.Advance(200 * time.Millisecond)
	if err := a.SetParameter(geometry.KeyWidth, 2.8); err != nil {
		t.Fatalf("SetParameter failed: %v", err)
	}
	p := a.Params()
	if p.GrooveDepth != 2 || p.WaveDepth != 3 || p.Width != 2.8 {
		t.Errorf("expected batch applied, got %+v", p)
	}
	if got := a.Stats().Performance.Count; got != 3 {
		t.Errorf("expected 3 creations after batch apply, got %d", got)
	}
}

func TestFlushDrainsTrailingBatch(t *testing.T) {
	a, clock, _ := newTestApp(t)
	if err := a.SelectKind(geometry.KindSolid); err != nil {
		t.Fatalf("SelectKind failed: %v", err)
	}

	if err := a.SetParameter(geometry.KeyTwistAngle, 15); err != nil {
		t.Fatalf("SetParameter failed: %v", err)
	}
	clock.Advance(10 * time.Millisecond)
	if err := a.SetParameter(geometry.KeyGrooveDepth, 4); err != nil {
		t.Fatalf("SetParameter failed: %v", err)
	}

	// The trailing edit is still pending
	if got := a.Params().GrooveDepth; got != 1 {
		t.Errorf("expected groove depth still pending, got %v", got)
	}

	if err := a.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if got := a.Params().GrooveDepth; got != 4 {
		t.Errorf("expected groove depth 4 after flush, got %v", got)
	}
	count := a.Stats().Performance.Count

	// Flushing with nothing pending does not rebuild
	if err := a.Flush(); err != nil {
		t.Fatalf("empty Flush failed: %v", err)
	}
	if got := a.Stats().Performance.Count; got != count {
		t.Errorf("expected no rebuild on empty flush, got %d creations", got)
	}
}

func TestSetParameterUnknownKey(t *testing.T) {
	a, _, _ := newTestApp(t)
	if err := a.SelectKind(geometry.KindSolid); err != nil {
		t.Fatalf("SelectKind failed: %v", err)
	}

	// Wall thickness only exists for the hollow family
	err := a.SetParameter(geometry.KeyWallThickness, 0.3)
	if !errors.Is(err, ErrUnknownParameter) {
		t.Errorf("expected ErrUnknownParameter for solid wall thickness, got %v", err)
	}

	err = a.SetParameter("bogus", 1)
	if !errors.Is(err, ErrUnknownParameter) {
		t.Errorf("expected ErrUnknownParameter, got %v", err)
	}
}

func TestSaveAndShowFavorites(t *testing.T) {
	a, clock, _ := newTestApp(t)
	if err := a.SelectKind(geometry.KindHollow); err != nil {
		t.Fatalf("SelectKind failed: %v", err)
	}
	if err := a.SetParameter(geometry.KeyTwistAngle, 33); err != nil {
		t.Fatalf("SetParameter failed: %v", err)
	}

	total, err := a.SaveFavorite()
	if err != nil {
		t.Fatalf("SaveFavorite failed: %v", err)
	}
	if total != 1 {
		t.Errorf("expected 1 favorite, got %d", total)
	}

	clock.Advance(time.Second)
	if err := a.SelectKind(geometry.KindSolid); err != nil {
		t.Fatalf("SelectKind failed: %v", err)
	}
	if total, err = a.SaveFavorite(); err != nil {
		t.Fatalf("SaveFavorite failed: %v", err)
	}
	if total != 2 {
		t.Errorf("expected 2 favorites, got %d", total)
	}

	shown, err := a.ShowFavorites()
	if err != nil {
		t.Fatalf("ShowFavorites failed: %v", err)
	}
	if shown != 2 {
		t.Errorf("expected 2 gallery entries, got %d", shown)
	}

	stats := a.Stats()
	if stats.Gallery != 2 {
		t.Errorf("expected gallery size 2, got %d", stats.Gallery)
	}
	if stats.Attached != 3 {
		t.Errorf("expected primary plus 2 gallery attachments, got %d", stats.Attached)
	}

	// Favorites round-trip lands on the geometry already cached by the
	// earlier primary builds, so the gallery hits both family caches.
	if hits := stats.Caches[geometry.KindHollow].Hits; hits < 1 {
		t.Errorf("expected hollow cache hit from gallery, got %d", hits)
	}
	if hits := stats.Caches[geometry.KindSolid].Hits; hits < 1 {
		t.Errorf("expected solid cache hit from gallery, got %d", hits)
	}

	// Showing again recycles the old row before building the new one
	if _, err := a.ShowFavorites(); err != nil {
		t.Fatalf("second ShowFavorites failed: %v", err)
	}
	stats = a.Stats()
	if stats.Gallery != 2 || stats.Attached != 3 {
		t.Errorf("expected stable gallery after reshow, got gallery %d attached %d",
			stats.Gallery, stats.Attached)
	}
	if stats.PoolReused == 0 {
		t.Error("expected node reuse when regenerating the gallery")
	}
}

func TestGalleryLayout(t *testing.T) {
	a, _, _ := newTestApp(t)
	if err := a.SelectKind(geometry.KindSolid); err != nil {
		t.Fatalf("SelectKind failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := a.SaveFavorite(); err != nil {
			t.Fatalf("SaveFavorite failed: %v", err)
		}
	}
	if _, err := a.ShowFavorites(); err != nil {
		t.Fatalf("ShowFavorites failed: %v", err)
	}

	// Three entries center the row: x = -4, 0, 4 on the gallery row
	wantX := []float32{-4, 0, 4}
	for i, want := range wantX {
		if err := a.FocusFavorite(i); err != nil {
			t.Fatalf("FocusFavorite(%d) failed: %v", i, err)
		}
		target := a.Camera().Target
		if target.X != want || target.Y != galleryRow || target.Z != 0 {
			t.Errorf("entry %d: expected target (%v, %v, 0), got %+v", i, want, galleryRow, target)
		}
	}

	// Focusing resets the view distance
	a.Camera().Distance = 70
	if err := a.FocusFavorite(1); err != nil {
		t.Fatalf("FocusFavorite failed: %v", err)
	}
	if got := a.Camera().Distance; got != 15 {
		t.Errorf("expected reset distance 15, got %v", got)
	}

	if err := a.FocusFavorite(3); err == nil {
		t.Error("expected error for out-of-range gallery index")
	}
	if err := a.FocusFavorite(-1); err == nil {
		t.Error("expected error for negative gallery index")
	}
}

func TestClearFavorites(t *testing.T) {
	a, _, path := newTestApp(t)
	if err := a.SelectKind(geometry.KindHollow); err != nil {
		t.Fatalf("SelectKind failed: %v", err)
	}
	if _, err := a.SaveFavorite(); err != nil {
		t.Fatalf("SaveFavorite failed: %v", err)
	}
	if _, err := a.ShowFavorites(); err != nil {
		t.Fatalf("ShowFavorites failed: %v", err)
	}

	if err := a.ClearFavorites(); err != nil {
		t.Fatalf("ClearFavorites failed: %v", err)
	}

	stats := a.Stats()
	if stats.Gallery != 0 {
		t.Errorf("expected empty gallery, got %d", stats.Gallery)
	}
	if stats.Attached != 1 {
		t.Errorf("expected only the primary attached, got %d", stats.Attached)
	}

	records, err := favorites.NewStore(path).Load()
	if err != nil {
		t.Fatalf("Load after clear failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no stored favorites, got %d", len(records))
	}

	shown, err := a.ShowFavorites()
	if err != nil {
		t.Fatalf("ShowFavorites after clear failed: %v", err)
	}
	if shown != 0 {
		t.Errorf("expected empty gallery after clear, got %d", shown)
	}
}

func TestShowFavoritesSkipsBadRecords(t *testing.T) {
	a, clock, path := newTestApp(t)

	store := favorites.NewStore(path)
	good := favorites.NewRecord("hollow",
		geometry.DefaultParams(geometry.KindHollow).Map(geometry.KindHollow), clock.Now())
	unknownKind := favorites.NewRecord("pyramid",
		map[string]float64{geometry.KeyWidth: 1}, clock.Now())
	missingParams := favorites.NewRecord("solid",
		map[string]float64{geometry.KeyWidth: 1}, clock.Now())
	for _, record := range []favorites.Record{good, unknownKind, missingParams} {
		if _, err := store.Append(record); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	if err := a.SelectKind(geometry.KindSolid); err != nil {
		t.Fatalf("SelectKind failed: %v", err)
	}
	shown, err := a.ShowFavorites()
	if err != nil {
		t.Fatalf("ShowFavorites failed: %v", err)
	}
	if shown != 1 {
		t.Errorf("expected 1 valid gallery entry, got %d", shown)
	}
}

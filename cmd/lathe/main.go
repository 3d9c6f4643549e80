// lathe is a CLI for generating and inspecting parametric lathed objects.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Faultbox/lathe/internal/app"
	"github.com/Faultbox/lathe/internal/config"
	"github.com/Faultbox/lathe/internal/favorites"
	"github.com/Faultbox/lathe/internal/geometry"
	"github.com/Faultbox/lathe/internal/logger"
	"github.com/Faultbox/lathe/internal/scene"
	"github.com/Faultbox/lathe/pkg/formats"
)

func main() {
	// Parse global flags first; the remainder selects the command
	config.ParseFlags()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	logger.Sugar.Debugf("Config: %+v", cfg)

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "info":
		cmdInfo()
	case "generate", "gen":
		cmdGenerate(cmdArgs)
	case "favorites", "fav":
		cmdFavorites(cfg, cmdArgs)
	case "bench":
		cmdBench(cfg, cmdArgs)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`lathe - parametric lathed-object generator

Usage:
  lathe [global options] <command> [options]

Commands:
  info                          List shape families, parameter ranges, defaults
  generate [options]            Build one object, report it, optionally export
  favorites <list|add|clear>    Manage saved parameter sets
  bench [options]               Drive a simulated editing session

Global options:
  -config <file>     Path to config file
  -debug             Enable debug logging
  -favorites <file>  Path to favorites file
  -log-file <file>   Write logs to this file as well as the console

Examples:
  lathe info
  lathe generate -kind hollow -twist 30 -o vase.stl
  lathe generate -kind solid -check
  lathe favorites add -kind hollow -width 2.8
  lathe bench -kind hollow -steps 40 -repeats 3`)
}

func cmdInfo() {
	for _, kind := range geometry.Kinds() {
		fmt.Printf("%s\n", kind)
		for _, r := range geometry.Ranges(kind) {
			fmt.Printf("  %-15s %6.2f .. %-6.2f (default %.2f)\n", r.Key, r.Min, r.Max, r.Default)
		}
		fmt.Println()
	}
}

// paramFlags registers the shared shape parameter flags on a command's
// flag set. Only flags the user actually set override the family
// defaults.
type paramFlags struct {
	fs        *flag.FlagSet
	segments  *int
	width     *float64
	twist     *float64
	groove    *float64
	waveFreq  *float64
	waveDepth *float64
	wall      *float64
}

func newParamFlags(fs *flag.FlagSet) *paramFlags {
	return &paramFlags{
		fs:        fs,
		segments:  fs.Int("segments", 0, "Groove segment count"),
		width:     fs.Float64("width", 0, "Base width"),
		twist:     fs.Float64("twist", 0, "Twist angle in degrees"),
		groove:    fs.Float64("groove", 0, "Groove depth"),
		waveFreq:  fs.Float64("wave-freq", 0, "Vertical wave frequency"),
		waveDepth: fs.Float64("wave-depth", 0, "Vertical wave depth"),
		wall:      fs.Float64("wall", 0, "Wall thickness (hollow only)"),
	}
}

func (p *paramFlags) params(kind geometry.ShapeKind) geometry.Params {
	m := geometry.DefaultParams(kind).Map(kind)
	p.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "segments":
			m[geometry.KeySegmentCount] = float64(*p.segments)
		case "width":
			m[geometry.KeyWidth] = *p.width
		case "twist":
			m[geometry.KeyTwistAngle] = *p.twist
		case "groove":
			m[geometry.KeyGrooveDepth] = *p.groove
		case "wave-freq":
			m[geometry.KeyWaveFrequency] = *p.waveFreq
		case "wave-depth":
			m[geometry.KeyWaveDepth] = *p.waveDepth
		case "wall":
			if kind == geometry.KindHollow {
				m[geometry.KeyWallThickness] = *p.wall
			} else {
				fmt.Fprintln(os.Stderr, "Note: -wall only applies to the hollow family, ignoring")
			}
		}
	})
	params, err := geometry.ParamsFromMap(kind, m)
	if err != nil {
		// The map always carries every range key
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return params
}

func cmdGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	kindName := fs.String("kind", "hollow", "Shape kind (solid or hollow)")
	pf := newParamFlags(fs)
	out := fs.String("o", "", "Write the mesh to a file (.obj or .stl)")
	check := fs.Bool("check", false, "Verify the mesh is closed and positively oriented")
	fs.Parse(args)

	kind, err := geometry.ParseShapeKind(*kindName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	params, adjusted := pf.params(kind).Clamp(kind)
	if len(adjusted) > 0 {
		fmt.Fprintf(os.Stderr, "Clamped to range: %s\n", strings.Join(adjusted, ", "))
	}

	family, _ := geometry.FamilyFor(kind)
	start := time.Now()
	result := family.Build(params)
	elapsed := time.Since(start)

	fmt.Printf("Kind:      %s\n", result.Kind)
	fmt.Printf("Vertices:  %d\n", result.VertexCount)
	fmt.Printf("Triangles: %d\n", result.TriangleCount)
	fmt.Printf("Height:    %.2f\n", result.Height)
	if result.HasDiameter {
		fmt.Printf("Diameter:  %.2f\n", result.Diameter)
	}
	fmt.Printf("Built in:  %s\n", elapsed.Round(time.Microsecond))

	if *check {
		if err := geometry.CheckClosed(result.Mesh); err != nil {
			fmt.Fprintf(os.Stderr, "Check failed: %v\n", err)
			os.Exit(1)
		}
		volume := geometry.SignedVolume(result.Mesh)
		if volume <= 0 {
			fmt.Fprintf(os.Stderr, "Check failed: non-positive signed volume %.3f\n", volume)
			os.Exit(1)
		}
		fmt.Printf("Check:     closed, volume %.3f\n", volume)
	}

	if *out != "" {
		if err := writeMesh(*out, result); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *out)
	}
}

func writeMesh(path string, result *geometry.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return formats.WriteOBJ(f, result.Mesh)
	case ".stl":
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		return formats.WriteSTL(f, result.Mesh, name)
	}
	return fmt.Errorf("unsupported output format %q (use .obj or .stl)", filepath.Ext(path))
}

func cmdFavorites(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: lathe favorites <list|add|clear> [options]")
		os.Exit(1)
	}

	store := favorites.NewStore(cfg.Favorites.Path)

	switch args[0] {
	case "list", "ls":
		records, err := store.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if len(records) == 0 {
			fmt.Println("No favorites saved")
			return
		}
		for i, record := range records {
			fmt.Printf("%3d  %-7s %s\n", i, record.ObjectType, record.Timestamp)
			keys := make([]string, 0, len(record.Parameters))
			for key := range record.Parameters {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				fmt.Printf("       %-15s %.2f\n", key, record.Parameters[key])
			}
		}
	case "add":
		fs := flag.NewFlagSet("favorites add", flag.ExitOnError)
		kindName := fs.String("kind", "hollow", "Shape kind (solid or hollow)")
		pf := newParamFlags(fs)
		fs.Parse(args[1:])

		kind, err := geometry.ParseShapeKind(*kindName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		params, adjusted := pf.params(kind).Clamp(kind)
		if len(adjusted) > 0 {
			fmt.Fprintf(os.Stderr, "Clamped to range: %s\n", strings.Join(adjusted, ", "))
		}

		total, err := store.Append(favorites.NewRecord(kind.String(), params.Map(kind), time.Now()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved favorite (%s), %d total\n", kind, total)
	case "clear":
		if err := store.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Favorites cleared")
	default:
		fmt.Fprintf(os.Stderr, "Unknown favorites action: %s\n", args[0])
		os.Exit(1)
	}
}

func cmdBench(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	kindName := fs.String("kind", "hollow", "Shape kind to drive")
	events := fs.Int("events", 300, "Slider events in the drag phase")
	interval := fs.Duration("interval", 4*time.Millisecond, "Delay between slider events")
	steps := fs.Int("steps", 40, "Distinct parameter steps in the cache phase")
	repeats := fs.Int("repeats", 3, "Sweep repetitions in the cache phase")
	fs.Parse(args)

	kind, err := geometry.ParseShapeKind(*kindName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Drag phase: rapid slider events through the application shell, so
	// batching and the display debounce absorb most of them.
	a := app.New(app.Config{
		GeometryCacheCapacity: cfg.Cache.GeometryCapacity,
		DisplayCacheCapacity:  cfg.Cache.DisplayCapacity,
		PoolCapacity:          cfg.Scene.PoolCapacity,
		DebounceWindow:        cfg.Display.DebounceWindow,
		FavoritesPath:         cfg.Favorites.Path,
	}, logger.Log)
	if err := a.SelectKind(kind); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for i := 0; i < *events; i++ {
		value := 45 * float64(i) / float64(*events)
		if err := a.SetParameter(geometry.KeyTwistAngle, value); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		time.Sleep(*interval)
	}
	if err := a.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	stats := a.Stats()
	fmt.Printf("Drag phase: %d events over %s\n", *events, (time.Duration(*events) * *interval).Round(time.Millisecond))
	fmt.Printf("  rebuilds:  %d\n", stats.Performance.Count-1)
	fmt.Printf("  display:   %d applied, %d pending\n", stats.Display.Applied, stats.Display.Pending)

	// Cache phase: a deterministic parameter grid straight through the
	// object service, repeated so the later sweeps hit the cache.
	svc := scene.NewService(scene.NewMemoryGraph(), nil, scene.Config{
		CacheCapacity: cfg.Cache.GeometryCapacity,
		PoolCapacity:  cfg.Scene.PoolCapacity,
	})
	params := geometry.DefaultParams(kind)
	for rep := 0; rep < *repeats; rep++ {
		for i := 0; i < *steps; i++ {
			p := params
			p.TwistAngle = 45 * float64(i) / float64(*steps)
			node, err := svc.CreateObject(scene.Request{Kind: kind, Params: p})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			svc.Recycle(node)
		}
	}

	cs := svc.CacheStats()[kind]
	perf := svc.PerformanceStats()
	pool := svc.Pool()
	fmt.Printf("Cache phase: %d steps x %d sweeps\n", *steps, *repeats)
	fmt.Printf("  cache:     %d hits, %d misses, %d evictions, size %d (hit rate %.0f%%)\n",
		cs.Hits, cs.Misses, cs.Evictions, cs.Size, cs.HitRate()*100)
	fmt.Printf("  latency:   min %s avg %s max %s over %d builds\n",
		perf.Min.Round(time.Microsecond), perf.Avg.Round(time.Microsecond),
		perf.Max.Round(time.Microsecond), perf.Count)
	fmt.Printf("  pool:      %d created, %d reused\n", pool.Created(), pool.Reused())
}

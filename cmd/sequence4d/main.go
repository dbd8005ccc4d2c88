// Command sequence4d computes 4D construction-sequence animation data from
// a schedule fixture: per-product frame spans, compiled keyframe
// operations, and single-date snapshots.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fourdstudio/sequence4d/internal/events"
	"github.com/fourdstudio/sequence4d/internal/fileio"
	"github.com/fourdstudio/sequence4d/internal/frames"
	"github.com/fourdstudio/sequence4d/internal/live"
	"github.com/fourdstudio/sequence4d/internal/model"
	"github.com/fourdstudio/sequence4d/internal/plan"
	"github.com/fourdstudio/sequence4d/internal/profile"
	"github.com/fourdstudio/sequence4d/internal/schedule"
)

const version = "0.3.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "build":
		runBuild(os.Args[2:])
	case "animate":
		runAnimate(os.Args[2:])
	case "snapshot":
		runSnapshot(os.Args[2:])
	case "range":
		runRange(os.Args[2:])
	case "watch":
		runWatch(os.Args[2:])
	case "version":
		fmt.Printf("sequence4d %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`sequence4d - 4D construction sequence frame computation

Usage:
  sequence4d build    -schedule <file> [options]   compute per-product frame records
  sequence4d animate  -schedule <file> [options]   compile keyframe operations
  sequence4d snapshot -schedule <file> -date <d>   classify products at a date
  sequence4d range    -schedule <file>             print the schedule date range
  sequence4d watch    -schedule <file> [options]   recompile on file changes
  sequence4d version                               print version

Common options:
  -schedule <file>      schedule fixture (YAML)
  -profiles <file>      profile set blob (JSON)
  -scene <file>         product/object mapping (YAML)
  -group <name>         active appearance group (default DEFAULT)
  -date-source <src>    SCHEDULE | ACTUAL | EARLY | LATE
  -start, -finish <d>   visualization window dates (default: schedule range)
  -start-frame <n>      first animation frame (default 1)
  -total-frames <n>     animation length in frames (default 250)
  -log-level <level>    error | warn | info | debug`)
}

// buildFlags holds the options shared by build, animate, and watch.
type buildFlags struct {
	schedulePath string
	profilesPath string
	scenePath    string
	group        string
	dateSource   string
	start        string
	finish       string
	startFrame   int
	totalFrames  int
	logLevel     string
}

func registerBuildFlags(fs *flag.FlagSet, f *buildFlags) {
	fs.StringVar(&f.schedulePath, "schedule", "", "schedule fixture (YAML)")
	fs.StringVar(&f.profilesPath, "profiles", "", "profile set blob (JSON)")
	fs.StringVar(&f.scenePath, "scene", "", "product/object mapping (YAML)")
	fs.StringVar(&f.group, "group", "", "active appearance group")
	fs.StringVar(&f.dateSource, "date-source", "", "date source override")
	fs.StringVar(&f.start, "start", "", "visualization start date")
	fs.StringVar(&f.finish, "finish", "", "visualization finish date")
	fs.IntVar(&f.startFrame, "start-frame", 1, "first animation frame")
	fs.IntVar(&f.totalFrames, "total-frames", 0, "animation length in frames")
	fs.StringVar(&f.logLevel, "log-level", "info", "log verbosity")
}

// engine bundles everything a build needs, assembled once per invocation.
type engine struct {
	builder  *frames.Builder
	compiler *plan.Compiler
	stack    profile.GroupStack
	window   model.VizWindow
	scene    *sceneMapping
}

func newEngine(f *buildFlags) (*engine, error) {
	if f.schedulePath == "" {
		return nil, fmt.Errorf("-schedule is required")
	}
	repo, source, err := schedule.Load(f.schedulePath)
	if err != nil {
		return nil, err
	}
	if f.dateSource != "" {
		source, err = model.ParseDateSource(f.dateSource)
		if err != nil {
			return nil, err
		}
	}

	var blob profile.Blob
	if f.profilesPath != "" {
		blob = &fileio.FileBlob{Path: f.profilesPath}
	}
	store := profile.NewStore(blob)
	if _, err := store.EnsureDefaultGroup(); err != nil {
		return nil, err
	}

	settings := schedule.WindowSettings{StartFrame: f.startFrame}
	if f.start != "" {
		if settings.Start, err = schedule.ParseDate(f.start); err != nil {
			return nil, err
		}
	}
	if f.finish != "" {
		if settings.Finish, err = schedule.ParseDate(f.finish); err != nil {
			return nil, err
		}
	}
	window, err := schedule.ComputeWindow(repo, source, settings)
	if err != nil {
		return nil, err
	}
	if f.totalFrames > 0 {
		window.TotalFrames = f.totalFrames
	}

	var stack profile.GroupStack
	if f.group != "" {
		stack = profile.GroupStack{{Group: f.group, Enabled: true}}
	}

	logger := log.New(os.Stderr, "sequence4d ", log.LstdFlags)
	cache := frames.NewCache(repo)
	builder := frames.NewBuilder(profile.NewResolver(store), cache, source)
	builder.SetLogger(logger, frames.ParseLogLevel(f.logLevel))

	scene, err := loadScene(f.scenePath)
	if err != nil {
		return nil, err
	}

	return &engine{
		builder:  builder,
		compiler: plan.NewCompiler(),
		stack:    stack,
		window:   window,
		scene:    scene,
	}, nil
}

func runBuild(args []string) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	var f buildFlags
	registerBuildFlags(fs, &f)
	fs.Parse(args)

	eng, err := newEngine(&f)
	if err != nil {
		fatal(err)
	}
	records, err := eng.builder.Build(eng.window, eng.stack, nil)
	if err != nil {
		fatal(err)
	}
	printJSON(map[string]any{
		"window":         windowSummary(eng.window),
		"product_frames": records,
	})
}

func runAnimate(args []string) {
	fs := flag.NewFlagSet("animate", flag.ExitOnError)
	var f buildFlags
	registerBuildFlags(fs, &f)
	fs.Parse(args)

	eng, err := newEngine(&f)
	if err != nil {
		fatal(err)
	}
	ops, err := compileOnce(eng)
	if err != nil {
		fatal(err)
	}
	printJSON(map[string]any{
		"window":     windowSummary(eng.window),
		"operations": ops,
	})
}

func compileOnce(eng *engine) ([]model.Operation, error) {
	records, err := eng.builder.Build(eng.window, eng.stack, nil)
	if err != nil {
		return nil, err
	}
	productObjects, originalColors := eng.scene.mappings(records)
	return eng.compiler.Compile(records, productObjects, originalColors), nil
}

func runSnapshot(args []string) {
	fs := flag.NewFlagSet("snapshot", flag.ExitOnError)
	var f buildFlags
	var date string
	registerBuildFlags(fs, &f)
	fs.StringVar(&date, "date", "", "snapshot date")
	fs.Parse(args)

	if date == "" {
		fatal(fmt.Errorf("-date is required"))
	}
	snapshotDate, err := schedule.ParseDate(date)
	if err != nil {
		fatal(err)
	}
	eng, err := newEngine(&f)
	if err != nil {
		fatal(err)
	}

	var vizStart, vizFinish time.Time
	if f.start != "" {
		vizStart = eng.window.Start
	}
	if f.finish != "" {
		vizFinish = eng.window.Finish
	}
	states := eng.builder.ConstructionStates(snapshotDate, vizStart, vizFinish)
	printJSON(map[string]any{
		"date":   snapshotDate.Format("2006-01-02"),
		"states": states,
	})
}

func runRange(args []string) {
	fs := flag.NewFlagSet("range", flag.ExitOnError)
	var f buildFlags
	registerBuildFlags(fs, &f)
	fs.Parse(args)

	if f.schedulePath == "" {
		fatal(fmt.Errorf("-schedule is required"))
	}
	repo, source, err := schedule.Load(f.schedulePath)
	if err != nil {
		fatal(err)
	}
	if f.dateSource != "" {
		if source, err = model.ParseDateSource(f.dateSource); err != nil {
			fatal(err)
		}
	}
	start, finish, ok := schedule.GuessDateRange(repo, source)
	if !ok {
		fatal(fmt.Errorf("schedule has no derivable dates under source %s", source))
	}
	printJSON(map[string]any{
		"date_source": source,
		"start":       start.Format("2006-01-02"),
		"finish":      finish.Format("2006-01-02"),
	})
}

func runWatch(args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	var f buildFlags
	registerBuildFlags(fs, &f)
	fs.Parse(args)

	logger := log.New(os.Stderr, "sequence4d ", log.LstdFlags)
	bus := events.NewBus(64)
	defer bus.Close()
	bus.Subscribe(events.EventLiveReload, func(e events.Event) {
		logger.Printf("reloaded after change to %v", e.Data["file"])
	})

	rebuild := func(string) error {
		eng, err := newEngine(&f)
		if err != nil {
			return err
		}
		ops, err := compileOnce(eng)
		if err != nil {
			return err
		}
		printJSON(map[string]any{
			"window":     windowSummary(eng.window),
			"operations": ops,
		})
		return nil
	}

	if err := rebuild(""); err != nil {
		fatal(err)
	}

	watched := []string{f.schedulePath}
	if f.profilesPath != "" {
		watched = append(watched, f.profilesPath)
	}
	if f.scenePath != "" {
		watched = append(watched, f.scenePath)
	}
	watcher, err := live.New(watched, rebuild)
	if err != nil {
		fatal(err)
	}
	defer watcher.Close()
	watcher.SetEventBus(bus)
	watcher.SetLogger(logger)

	logger.Printf("watching %d files, ctrl-c to stop", len(watched))
	watcher.Run()
}

func windowSummary(w model.VizWindow) map[string]any {
	return map[string]any{
		"start":        w.Start.Format("2006-01-02"),
		"finish":       w.Finish.Format("2006-01-02"),
		"start_frame":  w.StartFrame,
		"total_frames": w.TotalFrames,
	}
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(out))
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

// sceneMapping maps products to scene object ids and records each object's
// pre-animation color. Without a scene file every product gets one
// synthetic object so compiled plans are still inspectable.
type sceneMapping struct {
	Products map[int64][]string        `yaml:"products"`
	Objects  map[string]sceneObjectDef `yaml:"objects"`
}

type sceneObjectDef struct {
	Color []float64 `yaml:"color"`
}

func loadScene(path string) (*sceneMapping, error) {
	if path == "" {
		return &sceneMapping{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene mapping: %w", err)
	}
	var scene sceneMapping
	if err := yaml.Unmarshal(raw, &scene); err != nil {
		return nil, fmt.Errorf("parse scene mapping: %w", err)
	}
	return &scene, nil
}

func (s *sceneMapping) mappings(records map[int64][]model.FrameRecord) (map[int64][]string, map[string]model.RGBA) {
	productObjects := make(map[int64][]string, len(records))
	originalColors := make(map[string]model.RGBA)

	for productID := range records {
		objects := s.Products[productID]
		if len(objects) == 0 {
			objects = []string{fmt.Sprintf("product_%d", productID)}
		}
		productObjects[productID] = objects
		for _, objectID := range objects {
			if def, ok := s.Objects[objectID]; ok && len(def.Color) >= 3 {
				color := model.RGBA{R: def.Color[0], G: def.Color[1], B: def.Color[2], A: 1}
				if len(def.Color) >= 4 {
					color.A = def.Color[3]
				}
				originalColors[objectID] = color
			}
		}
	}
	return productObjects, originalColors
}

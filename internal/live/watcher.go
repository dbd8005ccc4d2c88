// Package live rebuilds the animation plan when its inputs change on disk,
// the headless analog of the add-on's live color update handler.
package live

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/fourdstudio/sequence4d/internal/events"
)

// debounceWindow coalesces editor write bursts into one rebuild.
const debounceWindow = 200 * time.Millisecond

// Watcher watches the schedule fixture and profile-set files and invokes a
// rebuild callback when either changes.
type Watcher struct {
	watcher *fsnotify.Watcher
	files   map[string]bool
	rebuild func(changed string) error
	bus     *events.Bus
	logger  *log.Logger
	done    chan struct{}
}

// New creates a Watcher over the given files. rebuild is called after each
// debounced change with the path that triggered it.
func New(files []string, rebuild func(changed string) error) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		watcher: fsw,
		files:   make(map[string]bool, len(files)),
		rebuild: rebuild,
		done:    make(chan struct{}),
	}

	// Watch parent directories: editors replace files by rename, which
	// drops a watch set on the file itself.
	dirs := make(map[string]bool)
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("resolve %s: %w", file, err)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// SetEventBus wires live_reload event publishing.
func (w *Watcher) SetEventBus(bus *events.Bus) { w.bus = bus }

// SetLogger wires diagnostic logging.
func (w *Watcher) SetLogger(logger *log.Logger) { w.logger = logger }

func (w *Watcher) logf(format string, args ...any) {
	if w.logger != nil {
		w.logger.Printf(format, args...)
	}
}

// Run processes filesystem events until Close is called.
func (w *Watcher) Run() {
	var (
		timer   *time.Timer
		pending string
	)
	fire := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !w.files[abs] {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = abs
				if timer == nil {
					timer = time.AfterFunc(debounceWindow, func() {
						select {
						case fire <- struct{}{}:
						default:
						}
					})
				} else {
					timer.Reset(debounceWindow)
				}
			}

		case <-fire:
			timer = nil
			changed := pending
			w.logf("input changed: %s, rebuilding", changed)
			if err := w.rebuild(changed); err != nil {
				w.logf("rebuild failed: %v", err)
				continue
			}
			if w.bus != nil {
				w.bus.Publish(events.EventLiveReload, map[string]any{"file": changed})
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logf("watch error: %v", err)

		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

package live

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fourdstudio/sequence4d/internal/events"
)

func TestWatcher_RebuildOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schedule.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tasks: []\n"), 0o644))

	var rebuilds atomic.Int32
	var lastChanged atomic.Value
	watcher, err := New([]string{path}, func(changed string) error {
		lastChanged.Store(changed)
		rebuilds.Add(1)
		return nil
	})
	require.NoError(t, err)
	defer watcher.Close()
	go watcher.Run()

	require.NoError(t, os.WriteFile(path, []byte("tasks:\n  - id: 1\n"), 0o644))

	require.Eventually(t, func() bool { return rebuilds.Load() == 1 }, 3*time.Second, 20*time.Millisecond)
	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	assert.Equal(t, abs, lastChanged.Load())
}

func TestWatcher_DebouncesWriteBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	var rebuilds atomic.Int32
	watcher, err := New([]string{path}, func(string) error {
		rebuilds.Add(1)
		return nil
	})
	require.NoError(t, err)
	defer watcher.Close()
	go watcher.Run()

	// A burst of writes inside the debounce window collapses to one rebuild.
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return rebuilds.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)
	time.Sleep(2 * debounceWindow)
	assert.Equal(t, int32(1), rebuilds.Load())
}

func TestWatcher_IgnoresUnwatchedFiles(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "schedule.yaml")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(watched, []byte("tasks: []\n"), 0o644))

	var rebuilds atomic.Int32
	watcher, err := New([]string{watched}, func(string) error {
		rebuilds.Add(1)
		return nil
	})
	require.NoError(t, err)
	defer watcher.Close()
	go watcher.Run()

	require.NoError(t, os.WriteFile(other, []byte("scratch"), 0o644))

	time.Sleep(2 * debounceWindow)
	assert.Equal(t, int32(0), rebuilds.Load())
}

func TestWatcher_PublishesLiveReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schedule.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tasks: []\n"), 0o644))

	bus := events.NewBus(8)
	defer bus.Close()
	reloaded := make(chan events.Event, 1)
	bus.Subscribe(events.EventLiveReload, func(e events.Event) { reloaded <- e })

	watcher, err := New([]string{path}, func(string) error { return nil })
	require.NoError(t, err)
	defer watcher.Close()
	watcher.SetEventBus(bus)
	go watcher.Run()

	require.NoError(t, os.WriteFile(path, []byte("tasks:\n  - id: 1\n"), 0o644))

	select {
	case e := <-reloaded:
		abs, err := filepath.Abs(path)
		require.NoError(t, err)
		assert.Equal(t, abs, e.Data["file"])
	case <-time.After(3 * time.Second):
		t.Fatal("no live_reload event published")
	}
}

func TestWatcher_RebuildErrorSuppressesEvent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schedule.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tasks: []\n"), 0o644))

	bus := events.NewBus(8)
	defer bus.Close()
	reloaded := make(chan events.Event, 1)
	bus.Subscribe(events.EventLiveReload, func(e events.Event) { reloaded <- e })

	var calls atomic.Int32
	watcher, err := New([]string{path}, func(string) error {
		calls.Add(1)
		return assert.AnError
	})
	require.NoError(t, err)
	defer watcher.Close()
	watcher.SetEventBus(bus)
	go watcher.Run()

	require.NoError(t, os.WriteFile(path, []byte("tasks:\n  - id: 1\n"), 0o644))

	require.Eventually(t, func() bool { return calls.Load() == 1 }, 3*time.Second, 20*time.Millisecond)
	select {
	case <-reloaded:
		t.Fatal("live_reload published despite rebuild failure")
	case <-time.After(200 * time.Millisecond):
	}
}

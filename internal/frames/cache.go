// Package frames computes per-product animation frame spans from a work
// schedule and a visualization window.
package frames

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/fourdstudio/sequence4d/internal/model"
	"github.com/fourdstudio/sequence4d/internal/schedule"
)

// Cache is the precomputed lookup layer over a schedule repository: the
// flattened task list, per-task product associations, and memoized derived
// dates. It makes builds over thousands of tasks near-linear instead of
// repeated tree traversal.
//
// The cache must be invalidated by the caller whenever the schedule or the
// active date source changes; a stale read is a correctness bug.
type Cache struct {
	repo schedule.Repository

	mu      sync.RWMutex
	built   bool
	tasks   []*schedule.Task
	outputs map[int64][]int64
	inputs  map[int64][]int64
	dates   map[dateKey]dateEntry

	rebuild singleflight.Group
}

type dateKey struct {
	taskID int64
	kind   model.DateKind
	latest bool
}

type dateEntry struct {
	date time.Time
	ok   bool
}

// NewCache creates an empty cache over the repository. The first lookup
// triggers a build.
func NewCache(repo schedule.Repository) *Cache {
	return &Cache{repo: repo}
}

// Invalidate drops all precomputed state. The next lookup rebuilds.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.built = false
	c.tasks = nil
	c.outputs = nil
	c.inputs = nil
	c.dates = nil
}

// ensure builds the lookup tables once; concurrent callers coalesce onto a
// single rebuild.
func (c *Cache) ensure() {
	c.mu.RLock()
	built := c.built
	c.mu.RUnlock()
	if built {
		return
	}
	c.rebuild.Do("rebuild", func() (any, error) {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.built {
			return nil, nil
		}
		c.tasks = nil
		c.outputs = make(map[int64][]int64)
		c.inputs = make(map[int64][]int64)
		c.dates = make(map[dateKey]dateEntry)
		c.flatten(c.repo.RootTasks())
		c.built = true
		return nil, nil
	})
}

// flatten walks the tree depth-first, children before parents, matching the
// original traversal order. Order does not affect correctness since every
// task is processed independently.
func (c *Cache) flatten(tasks []*schedule.Task) {
	for _, t := range tasks {
		c.flatten(c.repo.NestedTasks(t))
		c.tasks = append(c.tasks, t)
		c.outputs[t.ID] = c.repo.TaskOutputs(t)
		c.inputs[t.ID] = c.repo.TaskInputs(t)
	}
}

// AllTasks returns every task in the schedule, flattened.
func (c *Cache) AllTasks() []*schedule.Task {
	c.ensure()
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tasks
}

// Outputs returns the cached output product ids for a task.
func (c *Cache) Outputs(t *schedule.Task) []int64 {
	c.ensure()
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.outputs[t.ID]
}

// Inputs returns the cached input product ids for a task.
func (c *Cache) Inputs(t *schedule.Task) []int64 {
	c.ensure()
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inputs[t.ID]
}

// DerivedDate memoizes Repository.DeriveDate per (task, kind, direction).
func (c *Cache) DerivedDate(t *schedule.Task, kind model.DateKind, latest bool) (time.Time, bool) {
	c.ensure()
	key := dateKey{taskID: t.ID, kind: kind, latest: latest}

	c.mu.RLock()
	entry, hit := c.dates[key]
	c.mu.RUnlock()
	if hit {
		return entry.date, entry.ok
	}

	date, ok := c.repo.DeriveDate(t, kind, latest)
	c.mu.Lock()
	if c.dates == nil {
		c.dates = make(map[dateKey]dateEntry)
	}
	c.dates[key] = dateEntry{date: date, ok: ok}
	c.mu.Unlock()
	return date, ok
}

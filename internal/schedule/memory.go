package schedule

import (
	"time"

	"github.com/fourdstudio/sequence4d/internal/model"
)

// MemoryRepository is an in-memory Repository over a parsed task tree.
type MemoryRepository struct {
	name  string
	roots []*Task
}

// NewMemoryRepository wraps a task tree in a Repository.
func NewMemoryRepository(name string, roots []*Task) *MemoryRepository {
	return &MemoryRepository{name: name, roots: roots}
}

// Name returns the schedule name.
func (r *MemoryRepository) Name() string { return r.name }

func (r *MemoryRepository) RootTasks() []*Task { return r.roots }

func (r *MemoryRepository) NestedTasks(t *Task) []*Task { return t.Children }

func (r *MemoryRepository) TaskOutputs(t *Task) []int64 { return t.Outputs }

func (r *MemoryRepository) TaskInputs(t *Task) []int64 { return t.Inputs }

// DeriveDate returns the task's own date of the requested kind, or derives
// one from its descendants: the earliest descendant date for start kinds,
// the latest for finish kinds.
func (r *MemoryRepository) DeriveDate(t *Task, kind model.DateKind, latest bool) (time.Time, bool) {
	if d, ok := t.Dates[kind]; ok {
		return d, true
	}
	var best time.Time
	found := false
	for _, child := range t.Children {
		d, ok := r.DeriveDate(child, kind, latest)
		if !ok {
			continue
		}
		if !found || (latest && d.After(best)) || (!latest && d.Before(best)) {
			best = d
			found = true
		}
	}
	return best, found
}

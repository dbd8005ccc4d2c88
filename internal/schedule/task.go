// Package schedule provides the work-schedule repository the frame engine
// reads from: a task tree with dates, product associations, and derived
// date lookup.
package schedule

import (
	"time"

	"github.com/fourdstudio/sequence4d/internal/model"
)

// Task is one scheduled activity. Dates are sparse: a task may carry any
// subset of the eight date kinds, and missing dates are derived from nested
// tasks on demand. Outputs are products the task builds, inputs products it
// consumes or demolishes.
type Task struct {
	ID             int64
	Name           string
	PredefinedType model.PredefinedType
	Dates          map[model.DateKind]time.Time
	Outputs        []int64
	Inputs         []int64
	Children       []*Task
}

// Date returns the task's own date of the given kind, without derivation.
func (t *Task) Date(kind model.DateKind) (time.Time, bool) {
	d, ok := t.Dates[kind]
	return d, ok
}

// Repository is the read interface the frame engine needs from a schedule
// store. Implementations must treat the task tree as immutable for the
// lifetime of a build.
type Repository interface {
	// RootTasks returns the schedule's top-level tasks.
	RootTasks() []*Task
	// NestedTasks returns a task's direct children.
	NestedTasks(t *Task) []*Task
	// TaskOutputs returns ids of products the task constructs.
	TaskOutputs(t *Task) []int64
	// TaskInputs returns ids of products the task consumes.
	TaskInputs(t *Task) []int64
	// DeriveDate resolves a task date of the given kind, falling back to
	// nested tasks (earliest descendant date when latest is false, latest
	// when true). ok is false when neither the task nor any descendant
	// carries the date.
	DeriveDate(t *Task, kind model.DateKind, latest bool) (time.Time, bool)
}

package model

import "time"

// Relationship says how a product is tied to a task: built by it (output)
// or consumed/demolished by it (input).
type Relationship string

const (
	RelationshipOutput Relationship = "output"
	RelationshipInput  Relationship = "input"
)

// FrameRecord is the per (product, task) unit of the build result: the
// task's lifecycle states mapped onto frame spans, plus the appearance
// profile resolved for the task. A product reused across several tasks
// accumulates one record per task; records are never merged.
type FrameRecord struct {
	TaskID         int64          `json:"task_id"`
	TaskName       string         `json:"task_name,omitempty"`
	PredefinedType PredefinedType `json:"type"`
	Relationship   Relationship   `json:"relationship"`

	StartDate  time.Time `json:"start_date"`
	FinishDate time.Time `json:"finish_date"`

	States States `json:"states"`

	// StartActivePriority marks a priority-mode record: only Active is
	// populated and it spans the entire visualization window.
	StartActivePriority bool `json:"consider_start_active,omitempty"`

	// Profile is the appearance resolved for the task at build time, so
	// the plan compiler is a pure function of its inputs.
	Profile *ColorType `json:"-"`
}

package frames

import (
	"sort"
	"time"

	"github.com/fourdstudio/sequence4d/internal/events"
	"github.com/fourdstudio/sequence4d/internal/model"
)

// ConstructionStates classifies every product at a single date. Output
// products land in the build buckets, input products in the demolition
// buckets. vizStart/vizFinish bound the classification the same way the
// animation window does: tasks after vizFinish are ignored, tasks before
// vizStart are already completed/demolished. Zero times mean unbounded.
func (b *Builder) ConstructionStates(date, vizStart, vizFinish time.Time) map[model.ConstructionState][]int64 {
	startKind := b.source.StartKind()
	finishKind := b.source.FinishKind()

	buckets := make(map[model.ConstructionState]map[int64]bool)
	add := func(state model.ConstructionState, ids []int64) {
		if len(ids) == 0 {
			return
		}
		if buckets[state] == nil {
			buckets[state] = make(map[int64]bool)
		}
		for _, id := range ids {
			buckets[state][id] = true
		}
	}

	for _, task := range b.cache.AllTasks() {
		taskStart, okStart := b.cache.DerivedDate(task, startKind, false)
		taskFinish, okFinish := b.cache.DerivedDate(task, finishKind, true)
		if !okStart || !okFinish {
			b.publish(events.EventTaskSkipped, map[string]any{"task_id": task.ID, "reason": "missing_dates"})
			continue
		}
		if !vizFinish.IsZero() && taskStart.After(vizFinish) {
			continue
		}

		outputs := b.cache.Outputs(task)
		inputs := b.cache.Inputs(task)

		switch {
		case !vizStart.IsZero() && taskFinish.Before(vizStart):
			add(model.StateCompleted, outputs)
			add(model.StateDemolished, inputs)
		case date.Before(taskStart):
			add(model.StateToBuild, outputs)
			add(model.StateToDemolish, inputs)
		case !date.After(taskFinish):
			add(model.StateInConstruction, outputs)
			add(model.StateInDemolition, inputs)
		default:
			add(model.StateCompleted, outputs)
			add(model.StateDemolished, inputs)
		}
	}

	result := make(map[model.ConstructionState][]int64, len(buckets))
	for state, ids := range buckets {
		sorted := make([]int64, 0, len(ids))
		for id := range ids {
			sorted = append(sorted, id)
		}
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		result[state] = sorted
	}
	return result
}

// SnapshotAppearance is the display decision for one product at a snapshot
// date: whether it is visible and, if so, in what color.
type SnapshotAppearance struct {
	State  model.StateName
	Hidden bool
	Color  model.RGBA
}

// SnapshotStateAt places a snapshot date in a task's lifecycle.
func SnapshotStateAt(date, taskStart, taskFinish time.Time) model.StateName {
	switch {
	case date.Before(taskStart):
		return model.StateBeforeStart
	case !date.After(taskFinish):
		return model.StateActive
	default:
		return model.StateAfterEnd
	}
}

// AppearanceAt resolves the snapshot appearance for a product in the given
// lifecycle state under a profile. Priority-mode profiles always show the
// Start appearance. Demolition-family products stay visible before their
// task starts (they exist until demolished); construction products whose
// profile ignores the start state stay hidden until built.
func AppearanceAt(ct *model.ColorType, predefined model.PredefinedType, state model.StateName, original model.RGBA) SnapshotAppearance {
	if ct.PriorityMode() {
		state = model.StateBeforeStart
	}

	appearance := SnapshotAppearance{State: state}
	isDemolition := model.IsDemolitionFamily(predefined)

	if !ct.PriorityMode() {
		switch state {
		case model.StateBeforeStart:
			appearance.Hidden = !ct.ConsiderStart && !isDemolition
		case model.StateActive:
			appearance.Hidden = !ct.ConsiderActive
		case model.StateAfterEnd:
			appearance.Hidden = !ct.ConsiderEnd || ct.HideAtEnd
		}
	}
	if appearance.Hidden {
		return appearance
	}

	switch state {
	case model.StateBeforeStart:
		color := ct.StartColor
		if ct.UseStartOriginalColor {
			color = original
		}
		appearance.Color = color.WithAlpha(ct.StartAlpha())
	case model.StateActive:
		color := ct.InProgressColor
		if ct.UseActiveOriginalColor {
			color = original
		}
		appearance.Color = color.WithAlpha(1.0 - ct.ActiveStartTransparency)
	case model.StateAfterEnd:
		color := ct.EndColor
		if ct.UseEndOriginalColor {
			color = original
		}
		appearance.Color = color.WithAlpha(ct.EndAlpha())
	}
	return appearance
}

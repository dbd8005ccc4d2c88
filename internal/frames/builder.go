package frames

import (
	"fmt"
	"log"

	"github.com/fourdstudio/sequence4d/internal/events"
	"github.com/fourdstudio/sequence4d/internal/model"
	"github.com/fourdstudio/sequence4d/internal/profile"
	"github.com/fourdstudio/sequence4d/internal/schedule"
)

// Builder walks every task in a schedule and accumulates per-product frame
// records: which products appear, progress, and complete at which frames,
// under which appearance profile.
type Builder struct {
	resolver *profile.Resolver
	cache    *Cache
	source   model.DateSource

	logger   *log.Logger
	logLevel LogLevel
	bus      *events.Bus
}

// NewBuilder creates a Builder. All repository access goes through the
// cache, which the caller must invalidate when the schedule or date source
// changes.
func NewBuilder(resolver *profile.Resolver, cache *Cache, source model.DateSource) *Builder {
	return &Builder{
		resolver: resolver,
		cache:    cache,
		source:   source,
		logLevel: LogLevelInfo,
	}
}

// SetLogger wires diagnostic logging.
func (b *Builder) SetLogger(logger *log.Logger, level LogLevel) {
	b.logger = logger
	b.logLevel = level
}

// SetEventBus wires build lifecycle event publishing.
func (b *Builder) SetEventBus(bus *events.Bus) { b.bus = bus }

func (b *Builder) log(level LogLevel, format string, args ...any) {
	if b.logger == nil || level > b.logLevel {
		return
	}
	b.logger.Printf("[%s] %s", level, fmt.Sprintf(format, args...))
}

func (b *Builder) publish(eventType events.EventType, data map[string]any) {
	if b.bus != nil {
		b.bus.Publish(eventType, data)
	}
}

// Build computes the frame records for every product associated with a
// scheduled task. Tasks without derivable dates under the active date
// source are skipped; tasks entirely after the window produce nothing;
// tasks entirely before it are recorded as already completed. The only
// error is an invalid visualization window.
func (b *Builder) Build(window model.VizWindow, stack profile.GroupStack, overrides profile.TaskOverrides) (map[int64][]model.FrameRecord, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}

	b.publish(events.EventBuildStarted, map[string]any{
		"start_frame":  window.StartFrame,
		"total_frames": window.TotalFrames,
	})

	startKind := b.source.StartKind()
	finishKind := b.source.FinishKind()
	result := make(map[int64][]model.FrameRecord)
	processed, skipped := 0, 0

	for _, task := range b.cache.AllTasks() {
		ct := b.resolver.Resolve(task.ID, task.PredefinedType, stack, overrides)

		// Priority mode: the profile pins the Start appearance across
		// the whole window and date logic is bypassed entirely.
		if ct.PriorityMode() {
			states := FullRangeStates(window)
			record := model.FrameRecord{
				TaskID:              task.ID,
				TaskName:            task.Name,
				PredefinedType:      task.PredefinedType,
				StartDate:           window.Start,
				FinishDate:          window.Finish,
				States:              states,
				StartActivePriority: true,
				Profile:             ct,
			}
			b.emit(result, task, record)
			processed++
			continue
		}

		taskStart, okStart := b.cache.DerivedDate(task, startKind, false)
		taskFinish, okFinish := b.cache.DerivedDate(task, finishKind, true)
		if !okStart || !okFinish {
			b.log(LogLevelDebug, "task %d %q: no derivable %s dates, skipping", task.ID, task.Name, b.source)
			b.publish(events.EventTaskSkipped, map[string]any{"task_id": task.ID, "reason": "missing_dates"})
			skipped++
			continue
		}

		states, ok := MapTaskToFrames(taskStart, taskFinish, window)
		if !ok {
			b.log(LogLevelDebug, "task %d %q: starts after the window, skipping", task.ID, task.Name)
			b.publish(events.EventTaskSkipped, map[string]any{"task_id": task.ID, "reason": "after_window"})
			skipped++
			continue
		}

		record := model.FrameRecord{
			TaskID:         task.ID,
			TaskName:       task.Name,
			PredefinedType: task.PredefinedType,
			StartDate:      taskStart,
			FinishDate:     taskFinish,
			States:         states,
			Profile:        ct,
		}
		b.emit(result, task, record)
		processed++
	}

	b.log(LogLevelInfo, "build complete: %d tasks processed, %d skipped, %d products", processed, skipped, len(result))
	b.publish(events.EventBuildCompleted, map[string]any{
		"tasks_processed": processed,
		"tasks_skipped":   skipped,
		"products":        len(result),
	})
	return result, nil
}

// emit appends one record per associated product, outputs tagged as such,
// inputs likewise. Records accumulate: a product reused across tasks keeps
// every record.
func (b *Builder) emit(result map[int64][]model.FrameRecord, task *schedule.Task, record model.FrameRecord) {
	for _, productID := range b.cache.Outputs(task) {
		r := record
		r.Relationship = model.RelationshipOutput
		result[productID] = append(result[productID], r)
	}
	for _, productID := range b.cache.Inputs(task) {
		r := record
		r.Relationship = model.RelationshipInput
		result[productID] = append(result[productID], r)
	}
}

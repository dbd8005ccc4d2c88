package frames

import (
	"math"
	"time"

	"github.com/fourdstudio/sequence4d/internal/model"
)

// MapTaskToFrames projects a task's date range onto the visualization
// window and splits the frame axis into the three lifecycle spans.
//
// ok is false when the task starts after the window finishes: such tasks
// are excluded from the animation entirely. A task that finishes before the
// window starts is treated as already completed for the whole window.
func MapTaskToFrames(taskStart, taskFinish time.Time, w model.VizWindow) (model.States, bool) {
	animStart := w.StartFrame
	animEnd := w.EndFrame()

	if taskStart.After(w.Finish) {
		return model.States{}, false
	}

	if taskFinish.Before(w.Start) {
		return model.States{
			BeforeStart: model.EmptySpan(animStart),
			Active:      model.EmptySpan(animStart),
			AfterEnd:    model.Span{Start: animStart, End: animEnd},
		}, true
	}

	duration := w.Duration().Seconds()
	startProgress, finishProgress := 0.0, 1.0
	if duration > 0 {
		startProgress = taskStart.Sub(w.Start).Seconds() / duration
		finishProgress = taskFinish.Sub(w.Start).Seconds() / duration
	}
	sf := frameAt(w, startProgress)
	ff := frameAt(w, finishProgress)

	sVis := max(animStart, sf)
	fVis := min(animEnd, ff)
	if fVis < sVis {
		// Degenerate after clipping: collapse to a single frame.
		sVis = max(animStart, min(animEnd, sVis))
		fVis = sVis
	}

	before := model.EmptySpan(animStart)
	if sVis-1 >= animStart {
		before = model.Span{Start: animStart, End: sVis - 1}
	}
	after := model.EmptySpan(animStart)
	if fVis+1 <= animEnd {
		after = model.Span{Start: fVis + 1, End: animEnd}
	}

	return model.States{
		BeforeStart: before,
		Active:      model.Span{Start: sVis, End: fVis},
		AfterEnd:    after,
	}, true
}

// FullRangeStates is the priority-mode projection: the active span covers
// the entire window and the other states never occur.
func FullRangeStates(w model.VizWindow) model.States {
	return model.States{
		BeforeStart: model.EmptySpan(w.StartFrame),
		Active:      model.Span{Start: w.StartFrame, End: w.EndFrame()},
		AfterEnd:    model.EmptySpan(w.StartFrame),
	}
}

func frameAt(w model.VizWindow, progress float64) int {
	return int(math.Round(float64(w.StartFrame) + progress*float64(w.TotalFrames)))
}

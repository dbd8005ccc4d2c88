package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidWindow is returned when a visualization window's finish date is
// not after its start date. This is the only caller-facing build failure.
var ErrInvalidWindow = errors.New("finish date must be after start date")

// VizWindow maps a date range onto an animation frame range. The whole
// schedule is projected onto it; tasks outside the range are clamped or
// dropped.
type VizWindow struct {
	Start       time.Time
	Finish      time.Time
	StartFrame  int
	TotalFrames int
}

// EndFrame is the last frame of the animation.
func (w VizWindow) EndFrame() int { return w.StartFrame + w.TotalFrames }

// Duration is the real-time length of the window.
func (w VizWindow) Duration() time.Duration { return w.Finish.Sub(w.Start) }

// Validate checks the window invariants: finish after start, at least one
// frame. Callers are expected to have corrected zero-length windows by
// advancing finish one day before building.
func (w VizWindow) Validate() error {
	if !w.Finish.After(w.Start) {
		return fmt.Errorf("visualization window %s..%s: %w",
			w.Start.Format("2006-01-02"), w.Finish.Format("2006-01-02"), ErrInvalidWindow)
	}
	if w.TotalFrames < 1 {
		return fmt.Errorf("total frames %d: must be at least 1", w.TotalFrames)
	}
	return nil
}

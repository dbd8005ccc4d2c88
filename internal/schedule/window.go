package schedule

import (
	"fmt"
	"math"
	"time"

	"github.com/fourdstudio/sequence4d/internal/model"
)

// SpeedMode selects how the animation frame count is derived from the real
// schedule duration.
type SpeedMode string

const (
	// SpeedFrames: a fixed number of frames per real-duration unit.
	SpeedFrames SpeedMode = "frame_speed"
	// SpeedDuration: compress the real duration into a target animation
	// duration at the configured fps.
	SpeedDuration SpeedMode = "duration_speed"
	// SpeedMultiplier: play the real duration at fps divided by a plain
	// speed multiplier.
	SpeedMultiplier SpeedMode = "multiplier_speed"
)

// defaultTotalFrames is used when no speed settings are configured.
const defaultTotalFrames = 250

// WindowSettings configures how the visualization window is computed.
// Zero Start/Finish means "guess from the schedule".
type WindowSettings struct {
	Start      time.Time
	Finish     time.Time
	StartFrame int
	FPS        int

	SpeedMode         SpeedMode
	RealDuration      time.Duration
	AnimationDuration time.Duration
	AnimationFrames   int
	Multiplier        float64
}

// ComputeWindow resolves the visualization window: explicit dates win,
// otherwise the schedule's own date range is used. Zero-length windows are
// corrected by advancing finish one day. The frame count comes from the
// configured speed mode, defaulting to 250 frames.
func ComputeWindow(repo Repository, source model.DateSource, settings WindowSettings) (model.VizWindow, error) {
	start, finish := settings.Start, settings.Finish
	if start.IsZero() || finish.IsZero() {
		guessStart, guessFinish, ok := GuessDateRange(repo, source)
		if !ok {
			return model.VizWindow{}, fmt.Errorf("no visualization dates configured and none derivable from the schedule")
		}
		if start.IsZero() {
			start = guessStart
		}
		if finish.IsZero() {
			finish = guessFinish
		}
	}
	if !finish.After(start) {
		finish = start.AddDate(0, 0, 1)
	}

	startFrame := settings.StartFrame
	if startFrame < 1 {
		startFrame = 1
	}
	fps := settings.FPS
	if fps < 1 {
		fps = 24
	}

	total := totalFrames(finish.Sub(start), fps, settings)
	window := model.VizWindow{
		Start:       start,
		Finish:      finish,
		StartFrame:  startFrame,
		TotalFrames: total,
	}
	if err := window.Validate(); err != nil {
		return model.VizWindow{}, err
	}
	return window, nil
}

func totalFrames(real time.Duration, fps int, settings WindowSettings) int {
	var frames float64
	switch settings.SpeedMode {
	case SpeedFrames:
		if settings.RealDuration <= 0 || settings.AnimationFrames <= 0 {
			return defaultTotalFrames
		}
		frames = real.Seconds() / settings.RealDuration.Seconds() * float64(settings.AnimationFrames)
	case SpeedDuration:
		if settings.RealDuration <= 0 || settings.AnimationDuration <= 0 {
			return defaultTotalFrames
		}
		multiplier := settings.RealDuration.Seconds() / settings.AnimationDuration.Seconds()
		frames = real.Seconds() / multiplier * float64(fps)
	case SpeedMultiplier:
		if settings.Multiplier <= 0 {
			return defaultTotalFrames
		}
		frames = real.Seconds() / settings.Multiplier * float64(fps)
	default:
		return defaultTotalFrames
	}

	total := int(math.Round(frames))
	if total < 1 {
		total = 1
	}
	return total
}

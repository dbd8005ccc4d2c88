package model

// Span is an inclusive frame interval. End < Start means the span is empty
// (the state does not occur inside the visualization window).
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// EmptySpan returns the conventional empty span anchored at the animation
// start frame.
func EmptySpan(startFrame int) Span { return Span{Start: startFrame, End: startFrame - 1} }

// Empty reports whether the span contains no frames.
func (s Span) Empty() bool { return s.End < s.Start }

// Contains reports whether frame lies inside the span.
func (s Span) Contains(frame int) bool { return frame >= s.Start && frame <= s.End }

// StateName identifies one of the three construction-lifecycle states an
// element moves through relative to its task.
type StateName string

const (
	StateBeforeStart StateName = "before_start"
	StateActive      StateName = "active"
	StateAfterEnd    StateName = "after_end"
)

// States holds the per-state frame spans for one task/product pair.
// Non-empty spans are non-overlapping and ordered BeforeStart, Active,
// AfterEnd along the frame axis.
type States struct {
	BeforeStart Span `json:"before_start"`
	Active      Span `json:"active"`
	AfterEnd    Span `json:"after_end"`
}

// At returns the state covering the given frame, if any.
func (s States) At(frame int) (StateName, bool) {
	switch {
	case !s.BeforeStart.Empty() && s.BeforeStart.Contains(frame):
		return StateBeforeStart, true
	case !s.Active.Empty() && s.Active.Contains(frame):
		return StateActive, true
	case !s.AfterEnd.Empty() && s.AfterEnd.Contains(frame):
		return StateAfterEnd, true
	}
	return "", false
}

package model

import "fmt"

// DateSource selects which of a task's date pairs drives the animation.
type DateSource string

const (
	DateSourceSchedule DateSource = "SCHEDULE"
	DateSourceActual   DateSource = "ACTUAL"
	DateSourceEarly    DateSource = "EARLY"
	DateSourceLate     DateSource = "LATE"
)

// DateKind names one concrete task date attribute.
type DateKind string

const (
	ScheduleStart  DateKind = "ScheduleStart"
	ScheduleFinish DateKind = "ScheduleFinish"
	ActualStart    DateKind = "ActualStart"
	ActualFinish   DateKind = "ActualFinish"
	EarlyStart     DateKind = "EarlyStart"
	EarlyFinish    DateKind = "EarlyFinish"
	LateStart      DateKind = "LateStart"
	LateFinish     DateKind = "LateFinish"
)

var dateSourceKinds = map[DateSource][2]DateKind{
	DateSourceSchedule: {ScheduleStart, ScheduleFinish},
	DateSourceActual:   {ActualStart, ActualFinish},
	DateSourceEarly:    {EarlyStart, EarlyFinish},
	DateSourceLate:     {LateStart, LateFinish},
}

// StartKind returns the start date attribute for the source.
func (s DateSource) StartKind() DateKind { return dateSourceKinds[s][0] }

// FinishKind returns the finish date attribute for the source.
func (s DateSource) FinishKind() DateKind { return dateSourceKinds[s][1] }

// ParseDateSource validates a user-supplied date source string.
func ParseDateSource(s string) (DateSource, error) {
	ds := DateSource(s)
	if _, ok := dateSourceKinds[ds]; !ok {
		return "", fmt.Errorf("unknown date source %q", s)
	}
	return ds, nil
}

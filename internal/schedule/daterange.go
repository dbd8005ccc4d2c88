package schedule

import (
	"time"

	"github.com/fourdstudio/sequence4d/internal/model"
)

// GuessDateRange scans every task in the schedule under the given date
// source and returns the earliest start and latest finish. ok is false when
// no task carries a usable date pair.
func GuessDateRange(repo Repository, source model.DateSource) (start, finish time.Time, ok bool) {
	startKind := source.StartKind()
	finishKind := source.FinishKind()

	var walk func(tasks []*Task)
	walk = func(tasks []*Task) {
		for _, t := range tasks {
			if d, has := repo.DeriveDate(t, startKind, false); has {
				if start.IsZero() || d.Before(start) {
					start = d
				}
			}
			if d, has := repo.DeriveDate(t, finishKind, true); has {
				if finish.IsZero() || d.After(finish) {
					finish = d
				}
			}
			walk(repo.NestedTasks(t))
		}
	}
	walk(repo.RootTasks())

	if start.IsZero() || finish.IsZero() {
		return time.Time{}, time.Time{}, false
	}
	return start, finish, true
}

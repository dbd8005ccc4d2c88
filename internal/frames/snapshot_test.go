package frames

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fourdstudio/sequence4d/internal/model"
	"github.com/fourdstudio/sequence4d/internal/profile"
	"github.com/fourdstudio/sequence4d/internal/schedule"
)

func TestBuilder_ConstructionStates(t *testing.T) {
	builder, _ := newTestBuilder(t, []*schedule.Task{
		scheduleTask(1, model.TypeConstruction, "2024-01-01", "2024-01-06", []int64{101}, nil),
		scheduleTask(2, model.TypeDemolition, "2024-01-04", "2024-01-08", nil, []int64{201}),
	})

	testCases := []struct {
		name     string
		date     string
		expected map[model.ConstructionState][]int64
	}{
		{
			name: "before everything",
			date: "2023-12-01",
			expected: map[model.ConstructionState][]int64{
				model.StateToBuild:    {101},
				model.StateToDemolish: {201},
			},
		},
		{
			name: "construction active, demolition pending",
			date: "2024-01-02",
			expected: map[model.ConstructionState][]int64{
				model.StateInConstruction: {101},
				model.StateToDemolish:     {201},
			},
		},
		{
			name: "both active",
			date: "2024-01-05",
			expected: map[model.ConstructionState][]int64{
				model.StateInConstruction: {101},
				model.StateInDemolition:   {201},
			},
		},
		{
			name: "after everything",
			date: "2024-02-01",
			expected: map[model.ConstructionState][]int64{
				model.StateCompleted:  {101},
				model.StateDemolished: {201},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			states := builder.ConstructionStates(date(tc.date), time.Time{}, time.Time{})
			assert.Equal(t, tc.expected, states)
		})
	}
}

func TestBuilder_ConstructionStates_WindowBounds(t *testing.T) {
	builder, _ := newTestBuilder(t, []*schedule.Task{
		scheduleTask(1, model.TypeConstruction, "2023-01-01", "2023-02-01", []int64{101}, nil),
		scheduleTask(2, model.TypeConstruction, "2025-01-01", "2025-02-01", []int64{102}, nil),
	})

	states := builder.ConstructionStates(date("2024-01-05"), date("2024-01-01"), date("2024-01-11"))

	// Before-window tasks are completed, after-window tasks ignored.
	assert.Equal(t, []int64{101}, states[model.StateCompleted])
	for _, bucket := range states {
		assert.NotContains(t, bucket, int64(102))
	}
}

func TestSnapshotStateAt(t *testing.T) {
	start, finish := date("2024-01-03"), date("2024-01-06")

	assert.Equal(t, model.StateBeforeStart, SnapshotStateAt(date("2024-01-01"), start, finish))
	assert.Equal(t, model.StateActive, SnapshotStateAt(date("2024-01-03"), start, finish))
	assert.Equal(t, model.StateActive, SnapshotStateAt(date("2024-01-06"), start, finish))
	assert.Equal(t, model.StateAfterEnd, SnapshotStateAt(date("2024-01-07"), start, finish))
}

func TestAppearanceAt(t *testing.T) {
	ct := profile.Fallback(model.TypeConstruction)
	original := model.RGBA{R: 0.2, G: 0.4, B: 0.6, A: 1}

	t.Run("active uses in-progress color", func(t *testing.T) {
		app := AppearanceAt(ct, model.TypeConstruction, model.StateActive, original)
		require.False(t, app.Hidden)
		assert.Equal(t, ct.InProgressColor.WithAlpha(1.0), app.Color)
	})

	t.Run("hide at end hides", func(t *testing.T) {
		demo := profile.Fallback(model.TypeDemolition)
		app := AppearanceAt(demo, model.TypeDemolition, model.StateAfterEnd, original)
		assert.True(t, app.Hidden)
	})

	t.Run("construction hidden before start when start not considered", func(t *testing.T) {
		noStart := *ct
		noStart.ConsiderStart = false
		app := AppearanceAt(&noStart, model.TypeConstruction, model.StateBeforeStart, original)
		assert.True(t, app.Hidden)
	})

	t.Run("demolition visible before start regardless", func(t *testing.T) {
		demo := profile.Fallback(model.TypeDemolition)
		noStart := *demo
		noStart.ConsiderStart = false
		noStart.ConsiderActive = true
		app := AppearanceAt(&noStart, model.TypeDemolition, model.StateBeforeStart, original)
		assert.False(t, app.Hidden)
	})

	t.Run("priority mode always shows start appearance", func(t *testing.T) {
		priority := *ct
		priority.ConsiderActive = false
		priority.ConsiderEnd = false
		app := AppearanceAt(&priority, model.TypeConstruction, model.StateAfterEnd, original)
		require.False(t, app.Hidden)
		assert.Equal(t, model.StateBeforeStart, app.State)
		assert.Equal(t, priority.StartColor.WithAlpha(1.0), app.Color)
	})

	t.Run("original color substitution", func(t *testing.T) {
		sub := *ct
		sub.UseActiveOriginalColor = true
		app := AppearanceAt(&sub, model.TypeConstruction, model.StateActive, original)
		assert.Equal(t, original.WithAlpha(1.0), app.Color)
	})
}

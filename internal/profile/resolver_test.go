package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fourdstudio/sequence4d/internal/model"
)

func TestGroupStack_ActiveGroup(t *testing.T) {
	testCases := []struct {
		name     string
		stack    GroupStack
		expected string
	}{
		{"empty stack", nil, DefaultGroupName},
		{"none enabled", GroupStack{{Group: "A"}, {Group: "B"}}, DefaultGroupName},
		{"first enabled wins", GroupStack{{Group: "A"}, {Group: "B", Enabled: true}, {Group: "C", Enabled: true}}, "B"},
		{"enabled entry with empty name skipped", GroupStack{{Group: "", Enabled: true}, {Group: "B", Enabled: true}}, "B"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.stack.ActiveGroup())
		})
	}
}

func TestResolver_NeverReturnsNil(t *testing.T) {
	// Empty store, no DEFAULT group synthesized: resolution still
	// succeeds through the fallback tier.
	resolver := NewResolver(NewStore(nil))

	for _, pt := range model.KnownPredefinedTypes {
		ct := resolver.Resolve(1, pt, nil, nil)
		require.NotNil(t, ct, "predefined type %s", pt)
	}
}

func TestResolver_SynthesizedFallbackColors(t *testing.T) {
	resolver := NewResolver(NewStore(nil))

	construction := resolver.Resolve(1, model.TypeConstruction, nil, nil)
	assert.Equal(t, model.RGBA{G: 1, A: 1}, construction.InProgressColor)
	assert.True(t, construction.ConsiderStart)
	assert.True(t, construction.ConsiderActive)
	assert.True(t, construction.ConsiderEnd)
	assert.False(t, construction.UseStartOriginalColor)
	assert.False(t, construction.HideAtEnd)

	demolition := resolver.Resolve(1, model.TypeDemolition, nil, nil)
	assert.Equal(t, model.RGBA{R: 1, A: 1}, demolition.InProgressColor)
	assert.True(t, demolition.HideAtEnd)

	logistic := resolver.Resolve(1, model.TypeLogistic, nil, nil)
	assert.Equal(t, model.RGBA{R: 1, G: 1, A: 1}, logistic.InProgressColor)

	operation := resolver.Resolve(1, model.TypeOperation, nil, nil)
	assert.Equal(t, model.RGBA{B: 1, A: 1}, operation.InProgressColor)

	unknown := resolver.Resolve(1, "SOMETHING_ELSE", nil, nil)
	assert.Equal(t, model.RGBA{R: 0.8, G: 0.8, B: 0.8, A: 1}, unknown.InProgressColor)
}

func TestResolver_OverrideBeatsPredefinedType(t *testing.T) {
	store := NewStore(nil)
	require.NoError(t, store.WriteGroup("PHASE1", []model.ColorType{
		{Name: "CONSTRUCTION", ConsiderStart: true, InProgressColor: model.RGBA{G: 1, A: 1}},
		{Name: "SpecialFacade", ConsiderStart: true, InProgressColor: model.RGBA{R: 1, G: 0.5, A: 1}},
	}))
	resolver := NewResolver(store)
	stack := GroupStack{{Group: "PHASE1", Enabled: true}}

	overrides := TaskOverrides{
		7: {{GroupName: "PHASE1", Enabled: true, Selected: "SpecialFacade"}},
	}
	ct := resolver.Resolve(7, model.TypeConstruction, stack, overrides)
	assert.Equal(t, "SpecialFacade", ct.Name, "override wins over the PredefinedType profile")

	// A different task without an override falls back to the type lookup.
	ct = resolver.Resolve(8, model.TypeConstruction, stack, overrides)
	assert.Equal(t, "CONSTRUCTION", ct.Name)
}

func TestResolver_OverrideIgnoredWhenNotApplicable(t *testing.T) {
	store := NewStore(nil)
	require.NoError(t, store.WriteGroup("PHASE1", []model.ColorType{
		{Name: "CONSTRUCTION", ConsiderStart: true},
		{Name: "SpecialFacade", ConsiderStart: true},
	}))
	resolver := NewResolver(store)
	stack := GroupStack{{Group: "PHASE1", Enabled: true}}

	testCases := []struct {
		name      string
		overrides TaskOverrides
	}{
		{"override for another group", TaskOverrides{7: {{GroupName: "OTHER", Enabled: true, Selected: "SpecialFacade"}}}},
		{"override disabled", TaskOverrides{7: {{GroupName: "PHASE1", Selected: "SpecialFacade"}}}},
		{"override with empty selection", TaskOverrides{7: {{GroupName: "PHASE1", Enabled: true}}}},
		{"override naming a missing profile", TaskOverrides{7: {{GroupName: "PHASE1", Enabled: true, Selected: "DoesNotExist"}}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ct := resolver.Resolve(7, model.TypeConstruction, stack, tc.overrides)
			assert.Equal(t, "CONSTRUCTION", ct.Name)
		})
	}
}

func TestResolver_FallsBackToDefaultGroup(t *testing.T) {
	store := NewStore(nil)
	_, err := store.EnsureDefaultGroup()
	require.NoError(t, err)
	// The active group exists but has no profile for the task's type.
	require.NoError(t, store.WriteGroup("SPARSE", []model.ColorType{
		{Name: "CONSTRUCTION", ConsiderStart: true},
	}))
	resolver := NewResolver(store)
	stack := GroupStack{{Group: "SPARSE", Enabled: true}}

	// DEMOLITION is absent from SPARSE: tier 3 finds it in DEFAULT.
	ct := resolver.Resolve(1, model.TypeDemolition, stack, nil)
	require.NotNil(t, ct)
	assert.Equal(t, "DEMOLITION", ct.Name)
	assert.True(t, ct.HideAtEnd)
}

func TestResolver_UnknownTypeFallsBackToNotDefined(t *testing.T) {
	store := NewStore(nil)
	_, err := store.EnsureDefaultGroup()
	require.NoError(t, err)
	resolver := NewResolver(store)

	ct := resolver.Resolve(1, "CUSTOM.PHASE", nil, nil)
	require.NotNil(t, ct)
	assert.Equal(t, "NOTDEFINED", ct.Name)
}

func TestResolver_EmptyTypeNormalized(t *testing.T) {
	store := NewStore(nil)
	_, err := store.EnsureDefaultGroup()
	require.NoError(t, err)
	resolver := NewResolver(store)

	ct := resolver.Resolve(1, "", nil, nil)
	require.NotNil(t, ct)
	assert.Equal(t, "NOTDEFINED", ct.Name)
}

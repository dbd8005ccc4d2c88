package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBA_JSON(t *testing.T) {
	t.Run("marshals as array", func(t *testing.T) {
		raw, err := json.Marshal(RGBA{R: 1, G: 0.5, B: 0, A: 0.75})
		require.NoError(t, err)
		assert.JSONEq(t, `[1, 0.5, 0, 0.75]`, string(raw))
	})

	t.Run("three channels decode with alpha 1", func(t *testing.T) {
		var c RGBA
		require.NoError(t, json.Unmarshal([]byte(`[1, 0, 0]`), &c))
		assert.Equal(t, RGBA{R: 1, A: 1}, c)
	})

	t.Run("four channels decode as given", func(t *testing.T) {
		var c RGBA
		require.NoError(t, json.Unmarshal([]byte(`[0.2, 0.4, 0.6, 0.8]`), &c))
		assert.Equal(t, RGBA{R: 0.2, G: 0.4, B: 0.6, A: 0.8}, c)
	})

	t.Run("too few channels rejected", func(t *testing.T) {
		var c RGBA
		assert.Error(t, json.Unmarshal([]byte(`[1, 0]`), &c))
	})
}

func TestColorType_PriorityMode(t *testing.T) {
	testCases := []struct {
		name               string
		start, active, end bool
		expected           bool
	}{
		{"start only", true, false, false, true},
		{"all states", true, true, true, false},
		{"start and active", true, true, false, false},
		{"start and end", true, false, true, false},
		{"none", false, false, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ct := ColorType{ConsiderStart: tc.start, ConsiderActive: tc.active, ConsiderEnd: tc.end}
			assert.Equal(t, tc.expected, ct.PriorityMode())
		})
	}
}

func TestColorType_Alphas(t *testing.T) {
	ct := ColorType{StartTransparency: 0.25, EndTransparency: 0.4}

	assert.InDelta(t, 0.75, ct.StartAlpha(), 1e-9)
	assert.InDelta(t, 0.6, ct.EndAlpha(), 1e-9)
}

func TestNormalizeType(t *testing.T) {
	assert.Equal(t, TypeNotDefined, NormalizeType(""))
	assert.Equal(t, TypeConstruction, NormalizeType("CONSTRUCTION"))
	assert.Equal(t, PredefinedType("CUSTOM.PHASE"), NormalizeType("CUSTOM.PHASE"))
}

func TestTypeFamilies(t *testing.T) {
	assert.True(t, IsConstructionFamily(TypeInstallation))
	assert.True(t, IsDemolitionFamily(TypeRemoval))
	assert.True(t, IsDemolitionFamily(TypeDismantle))
	assert.True(t, IsOperationFamily(TypeMaintenance))
	assert.True(t, IsLogisticFamily(TypeMove))

	assert.False(t, IsDemolitionFamily(TypeConstruction))
	assert.False(t, IsConstructionFamily(TypeNotDefined))
}

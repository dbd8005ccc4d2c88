package model

import (
	"encoding/json"
	"fmt"
)

// RGBA is a display color with straight alpha, all channels 0..1. It
// serializes as a JSON array [r, g, b, a] to match the blob contract; a
// three-element array decodes with alpha 1.
type RGBA struct {
	R, G, B, A float64
}

// MarshalJSON encodes the color as [r, g, b, a].
func (c RGBA) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float64{c.R, c.G, c.B, c.A})
}

// UnmarshalJSON decodes [r, g, b] or [r, g, b, a].
func (c *RGBA) UnmarshalJSON(data []byte) error {
	var channels []float64
	if err := json.Unmarshal(data, &channels); err != nil {
		return err
	}
	if len(channels) < 3 {
		return fmt.Errorf("color needs at least 3 channels, got %d", len(channels))
	}
	c.R, c.G, c.B = channels[0], channels[1], channels[2]
	c.A = 1.0
	if len(channels) >= 4 {
		c.A = channels[3]
	}
	return nil
}

// WithAlpha returns the color with its alpha channel replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// ColorType is a named appearance profile: per-state colors, transparencies
// and visibility flags applied to a task's associated 3D elements. All
// fields are explicit with defaults set at construction time; there is no
// optional-field probing anywhere downstream.
type ColorType struct {
	Name string `json:"name"`

	// Which lifecycle states are animated at all. The combination
	// start=true, active=false, end=false selects priority mode: the
	// element shows its Start appearance for the entire animation and
	// date logic is bypassed.
	ConsiderStart  bool `json:"consider_start"`
	ConsiderActive bool `json:"consider_active"`
	ConsiderEnd    bool `json:"consider_end"`

	StartColor      RGBA `json:"start_color"`
	InProgressColor RGBA `json:"in_progress_color"`
	EndColor        RGBA `json:"end_color"`

	// Substitute the element's pre-existing color for the profile color.
	UseStartOriginalColor  bool `json:"use_start_original_color"`
	UseActiveOriginalColor bool `json:"use_active_original_color"`
	UseEndOriginalColor    bool `json:"use_end_original_color"`

	// Transparencies in 0..1; applied as alpha = 1 - transparency.
	StartTransparency          float64 `json:"start_transparency"`
	ActiveStartTransparency    float64 `json:"active_start_transparency"`
	ActiveFinishTransparency   float64 `json:"active_finish_transparency"`
	ActiveTransparencyInterpol float64 `json:"active_transparency_interpol"`
	EndTransparency            float64 `json:"end_transparency"`

	// Hide the element after its task ends instead of showing the end
	// appearance. Default for the demolition family.
	HideAtEnd bool `json:"hide_at_end"`
}

// PriorityMode reports whether this profile forces elements to hold their
// Start appearance across the whole animation regardless of task dates.
func (c ColorType) PriorityMode() bool {
	return c.ConsiderStart && !c.ConsiderActive && !c.ConsiderEnd
}

// StartAlpha is the alpha applied during the before-start state.
func (c ColorType) StartAlpha() float64 { return 1.0 - c.StartTransparency }

// EndAlpha is the alpha applied during the after-end state.
func (c ColorType) EndAlpha() float64 { return 1.0 - c.EndTransparency }

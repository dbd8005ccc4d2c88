package profile

import "github.com/fourdstudio/sequence4d/internal/model"

// rawGroup and rawColorType decode user-authored blobs where fields may be
// absent. Absent booleans take the historical defaults (all states
// considered, end state shows the original color, interpolation 1.0) so a
// decoded profile is always fully populated.
type rawGroup struct {
	ColorTypes []rawColorType `json:"ColorTypes"`
}

type rawColorType struct {
	Name                       string      `json:"name"`
	ConsiderStart              *bool       `json:"consider_start"`
	ConsiderActive             *bool       `json:"consider_active"`
	ConsiderEnd                *bool       `json:"consider_end"`
	StartColor                 *model.RGBA `json:"start_color"`
	InProgressColor            *model.RGBA `json:"in_progress_color"`
	EndColor                   *model.RGBA `json:"end_color"`
	UseStartOriginalColor      *bool       `json:"use_start_original_color"`
	UseActiveOriginalColor     *bool       `json:"use_active_original_color"`
	UseEndOriginalColor        *bool       `json:"use_end_original_color"`
	StartTransparency          *float64    `json:"start_transparency"`
	ActiveStartTransparency    *float64    `json:"active_start_transparency"`
	ActiveFinishTransparency   *float64    `json:"active_finish_transparency"`
	ActiveTransparencyInterpol *float64    `json:"active_transparency_interpol"`
	EndTransparency            *float64    `json:"end_transparency"`
	HideAtEnd                  *bool       `json:"hide_at_end"`
}

func (r rawColorType) colorType() model.ColorType {
	ct := model.ColorType{
		Name:                       r.Name,
		ConsiderStart:              boolOr(r.ConsiderStart, true),
		ConsiderActive:             boolOr(r.ConsiderActive, true),
		ConsiderEnd:                boolOr(r.ConsiderEnd, true),
		StartColor:                 rgbaOr(r.StartColor, model.RGBA{R: 1, G: 1, B: 1, A: 1}),
		InProgressColor:            rgbaOr(r.InProgressColor, model.RGBA{R: 1, G: 1, B: 0, A: 1}),
		EndColor:                   rgbaOr(r.EndColor, model.RGBA{G: 1, A: 1}),
		UseStartOriginalColor:      boolOr(r.UseStartOriginalColor, false),
		UseActiveOriginalColor:     boolOr(r.UseActiveOriginalColor, false),
		UseEndOriginalColor:        boolOr(r.UseEndOriginalColor, true),
		StartTransparency:          floatOr(r.StartTransparency, 0),
		ActiveStartTransparency:    floatOr(r.ActiveStartTransparency, 0),
		ActiveFinishTransparency:   floatOr(r.ActiveFinishTransparency, 0),
		ActiveTransparencyInterpol: floatOr(r.ActiveTransparencyInterpol, 1.0),
		EndTransparency:            floatOr(r.EndTransparency, 0),
	}
	// Demolition-family names default to disappearing at the end.
	hideDefault := model.IsDemolitionFamily(model.PredefinedType(r.Name))
	ct.HideAtEnd = boolOr(r.HideAtEnd, hideDefault)
	return ct
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func rgbaOr(v *model.RGBA, def model.RGBA) model.RGBA {
	if v == nil {
		return def
	}
	return *v
}

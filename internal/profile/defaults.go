package profile

import "github.com/fourdstudio/sequence4d/internal/model"

// defaultStateColors is the fixed color table behind the DEFAULT group:
// construction family green, demolition family red and disappearing at the
// end, operation family blue, logistics yellow, undefined gray.
var defaultStateColors = map[model.PredefinedType]struct {
	start  model.RGBA
	active model.RGBA
	end    model.RGBA
}{
	model.TypeConstruction: {model.RGBA{R: 1, G: 1, B: 1, A: 0}, model.RGBA{R: 0, G: 1, B: 0, A: 1}, model.RGBA{R: 0.3, G: 1, B: 0.3, A: 1}},
	model.TypeInstallation: {model.RGBA{R: 1, G: 1, B: 1, A: 0}, model.RGBA{R: 0, G: 1, B: 0, A: 1}, model.RGBA{R: 0.3, G: 0.8, B: 0.5, A: 1}},
	model.TypeDemolition:   {model.RGBA{R: 1, G: 1, B: 1, A: 1}, model.RGBA{R: 1, G: 0, B: 0, A: 1}, model.RGBA{R: 0, G: 0, B: 0, A: 0}},
	model.TypeRemoval:      {model.RGBA{R: 1, G: 1, B: 1, A: 1}, model.RGBA{R: 1, G: 0, B: 0, A: 1}, model.RGBA{R: 0, G: 0, B: 0, A: 0}},
	model.TypeDisposal:     {model.RGBA{R: 1, G: 1, B: 1, A: 1}, model.RGBA{R: 1, G: 0, B: 0, A: 1}, model.RGBA{R: 0, G: 0, B: 0, A: 0}},
	model.TypeDismantle:    {model.RGBA{R: 1, G: 1, B: 1, A: 1}, model.RGBA{R: 1, G: 0, B: 0, A: 1}, model.RGBA{R: 0, G: 0, B: 0, A: 0}},
	model.TypeOperation:    {model.RGBA{R: 1, G: 1, B: 1, A: 1}, model.RGBA{R: 0, G: 0, B: 1, A: 1}, model.RGBA{R: 1, G: 1, B: 1, A: 1}},
	model.TypeMaintenance:  {model.RGBA{R: 1, G: 1, B: 1, A: 1}, model.RGBA{R: 0, G: 0, B: 1, A: 1}, model.RGBA{R: 1, G: 1, B: 1, A: 1}},
	model.TypeAttendance:   {model.RGBA{R: 1, G: 1, B: 1, A: 1}, model.RGBA{R: 0, G: 0, B: 1, A: 1}, model.RGBA{R: 1, G: 1, B: 1, A: 1}},
	model.TypeRenovation:   {model.RGBA{R: 1, G: 1, B: 1, A: 1}, model.RGBA{R: 0, G: 0, B: 1, A: 1}, model.RGBA{R: 0.9, G: 0.9, B: 0.9, A: 1}},
	model.TypeLogistic:     {model.RGBA{R: 1, G: 1, B: 1, A: 1}, model.RGBA{R: 1, G: 1, B: 0, A: 1}, model.RGBA{R: 1, G: 0.8, B: 0.3, A: 1}},
	model.TypeMove:         {model.RGBA{R: 1, G: 1, B: 1, A: 1}, model.RGBA{R: 1, G: 1, B: 0, A: 1}, model.RGBA{R: 0.8, G: 0.6, B: 0, A: 1}},
	model.TypeNotDefined:   {model.RGBA{R: 0.7, G: 0.7, B: 0.7, A: 1}, model.RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}, model.RGBA{R: 0.3, G: 0.3, B: 0.3, A: 1}},
	model.TypeUserDefined:  {model.RGBA{R: 0.7, G: 0.7, B: 0.7, A: 1}, model.RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}, model.RGBA{R: 0.3, G: 0.3, B: 0.3, A: 1}},
}

// DefaultGroup builds the synthesized DEFAULT group: one profile per known
// PredefinedType, in the canonical type order.
func DefaultGroup() Group {
	group := Group{ColorTypes: make([]model.ColorType, 0, len(model.KnownPredefinedTypes))}
	for _, pt := range model.KnownPredefinedTypes {
		colors := defaultStateColors[pt]
		disappears := model.IsDemolitionFamily(pt)
		group.ColorTypes = append(group.ColorTypes, model.ColorType{
			Name:                       string(pt),
			ConsiderStart:              true,
			ConsiderActive:             true,
			ConsiderEnd:                true,
			StartColor:                 colors.start,
			InProgressColor:            colors.active,
			EndColor:                   colors.end,
			UseEndOriginalColor:        !disappears,
			ActiveTransparencyInterpol: 1.0,
			HideAtEnd:                  disappears,
		})
	}
	return group
}

// fallbackColors is the last-resort color table the resolver synthesizes
// from when every store lookup misses.
func fallbackColors(pt model.PredefinedType) (active model.RGBA, hideAtEnd bool) {
	switch {
	case model.IsConstructionFamily(pt):
		return model.RGBA{R: 0, G: 1, B: 0, A: 1}, false
	case model.IsDemolitionFamily(pt):
		return model.RGBA{R: 1, G: 0, B: 0, A: 1}, true
	case model.IsLogisticFamily(pt):
		return model.RGBA{R: 1, G: 1, B: 0, A: 1}, false
	case model.IsOperationFamily(pt):
		return model.RGBA{R: 0, G: 0, B: 1, A: 1}, false
	default:
		return model.RGBA{R: 0.8, G: 0.8, B: 0.8, A: 1}, false
	}
}

// Fallback synthesizes an ad-hoc profile for a PredefinedType. This path
// never fails; it is the structural guarantee that resolution always
// succeeds.
func Fallback(pt model.PredefinedType) *model.ColorType {
	active, hideAtEnd := fallbackColors(pt)
	return &model.ColorType{
		Name:                       string(pt),
		ConsiderStart:              true,
		ConsiderActive:             true,
		ConsiderEnd:                true,
		StartColor:                 model.RGBA{R: 1, G: 1, B: 1, A: 1},
		InProgressColor:            active,
		EndColor:                   active,
		ActiveTransparencyInterpol: 1.0,
		HideAtEnd:                  hideAtEnd,
	}
}

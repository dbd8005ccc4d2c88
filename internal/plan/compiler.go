// Package plan compiles per-product frame records into the ordered
// visibility and color keyframe operations a scene actuator applies.
package plan

import (
	"sort"

	"github.com/fourdstudio/sequence4d/internal/events"
	"github.com/fourdstudio/sequence4d/internal/model"
)

// Actuator is the consumer boundary: it translates each operation into an
// actual keyframe insertion on the corresponding 3D object. Order across
// objects is irrelevant; per object, later ops at the same frame win.
type Actuator interface {
	Apply(ops []model.Operation) error
}

// Compiler turns frame records plus resolved profiles into a flat operation
// list. It knows nothing about 3D objects beyond their ids; the caller
// supplies the product→object mapping and the pre-animation colors.
type Compiler struct {
	bus *events.Bus
}

// NewCompiler creates a Compiler.
func NewCompiler() *Compiler { return &Compiler{} }

// SetEventBus wires plan lifecycle event publishing.
func (c *Compiler) SetEventBus(bus *events.Bus) { c.bus = bus }

// defaultOriginal stands in when no pre-animation color was captured for an
// object.
var defaultOriginal = model.RGBA{R: 1, G: 1, B: 1, A: 1}

// Compile emits operations for every object mapped from every product with
// frame records. Per object the ops are in non-decreasing frame order,
// starting with a hide keyframe at frame 0 so nothing flashes before its
// first state. Products and objects are visited in sorted order so the
// output is deterministic.
func (c *Compiler) Compile(framesByProduct map[int64][]model.FrameRecord, productObjects map[int64][]string, originalColors map[string]model.RGBA) []model.Operation {
	productIDs := make([]int64, 0, len(framesByProduct))
	for id := range framesByProduct {
		productIDs = append(productIDs, id)
	}
	sort.Slice(productIDs, func(i, j int) bool { return productIDs[i] < productIDs[j] })

	var ops []model.Operation
	for _, productID := range productIDs {
		records := framesByProduct[productID]
		objects := append([]string(nil), productObjects[productID]...)
		sort.Strings(objects)
		for _, objectID := range objects {
			original, ok := originalColors[objectID]
			if !ok {
				original = defaultOriginal
			}
			ops = append(ops, model.Visibility(objectID, 0, true))
			for i := range records {
				ops = c.appendRecordOps(ops, objectID, &records[i], original)
			}
		}
	}

	if c.bus != nil {
		c.bus.Publish(events.EventPlanCompiled, map[string]any{
			"products":   len(framesByProduct),
			"operations": len(ops),
		})
	}
	return ops
}

func (c *Compiler) appendRecordOps(ops []model.Operation, objectID string, record *model.FrameRecord, original model.RGBA) []model.Operation {
	ct := record.Profile
	if ct == nil {
		ct = &model.ColorType{ConsiderStart: true, ConsiderActive: true, ConsiderEnd: true,
			StartColor: defaultOriginal, InProgressColor: defaultOriginal, EndColor: defaultOriginal,
			UseEndOriginalColor: true, ActiveTransparencyInterpol: 1.0}
	}

	// Priority mode: the Start appearance holds across the whole window.
	if record.StartActivePriority {
		span := record.States.Active
		color := startColor(ct, original)
		ops = append(ops,
			model.Visibility(objectID, span.Start, false),
			model.Color(objectID, span.Start, color),
			model.Color(objectID, span.End, color),
		)
		return ops
	}

	if span := record.States.BeforeStart; !span.Empty() {
		// An output not yet built stays hidden unless its profile
		// animates the start state.
		hideAtStart := record.Relationship == model.RelationshipOutput && !ct.ConsiderStart
		if hideAtStart {
			ops = append(ops, model.Visibility(objectID, span.Start, true))
		} else {
			color := startColor(ct, original)
			ops = append(ops,
				model.Visibility(objectID, span.Start, false),
				model.Color(objectID, span.Start, color),
			)
			if span.End > span.Start {
				ops = append(ops, model.Color(objectID, span.End, color))
			}
		}
	}

	if span := record.States.Active; !span.Empty() && ct.ConsiderActive {
		base := ct.InProgressColor
		if ct.UseActiveOriginalColor {
			base = original
		}
		ops = append(ops,
			model.Visibility(objectID, span.Start, false),
			model.Color(objectID, span.Start, base.WithAlpha(1.0-ct.ActiveStartTransparency)),
		)
		// A second keyframe at the span end gives the actuator a
		// transparency ramp across the active phase.
		if span.End > span.Start {
			ops = append(ops, model.Color(objectID, span.End, base.WithAlpha(1.0-ct.ActiveFinishTransparency)))
		}
	}

	if span := record.States.AfterEnd; !span.Empty() && ct.ConsiderEnd {
		if ct.HideAtEnd {
			ops = append(ops, model.Visibility(objectID, span.Start, true))
		} else {
			color := ct.EndColor
			if ct.UseEndOriginalColor {
				color = original
			}
			ops = append(ops,
				model.Visibility(objectID, span.Start, false),
				model.Color(objectID, span.Start, color.WithAlpha(ct.EndAlpha())),
			)
		}
	}
	return ops
}

func startColor(ct *model.ColorType, original model.RGBA) model.RGBA {
	color := ct.StartColor
	if ct.UseStartOriginalColor {
		color = original
	}
	return color.WithAlpha(ct.StartAlpha())
}

package model

// OpKind distinguishes the two primitive keyframe operations the compiler
// emits for the scene actuator.
type OpKind string

const (
	OpVisibility OpKind = "visibility"
	OpColor      OpKind = "color"
)

// Operation is one keyframe primitive: set an object hidden/visible or set
// its color at a frame. For visibility ops only Hidden is meaningful, for
// color ops only Color. Within one object ops are emitted in non-decreasing
// frame order; duplicates at the same object+frame resolve last-write-wins
// when the actuator inserts keyframes.
type Operation struct {
	Kind     OpKind `json:"kind"`
	ObjectID string `json:"object_id"`
	Frame    int    `json:"frame"`
	Hidden   bool   `json:"hidden,omitempty"`
	Color    RGBA   `json:"color"`
}

// Visibility builds a visibility operation.
func Visibility(objectID string, frame int, hidden bool) Operation {
	return Operation{Kind: OpVisibility, ObjectID: objectID, Frame: frame, Hidden: hidden}
}

// Color builds a color operation.
func Color(objectID string, frame int, color RGBA) Operation {
	return Operation{Kind: OpColor, ObjectID: objectID, Frame: frame, Color: color}
}

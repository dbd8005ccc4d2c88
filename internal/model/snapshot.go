package model

// ConstructionState classifies a product at a single snapshot date.
// Output products move through ToBuild → InConstruction → Completed;
// input products through ToDemolish → InDemolition → Demolished.
type ConstructionState string

const (
	StateToBuild        ConstructionState = "TO_BUILD"
	StateInConstruction ConstructionState = "IN_CONSTRUCTION"
	StateCompleted      ConstructionState = "COMPLETED"
	StateToDemolish     ConstructionState = "TO_DEMOLISH"
	StateInDemolition   ConstructionState = "IN_DEMOLITION"
	StateDemolished     ConstructionState = "DEMOLISHED"
)

// AllConstructionStates lists every snapshot bucket in lifecycle order.
var AllConstructionStates = []ConstructionState{
	StateToBuild, StateInConstruction, StateCompleted,
	StateToDemolish, StateInDemolition, StateDemolished,
}

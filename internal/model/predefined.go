package model

// PredefinedType classifies a scheduled task by the kind of work it
// represents. Values mirror the IfcTaskTypeEnum vocabulary.
type PredefinedType string

const (
	TypeConstruction PredefinedType = "CONSTRUCTION"
	TypeInstallation PredefinedType = "INSTALLATION"
	TypeDemolition   PredefinedType = "DEMOLITION"
	TypeRemoval      PredefinedType = "REMOVAL"
	TypeDisposal     PredefinedType = "DISPOSAL"
	TypeDismantle    PredefinedType = "DISMANTLE"
	TypeOperation    PredefinedType = "OPERATION"
	TypeMaintenance  PredefinedType = "MAINTENANCE"
	TypeAttendance   PredefinedType = "ATTENDANCE"
	TypeRenovation   PredefinedType = "RENOVATION"
	TypeLogistic     PredefinedType = "LOGISTIC"
	TypeMove         PredefinedType = "MOVE"
	TypeNotDefined   PredefinedType = "NOTDEFINED"
	TypeUserDefined  PredefinedType = "USERDEFINED"
)

// KnownPredefinedTypes lists every type the DEFAULT appearance group must
// carry a profile for.
var KnownPredefinedTypes = []PredefinedType{
	TypeConstruction, TypeInstallation, TypeDemolition, TypeRemoval,
	TypeDisposal, TypeDismantle, TypeOperation, TypeMaintenance,
	TypeAttendance, TypeRenovation, TypeLogistic, TypeMove,
	TypeNotDefined, TypeUserDefined,
}

var constructionFamily = map[PredefinedType]bool{
	TypeConstruction: true,
	TypeInstallation: true,
}

var demolitionFamily = map[PredefinedType]bool{
	TypeDemolition: true,
	TypeRemoval:    true,
	TypeDisposal:   true,
	TypeDismantle:  true,
}

var operationFamily = map[PredefinedType]bool{
	TypeOperation:   true,
	TypeMaintenance: true,
	TypeAttendance:  true,
	TypeRenovation:  true,
}

var logisticFamily = map[PredefinedType]bool{
	TypeLogistic: true,
	TypeMove:     true,
}

func IsConstructionFamily(t PredefinedType) bool { return constructionFamily[t] }
func IsDemolitionFamily(t PredefinedType) bool   { return demolitionFamily[t] }
func IsOperationFamily(t PredefinedType) bool    { return operationFamily[t] }
func IsLogisticFamily(t PredefinedType) bool     { return logisticFamily[t] }

// NormalizeType maps an empty or unknown value to NOTDEFINED so lookups
// always have a usable key.
func NormalizeType(s string) PredefinedType {
	if s == "" {
		return TypeNotDefined
	}
	return PredefinedType(s)
}

package models

import "fmt"

// MissingDataError records a snapshot field that was absent or invalid and
// replaced by a default. It is recoverable.
type MissingDataError struct {
	Field   string
	Default string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("missing %s, using default %s", e.Field, e.Default)
}

// InvalidBuildingReference records a planned building that can never be
// scheduled (unknown type or a level above the building's maximum).
type InvalidBuildingReference struct {
	Building BuildingType
	Level    int
	Reason   string
}

func (e *InvalidBuildingReference) Error() string {
	return fmt.Sprintf("invalid building reference %s level %d: %s", e.Building, e.Level, e.Reason)
}

// ConstraintUnreachable records a settlement condition that never held
// within the simulation horizon.
type ConstraintUnreachable struct {
	Constraint Bottleneck
	Horizon    int
}

func (e *ConstraintUnreachable) Error() string {
	return fmt.Sprintf("%s not reached within %d hours", e.Constraint, e.Horizon)
}

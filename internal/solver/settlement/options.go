// Package settlement predicts when a second village can be founded by
// simulating a snapshot hour by hour: resource projection, culture point
// accumulation and the planned build queue.
package settlement

import (
	"log/slog"

	"github.com/napolitain/settlement-solver/internal/gamedata"
	"github.com/napolitain/settlement-solver/internal/models"
)

// Simulation constants
const (
	// DefaultHorizon is the number of simulated hours (30 days)
	DefaultHorizon = 720

	// HoursPerDay is the culture point tick interval
	HoursPerDay = 24

	// SettlementBuildingLevel is the Residence/Palace level that unlocks settlers
	SettlementBuildingLevel = 10
)

// PrerequisiteCheck reports whether the settler building requirements hold
// for an inventory.
type PrerequisiteCheck func(models.BuildingLevels) bool

// DefaultPrerequisiteCheck requires a Residence or Palace at level 10
func DefaultPrerequisiteCheck(levels models.BuildingLevels) bool {
	return levels.Get(models.Residence) >= SettlementBuildingLevel ||
		levels.Get(models.Palace) >= SettlementBuildingLevel
}

// Options controls one prediction
type Options struct {
	// Horizon in hours. Zero means DefaultHorizon.
	Horizon int

	// ParallelSlots caps concurrent constructions. Zero means unlimited,
	// one is the single build queue of a village.
	ParallelSlots int

	// Celebrations lets the simulation hold small celebrations at day
	// boundaries when a Town Hall exists and the pool affords one.
	Celebrations bool

	// TrainingBuffer adds settler training time to SettlersReadyHours
	TrainingBuffer bool

	// Tables overrides the game constants. Nil means gamedata.Default().
	Tables *gamedata.Tables

	// PrerequisiteCheck overrides the settler building requirement
	PrerequisiteCheck PrerequisiteCheck

	// Logger receives debug output. Nil discards.
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Horizon <= 0 {
		o.Horizon = DefaultHorizon
	}
	if o.ParallelSlots < 0 {
		o.ParallelSlots = 0
	}
	if o.Tables == nil {
		o.Tables = gamedata.Default()
	}
	if o.PrerequisiteCheck == nil {
		o.PrerequisiteCheck = DefaultPrerequisiteCheck
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

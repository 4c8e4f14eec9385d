package settlement

import (
	"time"

	"github.com/napolitain/settlement-solver/internal/models"
)

func ptr[T any](v T) *T { return &v }

var testStart = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// fullSnapshot returns a snapshot with every field present, so no default
// is applied and confidence starts at 1.
func fullSnapshot() *models.GameStateSnapshot {
	return &models.GameStateSnapshot{
		Resources:  &models.Resources{Wood: 750, Clay: 750, Iron: 750, Crop: 750},
		Production: &models.Resources{Wood: 100, Clay: 100, Iron: 100, Crop: 100},
		Buildings: models.BuildingLevels{
			models.MainBuilding: 5,
			models.Warehouse:    9,
			models.Granary:      9,
			models.Woodcutter:   5,
			models.ClayPit:      5,
			models.IronMine:     5,
			models.Cropland:     5,
		},
		CulturePoints: &models.CulturePointsInput{
			Current:   0,
			DailyRate: ptr(50),
			Target:    ptr(500),
		},
		Tribe:             models.Romans,
		ServerSpeed:       1,
		WarehouseCapacity: 9600,
		GranaryCapacity:   9600,
		ServerTime:        testStart,
	}
}

// midGameSnapshot plans the path to a level 10 Residence
func midGameSnapshot() *models.GameStateSnapshot {
	snap := fullSnapshot()
	snap.Production = &models.Resources{Wood: 400, Clay: 400, Iron: 400, Crop: 300}
	snap.PlannedBuildings = []models.PlannedBuilding{
		{BuildingType: models.Residence, TargetLevel: 10, Priority: 1},
		{BuildingType: models.MainBuilding, TargetLevel: 10, Priority: 2},
		{BuildingType: models.Woodcutter, TargetLevel: 8, Priority: 3},
		{BuildingType: models.IronMine, TargetLevel: 8, Priority: 3},
		{BuildingType: models.Warehouse, TargetLevel: 12, Priority: 4},
	}
	return snap
}

func hasEvent(events []Event, et EventType, match func(Event) bool) bool {
	for _, e := range events {
		if e.Type == et && (match == nil || match(e)) {
			return true
		}
	}
	return false
}

package settlement

import (
	"math"

	"github.com/napolitain/settlement-solver/internal/gamedata"
	"github.com/napolitain/settlement-solver/internal/models"
)

// village is the engine-owned mutable state of one simulation
type village struct {
	tables *gamedata.Tables
	speed  float64

	Pool       models.Resources
	Production models.Resources // hourly, crop net of consumption
	Caps       models.StorageCaps
	Buildings  models.BuildingLevels
	CP         models.CulturePointsState
}

func newVillage(in *input, tables *gamedata.Tables) *village {
	return &village{
		tables:     tables,
		speed:      in.Speed,
		Pool:       in.Pool,
		Production: in.Production,
		Caps:       in.Caps,
		Buildings:  in.Buildings.Clone(),
		CP: models.CulturePointsState{
			Current:   in.CPCurrent,
			DailyRate: in.CPRate,
			Target:    in.CPTarget,
		},
	}
}

// complete raises bt by one level and applies what the new level changes:
// field production, storage, crop upkeep and the culture point rate.
func (v *village) complete(bt models.BuildingType) int {
	from := v.Buildings.Get(bt)
	to := from + 1
	v.Buildings[bt] = to

	if rt, ok := models.FieldResource(bt); ok {
		gain := int(math.Round(float64(v.tables.FieldProductionGain(from)) * v.speed))
		v.Production.Set(rt, v.Production.Get(rt)+gain)
	}

	switch bt {
	case models.Warehouse:
		v.Caps.Warehouse += v.tables.StorageForLevel(to) - v.tables.StorageForLevel(from)
	case models.Granary:
		v.Caps.Granary += v.tables.StorageForLevel(to) - v.tables.StorageForLevel(from)
	}

	v.Production.Crop -= v.tables.Population(bt)
	v.CP.DailyRate += v.tables.DailyCulturePoints(bt, to) - v.tables.DailyCulturePoints(bt, from)
	return to
}

package settlement

import (
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/napolitain/settlement-solver/internal/gamedata"
	"github.com/napolitain/settlement-solver/internal/models"
)

var validate = validator.New()

// Confidence penalties per defaulted snapshot field
const (
	penaltyResources      = 0.15
	penaltyProduction     = 0.20
	penaltyBuildings      = 0.10
	penaltyCulturePoints  = 0.20
	penaltyCPRate         = 0.10
	penaltyTribe          = 0.10
	penaltyServerSpeed    = 0.05
	penaltyWarehouse      = 0.05
	penaltyGranary        = 0.05
	penaltyServerTime     = 0.05
	penaltyInvalidPlanned = 0.02
	maxPlannedPenalty     = 0.10
)

// input is a snapshot with every field resolved
type input struct {
	Pool       models.Resources
	Production models.Resources
	Buildings  models.BuildingLevels
	Caps       models.StorageCaps
	CPCurrent  int
	CPRate     int
	CPTarget   int
	Villages   int
	Tribe      models.Tribe
	Speed      float64
	Start      time.Time
	Planned    []models.PlannedBuilding

	SettlerCost models.Resources

	Missing []*models.MissingDataError
	Invalid []*models.InvalidBuildingReference
	penalty float64
}

func (in *input) missing(field, def string, penalty float64) {
	in.Missing = append(in.Missing, &models.MissingDataError{Field: field, Default: def})
	in.penalty += penalty
}

// normalize resolves every optional snapshot field against tables. It never
// fails: absent or invalid values are replaced by defaults and recorded.
func normalize(snap *models.GameStateSnapshot, tables *gamedata.Tables) *input {
	if snap == nil {
		snap = &models.GameStateSnapshot{}
	}
	snap = snap.Clone()
	in := &input{}

	if validate.Var(snap.ServerSpeed, "gt=0,lte=1000") == nil {
		in.Speed = snap.ServerSpeed
	} else {
		in.Speed = 1
		in.missing("serverSpeed", "1", penaltyServerSpeed)
	}

	if snap.Buildings != nil {
		in.Buildings = make(models.BuildingLevels, len(snap.Buildings))
		for bt, level := range snap.Buildings {
			if level < 0 {
				level = 0
			}
			in.Buildings[bt] = level
		}
	} else {
		in.Buildings = models.BuildingLevels{}
		in.missing("buildings", "none built", penaltyBuildings)
	}

	in.Tribe = snap.Tribe
	if validate.Var(string(in.Tribe), "required,oneof=romans teutons gauls egyptians huns") != nil {
		in.Tribe = models.Romans
		in.missing("tribe", string(models.Romans), penaltyTribe)
	}
	in.SettlerCost, _ = tables.SettlerCost(in.Tribe)

	if snap.Resources != nil {
		in.Pool = *snap.Resources
		for _, rt := range []models.ResourceType{models.Wood, models.Clay, models.Iron} {
			if in.Pool.Get(rt) < 0 {
				in.Pool.Set(rt, 0)
				in.missing("resources."+string(rt), "0", 0)
			}
		}
	} else {
		in.missing("resources", "0 each", penaltyResources)
	}

	if snap.Production != nil {
		in.Production = *snap.Production
	} else {
		// a supplied crop consumption replaces the upkeep estimate
		in.Production = fieldProduction(tables, in.Buildings, in.Speed, snap.CropConsumption == nil)
		in.missing("production", "from resource field levels", penaltyProduction)
	}
	if snap.CropConsumption != nil {
		in.Production.Crop -= *snap.CropConsumption
	}

	if snap.WarehouseCapacity > 0 {
		in.Caps.Warehouse = snap.WarehouseCapacity
	} else {
		in.Caps.Warehouse = tables.StorageForLevel(in.Buildings.Get(models.Warehouse))
		in.missing("warehouseCapacity", fmt.Sprint(in.Caps.Warehouse), penaltyWarehouse)
	}
	if snap.GranaryCapacity > 0 {
		in.Caps.Granary = snap.GranaryCapacity
	} else {
		in.Caps.Granary = tables.StorageForLevel(in.Buildings.Get(models.Granary))
		in.missing("granaryCapacity", fmt.Sprint(in.Caps.Granary), penaltyGranary)
	}

	for _, rt := range models.AllResourceTypes() {
		if capacity := in.Caps.For(rt); in.Pool.Get(rt) > capacity {
			in.Pool.Set(rt, capacity)
			in.missing("resources."+string(rt), fmt.Sprint(capacity), 0)
		}
	}

	in.Villages = snap.Villages
	if in.Villages < 1 {
		in.Villages = 1
	}

	yield := DailyYield(tables, in.Buildings)
	if cp := snap.CulturePoints; cp != nil && validate.Struct(cp) == nil {
		in.CPCurrent = cp.Current
		if cp.DailyRate != nil && *cp.DailyRate >= 0 {
			in.CPRate = *cp.DailyRate
		} else {
			in.CPRate = yield
			in.missing("culturePoints.dailyRate", fmt.Sprint(yield), penaltyCPRate)
		}
		if cp.Target != nil && *cp.Target > 0 {
			in.CPTarget = *cp.Target
		} else {
			in.CPTarget = tables.CPTarget(in.Villages)
		}
	} else {
		in.CPRate = yield
		in.CPTarget = tables.CPTarget(in.Villages)
		in.missing("culturePoints", fmt.Sprintf("0 current, %d per day", yield), penaltyCulturePoints)
	}

	if snap.ServerTime.IsZero() {
		in.Start = time.Unix(0, 0).UTC()
		in.missing("serverTime", in.Start.Format(time.RFC3339), penaltyServerTime)
	} else {
		in.Start = snap.ServerTime.UTC()
	}

	in.Planned = snap.PlannedBuildings
	plannedPenalty := 0.0
	for _, p := range in.Planned {
		if ref := checkPlanned(tables, p); ref != nil {
			in.Invalid = append(in.Invalid, ref)
			plannedPenalty += penaltyInvalidPlanned
		}
	}
	in.penalty += math.Min(plannedPenalty, maxPlannedPenalty)

	return in
}

// checkPlanned flags entries the scheduler can never complete
func checkPlanned(tables *gamedata.Tables, p models.PlannedBuilding) *models.InvalidBuildingReference {
	b := tables.Building(p.BuildingType)
	switch {
	case b == nil:
		return &models.InvalidBuildingReference{Building: p.BuildingType, Level: p.TargetLevel, Reason: "unknown building type"}
	case p.TargetLevel < 1:
		return &models.InvalidBuildingReference{Building: p.BuildingType, Level: p.TargetLevel, Reason: "target level must be positive"}
	case p.TargetLevel > b.MaxLevel:
		return &models.InvalidBuildingReference{Building: p.BuildingType, Level: p.TargetLevel, Reason: fmt.Sprintf("max level is %d", b.MaxLevel)}
	}
	return nil
}

// fieldProduction estimates hourly production from resource field levels.
// With upkeep set, crop is net of the population of every built level.
func fieldProduction(tables *gamedata.Tables, buildings models.BuildingLevels, speed float64, upkeep bool) models.Resources {
	var prod models.Resources
	for _, bt := range []models.BuildingType{models.Woodcutter, models.ClayPit, models.IronMine, models.Cropland} {
		rt, _ := models.FieldResource(bt)
		level := buildings.Get(bt)
		if level >= len(tables.FieldProduction) {
			level = len(tables.FieldProduction) - 1
		}
		if level < 0 {
			continue
		}
		prod.Set(rt, int(math.Round(float64(tables.FieldProduction[level])*speed)))
	}

	if !upkeep {
		return prod
	}
	population := 0
	buildings.EachNonZero(func(bt models.BuildingType, level int) {
		population += tables.Population(bt) * level
	})
	prod.Crop -= population
	return prod
}

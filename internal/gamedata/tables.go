// Package gamedata holds the published game constants: building costs and
// growth factors, culture point yields, settler costs, storage and field
// production curves.
package gamedata

import "github.com/napolitain/settlement-solver/internal/models"

// Building describes one building kind
type Building struct {
	Type          models.BuildingType
	Name          string
	BaseCost      models.Resources
	GrowthFactor  float64 // cost multiplier per level
	CulturePoints int     // base CP per level
	Population    int     // population (crop upkeep) added per level
	MaxLevel      int
	Prerequisites map[models.BuildingType]int // building -> minimum level
	Excludes      []models.BuildingType       // cannot coexist in one village
}

// Tables is the full set of game constants used by a simulation. Callers get
// a fresh copy from Default, so overriding one never affects another run.
type Tables struct {
	Buildings       map[models.BuildingType]*Building
	SettlerCosts    map[models.Tribe]models.Resources
	StorageCapacity []int // index = warehouse/granary level
	FieldProduction []int // index = resource field level, per hour at 1x
	CPThresholds    []int // index = number of villages owned

	CelebrationCost       models.Resources
	CelebrationMultiplier int

	// SettlerTrainingHours is the time to train the settler party at 1x speed
	SettlerTrainingHours float64
}

const (
	infrastructureGrowth = 1.28
	fieldGrowth          = 1.67
)

// Default returns the published T4 constant tables
func Default() *Tables {
	return &Tables{
		Buildings: defaultBuildings(),
		SettlerCosts: map[models.Tribe]models.Resources{
			models.Romans:    {Wood: 5800, Clay: 5300, Iron: 7200, Crop: 5500},
			models.Teutons:   {Wood: 7200, Clay: 5500, Iron: 5800, Crop: 6500},
			models.Gauls:     {Wood: 5500, Clay: 7000, Iron: 5300, Crop: 4900},
			models.Egyptians: {Wood: 5500, Clay: 6200, Iron: 5600, Crop: 5300},
			models.Huns:      {Wood: 5800, Clay: 5300, Iron: 7200, Crop: 5500},
		},
		StorageCapacity: []int{
			800, 1200, 1700, 2300, 3100, 4000, 5000, 6300, 7800, 9600, 11800,
			14400, 17600, 21400, 26000, 31600, 38300, 46400, 56100, 67900, 82000,
		},
		FieldProduction: []int{
			2, 5, 8, 12, 17, 23, 30, 38, 47, 57, 68,
			80, 93, 107, 122, 138, 155, 173, 192, 212, 233,
		},
		CPThresholds:          []int{0, 200, 500, 1000, 2000, 3500, 6000, 10000, 15000, 25000},
		CelebrationCost:       models.Resources{Wood: 6400, Clay: 6650, Iron: 5940, Crop: 1340},
		CelebrationMultiplier: 2,
		SettlerTrainingHours:  10,
	}
}

func defaultBuildings() map[models.BuildingType]*Building {
	list := []*Building{
		{Type: models.Woodcutter, Name: "Woodcutter", BaseCost: models.Resources{Wood: 40, Clay: 100, Iron: 50, Crop: 60}, GrowthFactor: fieldGrowth, CulturePoints: 1, Population: 2, MaxLevel: 20},
		{Type: models.ClayPit, Name: "Clay Pit", BaseCost: models.Resources{Wood: 80, Clay: 40, Iron: 80, Crop: 50}, GrowthFactor: fieldGrowth, CulturePoints: 1, Population: 2, MaxLevel: 20},
		{Type: models.IronMine, Name: "Iron Mine", BaseCost: models.Resources{Wood: 100, Clay: 80, Iron: 30, Crop: 60}, GrowthFactor: fieldGrowth, CulturePoints: 1, Population: 3, MaxLevel: 20},
		{Type: models.Cropland, Name: "Cropland", BaseCost: models.Resources{Wood: 70, Clay: 90, Iron: 70, Crop: 20}, GrowthFactor: fieldGrowth, CulturePoints: 1, Population: 0, MaxLevel: 20},
		{Type: models.MainBuilding, Name: "Main Building", BaseCost: models.Resources{Wood: 70, Clay: 40, Iron: 60, Crop: 20}, GrowthFactor: infrastructureGrowth, CulturePoints: 2, Population: 2, MaxLevel: 20},
		{Type: models.RallyPoint, Name: "Rally Point", BaseCost: models.Resources{Wood: 110, Clay: 160, Iron: 90, Crop: 70}, GrowthFactor: infrastructureGrowth, CulturePoints: 1, Population: 1, MaxLevel: 20},
		{
			Type: models.Warehouse, Name: "Warehouse", BaseCost: models.Resources{Wood: 130, Clay: 160, Iron: 90, Crop: 40}, GrowthFactor: infrastructureGrowth, CulturePoints: 1, Population: 1, MaxLevel: 20,
			Prerequisites: map[models.BuildingType]int{models.MainBuilding: 1},
		},
		{
			Type: models.Granary, Name: "Granary", BaseCost: models.Resources{Wood: 80, Clay: 100, Iron: 70, Crop: 20}, GrowthFactor: infrastructureGrowth, CulturePoints: 1, Population: 1, MaxLevel: 20,
			Prerequisites: map[models.BuildingType]int{models.MainBuilding: 1},
		},
		{Type: models.Cranny, Name: "Cranny", BaseCost: models.Resources{Wood: 40, Clay: 50, Iron: 30, Crop: 10}, GrowthFactor: infrastructureGrowth, CulturePoints: 1, Population: 0, MaxLevel: 10},
		{
			Type: models.Marketplace, Name: "Marketplace", BaseCost: models.Resources{Wood: 80, Clay: 70, Iron: 120, Crop: 70}, GrowthFactor: infrastructureGrowth, CulturePoints: 3, Population: 4, MaxLevel: 20,
			Prerequisites: map[models.BuildingType]int{models.MainBuilding: 3, models.Warehouse: 1, models.Granary: 1},
		},
		{
			Type: models.Embassy, Name: "Embassy", BaseCost: models.Resources{Wood: 180, Clay: 130, Iron: 150, Crop: 80}, GrowthFactor: infrastructureGrowth, CulturePoints: 4, Population: 3, MaxLevel: 20,
			Prerequisites: map[models.BuildingType]int{models.MainBuilding: 1},
		},
		{
			Type: models.Barracks, Name: "Barracks", BaseCost: models.Resources{Wood: 210, Clay: 140, Iron: 260, Crop: 120}, GrowthFactor: infrastructureGrowth, CulturePoints: 1, Population: 4, MaxLevel: 20,
			Prerequisites: map[models.BuildingType]int{models.MainBuilding: 3, models.RallyPoint: 1},
		},
		{
			Type: models.Academy, Name: "Academy", BaseCost: models.Resources{Wood: 220, Clay: 160, Iron: 90, Crop: 40}, GrowthFactor: infrastructureGrowth, CulturePoints: 4, Population: 4, MaxLevel: 20,
			Prerequisites: map[models.BuildingType]int{models.MainBuilding: 3, models.Barracks: 3},
		},
		{
			Type: models.TownHall, Name: "Town Hall", BaseCost: models.Resources{Wood: 1250, Clay: 1110, Iron: 1260, Crop: 600}, GrowthFactor: infrastructureGrowth, CulturePoints: 5, Population: 4, MaxLevel: 20,
			Prerequisites: map[models.BuildingType]int{models.MainBuilding: 10, models.Academy: 10},
		},
		{
			Type: models.Residence, Name: "Residence", BaseCost: models.Resources{Wood: 580, Clay: 460, Iron: 350, Crop: 180}, GrowthFactor: infrastructureGrowth, CulturePoints: 2, Population: 1, MaxLevel: 20,
			Prerequisites: map[models.BuildingType]int{models.MainBuilding: 5},
			Excludes:      []models.BuildingType{models.Palace},
		},
		{
			Type: models.Palace, Name: "Palace", BaseCost: models.Resources{Wood: 550, Clay: 800, Iron: 750, Crop: 250}, GrowthFactor: infrastructureGrowth, CulturePoints: 5, Population: 1, MaxLevel: 20,
			Prerequisites: map[models.BuildingType]int{models.MainBuilding: 5, models.Embassy: 1},
			Excludes:      []models.BuildingType{models.Residence},
		},
		{
			Type: models.HeroMansion, Name: "Hero Mansion", BaseCost: models.Resources{Wood: 700, Clay: 670, Iron: 700, Crop: 240}, GrowthFactor: infrastructureGrowth, CulturePoints: 2, Population: 2, MaxLevel: 20,
			Prerequisites: map[models.BuildingType]int{models.MainBuilding: 3, models.RallyPoint: 1},
		},
	}

	buildings := make(map[models.BuildingType]*Building, len(list))
	for _, b := range list {
		buildings[b.Type] = b
	}
	return buildings
}

// Building returns the definition for bt, or nil if unknown
func (t *Tables) Building(bt models.BuildingType) *Building {
	return t.Buildings[bt]
}

// SettlerCost returns the cost of the settler party for a tribe
func (t *Tables) SettlerCost(tribe models.Tribe) (models.Resources, bool) {
	cost, ok := t.SettlerCosts[tribe]
	return cost, ok
}

// CPTarget returns the culture points needed to found the next village when
// the player already owns villages villages.
func (t *Tables) CPTarget(villages int) int {
	if len(t.CPThresholds) == 0 {
		return 0
	}
	if villages < 1 {
		villages = 1
	}
	if villages >= len(t.CPThresholds) {
		return t.CPThresholds[len(t.CPThresholds)-1]
	}
	return t.CPThresholds[villages]
}

// StorageForLevel returns warehouse/granary capacity at a level
func (t *Tables) StorageForLevel(level int) int {
	if len(t.StorageCapacity) == 0 {
		return 0
	}
	if level < 0 {
		level = 0
	}
	if level >= len(t.StorageCapacity) {
		return t.StorageCapacity[len(t.StorageCapacity)-1]
	}
	return t.StorageCapacity[level]
}

// StorageLevelFor returns the lowest storage level whose capacity holds amount,
// or -1 when no level is large enough.
func (t *Tables) StorageLevelFor(amount int) int {
	for level, capacity := range t.StorageCapacity {
		if capacity >= amount {
			return level
		}
	}
	return -1
}

// FieldProductionGain returns the extra hourly production (1x) gained by
// upgrading a resource field from level to level+1.
func (t *Tables) FieldProductionGain(level int) int {
	if level < 0 || level+1 >= len(t.FieldProduction) {
		return 0
	}
	return t.FieldProduction[level+1] - t.FieldProduction[level]
}

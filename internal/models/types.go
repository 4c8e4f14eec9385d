package models

import "sort"

// ResourceType represents the different resource types in the game
type ResourceType string

const (
	Wood ResourceType = "wood"
	Clay ResourceType = "clay"
	Iron ResourceType = "iron"
	Crop ResourceType = "crop"
)

// AllResourceTypes returns all resource types in deterministic order
func AllResourceTypes() []ResourceType {
	return []ResourceType{Wood, Clay, Iron, Crop}
}

// Resources is a four-field resource vector. It is used for stock pools,
// hourly production rates and costs.
type Resources struct {
	Wood int `json:"wood"`
	Clay int `json:"clay"`
	Iron int `json:"iron"`
	Crop int `json:"crop"`
}

// Get returns the amount for a specific resource type
func (r Resources) Get(rt ResourceType) int {
	switch rt {
	case Wood:
		return r.Wood
	case Clay:
		return r.Clay
	case Iron:
		return r.Iron
	case Crop:
		return r.Crop
	}
	return 0
}

// Set sets the amount for a specific resource type
func (r *Resources) Set(rt ResourceType, amount int) {
	switch rt {
	case Wood:
		r.Wood = amount
	case Clay:
		r.Clay = amount
	case Iron:
		r.Iron = amount
	case Crop:
		r.Crop = amount
	}
}

// Add returns the field-wise sum
func (r Resources) Add(o Resources) Resources {
	return Resources{
		Wood: r.Wood + o.Wood,
		Clay: r.Clay + o.Clay,
		Iron: r.Iron + o.Iron,
		Crop: r.Crop + o.Crop,
	}
}

// Sub returns the field-wise difference
func (r Resources) Sub(o Resources) Resources {
	return Resources{
		Wood: r.Wood - o.Wood,
		Clay: r.Clay - o.Clay,
		Iron: r.Iron - o.Iron,
		Crop: r.Crop - o.Crop,
	}
}

// Covers reports whether every field is at least the matching field of cost
func (r Resources) Covers(cost Resources) bool {
	return r.Wood >= cost.Wood &&
		r.Clay >= cost.Clay &&
		r.Iron >= cost.Iron &&
		r.Crop >= cost.Crop
}

// Total returns the sum of all four fields
func (r Resources) Total() int {
	return r.Wood + r.Clay + r.Iron + r.Crop
}

// StorageCaps holds the warehouse (wood, clay, iron) and granary (crop) capacity
type StorageCaps struct {
	Warehouse int `json:"warehouse"`
	Granary   int `json:"granary"`
}

// For returns the cap that applies to a resource type
func (c StorageCaps) For(rt ResourceType) int {
	if rt == Crop {
		return c.Granary
	}
	return c.Warehouse
}

// BuildingType identifies a building kind
type BuildingType string

const (
	Woodcutter   BuildingType = "woodcutter"
	ClayPit      BuildingType = "clay_pit"
	IronMine     BuildingType = "iron_mine"
	Cropland     BuildingType = "cropland"
	MainBuilding BuildingType = "main_building"
	RallyPoint   BuildingType = "rally_point"
	Warehouse    BuildingType = "warehouse"
	Granary      BuildingType = "granary"
	Cranny       BuildingType = "cranny"
	Marketplace  BuildingType = "marketplace"
	Embassy      BuildingType = "embassy"
	Barracks     BuildingType = "barracks"
	Academy      BuildingType = "academy"
	TownHall     BuildingType = "town_hall"
	Residence    BuildingType = "residence"
	Palace       BuildingType = "palace"
	HeroMansion  BuildingType = "hero_mansion"
)

// AllBuildingTypes returns all known building types in deterministic order
func AllBuildingTypes() []BuildingType {
	return []BuildingType{
		Woodcutter, ClayPit, IronMine, Cropland,
		MainBuilding, RallyPoint, Warehouse, Granary, Cranny,
		Marketplace, Embassy, Barracks, Academy, TownHall,
		Residence, Palace, HeroMansion,
	}
}

// Valid reports whether bt is a known building type
func (bt BuildingType) Valid() bool {
	for _, known := range AllBuildingTypes() {
		if bt == known {
			return true
		}
	}
	return false
}

// FieldResource returns the resource a field produces and whether bt is a resource field
func FieldResource(bt BuildingType) (ResourceType, bool) {
	switch bt {
	case Woodcutter:
		return Wood, true
	case ClayPit:
		return Clay, true
	case IronMine:
		return Iron, true
	case Cropland:
		return Crop, true
	}
	return "", false
}

// BuildingLevels maps a building type to its current level (0 = not built)
type BuildingLevels map[BuildingType]int

// Get returns the level for a building type (0 when absent)
func (b BuildingLevels) Get(bt BuildingType) int {
	return b[bt]
}

// Clone returns an independent copy
func (b BuildingLevels) Clone() BuildingLevels {
	out := make(BuildingLevels, len(b))
	for bt, level := range b {
		out[bt] = level
	}
	return out
}

// Types returns the building types present, sorted
func (b BuildingLevels) Types() []BuildingType {
	types := make([]BuildingType, 0, len(b))
	for bt := range b {
		types = append(types, bt)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// EachNonZero iterates over built buildings in deterministic order
func (b BuildingLevels) EachNonZero(fn func(BuildingType, int)) {
	for _, bt := range b.Types() {
		if level := b[bt]; level > 0 {
			fn(bt, level)
		}
	}
}

// Tribe is the player's faction
type Tribe string

const (
	Romans    Tribe = "romans"
	Teutons   Tribe = "teutons"
	Gauls     Tribe = "gauls"
	Egyptians Tribe = "egyptians"
	Huns      Tribe = "huns"
)

// AllTribes returns all tribes in deterministic order
func AllTribes() []Tribe {
	return []Tribe{Romans, Teutons, Gauls, Egyptians, Huns}
}

// Valid reports whether t is a known tribe
func (t Tribe) Valid() bool {
	for _, known := range AllTribes() {
		if t == known {
			return true
		}
	}
	return false
}

// PlannedBuilding is a requested upgrade. The scheduler may never reach it
// within the simulation horizon.
type PlannedBuilding struct {
	BuildingType BuildingType `json:"buildingType"`
	TargetLevel  int          `json:"targetLevel"`
	Priority     int          `json:"priority"`
}

// CulturePointsState tracks culture point accumulation during a simulation
type CulturePointsState struct {
	Current   int `json:"current"`
	DailyRate int `json:"dailyRate"`
	Target    int `json:"target"`
}

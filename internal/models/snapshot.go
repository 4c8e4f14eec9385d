package models

import "time"

// CulturePointsInput is the culture point block of a snapshot
type CulturePointsInput struct {
	Current   int  `json:"current" validate:"gte=0"`
	DailyRate *int `json:"dailyRate,omitempty"`
	Target    *int `json:"target,omitempty"`
}

// GameStateSnapshot is the scraped game state handed to the engine.
// Pointer and zero-valued fields are optional: the engine substitutes a
// documented default for each missing field and lowers its confidence.
type GameStateSnapshot struct {
	Resources         *Resources          `json:"resources,omitempty"`
	Production        *Resources          `json:"production,omitempty"`
	CropConsumption   *int                `json:"cropConsumption,omitempty"`
	Buildings         BuildingLevels      `json:"buildings,omitempty"`
	CulturePoints     *CulturePointsInput `json:"culturePoints,omitempty"`
	Villages          int                 `json:"villages,omitempty"`
	Tribe             Tribe               `json:"tribe,omitempty"`
	ServerSpeed       float64             `json:"serverSpeed,omitempty"`
	WarehouseCapacity int                 `json:"warehouseCapacity,omitempty"`
	GranaryCapacity   int                 `json:"granaryCapacity,omitempty"`
	ServerTime        time.Time           `json:"serverTime,omitzero"`
	PlannedBuildings  []PlannedBuilding   `json:"plannedBuildings,omitempty"`
}

// Clone returns a deep copy so the caller's snapshot is never shared
func (s *GameStateSnapshot) Clone() *GameStateSnapshot {
	if s == nil {
		return nil
	}
	out := *s
	if s.Resources != nil {
		r := *s.Resources
		out.Resources = &r
	}
	if s.Production != nil {
		p := *s.Production
		out.Production = &p
	}
	if s.CropConsumption != nil {
		c := *s.CropConsumption
		out.CropConsumption = &c
	}
	if s.Buildings != nil {
		out.Buildings = s.Buildings.Clone()
	}
	if s.CulturePoints != nil {
		cp := *s.CulturePoints
		if s.CulturePoints.DailyRate != nil {
			rate := *s.CulturePoints.DailyRate
			cp.DailyRate = &rate
		}
		if s.CulturePoints.Target != nil {
			target := *s.CulturePoints.Target
			cp.Target = &target
		}
		out.CulturePoints = &cp
	}
	if s.PlannedBuildings != nil {
		out.PlannedBuildings = append([]PlannedBuilding(nil), s.PlannedBuildings...)
	}
	return &out
}

package gamedata

import (
	"fmt"
	"math"
	"sort"

	"github.com/napolitain/settlement-solver/internal/models"
)

// Main Building construction speed-up
const (
	maxMainBuildingReduction = 0.70
	mainBuildingReductionPer = 0.03
)

// Cost returns the cost of upgrading bt from currentLevel to currentLevel+1
func (t *Tables) Cost(bt models.BuildingType, currentLevel int) (models.Resources, bool) {
	b := t.Buildings[bt]
	if b == nil {
		return models.Resources{}, false
	}
	mult := math.Pow(b.GrowthFactor, float64(currentLevel))
	return models.Resources{
		Wood: int(math.Round(float64(b.BaseCost.Wood) * mult)),
		Clay: int(math.Round(float64(b.BaseCost.Clay) * mult)),
		Iron: int(math.Round(float64(b.BaseCost.Iron) * mult)),
		Crop: int(math.Round(float64(b.BaseCost.Crop) * mult)),
	}, true
}

// BuildSeconds returns the construction time of bt's target level in seconds.
// Higher Main Building levels shorten construction, up to 70%.
func (t *Tables) BuildSeconds(bt models.BuildingType, level, mainBuildingLevel int, serverSpeed float64) int {
	b := t.Buildings[bt]
	if b == nil || level < 1 {
		return 0
	}
	if serverSpeed <= 0 {
		serverSpeed = 1
	}

	levelCost := float64(b.BaseCost.Total()) * math.Pow(b.GrowthFactor, float64(level-1))

	var perUnit float64
	switch {
	case levelCost < 200:
		perUnit = 10
	case levelCost < 2000:
		perUnit = 15
	case levelCost < 10000:
		perUnit = 20
	default:
		perUnit = 25
	}

	reduction := math.Min(maxMainBuildingReduction, float64(mainBuildingLevel)*mainBuildingReductionPer)
	return int(math.Round(levelCost * perUnit * (1 - reduction) / serverSpeed))
}

// DailyCulturePoints returns the CP per day produced by bt at level:
// baseCP * (1 + 2 + ... + level).
func (t *Tables) DailyCulturePoints(bt models.BuildingType, level int) int {
	b := t.Buildings[bt]
	if b == nil || level <= 0 {
		return 0
	}
	return b.CulturePoints * level * (level + 1) / 2
}

// Population returns the crop upkeep added by one level of bt
func (t *Tables) Population(bt models.BuildingType) int {
	if b := t.Buildings[bt]; b != nil {
		return b.Population
	}
	return 0
}

// MaxLevel returns the highest level of bt, 0 for unknown types
func (t *Tables) MaxLevel(bt models.BuildingType) int {
	if b := t.Buildings[bt]; b != nil {
		return b.MaxLevel
	}
	return 0
}

// Excludes returns the buildings that cannot coexist with bt
func (t *Tables) Excludes(bt models.BuildingType) []models.BuildingType {
	if b := t.Buildings[bt]; b != nil {
		return b.Excludes
	}
	return nil
}

// CheckPrerequisites returns every unmet requirement for building bt on top of
// levels. An empty result means bt may be started.
func (t *Tables) CheckPrerequisites(bt models.BuildingType, levels models.BuildingLevels) []string {
	b := t.Buildings[bt]
	if b == nil {
		return []string{fmt.Sprintf("unknown building %s", bt)}
	}

	var unmet []string

	reqs := make([]models.BuildingType, 0, len(b.Prerequisites))
	for req := range b.Prerequisites {
		reqs = append(reqs, req)
	}
	sort.Slice(reqs, func(i, j int) bool { return reqs[i] < reqs[j] })

	for _, req := range reqs {
		need := b.Prerequisites[req]
		if have := levels.Get(req); have < need {
			unmet = append(unmet, fmt.Sprintf("requires %s level %d (have %d)", req, need, have))
		}
	}

	for _, ex := range b.Excludes {
		if levels.Get(ex) > 0 {
			unmet = append(unmet, fmt.Sprintf("cannot coexist with %s", ex))
		}
	}

	return unmet
}

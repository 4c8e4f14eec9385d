package settlement

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/napolitain/settlement-solver/internal/gamedata"
	"github.com/napolitain/settlement-solver/internal/models"
)

const maxSuggestions = 3

// Recommender turns an analysed timeline into actions and warnings. It does
// not simulate; the same inputs always produce the same text.
type Recommender struct {
	Tables      *gamedata.Tables
	SettlerCost models.Resources
	CPTarget    int
	Speed       float64
}

// Recommend returns prioritized actions (1 = most urgent) and warnings
func (r *Recommender) Recommend(p *models.SettlementPrediction, timeline Timeline) ([]models.Recommendation, []string) {
	var actions []models.Recommendation
	add := func(action, reason string) {
		actions = append(actions, models.Recommendation{
			Priority: len(actions) + 1,
			Action:   action,
			Reason:   reason,
		})
	}

	final := timeline.Final()

	switch p.Bottleneck {
	case models.BottleneckCulturePoints:
		r.culturePointActions(final, add)
	case models.BottleneckResources:
		r.resourceActions(p, final, add)
	case models.BottleneckBuildings:
		r.buildingActions(final, add)
	}
	for _, e := range uniqueBlocked(timeline) {
		add(fmt.Sprintf("Resolve blocked %s level %d", formatBuilding(e.Building), e.Level), e.Reason)
	}
	r.summary(p, add)

	return actions, r.warnings(p, timeline)
}

func (r *Recommender) culturePointActions(final TimelineEntry, add func(string, string)) {
	type candidate struct {
		bt      models.BuildingType
		level   int
		gain    int
		cost    int
		perCost float64
	}

	var candidates []candidate
	for _, bt := range models.AllBuildingTypes() {
		level := final.Buildings.Get(bt)
		b := r.Tables.Building(bt)
		if b == nil || level >= b.MaxLevel {
			continue
		}
		if len(r.Tables.CheckPrerequisites(bt, final.Buildings)) > 0 {
			continue
		}
		gain := r.Tables.DailyCulturePoints(bt, level+1) - r.Tables.DailyCulturePoints(bt, level)
		cost, _ := r.Tables.Cost(bt, level)
		if gain <= 0 || cost.Total() <= 0 {
			continue
		}
		candidates = append(candidates, candidate{
			bt: bt, level: level + 1, gain: gain, cost: cost.Total(),
			perCost: float64(gain) / float64(cost.Total()),
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].perCost > candidates[j].perCost
	})

	for i, c := range candidates {
		if i == maxSuggestions {
			break
		}
		add(
			fmt.Sprintf("Upgrade %s to level %d", formatBuilding(c.bt), c.level),
			fmt.Sprintf("+%d culture points per day for %d resources", c.gain, c.cost),
		)
	}

	if final.Buildings.Get(models.TownHall) > 0 {
		cc := r.Tables.CelebrationCost
		add("Hold a small celebration in the Town Hall",
			fmt.Sprintf("multiplies one day of culture points by %d for %d/%d/%d/%d",
				r.Tables.CelebrationMultiplier, cc.Wood, cc.Clay, cc.Iron, cc.Crop))
	} else {
		unmet := r.Tables.CheckPrerequisites(models.TownHall, final.Buildings)
		reason := "enables celebrations"
		if len(unmet) > 0 {
			reason += ", " + strings.Join(unmet, "; ")
		}
		add("Build a Town Hall", reason)
	}
}

func (r *Recommender) resourceActions(p *models.SettlementPrediction, final TimelineEntry, add func(string, string)) {
	if lr := p.Breakdown.LimitingResource; lr != "" {
		need := r.SettlerCost.Get(lr)
		add(
			fmt.Sprintf("Prioritise %s production", lr),
			fmt.Sprintf("settlers need %d %s, %d in stock at hour %d", need, lr, final.Resources.Get(lr), final.Hour),
		)
	}

	type field struct {
		bt      models.BuildingType
		level   int
		payback float64
	}
	var fields []field
	for _, bt := range []models.BuildingType{models.Woodcutter, models.ClayPit, models.IronMine, models.Cropland} {
		level := final.Buildings.Get(bt)
		if level >= r.Tables.MaxLevel(bt) {
			continue
		}
		gain := float64(r.Tables.FieldProductionGain(level)) * r.Speed
		if gain <= 0 {
			continue
		}
		cost, _ := r.Tables.Cost(bt, level)
		fields = append(fields, field{bt: bt, level: level + 1, payback: float64(cost.Total()) / gain})
	}
	sort.SliceStable(fields, func(i, j int) bool { return fields[i].payback < fields[j].payback })
	for i, f := range fields {
		if i == maxSuggestions {
			break
		}
		add(
			fmt.Sprintf("Upgrade %s to level %d", formatBuilding(f.bt), f.level),
			fmt.Sprintf("pays for itself in %d hours", int(math.Ceil(f.payback))),
		)
	}

	r.storageActions(final, add)
}

// storageActions suggests storage upgrades when a settler cost does not fit
func (r *Recommender) storageActions(final TimelineEntry, add func(string, string)) {
	warehouseNeed := max(r.SettlerCost.Wood, r.SettlerCost.Clay, r.SettlerCost.Iron)
	if warehouseNeed > final.Caps.Warehouse {
		r.storageAction(models.Warehouse, warehouseNeed, final.Caps.Warehouse, add)
	}
	if r.SettlerCost.Crop > final.Caps.Granary {
		r.storageAction(models.Granary, r.SettlerCost.Crop, final.Caps.Granary, add)
	}
}

func (r *Recommender) storageAction(bt models.BuildingType, need, capacity int, add func(string, string)) {
	level := r.Tables.StorageLevelFor(need)
	if level < 0 {
		add(fmt.Sprintf("Settler cost exceeds the largest %s", formatBuilding(bt)),
			fmt.Sprintf("needs %d, maximum is %d", need, r.Tables.StorageForLevel(len(r.Tables.StorageCapacity)-1)))
		return
	}
	add(
		fmt.Sprintf("Upgrade %s to level %d", formatBuilding(bt), level),
		fmt.Sprintf("settlers need %d but storage holds %d", need, capacity),
	)
}

func (r *Recommender) buildingActions(final TimelineEntry, add func(string, string)) {
	target := models.Residence
	if final.Buildings.Get(models.Palace) > 0 {
		target = models.Palace
	}

	for _, req := range r.Tables.CheckPrerequisites(target, final.Buildings) {
		add(fmt.Sprintf("Meet %s prerequisite", formatBuilding(target)), req)
	}
	if level := final.Buildings.Get(target); level < SettlementBuildingLevel {
		add(
			fmt.Sprintf("Upgrade %s to level %d", formatBuilding(target), SettlementBuildingLevel),
			fmt.Sprintf("settlers require it, currently level %d", level),
		)
	}
}

func (r *Recommender) summary(p *models.SettlementPrediction, add func(string, string)) {
	line := func(name string, hour int, reached bool) {
		if reached {
			add(fmt.Sprintf("%s ready at hour %d", name, hour), "")
		} else {
			add(fmt.Sprintf("%s not reached within %d hours", name, p.Horizon), "")
		}
	}
	b := p.Breakdown
	line("Culture points", b.CPHour, b.CPReached)
	line("Settler resources", b.ResourceHour, b.ResourcesReached)
	line("Settlement buildings", b.BuildingHour, b.BuildingsReached)
}

// warnings scans the timeline for starvation, overflow and blocked upgrades,
// then names every constraint that never resolved.
func (r *Recommender) warnings(p *models.SettlementPrediction, timeline Timeline) []string {
	warnings := []string{}

	if hour, ok := timeline.FirstHour(func(e TimelineEntry) bool { return e.Resources.Crop < 0 }); ok {
		warnings = append(warnings, fmt.Sprintf("Crop shortage predicted at hour %d: troops will starve", hour))
	}

	for _, rt := range models.AllResourceTypes() {
		hour, _, ok := timeline.FirstEvent(func(e Event) bool {
			return e.Type == EventOverflow && e.Resource == rt
		})
		if !ok {
			continue
		}
		store := models.Warehouse
		if rt == models.Crop {
			store = models.Granary
		}
		warnings = append(warnings, fmt.Sprintf("%s overflows storage at hour %d: spend it or upgrade the %s",
			capitalize(string(rt)), hour, formatBuilding(store)))
	}

	for _, e := range uniqueBlocked(timeline) {
		warnings = append(warnings, fmt.Sprintf("Planned %s level %d blocked: %s", formatBuilding(e.Building), e.Level, e.Reason))
	}

	b := p.Breakdown
	if !b.CPReached {
		warnings = append(warnings, fmt.Sprintf("Culture point target %d not reached within %d hours", r.CPTarget, p.Horizon))
	}
	if !b.ResourcesReached {
		warnings = append(warnings, fmt.Sprintf("Settler resources not reached within %d hours", p.Horizon))
	}
	if !b.BuildingsReached {
		warnings = append(warnings, fmt.Sprintf("Settlement buildings not ready within %d hours", p.Horizon))
	}

	return warnings
}

// uniqueBlocked returns the first blocked event per building and level
func uniqueBlocked(timeline Timeline) []Event {
	type key struct {
		bt    models.BuildingType
		level int
	}
	seen := make(map[key]bool)
	var out []Event
	for _, e := range timeline.Events(EventBlocked) {
		k := key{e.Building, e.Level}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, e)
	}
	return out
}

func formatBuilding(bt models.BuildingType) string {
	parts := strings.Split(string(bt), "_")
	for i, p := range parts {
		parts[i] = capitalize(p)
	}
	return strings.Join(parts, " ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

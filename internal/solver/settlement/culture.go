package settlement

import (
	"github.com/napolitain/settlement-solver/internal/gamedata"
	"github.com/napolitain/settlement-solver/internal/models"
)

// DailyYield returns the culture points produced per day by an inventory.
// Each building contributes baseCP * level for every level it has reached.
func DailyYield(tables *gamedata.Tables, inventory models.BuildingLevels) int {
	total := 0
	inventory.EachNonZero(func(bt models.BuildingType, level int) {
		total += tables.DailyCulturePoints(bt, level)
	})
	return total
}

// canCelebrate reports whether a small celebration can be held at a day
// boundary. Eligibility is checked every day; nothing is reserved.
func canCelebrate(tables *gamedata.Tables, cp models.CulturePointsState, pool models.Resources, inventory models.BuildingLevels) bool {
	if cp.Current >= cp.Target {
		return false
	}
	if inventory.Get(models.TownHall) < 1 {
		return false
	}
	return pool.Covers(tables.CelebrationCost)
}

// dayBoundary applies one day of culture points, holding a celebration first
// when allowed. It returns the new pool and CP state plus the events.
func dayBoundary(
	tables *gamedata.Tables,
	celebrations bool,
	pool models.Resources,
	cp models.CulturePointsState,
	inventory models.BuildingLevels,
) (models.Resources, models.CulturePointsState, []Event) {
	var events []Event

	gain := cp.DailyRate
	if gain < 0 {
		gain = 0
	}

	if celebrations && canCelebrate(tables, cp, pool, inventory) {
		pool = pool.Sub(tables.CelebrationCost)
		bonus := gain * (tables.CelebrationMultiplier - 1)
		if bonus < 0 {
			bonus = 0
		}
		gain += bonus
		events = append(events, Event{
			Type:     EventCelebration,
			Building: models.TownHall,
			Amount:   bonus,
		})
	}

	cp.Current += gain
	events = append(events, Event{Type: EventDailyCPTick, Amount: gain})
	return pool, cp, events
}

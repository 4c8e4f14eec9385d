package settlement

import "github.com/napolitain/settlement-solver/internal/models"

// Advance adds one hour of production to pool and clamps each field to its
// storage cap, returning one overflow event per clamped field. Wood, clay and
// iron never drop below zero; crop may, which is how starvation shows up.
func Advance(pool, production models.Resources, caps models.StorageCaps) (models.Resources, []Event) {
	var events []Event
	next := pool

	for _, rt := range models.AllResourceTypes() {
		amount := pool.Get(rt) + production.Get(rt)
		capacity := caps.For(rt)

		if amount > capacity {
			events = append(events, Event{
				Type:     EventOverflow,
				Resource: rt,
				Amount:   amount - capacity,
			})
			amount = capacity
		}
		if amount < 0 && rt != models.Crop {
			amount = 0
		}
		next.Set(rt, amount)
	}

	return next, events
}

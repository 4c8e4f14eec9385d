package settlement

import (
	"time"

	"github.com/napolitain/settlement-solver/internal/models"
)

// TimelineEntry is one simulated hour. Entries are appended once and never
// modified; each carries its own copy of the building inventory.
type TimelineEntry struct {
	Hour          int                   `json:"hour"`
	Time          time.Time             `json:"time"`
	Resources     models.Resources      `json:"resources"`
	Production    models.Resources      `json:"production"`
	Caps          models.StorageCaps    `json:"caps"`
	CulturePoints int                   `json:"culturePoints"`
	DailyCPRate   int                   `json:"dailyCpRate"`
	Buildings     models.BuildingLevels `json:"buildings"`
	Constructing  []models.BuildingType `json:"constructing,omitempty"`
	Events        []Event               `json:"events,omitempty"`
}

// Timeline is the hour-by-hour history of a simulation, starting at hour 0
type Timeline []TimelineEntry

// Horizon returns the last simulated hour
func (t Timeline) Horizon() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].Hour
}

// Final returns the last entry
func (t Timeline) Final() TimelineEntry {
	if len(t) == 0 {
		return TimelineEntry{}
	}
	return t[len(t)-1]
}

// FirstHour returns the hour of the first entry matching fn
func (t Timeline) FirstHour(fn func(TimelineEntry) bool) (int, bool) {
	for _, e := range t {
		if fn(e) {
			return e.Hour, true
		}
	}
	return 0, false
}

// FirstEvent returns the hour and event of the first event matching fn
func (t Timeline) FirstEvent(fn func(Event) bool) (int, Event, bool) {
	for _, entry := range t {
		for _, e := range entry.Events {
			if fn(e) {
				return entry.Hour, e, true
			}
		}
	}
	return 0, Event{}, false
}

// Events returns every event of type et in timeline order
func (t Timeline) Events(et EventType) []Event {
	var out []Event
	for _, entry := range t {
		for _, e := range entry.Events {
			if e.Type == et {
				out = append(out, e)
			}
		}
	}
	return out
}

// simulate runs the hourly loop. Hour 0 is the untouched snapshot. Each
// following hour projects resources, completes due upgrades, applies the
// daily culture point tick on day boundaries and then starts new upgrades.
func simulate(in *input, opts Options) Timeline {
	v := newVillage(in, opts.Tables)
	sched := NewScheduler(opts.Tables, in.Planned, opts.ParallelSlots, in.Speed, opts.Logger)

	timeline := make(Timeline, 0, opts.Horizon+1)
	timeline = append(timeline, v.entry(0, in.Start, nil, nil))

	for hour := 1; hour <= opts.Horizon; hour++ {
		var events []Event

		pool, overflow := Advance(v.Pool, v.Production, v.Caps)
		v.Pool = pool
		events = append(events, overflow...)

		events = append(events, sched.Complete(hour, v)...)

		if hour%HoursPerDay == 0 {
			var cpEvents []Event
			v.Pool, v.CP, cpEvents = dayBoundary(opts.Tables, opts.Celebrations, v.Pool, v.CP, v.Buildings)
			events = append(events, cpEvents...)
		}

		events = append(events, sched.Start(hour, v)...)

		timeline = append(timeline, v.entry(hour, in.Start, sched.Constructing(), events))
	}

	return timeline
}

func (v *village) entry(hour int, start time.Time, constructing []models.BuildingType, events []Event) TimelineEntry {
	return TimelineEntry{
		Hour:          hour,
		Time:          start.Add(time.Duration(hour) * time.Hour),
		Resources:     v.Pool,
		Production:    v.Production,
		Caps:          v.Caps,
		CulturePoints: v.CP.Current,
		DailyCPRate:   v.CP.DailyRate,
		Buildings:     v.Buildings.Clone(),
		Constructing:  constructing,
		Events:        events,
	}
}

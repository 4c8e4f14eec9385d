package settlement

import "github.com/napolitain/settlement-solver/internal/models"

// Analysis is the first hour each settlement condition holds and the one
// that binds. Unreached conditions carry the timeline horizon.
type Analysis struct {
	CPHour           int
	ResourceHour     int
	BuildingHour     int
	CPReached        bool
	ResourcesReached bool
	BuildingsReached bool
	Bottleneck       models.Bottleneck
	EstimatedHours   int
	LimitingResource models.ResourceType
	Unreachable      []*models.ConstraintUnreachable
}

// Reached reports whether all three conditions held within the horizon
func (a Analysis) Reached() bool {
	return a.CPReached && a.ResourcesReached && a.BuildingsReached
}

// Analyze scans the timeline for the first hour at which (a) culture points
// reach cpTarget, (b) the pool covers settlerCost and (c) check holds. All
// three are required, so the estimate is the latest of the three.
//
// When several conditions share the latest hour the bottleneck is chosen in
// the fixed order culture_points, resources, buildings. The order only keeps
// the output deterministic; it says nothing about which one caused the delay.
func Analyze(timeline Timeline, settlerCost models.Resources, cpTarget int, check PrerequisiteCheck) Analysis {
	if check == nil {
		check = DefaultPrerequisiteCheck
	}
	horizon := timeline.Horizon()
	var a Analysis

	a.CPHour, a.CPReached = timeline.FirstHour(func(e TimelineEntry) bool {
		return e.CulturePoints >= cpTarget
	})
	a.ResourceHour, a.ResourcesReached = timeline.FirstHour(func(e TimelineEntry) bool {
		return e.Resources.Covers(settlerCost)
	})
	a.BuildingHour, a.BuildingsReached = timeline.FirstHour(func(e TimelineEntry) bool {
		return check(e.Buildings)
	})

	constraints := []struct {
		bottleneck models.Bottleneck
		hour       *int
		reached    bool
	}{
		{models.BottleneckCulturePoints, &a.CPHour, a.CPReached},
		{models.BottleneckResources, &a.ResourceHour, a.ResourcesReached},
		{models.BottleneckBuildings, &a.BuildingHour, a.BuildingsReached},
	}

	for _, c := range constraints {
		if !c.reached {
			*c.hour = horizon
			a.Unreachable = append(a.Unreachable, &models.ConstraintUnreachable{
				Constraint: c.bottleneck,
				Horizon:    horizon,
			})
		}
	}

	a.EstimatedHours = max(a.CPHour, a.ResourceHour, a.BuildingHour)
	for _, c := range constraints {
		if *c.hour == a.EstimatedHours {
			a.Bottleneck = c.bottleneck
			break
		}
	}

	a.LimitingResource = limitingResource(timeline, settlerCost)
	return a
}

// limitingResource returns the settler resource that is covered last. If one
// is never covered, the one with the largest final shortfall wins.
func limitingResource(timeline Timeline, cost models.Resources) models.ResourceType {
	if len(timeline) == 0 {
		return ""
	}

	var limiting models.ResourceType
	latest := -1
	for _, rt := range models.AllResourceTypes() {
		need := cost.Get(rt)
		if need <= 0 {
			continue
		}
		hour, ok := timeline.FirstHour(func(e TimelineEntry) bool {
			return e.Resources.Get(rt) >= need
		})
		if !ok {
			continue
		}
		if hour > latest {
			latest = hour
			limiting = rt
		}
	}

	final := timeline.Final().Resources
	worst := 0
	for _, rt := range models.AllResourceTypes() {
		need := cost.Get(rt)
		if _, ok := timeline.FirstHour(func(e TimelineEntry) bool { return e.Resources.Get(rt) >= need }); ok {
			continue
		}
		if shortfall := need - final.Get(rt); shortfall > worst {
			worst = shortfall
			limiting = rt
		}
	}

	return limiting
}

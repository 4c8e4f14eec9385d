package settlement

import (
	"testing"

	"github.com/napolitain/settlement-solver/internal/models"
)

var settlers = models.Resources{Wood: 100, Clay: 100, Iron: 100, Crop: 100}

// syntheticTimeline builds entries where CP, resources and the residence
// each become satisfied at the given hour (-1 = never).
func syntheticTimeline(horizon, cpAt, resAt, bldAt int) Timeline {
	var tl Timeline
	for h := 0; h <= horizon; h++ {
		e := TimelineEntry{Hour: h, Buildings: models.BuildingLevels{}}
		if cpAt >= 0 && h >= cpAt {
			e.CulturePoints = 500
		}
		if resAt >= 0 && h >= resAt {
			e.Resources = settlers
		}
		if bldAt >= 0 && h >= bldAt {
			e.Buildings[models.Residence] = 10
		}
		tl = append(tl, e)
	}
	return tl
}

func TestAnalyzeTieBreak(t *testing.T) {
	tests := []struct {
		name           string
		cp, res, bld   int
		wantBottleneck models.Bottleneck
		wantEstimate   int
	}{
		{"all at zero", 0, 0, 0, models.BottleneckCulturePoints, 0},
		{"cp and resources tie", 5, 5, 2, models.BottleneckCulturePoints, 5},
		{"resources and buildings tie", 1, 7, 7, models.BottleneckResources, 7},
		{"buildings last", 1, 2, 9, models.BottleneckBuildings, 9},
		{"resources last", 3, 8, 2, models.BottleneckResources, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Analyze(syntheticTimeline(10, tt.cp, tt.res, tt.bld), settlers, 500, nil)
			if a.Bottleneck != tt.wantBottleneck {
				t.Errorf("bottleneck = %s, want %s", a.Bottleneck, tt.wantBottleneck)
			}
			if a.EstimatedHours != tt.wantEstimate {
				t.Errorf("estimate = %d, want %d", a.EstimatedHours, tt.wantEstimate)
			}
			if !a.Reached() {
				t.Errorf("expected all conditions reached")
			}
		})
	}
}

func TestAnalyzeUnreached(t *testing.T) {
	a := Analyze(syntheticTimeline(10, 3, -1, 2), settlers, 500, nil)

	if a.ResourcesReached {
		t.Fatal("resources should not be reached")
	}
	if a.ResourceHour != 10 || a.EstimatedHours != 10 {
		t.Errorf("unreached hour = %d, estimate = %d, want 10", a.ResourceHour, a.EstimatedHours)
	}
	if len(a.Unreachable) != 1 || a.Unreachable[0].Constraint != models.BottleneckResources {
		t.Errorf("unreachable = %+v", a.Unreachable)
	}
	if a.Reached() {
		t.Errorf("Reached() true with an unreached condition")
	}
}

func TestAnalyzeCustomPrerequisite(t *testing.T) {
	tl := syntheticTimeline(10, 0, 0, -1)
	tl[4].Buildings[models.Barracks] = 3

	a := Analyze(tl, settlers, 500, func(levels models.BuildingLevels) bool {
		return levels.Get(models.Barracks) >= 3
	})
	if !a.BuildingsReached || a.BuildingHour != 4 {
		t.Errorf("buildingHour = %d reached=%v, want 4", a.BuildingHour, a.BuildingsReached)
	}
}

func TestDefaultPrerequisiteCheck(t *testing.T) {
	if DefaultPrerequisiteCheck(models.BuildingLevels{models.Residence: 9}) {
		t.Errorf("residence 9 should not qualify")
	}
	if !DefaultPrerequisiteCheck(models.BuildingLevels{models.Residence: 10}) {
		t.Errorf("residence 10 should qualify")
	}
	if !DefaultPrerequisiteCheck(models.BuildingLevels{models.Palace: 12}) {
		t.Errorf("palace 12 should qualify")
	}
}

func TestLimitingResource(t *testing.T) {
	var tl Timeline
	for h := 0; h <= 5; h++ {
		tl = append(tl, TimelineEntry{
			Hour:      h,
			Resources: models.Resources{Wood: h * 50, Clay: h * 20, Iron: 100, Crop: h * 30},
		})
	}
	// wood at 2, iron at 0, crop at 4, clay at 5
	if got := limitingResource(tl, settlers); got != models.Clay {
		t.Errorf("limiting = %s, want clay", got)
	}

	cost := models.Resources{Wood: 1000, Clay: 50, Iron: 50, Crop: 2000}
	// wood short by 750, crop short by 1850
	if got := limitingResource(tl, cost); got != models.Crop {
		t.Errorf("limiting = %s, want crop", got)
	}
}

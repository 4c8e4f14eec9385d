package models

import (
	"errors"
	"testing"
)

func TestResourcesArithmetic(t *testing.T) {
	a := Resources{Wood: 100, Clay: 200, Iron: 300, Crop: 400}
	b := Resources{Wood: 10, Clay: 20, Iron: 30, Crop: 500}

	if got := a.Add(b); got != (Resources{Wood: 110, Clay: 220, Iron: 330, Crop: 900}) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); got != (Resources{Wood: 90, Clay: 180, Iron: 270, Crop: -100}) {
		t.Errorf("Sub = %+v", got)
	}
	if a.Covers(b) {
		t.Errorf("%+v should not cover %+v (crop short)", a, b)
	}
	if !a.Covers(Resources{Wood: 100, Clay: 200, Iron: 300, Crop: 400}) {
		t.Errorf("a pool should cover an equal cost")
	}
	if a.Total() != 1000 {
		t.Errorf("Total = %d, want 1000", a.Total())
	}
}

func TestResourcesGetSet(t *testing.T) {
	var r Resources
	for i, rt := range AllResourceTypes() {
		r.Set(rt, (i+1)*10)
	}
	for i, rt := range AllResourceTypes() {
		if got := r.Get(rt); got != (i+1)*10 {
			t.Errorf("Get(%s) = %d, want %d", rt, got, (i+1)*10)
		}
	}
	if r.Get("gold") != 0 {
		t.Errorf("unknown resource should read as 0")
	}
}

func TestStorageCapsFor(t *testing.T) {
	caps := StorageCaps{Warehouse: 1200, Granary: 800}
	if caps.For(Wood) != 1200 || caps.For(Iron) != 1200 {
		t.Errorf("warehouse resources should use the warehouse cap")
	}
	if caps.For(Crop) != 800 {
		t.Errorf("crop should use the granary cap")
	}
}

func TestBuildingLevelsDeterministicOrder(t *testing.T) {
	levels := BuildingLevels{Warehouse: 3, Cropland: 0, MainBuilding: 5, ClayPit: 2}

	types := levels.Types()
	want := []BuildingType{ClayPit, Cropland, MainBuilding, Warehouse}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("Types() = %v, want %v", types, want)
		}
	}

	var visited []BuildingType
	levels.EachNonZero(func(bt BuildingType, _ int) { visited = append(visited, bt) })
	if len(visited) != 3 || visited[0] != ClayPit {
		t.Errorf("EachNonZero visited %v", visited)
	}
}

func TestBuildingLevelsClone(t *testing.T) {
	orig := BuildingLevels{Residence: 5}
	clone := orig.Clone()
	clone[Residence] = 10
	if orig[Residence] != 5 {
		t.Errorf("Clone shares storage with the original")
	}
}

func TestValidNames(t *testing.T) {
	for _, bt := range AllBuildingTypes() {
		if !bt.Valid() {
			t.Errorf("%s should be valid", bt)
		}
	}
	if BuildingType("castle").Valid() {
		t.Errorf("castle should not be a valid building")
	}
	for _, tribe := range AllTribes() {
		if !tribe.Valid() {
			t.Errorf("%s should be valid", tribe)
		}
	}
	if Tribe("natars").Valid() {
		t.Errorf("natars should not be a playable tribe")
	}
}

func TestFieldResource(t *testing.T) {
	if rt, ok := FieldResource(IronMine); !ok || rt != Iron {
		t.Errorf("FieldResource(iron_mine) = %s, %v", rt, ok)
	}
	if _, ok := FieldResource(Warehouse); ok {
		t.Errorf("warehouse is not a resource field")
	}
}

func TestSnapshotCloneIsDeep(t *testing.T) {
	rate, target, consumption := 10, 500, 40
	orig := &GameStateSnapshot{
		Resources:        &Resources{Wood: 1},
		Production:       &Resources{Wood: 2},
		CropConsumption:  &consumption,
		Buildings:        BuildingLevels{Residence: 1},
		CulturePoints:    &CulturePointsInput{Current: 5, DailyRate: &rate, Target: &target},
		PlannedBuildings: []PlannedBuilding{{BuildingType: Residence, TargetLevel: 10}},
	}

	c := orig.Clone()
	c.Resources.Wood = 99
	c.Production.Wood = 99
	*c.CropConsumption = 99
	c.Buildings[Residence] = 99
	*c.CulturePoints.DailyRate = 99
	*c.CulturePoints.Target = 99
	c.PlannedBuildings[0].TargetLevel = 99

	if orig.Resources.Wood != 1 || orig.Production.Wood != 2 || *orig.CropConsumption != 40 ||
		orig.Buildings[Residence] != 1 || *orig.CulturePoints.DailyRate != 10 ||
		*orig.CulturePoints.Target != 500 || orig.PlannedBuildings[0].TargetLevel != 10 {
		t.Errorf("Clone shares state with the original: %+v", orig)
	}

	var nilSnap *GameStateSnapshot
	if nilSnap.Clone() != nil {
		t.Errorf("Clone of nil should be nil")
	}
}

func TestTrackStateRank(t *testing.T) {
	if !(TrackPending.Rank() < TrackInProgress.Rank() && TrackInProgress.Rank() < TrackSatisfied.Rank()) {
		t.Errorf("track states out of order")
	}
	if TrackState("bogus").Rank() != -1 {
		t.Errorf("unknown state should rank -1")
	}
}

func TestErrorMessages(t *testing.T) {
	var err error = &ConstraintUnreachable{Constraint: BottleneckCulturePoints, Horizon: 720}
	if err.Error() != "culture_points not reached within 720 hours" {
		t.Errorf("unexpected message %q", err.Error())
	}

	wrapped := errors.Join(errors.New("context"), &InvalidBuildingReference{Building: "castle", Level: 3, Reason: "unknown building castle"})
	var ref *InvalidBuildingReference
	if !errors.As(wrapped, &ref) || ref.Level != 3 {
		t.Errorf("errors.As failed on a joined InvalidBuildingReference")
	}

	missing := &MissingDataError{Field: "tribe", Default: "romans"}
	if missing.Error() != "missing tribe, using default romans" {
		t.Errorf("unexpected message %q", missing.Error())
	}
}

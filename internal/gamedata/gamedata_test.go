package gamedata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/napolitain/settlement-solver/internal/models"
)

func TestDefaultCoversAllBuildingTypes(t *testing.T) {
	tables := Default()
	for _, bt := range models.AllBuildingTypes() {
		b := tables.Building(bt)
		if b == nil {
			t.Errorf("missing building definition for %s", bt)
			continue
		}
		if b.MaxLevel < 1 {
			t.Errorf("%s: max level %d", bt, b.MaxLevel)
		}
		if b.GrowthFactor < 1 {
			t.Errorf("%s: growth factor %.2f", bt, b.GrowthFactor)
		}
	}
	for _, tribe := range models.AllTribes() {
		if _, ok := tables.SettlerCost(tribe); !ok {
			t.Errorf("missing settler cost for %s", tribe)
		}
	}
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	a := Default()
	b := Default()
	a.Buildings[models.MainBuilding].BaseCost.Wood = 1
	a.StorageCapacity[0] = 1

	if b.Buildings[models.MainBuilding].BaseCost.Wood != 70 {
		t.Errorf("mutating one table leaked into another")
	}
	if b.StorageCapacity[0] != 800 {
		t.Errorf("storage curve shared between tables")
	}
}

func TestCost(t *testing.T) {
	tables := Default()

	cost, ok := tables.Cost(models.MainBuilding, 0)
	if !ok {
		t.Fatal("main building unknown")
	}
	if cost != (models.Resources{Wood: 70, Clay: 40, Iron: 60, Crop: 20}) {
		t.Errorf("level 1 cost = %+v", cost)
	}

	cost, _ = tables.Cost(models.Woodcutter, 1)
	if cost.Wood != 67 || cost.Clay != 167 || cost.Crop != 100 {
		t.Errorf("woodcutter level 2 cost = %+v", cost)
	}

	if _, ok := tables.Cost("stables", 0); ok {
		t.Errorf("unknown building reported a cost")
	}
}

func TestCostGrowsWithLevel(t *testing.T) {
	tables := Default()
	for _, bt := range models.AllBuildingTypes() {
		prev, _ := tables.Cost(bt, 0)
		for level := 1; level < tables.MaxLevel(bt); level++ {
			cost, _ := tables.Cost(bt, level)
			if cost.Total() < prev.Total() {
				t.Fatalf("%s: cost decreased at level %d", bt, level)
			}
			prev = cost
		}
	}
}

func TestBuildSeconds(t *testing.T) {
	tables := Default()

	tests := []struct {
		name  string
		level int
		mb    int
		speed float64
		want  int
	}{
		{"level 1 no main building", 1, 0, 1, 1900},
		{"level 1 main building 10", 1, 10, 1, 1330},
		{"double speed", 1, 0, 2, 950},
		{"invalid speed falls back to 1x", 1, 0, 0, 1900},
		{"level 0", 0, 0, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tables.BuildSeconds(models.MainBuilding, tt.level, tt.mb, tt.speed)
			if got != tt.want {
				t.Errorf("BuildSeconds = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBuildSecondsReductionCapped(t *testing.T) {
	tables := Default()
	at20 := tables.BuildSeconds(models.Warehouse, 5, 20, 1)
	at30 := tables.BuildSeconds(models.Warehouse, 5, 30, 1)
	if at20 > tables.BuildSeconds(models.Warehouse, 5, 0, 1) {
		t.Errorf("main building should shorten construction")
	}
	if at30 != tables.BuildSeconds(models.Warehouse, 5, 24, 1) {
		t.Errorf("reduction should cap at 70%%")
	}
}

func TestDailyCulturePoints(t *testing.T) {
	tables := Default()

	if got := tables.DailyCulturePoints(models.MainBuilding, 3); got != 12 {
		t.Errorf("main building 3 = %d, want 12", got)
	}
	if got := tables.DailyCulturePoints(models.Palace, 1); got != 5 {
		t.Errorf("palace 1 = %d, want 5", got)
	}
	if got := tables.DailyCulturePoints(models.Palace, 0); got != 0 {
		t.Errorf("unbuilt palace = %d, want 0", got)
	}
}

func TestCheckPrerequisites(t *testing.T) {
	tables := Default()

	unmet := tables.CheckPrerequisites(models.Residence, models.BuildingLevels{models.MainBuilding: 3})
	if len(unmet) != 1 {
		t.Fatalf("expected one unmet requirement, got %v", unmet)
	}

	unmet = tables.CheckPrerequisites(models.Residence, models.BuildingLevels{models.MainBuilding: 5})
	if len(unmet) != 0 {
		t.Errorf("expected residence buildable, got %v", unmet)
	}

	unmet = tables.CheckPrerequisites(models.Residence, models.BuildingLevels{
		models.MainBuilding: 5,
		models.Palace:       1,
	})
	if len(unmet) != 1 {
		t.Errorf("expected mutual exclusion with palace, got %v", unmet)
	}

	unmet = tables.CheckPrerequisites(models.TownHall, models.BuildingLevels{})
	if len(unmet) != 2 {
		t.Errorf("expected two unmet requirements for town hall, got %v", unmet)
	}

	if unmet := tables.CheckPrerequisites("stables", nil); len(unmet) == 0 {
		t.Errorf("unknown building should never be buildable")
	}
}

func TestCPTarget(t *testing.T) {
	tables := Default()
	for villages, want := range map[int]int{0: 200, 1: 200, 2: 500, 9: 25000, 50: 25000} {
		if got := tables.CPTarget(villages); got != want {
			t.Errorf("CPTarget(%d) = %d, want %d", villages, got, want)
		}
	}
}

func TestStorage(t *testing.T) {
	tables := Default()
	if got := tables.StorageForLevel(0); got != 800 {
		t.Errorf("base storage = %d", got)
	}
	if got := tables.StorageForLevel(99); got != 82000 {
		t.Errorf("storage above max level = %d", got)
	}
	if got := tables.StorageLevelFor(7200); got != 8 {
		t.Errorf("storage level for 7200 = %d, want 8", got)
	}
	if got := tables.StorageLevelFor(100000); got != -1 {
		t.Errorf("storage level beyond curve = %d", got)
	}
}

func TestFieldProductionGain(t *testing.T) {
	tables := Default()
	if got := tables.FieldProductionGain(0); got != 3 {
		t.Errorf("gain 0->1 = %d, want 3", got)
	}
	if got := tables.FieldProductionGain(20); got != 0 {
		t.Errorf("gain beyond max = %d, want 0", got)
	}
}

func TestLoadTablesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tables.yaml")
	content := `
buildings:
  main_building:
    base_cost: {wood: 100, clay: 100, iron: 100, crop: 100}
    max_level: 25
settler_costs:
  gauls: {wood: 1, clay: 2, iron: 3, crop: 4}
cp_thresholds: [0, 100, 300]
settler_training_hours: 5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	tables, err := LoadTables(path)
	if err != nil {
		t.Fatalf("LoadTables: %v", err)
	}

	mb := tables.Building(models.MainBuilding)
	if mb.BaseCost.Wood != 100 || mb.MaxLevel != 25 {
		t.Errorf("main building override not applied: %+v", mb)
	}
	if mb.GrowthFactor != 1.28 {
		t.Errorf("untouched field changed: %.2f", mb.GrowthFactor)
	}
	if cost, _ := tables.SettlerCost(models.Gauls); cost.Iron != 3 {
		t.Errorf("settler override not applied: %+v", cost)
	}
	if tables.CPTarget(1) != 100 {
		t.Errorf("cp threshold override not applied")
	}
	if tables.SettlerTrainingHours != 5 {
		t.Errorf("training hours = %.1f", tables.SettlerTrainingHours)
	}
}

func TestLoadTablesRejectsUnknownBuilding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	if err := os.WriteFile(path, []byte("buildings:\n  stables:\n    max_level: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTables(path); err == nil {
		t.Errorf("expected error for unknown building")
	}
}

func TestLoadTablesRejectsDecreasingCurve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	if err := os.WriteFile(path, []byte("storage_capacity: [800, 700]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTables(path); err == nil {
		t.Errorf("expected error for decreasing storage curve")
	}
}

func TestLoadTablesEmptyPath(t *testing.T) {
	tables, err := LoadTables("")
	if err != nil {
		t.Fatal(err)
	}
	if tables.CPTarget(1) != 200 {
		t.Errorf("expected defaults")
	}
}

package settlement

import (
	"context"
	"errors"
	"testing"

	"github.com/napolitain/settlement-solver/internal/models"
)

func TestCompareStrategiesMatchesPredict(t *testing.T) {
	snap := midGameSnapshot()
	strategies := DefaultStrategies(Options{})

	results, err := CompareStrategies(context.Background(), snap, strategies)
	if err != nil {
		t.Fatalf("CompareStrategies: %v", err)
	}
	if len(results) != len(strategies) {
		t.Fatalf("got %d results, want %d", len(results), len(strategies))
	}

	for i, r := range results {
		if r.Strategy != strategies[i].Name {
			t.Errorf("result %d is %s, want %s", i, r.Strategy, strategies[i].Name)
		}
		want := Predict(snap, strategies[i].Options)
		if r.Prediction.ID != want.ID || r.Prediction.EstimatedHours != want.EstimatedHours {
			t.Errorf("%s: concurrent result differs from a direct prediction", r.Strategy)
		}
	}
}

func TestCompareStrategiesPlannedOverride(t *testing.T) {
	snap := fullSnapshot()
	strategies := []Strategy{
		{Name: "as scraped"},
		{Name: "residence", Planned: []models.PlannedBuilding{
			{BuildingType: models.Residence, TargetLevel: 10, Priority: 1},
		}},
	}

	results, err := CompareStrategies(context.Background(), snap, strategies)
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Prediction.Breakdown.BuildingsReached {
		t.Errorf("unplanned strategy should not reach the residence")
	}
	if !results[1].Prediction.Breakdown.BuildingsReached {
		t.Errorf("residence strategy should reach the residence")
	}
	if snap.PlannedBuildings != nil {
		t.Errorf("strategy overrides leaked into the caller's snapshot")
	}

	best, ok := Best(results)
	if !ok || best.Strategy != "residence" {
		t.Errorf("best = %s, want residence", best.Strategy)
	}
}

func TestCompareStrategiesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := CompareStrategies(ctx, midGameSnapshot(), DefaultStrategies(Options{}))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if results != nil {
		t.Errorf("cancelled comparison returned results")
	}
}

func TestDefaultStrategiesNames(t *testing.T) {
	names := map[string]bool{}
	for _, s := range DefaultStrategies(Options{}) {
		if names[s.Name] {
			t.Errorf("duplicate strategy %s", s.Name)
		}
		names[s.Name] = true
	}
	for _, want := range []string{"unlimited", "1-slot", "2-slot+celebrations"} {
		if !names[want] {
			t.Errorf("missing strategy %s", want)
		}
	}
}

func TestBestEmpty(t *testing.T) {
	if _, ok := Best(nil); ok {
		t.Errorf("Best(nil) reported a result")
	}
}

package settlement

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/napolitain/settlement-solver/internal/models"
)

// Strategy is one what-if variant of a prediction
type Strategy struct {
	Name    string
	Options Options
	// Planned replaces the snapshot's planned buildings when non-nil
	Planned []models.PlannedBuilding
}

// StrategyResult holds the outcome of a single strategy
type StrategyResult struct {
	Strategy   string                      `json:"strategy"`
	Prediction models.SettlementPrediction `json:"prediction"`
}

// DefaultStrategies varies the slot model and the celebration policy on top
// of base.
func DefaultStrategies(base Options) []Strategy {
	var strategies []Strategy
	for _, slots := range []int{0, 1, 2} {
		for _, celebrate := range []bool{false, true} {
			opts := base
			opts.ParallelSlots = slots
			opts.Celebrations = celebrate

			name := "unlimited"
			if slots > 0 {
				name = fmt.Sprintf("%d-slot", slots)
			}
			if celebrate {
				name += "+celebrations"
			}
			strategies = append(strategies, Strategy{Name: name, Options: opts})
		}
	}
	return strategies
}

// CompareStrategies runs every strategy on its own copy of snap concurrently.
// Results keep the order of strategies. Cancelling ctx discards all results.
func CompareStrategies(ctx context.Context, snap *models.GameStateSnapshot, strategies []Strategy) ([]StrategyResult, error) {
	results := make([]StrategyResult, len(strategies))
	g, ctx := errgroup.WithContext(ctx)

	for i, s := range strategies {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			local := snap.Clone()
			if local == nil {
				local = &models.GameStateSnapshot{}
			}
			if s.Planned != nil {
				local.PlannedBuildings = append([]models.PlannedBuilding(nil), s.Planned...)
			}
			results[i] = StrategyResult{
				Strategy:   s.Name,
				Prediction: Predict(local, s.Options),
			}
			return ctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Best returns the result with the earliest estimate. Ties go to the higher
// confidence, then to the earlier strategy.
func Best(results []StrategyResult) (StrategyResult, bool) {
	if len(results) == 0 {
		return StrategyResult{}, false
	}
	best := results[0]
	for _, r := range results[1:] {
		p, b := r.Prediction, best.Prediction
		if p.EstimatedHours < b.EstimatedHours ||
			(p.EstimatedHours == b.EstimatedHours && p.Confidence > b.Confidence) {
			best = r
		}
	}
	return best, true
}

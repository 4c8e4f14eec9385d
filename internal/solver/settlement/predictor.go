package settlement

import (
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/napolitain/settlement-solver/internal/models"
)

// predictionNamespace scopes prediction IDs
var predictionNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("settlement-solver/prediction"))

// Result is a prediction together with the timeline it was derived from
type Result struct {
	Prediction models.SettlementPrediction
	Timeline   Timeline
	Analysis   Analysis
}

// Predict returns the settlement prediction for a snapshot. It never fails:
// missing data lowers the confidence instead. The snapshot is not modified.
func Predict(snap *models.GameStateSnapshot, opts Options) models.SettlementPrediction {
	return Simulate(snap, opts).Prediction
}

// Simulate runs the full pipeline and keeps the timeline
func Simulate(snap *models.GameStateSnapshot, opts Options) *Result {
	opts = opts.withDefaults()
	in := normalize(snap, opts.Tables)

	for _, m := range in.Missing {
		opts.Logger.Debug("snapshot field defaulted", "field", m.Field, "default", m.Default)
	}

	timeline := simulate(in, opts)
	analysis := Analyze(timeline, in.SettlerCost, in.CPTarget, opts.PrerequisiteCheck)

	p := models.SettlementPrediction{
		ID:             predictionID(snap, opts),
		EstimatedHours: analysis.EstimatedHours,
		EstimatedDate:  in.Start.Add(time.Duration(analysis.EstimatedHours) * time.Hour),
		Bottleneck:     analysis.Bottleneck,
		Breakdown: models.Breakdown{
			CPHour:           analysis.CPHour,
			ResourceHour:     analysis.ResourceHour,
			BuildingHour:     analysis.BuildingHour,
			CPReached:        analysis.CPReached,
			ResourcesReached: analysis.ResourcesReached,
			BuildingsReached: analysis.BuildingsReached,
			LimitingResource: analysis.LimitingResource,
		},
		Confidence: confidence(in, analysis),
		Tracks:     trackStates(timeline, analysis, in.Planned),
		Horizon:    opts.Horizon,
	}

	if opts.TrainingBuffer {
		p.Breakdown.TrainingHours = int(math.Ceil(opts.Tables.SettlerTrainingHours / in.Speed))
	}
	p.Breakdown.SettlersReadyHours = p.EstimatedHours + p.Breakdown.TrainingHours

	for _, m := range in.Missing {
		p.Defaulted = append(p.Defaulted, m.Field)
	}

	rec := &Recommender{
		Tables:      opts.Tables,
		SettlerCost: in.SettlerCost,
		CPTarget:    in.CPTarget,
		Speed:       in.Speed,
	}
	p.Actions, p.Warnings = rec.Recommend(&p, timeline)
	p.Recommendations = make([]string, 0, len(p.Actions))
	for _, a := range p.Actions {
		text := a.Action
		if a.Reason != "" {
			text += " (" + a.Reason + ")"
		}
		p.Recommendations = append(p.Recommendations, text)
	}

	opts.Logger.Debug("prediction complete",
		"id", p.ID,
		"estimated_hours", p.EstimatedHours,
		"bottleneck", p.Bottleneck,
		"confidence", p.Confidence,
	)

	return &Result{Prediction: p, Timeline: timeline, Analysis: analysis}
}

// confidence starts at 1, loses the penalty of every defaulted field and
// collapses to at most 0.05 when a condition is never reached.
func confidence(in *input, a Analysis) float64 {
	c := 1.0 - in.penalty
	c = math.Max(0.1, math.Min(1, c))
	if len(a.Unreachable) > 0 {
		c = math.Min(c*0.05, 0.05)
	}
	return math.Round(c*100) / 100
}

// predictionID derives a stable ID from the snapshot and the options that
// change the outcome, so identical requests always share an ID.
func predictionID(snap *models.GameStateSnapshot, opts Options) string {
	payload, err := json.Marshal(struct {
		Snapshot       *models.GameStateSnapshot `json:"snapshot"`
		Horizon        int                       `json:"horizon"`
		ParallelSlots  int                       `json:"parallelSlots"`
		Celebrations   bool                      `json:"celebrations"`
		TrainingBuffer bool                      `json:"trainingBuffer"`
	}{snap, opts.Horizon, opts.ParallelSlots, opts.Celebrations, opts.TrainingBuffer})
	if err != nil {
		return uuid.Nil.String()
	}
	return uuid.NewSHA1(predictionNamespace, payload).String()
}

// trackStates derives the final state of every track. States only move
// forward: a condition that held once stays satisfied.
func trackStates(timeline Timeline, a Analysis, planned []models.PlannedBuilding) models.Tracks {
	state := func(reached bool) models.TrackState {
		if reached {
			return models.TrackSatisfied
		}
		return models.TrackPending
	}

	tracks := models.Tracks{
		CulturePoints: state(a.CPReached),
		Resources:     state(a.ResourcesReached),
		Buildings:     state(a.BuildingsReached),
	}
	if !a.BuildingsReached {
		_, _, started := timeline.FirstEvent(func(e Event) bool {
			return e.Type == EventBuildingStarted &&
				(e.Building == models.Residence || e.Building == models.Palace)
		})
		if started {
			tracks.Buildings = models.TrackInProgress
		}
	}

	final := timeline.Final()
	for _, p := range planned {
		pt := models.PlannedTrack{
			BuildingType: p.BuildingType,
			TargetLevel:  p.TargetLevel,
			FinalLevel:   final.Buildings.Get(p.BuildingType),
			State:        models.TrackPending,
		}
		_, _, started := timeline.FirstEvent(func(e Event) bool {
			return e.Type == EventBuildingStarted && e.Building == p.BuildingType
		})
		switch {
		case pt.FinalLevel >= p.TargetLevel:
			pt.State = models.TrackSatisfied
		case started:
			pt.State = models.TrackInProgress
		}
		tracks.Planned = append(tracks.Planned, pt)
	}
	return tracks
}

package models

import "time"

// Bottleneck labels the constraint that is satisfied last
type Bottleneck string

const (
	BottleneckCulturePoints Bottleneck = "culture_points"
	BottleneckResources     Bottleneck = "resources"
	BottleneckBuildings     Bottleneck = "buildings"
)

// TrackState is the progress of one settlement track. Tracks only move forward.
type TrackState string

const (
	TrackPending    TrackState = "pending"
	TrackInProgress TrackState = "in_progress"
	TrackSatisfied  TrackState = "satisfied"
)

// Rank orders track states so regressions can be detected
func (s TrackState) Rank() int {
	switch s {
	case TrackPending:
		return 0
	case TrackInProgress:
		return 1
	case TrackSatisfied:
		return 2
	}
	return -1
}

// Breakdown reports the first hour each settlement condition holds.
// Unreached conditions carry the simulation horizon and Reached=false.
type Breakdown struct {
	CPHour             int          `json:"cpHour"`
	ResourceHour       int          `json:"resourceHour"`
	BuildingHour       int          `json:"buildingHour"`
	CPReached          bool         `json:"cpReached"`
	ResourcesReached   bool         `json:"resourcesReached"`
	BuildingsReached   bool         `json:"buildingsReached"`
	LimitingResource   ResourceType `json:"limitingResource,omitempty"`
	TrainingHours      int          `json:"trainingHours"`
	SettlersReadyHours int          `json:"settlersReadyHours"`
}

// Recommendation is one prioritized action (1 = most urgent)
type Recommendation struct {
	Priority int    `json:"priority"`
	Action   string `json:"action"`
	Reason   string `json:"reason,omitempty"`
}

// PlannedTrack is the final state of one planned building request
type PlannedTrack struct {
	BuildingType BuildingType `json:"buildingType"`
	TargetLevel  int          `json:"targetLevel"`
	FinalLevel   int          `json:"finalLevel"`
	State        TrackState   `json:"state"`
}

// Tracks summarises the state machine of every track at the end of the horizon
type Tracks struct {
	CulturePoints TrackState     `json:"culturePoints"`
	Resources     TrackState     `json:"resources"`
	Buildings     TrackState     `json:"buildings"`
	Planned       []PlannedTrack `json:"planned,omitempty"`
}

// SettlementPrediction is the engine output
type SettlementPrediction struct {
	ID              string           `json:"id"`
	EstimatedHours  int              `json:"estimatedHours"`
	EstimatedDate   time.Time        `json:"estimatedDate"`
	Bottleneck      Bottleneck       `json:"bottleneck"`
	Breakdown       Breakdown        `json:"breakdown"`
	Recommendations []string         `json:"recommendations"`
	Actions         []Recommendation `json:"actions"`
	Warnings        []string         `json:"warnings"`
	Confidence      float64          `json:"confidence"`
	Tracks          Tracks           `json:"tracks"`
	Defaulted       []string         `json:"defaulted,omitempty"`
	Horizon         int              `json:"horizon"`
}

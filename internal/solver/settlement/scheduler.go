package settlement

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/napolitain/settlement-solver/internal/gamedata"
	"github.com/napolitain/settlement-solver/internal/models"
)

type blockKey struct {
	building models.BuildingType
	level    int
	reason   string
}

// Scheduler works through the planned upgrades of one simulation
type Scheduler struct {
	tables  *gamedata.Tables
	planned []models.PlannedBuilding
	slots   int
	speed   float64
	queue   *constructionQueue
	blocked map[blockKey]bool
	logger  *slog.Logger
}

// NewScheduler sorts planned by priority (lower first, ties keep input order).
// slots caps concurrent constructions, zero means unlimited.
func NewScheduler(tables *gamedata.Tables, planned []models.PlannedBuilding, slots int, speed float64, logger *slog.Logger) *Scheduler {
	sorted := append([]models.PlannedBuilding(nil), planned...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})
	if speed <= 0 {
		speed = 1
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scheduler{
		tables:  tables,
		planned: sorted,
		slots:   slots,
		speed:   speed,
		queue:   newConstructionQueue(),
		blocked: make(map[blockKey]bool),
		logger:  logger,
	}
}

// Complete finishes every upgrade due at hour and applies it to v
func (s *Scheduler) Complete(hour int, v *village) []Event {
	var events []Event
	for _, c := range s.queue.PopDue(hour) {
		level := v.complete(c.Building)
		events = append(events, Event{
			Type:     EventBuildingCompleted,
			Building: c.Building,
			Level:    level,
		})
	}
	return events
}

// Start walks the planned list and starts every upgrade that is allowed and
// affordable in full, deducting its cost from v's pool.
func (s *Scheduler) Start(hour int, v *village) []Event {
	var events []Event

	for _, p := range s.planned {
		if s.slots > 0 && s.queue.Len() >= s.slots {
			break
		}

		bt := p.BuildingType
		if p.TargetLevel < 1 {
			reason := (&models.InvalidBuildingReference{
				Building: bt,
				Level:    p.TargetLevel,
				Reason:   "target level must be positive",
			}).Error()
			if e, ok := s.block(hour, bt, p.TargetLevel, reason); ok {
				events = append(events, e)
			}
			continue
		}
		current := v.Buildings.Get(bt)
		if current >= p.TargetLevel || s.queue.Active(bt) {
			continue
		}
		next := current + 1

		if reason := s.blockReason(bt, next, v); reason != "" {
			if e, ok := s.block(hour, bt, next, reason); ok {
				events = append(events, e)
			}
			continue
		}

		cost, _ := s.tables.Cost(bt, current)
		if !v.Pool.Covers(cost) {
			continue
		}

		v.Pool = v.Pool.Sub(cost)
		seconds := s.tables.BuildSeconds(bt, next, v.Buildings.Get(models.MainBuilding), s.speed)
		completion := hour + buildHours(seconds)
		s.queue.Push(construction{
			CompletionHour: completion,
			Building:       bt,
			Level:          next,
		})
		events = append(events, Event{
			Type:           EventBuildingStarted,
			Building:       bt,
			Level:          next,
			CompletionHour: completion,
		})
	}

	return events
}

// Constructing returns the building types with an upgrade in progress
func (s *Scheduler) Constructing() []models.BuildingType {
	return s.queue.Buildings()
}

// blockReason returns why bt cannot be upgraded to level, or ""
func (s *Scheduler) blockReason(bt models.BuildingType, level int, v *village) string {
	b := s.tables.Building(bt)
	if b == nil {
		return (&models.InvalidBuildingReference{Building: bt, Level: level, Reason: "unknown building type"}).Error()
	}
	if level > b.MaxLevel {
		return (&models.InvalidBuildingReference{
			Building: bt,
			Level:    level,
			Reason:   fmt.Sprintf("max level is %d", b.MaxLevel),
		}).Error()
	}

	unmet := s.tables.CheckPrerequisites(bt, v.Buildings)
	for _, ex := range b.Excludes {
		if v.Buildings.Get(ex) == 0 && s.queue.Active(ex) {
			unmet = append(unmet, fmt.Sprintf("cannot coexist with %s (under construction)", ex))
		}
	}
	if len(unmet) > 0 {
		return strings.Join(unmet, "; ")
	}

	cost, _ := s.tables.Cost(bt, level-1)
	for _, rt := range models.AllResourceTypes() {
		if need, capacity := cost.Get(rt), v.Caps.For(rt); need > capacity {
			return fmt.Sprintf("%s cost %d exceeds storage capacity %d", rt, need, capacity)
		}
	}
	return ""
}

// block records a blocked upgrade once per (building, level, reason)
func (s *Scheduler) block(hour int, bt models.BuildingType, level int, reason string) (Event, bool) {
	key := blockKey{building: bt, level: level, reason: reason}
	if s.blocked[key] {
		return Event{}, false
	}
	s.blocked[key] = true
	s.logger.Debug("building blocked", "hour", hour, "building", bt, "level", level, "reason", reason)
	return Event{
		Type:     EventBlocked,
		Building: bt,
		Level:    level,
		Reason:   reason,
	}, true
}

// buildHours converts construction seconds into whole simulated hours.
// Every upgrade takes at least one hour.
func buildHours(seconds int) int {
	hours := int(math.Ceil(float64(seconds) / 3600))
	if hours < 1 {
		return 1
	}
	return hours
}

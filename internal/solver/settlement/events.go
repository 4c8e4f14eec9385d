package settlement

import (
	"container/heap"

	"github.com/napolitain/settlement-solver/internal/models"
)

// EventType is the kind of a timeline event
type EventType string

const (
	EventOverflow          EventType = "overflow"
	EventBuildingStarted   EventType = "building_started"
	EventBuildingCompleted EventType = "building_completed"
	EventDailyCPTick       EventType = "daily_cp_tick"
	EventBlocked           EventType = "blocked"
	EventCelebration       EventType = "celebration"
)

// Event is a discrete change recorded on a timeline entry
type Event struct {
	Type     EventType           `json:"type"`
	Resource models.ResourceType `json:"resource,omitempty"`
	Building models.BuildingType `json:"building,omitempty"`
	Level    int                 `json:"level,omitempty"`
	// Amount is the discarded overflow or the culture points gained
	Amount         int    `json:"amount,omitempty"`
	CompletionHour int    `json:"completionHour,omitempty"`
	Reason         string `json:"reason,omitempty"`
}

// construction is an upgrade waiting for its completion hour
type construction struct {
	CompletionHour int
	Building       models.BuildingType
	Level          int // level reached on completion
	Sequence       int64
}

// constructionHeap implements heap.Interface ordered by (CompletionHour, Sequence)
type constructionHeap []construction

func (h constructionHeap) Len() int { return len(h) }

func (h constructionHeap) Less(i, j int) bool {
	if h[i].CompletionHour != h[j].CompletionHour {
		return h[i].CompletionHour < h[j].CompletionHour
	}
	return h[i].Sequence < h[j].Sequence
}

func (h constructionHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *constructionHeap) Push(x any) {
	*h = append(*h, x.(construction))
}

func (h *constructionHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// constructionQueue holds running upgrades. Upgrades finishing in the same
// hour complete in start order. The sequence counter belongs to the queue so
// concurrent simulations never share state.
type constructionQueue struct {
	h        constructionHeap
	sequence int64
	active   map[models.BuildingType]int // type -> level under construction
}

func newConstructionQueue() *constructionQueue {
	q := &constructionQueue{
		h:      make(constructionHeap, 0),
		active: make(map[models.BuildingType]int),
	}
	heap.Init(&q.h)
	return q
}

func (q *constructionQueue) Push(c construction) {
	q.sequence++
	c.Sequence = q.sequence
	q.active[c.Building] = c.Level
	heap.Push(&q.h, c)
}

// PopDue removes and returns every construction finishing at or before hour
func (q *constructionQueue) PopDue(hour int) []construction {
	var due []construction
	for len(q.h) > 0 && q.h[0].CompletionHour <= hour {
		c := heap.Pop(&q.h).(construction)
		delete(q.active, c.Building)
		due = append(due, c)
	}
	return due
}

// Active reports whether an upgrade of bt is running
func (q *constructionQueue) Active(bt models.BuildingType) bool {
	_, ok := q.active[bt]
	return ok
}

func (q *constructionQueue) Len() int {
	return len(q.h)
}

// Buildings returns the building types under construction, sorted
func (q *constructionQueue) Buildings() []models.BuildingType {
	levels := make(models.BuildingLevels, len(q.active))
	for bt, level := range q.active {
		levels[bt] = level
	}
	return levels.Types()
}

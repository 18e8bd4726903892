package budget

import "github.com/shopspring/decimal"

// EventKind names the two celebratory events the engine can emit.
type EventKind string

const (
	EventStreak EventKind = "streak"
	EventBudget EventKind = "budget"
)

// Event is an achievement signal for the caller to render. The engine
// only emits it; confetti is somebody else's job.
type Event struct {
	Kind  EventKind `json:"kind"`
	Value int       `json:"value"`
}

// goalThreshold is the TotalProgress score at which the budget goal
// counts as achieved.
var goalThreshold = decimal.NewFromInt(80)

// StreakAchievement checks whether moving from the previous to the
// current streak crosses a celebration point. It fires when the streak
// actually grew and the new value is an exact multiple of seven; the
// new value is what matters, not the milestone list.
func StreakAchievement(previous, current int) (Event, bool) {
	if current > previous && current%7 == 0 {
		return Event{Kind: EventStreak, Value: current}, true
	}

	return Event{}, false
}

// BudgetAchievement checks whether the composite progress score
// qualifies for the budget goal event.
func BudgetAchievement(totalProgress decimal.Decimal) (Event, bool) {
	if totalProgress.GreaterThanOrEqual(goalThreshold) {
		return Event{Kind: EventBudget, Value: int(totalProgress.IntPart())}, true
	}

	return Event{}, false
}

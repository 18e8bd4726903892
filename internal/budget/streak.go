package budget

import (
	"time"

	"github.com/eunsung360/Budget-Management-Dashboard/internal/types"
)

// milestones are the fixed streak-length thresholds used for progress
// display. The streak achievement trigger is independent of this list.
var milestones = []int{7, 14, 30, 60, 90, 180}

// milestoneCeiling is the next milestone once all listed ones are passed.
const milestoneCeiling = 365

// StreakState is the check-in continuity state. LastCheck is the zero
// time when the user has never checked in.
type StreakState struct {
	Current   int
	Longest   int
	LastCheck time.Time
}

// CheckInResult is the outcome of applying a check-in to a StreakState.
type CheckInResult struct {
	State StreakState
	// Changed is false when the check-in was a same-day repeat and the
	// state was returned unmodified.
	Changed bool
}

// CheckIn applies one check-in at "now" to the given state.
//
// A repeated check-in on the same calendar day is a no-op. A check-in
// on the day after the last one continues the streak; any longer gap,
// as well as the very first check-in, starts over at 1. The longest
// streak never decreases and is always at least the current streak.
func CheckIn(state StreakState, now time.Time) CheckInResult {
	if !state.LastCheck.IsZero() && types.SameDay(state.LastCheck, now) {
		return CheckInResult{State: state}
	}

	next := state
	if !state.LastCheck.IsZero() && types.DayDiff(state.LastCheck, now) == 1 {
		next.Current = state.Current + 1
	} else {
		next.Current = 1
	}

	if next.Current > next.Longest {
		next.Longest = next.Current
	}
	next.LastCheck = now

	return CheckInResult{State: next, Changed: true}
}

// NextMilestone returns the first milestone above the given streak,
// or the ceiling once all listed milestones are passed.
func NextMilestone(streak int) int {
	for _, m := range milestones {
		if m > streak {
			return m
		}
	}

	return milestoneCeiling
}

// PreviousMilestone returns the last milestone the streak has reached,
// or 0 if none has been reached yet.
func PreviousMilestone(streak int) int {
	previous := 0
	for _, m := range milestones {
		if m <= streak {
			previous = m
		}
	}

	return previous
}

// MilestoneProgress returns how far the streak has moved from the
// previous milestone towards the next one, in percent.
func MilestoneProgress(streak int) float64 {
	previous := PreviousMilestone(streak)
	next := NextMilestone(streak)

	return float64(streak-previous) / float64(next-previous) * 100
}

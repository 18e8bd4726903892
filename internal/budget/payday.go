package budget

import (
	"time"

	"github.com/eunsung360/Budget-Management-Dashboard/internal/types"
)

// PaydayDue decides whether the payday event should be surfaced.
//
// It fires when today is the configured day of the month and no check
// has fired in the same calendar month yet, which bounds it to at most
// one event per month no matter how often it runs on that day.
//
// The comparison is strict day-of-month equality: a payday of 29-31
// never matches a month that is too short. This is intentional
// day-of-month semantics, not calendar rollover.
func PaydayDue(today time.Time, payday int, lastCheck time.Time) bool {
	if today.Day() != payday {
		return false
	}

	if lastCheck.IsZero() {
		return true
	}

	return !types.MonthOf(today).Equal(types.MonthOf(lastCheck))
}

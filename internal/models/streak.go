package models

import (
	"encoding/json"
	"time"

	"github.com/eunsung360/Budget-Management-Dashboard/internal/budget"
	"github.com/eunsung360/Budget-Management-Dashboard/internal/types"
)

// MonthFlags records for which cycles at least one check-in happened,
// keyed by the "YYYY-MM" cycle key.
type MonthFlags map[string]bool

// Streak is the check-in continuity record. There is exactly one row.
type Streak struct {
	Timestamps
	ID           uint       `json:"-" gorm:"primaryKey"`
	Current      int        `json:"currentStreak" example:"6"`                        // Consecutive daily check-ins up to now
	Longest      int        `json:"longestStreak" example:"20"`                       // The best streak ever reached
	LastCheck    *time.Time `json:"lastCheckDate" example:"2025-03-15T08:00:00.000Z"` // The last check-in, null when there never was one
	Achievements MonthFlags `json:"monthlyAchievements" gorm:"serializer:json"`       // Cycles with at least one check-in
}

// streakRowID pins the singleton row.
const streakRowID = 1

// GetStreak returns the streak record, creating the zeroed default on
// first use.
func GetStreak() (Streak, error) {
	streak := Streak{ID: streakRowID, Achievements: MonthFlags{}}
	err := DB.FirstOrCreate(&streak, Streak{ID: streakRowID}).Error
	if streak.Achievements == nil {
		streak.Achievements = MonthFlags{}
	}

	return streak, err
}

// State returns the record as input for the computation engine.
func (s Streak) State() budget.StreakState {
	state := budget.StreakState{
		Current: s.Current,
		Longest: s.Longest,
	}
	if s.LastCheck != nil {
		state.LastCheck = *s.LastCheck
	}

	return state
}

// CheckInStreak applies one check-in at "now" and persists the result.
//
// A repeated check-in on the same calendar day leaves the record
// untouched. The returned event is non-nil when the new streak value
// crosses a celebration point.
func CheckInStreak(now time.Time) (Streak, *budget.Event, error) {
	streak, err := GetStreak()
	if err != nil {
		return Streak{}, nil, err
	}

	result := budget.CheckIn(streak.State(), now)
	if !result.Changed {
		return streak, nil, nil
	}

	previous := streak.Current
	streak.Current = result.State.Current
	streak.Longest = result.State.Longest
	lastCheck := result.State.LastCheck
	streak.LastCheck = &lastCheck
	streak.Achievements[types.MonthOf(now).String()] = true

	err = DB.Save(&streak).Error
	if err != nil {
		return Streak{}, nil, err
	}

	if event, ok := budget.StreakAchievement(previous, streak.Current); ok {
		return streak, &event, nil
	}

	return streak, nil, nil
}

// Returns the streak record for export
func (Streak) Export() (json.RawMessage, error) {
	streak, err := GetStreak()
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&streak)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}

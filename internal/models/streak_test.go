package models_test

import (
	"time"

	"github.com/eunsung360/Budget-Management-Dashboard/internal/budget"
	"github.com/eunsung360/Budget-Management-Dashboard/internal/models"
)

func (suite *TestSuiteStandard) TestGetStreakDefault() {
	streak, err := models.GetStreak()
	suite.Assert().Nil(err)

	suite.Assert().Equal(0, streak.Current)
	suite.Assert().Equal(0, streak.Longest)
	suite.Assert().Nil(streak.LastCheck)
	suite.Assert().NotNil(streak.Achievements)
}

func (suite *TestSuiteStandard) TestCheckInStreak() {
	now := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)

	streak, event, err := models.CheckInStreak(now)
	suite.Assert().Nil(err)
	suite.Assert().Nil(event)
	suite.Assert().Equal(1, streak.Current)
	suite.Assert().Equal(1, streak.Longest)
	suite.Assert().True(streak.Achievements["2025-03"])

	// The result must be persisted
	reloaded, err := models.GetStreak()
	suite.Assert().Nil(err)
	suite.Assert().Equal(1, reloaded.Current)
	suite.Require().NotNil(reloaded.LastCheck)
	suite.Assert().True(now.Equal(*reloaded.LastCheck), "last check is %s", reloaded.LastCheck)
}

func (suite *TestSuiteStandard) TestCheckInStreakSameDay() {
	now := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)

	_, _, err := models.CheckInStreak(now)
	suite.Assert().Nil(err)

	streak, event, err := models.CheckInStreak(now.Add(6 * time.Hour))
	suite.Assert().Nil(err)
	suite.Assert().Nil(event)
	suite.Assert().Equal(1, streak.Current)
}

func (suite *TestSuiteStandard) TestCheckInStreakAchievement() {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 6; i++ {
		_, event, err := models.CheckInStreak(start.AddDate(0, 0, i))
		suite.Assert().Nil(err)
		suite.Assert().Nil(event)
	}

	// The seventh consecutive day fires the event
	streak, event, err := models.CheckInStreak(start.AddDate(0, 0, 6))
	suite.Assert().Nil(err)
	suite.Assert().Equal(7, streak.Current)
	suite.Require().NotNil(event)
	suite.Assert().Equal(budget.EventStreak, event.Kind)
	suite.Assert().Equal(7, event.Value)
}

func (suite *TestSuiteStandard) TestCheckInStreakReset() {
	_, _, err := models.CheckInStreak(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	suite.Assert().Nil(err)
	_, _, err = models.CheckInStreak(time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC))
	suite.Assert().Nil(err)

	// Two days missed
	streak, event, err := models.CheckInStreak(time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC))
	suite.Assert().Nil(err)
	suite.Assert().Nil(event)
	suite.Assert().Equal(1, streak.Current)
	suite.Assert().Equal(2, streak.Longest)
}

func (suite *TestSuiteStandard) TestStreakAchievementsAcrossMonths() {
	_, _, err := models.CheckInStreak(time.Date(2025, 3, 31, 9, 0, 0, 0, time.UTC))
	suite.Assert().Nil(err)

	streak, _, err := models.CheckInStreak(time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC))
	suite.Assert().Nil(err)

	suite.Assert().True(streak.Achievements["2025-03"])
	suite.Assert().True(streak.Achievements["2025-04"])
}

package models_test

import (
	"time"

	"github.com/eunsung360/Budget-Management-Dashboard/internal/models"
)

func (suite *TestSuiteStandard) TestGetSettingsDefault() {
	settings, err := models.GetSettings()
	suite.Assert().Nil(err)

	suite.Assert().Equal(models.ThemeLight, settings.Theme)
	suite.Assert().Nil(settings.LastPaydayCheck)
}

func (suite *TestSuiteStandard) TestSetTheme() {
	settings, err := models.SetTheme(models.ThemeDark)
	suite.Assert().Nil(err)
	suite.Assert().Equal(models.ThemeDark, settings.Theme)

	reloaded, err := models.GetSettings()
	suite.Assert().Nil(err)
	suite.Assert().Equal(models.ThemeDark, reloaded.Theme)
}

func (suite *TestSuiteStandard) TestSetThemeInvalid() {
	_, err := models.SetTheme("solarized")
	suite.Assert().ErrorIs(err, models.ErrThemeInvalid)

	// The stored theme is unchanged
	settings, err := models.GetSettings()
	suite.Assert().Nil(err)
	suite.Assert().Equal(models.ThemeLight, settings.Theme)
}

func (suite *TestSuiteStandard) TestSetLastPaydayCheck() {
	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	suite.Assert().Nil(models.SetLastPaydayCheck(now))

	lastCheck, err := models.LastPaydayCheck()
	suite.Assert().Nil(err)
	suite.Assert().True(now.Equal(lastCheck))
}

func (suite *TestSuiteStandard) TestLastPaydayCheckZero() {
	lastCheck, err := models.LastPaydayCheck()
	suite.Assert().Nil(err)
	suite.Assert().True(lastCheck.IsZero())
}

package models_test

import (
	"time"

	"github.com/eunsung360/Budget-Management-Dashboard/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBudgetSplitValidate() {
	tests := []struct {
		name   string
		modify func(*models.BudgetSplit)
		err    error
	}{
		{"valid split", func(_ *models.BudgetSplit) {}, nil},
		{"negative income", func(s *models.BudgetSplit) { s.Income = decimal.NewFromInt(-1) }, models.ErrIncomeNegative},
		{"zero income is allowed", func(s *models.BudgetSplit) { s.Income = decimal.Zero }, nil},
		{"payday zero", func(s *models.BudgetSplit) { s.Payday = 0 }, models.ErrPaydayOutOfRange},
		{"payday 32", func(s *models.BudgetSplit) { s.Payday = 32 }, models.ErrPaydayOutOfRange},
		{"payday 31 is allowed", func(s *models.BudgetSplit) { s.Payday = 31 }, nil},
		{"ratios above 100", func(s *models.BudgetSplit) { s.InvestmentRatio = 60 }, models.ErrRatioSumInvalid},
		{"ratios below 100", func(s *models.BudgetSplit) { s.ConsumptionRatio = 10 }, models.ErrRatioSumInvalid},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			split := testSplit()
			tt.modify(&split)

			suite.Assert().Equal(tt.err, split.Validate())
		})
	}
}

func (suite *TestSuiteStandard) TestCommitConfigRejectsInvalid() {
	split := testSplit()
	split.InvestmentRatio = 99

	_, err := models.CommitConfig(split, time.Now())
	suite.Assert().ErrorIs(err, models.ErrRatioSumInvalid)

	// Nothing may have been persisted
	var count int64
	suite.Assert().Nil(models.DB.Model(&models.BudgetConfig{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestCommitConfigInitial() {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	config := suite.commitTestConfig(testSplit(), now)

	suite.Assert().True(config.Current)

	current, err := models.CurrentConfig()
	suite.Assert().Nil(err)
	suite.Assert().Equal(config.ID, current.ID)

	// The snapshot for the month must exist
	snapshots, err := models.MonthlyBudgets()
	suite.Assert().Nil(err)
	suite.Require().Len(snapshots, 1)
	suite.Assert().Equal("2025-03", snapshots[0].Month.String())

	// Initial setup counts as the payday check of this month
	lastCheck, err := models.LastPaydayCheck()
	suite.Assert().Nil(err)
	suite.Assert().True(now.Equal(lastCheck), "last payday check is %s", lastCheck)
}

func (suite *TestSuiteStandard) TestCommitConfigSupersedes() {
	first := suite.commitTestConfig(testSplit(), time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))

	split := testSplit()
	split.Income = decimal.NewFromInt(2000000)
	second := suite.commitTestConfig(split, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC))

	current, err := models.CurrentConfig()
	suite.Assert().Nil(err)
	suite.Assert().Equal(second.ID, current.ID)
	suite.Assert().True(current.Income.Equal(decimal.NewFromInt(2000000)))

	// The superseded configuration stays as history
	var superseded models.BudgetConfig
	suite.Assert().Nil(models.DB.First(&superseded, first.ID).Error)
	suite.Assert().False(superseded.Current)
}

func (suite *TestSuiteStandard) TestCommitConfigPaydayCheck() {
	// Initial setup advances the check
	suite.commitTestConfig(testSplit(), time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))

	// A plain edit on a non-payday must not advance it, otherwise it
	// would swallow the month's payday event
	edit := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)
	suite.commitTestConfig(testSplit(), edit)

	lastCheck, err := models.LastPaydayCheck()
	suite.Assert().Nil(err)
	suite.Assert().Equal("2025-03", lastCheck.Format("2006-01"))

	// A commit on the payday itself closes the event
	payday := time.Date(2025, 4, 15, 9, 0, 0, 0, time.UTC)
	suite.commitTestConfig(testSplit(), payday)

	lastCheck, err = models.LastPaydayCheck()
	suite.Assert().Nil(err)
	suite.Assert().True(payday.Equal(lastCheck), "last payday check is %s", lastCheck)
}

func (suite *TestSuiteStandard) TestCurrentConfigNotFound() {
	_, err := models.CurrentConfig()
	suite.Assert().ErrorIs(err, models.ErrNoBudgetConfig)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestBudgetConfigExportEmpty() {
	j, err := models.BudgetConfig{}.Export()
	suite.Assert().Nil(err)
	suite.Assert().Equal("null", string(j))
}

func (suite *TestSuiteStandard) TestCurrentConfigDBClosed() {
	suite.CloseDB()

	_, err := models.CurrentConfig()
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

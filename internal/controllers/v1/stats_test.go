package v1_test

import (
	"net/http"
	"time"

	"github.com/eunsung360/Budget-Management-Dashboard/internal/budget"
	v1 "github.com/eunsung360/Budget-Management-Dashboard/internal/controllers/v1"
	"github.com/eunsung360/Budget-Management-Dashboard/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetStatsBeforeSetup() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/stats", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetStats() {
	suite.commitTestConfig(testSplitBody())

	suite.createTestExpense(v1.ExpenseEditable{
		Amount:   decimal.NewFromInt(50000),
		Category: budget.CategoryEssential,
		Date:     time.Now(),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/stats", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.StatsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.ConsumptionBudget.Equal(decimal.NewFromInt(200000)))
	suite.Assert().True(response.Data.Spent.Equal(decimal.NewFromInt(50000)))
	suite.Assert().True(response.Data.Remaining.Equal(decimal.NewFromInt(150000)))
	suite.Assert().True(response.Data.PercentageUsed.Equal(decimal.NewFromInt(25)))
	suite.Assert().Equal(budget.LevelOK, response.Data.Level)
	suite.Assert().True(response.Data.Essential.Equal(decimal.NewFromInt(50000)))
	suite.Assert().True(response.Data.Flexible.IsZero())
}

func (suite *TestSuiteStandard) TestGoalCheckNotAchieved() {
	// No transfers confirmed, the composite score stays at a third
	suite.commitTestConfig(testSplitBody())

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/stats/goal-check", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.GoalCheckResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().False(response.Achieved)
	suite.Assert().Nil(response.Event)
}

func (suite *TestSuiteStandard) TestGoalCheckAchievedOnce() {
	split := testSplitBody()
	split.InvestmentTransferred = true
	split.SavingsTransferred = true
	suite.commitTestConfig(split)

	// The first confirmation returns the achievement event
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/stats/goal-check", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.GoalCheckResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(response.Achieved)
	suite.Require().NotNil(response.Event)
	suite.Assert().Equal(budget.EventBudget, response.Event.Kind)

	// Repeating it keeps the achieved state without a new event
	recorder = test.Request(suite.T(), http.MethodPost, "/v1/stats/goal-check", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	response = v1.GoalCheckResponse{}
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(response.Achieved)
	suite.Assert().Nil(response.Event)
}

func (suite *TestSuiteStandard) TestGoalCheckBeforeSetup() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/stats/goal-check", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

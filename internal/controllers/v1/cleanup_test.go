package v1_test

import (
	"net/http"

	"github.com/eunsung360/Budget-Management-Dashboard/internal/budget"
	v1 "github.com/eunsung360/Budget-Management-Dashboard/internal/controllers/v1"
	"github.com/eunsung360/Budget-Management-Dashboard/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCleanup() {
	suite.commitTestConfig(testSplitBody())
	suite.createTestExpense(v1.ExpenseEditable{
		Amount:   decimal.NewFromInt(12000),
		Category: budget.CategoryFlexible,
	})

	recorder := test.Request(suite.T(), http.MethodDelete, "/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// Everything is gone
	recorder = test.Request(suite.T(), http.MethodGet, "/v1/config", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/expenses", "")
	var expenses v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &expenses)
	suite.Assert().Empty(expenses.Data)
}

func (suite *TestSuiteStandard) TestCleanupWrongConfirmation() {
	tests := []string{
		"/v1",
		"/v1?confirm=yes",
		"/v1?confirm=yes-please-delete-everything%20",
	}

	for _, url := range tests {
		recorder := test.Request(suite.T(), http.MethodDelete, url, "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestClearData() {
	suite.commitTestConfig(testSplitBody())
	suite.createTestExpense(v1.ExpenseEditable{
		Amount:   decimal.NewFromInt(12000),
		Category: budget.CategoryFlexible,
	})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/streak/checkin", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodDelete, "/v1/data?confirm=yes-please-clear-my-data", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// The ledger and the streak are gone
	recorder = test.Request(suite.T(), http.MethodGet, "/v1/expenses", "")
	var expenses v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &expenses)
	suite.Assert().Empty(expenses.Data)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/streak", "")
	var streak v1.StreakResponse
	test.DecodeResponse(suite.T(), &recorder, &streak)
	suite.Assert().Equal(0, streak.Data.Current)

	// The configuration survives
	recorder = test.Request(suite.T(), http.MethodGet, "/v1/config", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestClearDataWrongConfirmation() {
	recorder := test.Request(suite.T(), http.MethodDelete, "/v1/data", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

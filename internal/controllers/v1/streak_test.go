package v1_test

import (
	"net/http"

	v1 "github.com/eunsung360/Budget-Management-Dashboard/internal/controllers/v1"
	"github.com/eunsung360/Budget-Management-Dashboard/test"
)

func (suite *TestSuiteStandard) TestGetStreakDefault() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/streak", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.StreakResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(0, response.Data.Current)
	suite.Assert().Equal(0, response.Data.Longest)
	suite.Assert().Equal(7, response.Data.NextMilestone)
	suite.Assert().Equal(0, response.Data.PreviousMilestone)
}

func (suite *TestSuiteStandard) TestStreakCheckIn() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/streak/checkin", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CheckInResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(1, response.Data.Current)
	suite.Assert().Equal(1, response.Data.Longest)
	suite.Assert().NotNil(response.Data.LastCheck)
	suite.Assert().Nil(response.Event)
}

// A repeated check-in on the same day must not grow the streak.
func (suite *TestSuiteStandard) TestStreakCheckInIdempotent() {
	for i := 0; i < 3; i++ {
		recorder := test.Request(suite.T(), http.MethodPost, "/v1/streak/checkin", "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

		var response v1.CheckInResponse
		test.DecodeResponse(suite.T(), &recorder, &response)
		suite.Assert().Equal(1, response.Data.Current)
	}
}

func (suite *TestSuiteStandard) TestOptionsStreak() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/v1/streak", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("GET", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), http.MethodOptions, "/v1/streak/checkin", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("POST", recorder.Header().Get("allow"))
}

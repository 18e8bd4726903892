package v1

import (
	"net/http"
	"time"

	"github.com/eunsung360/Budget-Management-Dashboard/internal/budget"
	"github.com/eunsung360/Budget-Management-Dashboard/internal/httputil"
	"github.com/eunsung360/Budget-Management-Dashboard/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterStreakRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsStreak)
	r.GET("", GetStreak)
	r.OPTIONS("/checkin", OptionsStreakCheckIn)
	r.POST("/checkin", StreakCheckIn)
}

// StreakInfo is the streak record together with the derived milestone
// figures the streak screen displays.
type StreakInfo struct {
	models.Streak
	NextMilestone     int     `json:"nextMilestone" example:"7"`        // The next streak threshold to reach
	PreviousMilestone int     `json:"previousMilestone" example:"0"`    // The last threshold already reached
	MilestoneProgress float64 `json:"milestoneProgress" example:"42.8"` // Progress between the two, in percent
}

func newStreakInfo(streak models.Streak) StreakInfo {
	return StreakInfo{
		Streak:            streak,
		NextMilestone:     budget.NextMilestone(streak.Current),
		PreviousMilestone: budget.PreviousMilestone(streak.Current),
		MilestoneProgress: budget.MilestoneProgress(streak.Current),
	}
}

type StreakResponse struct {
	Error *string     `json:"error"` // The error, if any occurred
	Data  *StreakInfo `json:"data"`  // The streak state
}

type CheckInResponse struct {
	Error *string       `json:"error"`       // The error, if any occurred
	Data  *StreakInfo   `json:"data"`        // The streak state after the check-in
	Event *budget.Event `json:"achievement"` // Set when the check-in crossed a celebration point
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Streak
// @Success		204
// @Router			/v1/streak [options]
func OptionsStreak(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Streak
// @Success		204
// @Router			/v1/streak/checkin [options]
func OptionsStreakCheckIn(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get streak
// @Description	Returns the check-in streak and milestone progress
// @Tags			Streak
// @Produce		json
// @Success		200	{object}	StreakResponse
// @Failure		500	{object}	StreakResponse
// @Router			/v1/streak [get]
func GetStreak(c *gin.Context) {
	streak, err := models.GetStreak()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), StreakResponse{Error: &e})
		return
	}

	info := newStreakInfo(streak)
	c.JSON(http.StatusOK, StreakResponse{Data: &info})
}

// @Summary		Check in
// @Description	Records today's check-in. At most one check-in counts per calendar day; repeating it is a no-op.
// @Tags			Streak
// @Produce		json
// @Success		200	{object}	CheckInResponse
// @Failure		500	{object}	CheckInResponse
// @Router			/v1/streak/checkin [post]
func StreakCheckIn(c *gin.Context) {
	streak, event, err := models.CheckInStreak(time.Now())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CheckInResponse{Error: &e})
		return
	}

	info := newStreakInfo(streak)
	c.JSON(http.StatusOK, CheckInResponse{Data: &info, Event: event})
}

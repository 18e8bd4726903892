package v1

import (
	"net/http"
	"time"

	"github.com/eunsung360/Budget-Management-Dashboard/internal/budget"
	"github.com/eunsung360/Budget-Management-Dashboard/internal/httputil"
	"github.com/eunsung360/Budget-Management-Dashboard/internal/models"
	"github.com/eunsung360/Budget-Management-Dashboard/internal/types"
	"github.com/gin-gonic/gin"
)

func RegisterStatsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsStats)
	r.GET("", GetStats)
	r.OPTIONS("/goal-check", OptionsGoalCheck)
	r.POST("/goal-check", GoalCheck)
}

type StatsResponse struct {
	Error *string       `json:"error"` // The error, if any occurred
	Data  *budget.Stats `json:"data"`  // Derived figures for the current cycle and cumulative totals
}

type GoalCheckResponse struct {
	Error    *string       `json:"error"`       // The error, if any occurred
	Achieved bool          `json:"achieved"`    // Is the budget goal achieved for the current cycle?
	Event    *budget.Event `json:"achievement"` // Set when this confirmation newly unlocked the goal
}

// computeStats assembles the engine inputs from the persisted records.
func computeStats(today time.Time) (budget.Stats, error) {
	config, err := models.CurrentConfig()
	if err != nil {
		return budget.Stats{}, err
	}

	snapshots, err := models.Snapshots()
	if err != nil {
		return budget.Stats{}, err
	}

	entries, err := models.Entries()
	if err != nil {
		return budget.Stats{}, err
	}

	return budget.Aggregate(config.Engine(), snapshots, entries, today), nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Stats
// @Success		204
// @Router			/v1/stats [options]
func OptionsStats(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Stats
// @Success		204
// @Router			/v1/stats/goal-check [options]
func OptionsGoalCheck(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get statistics
// @Description	Returns the derived figures for the current cycle plus cumulative totals across all cycles
// @Tags			Stats
// @Produce		json
// @Success		200	{object}	StatsResponse
// @Failure		404	{object}	StatsResponse
// @Failure		500	{object}	StatsResponse
// @Router			/v1/stats [get]
func GetStats(c *gin.Context) {
	stats, err := computeStats(time.Now())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), StatsResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{Data: &stats})
}

// @Summary		Confirm budget goal
// @Description	Explicitly checks the budget goal. When the overall progress is at least 80, the goal is recorded for the current cycle and the achievement event is returned exactly once; later confirmations report the achieved state without a new event.
// @Tags			Stats
// @Produce		json
// @Success		200	{object}	GoalCheckResponse
// @Failure		404	{object}	GoalCheckResponse
// @Failure		500	{object}	GoalCheckResponse
// @Router			/v1/stats/goal-check [post]
func GoalCheck(c *gin.Context) {
	now := time.Now()

	stats, err := computeStats(now)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalCheckResponse{Error: &e})
		return
	}

	event, ok := budget.BudgetAchievement(stats.TotalProgress)
	if !ok {
		c.JSON(http.StatusOK, GoalCheckResponse{Achieved: false})
		return
	}

	fresh, err := models.MarkGoalAchieved(types.MonthOf(now))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalCheckResponse{Error: &e})
		return
	}

	response := GoalCheckResponse{Achieved: true}
	if fresh {
		response.Event = &event
	}

	c.JSON(http.StatusOK, response)
}

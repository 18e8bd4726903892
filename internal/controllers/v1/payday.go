package v1

import (
	"net/http"
	"time"

	"github.com/eunsung360/Budget-Management-Dashboard/internal/budget"
	"github.com/eunsung360/Budget-Management-Dashboard/internal/httputil"
	"github.com/eunsung360/Budget-Management-Dashboard/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterPaydayRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsPayday)
	r.GET("", GetPayday)
	r.OPTIONS("/skip", OptionsPaydaySkip)
	r.POST("/skip", PaydaySkip)
}

type PaydayStatus struct {
	Due    bool `json:"due" example:"true"` // Should the payday dialog be shown?
	Payday int  `json:"payday" example:"15"` // The configured day of the month
}

type PaydayResponse struct {
	Error *string       `json:"error"` // The error, if any occurred
	Data  *PaydayStatus `json:"data"`  // The payday decision
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Payday
// @Success		204
// @Router			/v1/payday [options]
func OptionsPayday(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Payday
// @Success		204
// @Router			/v1/payday/skip [options]
func OptionsPaydaySkip(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Payday check
// @Description	Decides whether a new payday cycle should be surfaced: today is the configured payday and no check has fired this calendar month yet. Safe to call any number of times.
// @Tags			Payday
// @Produce		json
// @Success		200	{object}	PaydayResponse
// @Failure		404	{object}	PaydayResponse
// @Failure		500	{object}	PaydayResponse
// @Router			/v1/payday [get]
func GetPayday(c *gin.Context) {
	config, err := models.CurrentConfig()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaydayResponse{Error: &e})
		return
	}

	lastCheck, err := models.LastPaydayCheck()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaydayResponse{Error: &e})
		return
	}

	payday := PaydayStatus{
		Due:    budget.PaydayDue(time.Now(), config.Payday, lastCheck),
		Payday: config.Payday,
	}

	c.JSON(http.StatusOK, PaydayResponse{Data: &payday})
}

// @Summary		Skip payday
// @Description	Keeps the existing configuration for the new cycle and advances the payday check so the event does not fire again this month
// @Tags			Payday
// @Success		204
// @Failure		500	{object}	httpError
// @Router			/v1/payday/skip [post]
func PaydaySkip(c *gin.Context) {
	err := models.SetLastPaydayCheck(time.Now())
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

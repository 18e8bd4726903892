package v1

import (
	"net/http"
	"time"

	"github.com/eunsung360/Budget-Management-Dashboard/internal/httputil"
	"github.com/eunsung360/Budget-Management-Dashboard/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterConfigRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsConfig)
	r.GET("", GetConfig)
	r.PUT("", CommitConfig)
	r.OPTIONS("/months", OptionsConfigMonths)
	r.GET("/months", GetConfigMonths)
}

type ConfigResponse struct {
	Error *string              `json:"error"` // The error, if any occurred
	Data  *models.BudgetConfig `json:"data"`  // The configuration in effect
}

type ConfigMonthsResponse struct {
	Error *string                `json:"error"` // The error, if any occurred
	Data  []models.MonthlyBudget `json:"data"`  // Snapshot history, oldest cycle first
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Config
// @Success		204
// @Router			/v1/config [options]
func OptionsConfig(c *gin.Context) {
	c.Header("allow", "GET, PUT")
	c.Status(http.StatusNoContent)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Config
// @Success		204
// @Router			/v1/config/months [options]
func OptionsConfigMonths(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get configuration
// @Description	Returns the budget configuration in effect. 404 means setup has not been completed.
// @Tags			Config
// @Produce		json
// @Success		200	{object}	ConfigResponse
// @Failure		404	{object}	ConfigResponse
// @Failure		500	{object}	ConfigResponse
// @Router			/v1/config [get]
func GetConfig(c *gin.Context) {
	config, err := models.CurrentConfig()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ConfigResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ConfigResponse{Data: &config})
}

// @Summary		Commit configuration
// @Description	Commits a budget split as the new current configuration and updates the current month's snapshot. Ratios must add up to 100.
// @Tags			Config
// @Accept			json
// @Produce		json
// @Success		200		{object}	ConfigResponse
// @Failure		400		{object}	ConfigResponse
// @Failure		500		{object}	ConfigResponse
// @Param			config	body		models.BudgetSplit	true	"Configuration"
// @Router			/v1/config [put]
func CommitConfig(c *gin.Context) {
	var split models.BudgetSplit
	if err := httputil.BindData(c, &split); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ConfigResponse{Error: &e})
		return
	}

	config, err := models.CommitConfig(split, time.Now())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ConfigResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ConfigResponse{Data: &config})
}

// @Summary		Get snapshot history
// @Description	Returns the per-cycle configuration snapshots, oldest first
// @Tags			Config
// @Produce		json
// @Success		200	{object}	ConfigMonthsResponse
// @Failure		500	{object}	ConfigMonthsResponse
// @Router			/v1/config/months [get]
func GetConfigMonths(c *gin.Context) {
	snapshots, err := models.MonthlyBudgets()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ConfigMonthsResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ConfigMonthsResponse{Data: snapshots})
}

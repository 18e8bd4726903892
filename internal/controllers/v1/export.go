package v1

import (
	"encoding/json"
	"net/http"

	"github.com/eunsung360/Budget-Management-Dashboard/internal/httputil"
	"github.com/eunsung360/Budget-Management-Dashboard/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExport)
	r.GET("", GetExport)
}

// ExportData is the full persisted state as one JSON document: the
// five engine records plus the theme. Each record serializes on its
// own, so collaborators can also consume them independently.
type ExportData struct {
	BudgetConfig    json.RawMessage `json:"budgetConfig"`    // The current configuration, null before setup
	MonthlyBudgets  json.RawMessage `json:"monthlyBudgets"`  // Snapshot history
	Expenses        json.RawMessage `json:"expenses"`        // The ledger, newest first
	StreakData      json.RawMessage `json:"streakData"`      // The check-in streak
	LastPaydayCheck json.RawMessage `json:"lastPaydayCheck"` // Timestamp of the last payday check, null when it never fired
	Theme           json.RawMessage `json:"theme"`           // dark or light
}

type ExportResponse struct {
	Error *string     `json:"error"` // The error, if any occurred
	Data  *ExportData `json:"data"`  // The full state
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export all data
// @Description	Returns all persisted records as one JSON document
// @Tags			Export
// @Produce		json
// @Success		200	{object}	ExportResponse
// @Failure		500	{object}	ExportResponse
// @Router			/v1/export [get]
func GetExport(c *gin.Context) {
	config, err := models.BudgetConfig{}.Export()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExportResponse{Error: &e})
		return
	}

	snapshots, err := models.MonthlyBudget{}.Export()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExportResponse{Error: &e})
		return
	}

	expenses, err := models.Expense{}.Export()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExportResponse{Error: &e})
		return
	}

	streak, err := models.Streak{}.Export()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExportResponse{Error: &e})
		return
	}

	settings, err := models.GetSettings()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExportResponse{Error: &e})
		return
	}

	lastPaydayCheck, err := json.Marshal(settings.LastPaydayCheck)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, ExportResponse{Error: &e})
		return
	}

	theme, err := json.Marshal(settings.Theme)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, ExportResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ExportResponse{Data: &ExportData{
		BudgetConfig:    config,
		MonthlyBudgets:  snapshots,
		Expenses:        expenses,
		StreakData:      streak,
		LastPaydayCheck: lastPaydayCheck,
		Theme:           theme,
	}})
}

package v1

import (
	"net/http"

	"github.com/eunsung360/Budget-Management-Dashboard/internal/models"
	"github.com/gin-gonic/gin"
)

// @Summary		Delete everything
// @Description	Permanently deletes all persisted records: configuration, snapshots, expenses, streak and settings
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	deleteResources(c, []any{
		models.Expense{},
		models.MonthlyBudget{},
		models.BudgetConfig{},
		models.Streak{},
		models.Settings{},
	})
}

// @Summary		Clear tracking data
// @Description	Deletes the expense ledger and the streak record, keeping the budget configuration, the snapshot history and the settings
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to clear the data. Must have the value 'yes-please-clear-my-data'"
// @Router			/v1/data [delete]
func ClearData(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-clear-my-data" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errClearConfirmation.Error(),
		})
		return
	}

	deleteResources(c, []any{
		models.Expense{},
		models.Streak{},
	})
}

// deleteResources removes all rows of the given models in one
// transaction so a failure rolls everything back.
func deleteResources(c *gin.Context, resources []any) {
	tx := models.DB.Begin()

	for _, model := range resources {
		err := tx.Where("true").Delete(&model).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{
				Error: err.Error(),
			})
			tx.Rollback()
			return
		}
	}

	tx.Commit()
	c.JSON(http.StatusNoContent, nil)
}

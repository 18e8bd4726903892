package v1

import (
	"time"

	"github.com/eunsung360/Budget-Management-Dashboard/internal/budget"
	"github.com/eunsung360/Budget-Management-Dashboard/internal/models"
	"github.com/eunsung360/Budget-Management-Dashboard/internal/types"
	"github.com/shopspring/decimal"
)

type ExpenseEditable struct {
	Amount   decimal.Decimal `json:"amount" example:"50000" minimum:"0.00000001" default:"0"` // The amount spent
	Memo     string          `json:"memo" example:"점심" default:""`                            // Free-text note
	Category budget.Category `json:"category" example:"flexible" default:"flexible"`          // essential or flexible
	Date     time.Time       `json:"date" example:"2025-03-15T12:04:05.000000Z"`              // When the money was spent, defaults to now
}

// model returns the database resource for the editable fields.
func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Amount:   editable.Amount,
		Memo:     editable.Memo,
		Category: editable.Category,
		Date:     editable.Date,
	}
}

type ExpenseListResponse struct {
	Error *string          `json:"error"` // The error, if any occurred
	Data  []models.Expense `json:"data"`  // List of expenses, newest first
}

type ExpenseResponse struct {
	Error *string         `json:"error"` // The error, if any occurred
	Data  *models.Expense `json:"data"`  // The expense
}

type ExpenseQueryFilter struct {
	Month    string `form:"month"`    // Only expenses of this cycle ("YYYY-MM")
	Category string `form:"category"` // Only expenses of this category
}

// month parses the month filter, returning the zero Month when unset.
func (f ExpenseQueryFilter) month() (types.Month, error) {
	if f.Month == "" {
		return types.Month{}, nil
	}

	return types.ParseMonth(f.Month)
}
